package order

import (
	"context"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
)

type Repo struct {
	fs *firestore.Client
}

func NewRepo(fs *firestore.Client) *Repo {
	return &Repo{fs: fs}
}

func (r *Repo) col(projectID string) *firestore.CollectionRef {
	return r.fs.Collection("projects").Doc(projectID).Collection("orders")
}

func (r *Repo) Create(ctx context.Context, projectID string, o Order) (*Order, error) {
	ref := r.col(projectID).NewDoc()
	o.ID = ref.ID
	if _, err := ref.Create(ctx, o); err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *Repo) Get(ctx context.Context, projectID, id string) (*Order, error) {
	doc, err := r.col(projectID).Doc(id).Get(ctx)
	if err != nil {
		return nil, err
	}
	var o Order
	if err := doc.DataTo(&o); err != nil {
		return nil, err
	}
	if o.ID == "" {
		o.ID = id
	}
	return &o, nil
}

func (r *Repo) List(ctx context.Context, projectID, status, paymentStatus string) ([]Order, error) {
	q := r.col(projectID).Query
	if status != "" {
		q = q.Where("status", "==", status)
	}
	if paymentStatus != "" {
		q = q.Where("paymentStatus", "==", paymentStatus)
	}
	it := q.OrderBy("createdAt", firestore.Desc).Documents(ctx)

	out := []Order{}
	for {
		doc, err := it.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, err
		}
		var o Order
		if err := doc.DataTo(&o); err != nil {
			return nil, err
		}
		if o.ID == "" {
			o.ID = doc.Ref.ID
		}
		out = append(out, o)
	}
	return out, nil
}

func (r *Repo) Update(ctx context.Context, projectID, id string, fields map[string]interface{}) error {
	_, err := r.col(projectID).Doc(id).Set(ctx, fields, firestore.MergeAll)
	return err
}

// FindByPaymentIntent locates the order a Stripe webhook event refers to.
func (r *Repo) FindByPaymentIntent(ctx context.Context, projectID, paymentIntentID string) (*Order, error) {
	it := r.col(projectID).Where("paymentIntentId", "==", paymentIntentID).Limit(1).Documents(ctx)
	doc, err := it.Next()
	if err == iterator.Done {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	var o Order
	if err := doc.DataTo(&o); err != nil {
		return nil, err
	}
	if o.ID == "" {
		o.ID = doc.Ref.ID
	}
	return &o, nil
}

func (r *Repo) Delete(ctx context.Context, projectID, id string) error {
	_, err := r.col(projectID).Doc(id).Delete(ctx)
	return err
}
