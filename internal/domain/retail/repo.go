package retail

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

func (r *Repo) stores(projectID string) *firestore.CollectionRef {
	return r.fs.Collection("projects").Doc(projectID).Collection("stores")
}

func (r *Repo) products(projectID, storeID string) *firestore.CollectionRef {
	return r.stores(projectID).Doc(storeID).Collection("products")
}

func (r *Repo) ratings(projectID, storeID string) *firestore.CollectionRef {
	return r.stores(projectID).Doc(storeID).Collection("ratings")
}

func (r *Repo) CreateStore(ctx context.Context, projectID string, st Store) (*Store, error) {
	ref := r.stores(projectID).NewDoc()
	st.ID = ref.ID
	if _, err := ref.Create(ctx, st); err != nil {
		return nil, err
	}
	return &st, nil
}

func (r *Repo) GetStore(ctx context.Context, projectID, id string) (*Store, error) {
	doc, err := r.stores(projectID).Doc(id).Get(ctx)
	if err != nil {
		return nil, err
	}
	var st Store
	if err := doc.DataTo(&st); err != nil {
		return nil, err
	}
	if st.ID == "" {
		st.ID = id
	}
	return &st, nil
}

func (r *Repo) ListStores(ctx context.Context, projectID, storeType string) ([]Store, error) {
	q := r.stores(projectID).Query
	if storeType != "" {
		q = q.Where("type", "==", storeType)
	}
	it := q.OrderBy("createdAt", firestore.Desc).Documents(ctx)

	out := []Store{}
	for {
		doc, err := it.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, err
		}
		var st Store
		if err := doc.DataTo(&st); err != nil {
			return nil, err
		}
		if st.ID == "" {
			st.ID = doc.Ref.ID
		}
		out = append(out, st)
	}
	return out, nil
}

func (r *Repo) UpdateStore(ctx context.Context, projectID, id string, fields map[string]interface{}) error {
	_, err := r.stores(projectID).Doc(id).Set(ctx, fields, firestore.MergeAll)
	return err
}

func (r *Repo) DeleteStore(ctx context.Context, projectID, id string) error {
	_, err := r.stores(projectID).Doc(id).Delete(ctx)
	return err
}

// AverageRating scans the ratings subcollection and averages it. The result
// is never written back; list views recompute it per fetch.
func (r *Repo) AverageRating(ctx context.Context, projectID, storeID string) (avg float64, count int, err error) {
	it := r.ratings(projectID, storeID).Documents(ctx)

	sum := 0.0
	for {
		doc, err := it.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return 0, 0, err
		}
		var rt Rating
		if err := doc.DataTo(&rt); err != nil {
			continue
		}
		sum += rt.Value
		count++
	}
	if count == 0 {
		return 0, 0, nil
	}
	return sum / float64(count), count, nil
}

func (r *Repo) AddRating(ctx context.Context, projectID, storeID string, rt Rating) (*Rating, error) {
	ref := r.ratings(projectID, storeID).NewDoc()
	rt.ID = ref.ID
	if _, err := ref.Create(ctx, rt); err != nil {
		return nil, err
	}
	return &rt, nil
}

func (r *Repo) CreateProduct(ctx context.Context, projectID, storeID string, p Product) (*Product, error) {
	ref := r.products(projectID, storeID).NewDoc()
	p.ID = ref.ID
	if _, err := ref.Create(ctx, p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *Repo) GetProduct(ctx context.Context, projectID, storeID, id string) (*Product, error) {
	doc, err := r.products(projectID, storeID).Doc(id).Get(ctx)
	if err != nil {
		return nil, err
	}
	var p Product
	if err := doc.DataTo(&p); err != nil {
		return nil, err
	}
	if p.ID == "" {
		p.ID = id
	}
	return &p, nil
}

func (r *Repo) ListProducts(ctx context.Context, projectID, storeID string) ([]Product, error) {
	it := r.products(projectID, storeID).OrderBy("createdAt", firestore.Desc).Documents(ctx)

	out := []Product{}
	for {
		doc, err := it.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, err
		}
		var p Product
		if err := doc.DataTo(&p); err != nil {
			return nil, err
		}
		if p.ID == "" {
			p.ID = doc.Ref.ID
		}
		out = append(out, p)
	}
	return out, nil
}

func (r *Repo) UpdateProduct(ctx context.Context, projectID, storeID, id string, fields map[string]interface{}) error {
	_, err := r.products(projectID, storeID).Doc(id).Set(ctx, fields, firestore.MergeAll)
	return err
}

func (r *Repo) DeleteProduct(ctx context.Context, projectID, storeID, id string) error {
	_, err := r.products(projectID, storeID).Doc(id).Delete(ctx)
	return err
}
