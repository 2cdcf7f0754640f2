package sport

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
	return r.fs.Collection("projects").Doc(projectID).Collection("sports")
}

func (r *Repo) Create(ctx context.Context, projectID string, s Sport) (*Sport, error) {
	ref := r.col(projectID).NewDoc()
	s.ID = ref.ID
	if _, err := ref.Create(ctx, s); err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *Repo) Get(ctx context.Context, projectID, id string) (*Sport, error) {
	doc, err := r.col(projectID).Doc(id).Get(ctx)
	if err != nil {
		return nil, err
	}
	var s Sport
	if err := doc.DataTo(&s); err != nil {
		return nil, err
	}
	if s.ID == "" {
		s.ID = id
	}
	return &s, nil
}

func (r *Repo) List(ctx context.Context, projectID string, activeOnly bool) ([]Sport, error) {
	q := r.col(projectID).Query
	if activeOnly {
		q = q.Where("active", "==", true)
	}
	it := q.OrderBy("createdAt", firestore.Desc).Documents(ctx)

	out := []Sport{}
	for {
		doc, err := it.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, err
		}
		var s Sport
		if err := doc.DataTo(&s); err != nil {
			return nil, err
		}
		if s.ID == "" {
			s.ID = doc.Ref.ID
		}
		out = append(out, s)
	}
	return out, nil
}

func (r *Repo) Update(ctx context.Context, projectID, id string, fields map[string]interface{}) error {
	_, err := r.col(projectID).Doc(id).Set(ctx, fields, firestore.MergeAll)
	return err
}

func (r *Repo) Delete(ctx context.Context, projectID, id string) error {
	_, err := r.col(projectID).Doc(id).Delete(ctx)
	return err
}
