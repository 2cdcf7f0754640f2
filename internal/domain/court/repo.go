package court

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
	return r.fs.Collection("projects").Doc(projectID).Collection("courts")
}

func (r *Repo) Create(ctx context.Context, projectID string, c Court) (*Court, error) {
	ref := r.col(projectID).NewDoc()
	c.ID = ref.ID
	if _, err := ref.Create(ctx, c); err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *Repo) Get(ctx context.Context, projectID, id string) (*Court, error) {
	doc, err := r.col(projectID).Doc(id).Get(ctx)
	if err != nil {
		return nil, err
	}
	var c Court
	if err := doc.DataTo(&c); err != nil {
		return nil, err
	}
	if c.ID == "" {
		c.ID = id
	}
	return &c, nil
}

// List returns courts ordered newest first, optionally filtered by sport
// and/or status equality.
func (r *Repo) List(ctx context.Context, projectID, sportID, status string) ([]Court, error) {
	q := r.col(projectID).Query
	if sportID != "" {
		q = q.Where("sportId", "==", sportID)
	}
	if status != "" {
		q = q.Where("status", "==", status)
	}
	it := q.OrderBy("createdAt", firestore.Desc).Documents(ctx)

	out := []Court{}
	for {
		doc, err := it.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, err
		}
		var c Court
		if err := doc.DataTo(&c); err != nil {
			return nil, err
		}
		if c.ID == "" {
			c.ID = doc.Ref.ID
		}
		out = append(out, c)
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
