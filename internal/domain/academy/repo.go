package academy

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
	return r.fs.Collection("projects").Doc(projectID).Collection("academies")
}

func (r *Repo) Create(ctx context.Context, projectID string, a Academy) (*Academy, error) {
	ref := r.col(projectID).NewDoc()
	a.ID = ref.ID
	if _, err := ref.Create(ctx, a); err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *Repo) Get(ctx context.Context, projectID, id string) (*Academy, error) {
	doc, err := r.col(projectID).Doc(id).Get(ctx)
	if err != nil {
		return nil, err
	}
	var a Academy
	if err := doc.DataTo(&a); err != nil {
		return nil, err
	}
	if a.ID == "" {
		a.ID = id
	}
	return &a, nil
}

func (r *Repo) List(ctx context.Context, projectID string) ([]Academy, error) {
	it := r.col(projectID).OrderBy("createdAt", firestore.Desc).Documents(ctx)

	out := []Academy{}
	for {
		doc, err := it.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, err
		}
		var a Academy
		if err := doc.DataTo(&a); err != nil {
			return nil, err
		}
		if a.ID == "" {
			a.ID = doc.Ref.ID
		}
		out = append(out, a)
	}
	return out, nil
}

func (r *Repo) Update(ctx context.Context, projectID, id string, fields map[string]interface{}) error {
	_, err := r.col(projectID).Doc(id).Set(ctx, fields, firestore.MergeAll)
	return err
}

// SetPrograms rewrites the academy's full program list. Programs have no
// document identity of their own, so this is the only write path for them.
func (r *Repo) SetPrograms(ctx context.Context, projectID, id string, programs []Program, updatedAt interface{}) error {
	_, err := r.col(projectID).Doc(id).Set(ctx, map[string]interface{}{
		"programs":  programs,
		"updatedAt": updatedAt,
	}, firestore.MergeAll)
	return err
}

func (r *Repo) Delete(ctx context.Context, projectID, id string) error {
	_, err := r.col(projectID).Doc(id).Delete(ctx)
	return err
}
