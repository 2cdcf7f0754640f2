package gatepass

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
	return r.fs.Collection("projects").Doc(projectID).Collection("gatePasses")
}

func (r *Repo) Create(ctx context.Context, projectID string, p GatePass) (*GatePass, error) {
	ref := r.col(projectID).NewDoc()
	p.ID = ref.ID
	if _, err := ref.Create(ctx, p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *Repo) Get(ctx context.Context, projectID, id string) (*GatePass, error) {
	doc, err := r.col(projectID).Doc(id).Get(ctx)
	if err != nil {
		return nil, err
	}
	var p GatePass
	if err := doc.DataTo(&p); err != nil {
		return nil, err
	}
	if p.ID == "" {
		p.ID = id
	}
	return &p, nil
}

func (r *Repo) List(ctx context.Context, projectID, passType, status string) ([]GatePass, error) {
	q := r.col(projectID).Query
	if passType != "" {
		q = q.Where("type", "==", passType)
	}
	if status != "" {
		q = q.Where("status", "==", status)
	}
	it := q.OrderBy("validFrom", firestore.Desc).Documents(ctx)

	out := []GatePass{}
	for {
		doc, err := it.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, err
		}
		var p GatePass
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

func (r *Repo) Update(ctx context.Context, projectID, id string, fields map[string]interface{}) error {
	_, err := r.col(projectID).Doc(id).Set(ctx, fields, firestore.MergeAll)
	return err
}

func (r *Repo) Delete(ctx context.Context, projectID, id string) error {
	_, err := r.col(projectID).Doc(id).Delete(ctx)
	return err
}
