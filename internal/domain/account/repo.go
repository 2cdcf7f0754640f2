package account

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
)

type Repo struct {
	fs *firestore.Client
}

func NewRepo(fs *firestore.Client) *Repo {
	return &Repo{fs: fs}
}

func (r *Repo) col() *firestore.CollectionRef {
	return r.fs.Collection("users")
}

func (r *Repo) Create(ctx context.Context, u User) (*User, error) {
	// User documents are keyed by the auth uid, not an auto id.
	u.ID = u.AuthUID
	if _, err := r.col().Doc(u.ID).Create(ctx, u); err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *Repo) Get(ctx context.Context, id string) (*User, error) {
	doc, err := r.col().Doc(id).Get(ctx)
	if err != nil {
		return nil, err
	}
	var u User
	if err := doc.DataTo(&u); err != nil {
		return nil, err
	}
	if u.ID == "" {
		u.ID = id
	}
	return &u, nil
}

func (r *Repo) List(ctx context.Context) ([]User, error) {
	it := r.col().OrderBy("createdAt", firestore.Desc).Documents(ctx)

	out := []User{}
	for {
		doc, err := it.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, err
		}
		var u User
		if err := doc.DataTo(&u); err != nil {
			return nil, err
		}
		if u.ID == "" {
			u.ID = doc.Ref.ID
		}
		out = append(out, u)
	}
	return out, nil
}

// ListExpiredTemporary returns temporary users whose validity window ended
// before the cutoff and that are not yet marked expired.
func (r *Repo) ListExpiredTemporary(ctx context.Context, cutoff time.Time) ([]User, error) {
	it := r.col().
		Where("isTemporary", "==", true).
		Where("validityEndDate", "<", cutoff).
		Documents(ctx)

	out := []User{}
	for {
		doc, err := it.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, err
		}
		var u User
		if err := doc.DataTo(&u); err != nil {
			continue
		}
		if u.ID == "" {
			u.ID = doc.Ref.ID
		}
		if u.IsExpired {
			continue
		}
		out = append(out, u)
	}
	return out, nil
}

func (r *Repo) Update(ctx context.Context, id string, fields map[string]interface{}) error {
	_, err := r.col().Doc(id).Set(ctx, fields, firestore.MergeAll)
	return err
}

// MarkExpiredBatch flags the given users expired in chunked all-or-nothing
// batches (Firestore caps a batch at 500 writes).
func (r *Repo) MarkExpiredBatch(ctx context.Context, users []User, at time.Time) error {
	batch := r.fs.Batch()
	count := 0
	for _, u := range users {
		batch.Set(r.col().Doc(u.ID), map[string]interface{}{
			"isExpired": true,
			"expiredAt": at,
			"updatedAt": at,
		}, firestore.MergeAll)
		count++
		if count%450 == 0 {
			if _, err := batch.Commit(ctx); err != nil {
				return err
			}
			batch = r.fs.Batch()
		}
	}
	if count%450 != 0 {
		if _, err := batch.Commit(ctx); err != nil {
			return err
		}
	}
	return nil
}

func (r *Repo) Delete(ctx context.Context, id string) error {
	_, err := r.col().Doc(id).Delete(ctx)
	return err
}
