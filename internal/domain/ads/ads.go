package ads

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
)

var (
	ErrNotFound   = errors.New("not found")
	ErrBadRequest = errors.New("bad request")
)

func IsErrNotFound(err error) bool   { return errors.Is(err, ErrNotFound) }
func IsErrBadRequest(err error) bool { return errors.Is(err, ErrBadRequest) }

// Ad is a dashboard banner with an image blob and an optional display window.
type Ad struct {
	ID        string     `firestore:"id" json:"id"`
	Title     string     `firestore:"title" json:"title"`
	TargetURL string     `firestore:"targetUrl,omitempty" json:"targetUrl,omitempty"`
	ImageURL  string     `firestore:"imageUrl" json:"imageUrl"`
	ImagePath string     `firestore:"imagePath" json:"imagePath"`
	StartsAt  *time.Time `firestore:"startsAt,omitempty" json:"startsAt,omitempty"`
	EndsAt    *time.Time `firestore:"endsAt,omitempty" json:"endsAt,omitempty"`
	Active    bool       `firestore:"active" json:"active"`
	CreatedAt time.Time  `firestore:"createdAt" json:"createdAt"`
	UpdatedAt time.Time  `firestore:"updatedAt" json:"updatedAt"`
}

type CreateAdInput struct {
	Title     string     `json:"title"`
	TargetURL string     `json:"targetUrl,omitempty"`
	ImageURL  string     `json:"imageUrl"`
	ImagePath string     `json:"imagePath"`
	StartsAt  *time.Time `json:"startsAt,omitempty"`
	EndsAt    *time.Time `json:"endsAt,omitempty"`
}

type Service struct {
	client *firestore.Client
}

func NewService(client *firestore.Client) *Service {
	return &Service{client: client}
}

func (s *Service) col(projectID string) *firestore.CollectionRef {
	return s.client.Collection("projects").Doc(projectID).Collection("ads")
}

func (s *Service) Create(ctx context.Context, projectID string, in CreateAdInput) (*Ad, error) {
	in.Title = strings.TrimSpace(in.Title)
	if in.Title == "" {
		return nil, fmt.Errorf("%w: title is required", ErrBadRequest)
	}
	if in.ImageURL == "" {
		return nil, fmt.Errorf("%w: image is required", ErrBadRequest)
	}

	now := time.Now().UTC()
	a := Ad{
		Title:     in.Title,
		TargetURL: in.TargetURL,
		ImageURL:  in.ImageURL,
		ImagePath: in.ImagePath,
		StartsAt:  in.StartsAt,
		EndsAt:    in.EndsAt,
		Active:    true,
		CreatedAt: now,
		UpdatedAt: now,
	}

	ref := s.col(projectID).NewDoc()
	a.ID = ref.ID
	if _, err := ref.Create(ctx, a); err != nil {
		return nil, fmt.Errorf("failed to create ad: %w", err)
	}
	return &a, nil
}

func (s *Service) List(ctx context.Context, projectID string) ([]Ad, error) {
	if projectID == "" {
		return nil, fmt.Errorf("%w: projectId is required", ErrBadRequest)
	}
	it := s.col(projectID).OrderBy("createdAt", firestore.Desc).Documents(ctx)

	out := []Ad{}
	for {
		doc, err := it.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, err
		}
		var a Ad
		if err := doc.DataTo(&a); err != nil {
			continue
		}
		if a.ID == "" {
			a.ID = doc.Ref.ID
		}
		out = append(out, a)
	}
	return out, nil
}

// ReplaceImage swaps the ad's image. The caller deletes the returned old
// blob path after this write succeeds.
func (s *Service) ReplaceImage(ctx context.Context, projectID, id, imageURL, imagePath string) (oldPath string, err error) {
	doc, err := s.col(projectID).Doc(id).Get(ctx)
	if err != nil {
		return "", fmt.Errorf("%w: ad not found", ErrNotFound)
	}
	var a Ad
	if err := doc.DataTo(&a); err != nil {
		return "", fmt.Errorf("failed to decode ad: %w", err)
	}

	_, err = s.col(projectID).Doc(id).Set(ctx, map[string]interface{}{
		"imageUrl":  imageURL,
		"imagePath": imagePath,
		"updatedAt": time.Now().UTC(),
	}, firestore.MergeAll)
	if err != nil {
		return "", fmt.Errorf("failed to update ad image: %w", err)
	}

	if a.ImagePath != "" && a.ImagePath != imagePath {
		oldPath = a.ImagePath
	}
	return oldPath, nil
}

func (s *Service) ToggleActive(ctx context.Context, projectID, id string) error {
	doc, err := s.col(projectID).Doc(id).Get(ctx)
	if err != nil {
		return fmt.Errorf("%w: ad not found", ErrNotFound)
	}
	var a Ad
	if err := doc.DataTo(&a); err != nil {
		return fmt.Errorf("failed to decode ad: %w", err)
	}
	_, err = s.col(projectID).Doc(id).Set(ctx, map[string]interface{}{
		"active":    !a.Active,
		"updatedAt": time.Now().UTC(),
	}, firestore.MergeAll)
	return err
}

// Delete removes the ad document and reports the blob path for cleanup.
func (s *Service) Delete(ctx context.Context, projectID, id string) (imagePath string, err error) {
	doc, err := s.col(projectID).Doc(id).Get(ctx)
	if err != nil {
		return "", fmt.Errorf("%w: ad not found", ErrNotFound)
	}
	var a Ad
	if err := doc.DataTo(&a); err == nil {
		imagePath = a.ImagePath
	}
	if _, err := s.col(projectID).Doc(id).Delete(ctx); err != nil {
		return "", err
	}
	return imagePath, nil
}
