package notice

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

type Service struct {
	client *firestore.Client
}

func NewService(client *firestore.Client) *Service {
	return &Service{client: client}
}

func (s *Service) col(projectID string) *firestore.CollectionRef {
	return s.client.Collection("projects").Doc(projectID).Collection("notifications")
}

func (s *Service) Create(ctx context.Context, projectID string, in CreateNoticeInput) (*Notice, error) {
	in.Trim()
	if in.Title == "" {
		return nil, fmt.Errorf("%w: title is required", ErrBadRequest)
	}
	if in.Message == "" {
		return nil, fmt.Errorf("%w: message is required", ErrBadRequest)
	}

	typ := in.Type
	if typ == "" {
		typ = TypeInfo
	}
	switch typ {
	case TypeAnnouncement, TypeEvent, TypeAlert, TypeInfo:
	default:
		return nil, fmt.Errorf("%w: invalid type %q", ErrBadRequest, typ)
	}

	priority := in.Priority
	if priority == "" {
		priority = PriorityNormal
	}
	if !validPriority(priority) {
		return nil, fmt.Errorf("%w: invalid priority %q", ErrBadRequest, priority)
	}

	audience := in.Audience
	if audience == "" {
		audience = AudienceAll
	}
	switch audience {
	case AudienceAll, AudienceResidents, AudienceStaff:
	case AudienceSpecific:
		if len(in.UserIDs) == 0 {
			return nil, fmt.Errorf("%w: specific audience needs at least one userId", ErrBadRequest)
		}
	default:
		return nil, fmt.Errorf("%w: invalid audience %q", ErrBadRequest, audience)
	}

	now := time.Now().UTC()
	n := Notice{
		Title:       in.Title,
		Message:     in.Message,
		Type:        typ,
		Priority:    priority,
		Audience:    audience,
		UserIDs:     in.UserIDs,
		ScheduledAt: in.ScheduledAt,
		ExpiresAt:   in.ExpiresAt,
		Active:      true,
		ActionLabel: in.ActionLabel,
		ActionURL:   in.ActionURL,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if n.UserIDs == nil {
		n.UserIDs = []string{}
	}

	ref := s.col(projectID).NewDoc()
	n.ID = ref.ID
	if _, err := ref.Create(ctx, n); err != nil {
		return nil, fmt.Errorf("failed to create notification: %w", err)
	}
	return &n, nil
}

func (s *Service) List(ctx context.Context, projectID, noticeType string, activeOnly bool) ([]Notice, error) {
	if projectID == "" {
		return nil, fmt.Errorf("%w: projectId is required", ErrBadRequest)
	}

	q := s.col(projectID).Query
	if noticeType != "" {
		q = q.Where("type", "==", noticeType)
	}
	if activeOnly {
		q = q.Where("active", "==", true)
	}
	it := q.OrderBy("createdAt", firestore.Desc).Documents(ctx)

	out := []Notice{}
	for {
		doc, err := it.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, err
		}
		var n Notice
		if err := doc.DataTo(&n); err != nil {
			continue
		}
		if n.ID == "" {
			n.ID = doc.Ref.ID
		}
		out = append(out, n)
	}
	return out, nil
}

func validPriority(p string) bool {
	switch p {
	case PriorityLow, PriorityNormal, PriorityHigh, PriorityUrgent:
		return true
	}
	return false
}

func (s *Service) Update(ctx context.Context, projectID, id string, in UpdateNoticeInput) error {
	if id == "" {
		return fmt.Errorf("%w: notificationId is required", ErrBadRequest)
	}

	fields := map[string]interface{}{}
	if in.Title != nil {
		title := strings.TrimSpace(*in.Title)
		if title == "" {
			return fmt.Errorf("%w: title cannot be empty", ErrBadRequest)
		}
		fields["title"] = title
	}
	if in.Message != nil {
		msg := strings.TrimSpace(*in.Message)
		if msg == "" {
			return fmt.Errorf("%w: message cannot be empty", ErrBadRequest)
		}
		fields["message"] = msg
	}
	if in.Priority != nil {
		if !validPriority(*in.Priority) {
			return fmt.Errorf("%w: invalid priority %q", ErrBadRequest, *in.Priority)
		}
		fields["priority"] = *in.Priority
	}
	if in.ScheduledAt != nil {
		fields["scheduledAt"] = *in.ScheduledAt
	}
	if in.ExpiresAt != nil {
		fields["expiresAt"] = *in.ExpiresAt
	}
	if in.ActionLabel != nil {
		fields["actionLabel"] = strings.TrimSpace(*in.ActionLabel)
	}
	if in.ActionURL != nil {
		fields["actionUrl"] = strings.TrimSpace(*in.ActionURL)
	}
	if len(fields) == 0 {
		return fmt.Errorf("%w: nothing to update", ErrBadRequest)
	}
	fields["updatedAt"] = time.Now().UTC()

	if _, err := s.col(projectID).Doc(id).Set(ctx, fields, firestore.MergeAll); err != nil {
		return fmt.Errorf("failed to update notification: %w", err)
	}
	return nil
}

func (s *Service) ToggleActive(ctx context.Context, projectID, id string) (*Notice, error) {
	doc, err := s.col(projectID).Doc(id).Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: notification not found", ErrNotFound)
	}
	var n Notice
	if err := doc.DataTo(&n); err != nil {
		return nil, fmt.Errorf("failed to decode notification: %w", err)
	}
	n.ID = doc.Ref.ID

	n.Active = !n.Active
	n.UpdatedAt = time.Now().UTC()
	_, err = s.col(projectID).Doc(id).Set(ctx, map[string]interface{}{
		"active":    n.Active,
		"updatedAt": n.UpdatedAt,
	}, firestore.MergeAll)
	if err != nil {
		return nil, fmt.Errorf("failed to toggle notification: %w", err)
	}
	return &n, nil
}

func (s *Service) Delete(ctx context.Context, projectID, id string) error {
	if id == "" {
		return fmt.Errorf("%w: notificationId is required", ErrBadRequest)
	}
	_, err := s.col(projectID).Doc(id).Delete(ctx)
	return err
}
