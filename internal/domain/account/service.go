package account

import (
	"context"
	"fmt"
	"time"

	"firebase.google.com/go/v4/auth"
	"go.uber.org/zap"
)

type Service struct {
	repo       *Repo
	authClient *auth.Client
	projectURL string
	log        *zap.Logger
}

func NewService(repo *Repo, authClient *auth.Client, projectURL string, log *zap.Logger) *Service {
	return &Service{repo: repo, authClient: authClient, projectURL: projectURL, log: log}
}

// CreateUser provisions an auth identity plus its user document. Known
// identity-provider failures map to typed errors; anything else collapses to
// a generic internal error carrying the upstream message.
func (s *Service) CreateUser(ctx context.Context, callerUID string, in CreateUserInput) (*CreateUserResult, error) {
	if callerUID == "" {
		return nil, fmt.Errorf("%w: sign in to create users", ErrUnauthenticated)
	}
	in.Trim()
	if in.Email == "" {
		return nil, fmt.Errorf("%w: email is required", ErrInvalidArgument)
	}
	if in.DisplayName == "" {
		return nil, fmt.Errorf("%w: displayName is required", ErrInvalidArgument)
	}

	params := (&auth.UserToCreate{}).
		Email(in.Email).
		DisplayName(in.DisplayName).
		EmailVerified(false)

	rec, err := s.authClient.CreateUser(ctx, params)
	if err != nil {
		switch {
		case auth.IsEmailAlreadyExists(err):
			return nil, fmt.Errorf("%w: a user with email %s already exists", ErrAlreadyExists, in.Email)
		case auth.IsInvalidEmail(err):
			return nil, fmt.Errorf("%w: %s is not a valid email", ErrInvalidArgument, in.Email)
		default:
			return nil, fmt.Errorf("failed to create user: %v", err)
		}
	}

	now := time.Now().UTC()
	u := User{
		AuthUID:           rec.UID,
		Email:             in.Email,
		DisplayName:       in.DisplayName,
		IsTemporary:       in.IsTemporary,
		ValidityStartDate: in.ValidityStartDate,
		ValidityEndDate:   in.ValidityEndDate,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
	if _, err := s.repo.Create(ctx, u); err != nil {
		return nil, fmt.Errorf("failed to save user document: %v", err)
	}

	if in.SendPasswordResetEmail {
		// The link is generated but not dispatched; delivery is a client
		// concern. Generation failure never fails the create.
		settings := &auth.ActionCodeSettings{URL: s.projectURL}
		if _, err := s.authClient.PasswordResetLinkWithSettings(ctx, in.Email, settings); err != nil {
			s.log.Warn("failed to generate password reset link",
				zap.String("email", in.Email),
				zap.Error(err))
		}
	}

	return &CreateUserResult{
		Success: true,
		UID:     rec.UID,
		Email:   in.Email,
		Message: "user created",
	}, nil
}

// ValidateAccess checks a user's validity window on demand. An expired
// temporary user is disabled and marked expired inline before the denial is
// returned; the two steps are not atomic with each other.
func (s *Service) ValidateAccess(ctx context.Context, callerUID, targetUID string) (*AccessResult, error) {
	if callerUID == "" {
		return nil, fmt.Errorf("%w: sign in to validate access", ErrUnauthenticated)
	}
	uid := targetUID
	if uid == "" {
		uid = callerUID
	}

	u, err := s.repo.Get(ctx, uid)
	if err != nil {
		return nil, fmt.Errorf("%w: user %s not found", ErrNotFound, uid)
	}

	switch EvaluateAccess(u, time.Now().UTC()) {
	case AccessSuspended:
		return nil, fmt.Errorf("%w: %s", ErrPermissionDenied, u.SuspensionReason)
	case AccessExpired:
		s.expireInline(ctx, u)
		return nil, fmt.Errorf("%w: account has expired", ErrPermissionDenied)
	case AccessNotYetActive:
		return nil, fmt.Errorf("%w: account is not yet active", ErrPermissionDenied)
	}

	return &AccessResult{
		Success:         true,
		IsValid:         true,
		IsTemporary:     u.IsTemporary,
		ValidityEndDate: u.ValidityEndDate,
	}, nil
}

func (s *Service) expireInline(ctx context.Context, u *User) {
	if _, err := s.authClient.UpdateUser(ctx, u.AuthUID, (&auth.UserToUpdate{}).Disabled(true)); err != nil {
		s.log.Warn("failed to disable expired identity",
			zap.String("uid", u.AuthUID),
			zap.Error(err))
	}
	now := time.Now().UTC()
	err := s.repo.Update(ctx, u.ID, map[string]interface{}{
		"isExpired": true,
		"expiredAt": now,
		"updatedAt": now,
	})
	if err != nil {
		s.log.Warn("failed to mark user expired",
			zap.String("uid", u.ID),
			zap.Error(err))
	}
}

// SweepExpired is the daily job: one batched document update for every
// overdue temporary user, then per-user identity disables. A disable failure
// is logged and skipped so one bad identity never aborts the batch.
func (s *Service) SweepExpired(ctx context.Context) (marked, disabled int, err error) {
	now := time.Now().UTC()
	users, err := s.repo.ListExpiredTemporary(ctx, now)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to query expired users: %w", err)
	}
	if len(users) == 0 {
		return 0, 0, nil
	}

	if err := s.repo.MarkExpiredBatch(ctx, users, now); err != nil {
		return 0, 0, fmt.Errorf("failed to mark users expired: %w", err)
	}
	marked = len(users)

	for _, u := range users {
		if _, err := s.authClient.UpdateUser(ctx, u.AuthUID, (&auth.UserToUpdate{}).Disabled(true)); err != nil {
			s.log.Warn("failed to disable expired identity",
				zap.String("uid", u.AuthUID),
				zap.Error(err))
			continue
		}
		disabled++
	}
	return marked, disabled, nil
}

// ListExpiredCandidates returns the users the next sweep would expire,
// without writing anything.
func (s *Service) ListExpiredCandidates(ctx context.Context) ([]User, error) {
	return s.repo.ListExpiredTemporary(ctx, time.Now().UTC())
}

func (s *Service) List(ctx context.Context) ([]User, error) {
	return s.repo.List(ctx)
}

func (s *Service) Get(ctx context.Context, uid string) (*User, error) {
	if uid == "" {
		return nil, fmt.Errorf("%w: userId is required", ErrInvalidArgument)
	}
	u, err := s.repo.Get(ctx, uid)
	if err != nil {
		return nil, fmt.Errorf("%w: user %s not found", ErrNotFound, uid)
	}
	return u, nil
}

func (s *Service) Suspend(ctx context.Context, uid, reason string) error {
	if uid == "" {
		return fmt.Errorf("%w: userId is required", ErrInvalidArgument)
	}
	if _, err := s.authClient.UpdateUser(ctx, uid, (&auth.UserToUpdate{}).Disabled(true)); err != nil {
		return fmt.Errorf("failed to disable identity: %v", err)
	}
	now := time.Now().UTC()
	return s.repo.Update(ctx, uid, map[string]interface{}{
		"isSuspended":      true,
		"suspensionReason": reason,
		"updatedAt":        now,
	})
}

func (s *Service) Unsuspend(ctx context.Context, uid string) error {
	if uid == "" {
		return fmt.Errorf("%w: userId is required", ErrInvalidArgument)
	}
	if _, err := s.authClient.UpdateUser(ctx, uid, (&auth.UserToUpdate{}).Disabled(false)); err != nil {
		return fmt.Errorf("failed to enable identity: %v", err)
	}
	now := time.Now().UTC()
	return s.repo.Update(ctx, uid, map[string]interface{}{
		"isSuspended":      false,
		"suspensionReason": "",
		"updatedAt":        now,
	})
}
