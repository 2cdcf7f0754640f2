package account

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"cloud.google.com/go/firestore"
)

func setupTestRepo(t *testing.T) (*Repo, func()) {
	if os.Getenv("FIRESTORE_EMULATOR_HOST") == "" {
		t.Skip("FIRESTORE_EMULATOR_HOST not set")
	}
	ctx := context.Background()
	client, err := firestore.NewClient(ctx, "test-project")
	if err != nil {
		t.Fatalf("connect: %v", err)
	}
	return NewRepo(client), func() { _ = client.Close() }
}

func TestSweepMarksOnlyOverdueTemporary(t *testing.T) {
	repo, cleanup := setupTestRepo(t)
	defer cleanup()
	ctx := context.Background()

	// The users collection is top-level, so key this run's documents by a
	// unique prefix and ignore everything else.
	prefix := fmt.Sprintf("sweep_%d", time.Now().UnixNano())
	now := time.Now().UTC()
	past := now.Add(-48 * time.Hour)
	future := now.Add(48 * time.Hour)

	seed := []User{
		{AuthUID: prefix + "_overdue", Email: "overdue@test.local", DisplayName: "Overdue",
			IsTemporary: true, ValidityEndDate: &past, CreatedAt: now, UpdatedAt: now},
		{AuthUID: prefix + "_current", Email: "current@test.local", DisplayName: "Current",
			IsTemporary: true, ValidityEndDate: &future, CreatedAt: now, UpdatedAt: now},
		{AuthUID: prefix + "_done", Email: "done@test.local", DisplayName: "Done",
			IsTemporary: true, ValidityEndDate: &past, IsExpired: true, CreatedAt: now, UpdatedAt: now},
	}
	for _, u := range seed {
		if _, err := repo.Create(ctx, u); err != nil {
			t.Fatalf("seed %s: %v", u.AuthUID, err)
		}
	}
	defer func() {
		for _, u := range seed {
			_, _ = repo.col().Doc(u.AuthUID).Delete(ctx)
		}
	}()

	candidates, err := repo.ListExpiredTemporary(ctx, now)
	if err != nil {
		t.Fatalf("list expired: %v", err)
	}
	mine := []User{}
	for _, u := range candidates {
		switch u.ID {
		case prefix + "_overdue":
			mine = append(mine, u)
		case prefix + "_current":
			t.Error("user inside its validity window must not be a sweep candidate")
		case prefix + "_done":
			t.Error("already-expired user must be skipped")
		}
	}
	if len(mine) != 1 {
		t.Fatalf("expected exactly the overdue user, got %v", candidates)
	}

	if err := repo.MarkExpiredBatch(ctx, mine, now); err != nil {
		t.Fatalf("mark expired: %v", err)
	}

	marked, err := repo.Get(ctx, prefix+"_overdue")
	if err != nil {
		t.Fatalf("get overdue: %v", err)
	}
	if !marked.IsExpired || marked.ExpiredAt == nil {
		t.Errorf("overdue user must be marked expired with a timestamp, got %+v", marked)
	}

	untouched, err := repo.Get(ctx, prefix+"_current")
	if err != nil {
		t.Fatalf("get current: %v", err)
	}
	if untouched.IsExpired {
		t.Error("user with a future end date must be untouched by the sweep")
	}

	// A second pass finds nothing left to do.
	again, err := repo.ListExpiredTemporary(ctx, now)
	if err != nil {
		t.Fatalf("second list: %v", err)
	}
	for _, u := range again {
		if u.ID == prefix+"_overdue" {
			t.Error("marked user must not be a candidate on the next sweep")
		}
	}
}
