package academy

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"cloud.google.com/go/firestore"
)

func setupTestRepo(t *testing.T) (*Repo, string, func()) {
	if os.Getenv("FIRESTORE_EMULATOR_HOST") == "" {
		t.Skip("FIRESTORE_EMULATOR_HOST not set")
	}
	ctx := context.Background()
	client, err := firestore.NewClient(ctx, "test-project")
	if err != nil {
		t.Fatalf("connect: %v", err)
	}
	projectID := fmt.Sprintf("test_%d", time.Now().UnixNano())
	return NewRepo(client), projectID, func() { _ = client.Close() }
}

func TestCreateFetchRoundTrip(t *testing.T) {
	repo, projectID, cleanup := setupTestRepo(t)
	defer cleanup()
	ctx := context.Background()

	svc := NewService(repo)
	created, err := svc.Create(ctx, projectID, CreateAcademyInput{
		Name: "Elite FC", Email: "a@b.com", Location: "Field 1",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.ID == "" {
		t.Fatal("expected generated id")
	}
	if created.Rating != 0 || created.Facilities == nil || created.Programs == nil {
		t.Errorf("expected defaulted optional fields, got %+v", created)
	}

	all, err := repo.List(ctx, projectID)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(all) != 1 || all[0].ID != created.ID || all[0].Name != "Elite FC" {
		t.Errorf("round trip mismatch: %+v", all)
	}

	if err := repo.Delete(ctx, projectID, created.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	all, err = repo.List(ctx, projectID)
	if err != nil {
		t.Fatalf("list after delete: %v", err)
	}
	for _, a := range all {
		if a.ID == created.ID {
			t.Errorf("deleted academy still present")
		}
	}
}
