package main

import (
	"context"
	"flag"
	"fmt"
	"log"

	"facility-admin/internal/config"
	"facility-admin/internal/domain/account"
	"facility-admin/internal/firebase"
	"facility-admin/internal/logging"
)

// One-shot expiry sweep, for environments without the asynq worker
// (or to run the sweep by hand). Exits non-zero on a listing failure;
// per-user auth disable failures are logged and skipped.
func main() {
	dryRun := flag.Bool("dry-run", false, "list expired users without writing anything")
	flag.Parse()

	logging.Init()
	zlog := logging.L()
	defer zlog.Sync()

	ctx := context.Background()
	cfg := config.Load()

	clients, err := firebase.NewClients(ctx, cfg)
	if err != nil {
		log.Fatalf("firebase init failed: %v", err)
	}
	defer clients.Close()

	repo := account.NewRepo(clients.Firestore)
	svc := account.NewService(repo, clients.Auth, cfg.ProjectURL, zlog)

	if *dryRun {
		users, err := svc.ListExpiredCandidates(ctx)
		if err != nil {
			log.Fatalf("listing expired users failed: %v", err)
		}
		for _, u := range users {
			fmt.Printf("%s\t%s\tvalidUntil=%v\n", u.AuthUID, u.Email, u.ValidityEndDate)
		}
		fmt.Printf("would expire %d user(s)\n", len(users))
		return
	}

	marked, disabled, err := svc.SweepExpired(ctx)
	if err != nil {
		log.Fatalf("sweep failed: %v", err)
	}
	fmt.Printf("ok: marked %d expired, disabled %d auth account(s)\n", marked, disabled)
}
