package account

import (
	"testing"
	"time"
)

func TestEvaluateAccess(t *testing.T) {
	now := time.Date(2026, 8, 15, 10, 0, 0, 0, time.UTC)
	past := now.Add(-48 * time.Hour)
	future := now.Add(48 * time.Hour)

	cases := []struct {
		name string
		user User
		want AccessDecision
	}{
		{"permanent user", User{}, AccessValid},
		{"suspended", User{IsSuspended: true, SuspensionReason: "payment overdue"}, AccessSuspended},
		{
			"temporary inside window",
			User{IsTemporary: true, ValidityStartDate: &past, ValidityEndDate: &future},
			AccessValid,
		},
		{
			"temporary past end date",
			User{IsTemporary: true, ValidityEndDate: &past},
			AccessExpired,
		},
		{
			"temporary before start date",
			User{IsTemporary: true, ValidityStartDate: &future},
			AccessNotYetActive,
		},
		{
			"suspension wins over expiry",
			User{IsSuspended: true, IsTemporary: true, ValidityEndDate: &past},
			AccessSuspended,
		},
		{
			"permanent user with stale window",
			User{ValidityEndDate: &past},
			AccessValid,
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := EvaluateAccess(&c.user, now); got != c.want {
				t.Errorf("expected %v, got %v", c.want, got)
			}
		})
	}
}
