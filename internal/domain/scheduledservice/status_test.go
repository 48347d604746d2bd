package scheduledservice

import (
	"testing"
	"time"

	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

func TestTransitions(t *testing.T) {
	cases := []struct {
		from, to Status
		ok       bool
	}{
		{StatusPending, StatusCompleted, true},
		{StatusPending, StatusCancelled, true},
		{StatusCancelled, StatusCancelled, true},
		{StatusCancelled, StatusCompleted, false},
		{StatusCompleted, StatusCancelled, false},
		{StatusCompleted, StatusCompleted, false},
	}

	for _, tc := range cases {
		if got := CanTransition(tc.from, tc.to); got != tc.ok {
			t.Errorf("%s -> %s: expected %v, got %v", tc.from, tc.to, tc.ok, got)
		}
	}
}

func TestComplete(t *testing.T) {
	now := time.Now()
	collab := uint(3)

	ss := &models.ScheduledService{Status: string(StatusPending)}
	if err := Complete(ss, now); !httperr.IsKind(err, httperr.KindMissingCollaborator) {
		t.Fatalf("expected missing_collaborator, got %v", err)
	}

	ss.CollaboratorID = &collab
	if err := Complete(ss, now); err != nil {
		t.Fatal(err)
	}
	if ss.Status != string(StatusCompleted) || ss.CompletedAt == nil {
		t.Fatalf("unexpected state %+v", ss)
	}

	if err := Complete(ss, now); !httperr.IsBusiness(err, "scheduled_service_not_pending") {
		t.Fatalf("second completion must fail, got %v", err)
	}
}

func TestCancel(t *testing.T) {
	now := time.Now()

	ss := &models.ScheduledService{Status: string(StatusPending)}
	changed, err := Cancel(ss, now)
	if err != nil || !changed {
		t.Fatalf("expected change, got changed=%v err=%v", changed, err)
	}

	changed, err = Cancel(ss, now.Add(time.Hour))
	if err != nil || changed {
		t.Fatalf("re-cancel must be a no-op, got changed=%v err=%v", changed, err)
	}
	if !ss.CancelledAt.Equal(now) {
		t.Fatal("no-op cancel must not touch cancelled_at")
	}

	done := &models.ScheduledService{Status: string(StatusCompleted)}
	if _, err := Cancel(done, now); !httperr.IsBusiness(err, "scheduled_service_already_completed") {
		t.Fatalf("expected scheduled_service_already_completed, got %v", err)
	}
}

func TestAssertAssignable(t *testing.T) {
	if err := AssertAssignable(&models.Collaborator{Active: false}); !httperr.IsKind(err, httperr.KindInactiveCollaborator) {
		t.Fatalf("expected inactive_collaborator, got %v", err)
	}
	if err := AssertAssignable(&models.Collaborator{Active: true}); err != nil {
		t.Fatal(err)
	}
}
