package appointment

import (
	"testing"

	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
)

func TestTransitions(t *testing.T) {
	cases := []struct {
		from, to Status
		ok       bool
	}{
		{StatusScheduled, StatusCompleted, true},
		{StatusScheduled, StatusCancelled, true},
		{StatusCompleted, StatusCancelled, false},
		{StatusCompleted, StatusCompleted, false},
		{StatusCancelled, StatusCompleted, false},
		{StatusCancelled, StatusScheduled, false},
	}

	for _, tc := range cases {
		if got := CanTransition(tc.from, tc.to); got != tc.ok {
			t.Errorf("%s -> %s: expected %v, got %v", tc.from, tc.to, tc.ok, got)
		}
	}
}

func TestGuards(t *testing.T) {
	if err := CanCancel(StatusCompleted); !httperr.IsBusiness(err, "appointment_already_completed") {
		t.Fatalf("expected appointment_already_completed, got %v", err)
	}
	if err := CanComplete(StatusCancelled); !httperr.IsKind(err, httperr.KindInvalidState) {
		t.Fatalf("expected invalid_state, got %v", err)
	}
	if err := CanEdit(StatusCompleted); !httperr.IsBusiness(err, "appointment_not_editable") {
		t.Fatalf("expected appointment_not_editable, got %v", err)
	}
	if err := CanEdit(StatusScheduled); err != nil {
		t.Fatalf("scheduled appointments are editable: %v", err)
	}
}

func TestValidateTimeRange(t *testing.T) {
	cases := []struct {
		start, end string
		kind       httperr.Kind
	}{
		{"09:00", "10:30", ""},
		{"11:00", "09:00", httperr.KindInvalidTimeRange},
		{"10:00", "10:00", httperr.KindInvalidTimeRange},
		{"9:00", "10:00", httperr.KindInvalidFormat},
		{"09:00", "24:00", httperr.KindInvalidFormat},
		{"09:60", "10:00", httperr.KindInvalidFormat},
	}

	for _, tc := range cases {
		err := ValidateTimeRange(tc.start, tc.end)
		if tc.kind == "" {
			if err != nil {
				t.Errorf("%s-%s: unexpected error %v", tc.start, tc.end, err)
			}
			continue
		}
		if !httperr.IsKind(err, tc.kind) {
			t.Errorf("%s-%s: expected %s, got %v", tc.start, tc.end, tc.kind, err)
		}
	}
}
