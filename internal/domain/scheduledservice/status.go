package scheduledservice

import "github.com/BruksfildServices01/salon-scheduler/internal/httperr"

// ===============================
// Scheduled Service Status
// ===============================

type Status string

const (
	StatusPending   Status = "pending"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

// ===============================
// Transition table
// ===============================

// CANCELLED -> CANCELLED é aceito como no-op
var transitions = map[Status][]Status{
	StatusPending:   {StatusCompleted, StatusCancelled},
	StatusCancelled: {StatusCancelled},
}

func CanTransition(from, to Status) bool {
	for _, allowed := range transitions[from] {
		if allowed == to {
			return true
		}
	}
	return false
}

// ===============================
// Validations
// ===============================

func CanComplete(current Status) error {
	if !CanTransition(current, StatusCompleted) {
		return httperr.ErrInvalidState("scheduled_service_not_pending")
	}
	return nil
}

// CanCancel recusa serviços já concluídos.
func CanCancel(current Status) error {
	if current == StatusCompleted {
		return httperr.ErrInvalidState("scheduled_service_already_completed")
	}
	if !CanTransition(current, StatusCancelled) {
		return httperr.ErrInvalidState("invalid_state")
	}
	return nil
}

func CanEdit(current Status) error {
	if current != StatusPending {
		return httperr.ErrInvalidState("scheduled_service_not_editable")
	}
	return nil
}

func InitialStatus() Status {
	return StatusPending
}
