package appointment

import "github.com/BruksfildServices01/salon-scheduler/internal/httperr"

// ===============================
// Appointment Status
// ===============================

type Status string

const (
	StatusScheduled Status = "scheduled"
	StatusCancelled Status = "cancelled"
	StatusCompleted Status = "completed"
)

// ===============================
// Transition table
// ===============================

// apenas SCHEDULED transiciona; COMPLETED e CANCELLED são terminais
var transitions = map[Status][]Status{
	StatusScheduled: {StatusCompleted, StatusCancelled},
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

// CanCancel define se um agendamento pode ser cancelado
func CanCancel(current Status) error {
	if current == StatusCompleted {
		return httperr.ErrInvalidState("appointment_already_completed")
	}
	if !CanTransition(current, StatusCancelled) {
		return httperr.ErrInvalidState("invalid_state")
	}
	return nil
}

// CanComplete define se um agendamento pode ser concluído
func CanComplete(current Status) error {
	switch current {
	case StatusCompleted:
		return httperr.ErrInvalidState("appointment_already_completed")
	case StatusCancelled:
		return httperr.ErrInvalidState("appointment_cancelled")
	}
	if !CanTransition(current, StatusCompleted) {
		return httperr.ErrInvalidState("invalid_state")
	}
	return nil
}

// CanEdit: só agendamentos em aberto aceitam alterações
func CanEdit(current Status) error {
	if current != StatusScheduled {
		return httperr.ErrInvalidState("appointment_not_editable")
	}
	return nil
}

func InitialStatus() Status {
	return StatusScheduled
}
