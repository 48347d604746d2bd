package appointment

import (
	"strings"
	"time"

	"github.com/BruksfildServices01/salon-scheduler/internal/domain/scheduledservice"
	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
	"github.com/shopspring/decimal"
)

// ===============================
// Domain Actions
// ===============================

// AssertCompletable valida estado e linhas antes da cascata de conclusão.
func AssertCompletable(ap *models.Appointment) error {
	if err := CanComplete(Status(ap.Status)); err != nil {
		return err
	}

	if len(ap.ScheduledServices) == 0 {
		return httperr.ErrEmptyCollection("no_scheduled_services")
	}

	active := ActiveServices(ap)
	if len(active) == 0 {
		return httperr.ErrEmptyCollection("no_active_services")
	}

	for _, ss := range active {
		if ss.CollaboratorID == nil {
			return httperr.ErrBusiness(httperr.KindMissingCollaborator, "missing_collaborator")
		}
	}
	return nil
}

// AssertCancellable rejeita o cancelamento se alguma linha já foi concluída.
func AssertCancellable(ap *models.Appointment) error {
	if err := CanCancel(Status(ap.Status)); err != nil {
		return err
	}

	for _, ss := range ap.ScheduledServices {
		if scheduledservice.Status(ss.Status) == scheduledservice.StatusCompleted {
			return httperr.ErrInvalidState("appointment_has_completed_services")
		}
	}
	return nil
}

func Complete(ap *models.Appointment, now time.Time) error {
	if err := CanComplete(Status(ap.Status)); err != nil {
		return err
	}

	ap.Status = string(StatusCompleted)
	ap.CompletedAt = &now
	return nil
}

func Cancel(ap *models.Appointment, now time.Time) error {
	if err := CanCancel(Status(ap.Status)); err != nil {
		return err
	}

	ap.Status = string(StatusCancelled)
	ap.CancelledAt = &now
	return nil
}

// ActiveServices retorna as linhas que não foram canceladas.
func ActiveServices(ap *models.Appointment) []models.ScheduledService {
	out := make([]models.ScheduledService, 0, len(ap.ScheduledServices))
	for _, ss := range ap.ScheduledServices {
		if scheduledservice.Status(ss.Status) != scheduledservice.StatusCancelled {
			out = append(out, ss)
		}
	}
	return out
}

// TotalPrice soma as linhas não canceladas.
func TotalPrice(ap *models.Appointment) decimal.Decimal {
	total := decimal.Zero
	for _, ss := range ActiveServices(ap) {
		total = total.Add(ss.Price)
	}
	return total
}

// NormalizeObservations converte observações em branco para nil.
func NormalizeObservations(obs *string) *string {
	if obs == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*obs)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
