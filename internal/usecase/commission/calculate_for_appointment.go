package commission

import (
	"context"

	"github.com/BruksfildServices01/salon-scheduler/internal/audit"
	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/salon-scheduler/internal/domain/scheduledservice"
	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

type CalculateAppointmentCommissions struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewCalculateAppointmentCommissions(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *CalculateAppointmentCommissions {
	return &CalculateAppointmentCommissions{
		repo:  repo,
		audit: audit,
	}
}

func (uc *CalculateAppointmentCommissions) WithRepository(repo domain.Repository) *CalculateAppointmentCommissions {
	return &CalculateAppointmentCommissions{repo: repo}
}

// Execute garante uma comissão para cada serviço concluído do agendamento.
// Comissões já existentes voltam intactas; serviços não concluídos são ignorados.
func (uc *CalculateAppointmentCommissions) Execute(
	ctx context.Context,
	appointmentID uint,
) ([]models.Commission, error) {

	var out []models.Commission

	err := uc.repo.Transaction(ctx, func(tx domain.Repository) error {
		ap, err := tx.GetAppointment(ctx, appointmentID)
		if err != nil {
			return httperr.MapNotFound(err, "appointment_not_found")
		}

		out = make([]models.Commission, 0, len(ap.ScheduledServices))
		for _, ss := range ap.ScheduledServices {
			if scheduledservice.Status(ss.Status) != scheduledservice.StatusCompleted {
				continue
			}

			c, err := calculate(ctx, tx, ss.ID, false)
			if err != nil {
				return err
			}
			out = append(out, *c)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		Action:   "appointment_commissions_calculated",
		Entity:   "appointment",
		EntityID: &appointmentID,
		Metadata: map[string]any{"count": len(out)},
	})

	return out, nil
}
