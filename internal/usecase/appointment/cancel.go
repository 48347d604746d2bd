package appointment

import (
	"context"

	"github.com/BruksfildServices01/salon-scheduler/internal/audit"
	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/appointment"
	ssdomain "github.com/BruksfildServices01/salon-scheduler/internal/domain/scheduledservice"
	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
	"github.com/BruksfildServices01/salon-scheduler/internal/timezone"
	ucScheduled "github.com/BruksfildServices01/salon-scheduler/internal/usecase/scheduledservice"
)

type CancelAppointment struct {
	repo          domain.Repository
	tz            *timezone.Normalizer
	cancelService *ucScheduled.CancelScheduledService
	audit         *audit.Dispatcher
}

func NewCancelAppointment(
	repo domain.Repository,
	tz *timezone.Normalizer,
	cancelService *ucScheduled.CancelScheduledService,
	audit *audit.Dispatcher,
) *CancelAppointment {
	return &CancelAppointment{
		repo:          repo,
		tz:            tz,
		cancelService: cancelService,
		audit:         audit,
	}
}

// Execute cancela todas as linhas não canceladas e depois o agendamento.
// Se alguma linha já foi concluída nada é alterado.
// Cancelar um agendamento já cancelado não escreve nada.
func (uc *CancelAppointment) Execute(
	ctx context.Context,
	appointmentID uint,
) (*models.Appointment, error) {

	var (
		out     *models.Appointment
		changed bool
	)

	err := uc.repo.Transaction(ctx, func(tx domain.Repository) error {
		ap, err := tx.GetAppointmentForUpdate(ctx, appointmentID)
		if err != nil {
			return httperr.MapNotFound(err, "appointment_not_found")
		}

		if domain.Status(ap.Status) == domain.StatusCancelled {
			out = ap
			return nil
		}
		if err := domain.AssertCancellable(ap); err != nil {
			return err
		}

		cancelService := uc.cancelService.WithRepository(tx)
		for _, ss := range ap.ScheduledServices {
			if ssdomain.Status(ss.Status) == ssdomain.StatusCancelled {
				continue
			}
			if _, err := cancelService.Execute(ctx, ss.ID); err != nil {
				return err
			}
		}

		if err := domain.Cancel(ap, uc.tz.Now()); err != nil {
			return err
		}
		if err := tx.UpdateAppointment(ctx, ap); err != nil {
			return err
		}

		changed = true
		out, err = tx.GetAppointment(ctx, ap.ID)
		return err
	})
	if err != nil {
		return nil, err
	}

	if changed {
		uc.audit.Dispatch(audit.Event{
			Action:   "appointment_cancelled",
			Entity:   "appointment",
			EntityID: &out.ID,
		})
	}

	return out, nil
}
