package appointment

import (
	"context"

	"github.com/BruksfildServices01/salon-scheduler/internal/audit"
	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/appointment"
	ssdomain "github.com/BruksfildServices01/salon-scheduler/internal/domain/scheduledservice"
	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
	"github.com/BruksfildServices01/salon-scheduler/internal/timezone"
	ucCommission "github.com/BruksfildServices01/salon-scheduler/internal/usecase/commission"
	ucScheduled "github.com/BruksfildServices01/salon-scheduler/internal/usecase/scheduledservice"
)

type CompleteAppointment struct {
	repo            domain.Repository
	tz              *timezone.Normalizer
	completeService *ucScheduled.CompleteScheduledService
	commissions     *ucCommission.CalculateAppointmentCommissions
	audit           *audit.Dispatcher
}

func NewCompleteAppointment(
	repo domain.Repository,
	tz *timezone.Normalizer,
	completeService *ucScheduled.CompleteScheduledService,
	commissions *ucCommission.CalculateAppointmentCommissions,
	audit *audit.Dispatcher,
) *CompleteAppointment {
	return &CompleteAppointment{
		repo:            repo,
		tz:              tz,
		completeService: completeService,
		commissions:     commissions,
		audit:           audit,
	}
}

// Execute conclui todas as linhas pendentes, o agendamento e garante
// comissão para cada linha concluída, numa única unidade de trabalho.
func (uc *CompleteAppointment) Execute(
	ctx context.Context,
	appointmentID uint,
) (*models.Appointment, error) {

	var out *models.Appointment

	err := uc.repo.Transaction(ctx, func(tx domain.Repository) error {
		ap, err := tx.GetAppointmentForUpdate(ctx, appointmentID)
		if err != nil {
			return httperr.MapNotFound(err, "appointment_not_found")
		}

		if err := domain.AssertCompletable(ap); err != nil {
			return err
		}

		// --------------------------------------------------
		// Cascata: linhas pendentes → concluídas (+ comissão)
		// --------------------------------------------------
		completeService := uc.completeService.WithRepository(tx)
		for _, ss := range domain.ActiveServices(ap) {
			if ssdomain.Status(ss.Status) != ssdomain.StatusPending {
				continue
			}
			if _, err := completeService.Execute(ctx, ss.ID); err != nil {
				return err
			}
		}

		if err := domain.Complete(ap, uc.tz.Now()); err != nil {
			return err
		}
		if err := tx.UpdateAppointment(ctx, ap); err != nil {
			return err
		}

		// linhas concluídas antes do agendamento também recebem comissão
		if _, err := uc.commissions.WithRepository(tx).Execute(ctx, ap.ID); err != nil {
			return err
		}

		out, err = tx.GetAppointment(ctx, ap.ID)
		return err
	})
	if err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		Action:   "appointment_completed",
		Entity:   "appointment",
		EntityID: &out.ID,
	})

	return out, nil
}
