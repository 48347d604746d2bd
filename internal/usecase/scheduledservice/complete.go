package scheduledservice

import (
	"context"

	"github.com/BruksfildServices01/salon-scheduler/internal/audit"
	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/appointment"
	ssdomain "github.com/BruksfildServices01/salon-scheduler/internal/domain/scheduledservice"
	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
	"github.com/BruksfildServices01/salon-scheduler/internal/timezone"
	ucCommission "github.com/BruksfildServices01/salon-scheduler/internal/usecase/commission"
)

type CompleteScheduledService struct {
	repo      domain.Repository
	tz        *timezone.Normalizer
	calculate *ucCommission.CalculateCommission
	audit     *audit.Dispatcher
}

func NewCompleteScheduledService(
	repo domain.Repository,
	tz *timezone.Normalizer,
	calculate *ucCommission.CalculateCommission,
	audit *audit.Dispatcher,
) *CompleteScheduledService {
	return &CompleteScheduledService{
		repo:      repo,
		tz:        tz,
		calculate: calculate,
		audit:     audit,
	}
}

func (uc *CompleteScheduledService) WithRepository(repo domain.Repository) *CompleteScheduledService {
	return &CompleteScheduledService{
		repo:      repo,
		tz:        uc.tz,
		calculate: uc.calculate.WithRepository(repo),
	}
}

// Execute conclui o serviço e gera a comissão do colaborador.
func (uc *CompleteScheduledService) Execute(
	ctx context.Context,
	id uint,
) (*models.ScheduledService, error) {

	var out *models.ScheduledService

	err := uc.repo.Transaction(ctx, func(tx domain.Repository) error {
		ss, err := tx.GetScheduledService(ctx, id)
		if err != nil {
			return httperr.MapNotFound(err, "scheduled_service_not_found")
		}

		if err := ssdomain.Complete(ss, uc.tz.Now()); err != nil {
			return err
		}
		if err := tx.UpdateScheduledService(ctx, ss); err != nil {
			return err
		}

		if _, err := uc.calculate.WithRepository(tx).Ensure(ctx, ss.ID); err != nil {
			return err
		}

		out = ss
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		Action:   "scheduled_service_completed",
		Entity:   "scheduled_service",
		EntityID: &out.ID,
	})

	return out, nil
}
