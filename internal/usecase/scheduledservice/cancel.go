package scheduledservice

import (
	"context"

	"github.com/BruksfildServices01/salon-scheduler/internal/audit"
	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/appointment"
	ssdomain "github.com/BruksfildServices01/salon-scheduler/internal/domain/scheduledservice"
	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
	"github.com/BruksfildServices01/salon-scheduler/internal/timezone"
)

type CancelScheduledService struct {
	repo  domain.Repository
	tz    *timezone.Normalizer
	audit *audit.Dispatcher
}

func NewCancelScheduledService(
	repo domain.Repository,
	tz *timezone.Normalizer,
	audit *audit.Dispatcher,
) *CancelScheduledService {
	return &CancelScheduledService{
		repo:  repo,
		tz:    tz,
		audit: audit,
	}
}

func (uc *CancelScheduledService) WithRepository(repo domain.Repository) *CancelScheduledService {
	return &CancelScheduledService{repo: repo, tz: uc.tz}
}

// Execute cancela sem apagar; serviço já cancelado volta sem escrita.
func (uc *CancelScheduledService) Execute(
	ctx context.Context,
	id uint,
) (*models.ScheduledService, error) {

	ss, err := uc.repo.GetScheduledService(ctx, id)
	if err != nil {
		return nil, httperr.MapNotFound(err, "scheduled_service_not_found")
	}

	changed, err := ssdomain.Cancel(ss, uc.tz.Now())
	if err != nil {
		return nil, err
	}
	if !changed {
		return ss, nil
	}

	if err := uc.repo.UpdateScheduledService(ctx, ss); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		Action:   "scheduled_service_cancelled",
		Entity:   "scheduled_service",
		EntityID: &ss.ID,
	})

	return ss, nil
}
