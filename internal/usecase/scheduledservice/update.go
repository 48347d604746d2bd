package scheduledservice

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/BruksfildServices01/salon-scheduler/internal/audit"
	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/appointment"
	ssdomain "github.com/BruksfildServices01/salon-scheduler/internal/domain/scheduledservice"
	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

// Campos nil não são alterados. ClearCollaborator remove o colaborador
// e tem precedência sobre CollaboratorID.
type UpdateScheduledServiceInput struct {
	ServiceID         *uint
	CollaboratorID    *uint
	ClearCollaborator bool
	Price             *decimal.Decimal
}

type UpdateScheduledService struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewUpdateScheduledService(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *UpdateScheduledService {
	return &UpdateScheduledService{
		repo:  repo,
		audit: audit,
	}
}

func (uc *UpdateScheduledService) Execute(
	ctx context.Context,
	id uint,
	in UpdateScheduledServiceInput,
) (*models.ScheduledService, error) {

	var out *models.ScheduledService

	err := uc.repo.Transaction(ctx, func(tx domain.Repository) error {
		ss, err := tx.GetScheduledService(ctx, id)
		if err != nil {
			return httperr.MapNotFound(err, "scheduled_service_not_found")
		}
		if err := ssdomain.CanEdit(ssdomain.Status(ss.Status)); err != nil {
			return err
		}

		if in.ServiceID != nil && *in.ServiceID != ss.ServiceID {
			service, err := tx.GetService(ctx, *in.ServiceID)
			if err != nil {
				return httperr.MapNotFound(err, "service_not_found")
			}
			ss.ServiceID = service.ID
			ss.Service = *service
			// troca de serviço sem preço explícito volta ao preço de catálogo
			if in.Price == nil {
				ss.Price = service.Price
			}
		}

		if in.Price != nil {
			if err := assertPrice(*in.Price); err != nil {
				return err
			}
			ss.Price = *in.Price
		}

		switch {
		case in.ClearCollaborator:
			ss.CollaboratorID = nil
			ss.Collaborator = nil
		case in.CollaboratorID != nil && !sameID(ss.CollaboratorID, *in.CollaboratorID):
			if err := assertCollaborator(ctx, tx, *in.CollaboratorID); err != nil {
				return err
			}
			collaboratorID := *in.CollaboratorID
			ss.CollaboratorID = &collaboratorID
			ss.Collaborator = nil
		}

		if err := tx.UpdateScheduledService(ctx, ss); err != nil {
			return err
		}

		out, err = tx.GetScheduledService(ctx, ss.ID)
		return err
	})
	if err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		Action:   "scheduled_service_updated",
		Entity:   "scheduled_service",
		EntityID: &out.ID,
	})

	return out, nil
}

func sameID(current *uint, next uint) bool {
	return current != nil && *current == next
}
