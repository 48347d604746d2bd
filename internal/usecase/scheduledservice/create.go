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

// ======================================================
// INPUT
// ======================================================

type CreateScheduledServiceInput struct {
	AppointmentID  uint
	ServiceID      uint
	CollaboratorID *uint

	// nil usa o preço de catálogo
	Price *decimal.Decimal
}

// ======================================================
// USE CASE
// ======================================================

type CreateScheduledService struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewCreateScheduledService(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *CreateScheduledService {
	return &CreateScheduledService{
		repo:  repo,
		audit: audit,
	}
}

func (uc *CreateScheduledService) WithRepository(repo domain.Repository) *CreateScheduledService {
	return &CreateScheduledService{repo: repo}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateScheduledService) Execute(
	ctx context.Context,
	in CreateScheduledServiceInput,
) (*models.ScheduledService, error) {

	var out *models.ScheduledService

	err := uc.repo.Transaction(ctx, func(tx domain.Repository) error {

		// --------------------------------------------------
		// 1️⃣ Agendamento dono
		// --------------------------------------------------
		ap, err := tx.GetAppointment(ctx, in.AppointmentID)
		if err != nil {
			return httperr.MapNotFound(err, "appointment_not_found")
		}
		if err := domain.CanEdit(domain.Status(ap.Status)); err != nil {
			return err
		}

		// --------------------------------------------------
		// 2️⃣ Serviço de catálogo
		// --------------------------------------------------
		service, err := tx.GetService(ctx, in.ServiceID)
		if err != nil {
			return httperr.MapNotFound(err, "service_not_found")
		}

		// --------------------------------------------------
		// 3️⃣ Colaborador (opcional)
		// --------------------------------------------------
		if in.CollaboratorID != nil {
			if err := assertCollaborator(ctx, tx, *in.CollaboratorID); err != nil {
				return err
			}
		}

		// --------------------------------------------------
		// 4️⃣ Preço
		// --------------------------------------------------
		price := service.Price
		if in.Price != nil {
			if err := assertPrice(*in.Price); err != nil {
				return err
			}
			price = *in.Price
		}

		ss := &models.ScheduledService{
			AppointmentID:  in.AppointmentID,
			ServiceID:      service.ID,
			CollaboratorID: in.CollaboratorID,
			Price:          price,
			Status:         string(ssdomain.InitialStatus()),
		}
		if err := tx.CreateScheduledService(ctx, ss); err != nil {
			return err
		}

		out, err = tx.GetScheduledService(ctx, ss.ID)
		return err
	})
	if err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		Action:   "scheduled_service_created",
		Entity:   "scheduled_service",
		EntityID: &out.ID,
		Metadata: map[string]any{"appointment_id": out.AppointmentID},
	})

	return out, nil
}

func assertCollaborator(ctx context.Context, repo domain.Repository, id uint) error {
	collaborator, err := repo.GetCollaborator(ctx, id)
	if err != nil {
		return httperr.MapNotFound(err, "collaborator_not_found")
	}
	return ssdomain.AssertAssignable(collaborator)
}

func assertPrice(p decimal.Decimal) error {
	if p.IsNegative() {
		return httperr.ErrInvalidFormat("invalid_price")
	}
	return nil
}
