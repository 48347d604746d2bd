package commission

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/salon-scheduler/internal/audit"
	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/salon-scheduler/internal/domain/commission"
	"github.com/BruksfildServices01/salon-scheduler/internal/domain/scheduledservice"
	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

type CalculateCommission struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewCalculateCommission(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *CalculateCommission {
	return &CalculateCommission{
		repo:  repo,
		audit: audit,
	}
}

// WithRepository devolve uma cópia ligada a outra unidade de trabalho.
// A cópia não emite auditoria: quem abriu a transação é o dono do evento.
func (uc *CalculateCommission) WithRepository(repo domain.Repository) *CalculateCommission {
	return &CalculateCommission{repo: repo}
}

// Execute recalcula (ou cria) a comissão do serviço agendado.
// Uma comissão existente é reaproveitada: valor e percentual são
// sobrescritos e paid permanece como estava.
func (uc *CalculateCommission) Execute(
	ctx context.Context,
	scheduledServiceID uint,
) (*models.Commission, error) {

	var out *models.Commission
	err := uc.repo.Transaction(ctx, func(tx domain.Repository) error {
		c, err := calculate(ctx, tx, scheduledServiceID, true)
		out = c
		return err
	})
	if err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		Action:   "commission_calculated",
		Entity:   "commission",
		EntityID: &out.ID,
		Metadata: map[string]any{
			"scheduled_service_id": scheduledServiceID,
			"amount":               out.Amount.StringFixed(2),
		},
	})

	return out, nil
}

// Ensure retorna a comissão existente sem alterá-la, ou cria uma nova.
func (uc *CalculateCommission) Ensure(
	ctx context.Context,
	scheduledServiceID uint,
) (*models.Commission, error) {

	var out *models.Commission
	err := uc.repo.Transaction(ctx, func(tx domain.Repository) error {
		c, err := calculate(ctx, tx, scheduledServiceID, false)
		out = c
		return err
	})
	return out, err
}

func calculate(
	ctx context.Context,
	repo domain.Repository,
	scheduledServiceID uint,
	recalculate bool,
) (*models.Commission, error) {

	ss, err := repo.GetScheduledService(ctx, scheduledServiceID)
	if err != nil {
		return nil, httperr.MapNotFound(err, "scheduled_service_not_found")
	}

	if scheduledservice.Status(ss.Status) != scheduledservice.StatusCompleted {
		return nil, httperr.ErrInvalidState("scheduled_service_not_completed")
	}
	if ss.CollaboratorID == nil {
		return nil, httperr.ErrBusiness(httperr.KindMissingCollaborator, "missing_collaborator")
	}

	existing, err := repo.GetCommissionByScheduledService(ctx, ss.ID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	if existing != nil && !recalculate {
		return existing, nil
	}

	collaborator, err := repo.GetCollaborator(ctx, *ss.CollaboratorID)
	if err != nil {
		return nil, httperr.MapNotFound(err, "collaborator_not_found")
	}

	c := commission.Apply(existing, ss, collaborator)
	if existing != nil {
		if err := repo.UpdateCommission(ctx, c); err != nil {
			return nil, err
		}
		return c, nil
	}

	// savepoint: uma inserção concorrente não pode abortar a transação externa
	err = repo.Transaction(ctx, func(tx domain.Repository) error {
		return tx.CreateCommission(ctx, c)
	})
	if err == nil {
		return c, nil
	}
	if !httperr.IsUniqueViolation(err) {
		return nil, err
	}

	existing, err = repo.GetCommissionByScheduledService(ctx, ss.ID)
	if err != nil {
		return nil, err
	}
	if !recalculate {
		return existing, nil
	}

	c = commission.Apply(existing, ss, collaborator)
	if err := repo.UpdateCommission(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}
