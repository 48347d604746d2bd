package commission

import (
	"context"
	"time"

	"github.com/BruksfildServices01/salon-scheduler/internal/audit"
	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
	"github.com/BruksfildServices01/salon-scheduler/internal/timezone"
)

type SetCommissionsPaid struct {
	repo  domain.Repository
	tz    *timezone.Normalizer
	audit *audit.Dispatcher
}

func NewSetCommissionsPaid(
	repo domain.Repository,
	tz *timezone.Normalizer,
	audit *audit.Dispatcher,
) *SetCommissionsPaid {
	return &SetCommissionsPaid{
		repo:  repo,
		tz:    tz,
		audit: audit,
	}
}

// Execute marca (ou desmarca) todas as comissões como pagas.
// Se algum id não existir nada é alterado.
func (uc *SetCommissionsPaid) Execute(
	ctx context.Context,
	ids []uint,
	paid bool,
) ([]models.Commission, error) {

	ids = uniqueIDs(ids)
	if len(ids) == 0 {
		return nil, httperr.ErrEmptyCollection("no_commission_ids")
	}

	var out []models.Commission

	err := uc.repo.Transaction(ctx, func(tx domain.Repository) error {
		found, err := tx.FindCommissionsByIDs(ctx, ids)
		if err != nil {
			return err
		}
		if len(found) != len(ids) {
			return httperr.ErrBusiness(httperr.KindBatchPartialMismatch, "commissions_not_found")
		}

		var paidAt *time.Time
		if paid {
			now := uc.tz.Now()
			paidAt = &now
		}

		if err := tx.SetCommissionsPaid(ctx, ids, paid, paidAt); err != nil {
			return err
		}

		out, err = tx.FindCommissionsByIDs(ctx, ids)
		return err
	})
	if err != nil {
		return nil, err
	}

	action := "commissions_marked_unpaid"
	if paid {
		action = "commissions_marked_paid"
	}
	uc.audit.Dispatch(audit.Event{
		Action:   action,
		Entity:   "commission",
		Metadata: map[string]any{"ids": ids},
	})

	return out, nil
}

func uniqueIDs(ids []uint) []uint {
	seen := make(map[uint]struct{}, len(ids))
	out := make([]uint, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
