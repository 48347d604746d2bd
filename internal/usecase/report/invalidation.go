package report

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

// InvalidatingRepository descarta os relatórios mensais em cache
// depois de cada escrita confirmada no repositório.
type InvalidatingRepository struct {
	domain.Repository

	cache Cache

	// não nil dentro de uma transação; a invalidação espera o commit
	dirty *bool
}

// NewInvalidatingRepository devolve repo intacto quando não há cache.
func NewInvalidatingRepository(repo domain.Repository, cache Cache) domain.Repository {
	if cache == nil {
		return repo
	}
	return &InvalidatingRepository{Repository: repo, cache: cache}
}

func (r *InvalidatingRepository) Transaction(
	ctx context.Context,
	fn func(tx domain.Repository) error,
) error {

	if r.dirty != nil {
		return r.Repository.Transaction(ctx, func(tx domain.Repository) error {
			return fn(&InvalidatingRepository{Repository: tx, cache: r.cache, dirty: r.dirty})
		})
	}

	dirty := false
	err := r.Repository.Transaction(ctx, func(tx domain.Repository) error {
		return fn(&InvalidatingRepository{Repository: tx, cache: r.cache, dirty: &dirty})
	})
	if err == nil && dirty {
		r.invalidate(ctx)
	}
	return err
}

func (r *InvalidatingRepository) touched(ctx context.Context, err error) error {
	if err != nil {
		return err
	}
	if r.dirty != nil {
		*r.dirty = true
		return nil
	}
	r.invalidate(ctx)
	return nil
}

func (r *InvalidatingRepository) invalidate(ctx context.Context) {
	if err := r.cache.DeletePrefix(ctx, cacheKeyPrefix); err != nil {
		logrus.WithError(err).WithField("prefix", cacheKeyPrefix).Warn("report cache invalidation failed")
	}
}

// -------- Writes --------

func (r *InvalidatingRepository) CreateAppointment(ctx context.Context, ap *models.Appointment) error {
	return r.touched(ctx, r.Repository.CreateAppointment(ctx, ap))
}

func (r *InvalidatingRepository) UpdateAppointment(ctx context.Context, ap *models.Appointment) error {
	return r.touched(ctx, r.Repository.UpdateAppointment(ctx, ap))
}

func (r *InvalidatingRepository) CreateScheduledService(ctx context.Context, ss *models.ScheduledService) error {
	return r.touched(ctx, r.Repository.CreateScheduledService(ctx, ss))
}

func (r *InvalidatingRepository) UpdateScheduledService(ctx context.Context, ss *models.ScheduledService) error {
	return r.touched(ctx, r.Repository.UpdateScheduledService(ctx, ss))
}

func (r *InvalidatingRepository) CreateCommission(ctx context.Context, c *models.Commission) error {
	return r.touched(ctx, r.Repository.CreateCommission(ctx, c))
}

func (r *InvalidatingRepository) UpdateCommission(ctx context.Context, c *models.Commission) error {
	return r.touched(ctx, r.Repository.UpdateCommission(ctx, c))
}

func (r *InvalidatingRepository) SetCommissionsPaid(
	ctx context.Context,
	ids []uint,
	paid bool,
	paidAt *time.Time,
) error {
	return r.touched(ctx, r.Repository.SetCommissionsPaid(ctx, ids, paid, paidAt))
}
