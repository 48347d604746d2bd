package report

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/appointment"
	ssdomain "github.com/BruksfildServices01/salon-scheduler/internal/domain/scheduledservice"
	"github.com/BruksfildServices01/salon-scheduler/internal/dto"
	"github.com/BruksfildServices01/salon-scheduler/internal/timezone"
)

// Cache é opcional; falhas de cache nunca derrubam o relatório.
type Cache interface {
	Get(ctx context.Context, key string, dest any) (bool, error)
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
	DeletePrefix(ctx context.Context, prefix string) error
}

type GetMonthlyReport struct {
	repo  domain.Repository
	tz    *timezone.Normalizer
	cache Cache
	ttl   time.Duration
}

func NewGetMonthlyReport(
	repo domain.Repository,
	tz *timezone.Normalizer,
	cache Cache,
	ttl time.Duration,
) *GetMonthlyReport {
	return &GetMonthlyReport{
		repo:  repo,
		tz:    tz,
		cache: cache,
		ttl:   ttl,
	}
}

const cacheKeyPrefix = "report:monthly:"

func cacheKey(year, month int) string {
	return fmt.Sprintf("%s%04d-%02d", cacheKeyPrefix, year, month)
}

func (uc *GetMonthlyReport) Execute(
	ctx context.Context,
	year int,
	month int,
) (*dto.MonthlyReportDTO, error) {

	start, end, err := uc.tz.MonthRange(year, month)
	if err != nil {
		return nil, err
	}

	key := cacheKey(year, month)
	if uc.cache != nil {
		var cached dto.MonthlyReportDTO
		hit, err := uc.cache.Get(ctx, key, &cached)
		if err != nil {
			logrus.WithError(err).WithField("key", key).Warn("report cache read failed")
		}
		if hit {
			return &cached, nil
		}
	}

	// --------------------------------------------------
	// Serviços do período (data do agendamento)
	// --------------------------------------------------
	services, err := uc.repo.ListScheduledServicesForPeriod(ctx, start, end)
	if err != nil {
		return nil, err
	}

	scheduled, paid, unpaid := decimal.Zero, decimal.Zero, decimal.Zero
	for _, ss := range services {
		switch ssdomain.Status(ss.Status) {
		case ssdomain.StatusCompleted:
			scheduled = scheduled.Add(ss.Price)
			paid = paid.Add(ss.Price)
		case ssdomain.StatusPending:
			scheduled = scheduled.Add(ss.Price)
			unpaid = unpaid.Add(ss.Price)
		}
	}

	// --------------------------------------------------
	// Comissões pagas do período
	// --------------------------------------------------
	isPaid := true
	commissions, err := uc.repo.ListCommissions(ctx, domain.CommissionFilter{
		Paid:  &isPaid,
		Start: &start,
		End:   &end,
	})
	if err != nil {
		return nil, err
	}

	commissionsPaid := decimal.Zero
	for _, c := range commissions {
		commissionsPaid = commissionsPaid.Add(c.Amount)
	}

	out := &dto.MonthlyReportDTO{
		Year:                 year,
		Month:                month,
		PeriodStart:          uc.tz.FormatCivilDate(start),
		PeriodEnd:            uc.tz.FormatCivilDate(end),
		TotalScheduled:       scheduled,
		TotalPaid:            paid,
		TotalUnpaid:          unpaid,
		TotalCommissionsPaid: commissionsPaid,
		NetAmount:            paid.Sub(commissionsPaid),
	}

	if uc.cache != nil {
		if err := uc.cache.Set(ctx, key, out, uc.ttl); err != nil {
			logrus.WithError(err).WithField("key", key).Warn("report cache write failed")
		}
	}

	return out, nil
}
