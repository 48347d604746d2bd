package commission

import (
	"context"

	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
	"github.com/BruksfildServices01/salon-scheduler/internal/timezone"
)

type ListCommissionsInput struct {
	CollaboratorID *uint
	Paid           *bool

	// Year/Month filtram pela data do agendamento; ambos ou nenhum.
	Year  int
	Month int
}

type ListCommissions struct {
	repo domain.Repository
	tz   *timezone.Normalizer
}

func NewListCommissions(
	repo domain.Repository,
	tz *timezone.Normalizer,
) *ListCommissions {
	return &ListCommissions{
		repo: repo,
		tz:   tz,
	}
}

func (uc *ListCommissions) Execute(
	ctx context.Context,
	in ListCommissionsInput,
) ([]models.Commission, error) {

	filter := domain.CommissionFilter{
		CollaboratorID: in.CollaboratorID,
		Paid:           in.Paid,
	}

	if in.Year != 0 || in.Month != 0 {
		start, end, err := uc.tz.MonthRange(in.Year, in.Month)
		if err != nil {
			return nil, err
		}
		filter.Start = &start
		filter.End = &end
	}

	return uc.repo.ListCommissions(ctx, filter)
}
