package appointment

import (
	"context"

	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
	"github.com/BruksfildServices01/salon-scheduler/internal/timezone"
)

type ListAppointmentsByDate struct {
	repo domain.Repository
	tz   *timezone.Normalizer
}

func NewListAppointmentsByDate(
	repo domain.Repository,
	tz *timezone.Normalizer,
) *ListAppointmentsByDate {
	return &ListAppointmentsByDate{
		repo: repo,
		tz:   tz,
	}
}

// Execute lista os agendamentos do dia civil ordenados pelo início.
func (uc *ListAppointmentsByDate) Execute(
	ctx context.Context,
	date string,
) ([]models.Appointment, error) {

	day, err := uc.tz.ParseCivilDate(date)
	if err != nil {
		return nil, err
	}

	return uc.repo.ListAppointmentsForPeriod(
		ctx,
		uc.tz.StartOfDay(day),
		uc.tz.EndOfDay(day),
	)
}
