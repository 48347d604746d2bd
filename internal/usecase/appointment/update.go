package appointment

import (
	"context"
	"strings"

	"github.com/BruksfildServices01/salon-scheduler/internal/audit"
	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
	"github.com/BruksfildServices01/salon-scheduler/internal/timezone"
)

// Campos nil não são alterados.
type UpdateAppointmentInput struct {
	ClientName   *string
	ClientPhone  *string
	Date         *string
	StartTime    *string
	EndTime      *string
	Observations *string
}

type UpdateAppointment struct {
	repo  domain.Repository
	tz    *timezone.Normalizer
	audit *audit.Dispatcher
}

func NewUpdateAppointment(
	repo domain.Repository,
	tz *timezone.Normalizer,
	audit *audit.Dispatcher,
) *UpdateAppointment {
	return &UpdateAppointment{
		repo:  repo,
		tz:    tz,
		audit: audit,
	}
}

func (uc *UpdateAppointment) Execute(
	ctx context.Context,
	id uint,
	in UpdateAppointmentInput,
) (*models.Appointment, error) {

	var out *models.Appointment

	err := uc.repo.Transaction(ctx, func(tx domain.Repository) error {
		ap, err := tx.GetAppointmentForUpdate(ctx, id)
		if err != nil {
			return httperr.MapNotFound(err, "appointment_not_found")
		}
		if err := domain.CanEdit(domain.Status(ap.Status)); err != nil {
			return err
		}

		// horário efetivo = patch ou valor atual
		start, end := ap.StartTime, ap.EndTime
		if in.StartTime != nil {
			start = *in.StartTime
		}
		if in.EndTime != nil {
			end = *in.EndTime
		}
		if err := domain.ValidateTimeRange(start, end); err != nil {
			return err
		}
		ap.StartTime, ap.EndTime = start, end

		if in.Date != nil {
			date, err := uc.tz.ParseCivilDate(*in.Date)
			if err != nil {
				return err
			}
			ap.Date = date
		}

		if in.ClientName != nil {
			name := strings.TrimSpace(*in.ClientName)
			if name == "" {
				return httperr.ErrInvalidFormat("invalid_client_name")
			}
			ap.ClientName = name
		}
		if in.ClientPhone != nil {
			ap.ClientPhone = strings.TrimSpace(*in.ClientPhone)
		}
		if in.Observations != nil {
			ap.Observations = domain.NormalizeObservations(in.Observations)
		}

		if err := tx.UpdateAppointment(ctx, ap); err != nil {
			return err
		}

		out, err = tx.GetAppointment(ctx, ap.ID)
		return err
	})
	if err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		Action:   "appointment_updated",
		Entity:   "appointment",
		EntityID: &out.ID,
	})

	return out, nil
}
