package appointment

import (
	"context"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/BruksfildServices01/salon-scheduler/internal/audit"
	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
	"github.com/BruksfildServices01/salon-scheduler/internal/timezone"
	ucScheduled "github.com/BruksfildServices01/salon-scheduler/internal/usecase/scheduledservice"
)

// ======================================================
// INPUT
// ======================================================

type LineItemInput struct {
	ServiceID      uint
	CollaboratorID *uint
	Price          *decimal.Decimal
}

type CreateAppointmentInput struct {
	ClientName  string
	ClientPhone string

	Date      string
	StartTime string
	EndTime   string

	Observations *string

	Services []LineItemInput
}

// ======================================================
// USE CASE
// ======================================================

type CreateAppointment struct {
	repo          domain.Repository
	tz            *timezone.Normalizer
	createService *ucScheduled.CreateScheduledService
	audit         *audit.Dispatcher
}

func NewCreateAppointment(
	repo domain.Repository,
	tz *timezone.Normalizer,
	createService *ucScheduled.CreateScheduledService,
	audit *audit.Dispatcher,
) *CreateAppointment {
	return &CreateAppointment{
		repo:          repo,
		tz:            tz,
		createService: createService,
		audit:         audit,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateAppointment) Execute(
	ctx context.Context,
	in CreateAppointmentInput,
) (*models.Appointment, error) {

	// --------------------------------------------------
	// 1️⃣ Validações sem I/O
	// --------------------------------------------------
	if len(in.Services) == 0 {
		return nil, httperr.ErrEmptyCollection("no_services")
	}

	if err := domain.ValidateTimeRange(in.StartTime, in.EndTime); err != nil {
		return nil, err
	}

	date, err := uc.tz.ParseCivilDate(in.Date)
	if err != nil {
		return nil, err
	}

	clientName := strings.TrimSpace(in.ClientName)
	if clientName == "" {
		return nil, httperr.ErrInvalidFormat("invalid_client_name")
	}

	var created *models.Appointment

	err = uc.repo.Transaction(ctx, func(tx domain.Repository) error {

		// --------------------------------------------------
		// 2️⃣ Agendamento (status centralizado)
		// --------------------------------------------------
		ap := &models.Appointment{
			ClientName:   clientName,
			ClientPhone:  strings.TrimSpace(in.ClientPhone),
			Date:         date,
			StartTime:    in.StartTime,
			EndTime:      in.EndTime,
			Status:       string(domain.InitialStatus()),
			Observations: domain.NormalizeObservations(in.Observations),
		}
		if err := tx.CreateAppointment(ctx, ap); err != nil {
			return err
		}

		// --------------------------------------------------
		// 3️⃣ Linhas (serviço inexistente desfaz tudo)
		// --------------------------------------------------
		createService := uc.createService.WithRepository(tx)
		for _, item := range in.Services {
			if _, err := createService.Execute(ctx, ucScheduled.CreateScheduledServiceInput{
				AppointmentID:  ap.ID,
				ServiceID:      item.ServiceID,
				CollaboratorID: item.CollaboratorID,
				Price:          item.Price,
			}); err != nil {
				return err
			}
		}

		var err error
		created, err = tx.GetAppointment(ctx, ap.ID)
		return err
	})
	if err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 4️⃣ Auditoria
	// --------------------------------------------------
	uc.audit.Dispatch(audit.Event{
		Action:   "appointment_created",
		Entity:   "appointment",
		EntityID: &created.ID,
		Metadata: map[string]any{"services": len(created.ScheduledServices)},
	})

	return created, nil
}
