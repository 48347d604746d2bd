package appointment

import (
	"context"
	"time"

	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

// CommissionFilter restringe a listagem de comissões; campos nil não filtram.
// Start/End comparam a data do agendamento dono do serviço.
type CommissionFilter struct {
	CollaboratorID *uint
	Paid           *bool
	Start          *time.Time
	End            *time.Time
}

// Repository é a porta de persistência do núcleo de agendamentos.
// Registros ausentes retornam gorm.ErrRecordNotFound.
type Repository interface {
	// -------- Unit of work --------
	Transaction(
		ctx context.Context,
		fn func(tx Repository) error,
	) error

	// -------- Catalog --------
	GetService(
		ctx context.Context,
		id uint,
	) (*models.Service, error)

	GetCollaborator(
		ctx context.Context,
		id uint,
	) (*models.Collaborator, error)

	// -------- Appointment --------
	CreateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	// GetAppointment carrega as linhas (com serviço e colaborador).
	GetAppointment(
		ctx context.Context,
		id uint,
	) (*models.Appointment, error)

	// GetAppointmentForUpdate faz o mesmo travando a linha do agendamento.
	GetAppointmentForUpdate(
		ctx context.Context,
		id uint,
	) (*models.Appointment, error)

	UpdateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	ListAppointmentsForPeriod(
		ctx context.Context,
		start time.Time,
		end time.Time,
	) ([]models.Appointment, error)

	// -------- Scheduled service --------
	CreateScheduledService(
		ctx context.Context,
		ss *models.ScheduledService,
	) error

	GetScheduledService(
		ctx context.Context,
		id uint,
	) (*models.ScheduledService, error)

	UpdateScheduledService(
		ctx context.Context,
		ss *models.ScheduledService,
	) error

	ListScheduledServicesByAppointment(
		ctx context.Context,
		appointmentID uint,
	) ([]models.ScheduledService, error)

	ListScheduledServicesForPeriod(
		ctx context.Context,
		start time.Time,
		end time.Time,
	) ([]models.ScheduledService, error)

	// -------- Commission --------
	GetCommissionByScheduledService(
		ctx context.Context,
		scheduledServiceID uint,
	) (*models.Commission, error)

	CreateCommission(
		ctx context.Context,
		c *models.Commission,
	) error

	UpdateCommission(
		ctx context.Context,
		c *models.Commission,
	) error

	FindCommissionsByIDs(
		ctx context.Context,
		ids []uint,
	) ([]models.Commission, error)

	SetCommissionsPaid(
		ctx context.Context,
		ids []uint,
		paid bool,
		paidAt *time.Time,
	) error

	ListCommissions(
		ctx context.Context,
		filter CommissionFilter,
	) ([]models.Commission, error)
}
