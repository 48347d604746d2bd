package repository

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

type SalonGormRepository struct {
	db *gorm.DB
}

func NewSalonGormRepository(db *gorm.DB) *SalonGormRepository {
	return &SalonGormRepository{db: db}
}

// --------------------------------------------------
// Unit of work
// --------------------------------------------------

// Transaction chamado dentro de outra transação vira savepoint.
func (r *SalonGormRepository) Transaction(
	ctx context.Context,
	fn func(tx domain.Repository) error,
) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&SalonGormRepository{db: tx})
	})
}

// --------------------------------------------------
// Catalog
// --------------------------------------------------

func (r *SalonGormRepository) GetService(
	ctx context.Context,
	id uint,
) (*models.Service, error) {

	var service models.Service
	if err := r.db.WithContext(ctx).First(&service, id).Error; err != nil {
		return nil, err
	}
	return &service, nil
}

func (r *SalonGormRepository) GetCollaborator(
	ctx context.Context,
	id uint,
) (*models.Collaborator, error) {

	var collaborator models.Collaborator
	if err := r.db.WithContext(ctx).First(&collaborator, id).Error; err != nil {
		return nil, err
	}
	return &collaborator, nil
}

// --------------------------------------------------
// Appointment
// --------------------------------------------------

func withLines(q *gorm.DB) *gorm.DB {
	return q.
		Preload("ScheduledServices", func(db *gorm.DB) *gorm.DB {
			return db.Order("scheduled_services.id ASC")
		}).
		Preload("ScheduledServices.Service").
		Preload("ScheduledServices.Collaborator")
}

func (r *SalonGormRepository) CreateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(ap).Error
}

func (r *SalonGormRepository) GetAppointment(
	ctx context.Context,
	id uint,
) (*models.Appointment, error) {

	var ap models.Appointment
	if err := withLines(r.db.WithContext(ctx)).First(&ap, id).Error; err != nil {
		return nil, err
	}
	return &ap, nil
}

func (r *SalonGormRepository) GetAppointmentForUpdate(
	ctx context.Context,
	id uint,
) (*models.Appointment, error) {

	var ap models.Appointment
	if err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&ap, id).Error; err != nil {
		return nil, err
	}

	lines, err := r.ListScheduledServicesByAppointment(ctx, ap.ID)
	if err != nil {
		return nil, err
	}
	ap.ScheduledServices = lines

	return &ap, nil
}

func (r *SalonGormRepository) UpdateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Save(ap).Error
}

func (r *SalonGormRepository) ListAppointmentsForPeriod(
	ctx context.Context,
	start time.Time,
	end time.Time,
) ([]models.Appointment, error) {

	var apps []models.Appointment

	err := withLines(r.db.WithContext(ctx)).
		Where("date >= ? AND date <= ?", start, end).
		Order("date ASC").
		Order("start_time ASC").
		Order("id ASC").
		Find(&apps).Error

	if err != nil {
		return nil, err
	}

	return apps, nil
}

// --------------------------------------------------
// Scheduled service
// --------------------------------------------------

func (r *SalonGormRepository) CreateScheduledService(
	ctx context.Context,
	ss *models.ScheduledService,
) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(ss).Error
}

func (r *SalonGormRepository) GetScheduledService(
	ctx context.Context,
	id uint,
) (*models.ScheduledService, error) {

	var ss models.ScheduledService
	if err := r.db.WithContext(ctx).
		Preload("Service").
		Preload("Collaborator").
		First(&ss, id).Error; err != nil {
		return nil, err
	}
	return &ss, nil
}

func (r *SalonGormRepository) UpdateScheduledService(
	ctx context.Context,
	ss *models.ScheduledService,
) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Save(ss).Error
}

func (r *SalonGormRepository) ListScheduledServicesByAppointment(
	ctx context.Context,
	appointmentID uint,
) ([]models.ScheduledService, error) {

	var lines []models.ScheduledService
	if err := r.db.WithContext(ctx).
		Preload("Service").
		Preload("Collaborator").
		Where("appointment_id = ?", appointmentID).
		Order("id ASC").
		Find(&lines).Error; err != nil {
		return nil, err
	}
	return lines, nil
}

func (r *SalonGormRepository) ListScheduledServicesForPeriod(
	ctx context.Context,
	start time.Time,
	end time.Time,
) ([]models.ScheduledService, error) {

	var lines []models.ScheduledService
	if err := r.db.WithContext(ctx).
		Select("scheduled_services.*").
		Joins("JOIN appointments ON appointments.id = scheduled_services.appointment_id").
		Where("appointments.date >= ? AND appointments.date <= ?", start, end).
		Order("scheduled_services.id ASC").
		Find(&lines).Error; err != nil {
		return nil, err
	}
	return lines, nil
}

// --------------------------------------------------
// Commission
// --------------------------------------------------

func (r *SalonGormRepository) GetCommissionByScheduledService(
	ctx context.Context,
	scheduledServiceID uint,
) (*models.Commission, error) {

	var c models.Commission
	if err := r.db.WithContext(ctx).
		Where("scheduled_service_id = ?", scheduledServiceID).
		First(&c).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *SalonGormRepository) CreateCommission(
	ctx context.Context,
	c *models.Commission,
) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(c).Error
}

func (r *SalonGormRepository) UpdateCommission(
	ctx context.Context,
	c *models.Commission,
) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Save(c).Error
}

func (r *SalonGormRepository) FindCommissionsByIDs(
	ctx context.Context,
	ids []uint,
) ([]models.Commission, error) {

	var list []models.Commission
	if len(ids) == 0 {
		return list, nil
	}
	if err := r.db.WithContext(ctx).
		Where("id IN ?", ids).
		Order("id ASC").
		Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

func (r *SalonGormRepository) SetCommissionsPaid(
	ctx context.Context,
	ids []uint,
	paid bool,
	paidAt *time.Time,
) error {
	return r.db.WithContext(ctx).
		Model(&models.Commission{}).
		Where("id IN ?", ids).
		Updates(map[string]interface{}{
			"paid":    paid,
			"paid_at": paidAt,
		}).Error
}

func (r *SalonGormRepository) ListCommissions(
	ctx context.Context,
	filter domain.CommissionFilter,
) ([]models.Commission, error) {

	q := r.db.WithContext(ctx).
		Model(&models.Commission{}).
		Select("commissions.*")

	if filter.CollaboratorID != nil {
		q = q.Where("commissions.collaborator_id = ?", *filter.CollaboratorID)
	}
	if filter.Paid != nil {
		q = q.Where("commissions.paid = ?", *filter.Paid)
	}
	if filter.Start != nil || filter.End != nil {
		q = q.
			Joins("JOIN scheduled_services ON scheduled_services.id = commissions.scheduled_service_id").
			Joins("JOIN appointments ON appointments.id = scheduled_services.appointment_id")
		if filter.Start != nil {
			q = q.Where("appointments.date >= ?", *filter.Start)
		}
		if filter.End != nil {
			q = q.Where("appointments.date <= ?", *filter.End)
		}
	}

	var list []models.Commission
	if err := q.Order("commissions.id ASC").Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

// Compile-time check
var _ domain.Repository = (*SalonGormRepository)(nil)
