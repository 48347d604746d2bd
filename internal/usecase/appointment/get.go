package appointment

import (
	"context"

	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
	"github.com/shopspring/decimal"
)

type GetAppointment struct {
	repo domain.Repository
}

func NewGetAppointment(repo domain.Repository) *GetAppointment {
	return &GetAppointment{repo: repo}
}

func (uc *GetAppointment) Execute(
	ctx context.Context,
	id uint,
) (*models.Appointment, error) {

	ap, err := uc.repo.GetAppointment(ctx, id)
	if err != nil {
		return nil, httperr.MapNotFound(err, "appointment_not_found")
	}
	return ap, nil
}

// ======================================================
// TOTAL
// ======================================================

type GetAppointmentTotalPrice struct {
	repo domain.Repository
}

func NewGetAppointmentTotalPrice(repo domain.Repository) *GetAppointmentTotalPrice {
	return &GetAppointmentTotalPrice{repo: repo}
}

// Execute soma o preço das linhas não canceladas.
func (uc *GetAppointmentTotalPrice) Execute(
	ctx context.Context,
	id uint,
) (decimal.Decimal, error) {

	ap, err := uc.repo.GetAppointment(ctx, id)
	if err != nil {
		return decimal.Zero, httperr.MapNotFound(err, "appointment_not_found")
	}
	return domain.TotalPrice(ap), nil
}
