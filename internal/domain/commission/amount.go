package commission

import (
	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// Amount = price × percentage / 100, arredondado em centavos (half-even).
func Amount(price, percentage decimal.Decimal) decimal.Decimal {
	return price.Mul(percentage).Div(hundred).RoundBank(2)
}

func ValidatePercentage(p decimal.Decimal) error {
	if p.IsNegative() || p.GreaterThan(hundred) {
		return httperr.ErrInvalidFormat("invalid_commission_percentage")
	}
	return nil
}

// Apply faz o upsert em memória: reaproveita a comissão existente
// (sobrescrevendo valor e percentual, sem tocar em paid) ou cria uma nova.
func Apply(
	existing *models.Commission,
	ss *models.ScheduledService,
	collaborator *models.Collaborator,
) *models.Commission {
	pct := collaborator.CommissionPercentage
	amount := Amount(ss.Price, pct)

	if existing != nil {
		existing.CollaboratorID = collaborator.ID
		existing.Amount = amount
		existing.Percentage = pct
		return existing
	}

	return &models.Commission{
		CollaboratorID:     collaborator.ID,
		ScheduledServiceID: ss.ID,
		Amount:             amount,
		Percentage:         pct,
		Paid:               false,
	}
}
