package dto

import "github.com/shopspring/decimal"

type MonthlyReportDTO struct {
	Year  int `json:"year"`
	Month int `json:"month"`

	PeriodStart string `json:"period_start"`
	PeriodEnd   string `json:"period_end"`

	TotalScheduled       decimal.Decimal `json:"total_scheduled"`
	TotalPaid            decimal.Decimal `json:"total_paid"`
	TotalUnpaid          decimal.Decimal `json:"total_unpaid"`
	TotalCommissionsPaid decimal.Decimal `json:"total_commissions_paid"`
	NetAmount            decimal.Decimal `json:"net_amount"`
}
