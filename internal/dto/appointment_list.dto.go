package dto

import "github.com/shopspring/decimal"

type AppointmentListDTO struct {
	ID         uint            `json:"id"`
	Date       string          `json:"date"`
	StartTime  string          `json:"start_time"`
	EndTime    string          `json:"end_time"`
	Status     string          `json:"status"`
	ClientName string          `json:"client_name"`
	Services   int             `json:"services"`
	Total      decimal.Decimal `json:"total"`
}
