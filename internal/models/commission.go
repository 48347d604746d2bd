package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type Commission struct {
	ID uint `gorm:"primaryKey" json:"id"`

	CollaboratorID uint         `gorm:"not null;index" json:"collaborator_id"`
	Collaborator   Collaborator `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"-"`

	// no máximo uma comissão por serviço agendado
	ScheduledServiceID uint             `gorm:"not null;uniqueIndex" json:"scheduled_service_id"`
	ScheduledService   ScheduledService `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	Amount     decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"amount"`
	Percentage decimal.Decimal `gorm:"type:decimal(5,2);not null" json:"percentage"`

	Paid   bool       `gorm:"default:false;index" json:"paid"`
	PaidAt *time.Time `json:"paid_at"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
