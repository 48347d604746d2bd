package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Serviço agendado (linha de um agendamento)
type ScheduledService struct {
	ID uint `gorm:"primaryKey" json:"id"`

	AppointmentID uint `gorm:"not null;index" json:"appointment_id"`

	ServiceID uint    `gorm:"not null;index" json:"service_id"`
	Service   Service `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"service"`

	CollaboratorID *uint         `gorm:"index" json:"collaborator_id"`
	Collaborator   *Collaborator `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"collaborator,omitempty"`

	// preço cobrado (pode divergir do preço de catálogo)
	Price decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"price"`

	Status string `gorm:"size:20;default:'pending';index" json:"status"`

	CompletedAt *time.Time `json:"completed_at"`
	CancelledAt *time.Time `json:"cancelled_at"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
