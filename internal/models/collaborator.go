package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Colaborador do salão (profissional que executa os serviços)
type Collaborator struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name      string `gorm:"size:100;not null" json:"name"`
	Phone     string `gorm:"size:20" json:"phone"`
	Email     string `gorm:"size:100" json:"email"`
	Specialty string `gorm:"size:100" json:"specialty"`

	CommissionPercentage decimal.Decimal `gorm:"type:decimal(5,2);not null;default:0" json:"commission_percentage"`
	Active               bool            `gorm:"default:true" json:"active"`

	Services []Service `gorm:"many2many:collaborator_services;" json:"services,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
