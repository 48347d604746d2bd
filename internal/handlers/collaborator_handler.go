package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/salon-scheduler/internal/domain/commission"
	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

type CollaboratorHandler struct {
	db *gorm.DB
}

func NewCollaboratorHandler(db *gorm.DB) *CollaboratorHandler {
	return &CollaboratorHandler{db: db}
}

// --------- Requests ---------

type CreateCollaboratorRequest struct {
	Name                 string          `json:"name" binding:"required"`
	Phone                string          `json:"phone"`
	Email                string          `json:"email" binding:"omitempty,email"`
	Specialty            string          `json:"specialty"`
	CommissionPercentage decimal.Decimal `json:"commission_percentage"`
	ServiceIDs           []uint          `json:"service_ids"`
}

type UpdateCollaboratorRequest struct {
	Name                 *string          `json:"name,omitempty"`
	Phone                *string          `json:"phone,omitempty"`
	Email                *string          `json:"email,omitempty" binding:"omitempty,email"`
	Specialty            *string          `json:"specialty,omitempty"`
	CommissionPercentage *decimal.Decimal `json:"commission_percentage,omitempty"`
	Active               *bool            `json:"active,omitempty"`
	ServiceIDs           *[]uint          `json:"service_ids,omitempty"`
}

// --------- Helpers ---------

// loadServices garante que todos os ids existem no catálogo.
func loadServices(tx *gorm.DB, ids []uint) ([]models.Service, error) {
	if len(ids) == 0 {
		return []models.Service{}, nil
	}

	var services []models.Service
	if err := tx.Where("id IN ?", ids).Find(&services).Error; err != nil {
		return nil, err
	}

	unique := map[uint]struct{}{}
	for _, id := range ids {
		unique[id] = struct{}{}
	}
	if len(services) != len(unique) {
		return nil, httperr.ErrBusiness(httperr.KindBatchPartialMismatch, "services_not_found")
	}
	return services, nil
}

// --------- Handlers ---------

func (h *CollaboratorHandler) List(c *gin.Context) {
	activeStr := strings.TrimSpace(c.Query("active"))

	q := h.db.Preload("Services")
	switch activeStr {
	case "true":
		q = q.Where("active = ?", true)
	case "false":
		q = q.Where("active = ?", false)
	}

	var collaborators []models.Collaborator
	if err := q.Order("id ASC").Find(&collaborators).Error; err != nil {
		httperr.Internal(c, "failed_to_list_collaborators", "Erro ao listar colaboradores.")
		return
	}

	c.JSON(http.StatusOK, collaborators)
}

func (h *CollaboratorHandler) Get(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	var collaborator models.Collaborator
	if err := h.db.Preload("Services").First(&collaborator, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.NotFound(c, "collaborator_not_found", "Colaborador não encontrado.")
			return
		}
		httperr.Internal(c, "failed_to_get_collaborator", "Erro ao buscar colaborador.")
		return
	}

	c.JSON(http.StatusOK, collaborator)
}

func (h *CollaboratorHandler) Create(c *gin.Context) {
	var req CreateCollaboratorRequest
	if !bindJSON(c, &req) {
		return
	}

	if err := commission.ValidatePercentage(req.CommissionPercentage); err != nil {
		httperr.FromError(c, err)
		return
	}

	collaborator := models.Collaborator{
		Name:                 strings.TrimSpace(req.Name),
		Phone:                strings.TrimSpace(req.Phone),
		Email:                strings.ToLower(strings.TrimSpace(req.Email)),
		Specialty:            req.Specialty,
		CommissionPercentage: req.CommissionPercentage,
		Active:               true,
	}

	err := h.db.Transaction(func(tx *gorm.DB) error {
		services, err := loadServices(tx, req.ServiceIDs)
		if err != nil {
			return err
		}
		collaborator.Services = services
		return tx.Create(&collaborator).Error
	})
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	c.JSON(http.StatusCreated, collaborator)
}

func (h *CollaboratorHandler) Update(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	var req UpdateCollaboratorRequest
	if !bindJSON(c, &req) {
		return
	}

	if req.CommissionPercentage != nil {
		if err := commission.ValidatePercentage(*req.CommissionPercentage); err != nil {
			httperr.FromError(c, err)
			return
		}
	}

	var collaborator models.Collaborator

	err := h.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&collaborator, id).Error; err != nil {
			return httperr.MapNotFound(err, "collaborator_not_found")
		}

		if req.Name != nil {
			collaborator.Name = strings.TrimSpace(*req.Name)
		}
		if req.Phone != nil {
			collaborator.Phone = strings.TrimSpace(*req.Phone)
		}
		if req.Email != nil {
			collaborator.Email = strings.ToLower(strings.TrimSpace(*req.Email))
		}
		if req.Specialty != nil {
			collaborator.Specialty = *req.Specialty
		}
		if req.CommissionPercentage != nil {
			// comissões já calculadas guardam o percentual da época
			collaborator.CommissionPercentage = *req.CommissionPercentage
		}
		if req.Active != nil {
			collaborator.Active = *req.Active
		}

		if err := tx.Omit("Services").Save(&collaborator).Error; err != nil {
			return err
		}

		if req.ServiceIDs != nil {
			services, err := loadServices(tx, *req.ServiceIDs)
			if err != nil {
				return err
			}
			if err := tx.Model(&collaborator).Association("Services").Replace(services); err != nil {
				return err
			}
		}

		return tx.Preload("Services").First(&collaborator, id).Error
	})
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	c.JSON(http.StatusOK, collaborator)
}
