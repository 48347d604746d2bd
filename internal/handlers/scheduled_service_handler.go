package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
	"github.com/BruksfildServices01/salon-scheduler/internal/httpresp"
	ucCommission "github.com/BruksfildServices01/salon-scheduler/internal/usecase/commission"
	ucScheduled "github.com/BruksfildServices01/salon-scheduler/internal/usecase/scheduledservice"
)

type ScheduledServiceHandler struct {
	update    *ucScheduled.UpdateScheduledService
	complete  *ucScheduled.CompleteScheduledService
	cancel    *ucScheduled.CancelScheduledService
	calculate *ucCommission.CalculateCommission
}

func NewScheduledServiceHandler(
	update *ucScheduled.UpdateScheduledService,
	complete *ucScheduled.CompleteScheduledService,
	cancel *ucScheduled.CancelScheduledService,
	calculate *ucCommission.CalculateCommission,
) *ScheduledServiceHandler {
	return &ScheduledServiceHandler{
		update:    update,
		complete:  complete,
		cancel:    cancel,
		calculate: calculate,
	}
}

// collaborator_id: null não altera; clear_collaborator remove.
type UpdateScheduledServiceRequest struct {
	ServiceID         *uint            `json:"service_id,omitempty"`
	CollaboratorID    *uint            `json:"collaborator_id,omitempty"`
	ClearCollaborator bool             `json:"clear_collaborator"`
	Price             *decimal.Decimal `json:"price,omitempty"`
}

func (h *ScheduledServiceHandler) Update(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	var req UpdateScheduledServiceRequest
	if !bindJSON(c, &req) {
		return
	}

	ss, err := h.update.Execute(c.Request.Context(), id, ucScheduled.UpdateScheduledServiceInput{
		ServiceID:         req.ServiceID,
		CollaboratorID:    req.CollaboratorID,
		ClearCollaborator: req.ClearCollaborator,
		Price:             req.Price,
	})
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.OK(c, ss)
}

func (h *ScheduledServiceHandler) Complete(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	ss, err := h.complete.Execute(c.Request.Context(), id)
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.OK(c, ss)
}

func (h *ScheduledServiceHandler) Cancel(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	ss, err := h.cancel.Execute(c.Request.Context(), id)
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.OK(c, ss)
}

func (h *ScheduledServiceHandler) CalculateCommission(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	commission, err := h.calculate.Execute(c.Request.Context(), id)
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.OK(c, commission)
}
