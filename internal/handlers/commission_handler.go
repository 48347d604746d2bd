package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
	"github.com/BruksfildServices01/salon-scheduler/internal/httpresp"
	ucCommission "github.com/BruksfildServices01/salon-scheduler/internal/usecase/commission"
)

type CommissionHandler struct {
	list    *ucCommission.ListCommissions
	setPaid *ucCommission.SetCommissionsPaid
}

func NewCommissionHandler(
	list *ucCommission.ListCommissions,
	setPaid *ucCommission.SetCommissionsPaid,
) *CommissionHandler {
	return &CommissionHandler{
		list:    list,
		setPaid: setPaid,
	}
}

type CommissionIDsRequest struct {
	IDs []uint `json:"ids"`
}

func (h *CommissionHandler) List(c *gin.Context) {
	var in ucCommission.ListCommissionsInput

	if s := c.Query("collaborator_id"); s != "" {
		id, err := strconv.ParseUint(s, 10, 64)
		if err != nil {
			httperr.BadRequest(c, "invalid_collaborator_id", "Colaborador inválido.")
			return
		}
		collaboratorID := uint(id)
		in.CollaboratorID = &collaboratorID
	}

	if s := c.Query("paid"); s != "" {
		paid, err := strconv.ParseBool(s)
		if err != nil {
			httperr.BadRequest(c, "invalid_paid", "Filtro paid inválido.")
			return
		}
		in.Paid = &paid
	}

	if c.Query("year") != "" || c.Query("month") != "" {
		year, month, ok := yearMonth(c)
		if !ok {
			return
		}
		in.Year, in.Month = year, month
	}

	commissions, err := h.list.Execute(c.Request.Context(), in)
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.List(c, commissions)
}

func (h *CommissionHandler) MarkPaid(c *gin.Context) {
	h.mark(c, true)
}

func (h *CommissionHandler) MarkUnpaid(c *gin.Context) {
	h.mark(c, false)
}

func (h *CommissionHandler) mark(c *gin.Context, paid bool) {
	var req CommissionIDsRequest
	if !bindJSON(c, &req) {
		return
	}

	commissions, err := h.setPaid.Execute(c.Request.Context(), req.IDs, paid)
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.List(c, commissions)
}
