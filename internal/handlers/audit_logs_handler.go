package handlers

import (
	"context"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/salon-scheduler/internal/audit"
	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
	"github.com/BruksfildServices01/salon-scheduler/internal/httpresp"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
	"github.com/BruksfildServices01/salon-scheduler/internal/timezone"
)

type AuditLister interface {
	List(ctx context.Context, q audit.Query) ([]models.AuditLog, int64, error)
}

type AuditLogsHandler struct {
	logs AuditLister
	tz   *timezone.Normalizer
}

func NewAuditLogsHandler(logs AuditLister, tz *timezone.Normalizer) *AuditLogsHandler {
	return &AuditLogsHandler{logs: logs, tz: tz}
}

// List aceita action, entity, entity_id, from/to (YYYY-MM-DD), page e limit.
func (h *AuditLogsHandler) List(c *gin.Context) {
	q := audit.Query{
		Action: c.Query("action"),
		Entity: c.Query("entity"),
	}
	q.Page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
	q.Limit, _ = strconv.Atoi(c.DefaultQuery("limit", "50"))

	if s := c.Query("entity_id"); s != "" {
		id, err := strconv.ParseUint(s, 10, 64)
		if err != nil {
			httperr.BadRequest(c, "invalid_entity_id", "Entidade inválida.")
			return
		}
		entityID := uint(id)
		q.EntityID = &entityID
	}

	if s := c.Query("from"); s != "" {
		from, err := h.tz.ParseCivilDate(s)
		if err != nil {
			httperr.FromError(c, err)
			return
		}
		q.From = &from
	}

	if s := c.Query("to"); s != "" {
		to, err := h.tz.ParseCivilDate(s)
		if err != nil {
			httperr.FromError(c, err)
			return
		}
		end := h.tz.EndOfDay(to)
		q.To = &end
	}

	logs, total, err := h.logs.List(c.Request.Context(), q)
	if err != nil {
		httperr.Internal(c, "audit_list_failed", "Erro ao listar logs.")
		return
	}

	q.Normalize()
	httpresp.Page(c, logs, q.Page, q.Limit, total)
}
