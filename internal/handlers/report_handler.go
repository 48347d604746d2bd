package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
	"github.com/BruksfildServices01/salon-scheduler/internal/httpresp"
	ucReport "github.com/BruksfildServices01/salon-scheduler/internal/usecase/report"
)

type ReportHandler struct {
	monthly *ucReport.GetMonthlyReport
	export  *ucReport.ExportMonthlyReport
}

func NewReportHandler(
	monthly *ucReport.GetMonthlyReport,
	export *ucReport.ExportMonthlyReport,
) *ReportHandler {
	return &ReportHandler{
		monthly: monthly,
		export:  export,
	}
}

type ExportReportRequest struct {
	Year  int `json:"year" binding:"required"`
	Month int `json:"month" binding:"required"`
}

func (h *ReportHandler) Monthly(c *gin.Context) {
	year, month, ok := yearMonth(c)
	if !ok {
		return
	}

	rep, err := h.monthly.Execute(c.Request.Context(), year, month)
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.OK(c, rep)
}

func (h *ReportHandler) Export(c *gin.Context) {
	var req ExportReportRequest
	if !bindJSON(c, &req) {
		return
	}

	key, err := h.export.Execute(c.Request.Context(), req.Year, req.Month)
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.Created(c, gin.H{"key": key})
}
