package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
	"github.com/BruksfildServices01/salon-scheduler/internal/httpresp"
	ucAppointment "github.com/BruksfildServices01/salon-scheduler/internal/usecase/appointment"
	ucCommission "github.com/BruksfildServices01/salon-scheduler/internal/usecase/commission"
)

// ======================================================
// HANDLER
// ======================================================

type AppointmentUseCases struct {
	Create      *ucAppointment.CreateAppointment
	Update      *ucAppointment.UpdateAppointment
	Complete    *ucAppointment.CompleteAppointment
	Cancel      *ucAppointment.CancelAppointment
	Get         *ucAppointment.GetAppointment
	TotalPrice  *ucAppointment.GetAppointmentTotalPrice
	ListByDate  *ucAppointment.ListAppointmentsByDate
	ListByMonth *ucAppointment.ListAppointmentsByMonth
	AddService  *ucAppointment.AddAppointmentService
	Commissions *ucCommission.CalculateAppointmentCommissions
}

type AppointmentHandler struct {
	uc AppointmentUseCases
}

func NewAppointmentHandler(uc AppointmentUseCases) *AppointmentHandler {
	return &AppointmentHandler{uc: uc}
}

// ======================================================
// REQUESTS
// ======================================================

type LineItemRequest struct {
	ServiceID      uint             `json:"service_id" binding:"required"`
	CollaboratorID *uint            `json:"collaborator_id"`
	Price          *decimal.Decimal `json:"price"`
}

func (r LineItemRequest) input() ucAppointment.LineItemInput {
	return ucAppointment.LineItemInput{
		ServiceID:      r.ServiceID,
		CollaboratorID: r.CollaboratorID,
		Price:          r.Price,
	}
}

type CreateAppointmentRequest struct {
	ClientName   string            `json:"client_name" binding:"required"`
	ClientPhone  string            `json:"client_phone"`
	Date         string            `json:"date" binding:"required,civildate"`
	StartTime    string            `json:"start_time" binding:"required,hhmm"`
	EndTime      string            `json:"end_time" binding:"required,hhmm"`
	Observations *string           `json:"observations"`
	Services     []LineItemRequest `json:"services" binding:"dive"`
}

type UpdateAppointmentRequest struct {
	ClientName   *string `json:"client_name,omitempty"`
	ClientPhone  *string `json:"client_phone,omitempty"`
	Date         *string `json:"date,omitempty" binding:"omitempty,civildate"`
	StartTime    *string `json:"start_time,omitempty" binding:"omitempty,hhmm"`
	EndTime      *string `json:"end_time,omitempty" binding:"omitempty,hhmm"`
	Observations *string `json:"observations,omitempty"`
}

// ======================================================
// CREATE
// ======================================================

func (h *AppointmentHandler) Create(c *gin.Context) {
	var req CreateAppointmentRequest
	if !bindJSON(c, &req) {
		return
	}

	lines := make([]ucAppointment.LineItemInput, 0, len(req.Services))
	for _, s := range req.Services {
		lines = append(lines, s.input())
	}

	ap, err := h.uc.Create.Execute(c.Request.Context(), ucAppointment.CreateAppointmentInput{
		ClientName:   req.ClientName,
		ClientPhone:  req.ClientPhone,
		Date:         req.Date,
		StartTime:    req.StartTime,
		EndTime:      req.EndTime,
		Observations: req.Observations,
		Services:     lines,
	})
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.Created(c, ap)
}

// ======================================================
// READ
// ======================================================

func (h *AppointmentHandler) Get(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	ap, err := h.uc.Get.Execute(c.Request.Context(), id)
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.OK(c, ap)
}

func (h *AppointmentHandler) Total(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	total, err := h.uc.TotalPrice.Execute(c.Request.Context(), id)
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.OK(c, gin.H{
		"appointment_id": id,
		"total":          total,
	})
}

func (h *AppointmentHandler) ListByDate(c *gin.Context) {
	dateStr := c.Query("date")
	if dateStr == "" {
		httperr.BadRequest(c, "missing_date", "Data obrigatória.")
		return
	}

	aps, err := h.uc.ListByDate.Execute(c.Request.Context(), dateStr)
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.List(c, aps)
}

func (h *AppointmentHandler) ListByMonth(c *gin.Context) {
	year, month, ok := yearMonth(c)
	if !ok {
		return
	}

	appointments, err := h.uc.ListByMonth.Execute(c.Request.Context(), year, month)
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	c.JSON(200, gin.H{
		"year":         year,
		"month":        month,
		"appointments": appointments,
	})
}

// ======================================================
// UPDATE
// ======================================================

func (h *AppointmentHandler) Update(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	var req UpdateAppointmentRequest
	if !bindJSON(c, &req) {
		return
	}

	ap, err := h.uc.Update.Execute(c.Request.Context(), id, ucAppointment.UpdateAppointmentInput{
		ClientName:   req.ClientName,
		ClientPhone:  req.ClientPhone,
		Date:         req.Date,
		StartTime:    req.StartTime,
		EndTime:      req.EndTime,
		Observations: req.Observations,
	})
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.OK(c, ap)
}

func (h *AppointmentHandler) AddService(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	var req LineItemRequest
	if !bindJSON(c, &req) {
		return
	}

	ap, err := h.uc.AddService.Execute(c.Request.Context(), id, req.input())
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.Created(c, ap)
}

// ======================================================
// LIFECYCLE
// ======================================================

func (h *AppointmentHandler) Complete(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	ap, err := h.uc.Complete.Execute(c.Request.Context(), id)
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.OK(c, ap)
}

func (h *AppointmentHandler) Cancel(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	ap, err := h.uc.Cancel.Execute(c.Request.Context(), id)
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.OK(c, ap)
}

func (h *AppointmentHandler) CalculateCommissions(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	commissions, err := h.uc.Commissions.Execute(c.Request.Context(), id)
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.List(c, commissions)
}
