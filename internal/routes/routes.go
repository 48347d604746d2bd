package routes

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/salon-scheduler/internal/audit"
	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/salon-scheduler/internal/handlers"
	"github.com/BruksfildServices01/salon-scheduler/internal/timezone"
	ucAppointment "github.com/BruksfildServices01/salon-scheduler/internal/usecase/appointment"
	ucCommission "github.com/BruksfildServices01/salon-scheduler/internal/usecase/commission"
	ucReport "github.com/BruksfildServices01/salon-scheduler/internal/usecase/report"
	ucScheduled "github.com/BruksfildServices01/salon-scheduler/internal/usecase/scheduledservice"
)

// Deps reúne a infraestrutura já inicializada.
// DB nil desliga as rotas de catálogo e auditoria; Cache e Store são opcionais.
type Deps struct {
	DB    *gorm.DB
	Repo  domain.Repository
	TZ    *timezone.Normalizer
	Audit *audit.Dispatcher

	Cache    ucReport.Cache
	CacheTTL time.Duration
	Store    ucReport.ObjectStore
}

func RegisterRoutes(r *gin.Engine, d Deps) {

	repo := ucReport.NewInvalidatingRepository(d.Repo, d.Cache)
	tz := d.TZ
	auditDispatcher := d.Audit

	// ======================================================
	// 🧠 USE CASES : COMMISSIONS
	// ======================================================
	calculateCommissionUC := ucCommission.NewCalculateCommission(repo, auditDispatcher)
	calculateAppointmentCommissionsUC := ucCommission.NewCalculateAppointmentCommissions(repo, auditDispatcher)
	listCommissionsUC := ucCommission.NewListCommissions(repo, tz)
	setCommissionsPaidUC := ucCommission.NewSetCommissionsPaid(repo, tz, auditDispatcher)

	// ======================================================
	// 🧠 USE CASES : SCHEDULED SERVICES
	// ======================================================
	createScheduledServiceUC := ucScheduled.NewCreateScheduledService(repo, auditDispatcher)
	updateScheduledServiceUC := ucScheduled.NewUpdateScheduledService(repo, auditDispatcher)
	completeScheduledServiceUC := ucScheduled.NewCompleteScheduledService(
		repo,
		tz,
		calculateCommissionUC,
		auditDispatcher,
	)
	cancelScheduledServiceUC := ucScheduled.NewCancelScheduledService(repo, tz, auditDispatcher)

	// ======================================================
	// 🧠 USE CASES : APPOINTMENTS
	// ======================================================
	getAppointmentUC := ucAppointment.NewGetAppointment(repo)

	appointmentUC := handlers.AppointmentUseCases{
		Create: ucAppointment.NewCreateAppointment(
			repo,
			tz,
			createScheduledServiceUC,
			auditDispatcher,
		),
		Update: ucAppointment.NewUpdateAppointment(repo, tz, auditDispatcher),
		Complete: ucAppointment.NewCompleteAppointment(
			repo,
			tz,
			completeScheduledServiceUC,
			calculateAppointmentCommissionsUC,
			auditDispatcher,
		),
		Cancel: ucAppointment.NewCancelAppointment(
			repo,
			tz,
			cancelScheduledServiceUC,
			auditDispatcher,
		),
		Get:         getAppointmentUC,
		TotalPrice:  ucAppointment.NewGetAppointmentTotalPrice(repo),
		ListByDate:  ucAppointment.NewListAppointmentsByDate(repo, tz),
		ListByMonth: ucAppointment.NewListAppointmentsByMonth(repo, tz),
		AddService:  ucAppointment.NewAddAppointmentService(createScheduledServiceUC, getAppointmentUC),
		Commissions: calculateAppointmentCommissionsUC,
	}

	// ======================================================
	// 🧠 USE CASES : REPORTS
	// ======================================================
	monthlyReportUC := ucReport.NewGetMonthlyReport(repo, tz, d.Cache, d.CacheTTL)
	exportReportUC := ucReport.NewExportMonthlyReport(monthlyReportUC, d.Store, auditDispatcher)

	// ======================================================
	// 🧩 HANDLERS
	// ======================================================
	appointmentHandler := handlers.NewAppointmentHandler(appointmentUC)
	scheduledServiceHandler := handlers.NewScheduledServiceHandler(
		updateScheduledServiceUC,
		completeScheduledServiceUC,
		cancelScheduledServiceUC,
		calculateCommissionUC,
	)
	commissionHandler := handlers.NewCommissionHandler(listCommissionsUC, setCommissionsPaidUC)
	reportHandler := handlers.NewReportHandler(monthlyReportUC, exportReportUC)

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// ======================================================
	// 🌐 API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// APPOINTMENTS
		// ------------------------------
		api.POST("/appointments", appointmentHandler.Create)
		api.GET("/appointments", appointmentHandler.ListByDate)
		api.GET("/appointments/month", appointmentHandler.ListByMonth)
		api.GET("/appointments/:id", appointmentHandler.Get)
		api.PATCH("/appointments/:id", appointmentHandler.Update)
		api.PATCH("/appointments/:id/complete", appointmentHandler.Complete)
		api.PATCH("/appointments/:id/cancel", appointmentHandler.Cancel)
		api.GET("/appointments/:id/total", appointmentHandler.Total)
		api.POST("/appointments/:id/services", appointmentHandler.AddService)
		api.POST("/appointments/:id/commissions", appointmentHandler.CalculateCommissions)

		// ------------------------------
		// SCHEDULED SERVICES
		// ------------------------------
		api.PATCH("/scheduled-services/:id", scheduledServiceHandler.Update)
		api.PATCH("/scheduled-services/:id/complete", scheduledServiceHandler.Complete)
		api.PATCH("/scheduled-services/:id/cancel", scheduledServiceHandler.Cancel)
		api.POST("/scheduled-services/:id/commission", scheduledServiceHandler.CalculateCommission)

		// ------------------------------
		// COMMISSIONS
		// ------------------------------
		api.GET("/commissions", commissionHandler.List)
		api.PATCH("/commissions/paid", commissionHandler.MarkPaid)
		api.PATCH("/commissions/unpaid", commissionHandler.MarkUnpaid)

		// ------------------------------
		// REPORTS
		// ------------------------------
		api.GET("/reports/monthly", reportHandler.Monthly)
		api.POST("/reports/monthly/export", reportHandler.Export)

		if d.DB == nil {
			return
		}

		// ------------------------------
		// CATALOG
		// ------------------------------
		serviceHandler := handlers.NewServiceHandler(d.DB)
		collaboratorHandler := handlers.NewCollaboratorHandler(d.DB)
		auditLogsHandler := handlers.NewAuditLogsHandler(audit.New(d.DB), tz)

		api.GET("/services", serviceHandler.List)
		api.POST("/services", serviceHandler.Create)
		api.PATCH("/services/:id", serviceHandler.Update)
		api.DELETE("/services/:id", serviceHandler.Delete)

		api.GET("/collaborators", collaboratorHandler.List)
		api.POST("/collaborators", collaboratorHandler.Create)
		api.GET("/collaborators/:id", collaboratorHandler.Get)
		api.PATCH("/collaborators/:id", collaboratorHandler.Update)

		api.GET("/audit-logs", auditLogsHandler.List)
	}
}
