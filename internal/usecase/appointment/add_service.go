package appointment

import (
	"context"

	"github.com/BruksfildServices01/salon-scheduler/internal/models"
	ucScheduled "github.com/BruksfildServices01/salon-scheduler/internal/usecase/scheduledservice"
)

// AddAppointmentService inclui uma nova linha num agendamento em aberto.
type AddAppointmentService struct {
	createService *ucScheduled.CreateScheduledService
	get           *GetAppointment
}

func NewAddAppointmentService(
	createService *ucScheduled.CreateScheduledService,
	get *GetAppointment,
) *AddAppointmentService {
	return &AddAppointmentService{
		createService: createService,
		get:           get,
	}
}

func (uc *AddAppointmentService) Execute(
	ctx context.Context,
	appointmentID uint,
	item LineItemInput,
) (*models.Appointment, error) {

	if _, err := uc.createService.Execute(ctx, ucScheduled.CreateScheduledServiceInput{
		AppointmentID:  appointmentID,
		ServiceID:      item.ServiceID,
		CollaboratorID: item.CollaboratorID,
		Price:          item.Price,
	}); err != nil {
		return nil, err
	}

	return uc.get.Execute(ctx, appointmentID)
}
