package scheduledservice

import (
	"time"

	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

// ===============================
// Domain Actions
// ===============================

func Complete(ss *models.ScheduledService, now time.Time) error {
	if err := CanComplete(Status(ss.Status)); err != nil {
		return err
	}
	if ss.CollaboratorID == nil {
		return httperr.ErrBusiness(httperr.KindMissingCollaborator, "missing_collaborator")
	}

	ss.Status = string(StatusCompleted)
	ss.CompletedAt = &now
	return nil
}

// Cancel retorna changed=false quando o serviço já estava cancelado.
func Cancel(ss *models.ScheduledService, now time.Time) (bool, error) {
	if err := CanCancel(Status(ss.Status)); err != nil {
		return false, err
	}
	if Status(ss.Status) == StatusCancelled {
		return false, nil
	}

	ss.Status = string(StatusCancelled)
	ss.CancelledAt = &now
	return true, nil
}

// AssertAssignable valida um colaborador para atribuição.
func AssertAssignable(c *models.Collaborator) error {
	if !c.Active {
		return httperr.ErrBusiness(httperr.KindInactiveCollaborator, "inactive_collaborator")
	}
	return nil
}
