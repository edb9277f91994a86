package fieldops

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"solartech.app/field-service/pkg/common"
	"solartech.app/field-service/pkg/models"
)

// AppointmentUpdate carries field-level updates; nil fields are left
// unchanged. NotifyBefore uses a double pointer so a reminder can be
// cleared (outer non-nil, inner nil) as well as changed.
type AppointmentUpdate struct {
	Type         *models.AppointmentType
	ClientName   *string
	Address      *string
	Date         *int64
	Notes        *string
	NotifyBefore **int
}

func (e *Engine) addAppointment(ctx context.Context, input models.Appointment) (models.Appointment, error) {
	logger := common.GetLoggerWith(
		common.LoggerNameFieldCore,
		zap.String(common.LoggerFieldFSCategory, common.LoggerCategoryAppointment),
	)

	e.mu.Lock()
	defer e.mu.Unlock()

	if e.actor == nil {
		return models.Appointment{}, ErrNotAuthenticated
	}
	if input.ClientName == "" || input.Date == 0 {
		return models.Appointment{}, fmt.Errorf("%w: clientName and date are required", ErrValidation)
	}
	if input.InterventionID != "" {
		if _, ok := e.interventions[input.InterventionID]; !ok {
			return models.Appointment{}, fmt.Errorf("%w: intervention %s", ErrNotFound, input.InterventionID)
		}
	}
	if input.ID == "" {
		input.ID = uuid.NewString()
	}

	e.appointments[input.ID] = input
	logger.Info("Added appointment", zap.String("id", input.ID))
	return input, nil
}

func (e *Engine) updateAppointment(ctx context.Context, id string, upd AppointmentUpdate) (models.Appointment, error) {
	logger := common.GetLoggerWith(
		common.LoggerNameFieldCore,
		zap.String(common.LoggerFieldFSCategory, common.LoggerCategoryAppointment),
	)

	e.mu.Lock()
	defer e.mu.Unlock()

	if e.actor == nil {
		return models.Appointment{}, ErrNotAuthenticated
	}
	appointment, ok := e.appointments[id]
	if !ok {
		return models.Appointment{}, ErrNotFound
	}

	if upd.Type != nil {
		appointment.Type = *upd.Type
	}
	if upd.ClientName != nil {
		appointment.ClientName = *upd.ClientName
	}
	if upd.Address != nil {
		appointment.Address = *upd.Address
	}
	if upd.Date != nil {
		appointment.Date = *upd.Date
	}
	if upd.Notes != nil {
		appointment.Notes = *upd.Notes
	}
	if upd.NotifyBefore != nil {
		appointment.NotifyBefore = *upd.NotifyBefore
	}

	e.appointments[id] = appointment
	logger.Info("Updated appointment", zap.String("id", id))
	return appointment, nil
}

func (e *Engine) deleteAppointment(ctx context.Context, id string) error {
	logger := common.GetLoggerWith(
		common.LoggerNameFieldCore,
		zap.String(common.LoggerFieldFSCategory, common.LoggerCategoryAppointment),
	)

	e.mu.Lock()
	defer e.mu.Unlock()

	if e.actor == nil {
		return ErrNotAuthenticated
	}
	if _, ok := e.appointments[id]; !ok {
		return ErrNotFound
	}

	delete(e.appointments, id)

	// a deleted appointment must not fire its device reminder
	if e.Reminders != nil {
		if err := e.Reminders.CancelReminder(ctx, id); err != nil {
			logger.Warn("Failed to cancel reminder", zap.String("id", id), zap.Error(err))
		}
	}

	logger.Info("Deleted appointment", zap.String("id", id))
	return nil
}

func (e *Engine) visibleAppointments() []models.Appointment {
	e.mu.RLock()
	defer e.mu.RUnlock()
	visible := VisibleInterventions(e.actor, e.interventionList())
	return VisibleAppointments(e.actor, e.appointmentList(), visible)
}

type IAppointmentImpl struct {
	engine *Engine
}

func (ia *IAppointmentImpl) Add(ctx context.Context, input models.Appointment) (models.Appointment, error) {
	return ia.engine.addAppointment(ctx, input)
}

func (ia *IAppointmentImpl) Update(ctx context.Context, id string, upd AppointmentUpdate) (models.Appointment, error) {
	return ia.engine.updateAppointment(ctx, id, upd)
}

func (ia *IAppointmentImpl) Delete(ctx context.Context, id string) error {
	return ia.engine.deleteAppointment(ctx, id)
}

func (ia *IAppointmentImpl) Visible() []models.Appointment {
	return ia.engine.visibleAppointments()
}

func (e *Engine) GetIAppointment() IAppointment {
	return &IAppointmentImpl{engine: e}
}
