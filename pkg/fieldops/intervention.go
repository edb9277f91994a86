package fieldops

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"solartech.app/field-service/pkg/common"
	"solartech.app/field-service/pkg/models"
)

type InterventionInput struct {
	Client         models.ClientInfo
	CompanyID      *string
	CompanyName    *string
	TechnicianID   *string
	TechnicianName *string
	Category       models.InterventionCategory
	Description    string
	Priority       models.Priority
	AssignedBy     string
}

// TechnicianAssignment replaces the technician reference pair as a whole;
// both fields nil clears the assignment.
type TechnicianAssignment struct {
	ID   *string
	Name *string
}

// InterventionUpdate carries field-level updates; nil fields are left
// unchanged.
type InterventionUpdate struct {
	Status      *models.InterventionStatus
	Technician  *TechnicianAssignment
	Appointment *models.AppointmentSlot
	Location    *models.GeoLocation
	Notes       *string
	Photos      []models.Photo
	StartedAt   *int64
	CompletedAt *int64
}

func pairedRef(id, name *string) bool {
	return (id == nil) == (name == nil)
}

func (e *Engine) addIntervention(ctx context.Context, input InterventionInput) (models.Intervention, error) {
	logger := common.GetLoggerWith(
		common.LoggerNameFieldCore,
		zap.String(common.LoggerFieldFSCategory, common.LoggerCategoryIntervention),
	)

	e.mu.Lock()
	defer e.mu.Unlock()

	if e.actor == nil {
		return models.Intervention{}, ErrNotAuthenticated
	}
	switch e.actor.Role {
	case models.RoleMaster:
		// any assignment
	case models.RoleCompany:
		// company actors create work scoped to their own firm
		input.CompanyID = e.actor.CompanyID
		input.CompanyName = e.actor.CompanyName
	default:
		return models.Intervention{}, ErrForbidden
	}

	if input.Client.Name == "" || input.Client.Address == "" || input.Client.Phone == "" {
		return models.Intervention{}, fmt.Errorf("%w: client name, address and phone are required", ErrValidation)
	}
	if !input.Category.Valid() {
		return models.Intervention{}, fmt.Errorf("%w: unknown category %q", ErrValidation, input.Category)
	}
	if !input.Priority.Valid() {
		return models.Intervention{}, fmt.Errorf("%w: unknown priority %q", ErrValidation, input.Priority)
	}
	if !pairedRef(input.CompanyID, input.CompanyName) {
		return models.Intervention{}, fmt.Errorf("%w: companyId and companyName must be set together", ErrValidation)
	}
	if !pairedRef(input.TechnicianID, input.TechnicianName) {
		return models.Intervention{}, fmt.Errorf("%w: technicianId and technicianName must be set together", ErrValidation)
	}

	now := time.Now().UnixMilli()
	intervention := models.Intervention{
		ID:             uuid.NewString(),
		Number:         e.nextNumber(),
		Client:         input.Client,
		CompanyID:      input.CompanyID,
		CompanyName:    input.CompanyName,
		TechnicianID:   input.TechnicianID,
		TechnicianName: input.TechnicianName,
		Category:       input.Category,
		Description:    input.Description,
		Priority:       input.Priority,
		AssignedAt:     now,
		AssignedBy:     input.AssignedBy,
		Status:         models.StatusAssigned,
		Documentation:  models.Documentation{Photos: []models.Photo{}},
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	e.interventions[intervention.ID] = intervention
	e.persistInterventions(ctx)

	logger.Info("Added intervention",
		zap.String("id", intervention.ID),
		zap.String("number", intervention.Number))
	return intervention, nil
}

func (e *Engine) updateIntervention(ctx context.Context, id string, upd InterventionUpdate) (models.Intervention, error) {
	logger := common.GetLoggerWith(
		common.LoggerNameFieldCore,
		zap.String(common.LoggerFieldFSCategory, common.LoggerCategoryIntervention),
	)

	e.mu.Lock()
	defer e.mu.Unlock()

	if e.actor == nil {
		return models.Intervention{}, ErrNotAuthenticated
	}
	intervention, ok := e.interventions[id]
	if !ok || !e.interventionVisibleLocked(intervention) {
		return models.Intervention{}, ErrNotFound
	}

	if upd.Status != nil && !upd.Status.Valid() {
		return models.Intervention{}, fmt.Errorf("%w: unknown status %q", ErrValidation, *upd.Status)
	}
	if upd.Technician != nil && !pairedRef(upd.Technician.ID, upd.Technician.Name) {
		return models.Intervention{}, fmt.Errorf("%w: technicianId and technicianName must be set together", ErrValidation)
	}

	if upd.Status != nil {
		intervention.Status = *upd.Status
	}
	if upd.Technician != nil {
		intervention.TechnicianID = upd.Technician.ID
		intervention.TechnicianName = upd.Technician.Name
	}
	if upd.Appointment != nil {
		intervention.Appointment = upd.Appointment
	}
	if upd.Location != nil {
		intervention.Location = upd.Location
	}
	if upd.Notes != nil {
		intervention.Documentation.Notes = *upd.Notes
	}
	if upd.Photos != nil {
		intervention.Documentation.Photos = upd.Photos
	}
	if upd.StartedAt != nil {
		intervention.Documentation.StartedAt = upd.StartedAt
	}
	if upd.CompletedAt != nil {
		intervention.Documentation.CompletedAt = upd.CompletedAt
	}
	intervention.UpdatedAt = time.Now().UnixMilli()

	e.interventions[id] = intervention
	e.persistInterventions(ctx)

	logger.Info("Updated intervention", zap.String("id", id))
	return intervention, nil
}

func (e *Engine) deleteIntervention(ctx context.Context, id string) error {
	logger := common.GetLoggerWith(
		common.LoggerNameFieldCore,
		zap.String(common.LoggerFieldFSCategory, common.LoggerCategoryIntervention),
	)

	e.mu.Lock()
	defer e.mu.Unlock()

	if e.actor == nil {
		return ErrNotAuthenticated
	}
	if e.actor.Role != models.RoleMaster {
		return ErrForbidden
	}
	if _, ok := e.interventions[id]; !ok {
		return ErrNotFound
	}

	// server-authoritative confirmation comes first; on failure the local
	// record stays
	if e.ConfirmDelete != nil {
		if err := e.ConfirmDelete.ConfirmInterventionDelete(ctx, id); err != nil {
			return err
		}
	}

	delete(e.interventions, id)
	e.persistInterventions(ctx)

	logger.Info("Deleted intervention", zap.String("id", id))
	return nil
}

func (e *Engine) bulkAssignToCompany(ctx context.Context, ids []string, companyID, companyName string) error {
	logger := common.GetLoggerWith(
		common.LoggerNameFieldCore,
		zap.String(common.LoggerFieldFSCategory, common.LoggerCategoryIntervention),
	)

	e.mu.Lock()
	defer e.mu.Unlock()

	if e.actor == nil {
		return ErrNotAuthenticated
	}
	if e.actor.Role != models.RoleMaster {
		return ErrForbidden
	}
	if companyID == "" || companyName == "" {
		return fmt.Errorf("%w: companyId and companyName are required", ErrValidation)
	}

	now := time.Now().UnixMilli()
	for _, id := range ids {
		intervention, ok := e.interventions[id]
		if !ok {
			continue
		}
		intervention.CompanyID = models.StrPtr(companyID)
		intervention.CompanyName = models.StrPtr(companyName)
		intervention.AssignedAt = now
		intervention.AssignedBy = e.actor.Name
		intervention.Status = models.StatusAssigned
		intervention.UpdatedAt = now
		e.interventions[id] = intervention
	}
	e.persistInterventions(ctx)

	logger.Info("Bulk assigned interventions",
		zap.Int("count", len(ids)),
		zap.String("companyId", companyID))
	return nil
}

func (e *Engine) closeInterventions(ctx context.Context, ids []string, closedBy, emailSentTo string) error {
	logger := common.GetLoggerWith(
		common.LoggerNameFieldCore,
		zap.String(common.LoggerFieldFSCategory, common.LoggerCategoryIntervention),
	)

	e.mu.Lock()
	defer e.mu.Unlock()

	if e.actor == nil {
		return ErrNotAuthenticated
	}
	if e.actor.Role != models.RoleMaster && e.actor.Role != models.RoleCompany {
		return ErrForbidden
	}

	now := time.Now().UnixMilli()
	for _, id := range ids {
		intervention, ok := e.interventions[id]
		if !ok || !e.interventionVisibleLocked(intervention) {
			return fmt.Errorf("%w: intervention %s", ErrNotFound, id)
		}
		intervention.Status = models.StatusClosed
		intervention.ClosedAt = int64Ptr(now)
		intervention.ClosedBy = closedBy
		intervention.EmailSentTo = emailSentTo
		intervention.UpdatedAt = now
		e.interventions[id] = intervention
	}
	e.persistInterventions(ctx)

	logger.Info("Closed interventions", zap.Int("count", len(ids)))
	return nil
}

func (e *Engine) interventionVisibleLocked(i models.Intervention) bool {
	visible := VisibleInterventions(e.actor, []models.Intervention{i})
	return len(visible) == 1
}

func (e *Engine) visibleInterventions() []models.Intervention {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return VisibleInterventions(e.actor, e.interventionList())
}

func (e *Engine) unassignedInterventions() []models.Intervention {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return common.Filter(VisibleInterventions(e.actor, e.interventionList()), func(i models.Intervention) bool {
		return !i.Assigned()
	})
}

func (e *Engine) interventionByID(id string) (models.Intervention, bool) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	i, ok := e.interventions[id]
	if !ok || !e.interventionVisibleLocked(i) {
		return models.Intervention{}, false
	}
	return i, true
}

func (e *Engine) allInterventionsCount() int {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return len(e.interventions)
}

type IInterventionImpl struct {
	engine *Engine
}

func (ii *IInterventionImpl) Add(ctx context.Context, input InterventionInput) (models.Intervention, error) {
	return ii.engine.addIntervention(ctx, input)
}

func (ii *IInterventionImpl) Update(ctx context.Context, id string, upd InterventionUpdate) (models.Intervention, error) {
	return ii.engine.updateIntervention(ctx, id, upd)
}

func (ii *IInterventionImpl) Delete(ctx context.Context, id string) error {
	return ii.engine.deleteIntervention(ctx, id)
}

func (ii *IInterventionImpl) BulkAssignToCompany(ctx context.Context, ids []string, companyID, companyName string) error {
	return ii.engine.bulkAssignToCompany(ctx, ids, companyID, companyName)
}

func (ii *IInterventionImpl) Close(ctx context.Context, ids []string, closedBy, emailSentTo string) error {
	return ii.engine.closeInterventions(ctx, ids, closedBy, emailSentTo)
}

func (ii *IInterventionImpl) Visible() []models.Intervention {
	return ii.engine.visibleInterventions()
}

func (ii *IInterventionImpl) Unassigned() []models.Intervention {
	return ii.engine.unassignedInterventions()
}

func (ii *IInterventionImpl) ByID(id string) (models.Intervention, bool) {
	return ii.engine.interventionByID(id)
}

func (ii *IInterventionImpl) AllCount() int {
	return ii.engine.allInterventionsCount()
}

func (e *Engine) GetIIntervention() IIntervention {
	return &IInterventionImpl{engine: e}
}
