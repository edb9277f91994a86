package fieldops

import (
	"context"
	"time"

	"go.uber.org/zap"
	"solartech.app/field-service/pkg/common"
	"solartech.app/field-service/pkg/models"
)

// ReconcileTechnician repairs identifier drift between a cached technician
// record and the identity issued by a fresh authentication: the stored
// user keyed by username+company is re-keyed to the authoritative id, and
// every intervention referencing the old id is rewritten to the new one.
// Both replacement collections are built in full before the swap, so no
// observer sees a mix of old and new identifiers. Runs on every
// authentication, not once.
func (e *Engine) ReconcileTechnician(ctx context.Context, authoritative models.Actor) {
	if authoritative.Role != models.RoleTechnician {
		return
	}

	logger := common.GetLoggerWith(
		common.LoggerNameFieldCore,
		zap.String(common.LoggerFieldFSCategory, common.LoggerCategoryRekey),
	)

	e.mu.Lock()
	defer e.mu.Unlock()

	var stored *models.User
	for _, u := range e.users {
		if u.Username == authoritative.Username && sameRef(u.CompanyID, authoritative.CompanyID) {
			copied := u
			stored = &copied
			break
		}
	}
	if stored == nil || stored.ID == authoritative.ID {
		return
	}

	oldID := stored.ID
	newID := authoritative.ID
	now := time.Now().UnixMilli()

	newUsers := make(map[string]models.User, len(e.users))
	for id, u := range e.users {
		if id == oldID {
			u.ID = newID
			newUsers[newID] = u
			continue
		}
		newUsers[id] = u
	}

	newInterventions := make(map[string]models.Intervention, len(e.interventions))
	for id, i := range e.interventions {
		if i.TechnicianID != nil && *i.TechnicianID == oldID {
			i.TechnicianID = models.StrPtr(newID)
			i.UpdatedAt = now
		}
		newInterventions[id] = i
	}

	e.users = newUsers
	e.interventions = newInterventions
	e.persistUsers(ctx)
	e.persistInterventions(ctx)

	logger.Info("Repaired technician identifier drift",
		zap.String("username", authoritative.Username),
		zap.String("oldId", oldID),
		zap.String("newId", newID))
}
