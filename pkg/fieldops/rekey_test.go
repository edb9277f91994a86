package fieldops

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"solartech.app/field-service/pkg/cache"
	"solartech.app/field-service/pkg/models"
)

func TestReconcileTechnicianRewritesAllReferences(t *testing.T) {
	e := newTestEngine(t)
	ctx := context.Background()

	authoritative := *alexActor()
	authoritative.ID = "ffffffff-ffff-ffff-ffff-ffffffffffff"

	e.ReconcileTechnician(ctx, authoritative)

	// the stored user is re-keyed
	users := e.AllUsers()
	byID := make(map[string]models.User, len(users))
	for _, u := range users {
		byID[u.ID] = u
	}
	_, oldPresent := byID[seedUserAlex]
	assert.False(t, oldPresent)
	rekeyed, newPresent := byID[authoritative.ID]
	require.True(t, newPresent)
	assert.Equal(t, "alex", rekeyed.Username)
	assert.Len(t, users, 6)

	// every intervention that pointed at the old id follows it
	e.SetActor(masterActor())
	for _, id := range []string{seedInterventionAlex1, seedInterventionAlex2, seedInterventionAlex3} {
		i, ok := e.Intervention.ByID(id)
		require.True(t, ok)
		assert.Equal(t, authoritative.ID, *i.TechnicianID)
	}

	// other technicians' assignments are untouched
	other, ok := e.Intervention.ByID(seedInterventionBillo1)
	require.True(t, ok)
	assert.Equal(t, seedUserBillo, *other.TechnicianID)
}

func TestReconcileTechnicianPersistsRepair(t *testing.T) {
	e := newTestEngine(t)
	ctx := context.Background()

	authoritative := *alexActor()
	authoritative.ID = "ffffffff-ffff-ffff-ffff-ffffffffffff"
	e.ReconcileTechnician(ctx, authoritative)

	value, found, err := e.Store.Get(ctx, cache.KeyUsers)
	require.NoError(t, err)
	require.True(t, found)

	var persisted []models.User
	require.NoError(t, json.Unmarshal(value, &persisted))
	require.Len(t, persisted, 1)
	assert.Equal(t, authoritative.ID, persisted[0].ID)
	assert.Equal(t, "alex", persisted[0].Username)

	value, found, err = e.Store.Get(ctx, cache.KeyInterventions)
	require.NoError(t, err)
	require.True(t, found)

	var interventions []models.Intervention
	require.NoError(t, json.Unmarshal(value, &interventions))
	assert.Len(t, interventions, 3)
	for _, i := range interventions {
		assert.Equal(t, authoritative.ID, *i.TechnicianID)
	}
}

func TestReconcileTechnicianNoopWhenIDsMatch(t *testing.T) {
	e := newTestEngine(t)
	ctx := context.Background()

	e.ReconcileTechnician(ctx, *alexActor())

	_, found, err := e.Store.Get(ctx, cache.KeyUsers)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestReconcileTechnicianIgnoresOtherRoles(t *testing.T) {
	e := newTestEngine(t)
	ctx := context.Background()

	drifted := *gbdActor()
	drifted.ID = "ffffffff-ffff-ffff-ffff-ffffffffffff"
	e.ReconcileTechnician(ctx, drifted)

	users := e.AllUsers()
	ids := make(map[string]bool, len(users))
	for _, u := range users {
		ids[u.ID] = true
	}
	assert.True(t, ids[seedUserDitta])
	assert.False(t, ids[drifted.ID])
}

func TestReconcileTechnicianMatchRequiresCompany(t *testing.T) {
	e := newTestEngine(t)
	ctx := context.Background()

	// same username, wrong company: no stored record matches
	authoritative := *alexActor()
	authoritative.ID = "ffffffff-ffff-ffff-ffff-ffffffffffff"
	authoritative.CompanyID = models.StrPtr(seedCompanySolarPro)

	e.ReconcileTechnician(ctx, authoritative)

	users := e.AllUsers()
	ids := make(map[string]bool, len(users))
	for _, u := range users {
		ids[u.ID] = true
	}
	assert.True(t, ids[seedUserAlex])
	assert.False(t, ids[authoritative.ID])
}
