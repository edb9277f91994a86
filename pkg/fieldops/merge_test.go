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

func TestMergeCachedRecordWinsOverBaseline(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	// persist a locally modified copy of a baseline record plus a record
	// the baseline has never seen
	modified := DefaultBaseline().Interventions[0]
	modified.Status = models.StatusInProgress
	modified.Documentation.Notes = "Lavori iniziati"
	local := models.Intervention{
		ID:       "local-0001",
		Number:   "INT-2025-099",
		Client:   models.ClientInfo{Name: "Cliente Locale", Address: "Via Locale", Phone: "123"},
		Category: models.CategoryMaintenance,
		Priority: models.PriorityNormal,
		Status:   models.StatusAssigned,
	}
	value, err := json.Marshal([]models.Intervention{modified, local})
	require.NoError(t, err)
	require.NoError(t, store.Set(ctx, cache.KeyInterventions, value))

	e := NewEngine(store, DefaultBaseline())
	require.NoError(t, e.Load(ctx))
	e.SetActor(masterActor())

	assert.Equal(t, 12, e.Intervention.AllCount())

	got, ok := e.Intervention.ByID(modified.ID)
	require.True(t, ok)
	assert.Equal(t, models.StatusInProgress, got.Status)
	assert.Equal(t, "Lavori iniziati", got.Documentation.Notes)

	_, ok = e.Intervention.ByID("local-0001")
	assert.True(t, ok)
}

func TestLoadWithoutCacheKeepsBaseline(t *testing.T) {
	e := newTestEngine(t)
	require.NoError(t, e.Load(context.Background()))
	e.SetActor(masterActor())

	assert.Equal(t, 11, e.Intervention.AllCount())
}

func TestLoadDropsCorruptCacheEntry(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	require.NoError(t, store.Set(ctx, cache.KeyInterventions, []byte("not-json")))

	e := NewEngine(store, DefaultBaseline())
	require.NoError(t, e.Load(ctx))
	e.SetActor(masterActor())

	assert.Equal(t, 11, e.Intervention.AllCount())
}

func TestPersistOnlyChangedRecords(t *testing.T) {
	e := newTestEngine(t)
	ctx := context.Background()
	e.SetActor(masterActor())

	notes := "solo questo record cambia"
	_, err := e.Intervention.Update(ctx, seedInterventionAlex1, InterventionUpdate{Notes: &notes})
	require.NoError(t, err)

	value, found, err := e.Store.Get(ctx, cache.KeyInterventions)
	require.NoError(t, err)
	require.True(t, found)

	var persisted []models.Intervention
	require.NoError(t, json.Unmarshal(value, &persisted))
	require.Len(t, persisted, 1)
	assert.Equal(t, seedInterventionAlex1, persisted[0].ID)
	assert.Equal(t, notes, persisted[0].Documentation.Notes)
}

func TestPersistRemovesKeyWhenNothingDiffers(t *testing.T) {
	e := newTestEngine(t)
	ctx := context.Background()

	// seed the key, then persist an unchanged collection over it
	require.NoError(t, e.Store.Set(ctx, cache.KeyInterventions, []byte("[]")))
	persistCollection(ctx, e.Store, cache.KeyInterventions, e.baselineInterventions, e.baselineInterventions)

	_, found, err := e.Store.Get(ctx, cache.KeyInterventions)
	require.NoError(t, err)
	assert.False(t, found)
}

// Mutations from one process survive a restart through the cache layer.
func TestRestartKeepsLocalMutations(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	first := NewEngine(store, DefaultBaseline())
	first.SetActor(masterActor())

	created, err := first.Intervention.Add(ctx, InterventionInput{
		Client:      models.ClientInfo{Name: "Nuovo Cliente", Address: "Via Nuova 1", Phone: "333"},
		Category:    models.CategorySiteSurvey,
		Priority:    models.PriorityNormal,
		Description: "sopralluogo post-riavvio",
		AssignedBy:  "GBD Amministratore",
	})
	require.NoError(t, err)

	status := models.StatusInProgress
	_, err = first.Intervention.Update(ctx, seedInterventionAlex2, InterventionUpdate{Status: &status})
	require.NoError(t, err)

	second := NewEngine(store, DefaultBaseline())
	require.NoError(t, second.Load(ctx))
	second.SetActor(masterActor())

	assert.Equal(t, 12, second.Intervention.AllCount())

	restored, ok := second.Intervention.ByID(created.ID)
	require.True(t, ok)
	assert.Equal(t, created.Number, restored.Number)

	updated, ok := second.Intervention.ByID(seedInterventionAlex2)
	require.True(t, ok)
	assert.Equal(t, models.StatusInProgress, updated.Status)
}
