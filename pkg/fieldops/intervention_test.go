package fieldops

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"solartech.app/field-service/pkg/models"
)

// stubConfirmer stands in for the remote delete confirmation.
type stubConfirmer struct {
	err   error
	calls []string
}

func (s *stubConfirmer) ConfirmInterventionDelete(ctx context.Context, id string) error {
	s.calls = append(s.calls, id)
	return s.err
}

func TestAddInterventionAsMaster(t *testing.T) {
	e := newTestEngine(t)
	ctx := context.Background()
	e.SetActor(masterActor())

	created, err := e.Intervention.Add(ctx, InterventionInput{
		Client:      models.ClientInfo{Name: "Mario Rossi", Address: "Via Test 1", Phone: "+39 333 0000000"},
		Category:    models.CategoryInstallation,
		Priority:    models.PriorityHigh,
		Description: "nuovo impianto",
		AssignedBy:  "GBD Amministratore",
	})
	require.NoError(t, err)

	// the fixture tops out at 011
	assert.Equal(t, "INT-2025-012", created.Number)
	assert.Equal(t, models.StatusAssigned, created.Status)
	assert.NotEmpty(t, created.ID)
	assert.NotNil(t, created.Documentation.Photos)
	assert.Equal(t, 12, e.Intervention.AllCount())
}

func TestAddInterventionCompanyForcedToOwnFirm(t *testing.T) {
	e := newTestEngine(t)
	ctx := context.Background()
	e.SetActor(gbdActor())

	created, err := e.Intervention.Add(ctx, InterventionInput{
		Client: models.ClientInfo{Name: "Mario Rossi", Address: "Via Test 1", Phone: "+39 333 0000000"},
		// attempts to file work under another firm are overridden
		CompanyID:   models.StrPtr(seedCompanySolarPro),
		CompanyName: models.StrPtr("Solar Pro S.r.l."),
		Category:    models.CategoryMaintenance,
		Priority:    models.PriorityNormal,
	})
	require.NoError(t, err)
	assert.Equal(t, seedCompanyGBD, *created.CompanyID)
	assert.Equal(t, "GBD B&A S.r.l.", *created.CompanyName)
}

func TestAddInterventionRejections(t *testing.T) {
	e := newTestEngine(t)
	ctx := context.Background()

	_, err := e.Intervention.Add(ctx, InterventionInput{})
	assert.ErrorIs(t, err, ErrNotAuthenticated)

	e.SetActor(alexActor())
	_, err = e.Intervention.Add(ctx, InterventionInput{})
	assert.ErrorIs(t, err, ErrForbidden)

	e.SetActor(masterActor())
	_, err = e.Intervention.Add(ctx, InterventionInput{
		Client:   models.ClientInfo{Name: "Senza Telefono", Address: "Via Test"},
		Category: models.CategoryInstallation,
		Priority: models.PriorityNormal,
	})
	assert.ErrorIs(t, err, ErrValidation)

	_, err = e.Intervention.Add(ctx, InterventionInput{
		Client:   models.ClientInfo{Name: "Mario", Address: "Via Test", Phone: "333"},
		Category: "riparazione",
		Priority: models.PriorityNormal,
	})
	assert.ErrorIs(t, err, ErrValidation)

	// unpaired company reference
	_, err = e.Intervention.Add(ctx, InterventionInput{
		Client:    models.ClientInfo{Name: "Mario", Address: "Via Test", Phone: "333"},
		CompanyID: models.StrPtr(seedCompanyGBD),
		Category:  models.CategoryInstallation,
		Priority:  models.PriorityNormal,
	})
	assert.ErrorIs(t, err, ErrValidation)

	assert.Equal(t, 11, e.Intervention.AllCount())
}

func TestUpdateInterventionFields(t *testing.T) {
	e := newTestEngine(t)
	ctx := context.Background()
	e.SetActor(alexActor())

	status := models.StatusInProgress
	notes := "iniziato il lavoro"
	started := int64(1700000000000)
	updated, err := e.Intervention.Update(ctx, seedInterventionAlex1, InterventionUpdate{
		Status:    &status,
		Notes:     &notes,
		StartedAt: &started,
	})
	require.NoError(t, err)
	assert.Equal(t, models.StatusInProgress, updated.Status)
	assert.Equal(t, notes, updated.Documentation.Notes)
	assert.Equal(t, started, *updated.Documentation.StartedAt)
	assert.Greater(t, updated.UpdatedAt, int64(0))
}

func TestUpdateInterventionOutsideScopeIsNotFound(t *testing.T) {
	e := newTestEngine(t)
	ctx := context.Background()
	e.SetActor(solarProActor())

	status := models.StatusInProgress
	_, err := e.Intervention.Update(ctx, seedInterventionAlex1, InterventionUpdate{Status: &status})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUpdateInterventionRejectsUnknownStatus(t *testing.T) {
	e := newTestEngine(t)
	ctx := context.Background()
	e.SetActor(masterActor())

	bad := models.InterventionStatus("sospeso")
	_, err := e.Intervention.Update(ctx, seedInterventionAlex1, InterventionUpdate{Status: &bad})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestDeleteInterventionRequiresMasterAndConfirmation(t *testing.T) {
	e := newTestEngine(t)
	ctx := context.Background()

	e.SetActor(gbdActor())
	assert.ErrorIs(t, e.Intervention.Delete(ctx, seedInterventionAlex1), ErrForbidden)

	e.SetActor(masterActor())
	confirmer := &stubConfirmer{err: fmt.Errorf("server says no")}
	e.ConfirmDelete = confirmer

	err := e.Intervention.Delete(ctx, seedInterventionAlex1)
	assert.Error(t, err)
	assert.Equal(t, []string{seedInterventionAlex1}, confirmer.calls)
	// rejected confirmation leaves the record in place
	_, ok := e.Intervention.ByID(seedInterventionAlex1)
	assert.True(t, ok)

	confirmer.err = nil
	require.NoError(t, e.Intervention.Delete(ctx, seedInterventionAlex1))
	_, ok = e.Intervention.ByID(seedInterventionAlex1)
	assert.False(t, ok)
	assert.Equal(t, 10, e.Intervention.AllCount())
}

func TestBulkAssignToCompany(t *testing.T) {
	e := newTestEngine(t)
	ctx := context.Background()

	e.SetActor(gbdActor())
	err := e.Intervention.BulkAssignToCompany(ctx, []string{seedInterventionOrphan1}, seedCompanyGBD, "GBD B&A S.r.l.")
	assert.ErrorIs(t, err, ErrForbidden)

	e.SetActor(masterActor())
	ids := []string{
		seedInterventionOrphan1,
		"00000010-0010-0010-0010-000000000010",
		"00000011-0011-0011-0011-000000000011",
	}
	require.NoError(t, e.Intervention.BulkAssignToCompany(ctx, ids, seedCompanySolarPro, "Solar Pro S.r.l."))

	for _, id := range ids {
		i, ok := e.Intervention.ByID(id)
		require.True(t, ok)
		assert.Equal(t, seedCompanySolarPro, *i.CompanyID)
		assert.Equal(t, models.StatusAssigned, i.Status)
		assert.Equal(t, "GBD Amministratore", i.AssignedBy)
	}
	assert.Empty(t, e.Intervention.Unassigned())

	// the receiving firm now sees them
	e.SetActor(solarProActor())
	assert.Len(t, e.Intervention.Visible(), 5)
}

func TestCloseInterventions(t *testing.T) {
	e := newTestEngine(t)
	ctx := context.Background()
	e.SetActor(gbdActor())

	ids := []string{seedInterventionAlex3}
	require.NoError(t, e.Intervention.Close(ctx, ids, "GBD B&A", "cliente@email.it"))

	closed, ok := e.Intervention.ByID(seedInterventionAlex3)
	require.True(t, ok)
	assert.Equal(t, models.StatusClosed, closed.Status)
	assert.NotNil(t, closed.ClosedAt)
	assert.Equal(t, "GBD B&A", closed.ClosedBy)
	assert.Equal(t, "cliente@email.it", closed.EmailSentTo)
}

func TestCloseInterventionsOutsideScopeFails(t *testing.T) {
	e := newTestEngine(t)
	ctx := context.Background()

	e.SetActor(alexActor())
	assert.ErrorIs(t, e.Intervention.Close(ctx, []string{seedInterventionAlex1}, "x", ""), ErrForbidden)

	e.SetActor(solarProActor())
	assert.ErrorIs(t, e.Intervention.Close(ctx, []string{seedInterventionAlex1}, "x", ""), ErrNotFound)
}
