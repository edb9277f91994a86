package fieldops

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"solartech.app/field-service/pkg/models"
)

const (
	seedInterventionAlex1   = "00000001-0001-0001-0001-000000000001"
	seedInterventionAlex2   = "00000002-0002-0002-0002-000000000002"
	seedInterventionBillo1  = "00000003-0003-0003-0003-000000000003"
	seedInterventionNoTech  = "00000004-0004-0004-0004-000000000004"
	seedInterventionAlex3   = "00000005-0005-0005-0005-000000000005"
	seedInterventionOrphan1 = "00000009-0009-0009-0009-000000000009"
)

func TestVisibleInterventionsMaster(t *testing.T) {
	e := newTestEngine(t)
	e.SetActor(masterActor())

	assert.Len(t, e.Intervention.Visible(), 11)
	assert.Equal(t, 11, e.Intervention.AllCount())
}

func TestVisibleInterventionsCompanyScoped(t *testing.T) {
	e := newTestEngine(t)

	e.SetActor(gbdActor())
	gbd := e.Intervention.Visible()
	assert.Len(t, gbd, 6)
	for _, i := range gbd {
		assert.Equal(t, seedCompanyGBD, *i.CompanyID)
	}

	e.SetActor(solarProActor())
	solar := e.Intervention.Visible()
	assert.Len(t, solar, 2)
	for _, i := range solar {
		assert.Equal(t, seedCompanySolarPro, *i.CompanyID)
	}
}

func TestVisibleInterventionsTechnician(t *testing.T) {
	e := newTestEngine(t)
	e.SetActor(alexActor())

	visible := e.Intervention.Visible()
	ids := interventionIDs(visible)

	// own assignments plus the company's unclaimed record
	assert.Len(t, visible, 4)
	assert.True(t, ids[seedInterventionAlex1])
	assert.True(t, ids[seedInterventionAlex2])
	assert.True(t, ids[seedInterventionAlex3])
	assert.True(t, ids[seedInterventionNoTech])

	// another technician's assignment stays hidden
	assert.False(t, ids[seedInterventionBillo1])
	// company-unassigned records stay hidden too
	assert.False(t, ids[seedInterventionOrphan1])
}

func TestVisibleInterventionsNoActor(t *testing.T) {
	e := newTestEngine(t)
	assert.Empty(t, e.Intervention.Visible())
}

func TestVisibleInterventionsOrdering(t *testing.T) {
	e := newTestEngine(t)
	e.SetActor(masterActor())

	visible := e.Intervention.Visible()
	for i := 1; i < len(visible); i++ {
		if visible[i-1].CreatedAt == visible[i].CreatedAt {
			assert.Less(t, visible[i-1].ID, visible[i].ID)
			continue
		}
		assert.Greater(t, visible[i-1].CreatedAt, visible[i].CreatedAt)
	}
}

func TestUnassignedInterventions(t *testing.T) {
	e := newTestEngine(t)

	e.SetActor(masterActor())
	unassigned := e.Intervention.Unassigned()
	assert.Len(t, unassigned, 3)
	for _, i := range unassigned {
		assert.Nil(t, i.CompanyID)
	}

	// company actors never see the unassigned pool
	e.SetActor(gbdActor())
	assert.Empty(t, e.Intervention.Unassigned())
}

func TestInterventionByIDScoped(t *testing.T) {
	e := newTestEngine(t)

	e.SetActor(solarProActor())
	_, ok := e.Intervention.ByID(seedInterventionAlex1)
	assert.False(t, ok)

	e.SetActor(masterActor())
	found, ok := e.Intervention.ByID(seedInterventionAlex1)
	assert.True(t, ok)
	assert.Equal(t, "INT-2025-001", found.Number)
}

func TestVisibleAppointmentsFollowInterventions(t *testing.T) {
	e := newTestEngine(t)

	e.SetActor(masterActor())
	assert.Len(t, e.Appointment.Visible(), 2)

	e.SetActor(gbdActor())
	assert.Len(t, e.Appointment.Visible(), 2)

	// apt-002 links a record claimed by another technician
	e.SetActor(alexActor())
	visible := e.Appointment.Visible()
	assert.Len(t, visible, 1)
	assert.Equal(t, "apt-001", visible[0].ID)

	e.SetActor(solarProActor())
	assert.Empty(t, e.Appointment.Visible())
}

func TestVisibleAppointmentsUnlinkedAlwaysShown(t *testing.T) {
	unlinked := models.Appointment{ID: "apt-x", ClientName: "Cliente", Date: 1}
	visible := VisibleAppointments(solarProActor(), []models.Appointment{unlinked}, nil)
	assert.Len(t, visible, 1)
}

func TestVisibleCompanies(t *testing.T) {
	e := newTestEngine(t)

	e.SetActor(masterActor())
	assert.Len(t, e.Company.Visible(), 2)

	e.SetActor(gbdActor())
	own := e.Company.Visible()
	assert.Len(t, own, 1)
	assert.Equal(t, seedCompanyGBD, own[0].ID)

	e.SetActor(alexActor())
	assert.Empty(t, e.Company.Visible())
}

func TestVisibleUsers(t *testing.T) {
	e := newTestEngine(t)

	e.SetActor(masterActor())
	assert.Len(t, e.User.Visible(), 6)

	e.SetActor(gbdActor())
	own := e.User.Visible()
	assert.Len(t, own, 3)
	for _, u := range own {
		assert.Equal(t, seedCompanyGBD, *u.CompanyID)
	}

	e.SetActor(alexActor())
	assert.Empty(t, e.User.Visible())
}
