package fieldops

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGlobalStats(t *testing.T) {
	e := newTestEngine(t)

	stats := e.GlobalStats()

	assert.Equal(t, 11, stats.TotalInterventions)
	assert.Equal(t, 2, stats.TotalCompanies)
	assert.Equal(t, 3, stats.TotalTechnicians)
	assert.Equal(t, 3, stats.UnassignedCount)

	assert.Equal(t, 6, stats.ByStatus["assegnato"])
	assert.Equal(t, 3, stats.ByStatus["appuntamento_fissato"])
	assert.Equal(t, 2, stats.ByStatus["completato"])

	require.Len(t, stats.ByCompany, 2)
	// sorted by company id: GBD (1111...) before Solar Pro (2222...)
	assert.Equal(t, seedCompanyGBD, stats.ByCompany[0].CompanyID)
	assert.Equal(t, 6, stats.ByCompany[0].Count)
	assert.Equal(t, seedCompanySolarPro, stats.ByCompany[1].CompanyID)
	assert.Equal(t, 2, stats.ByCompany[1].Count)
}
