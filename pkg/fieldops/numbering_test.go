package fieldops

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"solartech.app/field-service/pkg/models"
)

func TestSeedCounterScansBaseline(t *testing.T) {
	assert.Equal(t, 11, seedCounter(DefaultBaseline().Interventions))

	assert.Equal(t, 0, seedCounter(nil))
	assert.Equal(t, 0, seedCounter([]models.Intervention{
		{Number: "OTHER-001"},
		{Number: "INT-2025-abc"},
	}))

	assert.Equal(t, 99, seedCounter([]models.Intervention{
		{Number: "INT-2025-099"},
		{Number: "INT-2025-007"},
	}))
}

func TestNextNumberSequence(t *testing.T) {
	e := newTestEngine(t)

	assert.Equal(t, "INT-2025-012", e.nextNumber())
	assert.Equal(t, "INT-2025-013", e.nextNumber())
}
