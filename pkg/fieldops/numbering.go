package fieldops

import (
	"fmt"
	"strconv"
	"strings"

	"solartech.app/field-service/pkg/models"
)

const interventionNumberPrefix = "INT-2025-"

// seedCounter seeds the sequence above the highest numeric suffix in the
// baseline fixture. The counter is process-local and resets on restart.
func seedCounter(interventions []models.Intervention) int {
	max := 0
	for _, i := range interventions {
		suffix, ok := strings.CutPrefix(i.Number, interventionNumberPrefix)
		if !ok {
			continue
		}
		n, err := strconv.Atoi(suffix)
		if err != nil {
			continue
		}
		if n > max {
			max = n
		}
	}
	return max
}

// nextNumber advances the in-memory sequence; caller holds e.mu.
func (e *Engine) nextNumber() string {
	e.counter++
	return fmt.Sprintf("%s%03d", interventionNumberPrefix, e.counter)
}
