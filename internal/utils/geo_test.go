package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHaversineKm(t *testing.T) {
	assert.Equal(t, 0.0, HaversineKm(-6.2, 106.8, -6.2, 106.8))

	// Jakarta to Bandung, roughly 116 km as the crow flies
	d := HaversineKm(-6.2088, 106.8456, -6.9175, 107.6191)
	assert.InDelta(t, 116, d, 3)
}
