package formulation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProfileIngredients(t *testing.T) {
	source := buildTable(
		[]string{"R1", "R2", "R3"},
		[]string{"honey", "trace"},
		map[string]map[string]float64{
			"R1": {"honey": 0.2, "trace": 0.01},
			"R2": {"honey": 0.4},
			"R3": {"honey": 0.6},
		},
	)
	sensory := SensoryMap{"honey": CategorySweet}
	filtered := Filter(source, 1, 0.03)

	profiles := ProfileIngredients(source, filtered, sensory)
	require.Len(t, profiles, 2)

	honey := profiles[0]
	assert.Equal(t, "honey", honey.Name)
	assert.Equal(t, CategorySweet, honey.Category)
	assert.Equal(t, 3, honey.UsageCount)
	assert.InDelta(t, 0.6, honey.MaxWeight, 1e-9)
	assert.InDelta(t, 0.4, honey.MeanWeight, 1e-9)
	assert.InDelta(t, 0.4, honey.MedianWeight, 1e-9)
	assert.True(t, honey.Retained)

	trace := profiles[1]
	assert.Equal(t, CategoryUnclassified, trace.Category)
	assert.Equal(t, 1, trace.UsageCount)
	assert.False(t, trace.Retained)
}

func TestProfileIngredients_UnusedIngredient(t *testing.T) {
	source := buildTable(
		[]string{"R1"},
		[]string{"ghost"},
		map[string]map[string]float64{"R1": {}},
	)

	profiles := ProfileIngredients(source, Filter(source, 1, 0.03), nil)
	require.Len(t, profiles, 1)

	assert.Equal(t, 0, profiles[0].UsageCount)
	assert.Zero(t, profiles[0].MaxWeight)
	assert.Zero(t, profiles[0].MeanWeight)
	assert.False(t, profiles[0].Retained)
}

func TestProfileIngredients_ZeroWeightCellsNotCountedAsUsage(t *testing.T) {
	source := buildTable(
		[]string{"R1", "R2"},
		[]string{"a"},
		map[string]map[string]float64{
			"R1": {"a": 0},
			"R2": {"a": 0.5},
		},
	)

	profiles := ProfileIngredients(source, source, nil)
	require.Len(t, profiles, 1)
	assert.Equal(t, 1, profiles[0].UsageCount)
	assert.InDelta(t, 0.5, profiles[0].MeanWeight, 1e-9)
}
