package formulation

import (
	"github.com/montanaflynn/stats"
)

// IngredientProfile summarizes one ingredient column of the source table.
type IngredientProfile struct {
	Name         string   `json:"name"`
	Category     Category `json:"category"`
	UsageCount   int      `json:"usage_count"`
	MaxWeight    float64  `json:"max_weight"`
	MeanWeight   float64  `json:"mean_weight"`
	MedianWeight float64  `json:"median_weight"`
	Retained     bool     `json:"retained"`
}

// ProfileIngredients computes per-ingredient usage statistics over the source
// table. Mean and median are taken over the non-zero present weights only, so
// they describe the concentrations at which the ingredient is actually used.
// Retained reflects whether the ingredient survived the significance filter.
func ProfileIngredients(source, filtered *RecipeTable, sensory SensoryMap) []IngredientProfile {
	retained := make(map[string]bool, len(filtered.ingredients))
	for _, ingredient := range filtered.ingredients {
		retained[ingredient] = true
	}

	profiles := make([]IngredientProfile, 0, len(source.ingredients))
	for _, ingredient := range source.ingredients {
		used := []float64{}
		for _, recipe := range source.recipes {
			if v, ok := source.Value(recipe, ingredient); ok && v > 0 {
				used = append(used, v)
			}
		}

		profile := IngredientProfile{
			Name:       ingredient,
			Category:   sensory.Category(ingredient),
			UsageCount: len(used),
			Retained:   retained[ingredient],
		}
		if len(used) > 0 {
			// stats errors only on empty input, which is excluded here.
			profile.MaxWeight, _ = stats.Max(used)
			profile.MeanWeight, _ = stats.Mean(used)
			profile.MedianWeight, _ = stats.Median(used)
		}
		profiles = append(profiles, profile)
	}
	return profiles
}
