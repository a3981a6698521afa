package formulation

// Filter returns a new table without the low-significance ingredient columns.
//
// An ingredient is dropped when BOTH conditions hold: its non-zero usage
// count is at most minUsage AND its maximum weight across all recipes is
// below minWeight. The conjunction matters: an ingredient used once but at a
// high weight is retained, as is a low-weight ingredient used in many
// recipes. The input table is never mutated.
func Filter(table *RecipeTable, minUsage int, minWeight float64) *RecipeTable {
	kept := make([]string, 0, len(table.ingredients))
	for _, ingredient := range table.ingredients {
		if table.UsageCount(ingredient) <= minUsage && table.MaxWeight(ingredient) < minWeight {
			continue
		}
		kept = append(kept, ingredient)
	}

	keptSet := make(map[string]bool, len(kept))
	for _, ingredient := range kept {
		keptSet[ingredient] = true
	}

	cells := make(map[string]map[string]float64, len(table.recipes))
	for recipe, row := range table.cells {
		newRow := make(map[string]float64, len(row))
		for ingredient, v := range row {
			if keptSet[ingredient] {
				newRow[ingredient] = v
			}
		}
		cells[recipe] = newRow
	}

	return &RecipeTable{
		recipes:     append([]string(nil), table.recipes...),
		ingredients: kept,
		cells:       cells,
	}
}
