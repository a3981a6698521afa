package formulation

import (
	"gonum.org/v1/gonum/floats"
)

// Normalize extracts the sub-matrix for the selection and min-max-normalizes
// it over the flattened set of present values: v' = (v - min) / (max - min).
//
// The min and max are recomputed over only the selected sub-matrix, not the
// full table. That is deliberate: the dashboard compares concentrations
// within the current view, so the brightest cell is always the selected
// maximum.
//
// Selected identifiers unknown to the table are ignored. When max == min
// (single data point, or all present values equal) every present cell
// normalizes to 0 rather than dividing by zero. Absent cells stay absent.
func Normalize(table *RecipeTable, sel Selection) Matrix {
	recipes := resolveRecipes(table, sel.Recipes)
	ingredients := resolveIngredients(table, sel.Ingredients)

	raw := make([][]float64, len(recipes))
	present := make([]float64, 0, len(recipes)*len(ingredients))
	for i, recipe := range recipes {
		raw[i] = make([]float64, len(ingredients))
		for j, ingredient := range ingredients {
			v, ok := table.Value(recipe, ingredient)
			if !ok {
				raw[i][j] = Absent
				continue
			}
			raw[i][j] = v
			present = append(present, v)
		}
	}

	values := make([][]float64, len(recipes))
	if len(present) == 0 {
		for i := range values {
			values[i] = make([]float64, len(ingredients))
			for j := range values[i] {
				values[i][j] = Absent
			}
		}
		return Matrix{Recipes: recipes, Ingredients: ingredients, Values: values, Raw: raw}
	}

	min := floats.Min(present)
	max := floats.Max(present)
	span := max - min

	for i := range raw {
		values[i] = make([]float64, len(ingredients))
		for j, v := range raw[i] {
			switch {
			case IsAbsent(v):
				values[i][j] = Absent
			case span == 0:
				values[i][j] = 0
			default:
				values[i][j] = (v - min) / span
			}
		}
	}

	return Matrix{Recipes: recipes, Ingredients: ingredients, Values: values, Raw: raw}
}

// resolveRecipes intersects the requested recipes with the table, preserving
// table row order for determinism. Empty request means all recipes.
func resolveRecipes(table *RecipeTable, requested []string) []string {
	if len(requested) == 0 {
		return table.Recipes()
	}
	want := make(map[string]bool, len(requested))
	for _, r := range requested {
		want[r] = true
	}
	resolved := make([]string, 0, len(requested))
	for _, r := range table.recipes {
		if want[r] {
			resolved = append(resolved, r)
		}
	}
	return resolved
}

func resolveIngredients(table *RecipeTable, requested []string) []string {
	if len(requested) == 0 {
		return table.Ingredients()
	}
	want := make(map[string]bool, len(requested))
	for _, c := range requested {
		want[c] = true
	}
	resolved := make([]string, 0, len(requested))
	for _, c := range table.ingredients {
		if want[c] {
			resolved = append(resolved, c)
		}
	}
	return resolved
}
