package formulation

import (
	"sort"
)

// OrderIngredients produces the presentation order of ingredient columns:
// primary key is the sensory category in CategoryOrder sequence, with
// unclassified ingredients in a trailing bucket; within a category the
// original input order is preserved. The sort is stable and idempotent.
func OrderIngredients(ingredients []string, sensory SensoryMap) []string {
	rank := make(map[Category]int, len(CategoryOrder)+1)
	for i, c := range CategoryOrder {
		rank[c] = i
	}
	rank[CategoryUnclassified] = len(CategoryOrder)

	ordered := append([]string(nil), ingredients...)
	sort.SliceStable(ordered, func(i, j int) bool {
		return rank[sensory.Category(ordered[i])] < rank[sensory.Category(ordered[j])]
	})
	return ordered
}

// OrderRecipes produces the presentation order of recipe rows: primary key is
// the group label in lexical order, recipes without a label trailing; within
// a group the original input order is preserved.
func OrderRecipes(recipes []string, groups RecipeGroup) []string {
	ordered := append([]string(nil), recipes...)
	sort.SliceStable(ordered, func(i, j int) bool {
		gi, gj := groups[ordered[i]], groups[ordered[j]]
		if gi == "" {
			return false
		}
		if gj == "" {
			return true
		}
		return gi < gj
	})
	return ordered
}

// CategoryBoundaries returns the column indices at which a new sensory
// category starts, excluding index 0. The renderer draws a vertical
// separator immediately before each boundary column. The input must already
// be in presentation order.
func CategoryBoundaries(ordered []string, sensory SensoryMap) []int {
	boundaries := []int{}
	for i := 1; i < len(ordered); i++ {
		if sensory.Category(ordered[i]) != sensory.Category(ordered[i-1]) {
			boundaries = append(boundaries, i)
		}
	}
	return boundaries
}

// GroupBoundaries returns the row indices at which a new recipe group starts,
// excluding index 0. The input must already be in presentation order.
func GroupBoundaries(ordered []string, groups RecipeGroup) []int {
	boundaries := []int{}
	for i := 1; i < len(ordered); i++ {
		if groups[ordered[i]] != groups[ordered[i-1]] {
			boundaries = append(boundaries, i)
		}
	}
	return boundaries
}
