package formulation

import (
	"math"
)

// Absent is the sentinel for cells with no recorded weight. It is distinct
// from 0.0: a zero weight means "used at zero concentration" never occurs in
// the source data, while Absent means the ingredient does not appear in the
// recipe at all. The renderer colors absent cells as gaps.
var Absent = math.NaN()

// IsAbsent reports whether v is the absent-cell sentinel.
func IsAbsent(v float64) bool {
	return math.IsNaN(v)
}

// Category is a sensory classification bucket for an ingredient.
type Category string

const (
	CategorySweet   Category = "Sweet"
	CategoryDry     Category = "Dry"
	CategoryRich    Category = "Rich"
	CategoryLight   Category = "Light"
	CategorySmooth  Category = "Smooth"
	CategoryHarsh   Category = "Harsh"
	CategoryCooling Category = "Cooling"

	// CategoryUnclassified is the trailing bucket for ingredients that have
	// no sensory note. It never appears in CategoryOrder.
	CategoryUnclassified Category = "Unclassified"
)

// CategoryOrder is the fixed presentation order of sensory categories.
var CategoryOrder = []Category{
	CategorySweet,
	CategoryDry,
	CategoryRich,
	CategoryLight,
	CategorySmooth,
	CategoryHarsh,
	CategoryCooling,
}

// SensoryMap maps ingredient identifiers to their sensory category.
// Ingredients absent from the map are unclassified.
type SensoryMap map[string]Category

// Category returns the category for an ingredient, or CategoryUnclassified
// when the ingredient has no sensory note. A nil map classifies nothing.
func (m SensoryMap) Category(ingredient string) Category {
	if c, ok := m[ingredient]; ok {
		return c
	}
	return CategoryUnclassified
}

// RecipeGroup maps recipe identifiers to a coarse group label (e.g. G1-G4).
// The label is used only for visual ordering and separators.
type RecipeGroup map[string]string

// Selection is a user-chosen subset of recipes and ingredients.
// An empty slice means "all".
type Selection struct {
	Recipes     []string
	Ingredients []string
}

// RecipeTable is the loaded formulation matrix: rows are recipes, columns are
// ingredients, cells hold non-negative weight values. The table is immutable
// after construction; every derived view is a new value.
type RecipeTable struct {
	recipes     []string
	ingredients []string
	cells       map[string]map[string]float64
}

// NewRecipeTable builds a table from ordered identifiers and cell values.
// The cells map is keyed recipe -> ingredient -> weight; missing keys are
// absent cells. The input maps are copied so later mutation by the caller
// cannot leak into the table.
func NewRecipeTable(recipes, ingredients []string, cells map[string]map[string]float64) *RecipeTable {
	copied := make(map[string]map[string]float64, len(cells))
	for recipe, row := range cells {
		rowCopy := make(map[string]float64, len(row))
		for ingredient, v := range row {
			rowCopy[ingredient] = v
		}
		copied[recipe] = rowCopy
	}
	return &RecipeTable{
		recipes:     append([]string(nil), recipes...),
		ingredients: append([]string(nil), ingredients...),
		cells:       copied,
	}
}

// Recipes returns the recipe identifiers in load order.
func (t *RecipeTable) Recipes() []string {
	return append([]string(nil), t.recipes...)
}

// Ingredients returns the ingredient identifiers in load order.
func (t *RecipeTable) Ingredients() []string {
	return append([]string(nil), t.ingredients...)
}

// Value returns the cell weight and whether the cell is present.
func (t *RecipeTable) Value(recipe, ingredient string) (float64, bool) {
	row, ok := t.cells[recipe]
	if !ok {
		return 0, false
	}
	v, ok := row[ingredient]
	return v, ok
}

// HasRecipe reports whether the table contains the given recipe row.
func (t *RecipeTable) HasRecipe(recipe string) bool {
	_, ok := t.cells[recipe]
	return ok
}

// HasIngredient reports whether the table contains the given ingredient column.
func (t *RecipeTable) HasIngredient(ingredient string) bool {
	for _, ing := range t.ingredients {
		if ing == ingredient {
			return true
		}
	}
	return false
}

// UsageCount returns the number of recipes using the ingredient at a
// non-zero weight.
func (t *RecipeTable) UsageCount(ingredient string) int {
	count := 0
	for _, recipe := range t.recipes {
		if v, ok := t.Value(recipe, ingredient); ok && v > 0 {
			count++
		}
	}
	return count
}

// MaxWeight returns the maximum cell weight of the ingredient across all
// recipes, or 0 when the ingredient is never used.
func (t *RecipeTable) MaxWeight(ingredient string) float64 {
	max := 0.0
	for _, recipe := range t.recipes {
		if v, ok := t.Value(recipe, ingredient); ok && v > max {
			max = v
		}
	}
	return max
}

// Matrix is a derived recipe-by-ingredient view. Values holds normalized
// cells in [0,1], Raw the original weights; both use Absent for cells with
// no data. Row i corresponds to Recipes[i], column j to Ingredients[j].
type Matrix struct {
	Recipes     []string
	Ingredients []string
	Values      [][]float64
	Raw         [][]float64
}

// Empty reports whether the matrix has no rows or no columns.
func (m Matrix) Empty() bool {
	return len(m.Recipes) == 0 || len(m.Ingredients) == 0
}

// Reorder returns a copy of the matrix with rows and columns rearranged to
// the given identifier orders. Both orders must be permutations of the
// matrix's current identifiers; unknown identifiers are skipped.
func (m Matrix) Reorder(recipes, ingredients []string) Matrix {
	rowIdx := make(map[string]int, len(m.Recipes))
	for i, r := range m.Recipes {
		rowIdx[r] = i
	}
	colIdx := make(map[string]int, len(m.Ingredients))
	for j, c := range m.Ingredients {
		colIdx[c] = j
	}

	keptRecipes := make([]string, 0, len(recipes))
	for _, r := range recipes {
		if _, ok := rowIdx[r]; ok {
			keptRecipes = append(keptRecipes, r)
		}
	}
	keptIngredients := make([]string, 0, len(ingredients))
	for _, c := range ingredients {
		if _, ok := colIdx[c]; ok {
			keptIngredients = append(keptIngredients, c)
		}
	}

	values := make([][]float64, len(keptRecipes))
	raw := make([][]float64, len(keptRecipes))
	for i, r := range keptRecipes {
		values[i] = make([]float64, len(keptIngredients))
		raw[i] = make([]float64, len(keptIngredients))
		for j, c := range keptIngredients {
			values[i][j] = m.Values[rowIdx[r]][colIdx[c]]
			raw[i][j] = m.Raw[rowIdx[r]][colIdx[c]]
		}
	}

	return Matrix{
		Recipes:     keptRecipes,
		Ingredients: keptIngredients,
		Values:      values,
		Raw:         raw,
	}
}
