package formulation

// Dataset is the immutable context shared by all render calls: the source
// table as loaded, the significance-filtered table, and the optional
// classification maps. Construct it once at startup and treat it as
// read-only; Render is then a pure function, safe for concurrent callers.
type Dataset struct {
	Source  *RecipeTable
	Table   *RecipeTable
	Sensory SensoryMap
	Groups  RecipeGroup
}

// HeatmapView is everything the renderer needs for one heatmap: ordered
// labels, the normalized matrix with Absent sentinels, per-cell raw weights
// for hover text, per-label group/category annotations, and the separator
// positions between groups.
type HeatmapView struct {
	Recipes     []string
	Ingredients []string

	// Values and Raw are row-major [recipe][ingredient]; Absent marks
	// cells with no data in both.
	Values [][]float64
	Raw    [][]float64

	// Categories[j] is the sensory category of Ingredients[j];
	// GroupLabels[i] is the group of Recipes[i] ("" when ungrouped).
	Categories  []Category
	GroupLabels []string

	// RowBoundaries / ColBoundaries are the indices before which a group or
	// category separator line is drawn.
	RowBoundaries []int
	ColBoundaries []int
}

// Render computes the heatmap view for a selection: normalize the selected
// sub-matrix of the filtered table, then reorder rows by recipe group and
// columns by sensory category. Normalization runs on the unordered selection,
// so ordering is purely presentational and never changes cell values.
// An empty or fully-unknown selection yields an empty view, not an error.
func (d *Dataset) Render(sel Selection) HeatmapView {
	matrix := Normalize(d.Table, sel)

	orderedRecipes := OrderRecipes(matrix.Recipes, d.Groups)
	orderedIngredients := OrderIngredients(matrix.Ingredients, d.Sensory)
	matrix = matrix.Reorder(orderedRecipes, orderedIngredients)

	categories := make([]Category, len(matrix.Ingredients))
	for j, ingredient := range matrix.Ingredients {
		categories[j] = d.Sensory.Category(ingredient)
	}
	groupLabels := make([]string, len(matrix.Recipes))
	for i, recipe := range matrix.Recipes {
		groupLabels[i] = d.Groups[recipe]
	}

	return HeatmapView{
		Recipes:       matrix.Recipes,
		Ingredients:   matrix.Ingredients,
		Values:        matrix.Values,
		Raw:           matrix.Raw,
		Categories:    categories,
		GroupLabels:   groupLabels,
		RowBoundaries: GroupBoundaries(matrix.Recipes, d.Groups),
		ColBoundaries: CategoryBoundaries(matrix.Ingredients, d.Sensory),
	}
}

// Profiles returns the per-ingredient usage statistics for the info panel.
func (d *Dataset) Profiles() []IngredientProfile {
	return ProfileIngredients(d.Source, d.Table, d.Sensory)
}
