package formulation

import (
	"reflect"
	"testing"
)

func demoDataset() *Dataset {
	source := buildTable(
		[]string{"R1", "R2", "R3"},
		[]string{"honey", "burley", "menthol", "trace"},
		map[string]map[string]float64{
			"R1": {"honey": 0.5, "burley": 0.2, "trace": 0.01},
			"R2": {"honey": 0.1, "menthol": 0.4},
			"R3": {"burley": 0.3, "menthol": 0.2},
		},
	)
	sensory := SensoryMap{
		"honey":   CategorySweet,
		"burley":  CategoryDry,
		"menthol": CategoryCooling,
	}
	groups := RecipeGroup{"R1": "G2", "R2": "G1", "R3": "G1"}

	return &Dataset{
		Source:  source,
		Table:   Filter(source, 1, 0.03),
		Sensory: sensory,
		Groups:  groups,
	}
}

func TestRender_OrderingApplied(t *testing.T) {
	view := demoDataset().Render(Selection{})

	// trace: used once at 0.01, filtered out
	wantIngredients := []string{"honey", "burley", "menthol"}
	if !reflect.DeepEqual(view.Ingredients, wantIngredients) {
		t.Errorf("expected ingredients %v, got %v", wantIngredients, view.Ingredients)
	}

	// G1 before G2, original order within group
	wantRecipes := []string{"R2", "R3", "R1"}
	if !reflect.DeepEqual(view.Recipes, wantRecipes) {
		t.Errorf("expected recipes %v, got %v", wantRecipes, view.Recipes)
	}

	if !reflect.DeepEqual(view.ColBoundaries, []int{1, 2}) {
		t.Errorf("expected column boundaries [1 2], got %v", view.ColBoundaries)
	}
	if !reflect.DeepEqual(view.RowBoundaries, []int{2}) {
		t.Errorf("expected row boundary [2], got %v", view.RowBoundaries)
	}
}

// TestRender_OrderingDoesNotChangeValues: the normalized value of a given
// (recipe, ingredient) cell is identical whether or not ordering moved it.
func TestRender_OrderingDoesNotChangeValues(t *testing.T) {
	d := demoDataset()
	view := d.Render(Selection{})
	matrix := Normalize(d.Table, Selection{})

	unorderedIdx := func(labels []string, want string) int {
		for i, l := range labels {
			if l == want {
				return i
			}
		}
		t.Fatalf("label %s not found in %v", want, labels)
		return -1
	}

	for i, recipe := range view.Recipes {
		for j, ingredient := range view.Ingredients {
			ui := unorderedIdx(matrix.Recipes, recipe)
			uj := unorderedIdx(matrix.Ingredients, ingredient)
			got, want := view.Values[i][j], matrix.Values[ui][uj]
			if IsAbsent(got) != IsAbsent(want) {
				t.Fatalf("cell %s/%s: absence changed by ordering", recipe, ingredient)
			}
			if !IsAbsent(got) && got != want {
				t.Errorf("cell %s/%s: value changed by ordering: %f vs %f", recipe, ingredient, got, want)
			}
		}
	}
}

// TestRender_Deterministic: two calls with the same selection produce
// identical output.
func TestRender_Deterministic(t *testing.T) {
	d := demoDataset()
	sel := Selection{Recipes: []string{"R1", "R3"}, Ingredients: []string{"honey", "burley"}}

	a := d.Render(sel)
	b := d.Render(sel)

	if !reflect.DeepEqual(a.Recipes, b.Recipes) || !reflect.DeepEqual(a.Ingredients, b.Ingredients) {
		t.Error("render labels are not deterministic")
	}
	for i := range a.Values {
		for j := range a.Values[i] {
			av, bv := a.Values[i][j], b.Values[i][j]
			if IsAbsent(av) != IsAbsent(bv) || (!IsAbsent(av) && av != bv) {
				t.Fatalf("render values differ between identical calls at [%d][%d]", i, j)
			}
		}
	}
}

// TestRender_Pure: rendering must not mutate the dataset.
func TestRender_Pure(t *testing.T) {
	d := demoDataset()
	before := d.Table.Ingredients()

	_ = d.Render(Selection{Recipes: []string{"R2"}})
	_ = d.Render(Selection{})

	after := d.Table.Ingredients()
	if !reflect.DeepEqual(before, after) {
		t.Error("render mutated the filtered table")
	}
}

func TestRender_EmptySelection(t *testing.T) {
	view := demoDataset().Render(Selection{Recipes: []string{"nonexistent"}})

	if len(view.Recipes) != 0 {
		t.Errorf("expected empty view, got recipes %v", view.Recipes)
	}
	if len(view.RowBoundaries) != 0 || len(view.ColBoundaries) != 0 {
		t.Error("empty view should have no separator boundaries")
	}
}

func TestRender_HoverMetadata(t *testing.T) {
	view := demoDataset().Render(Selection{})

	for i, recipe := range view.Recipes {
		for j, ingredient := range view.Ingredients {
			raw := view.Raw[i][j]
			if IsAbsent(view.Values[i][j]) != IsAbsent(raw) {
				t.Fatalf("raw/normalized absence mismatch at %s/%s", recipe, ingredient)
			}
		}
	}

	if len(view.Categories) != len(view.Ingredients) {
		t.Errorf("expected one category per ingredient, got %d for %d", len(view.Categories), len(view.Ingredients))
	}
	if len(view.GroupLabels) != len(view.Recipes) {
		t.Errorf("expected one group label per recipe, got %d for %d", len(view.GroupLabels), len(view.Recipes))
	}
}
