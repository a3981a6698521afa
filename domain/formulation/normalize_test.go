package formulation

import (
	"math"
	"testing"
)

const epsilon = 1e-9

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < epsilon
}

// TestNormalize_ConcreteScenario reproduces the reference 3x3 sub-matrix:
// [[0, 5, 10], [absent, 2, 8], [1, absent, 10]] over present values
// {0,5,10,2,8,1,10} (min=0, max=10).
func TestNormalize_ConcreteScenario(t *testing.T) {
	table := buildTable(
		[]string{"R1", "R2", "R3"},
		[]string{"A", "B", "C"},
		map[string]map[string]float64{
			"R1": {"A": 0, "B": 5, "C": 10},
			"R2": {"B": 2, "C": 8},
			"R3": {"A": 1, "C": 10},
		},
	)

	m := Normalize(table, Selection{})

	expected := [][]float64{
		{0.0, 0.5, 1.0},
		{Absent, 0.2, 0.8},
		{0.1, Absent, 1.0},
	}
	for i := range expected {
		for j := range expected[i] {
			got := m.Values[i][j]
			want := expected[i][j]
			if IsAbsent(want) {
				if !IsAbsent(got) {
					t.Errorf("cell [%d][%d]: expected absent, got %f", i, j, got)
				}
				continue
			}
			if !almostEqual(got, want) {
				t.Errorf("cell [%d][%d]: expected %f, got %f", i, j, want, got)
			}
		}
	}
}

// TestNormalize_RangeBounds verifies min 0 and max 1 whenever at least two
// distinct present values exist.
func TestNormalize_RangeBounds(t *testing.T) {
	table := buildTable(
		[]string{"R1", "R2"},
		[]string{"A", "B"},
		map[string]map[string]float64{
			"R1": {"A": 0.2, "B": 0.7},
			"R2": {"A": 0.4},
		},
	)

	m := Normalize(table, Selection{})

	min, max := math.Inf(1), math.Inf(-1)
	for i := range m.Values {
		for j := range m.Values[i] {
			v := m.Values[i][j]
			if IsAbsent(v) {
				continue
			}
			if v < min {
				min = v
			}
			if v > max {
				max = v
			}
		}
	}
	if !almostEqual(min, 0.0) {
		t.Errorf("expected normalized min 0.0, got %f", min)
	}
	if !almostEqual(max, 1.0) {
		t.Errorf("expected normalized max 1.0, got %f", max)
	}
}

// TestNormalize_DegenerateRange: all present values equal must yield 0.0
// everywhere, never a division fault.
func TestNormalize_DegenerateRange(t *testing.T) {
	table := buildTable(
		[]string{"R1", "R2"},
		[]string{"A", "B"},
		map[string]map[string]float64{
			"R1": {"A": 0.5},
			"R2": {"B": 0.5},
		},
	)

	m := Normalize(table, Selection{})

	for i := range m.Values {
		for j := range m.Values[i] {
			v := m.Values[i][j]
			if IsAbsent(v) {
				continue
			}
			if v != 0 {
				t.Errorf("degenerate range cell [%d][%d]: expected 0, got %f", i, j, v)
			}
		}
	}
}

func TestNormalize_SingleValue(t *testing.T) {
	table := buildTable(
		[]string{"R1"},
		[]string{"A"},
		map[string]map[string]float64{
			"R1": {"A": 3.7},
		},
	)

	m := Normalize(table, Selection{})
	if m.Values[0][0] != 0 {
		t.Errorf("single data point should normalize to 0, got %f", m.Values[0][0])
	}
}

// TestNormalize_AbsentInvariant: absent in input implies absent in output.
func TestNormalize_AbsentInvariant(t *testing.T) {
	table := buildTable(
		[]string{"R1", "R2"},
		[]string{"A", "B"},
		map[string]map[string]float64{
			"R1": {"A": 0.1},
			"R2": {"B": 0.9},
		},
	)

	m := Normalize(table, Selection{})

	if !IsAbsent(m.Values[0][1]) || !IsAbsent(m.Values[1][0]) {
		t.Error("absent cells must remain absent after normalization")
	}
	if !IsAbsent(m.Raw[0][1]) || !IsAbsent(m.Raw[1][0]) {
		t.Error("absent cells must remain absent in the raw matrix")
	}
}

// TestNormalize_SubsetSelection verifies min/max come from only the selected
// sub-matrix, not the whole table.
func TestNormalize_SubsetSelection(t *testing.T) {
	table := buildTable(
		[]string{"R1", "R2"},
		[]string{"A", "B"},
		map[string]map[string]float64{
			"R1": {"A": 1, "B": 100},
			"R2": {"A": 3, "B": 50},
		},
	)

	m := Normalize(table, Selection{Ingredients: []string{"A"}})

	if len(m.Ingredients) != 1 || m.Ingredients[0] != "A" {
		t.Fatalf("unexpected ingredient selection: %v", m.Ingredients)
	}
	// Over {1, 3}: 1 -> 0.0, 3 -> 1.0. A global scale would give tiny values.
	if !almostEqual(m.Values[0][0], 0.0) || !almostEqual(m.Values[1][0], 1.0) {
		t.Errorf("per-selection scale expected [0,1], got [%f, %f]", m.Values[0][0], m.Values[1][0])
	}
}

func TestNormalize_UnknownIdentifiersIgnored(t *testing.T) {
	table := buildTable(
		[]string{"R1"},
		[]string{"A"},
		map[string]map[string]float64{
			"R1": {"A": 0.5},
		},
	)

	m := Normalize(table, Selection{
		Recipes:     []string{"R1", "ghost"},
		Ingredients: []string{"A", "phantom"},
	})

	if len(m.Recipes) != 1 || len(m.Ingredients) != 1 {
		t.Errorf("unknown identifiers should be ignored, got %v x %v", m.Recipes, m.Ingredients)
	}
}

func TestNormalize_EmptySelection(t *testing.T) {
	table := buildTable(
		[]string{"R1"},
		[]string{"A"},
		map[string]map[string]float64{
			"R1": {"A": 0.5},
		},
	)

	m := Normalize(table, Selection{Recipes: []string{"ghost"}})

	if !m.Empty() {
		t.Errorf("selection resolving to nothing should yield an empty matrix, got %v x %v", m.Recipes, m.Ingredients)
	}
}

func TestNormalize_AllAbsentSelection(t *testing.T) {
	table := buildTable(
		[]string{"R1", "R2"},
		[]string{"A", "B"},
		map[string]map[string]float64{
			"R1": {"A": 0.5},
			"R2": {"B": 0.3},
		},
	)

	// R1 x B has no data at all.
	m := Normalize(table, Selection{Recipes: []string{"R1"}, Ingredients: []string{"B"}})

	if m.Empty() {
		t.Fatal("matrix with rows and columns but no data should not be empty")
	}
	if !IsAbsent(m.Values[0][0]) {
		t.Errorf("expected all-absent matrix, got %f", m.Values[0][0])
	}
}
