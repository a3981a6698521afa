package ui

import (
	"blendviz/domain/formulation"
)

// HeatmapResponse is the JSON shape consumed by the browser-side renderer.
// Absent cells are encoded as null (JSON cannot carry NaN), which Plotly
// leaves as gaps in the heatmap.
type HeatmapResponse struct {
	Recipes     []string `json:"recipes"`
	Ingredients []string `json:"ingredients"`

	Values [][]*float64 `json:"values"`
	Raw    [][]*float64 `json:"raw"`

	Categories  []string `json:"categories"`
	GroupLabels []string `json:"group_labels"`

	RowBoundaries []int `json:"row_boundaries"`
	ColBoundaries []int `json:"col_boundaries"`
}

// NewHeatmapResponse converts a domain view into the wire shape. It is also
// used by the snapshot generator to inline the same payload into static HTML.
func NewHeatmapResponse(view formulation.HeatmapView) HeatmapResponse {
	categories := make([]string, len(view.Categories))
	for j, c := range view.Categories {
		categories[j] = string(c)
	}

	resp := HeatmapResponse{
		Recipes:       view.Recipes,
		Ingredients:   view.Ingredients,
		Values:        encodeMatrix(view.Values),
		Raw:           encodeMatrix(view.Raw),
		Categories:    categories,
		GroupLabels:   view.GroupLabels,
		RowBoundaries: view.RowBoundaries,
		ColBoundaries: view.ColBoundaries,
	}
	if resp.RowBoundaries == nil {
		resp.RowBoundaries = []int{}
	}
	if resp.ColBoundaries == nil {
		resp.ColBoundaries = []int{}
	}
	return resp
}

func encodeMatrix(m [][]float64) [][]*float64 {
	encoded := make([][]*float64, len(m))
	for i, row := range m {
		encoded[i] = make([]*float64, len(row))
		for j, v := range row {
			if formulation.IsAbsent(v) {
				continue
			}
			value := v
			encoded[i][j] = &value
		}
	}
	return encoded
}
