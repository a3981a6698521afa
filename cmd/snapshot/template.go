package main

import (
	"html/template"
	"io"
)

var snapshotTemplate = template.Must(template.New("snapshot").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <title>Formulation Heatmap Snapshot</title>
    <script src="https://cdn.plot.ly/plotly-2.35.2.min.js"></script>
    <style>
        body { font-family: Arial, sans-serif; margin: 0; padding: 10px; }
        #heatmap { width: 100vw; height: 92vh; }
        h1 { font-size: 16px; margin: 4px 0 8px; }
    </style>
</head>
<body>
    <h1>Formulation Heatmap</h1>
    <div id="heatmap"></div>
    <script>
        const data = {{.Payload}};

        const shapes = [];
        data.col_boundaries.forEach(j => shapes.push({
            type: 'line', yref: 'paper',
            x0: j - 0.5, x1: j - 0.5, y0: 0, y1: 1,
            line: { color: 'red', width: 2 },
        }));
        data.row_boundaries.forEach(i => shapes.push({
            type: 'line', xref: 'paper',
            x0: 0, x1: 1, y0: i - 0.5, y1: i - 0.5,
            line: { color: 'red', width: 2 },
        }));

        Plotly.newPlot('heatmap', [{
            type: 'heatmap',
            z: data.values,
            x: data.ingredients,
            y: data.recipes,
            colorscale: 'Viridis',
            zmin: 0,
            zmax: 1,
            colorbar: { title: { text: 'Normalized' } },
        }], {
            margin: { t: 20, l: 220, r: 40, b: 160 },
            xaxis: { tickangle: 90, tickfont: { size: 9 } },
            yaxis: { tickfont: { size: 10 }, autorange: 'reversed' },
            shapes: shapes,
        }, { responsive: true });
    </script>
</body>
</html>
`))

// writeSnapshot renders the standalone page with the heatmap payload inlined.
// The payload is pre-marshaled JSON; template.JS keeps it unescaped inside
// the script block.
func writeSnapshot(w io.Writer, payload []byte) error {
	return snapshotTemplate.Execute(w, map[string]interface{}{
		"Payload": template.JS(payload),
	})
}
