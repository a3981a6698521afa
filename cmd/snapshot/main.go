// Command snapshot writes a standalone, self-contained HTML heatmap of the
// full dataset. The output is a build artifact for sharing outside the
// dashboard; it embeds the rendered view as inline JSON and pulls Plotly
// from its CDN.
package main

import (
	"context"
	"encoding/json"
	"log"
	"os"

	"github.com/joho/godotenv"

	"blendviz/app"
	"blendviz/domain/formulation"
	"blendviz/internal/config"
	"blendviz/ui"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	dataset, err := app.LoadDataset(context.Background(), cfg)
	if err != nil {
		log.Fatalf("Failed to load dataset: %v", err)
	}

	view := dataset.Render(formulation.Selection{})
	payload, err := json.Marshal(ui.NewHeatmapResponse(view))
	if err != nil {
		log.Fatalf("Failed to encode heatmap payload: %v", err)
	}

	outFile := os.Getenv("SNAPSHOT_FILE")
	if outFile == "" {
		outFile = "heatmap_snapshot.html"
	}

	f, err := os.Create(outFile)
	if err != nil {
		log.Fatalf("Failed to create %s: %v", outFile, err)
	}
	defer f.Close()

	if err := writeSnapshot(f, payload); err != nil {
		log.Fatalf("Failed to write snapshot: %v", err)
	}

	log.Printf("[Snapshot] Wrote %s (%d recipes x %d ingredients)", outFile, len(view.Recipes), len(view.Ingredients))
}
