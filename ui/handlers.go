package ui

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"blendviz/domain/formulation"
)

// handleIndex renders the dashboard page with the selection controls.
func (s *Server) handleIndex(c *gin.Context) {
	s.renderTemplate(c, "index.html", gin.H{
		"Recipes":     s.recipeOptions,
		"Ingredients": s.ingredientOptions,
	})
}

// handleHeatmap computes the heatmap view for the requested selection.
// Repeated "recipe" and "ingredient" query parameters form the selection;
// no parameters means "all". A selection that resolves to nothing yields an
// empty matrix with HTTP 200, never an error.
func (s *Server) handleHeatmap(c *gin.Context) {
	sel := formulation.Selection{
		Recipes:     c.QueryArray("recipe"),
		Ingredients: c.QueryArray("ingredient"),
	}

	view := s.dataset.Render(sel)
	if len(view.Recipes) == 0 || len(view.Ingredients) == 0 {
		log.Printf("[Heatmap] Selection resolved to an empty matrix (%d recipes, %d ingredients requested)",
			len(sel.Recipes), len(sel.Ingredients))
	}

	c.JSON(http.StatusOK, NewHeatmapResponse(view))
}

// handleOptions returns the selectable recipe and ingredient identifiers.
func (s *Server) handleOptions(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"recipes":     s.recipeOptions,
		"ingredients": s.ingredientOptions,
	})
}

// handleDatasetInfo returns dataset-level statistics for the info panel.
func (s *Server) handleDatasetInfo(c *gin.Context) {
	profiles := s.dataset.Profiles()
	retained := 0
	for _, p := range profiles {
		if p.Retained {
			retained++
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"recipe_count":           len(s.dataset.Source.Recipes()),
		"ingredient_count":       len(s.dataset.Source.Ingredients()),
		"retained_ingredients":   retained,
		"filtered_ingredients":   len(profiles) - retained,
		"classified_ingredients": len(s.dataset.Sensory),
		"grouped_recipes":        len(s.dataset.Groups),
		"profiles":               profiles,
	})
}
