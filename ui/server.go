package ui

import (
	"embed"
	"fmt"
	"html/template"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"blendviz/domain/formulation"
	"blendviz/internal/config"
)

//go:embed templates/* static/*
var embeddedFiles embed.FS

// Server hosts the dashboard: the index page with the selection controls, the
// static assets, and the JSON endpoints the heatmap is drawn from. All state
// behind it is the immutable Dataset, so every handler is safe for concurrent
// requests.
type Server struct {
	router    *gin.Engine
	dataset   *formulation.Dataset
	templates *template.Template
	port      string

	// Selectable options are derived once from the full source table, so
	// filtered-out ingredients stay selectable; the option lists never
	// change after startup.
	recipeOptions     []string
	ingredientOptions []string
}

// NewServer creates the dashboard server around a loaded dataset.
func NewServer(dataset *formulation.Dataset, cfg *config.Config) (*Server, error) {
	gin.SetMode(cfg.Server.GinMode)

	templates, err := template.New("").ParseFS(embeddedFiles, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}

	s := &Server{
		router:            gin.New(),
		dataset:           dataset,
		templates:         templates,
		port:              cfg.Server.Port,
		recipeOptions:     formulation.OrderRecipes(dataset.Source.Recipes(), dataset.Groups),
		ingredientOptions: formulation.OrderIngredients(dataset.Source.Ingredients(), dataset.Sensory),
	}

	s.setupMiddleware()
	s.setupRoutes()

	return s, nil
}

// setupMiddleware configures Gin middleware
func (s *Server) setupMiddleware() {
	s.router.Use(gin.Logger())
	s.router.Use(gin.Recovery())
	s.router.Use(requestID())

	staticFS, err := staticSubFS()
	if err != nil {
		log.Printf("[Server] Error creating static filesystem: %v", err)
		return
	}
	s.router.StaticFS("/static", http.FS(staticFS))
}

// setupRoutes configures the application routes
func (s *Server) setupRoutes() {
	s.router.GET("/", s.handleIndex)
	s.router.GET("/about", s.handleAbout)

	s.router.GET("/api/heatmap", s.handleHeatmap)
	s.router.GET("/api/options", s.handleOptions)
	s.router.GET("/api/dataset/info", s.handleDatasetInfo)
}

// Start starts the web server
func (s *Server) Start() error {
	addr := ":" + s.port
	log.Printf("[Server] Starting formulation dashboard on http://localhost%s", addr)
	return s.router.Run(addr)
}

// Router exposes the underlying handler, used by tests.
func (s *Server) Router() http.Handler {
	return s.router
}

// renderTemplate writes a template response or a 500 on template failure.
func (s *Server) renderTemplate(c *gin.Context, templateName string, data interface{}) {
	c.Header("Content-Type", "text/html")
	if err := s.templates.ExecuteTemplate(c.Writer, templateName, data); err != nil {
		log.Printf("[Server] Template error: %v", err)
		c.AbortWithStatus(http.StatusInternalServerError)
	}
}
