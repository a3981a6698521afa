package ui

import (
	_ "embed"
	"html/template"

	"github.com/gin-gonic/gin"
	"github.com/gomarkdown/markdown"
	mdhtml "github.com/gomarkdown/markdown/html"
	"github.com/gomarkdown/markdown/parser"
)

//go:embed content/methodology.md
var methodologyMarkdown []byte

// handleAbout renders the methodology page: the filter rule, the
// normalization semantics and the category legend, kept as markdown so it
// stays readable next to the code.
func (s *Server) handleAbout(c *gin.Context) {
	p := parser.NewWithExtensions(parser.CommonExtensions)
	renderer := mdhtml.NewRenderer(mdhtml.RendererOptions{Flags: mdhtml.CommonFlags})
	body := markdown.ToHTML(methodologyMarkdown, p, renderer)

	s.renderTemplate(c, "about.html", gin.H{
		"Content": template.HTML(body),
	})
}
