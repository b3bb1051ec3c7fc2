package server

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Zachkp/portfolio/internal/network"
	"github.com/Zachkp/portfolio/internal/portfolio"
)

func (s *Server) setupPageRoutes(r *gin.Engine) {
	// Home page route
	r.GET("/", func(c *gin.Context) {
		frame := s.hero.Snapshot()
		layout, err := network.Generate(network.DefaultWidth, network.DefaultHeight, s.cfg.Hero.Layers)
		s.metrics.RecordLayout(err)
		if err != nil {
			// Layers are validated at startup, so this is a programming error.
			log.Printf("Error generating hero layout: %v", err)
			c.String(http.StatusInternalServerError, "hero layout unavailable")
			return
		}
		particles, _ := network.Particles(network.DefaultParticleCount, network.DefaultWidth, network.DefaultHeight)

		c.HTML(http.StatusOK, "index.html", gin.H{
			"name":        portfolio.Name,
			"tagline":     portfolio.Tagline,
			"email":       portfolio.Email,
			"frame":       frame,
			"scene":       layout.Scene(frame.Active),
			"particles":   particles,
			"categories":  portfolio.Categories(portfolio.TechStack),
			"active":      portfolio.AllCategories,
			"tech":        portfolio.TechStack,
			"experiences": portfolio.Experiences,
			"projects":    portfolio.Projects,
		})
	})

	// Tech stack panel, filtered by category (htmx)
	r.GET("/tech-content", func(c *gin.Context) {
		category := c.DefaultQuery("category", portfolio.AllCategories)
		c.HTML(http.StatusOK, "tech-content.html", gin.H{
			"categories": portfolio.Categories(portfolio.TechStack),
			"active":     category,
			"tech":       portfolio.Filter(portfolio.TechStack, category),
		})
	})

	// Experience timeline
	r.GET("/experience-content", func(c *gin.Context) {
		c.HTML(http.StatusOK, "experience-content.html", gin.H{
			"experiences": portfolio.Experiences,
		})
	})

	// Project gallery
	r.GET("/projects-content", func(c *gin.Context) {
		c.HTML(http.StatusOK, "projects-content.html", gin.H{
			"projects": portfolio.Projects,
		})
	})

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
}
