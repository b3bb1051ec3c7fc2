package server

import (
	"io"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Zachkp/portfolio/internal/network"
)

func (s *Server) setupAPIRoutes(r *gin.Engine) {
	api := r.Group("/api")

	api.GET("/network", func(c *gin.Context) {
		width, height, ok := dimensions(c)
		if !ok {
			s.metrics.RecordLayout(network.ErrDimensions)
			return
		}
		layout, err := network.Generate(width, height, s.cfg.Hero.Layers)
		s.metrics.RecordLayout(err)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, layout)
	})

	api.GET("/particles", func(c *gin.Context) {
		width, height, ok := dimensions(c)
		if !ok {
			return
		}
		particles, err := network.Particles(network.DefaultParticleCount, width, height)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"particles": particles})
	})

	api.GET("/hero", func(c *gin.Context) {
		c.JSON(http.StatusOK, s.hero.Snapshot())
	})

	api.GET("/hero/stream", s.streamHero)
}

// dimensions reads width and height query parameters, defaulting to the hero
// viewport. On a malformed value it writes a 400 and returns ok=false.
func dimensions(c *gin.Context) (width, height float64, ok bool) {
	width, height = network.DefaultWidth, network.DefaultHeight
	for _, p := range []struct {
		name string
		dst  *float64
	}{{"width", &width}, {"height", &height}} {
		raw, present := c.GetQuery(p.name)
		if !present {
			continue
		}
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid " + p.name + ": " + raw})
			return 0, 0, false
		}
		*p.dst = v
	}
	return width, height, true
}

// streamHero pushes the current frame, then every new frame, as server-sent events.
func (s *Server) streamHero(c *gin.Context) {
	sub := s.hub.Subscribe()
	defer s.hub.Unsubscribe(sub)

	s.metrics.StreamClients.Inc()
	defer s.metrics.StreamClients.Dec()
	log.Printf("Hero stream %s opened from %s", sub.ID, s.hashIP(c.ClientIP()))

	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")
	c.Header("X-Accel-Buffering", "no")

	c.SSEvent("frame", s.hero.Snapshot())
	c.Writer.Flush()

	c.Stream(func(w io.Writer) bool {
		select {
		case frame, ok := <-sub.C:
			if !ok {
				return false
			}
			c.SSEvent("frame", frame)
			return true
		case <-c.Request.Context().Done():
			return false
		}
	})
	log.Printf("Hero stream %s closed", sub.ID)
}
