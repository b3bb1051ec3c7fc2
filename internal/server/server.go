// Package server is the portfolio's HTTP host: it renders the page, serves the
// htmx fragments and the layout API, and streams hero frames to the browser.
package server

import (
	"context"
	"embed"
	"errors"
	"html/template"
	"io/fs"
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Zachkp/portfolio/internal/config"
	"github.com/Zachkp/portfolio/internal/hero"
	"github.com/Zachkp/portfolio/internal/metrics"
	"github.com/Zachkp/portfolio/internal/realtime"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static/*
var staticFS embed.FS

// HeroSource is the live hero the page shows.
type HeroSource interface {
	Snapshot() hero.Frame
	NodeCount() int
}

// Server holds the gin engine and what its handlers read from.
type Server struct {
	cfg     *config.Config
	hero    HeroSource
	hub     *realtime.Broadcaster[hero.Frame]
	metrics *metrics.Registry
	engine  *gin.Engine
	salt     string
	started  time.Time
	visitors *visitorLog
}

// New builds the engine and registers every route.
func New(cfg *config.Config, source HeroSource, hub *realtime.Broadcaster[hero.Frame], reg *metrics.Registry) (*Server, error) {
	salt, err := config.GenerateToken()
	if err != nil {
		return nil, err
	}
	s := &Server{
		cfg:     cfg,
		hero:    source,
		hub:     hub,
		metrics: reg,
		salt:     salt,
		started:  time.Now(),
		visitors: newVisitorLog(),
	}

	var r *gin.Engine
	if gin.Mode() == gin.DebugMode {
		r = gin.Default()
	} else {
		r = gin.New()
		r.Use(gin.Logger(), gin.Recovery())
	}
	r.Use(s.metricsMiddleware(), s.visitorTrackingMiddleware())

	tmpl, err := template.New("").Funcs(templateFuncs).ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, err
	}
	r.SetHTMLTemplate(tmpl)

	static, err := fs.Sub(staticFS, "static")
	if err != nil {
		return nil, err
	}
	r.StaticFS("/static", http.FS(static))

	s.engine = r
	s.setupPageRoutes(r)
	s.setupAPIRoutes(r)
	s.setupAdminRoutes(r)
	return s, nil
}

// Handler exposes the engine, mostly for tests.
func (s *Server) Handler() http.Handler {
	return s.engine
}

// Run serves on the configured port until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              ":" + s.cfg.Port,
		Handler:           s.engine,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      0, // hero stream is long-lived
		IdleTimeout:       120 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Printf("Portfolio listening on http://localhost:%s", s.cfg.Port)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	// Stream handlers only return once their subscription closes.
	s.hub.Close()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errCh; !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	log.Printf("Portfolio server stopped")
	return nil
}

func (s *Server) metricsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		s.metrics.RecordHTTPRequest(c.Request.Method, path, strconv.Itoa(c.Writer.Status()), time.Since(start))
	}
}

var templateFuncs = template.FuncMap{
	"join": strings.Join,
	"seconds": func(d time.Duration) string {
		return strconv.FormatFloat(d.Seconds(), 'f', 1, 64)
	},
}
