// Package server exposes the viewer page and its scene over HTTP.
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
	"golang.org/x/text/language"

	"github.com/curbz/visor3d/internal/config"
	"github.com/curbz/visor3d/internal/czml"
	"github.com/curbz/visor3d/internal/page"
	"github.com/curbz/visor3d/internal/viewparams"
	"github.com/curbz/visor3d/internal/visor"
)

type Server struct {
	cfg         *config.Config
	log         *log.Logger
	initializer *visor.Initializer
	fallback    language.Tag
	engine      *gin.Engine
}

func New(cfg *config.Config, logger *log.Logger) *Server {
	in := visor.New(czml.NewWidget, cfg.Viewer.Container)
	in.Options = cfg.Viewer.Options
	in.ShowCredits = cfg.Viewer.ShowCredits
	in.Camera = cfg.Camera
	in.Logger = logger

	fallback := page.MatchLanguage(cfg.Page.DefaultLanguage, page.Supported[0])

	s := &Server{
		cfg:         cfg,
		log:         logger,
		initializer: in,
		fallback:    fallback,
		engine:      gin.New(),
	}
	s.setupRoutes()
	return s
}

// Handler returns the router, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.engine
}

func (s *Server) setupRoutes() {
	s.engine.Use(gin.Recovery(), s.requestLogger(), cors())

	s.engine.GET("/", s.getPage)

	s.engine.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "pong",
			"status":  "ok",
		})
	})

	api := s.engine.Group("/api")
	{
		// Example: GET /api/params?lat=10&lon=-75&radio=1000&loc=Medellín
		api.GET("/params", s.getParams)
		api.GET("/scene", s.getScene)
		api.GET("/scene.czml", s.getCZML)
		api.GET("/scene.geojson", s.getGeoJSON)
		api.GET("/link", s.getLink)
	}

	s.engine.GET("/ws", s.stream)
}

// build is one page load: resolved parameters, the page with its labels
// filled in, and the scene drawn into it.
type build struct {
	params viewparams.ViewParameters
	doc    *page.Document
	scene  *czml.Scene
}

func (s *Server) build(q url.Values, acceptLanguage string) (*build, error) {
	p := viewparams.ResolveWith(q, s.cfg.Defaults)

	doc := page.New(page.Options{
		Container:     s.cfg.Viewer.Container,
		ShowPanel:     s.cfg.Page.ShowPanel,
		Title:         s.cfg.Page.Title,
		CesiumBaseURL: s.cfg.Viewer.CesiumBaseURL,
		IonToken:      s.cfg.Viewer.IonToken,
	}, page.MatchLanguage(acceptLanguage, s.fallback))

	w, err := s.initializer.Initialize(doc, p)
	if err != nil {
		return nil, err
	}
	scene, ok := w.(*czml.Scene)
	if !ok {
		return nil, fmt.Errorf("unexpected widget type %T", w)
	}

	s.log.WithFields(log.Fields{"scene": scene.ID(), "loc": p.Label}).Debug("scene built")

	return &build{params: p, doc: doc, scene: scene}, nil
}

// Preflight builds a scene with default parameters so a page without the
// viewer container is caught at startup.
func (s *Server) Preflight() error {
	if _, err := s.build(url.Values{}, ""); err != nil {
		return fmt.Errorf("viewer preflight failed: %w", err)
	}
	return nil
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	server := &http.Server{
		Addr:    s.cfg.Server.Address,
		Handler: s.engine,
	}

	errCh := make(chan error, 1)
	go func() {
		s.log.Infof("viewer listening on %s", server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("viewer server error: %w", err)
	case <-ctx.Done():
	}

	s.log.Info("shutting down viewer server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.Server.ShutdownTimeout)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}

func (s *Server) requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		s.log.WithFields(log.Fields{
			"method":  c.Request.Method,
			"path":    c.Request.URL.Path,
			"query":   c.Request.URL.RawQuery,
			"status":  c.Writer.Status(),
			"latency": time.Since(start).String(),
		}).Info("request")
	}
}

func cors() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Accept-Language")
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}
