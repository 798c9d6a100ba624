// Package server exposes the portfolio over HTTP: JSON for the content, SSE
// for the rotating headline, and the chat and contact endpoints.
package server

import (
	"context"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/san-kum/folio/internal/chat"
	"github.com/san-kum/folio/internal/config"
	"github.com/san-kum/folio/internal/content"
	"github.com/san-kum/folio/internal/typewriter"
)

type Server struct {
	cfg     config.ServerConfig
	content *content.Content
	gen     chat.Generator
	phrases []string
	timing  typewriter.Timing
	engine  *gin.Engine
}

type Option func(*Server)

// WithTiming overrides the headline typing rhythm.
func WithTiming(t typewriter.Timing) Option {
	return func(s *Server) { s.timing = t }
}

// WithPhrases replaces the profile headlines on the stream.
func WithPhrases(phrases []string) Option {
	return func(s *Server) {
		if len(phrases) > 0 {
			s.phrases = phrases
		}
	}
}

// New builds the router. A nil generator makes every chat answer the
// fallback text.
func New(cfg config.ServerConfig, c *content.Content, gen chat.Generator, opts ...Option) *Server {
	s := &Server{
		cfg:     cfg,
		content: c,
		gen:     gen,
		phrases: c.Profile.Headlines,
		timing:  typewriter.DefaultTiming(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.engine = s.routes()
	return s
}

func (s *Server) Handler() http.Handler { return s.engine }

func (s *Server) routes() *gin.Engine {
	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	api.GET("/profile", s.profile)
	api.GET("/skills", s.skills)
	api.GET("/experience", s.experience)
	api.GET("/categories", s.categories)
	api.GET("/projects", s.projects)
	api.GET("/projects/:id", s.project)
	api.GET("/certifications", s.certifications)
	api.GET("/headline/stream", s.headlineStream)
	api.POST("/chat", s.chat)
	api.POST("/contact", s.contact)
	return r
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.cfg.Addr,
		Handler:           s.engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Printf("serving on %s", s.cfg.Addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	log.Printf("shutting down")
	return srv.Shutdown(shutdownCtx)
}
