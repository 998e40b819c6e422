// Package web exposes the task list over HTTP.
package web

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"todoq/internal/i18n"
	"todoq/internal/tasklist"
)

// Server owns one task list manager and serves it as a JSON API.
type Server struct {
	mgr      *tasklist.Manager
	logger   *slog.Logger
	reporter *i18n.MissingKeyReporter
	validate *validator.Validate
	engine   *gin.Engine
}

// NewServer creates a Server around mgr. logger may be nil.
func NewServer(mgr *tasklist.Manager, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	gin.SetMode(gin.ReleaseMode)

	s := &Server{
		mgr:      mgr,
		logger:   logger,
		reporter: i18n.NewMissingKeyReporter(logger),
		validate: validator.New(),
	}

	engine := gin.New()
	engine.Use(gin.Recovery())

	api := engine.Group("/api")
	api.GET("/tasks", s.getTasks)
	api.POST("/tasks", s.createTask)
	api.POST("/tasks/:id/toggle", s.toggleTask)
	api.DELETE("/tasks/:id", s.deleteTask)
	api.PUT("/selection/:id", s.selectTask)
	api.DELETE("/selection", s.clearSelection)

	engine.GET("/about", s.getAbout)

	s.engine = engine
	return s
}

// Handler returns the server's HTTP handler, for tests and embedding.
func (s *Server) Handler() http.Handler {
	return s.engine
}

// Run blocks serving on addr until the listener fails.
func (s *Server) Run(addr string) error {
	s.logger.Info("serving", "addr", addr)
	return s.engine.Run(addr)
}
