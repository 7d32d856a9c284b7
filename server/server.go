package server

import (
	"errors"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"plantuml_assistant/generator"
)

// Options tunes the HTTP surface.
type Options struct {
	AllowedOrigins []string
	// RequestTimeout bounds each model call; zero means no bound.
	RequestTimeout time.Duration
	DiagramTypes   []string
}

type Server struct {
	agent *generator.Agent
	opts  Options
	store *sessionStore
	log   *zap.Logger
}

type sessionStore struct {
	mu       sync.Mutex
	sessions map[string]*generator.Session
}

func newStore() *sessionStore {
	return &sessionStore{sessions: make(map[string]*generator.Session)}
}

func (s *sessionStore) set(id string, sess *generator.Session) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[id] = sess
}

func (s *sessionStore) get(id string) (*generator.Session, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[id]
	return sess, ok
}

func New(agent *generator.Agent, opts Options, log *zap.Logger) (*Server, error) {
	if agent == nil {
		return nil, errors.New("generator agent required")
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Server{
		agent: agent,
		opts:  opts,
		store: newStore(),
		log:   log,
	}, nil
}

func (s *Server) Routes() http.Handler {
	r := gin.New()
	r.Use(gin.Recovery(), s.logMiddleware())

	if len(s.opts.AllowedOrigins) > 0 {
		r.Use(cors.New(cors.Config{
			AllowOrigins: s.opts.AllowedOrigins,
			AllowMethods: []string{"GET", "POST", "OPTIONS"},
			AllowHeaders: []string{"Origin", "Content-Type"},
		}))
	}

	api := r.Group("/api")
	api.POST("/diagrams", s.handleGenerate)
	api.POST("/diagrams/revise", s.handleRevise)
	api.POST("/sessions", s.handleSessionCreate)
	api.GET("/sessions/:id", s.handleSessionGet)
	api.POST("/sessions/:id", s.handleSessionRevise)
	api.GET("/templates", s.handleTemplates)

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	return r
}

// --- Helpers ---

func newSessionID() string {
	return strings.ReplaceAll(time.Now().Format("20060102T150405.000000000"), ".", "")
}

func (s *Server) logMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		path := c.Request.URL.Path
		if path == "" {
			path = "/"
		}
		s.log.Info("request",
			zap.String("method", c.Request.Method),
			zap.String("path", path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("elapsed", time.Since(start)))
	}
}

func abortError(c *gin.Context, status int, msg string) {
	c.AbortWithStatusJSON(status, gin.H{"error": msg})
}

// generateStatus maps a generation failure to an HTTP status.
func generateStatus(err error) int {
	switch {
	case errors.Is(err, generator.ErrEmptyDescription):
		return http.StatusBadRequest
	case errors.Is(err, generator.ErrNoClassDefinitions):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusBadGateway
	}
}
