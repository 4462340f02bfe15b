package web

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"net"
	"net/http"
	"simple_todo/internal/config"
	"simple_todo/internal/todo"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

//go:embed templates/*.html
var templatesFS embed.FS

type Server struct {
	config     config.Config
	engine     *gin.Engine
	httpServer *http.Server
	logger     zerolog.Logger
}

func New(cfg config.Config, store todo.Store, validator *todo.Validator, logger zerolog.Logger) (*Server, error) {
	gin.SetMode(cfg.GinMode())

	tmpl, err := template.ParseFS(templatesFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}

	engine := gin.New()
	if err = engine.SetTrustedProxies(nil); err != nil {
		return nil, fmt.Errorf("set trusted proxies: %w", err)
	}
	engine.SetHTMLTemplate(tmpl)
	engine.Use(gin.Recovery(), requestLogger(logger))

	s := &Server{
		config: cfg,
		engine: engine,
		logger: logger,
	}
	s.setupRoutes(newTodoHandler(store, validator, logger))

	s.httpServer = &http.Server{
		Addr:              ":" + cfg.TodoPort(),
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	return s, nil
}

func (s *Server) setupRoutes(h *todoHandler) {
	s.engine.GET("/", func(c *gin.Context) {
		c.Redirect(http.StatusFound, "/todos")
	})
	s.engine.GET("/healthz", h.health)

	todos := s.engine.Group("/todos")
	todos.GET("", h.index)
	todos.GET("/new", h.new)
	todos.POST("", h.create)
	todos.GET("/:id", h.show)
	todos.GET("/:id/edit", h.edit)
	todos.PATCH("/:id", h.update)
	todos.PUT("/:id", h.update)
	todos.DELETE("/:id", h.destroy)
}

// Handler returns the router wrapped so HTML forms can tunnel PATCH, PUT and
// DELETE through a "_method" field.
func (s *Server) Handler() http.Handler {
	return methodOverride(s.engine)
}

func methodOverride(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost && strings.HasPrefix(r.Header.Get("Content-Type"), gin.MIMEPOSTForm) {
			switch m := strings.ToUpper(r.PostFormValue("_method")); m {
			case http.MethodPatch, http.MethodPut, http.MethodDelete:
				r.Method = m
			}
		}
		next.ServeHTTP(w, r)
	})
}

// Serve runs the HTTP server on listener until ctx is cancelled, then shuts
// it down gracefully.
func (s *Server) Serve(ctx context.Context, listener net.Listener) error {
	errCh := make(chan error, 1)

	go func() {
		s.logger.Info().Str("addr", listener.Addr().String()).Msg("Todo app listening")
		if err := s.httpServer.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- fmt.Errorf("serve todo app: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
	case err := <-errCh:
		return err
	}

	return s.Shutdown()
}

func (s *Server) Listen() (net.Listener, error) {
	return net.Listen("tcp", s.httpServer.Addr)
}

func (s *Server) Shutdown() error {
	s.logger.Info().Msg("Shutting down todo app")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("shutdown todo app: %w", err)
	}
	return nil
}

func requestLogger(logger zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		event := logger.Info()
		if c.Writer.Status() >= http.StatusInternalServerError {
			event = logger.Error()
		}
		event.
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", c.Writer.Status()).
			Dur("latency", time.Since(start)).
			Msg("request")
	}
}
