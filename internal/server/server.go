// Package server serves the portfolio page, its HTMX-style fragments, the
// assistant API and the admin area.
package server

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/adilcr01/adil-dev/internal/analytics"
	"github.com/adilcr01/adil-dev/internal/chat"
	"github.com/adilcr01/adil-dev/internal/config"
	"github.com/adilcr01/adil-dev/internal/content"
)

//go:embed templates/*.html
var templatesFS embed.FS

//go:embed static
var staticFS embed.FS

// Analytics is the subset of the analytics store the handlers use.
type Analytics interface {
	RecordVisit(ctx context.Context, hashedIP, userAgent, path string) error
	RecordIntent(ctx context.Context, intent string) error
	Stats(ctx context.Context) (*analytics.Stats, error)
	Visitors(ctx context.Context, limit int) ([]analytics.Visitor, error)
	CleanupVisitors(ctx context.Context, retention time.Duration) (int64, error)
}

type Deps struct {
	Config    *config.Config
	Logger    *zap.Logger
	Sessions  *chat.Store
	Analytics Analytics
	Hasher    *analytics.Hasher
	Now       func() time.Time
}

type Server struct {
	cfg        *config.Config
	log        *zap.Logger
	engine     *gin.Engine
	page       content.Page
	sessions   *chat.Store
	analytics  Analytics
	hasher     *analytics.Hasher
	adminToken string
	now        func() time.Time

	// background visitor writes
	tracking sync.WaitGroup
}

func New(deps Deps) (*Server, error) {
	if deps.Config == nil || deps.Sessions == nil || deps.Analytics == nil {
		return nil, errors.New("server: config, sessions and analytics are required")
	}
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	now := deps.Now
	if now == nil {
		now = time.Now
	}
	hasher := deps.Hasher
	if hasher == nil {
		var err error
		if hasher, err = analytics.NewHasher(); err != nil {
			return nil, err
		}
	}
	token, err := analytics.RandomToken()
	if err != nil {
		return nil, err
	}

	s := &Server{
		cfg:        deps.Config,
		log:        logger,
		page:       content.Build(deps.Config.Links(), now()),
		sessions:   deps.Sessions,
		analytics:  deps.Analytics,
		hasher:     hasher,
		adminToken: token,
		now:        now,
	}
	if err := s.setupEngine(); err != nil {
		return nil, err
	}

	if _, _, defaults := deps.Config.AdminCredentials(); defaults {
		logger.Warn("using default admin credentials; set ADMIN_USERNAME and ADMIN_PASSWORD")
	}
	if gin.Mode() == gin.DebugMode {
		logger.Debug("admin token (dev only)", zap.String("token", token))
	}
	if deps.Config.TrackVisitors {
		logger.Info("privacy: visitor tracking enabled with hashed IP addresses")
	}
	return s, nil
}

func (s *Server) setupEngine() error {
	tmpl, err := template.New("").ParseFS(templatesFS, "templates/*.html")
	if err != nil {
		return fmt.Errorf("parse templates: %w", err)
	}
	static, err := fs.Sub(staticFS, "static")
	if err != nil {
		return fmt.Errorf("static assets: %w", err)
	}

	r := gin.New()
	r.Use(gin.Recovery(), requestLogger(s.log))
	if s.cfg.TrackVisitors {
		r.Use(s.visitorTracking())
	}
	r.SetHTMLTemplate(tmpl)
	r.StaticFS("/static", http.FS(static))

	s.engine = r
	s.routes()
	s.adminRoutes()
	return nil
}

func (s *Server) Handler() http.Handler {
	return s.engine
}

// Run serves on the configured port until ctx is cancelled, then shuts down
// gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.cfg.Addr(),
		Handler:           s.engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		s.log.Info("portfolio listening", zap.String("addr", srv.Addr))
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		return fmt.Errorf("listen: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	err := srv.Shutdown(shutdownCtx)
	s.Wait()
	if err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}

// Wait blocks until background visitor writes have finished.
func (s *Server) Wait() {
	s.tracking.Wait()
}
