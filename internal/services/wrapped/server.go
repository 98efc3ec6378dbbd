// Package wrapped hosts the wrapped HTTP service.
package wrapped

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"net/http"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/louisbranch/wrapped/internal/platform/i18n"
	"github.com/louisbranch/wrapped/internal/platform/logging"
	"github.com/louisbranch/wrapped/internal/platform/timeouts"
	"github.com/louisbranch/wrapped/internal/services/wrapped/app"
	"github.com/louisbranch/wrapped/internal/services/wrapped/module"
	"github.com/louisbranch/wrapped/internal/services/wrapped/modules"
	"github.com/louisbranch/wrapped/internal/services/wrapped/platform/httpx"
	"github.com/louisbranch/wrapped/internal/services/wrapped/platform/observability"
	"github.com/louisbranch/wrapped/internal/services/wrapped/platform/requestmeta"
	"github.com/louisbranch/wrapped/internal/services/wrapped/routepath"
	"github.com/louisbranch/wrapped/internal/services/wrapped/static"
	"github.com/louisbranch/wrapped/internal/wrapped/assets"
	"github.com/louisbranch/wrapped/internal/wrapped/content"
)

// Config defines the inputs for the wrapped server.
type Config struct {
	HTTPAddr string
	// AssetsDir is the public asset root holding images/ and audio/.
	AssetsDir string
	// Assets overrides AssetsDir when set.
	Assets       fs.FS
	AssetBaseURL string
	// ContentPath points at a replacement catalog; empty uses the embedded one.
	ContentPath         string
	Locale              i18n.Locale
	Logger              *log.Logger
	RequestSchemePolicy requestmeta.SchemePolicy
}

// Server hosts the wrapped HTTP server.
type Server struct {
	httpAddr   string
	httpServer *http.Server
	logger     *log.Logger
}

// NewHandler composes every module behind the shared middleware chain.
func NewHandler(config Config) (http.Handler, error) {
	logger := config.Logger
	if logger == nil {
		logger = logging.Default()
	}
	catalog, err := loadCatalog(config.ContentPath)
	if err != nil {
		return nil, err
	}
	files := config.Assets
	if files == nil && strings.TrimSpace(config.AssetsDir) != "" {
		files = os.DirFS(config.AssetsDir)
	}

	deps := module.Dependencies{
		Catalog: catalog,
		Assets:  assets.New(files, config.AssetBaseURL),
		Locale:  config.Locale,
		Logger:  logger,
	}
	composed, err := app.Compose(app.ComposeInput{
		Dependencies:        deps,
		Modules:             modules.DefaultModules(),
		RequestSchemePolicy: config.RequestSchemePolicy,
	})
	if err != nil {
		return nil, fmt.Errorf("compose modules: %w", err)
	}

	mux := http.NewServeMux()
	mux.Handle(routepath.StaticPrefix, http.StripPrefix(routepath.StaticPrefix, http.FileServerFS(static.FS)))
	mux.Handle(routepath.Root, composed)

	return httpx.Chain(
		mux,
		httpx.RecoverPanic(logger),
		httpx.RequestID(),
		observability.Trace(),
		observability.RequestLogger(logger),
	), nil
}

func loadCatalog(path string) (*content.Catalog, error) {
	if strings.TrimSpace(path) == "" {
		catalog, err := content.Default()
		if err != nil {
			return nil, fmt.Errorf("load embedded catalog: %w", err)
		}
		return catalog, nil
	}
	catalog, err := content.Load(path)
	if err != nil {
		return nil, fmt.Errorf("load catalog %s: %w", path, err)
	}
	return catalog, nil
}

// NewServer builds a configured wrapped server.
func NewServer(config Config) (*Server, error) {
	httpAddr := strings.TrimSpace(config.HTTPAddr)
	if httpAddr == "" {
		return nil, errors.New("http address is required")
	}
	handler, err := NewHandler(config)
	if err != nil {
		return nil, fmt.Errorf("build handler: %w", err)
	}
	logger := config.Logger
	if logger == nil {
		logger = logging.Default()
	}
	return &Server{
		httpAddr: httpAddr,
		httpServer: &http.Server{
			Addr:              httpAddr,
			Handler:           handler,
			ReadHeaderTimeout: timeouts.ReadHeader,
		},
		logger: logger,
	}, nil
}

// ListenAndServe runs the HTTP server until the context ends.
//
// On cancellation, it performs a bounded shutdown so in-flight requests
// are drained before hard close.
func (s *Server) ListenAndServe(ctx context.Context) error {
	if s == nil {
		return errors.New("wrapped server is nil")
	}
	if ctx == nil {
		return errors.New("context is required")
	}

	serveErr := make(chan error, 1)
	s.logger.Info("wrapped listening", "addr", s.httpAddr)
	go func() {
		serveErr <- s.httpServer.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), timeouts.Shutdown)
		err := s.httpServer.Shutdown(shutdownCtx)
		cancel()
		if err != nil {
			return fmt.Errorf("shutdown http server: %w", err)
		}
		return nil
	case err := <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve http: %w", err)
	}
}

// Close releases the listener immediately.
func (s *Server) Close() {
	if s == nil || s.httpServer == nil {
		return
	}
	if err := s.httpServer.Close(); err != nil {
		s.logger.Warn("close http server", "err", err)
	}
}
