// Package wrapped parses wrapped service flags and launches the service.
package wrapped

import (
	"context"
	"flag"
	"fmt"
	"os"

	entrypoint "github.com/louisbranch/wrapped/internal/platform/cmd"
	"github.com/louisbranch/wrapped/internal/platform/i18n"
	"github.com/louisbranch/wrapped/internal/platform/logging"
	server "github.com/louisbranch/wrapped/internal/services/wrapped"
	"github.com/louisbranch/wrapped/internal/services/wrapped/platform/requestmeta"
)

// Config holds wrapped command configuration.
type Config struct {
	HTTPAddr     string `env:"WRAPPED_HTTP_ADDR" envDefault:"localhost:8094"`
	AssetsDir    string `env:"WRAPPED_ASSETS_DIR" envDefault:"public"`
	AssetBaseURL string `env:"WRAPPED_ASSET_BASE_URL"`
	ContentPath  string `env:"WRAPPED_CONTENT_PATH"`
	Locale       string `env:"WRAPPED_LOCALE" envDefault:"en-US"`
	LogLevel     string `env:"WRAPPED_LOG_LEVEL" envDefault:"info"`
	// TrustForwardedProto honors X-Forwarded-Proto when checking the origin
	// of audio POSTs. Enable only behind a proxy that overwrites the header.
	TrustForwardedProto bool `env:"WRAPPED_TRUST_FORWARDED_PROTO" envDefault:"false"`
}

// ParseConfig parses environment and flags into Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}
	fs.StringVar(&cfg.HTTPAddr, "http-addr", cfg.HTTPAddr, "HTTP listen address")
	fs.StringVar(&cfg.AssetsDir, "assets-dir", cfg.AssetsDir, "Directory holding images/ and audio/")
	fs.StringVar(&cfg.AssetBaseURL, "asset-base-url", cfg.AssetBaseURL, "CDN base URL for images and audio")
	fs.StringVar(&cfg.ContentPath, "content", cfg.ContentPath, "Path to a TOML content catalog; empty uses the embedded one")
	fs.StringVar(&cfg.Locale, "locale", cfg.Locale, "BCP 47 locale for number formatting")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level (debug, info, warn, error)")
	fs.BoolVar(&cfg.TrustForwardedProto, "trust-forwarded-proto", cfg.TrustForwardedProto, "Honor X-Forwarded-Proto from a TLS-terminating proxy")
	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	if _, err := i18n.ParseLocale(cfg.Locale); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Run starts the wrapped HTTP service.
func Run(ctx context.Context, cfg Config) error {
	locale, err := i18n.ParseLocale(cfg.Locale)
	if err != nil {
		return err
	}
	logger := logging.New(os.Stderr, cfg.LogLevel)
	logging.SetDefault(logger)

	return entrypoint.RunWithTelemetry(ctx, entrypoint.ServiceWrapped, func(ctx context.Context) error {
		srv, err := server.NewServer(server.Config{
			HTTPAddr:     cfg.HTTPAddr,
			AssetsDir:    cfg.AssetsDir,
			AssetBaseURL: cfg.AssetBaseURL,
			ContentPath:  cfg.ContentPath,
			Locale:       locale,
			Logger:       logger,
			RequestSchemePolicy: requestmeta.SchemePolicy{
				TrustForwardedProto: cfg.TrustForwardedProto,
			},
		})
		if err != nil {
			return fmt.Errorf("init wrapped server: %w", err)
		}
		defer srv.Close()

		if err := srv.ListenAndServe(ctx); err != nil {
			return fmt.Errorf("serve wrapped: %w", err)
		}
		return nil
	})
}
