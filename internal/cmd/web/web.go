// Package web wires configuration into the running web service.
package web

import (
	"context"
	"flag"
	"fmt"
	"log"

	"github.com/reuniteapp/reunite/internal/api"
	"github.com/reuniteapp/reunite/internal/platform/config"
	"github.com/reuniteapp/reunite/internal/platform/timeouts"
	sessionsqlite "github.com/reuniteapp/reunite/internal/session/sqlite"
	"github.com/reuniteapp/reunite/internal/web"
	"github.com/reuniteapp/reunite/internal/web/platform/sessioncookie"
)

const (
	defaultHTTPAddr   = "localhost:8080"
	defaultAPIBaseURL = "http://localhost:5000"
	defaultSessionDB  = "reunite-sessions.db"
)

// Config holds the web command configuration. Environment values override
// defaults; flags override both.
type Config struct {
	HTTPAddr      string `env:"REUNITE_WEB_HTTP_ADDR"`
	APIBaseURL    string `env:"REUNITE_API_BASE_URL"`
	SessionDBPath string `env:"REUNITE_SESSION_DB"`
	CookieSecret  string `env:"REUNITE_COOKIE_SECRET"`
}

// ParseConfig parses the environment and flags into a Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	cfg := Config{
		HTTPAddr:      defaultHTTPAddr,
		APIBaseURL:    defaultAPIBaseURL,
		SessionDBPath: defaultSessionDB,
	}
	if err := config.ParseEnv(&cfg); err != nil {
		return Config{}, err
	}

	fs.StringVar(&cfg.HTTPAddr, "http-addr", cfg.HTTPAddr, "HTTP listen address")
	fs.StringVar(&cfg.APIBaseURL, "api-base-url", cfg.APIBaseURL, "Reporting API base URL")
	fs.StringVar(&cfg.SessionDBPath, "session-db", cfg.SessionDBPath, "Session store SQLite path")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Run starts the web server and blocks until the context ends.
func Run(ctx context.Context, cfg Config) error {
	client, err := api.New(api.Config{BaseURL: cfg.APIBaseURL})
	if err != nil {
		return fmt.Errorf("init api client: %w", err)
	}

	sessions, err := sessionsqlite.Open(cfg.SessionDBPath)
	if err != nil {
		return fmt.Errorf("open session store: %w", err)
	}
	defer func() {
		if err := sessions.Close(); err != nil {
			log.Printf("close session store: %v", err)
		}
	}()

	codec, err := sessioncookie.NewCodec([]byte(cfg.CookieSecret))
	if err != nil {
		return fmt.Errorf("init session cookie codec: %w", err)
	}

	server, err := web.NewServer(web.Config{
		Auth:     client,
		Reports:  client,
		Admin:    client,
		Sessions: sessions,
		Cookies:  codec,
		Logger:   log.Default(),
	}, cfg.HTTPAddr)
	if err != nil {
		return fmt.Errorf("init web server: %w", err)
	}
	defer server.Close()

	// Connectivity probe only; a down backend degrades pages, it does not
	// block startup.
	go func() {
		probeCtx, cancel := context.WithTimeout(ctx, timeouts.Probe)
		defer cancel()
		if err := client.Ping(probeCtx); err != nil {
			log.Printf("reporting api unreachable: %v", err)
		}
	}()

	log.Printf("web listening on %s", cfg.HTTPAddr)
	if err := server.ListenAndServe(ctx); err != nil {
		return fmt.Errorf("serve web: %w", err)
	}
	return nil
}
