// Package web hosts the browser-facing surface of the missing-persons site.
// It renders server-side pages backed by the reporting API and keeps
// per-visitor state in the session store.
package web

import (
	"context"
	"errors"
	"io"
	"log"
	"net/http"

	"github.com/google/uuid"

	"github.com/reuniteapp/reunite/internal/api"
	"github.com/reuniteapp/reunite/internal/session"
	"github.com/reuniteapp/reunite/internal/web/platform/sessioncookie"
)

// AuthClient is the slice of the reporting API used by the auth pages.
type AuthClient interface {
	Register(ctx context.Context, input api.RegisterInput) error
	Login(ctx context.Context, email, password string) (api.Credentials, error)
	AdminLogin(ctx context.Context, email, password string) (api.Credentials, error)
}

// ReportClient is the slice of the reporting API used by listings and
// report submission.
type ReportClient interface {
	AllReports(ctx context.Context) ([]api.Report, error)
	MyReports(ctx context.Context, token string) ([]api.Report, error)
	GetReport(ctx context.Context, id string) (api.Report, error)
	Search(ctx context.Context, name, location string) ([]api.Report, error)
	ReportMissingPerson(ctx context.Context, token string, form io.Reader, contentType string) (api.ReportReceipt, error)
}

// AdminClient is the slice of the reporting API used by moderation pages.
type AdminClient interface {
	UpdateReportStatus(ctx context.Context, token, id string, status api.ReportStatus) error
	UploadUnidentified(ctx context.Context, token string, form io.Reader, contentType string) (api.UploadReceipt, error)
	ListUnidentified(ctx context.Context, token string) ([]api.UnidentifiedPerson, error)
}

// Config defines the collaborators of the web handler.
type Config struct {
	Auth     AuthClient
	Reports  ReportClient
	Admin    AdminClient
	Sessions session.Repository
	Cookies  *sessioncookie.Codec
	Logger   *log.Logger

	// NewSessionID overrides session ID generation under test.
	NewSessionID func() string
}

// Handler serves the web UI routes.
type Handler struct {
	auth         AuthClient
	reports      ReportClient
	admin        AdminClient
	sessions     session.Repository
	cookies      *sessioncookie.Codec
	logger       *log.Logger
	newSessionID func() string
}

// NewHandler validates config and builds the routed HTTP handler.
func NewHandler(cfg Config) (http.Handler, error) {
	if cfg.Auth == nil || cfg.Reports == nil || cfg.Admin == nil {
		return nil, errors.New("api clients are required")
	}
	if cfg.Sessions == nil {
		return nil, errors.New("session repository is required")
	}
	if cfg.Cookies == nil {
		return nil, errors.New("session cookie codec is required")
	}
	logger := cfg.Logger
	if logger == nil {
		logger = log.Default()
	}
	newID := cfg.NewSessionID
	if newID == nil {
		newID = uuid.NewString
	}
	h := &Handler{
		auth:         cfg.Auth,
		reports:      cfg.Reports,
		admin:        cfg.Admin,
		sessions:     cfg.Sessions,
		cookies:      cfg.Cookies,
		logger:       logger,
		newSessionID: newID,
	}
	return h.routes(), nil
}
