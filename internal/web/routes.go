package web

import (
	"net/http"

	"github.com/reuniteapp/reunite/internal/web/platform/httpx"
	"github.com/reuniteapp/reunite/internal/web/routepath"
)

func (h *Handler) routes() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc(routepath.Home, h.handleHome)
	mux.Handle(routepath.Search, httpx.Chain(
		http.HandlerFunc(h.handleSearch),
		httpx.RequireMethod(http.MethodGet),
	))
	mux.HandleFunc(routepath.ReportPrefix, h.handleReportDetail)

	mux.HandleFunc(routepath.Login, h.handleLogin)
	mux.HandleFunc(routepath.Register, h.handleRegister)
	mux.HandleFunc(routepath.AdminLogin, h.handleAdminLogin)
	mux.Handle(routepath.Logout, httpx.Chain(
		http.HandlerFunc(h.handleLogout),
		httpx.RequireMethod(http.MethodPost),
	))
	mux.Handle(routepath.Theme, httpx.Chain(
		http.HandlerFunc(h.handleThemeToggle),
		httpx.RequireMethod(http.MethodPost),
	))

	mux.HandleFunc(routepath.Dashboard, h.requireUser(h.handleDashboard))
	mux.HandleFunc(routepath.ReportNew, h.requireUser(h.handleReportNew))

	mux.HandleFunc(routepath.Admin, h.requireAdmin(h.handleAdmin))
	mux.HandleFunc(routepath.AdminStatusPrefix, h.requireAdmin(h.handleAdminStatus))
	mux.HandleFunc(routepath.AdminUnidentifiedNew, h.requireAdmin(h.handleUnidentifiedNew))

	return httpx.Chain(mux,
		httpx.RecoverPanic(h.logger),
		httpx.RequestID(),
		httpx.RequestLogger(h.logger),
	)
}
