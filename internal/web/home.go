package web

import (
	"net/http"
	"strings"

	"github.com/reuniteapp/reunite/internal/web/platform/httpx"
	"github.com/reuniteapp/reunite/internal/web/routepath"
	"github.com/reuniteapp/reunite/internal/web/templates"
)

// handleHome renders the landing page: corpus stats plus the featured
// approved reports. A failing API degrades the page instead of erroring;
// the visitor still gets navigation and search.
func (h *Handler) handleHome(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != routepath.Home {
		sess, _ := h.currentSession(r)
		h.renderError(w, r, http.StatusNotFound, "This page does not exist.", sess)
		return
	}
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	sess, _ := h.currentSession(r)
	view := templates.HomePage{Page: h.page(w, r, "Missing Persons", sess)}

	reports, err := h.reports.AllReports(httpx.RequestContext(r))
	if err != nil {
		h.logger.Printf("load reports for home: %v", err)
		view.Degraded = true
	} else {
		view.Stats = templates.SummarizeReports(reports)
		view.Cards = templates.FeaturedReports(reports)
	}
	h.render(w, r, "home", view)
}

// handleSearch runs the public search. The single query box feeds both the
// name and location filters; the backend matches either.
func (h *Handler) handleSearch(w http.ResponseWriter, r *http.Request) {
	sess, _ := h.currentSession(r)
	query := strings.TrimSpace(r.URL.Query().Get("q"))

	view := templates.HomePage{
		Page:     h.page(w, r, "Search", sess),
		Query:    query,
		Searched: true,
	}

	results, err := h.reports.Search(httpx.RequestContext(r), query, query)
	if err != nil {
		h.handleAPIError(w, r, sess, err)
		return
	}
	view.Stats = templates.SummarizeReports(results)
	view.Cards = templates.NewReportCards(results)
	h.render(w, r, "home", view)
}

// handleReportDetail shows one report in full.
func (h *Handler) handleReportDetail(w http.ResponseWriter, r *http.Request) {
	sess, _ := h.currentSession(r)
	id := strings.TrimPrefix(r.URL.Path, routepath.ReportPrefix)
	if id == "" || strings.Contains(id, "/") {
		h.renderError(w, r, http.StatusNotFound, "This page does not exist.", sess)
		return
	}
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	report, err := h.reports.GetReport(httpx.RequestContext(r), id)
	if err != nil {
		h.handleAPIError(w, r, sess, err)
		return
	}
	view := templates.ReportDetailPage{
		Page:   h.page(w, r, report.Name, sess),
		Card:   templates.NewReportCard(report),
		Images: report.Images,
	}
	h.render(w, r, "report_detail", view)
}
