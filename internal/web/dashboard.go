package web

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/reuniteapp/reunite/internal/api"
	"github.com/reuniteapp/reunite/internal/session"
	"github.com/reuniteapp/reunite/internal/web/platform/flash"
	"github.com/reuniteapp/reunite/internal/web/platform/httpx"
	"github.com/reuniteapp/reunite/internal/web/routepath"
	"github.com/reuniteapp/reunite/internal/web/templates"
)

// reportFields are the text inputs forwarded from the report form to the
// API, in submission order.
var reportFields = []string{
	"name",
	"age",
	"gender",
	"last_seen_location",
	"last_seen_date",
	"description",
	"contact_details",
}

// handleDashboard lists the viewer's own reports, newest first as the API
// returns them.
func (h *Handler) handleDashboard(w http.ResponseWriter, r *http.Request, sess session.Session) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}
	reports, err := h.reports.MyReports(httpx.RequestContext(r), sess.Token)
	if err != nil {
		h.handleAPIError(w, r, sess, err)
		return
	}
	view := templates.DashboardPage{
		Page:  h.page(w, r, "My Reports", sess),
		Cards: templates.NewReportCards(reports),
	}
	h.render(w, r, "dashboard", view)
}

// handleReportNew renders the submission form and forwards a completed
// report to the API as multipart, photos included.
func (h *Handler) handleReportNew(w http.ResponseWriter, r *http.Request, sess session.Session) {
	switch r.Method {
	case http.MethodGet:
		view := templates.ReportFormPage{Page: h.page(w, r, "Report Missing Person", sess)}
		h.render(w, r, "report_new", view)
	case http.MethodPost:
		h.submitReport(w, r, sess)
	default:
		w.Header().Set("Allow", "GET, POST")
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
	}
}

func (h *Handler) submitReport(w http.ResponseWriter, r *http.Request, sess session.Session) {
	form, contentType, err := rebuildMultipart(r, reportFields, "images")
	if err != nil {
		h.logger.Printf("rebuild report form: %v", err)
		h.rerenderReportForm(w, r, sess, "The submitted form could not be read.")
		return
	}
	if message, ok := validateReportForm(r); !ok {
		h.rerenderReportForm(w, r, sess, message)
		return
	}

	receipt, err := h.reports.ReportMissingPerson(httpx.RequestContext(r), sess.Token, form, contentType)
	if err != nil {
		// 401 means the stored token expired; that path clears auth. Other
		// 4xx responses are submission problems worth showing on the form.
		var apiErr *api.Error
		if errors.As(err, &apiErr) && apiErr.StatusCode != http.StatusUnauthorized && apiErr.StatusCode < http.StatusInternalServerError {
			h.rerenderReportForm(w, r, sess, apiErr.Message)
			return
		}
		h.handleAPIError(w, r, sess, err)
		return
	}
	message := receipt.Message
	if message == "" {
		message = "Report submitted. It will appear publicly once approved."
	}
	flash.Write(w, r, flash.Success(message))
	http.Redirect(w, r, routepath.Dashboard, http.StatusSeeOther)
}

// validateReportForm checks the fields the browser's required attributes
// already promise, since nothing stops a hand-built POST.
func validateReportForm(r *http.Request) (string, bool) {
	for _, field := range []string{"name", "age", "last_seen_location", "last_seen_date", "contact_details"} {
		if strings.TrimSpace(r.PostFormValue(field)) == "" {
			return "All required fields must be filled in.", false
		}
	}
	if _, err := strconv.Atoi(strings.TrimSpace(r.PostFormValue("age"))); err != nil {
		return "Age must be a number.", false
	}
	if r.MultipartForm == nil || len(r.MultipartForm.File["images"]) == 0 {
		return "At least one photo is required.", false
	}
	return "", true
}

func (h *Handler) rerenderReportForm(w http.ResponseWriter, r *http.Request, sess session.Session, message string) {
	page := h.page(w, r, "Report Missing Person", sess)
	page.Notice = &templates.Notice{Kind: "error", Message: page.T(message)}
	view := templates.ReportFormPage{
		Page: page,
		Form: templates.ReportForm{
			Name:           r.PostFormValue("name"),
			Age:            r.PostFormValue("age"),
			Gender:         r.PostFormValue("gender"),
			Location:       r.PostFormValue("last_seen_location"),
			LastSeenDate:   r.PostFormValue("last_seen_date"),
			Description:    r.PostFormValue("description"),
			ContactDetails: r.PostFormValue("contact_details"),
		},
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusUnprocessableEntity)
	h.render(w, r, "report_new", view)
}
