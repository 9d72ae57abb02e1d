package web

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/reuniteapp/reunite/internal/api"
	"github.com/reuniteapp/reunite/internal/session"
	"github.com/reuniteapp/reunite/internal/web/platform/flash"
	"github.com/reuniteapp/reunite/internal/web/platform/httpx"
	"github.com/reuniteapp/reunite/internal/web/routepath"
	"github.com/reuniteapp/reunite/internal/web/templates"
)

// handleAdmin renders the moderation dashboard: every report with status
// controls, plus the unidentified-person records.
func (h *Handler) handleAdmin(w http.ResponseWriter, r *http.Request, sess session.Session) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}
	ctx := httpx.RequestContext(r)
	reports, err := h.reports.AllReports(ctx)
	if err != nil {
		h.handleAPIError(w, r, sess, err)
		return
	}
	people, err := h.admin.ListUnidentified(ctx, sess.Token)
	if err != nil {
		h.handleAPIError(w, r, sess, err)
		return
	}
	view := templates.AdminPage{
		Page:         h.page(w, r, "Admin", sess),
		Cards:        templates.NewReportCards(reports),
		Unidentified: templates.NewUnidentifiedRows(people),
	}
	h.render(w, r, "admin", view)
}

// handleAdminStatus moves a report to the submitted review state and
// returns to the moderation dashboard.
func (h *Handler) handleAdminStatus(w http.ResponseWriter, r *http.Request, sess session.Session) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}
	id := strings.TrimPrefix(r.URL.Path, routepath.AdminStatusPrefix)
	if id == "" || strings.Contains(id, "/") {
		h.renderError(w, r, http.StatusNotFound, "This page does not exist.", sess)
		return
	}
	status, ok := parseStatus(r.PostFormValue("status"))
	if !ok {
		h.renderError(w, r, http.StatusBadRequest, "Unknown report status.", sess)
		return
	}

	if err := h.admin.UpdateReportStatus(httpx.RequestContext(r), sess.Token, id, status); err != nil {
		h.handleAPIError(w, r, sess, err)
		return
	}
	flash.Write(w, r, flash.Success("Report status updated."))
	http.Redirect(w, r, routepath.Admin, http.StatusSeeOther)
}

// handleUnidentifiedNew renders the unidentified-person upload form and
// forwards submissions to the matcher.
func (h *Handler) handleUnidentifiedNew(w http.ResponseWriter, r *http.Request, sess session.Session) {
	switch r.Method {
	case http.MethodGet:
		h.render(w, r, "unidentified_new", templates.UploadPage{Page: h.page(w, r, "Upload Unidentified Person", sess)})
	case http.MethodPost:
		h.submitUnidentified(w, r, sess)
	default:
		w.Header().Set("Allow", "GET, POST")
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
	}
}

func (h *Handler) submitUnidentified(w http.ResponseWriter, r *http.Request, sess session.Session) {
	form, contentType, err := rebuildMultipart(r, []string{"location", "description"}, "images")
	if err != nil {
		h.logger.Printf("rebuild unidentified form: %v", err)
		h.renderError(w, r, http.StatusBadRequest, "The submitted form could not be read.", sess)
		return
	}
	if r.MultipartForm == nil || len(r.MultipartForm.File["images"]) == 0 {
		page := h.page(w, r, "Upload Unidentified Person", sess)
		page.Notice = &templates.Notice{Kind: "error", Message: page.T("At least one photo is required.")}
		h.render(w, r, "unidentified_new", templates.UploadPage{Page: page})
		return
	}

	receipt, err := h.admin.UploadUnidentified(httpx.RequestContext(r), sess.Token, form, contentType)
	if err != nil {
		h.handleAPIError(w, r, sess, err)
		return
	}
	message := receipt.Message
	if message == "" {
		message = "Unidentified person uploaded."
	}
	if receipt.MatchesFound > 0 {
		message = fmt.Sprintf("%s %d potential matches found.", message, receipt.MatchesFound)
	}
	flash.Write(w, r, flash.Success(message))
	http.Redirect(w, r, routepath.Admin, http.StatusSeeOther)
}

func parseStatus(value string) (api.ReportStatus, bool) {
	switch api.ReportStatus(value) {
	case api.StatusPending, api.StatusApproved, api.StatusResolved, api.StatusRejected:
		return api.ReportStatus(value), true
	}
	return "", false
}
