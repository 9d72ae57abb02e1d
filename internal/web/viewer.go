package web

import (
	"errors"
	"net/http"

	"golang.org/x/text/language"

	"github.com/reuniteapp/reunite/internal/api"
	"github.com/reuniteapp/reunite/internal/platform/i18n"
	"github.com/reuniteapp/reunite/internal/session"
	"github.com/reuniteapp/reunite/internal/web/platform/flash"
	"github.com/reuniteapp/reunite/internal/web/platform/httpx"
	"github.com/reuniteapp/reunite/internal/web/routepath"
	"github.com/reuniteapp/reunite/internal/web/templates"
)

// currentSession resolves the visitor's stored session from the signed
// cookie. A missing or stale cookie yields an empty session.
func (h *Handler) currentSession(r *http.Request) (session.Session, bool) {
	id, ok := h.cookies.Read(r)
	if !ok {
		return session.Session{}, false
	}
	sess, err := h.sessions.Get(httpx.RequestContext(r), id)
	if err != nil {
		if !errors.Is(err, session.ErrNotFound) {
			h.logger.Printf("load session: %v", err)
		}
		return session.Session{}, false
	}
	return sess, true
}

// ensureSession returns the visitor's session, creating and cookie-binding a
// fresh one when none exists yet.
func (h *Handler) ensureSession(w http.ResponseWriter, r *http.Request) (session.Session, error) {
	if sess, ok := h.currentSession(r); ok {
		return sess, nil
	}
	sess := session.New(h.newSessionID())
	if err := h.sessions.Put(httpx.RequestContext(r), sess); err != nil {
		return session.Session{}, err
	}
	if err := h.cookies.Write(w, r, sess.ID); err != nil {
		return session.Session{}, err
	}
	return sess, nil
}

// saveSession persists session mutations.
func (h *Handler) saveSession(r *http.Request, sess session.Session) error {
	return h.sessions.Put(httpx.RequestContext(r), sess)
}

// requestLanguage negotiates the page language from the Accept-Language
// header, falling back to the default when the header is absent or junk.
func requestLanguage(r *http.Request) language.Tag {
	tags, _, err := language.ParseAcceptLanguage(r.Header.Get("Accept-Language"))
	if err != nil || len(tags) == 0 {
		return i18n.DefaultTag()
	}
	return i18n.MatchTags(tags)
}

// page assembles the shared layout state for a render, consuming any
// pending flash notice.
func (h *Handler) page(w http.ResponseWriter, r *http.Request, title string, sess session.Session) templates.Page {
	viewer := templates.Viewer{
		SignedIn: sess.IsLoggedIn(),
		Admin:    sess.IsAdmin(),
	}
	if sess.User != nil {
		viewer.Name = sess.User.Name
	}
	var notice *templates.Notice
	if n, ok := flash.Take(w, r); ok {
		notice = &templates.Notice{Kind: string(n.Kind), Message: n.Message}
	}
	theme := sess.Theme
	if theme == "" {
		theme = session.ThemeLight
	}
	return templates.NewPage(title, requestLanguage(r), string(theme), viewer, notice)
}

// render executes a page template, falling back to a plain 500 when the
// template itself fails.
func (h *Handler) render(w http.ResponseWriter, r *http.Request, pageName string, data any) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := templates.Render(w, pageName, data); err != nil {
		h.logger.Printf("render %s: %v", pageName, err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
	}
}

// renderError shows the standalone error page.
func (h *Handler) renderError(w http.ResponseWriter, r *http.Request, status int, message string, sess session.Session) {
	page := h.page(w, r, http.StatusText(status), sess)
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := templates.Render(w, "error", templates.ErrorPage{Page: page, Message: message}); err != nil {
		h.logger.Printf("render error page: %v", err)
	}
}

// requireUser guards member pages. Anonymous visitors are bounced to the
// login form with a notice.
func (h *Handler) requireUser(next func(http.ResponseWriter, *http.Request, session.Session)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess, ok := h.currentSession(r)
		if !ok || !sess.IsLoggedIn() {
			flash.Write(w, r, flash.Error("Please sign in to continue."))
			http.Redirect(w, r, routepath.Login, http.StatusSeeOther)
			return
		}
		next(w, r, sess)
	}
}

// requireAdmin guards moderation pages. Signed-in non-admins land back on
// the home page.
func (h *Handler) requireAdmin(next func(http.ResponseWriter, *http.Request, session.Session)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess, ok := h.currentSession(r)
		if !ok || !sess.IsLoggedIn() {
			flash.Write(w, r, flash.Error("Please sign in to continue."))
			http.Redirect(w, r, routepath.Login, http.StatusSeeOther)
			return
		}
		if !sess.IsAdmin() {
			http.Redirect(w, r, routepath.Home, http.StatusSeeOther)
			return
		}
		next(w, r, sess)
	}
}

// handleAPIError routes API failures to the right user response. A 401 on a
// stored token means the token expired server-side: auth state is dropped
// and the visitor signs in again.
func (h *Handler) handleAPIError(w http.ResponseWriter, r *http.Request, sess session.Session, err error) {
	var apiErr *api.Error
	if errors.As(err, &apiErr) {
		if apiErr.StatusCode == http.StatusUnauthorized && sess.IsLoggedIn() {
			sess.ClearAuth()
			if saveErr := h.saveSession(r, sess); saveErr != nil {
				h.logger.Printf("clear expired auth: %v", saveErr)
			}
			flash.Write(w, r, flash.Error("Your session has expired. Please sign in again."))
			http.Redirect(w, r, routepath.Login, http.StatusSeeOther)
			return
		}
		if apiErr.StatusCode == http.StatusNotFound {
			h.renderError(w, r, http.StatusNotFound, apiErr.Message, sess)
			return
		}
		h.renderError(w, r, http.StatusBadGateway, apiErr.Message, sess)
		return
	}
	h.logger.Printf("api request: %v", err)
	h.renderError(w, r, http.StatusBadGateway, "The reporting service is unavailable. Please try again later.", sess)
}
