package web

import (
	"net/http"
	"net/url"

	"github.com/reuniteapp/reunite/internal/session"
	"github.com/reuniteapp/reunite/internal/web/routepath"
)

// handleThemeToggle flips the theme preference and returns the visitor to
// where they were. The preference lives in the session, so it survives
// logout and is independent of auth state.
func (h *Handler) handleThemeToggle(w http.ResponseWriter, r *http.Request) {
	sess, err := h.ensureSession(w, r)
	if err != nil {
		h.logger.Printf("ensure session for theme: %v", err)
		http.Redirect(w, r, routepath.Home, http.StatusSeeOther)
		return
	}
	if sess.Theme == session.ThemeDark {
		sess.Theme = session.ThemeLight
	} else {
		sess.Theme = session.ThemeDark
	}
	if err := h.saveSession(r, sess); err != nil {
		h.logger.Printf("save theme: %v", err)
	}

	// Only bounce back to same-site paths; anything else goes home.
	target := routepath.Home
	if ref, err := url.Parse(r.Header.Get("Referer")); err == nil && ref.Path != "" && (ref.Host == "" || ref.Host == r.Host) {
		target = ref.Path
	}
	http.Redirect(w, r, target, http.StatusSeeOther)
}
