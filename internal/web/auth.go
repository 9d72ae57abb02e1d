package web

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/reuniteapp/reunite/internal/api"
	"github.com/reuniteapp/reunite/internal/web/platform/flash"
	"github.com/reuniteapp/reunite/internal/web/platform/httpx"
	"github.com/reuniteapp/reunite/internal/web/platform/sessioncookie"
	"github.com/reuniteapp/reunite/internal/web/routepath"
	"github.com/reuniteapp/reunite/internal/web/templates"
)

// handleLogin renders the sign-in form and exchanges credentials for a
// bearer token.
func (h *Handler) handleLogin(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		sess, _ := h.currentSession(r)
		if sess.IsLoggedIn() {
			http.Redirect(w, r, routepath.Dashboard, http.StatusSeeOther)
			return
		}
		h.render(w, r, "login", templates.AuthPage{Page: h.page(w, r, "Sign In", sess)})
	case http.MethodPost:
		h.finishLogin(w, r, h.auth.Login, "login", routepath.Dashboard)
	default:
		w.Header().Set("Allow", "GET, POST")
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
	}
}

// handleAdminLogin is the admin variant of the sign-in form.
func (h *Handler) handleAdminLogin(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		sess, _ := h.currentSession(r)
		if sess.IsAdmin() {
			http.Redirect(w, r, routepath.Admin, http.StatusSeeOther)
			return
		}
		h.render(w, r, "admin_login", templates.AuthPage{Page: h.page(w, r, "Admin Sign In", sess)})
	case http.MethodPost:
		h.finishLogin(w, r, h.auth.AdminLogin, "admin_login", routepath.Admin)
	default:
		w.Header().Set("Allow", "GET, POST")
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
	}
}

// finishLogin runs a credential exchange and binds the result to the
// visitor's session. Token and profile are stored together, so a
// half-written session can never look signed in.
func (h *Handler) finishLogin(w http.ResponseWriter, r *http.Request, exchange func(ctx context.Context, email, password string) (api.Credentials, error), formPage, successPath string) {
	email := strings.TrimSpace(r.PostFormValue("email"))
	password := r.PostFormValue("password")
	if email == "" || password == "" {
		h.rerenderAuth(w, r, formPage, "Email and password are required.", "", email)
		return
	}

	creds, err := exchange(httpx.RequestContext(r), email, password)
	if err != nil {
		if rejected, message := authFailure(err); rejected {
			h.rerenderAuth(w, r, formPage, message, "", email)
			return
		}
		sess, _ := h.currentSession(r)
		h.handleAPIError(w, r, sess, err)
		return
	}

	sess, err := h.ensureSession(w, r)
	if err != nil {
		h.logger.Printf("ensure session: %v", err)
		h.renderError(w, r, http.StatusInternalServerError, "Could not start a session. Please try again.", sess)
		return
	}
	sess.SetAuth(creds.Token, creds.User)
	if err := h.saveSession(r, sess); err != nil {
		h.logger.Printf("save session: %v", err)
		h.renderError(w, r, http.StatusInternalServerError, "Could not start a session. Please try again.", sess)
		return
	}
	flash.Write(w, r, flash.Success("Welcome back, "+creds.User.Name+"."))
	http.Redirect(w, r, successPath, http.StatusSeeOther)
}

// handleRegister renders the registration form and creates the account.
// Registration does not sign the visitor in; they land on the login form.
func (h *Handler) handleRegister(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		sess, _ := h.currentSession(r)
		if sess.IsLoggedIn() {
			http.Redirect(w, r, routepath.Dashboard, http.StatusSeeOther)
			return
		}
		h.render(w, r, "register", templates.AuthPage{Page: h.page(w, r, "Create Account", sess)})
	case http.MethodPost:
		name := strings.TrimSpace(r.PostFormValue("name"))
		email := strings.TrimSpace(r.PostFormValue("email"))
		password := r.PostFormValue("password")
		confirm := r.PostFormValue("confirm_password")

		switch {
		case name == "" || email == "" || password == "":
			h.rerenderAuth(w, r, "register", "All fields are required.", name, email)
			return
		case password != confirm:
			h.rerenderAuth(w, r, "register", "Passwords do not match", name, email)
			return
		}

		err := h.auth.Register(httpx.RequestContext(r), api.RegisterInput{Name: name, Email: email, Password: password})
		if err != nil {
			if rejected, message := authFailure(err); rejected {
				h.rerenderAuth(w, r, "register", message, name, email)
				return
			}
			sess, _ := h.currentSession(r)
			h.handleAPIError(w, r, sess, err)
			return
		}
		flash.Write(w, r, flash.Success("Account created. Please sign in."))
		http.Redirect(w, r, routepath.Login, http.StatusSeeOther)
	default:
		w.Header().Set("Allow", "GET, POST")
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
	}
}

// handleLogout drops the auth state but keeps the session and its theme
// preference. Logging out twice is harmless.
func (h *Handler) handleLogout(w http.ResponseWriter, r *http.Request) {
	if sess, ok := h.currentSession(r); ok {
		sess.ClearAuth()
		if err := h.saveSession(r, sess); err != nil {
			h.logger.Printf("clear auth: %v", err)
		}
	} else {
		sessioncookie.Clear(w, r)
	}
	flash.Write(w, r, flash.Success("You have been signed out."))
	http.Redirect(w, r, routepath.Home, http.StatusSeeOther)
}

// rerenderAuth shows an auth form again with an inline error notice,
// echoing back everything except passwords.
func (h *Handler) rerenderAuth(w http.ResponseWriter, r *http.Request, formPage, message, name, email string) {
	titles := map[string]string{
		"login":       "Sign In",
		"admin_login": "Admin Sign In",
		"register":    "Create Account",
	}
	sess, _ := h.currentSession(r)
	page := h.page(w, r, titles[formPage], sess)
	page.Notice = &templates.Notice{Kind: "error", Message: page.T(message)}
	h.render(w, r, formPage, templates.AuthPage{Page: page, Name: name, Email: email})
}

// authFailure reports whether err is a server-side rejection whose message
// should be shown on the form, as opposed to a transport failure.
func authFailure(err error) (bool, string) {
	var apiErr *api.Error
	if errors.As(err, &apiErr) && apiErr.StatusCode < http.StatusInternalServerError {
		return true, apiErr.Message
	}
	return false, ""
}
