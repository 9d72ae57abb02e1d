// Package routepath centralizes the web client's route constants.
package routepath

// Public surfaces.
const (
	Home         = "/"
	Search       = "/search"
	ReportPrefix = "/report/"
)

// Auth surfaces.
const (
	Login      = "/auth/login"
	Register   = "/auth/register"
	Logout     = "/auth/logout"
	AdminLogin = "/admin/login"
)

// Protected surfaces.
const (
	Dashboard = "/dashboard"
	ReportNew = "/report/new"
	Admin     = "/admin"
)

// Admin actions.
const (
	AdminStatusPrefix    = "/admin/reports/"
	AdminUnidentifiedNew = "/admin/unidentified/new"
)

// Preferences.
const Theme = "/settings/theme"
