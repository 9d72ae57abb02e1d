package templates

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/reuniteapp/reunite/internal/platform/i18n"
	"github.com/reuniteapp/reunite/internal/web/routepath"
)

// Viewer describes the signed-in state rendered in the navigation bar.
type Viewer struct {
	SignedIn bool
	Admin    bool
	Name     string
}

// Notice is a one-time banner surfaced after a redirect.
type Notice struct {
	Kind    string
	Message string
}

// Page carries the fields every layout render needs. Page views embed it.
type Page struct {
	Title  string
	Lang   string
	Theme  string
	Viewer Viewer
	Notice *Notice

	loc *message.Printer
}

// NewPage builds the shared layout state for a request.
func NewPage(title string, tag language.Tag, theme string, viewer Viewer, notice *Notice) Page {
	return Page{
		Title:  title,
		Lang:   tag.String(),
		Theme:  theme,
		Viewer: viewer,
		Notice: notice,
		loc:    i18n.Printer(tag),
	}
}

// T localizes a message key for the page's language.
func (p Page) T(key string, args ...any) string {
	if p.loc == nil {
		p.loc = i18n.Printer(language.English)
	}
	return p.loc.Sprintf(key, args...)
}

// Paths exposes route constants to templates so links stay in one place.
func (p Page) Paths() routePaths { return routePaths{} }

type routePaths struct{}

func (routePaths) Home() string              { return routepath.Home }
func (routePaths) Search() string            { return routepath.Search }
func (routePaths) Login() string             { return routepath.Login }
func (routePaths) Register() string          { return routepath.Register }
func (routePaths) Logout() string            { return routepath.Logout }
func (routePaths) AdminLogin() string        { return routepath.AdminLogin }
func (routePaths) Dashboard() string         { return routepath.Dashboard }
func (routePaths) ReportNew() string         { return routepath.ReportNew }
func (routePaths) Admin() string             { return routepath.Admin }
func (routePaths) UnidentifiedNew() string { return routepath.AdminUnidentifiedNew }
func (routePaths) Theme() string           { return routepath.Theme }
