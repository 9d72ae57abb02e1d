package templates

import (
	"github.com/reuniteapp/reunite/internal/api"
	"github.com/reuniteapp/reunite/internal/web/routepath"
)

// ReportCard is the summary of a missing-person report shown in listings.
type ReportCard struct {
	ID          string
	Name        string
	Age         int
	Gender      string
	Location    string
	LastSeen    string
	Description string
	Contact     string
	ImageURL    string
	Status      api.ReportStatus
	DetailURL   string
	MatchFound  bool
	Similarity  float64
}

// StatusURL is the moderation endpoint for this report.
func (c ReportCard) StatusURL() string { return routepath.AdminStatusPrefix + c.ID }

// NewReportCard converts an API report into its listing card.
func NewReportCard(r api.Report) ReportCard {
	card := ReportCard{
		ID:          r.ID,
		Name:        r.Name,
		Age:         r.Age,
		Gender:      r.Gender,
		Location:    r.LastSeenLocation,
		LastSeen:    r.LastSeenDate,
		Description: r.Description,
		Contact:     r.ContactDetails,
		Status:      r.Status,
		DetailURL:   routepath.ReportPrefix + r.ID,
		MatchFound:  r.MatchFound,
		Similarity:  r.SimilarityPercentage,
	}
	if len(r.Images) > 0 {
		card.ImageURL = r.Images[0]
	}
	return card
}

// NewReportCards converts a slice of API reports in order.
func NewReportCards(reports []api.Report) []ReportCard {
	cards := make([]ReportCard, 0, len(reports))
	for _, r := range reports {
		cards = append(cards, NewReportCard(r))
	}
	return cards
}

// StatusLabel returns the localized badge text for a report status.
func (p Page) StatusLabel(status api.ReportStatus) string {
	switch status {
	case api.StatusPending:
		return p.T("Pending")
	case api.StatusApproved:
		return p.T("Approved")
	case api.StatusResolved:
		return p.T("Resolved")
	case api.StatusRejected:
		return p.T("Rejected")
	}
	return string(status)
}

// CardView pairs a report card with the page's localizer so the shared
// card partial can translate its labels.
type CardView struct {
	Page
	Card ReportCard
}

// CardView wraps a card for the report-card template partial.
func (p Page) CardView(c ReportCard) CardView { return CardView{Page: p, Card: c} }

// DashboardPage lists the viewer's own reports.
type DashboardPage struct {
	Page
	Cards []ReportCard
}

// ReportDetailPage shows a single report in full.
type ReportDetailPage struct {
	Page
	Card   ReportCard
	Images []string
}

// ReportFormPage renders the new-report form, echoing fields back on error.
type ReportFormPage struct {
	Page
	Form ReportForm
}

// ReportForm holds the text fields of the report form for re-rendering.
type ReportForm struct {
	Name           string
	Age            string
	Gender         string
	Location       string
	LastSeenDate   string
	Description    string
	ContactDetails string
}
