package templates

import "github.com/reuniteapp/reunite/internal/api"

// featuredLimit caps the number of cards on the landing page.
const featuredLimit = 6

// ReportStats summarizes the report corpus for the landing page counters.
type ReportStats struct {
	Total    int
	Resolved int
	Active   int
}

// SummarizeReports counts totals from the full report list. Active means
// approved and still open.
func SummarizeReports(reports []api.Report) ReportStats {
	stats := ReportStats{Total: len(reports)}
	for _, r := range reports {
		switch r.Status {
		case api.StatusResolved:
			stats.Resolved++
		case api.StatusApproved:
			stats.Active++
		}
	}
	return stats
}

// FeaturedReports picks the approved reports shown on the landing page,
// capped at the card limit.
func FeaturedReports(reports []api.Report) []ReportCard {
	cards := make([]ReportCard, 0, featuredLimit)
	for _, r := range reports {
		if r.Status != api.StatusApproved {
			continue
		}
		cards = append(cards, NewReportCard(r))
		if len(cards) == featuredLimit {
			break
		}
	}
	return cards
}

// HomePage is the landing page view. When Searched is set the cards are
// search results rather than the featured listing.
type HomePage struct {
	Page
	Stats    ReportStats
	Cards    []ReportCard
	Query    string
	Searched bool
	Degraded bool
}
