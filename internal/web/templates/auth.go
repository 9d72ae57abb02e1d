package templates

import "github.com/reuniteapp/reunite/internal/api"

// AuthPage renders the login, register and admin login forms. Email is
// echoed back after a failed submit; passwords never are.
type AuthPage struct {
	Page
	Name  string
	Email string
}

// AdminPage lists every report with moderation controls, plus the
// unidentified-person records the matcher works from.
type AdminPage struct {
	Page
	Cards        []ReportCard
	Unidentified []UnidentifiedRow
}

// UnidentifiedRow is one record in the admin unidentified listing.
type UnidentifiedRow struct {
	ID       string
	Location string
	Date     string
	ImageURL string
}

// NewUnidentifiedRows converts API unidentified records for the admin table.
func NewUnidentifiedRows(people []api.UnidentifiedPerson) []UnidentifiedRow {
	rows := make([]UnidentifiedRow, 0, len(people))
	for _, p := range people {
		row := UnidentifiedRow{
			ID:       p.ID,
			Location: p.Location,
			Date:     p.UploadedAt,
		}
		if len(p.Images) > 0 {
			row.ImageURL = p.Images[0]
		}
		rows = append(rows, row)
	}
	return rows
}

// UploadPage renders the admin unidentified-person upload form.
type UploadPage struct {
	Page
}

// ErrorPage renders a standalone error message.
type ErrorPage struct {
	Page
	Message string
}
