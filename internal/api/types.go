package api

// User is the identity projection returned by the login endpoints.
type User struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	IsAdmin bool   `json:"is_admin"`
}

// Credentials bundles the bearer token and user profile returned by a
// successful login.
type Credentials struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

// ReportStatus is the review state of a missing-person report.
type ReportStatus string

const (
	StatusPending  ReportStatus = "pending"
	StatusApproved ReportStatus = "approved"
	StatusResolved ReportStatus = "resolved"
	StatusRejected ReportStatus = "rejected"
)

// Report is the externally defined missing-person record. The client treats
// it as a read-mostly projection; only display and status-update requests
// flow back through the API.
type Report struct {
	ID                   string       `json:"_id"`
	UserID               string       `json:"user_id"`
	Name                 string       `json:"name"`
	Age                  int          `json:"age"`
	Gender               string       `json:"gender"`
	LastSeenLocation     string       `json:"last_seen_location"`
	LastSeenDate         string       `json:"last_seen_date"`
	Description          string       `json:"description"`
	ContactDetails       string       `json:"contact_details"`
	Images               []string     `json:"images"`
	Status               ReportStatus `json:"status"`
	MatchFound           bool         `json:"match_found"`
	SimilarityPercentage float64      `json:"similarity_percentage"`
	CreatedAt            string       `json:"created_at"`
}

// UnidentifiedPerson is an admin-uploaded unidentified person record.
type UnidentifiedPerson struct {
	ID          string   `json:"_id"`
	Images      []string `json:"images"`
	Location    string   `json:"location"`
	Description string   `json:"description"`
	Status      string   `json:"status"`
	UploadedAt  string   `json:"uploaded_at"`
}

// RegisterInput is the payload for account registration.
type RegisterInput struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// ReportReceipt acknowledges a submitted missing-person report.
type ReportReceipt struct {
	Message string `json:"message"`
	ID      string `json:"id"`
}

// UploadReceipt acknowledges an unidentified-person upload.
type UploadReceipt struct {
	Message      string `json:"message"`
	ID           string `json:"id"`
	MatchesFound int    `json:"matches_found"`
}
