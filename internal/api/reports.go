package api

import (
	"context"
	"io"
	"net/http"
	"net/url"
)

// Register creates a new account. The backend acknowledges with a message
// only; registration does not sign the user in.
func (c *Client) Register(ctx context.Context, input RegisterInput) error {
	return c.do(ctx, request{
		method:   http.MethodPost,
		endpoint: "/api/register",
		payload:  input,
	}, nil)
}

// Login exchanges credentials for a bearer token and user profile.
func (c *Client) Login(ctx context.Context, email, password string) (Credentials, error) {
	var creds Credentials
	err := c.do(ctx, request{
		method:   http.MethodPost,
		endpoint: "/api/login",
		payload:  map[string]string{"email": email, "password": password},
	}, &creds)
	return creds, err
}

// AdminLogin exchanges admin credentials for a bearer token and profile.
func (c *Client) AdminLogin(ctx context.Context, email, password string) (Credentials, error) {
	var creds Credentials
	err := c.do(ctx, request{
		method:   http.MethodPost,
		endpoint: "/api/admin/login",
		payload:  map[string]string{"email": email, "password": password},
	}, &creds)
	return creds, err
}

// ReportMissingPerson submits a new report as a multipart body. The form
// reader and its boundary-carrying content type come straight from a
// multipart writer and are passed through unchanged.
func (c *Client) ReportMissingPerson(ctx context.Context, token string, form io.Reader, contentType string) (ReportReceipt, error) {
	var receipt ReportReceipt
	err := c.do(ctx, request{
		method:   http.MethodPost,
		endpoint: "/api/missing-person/report",
		token:    token,
		form:     form,
		formType: contentType,
	}, &receipt)
	return receipt, err
}

// MyReports lists the reports filed by the authenticated user.
func (c *Client) MyReports(ctx context.Context, token string) ([]Report, error) {
	var reports []Report
	err := c.do(ctx, request{
		method:   http.MethodGet,
		endpoint: "/api/missing-person/my-reports",
		token:    token,
	}, &reports)
	return reports, err
}

// AllReports lists every report. The endpoint is public.
func (c *Client) AllReports(ctx context.Context) ([]Report, error) {
	var reports []Report
	err := c.do(ctx, request{
		method:   http.MethodGet,
		endpoint: "/api/missing-person/all",
	}, &reports)
	return reports, err
}

// GetReport fetches a single report by ID.
func (c *Client) GetReport(ctx context.Context, id string) (Report, error) {
	var report Report
	err := c.do(ctx, request{
		method:   http.MethodGet,
		endpoint: "/api/missing-person/" + url.PathEscape(id),
	}, &report)
	return report, err
}

// Search filters approved reports by name and last-seen location. Empty
// values are passed through; the backend decides what an empty query means.
func (c *Client) Search(ctx context.Context, name, location string) ([]Report, error) {
	query := url.Values{}
	query.Set("name", name)
	query.Set("location", location)

	var reports []Report
	err := c.do(ctx, request{
		method:   http.MethodGet,
		endpoint: "/api/search?" + query.Encode(),
	}, &reports)
	return reports, err
}

// UpdateReportStatus moves a report to a new review state. Admin only.
func (c *Client) UpdateReportStatus(ctx context.Context, token, id string, status ReportStatus) error {
	return c.do(ctx, request{
		method:   http.MethodPut,
		endpoint: "/api/admin/missing-person/" + url.PathEscape(id) + "/status",
		token:    token,
		payload:  map[string]string{"status": string(status)},
	}, nil)
}

// UploadUnidentified submits an unidentified-person record as a multipart
// body. Admin only.
func (c *Client) UploadUnidentified(ctx context.Context, token string, form io.Reader, contentType string) (UploadReceipt, error) {
	var receipt UploadReceipt
	err := c.do(ctx, request{
		method:   http.MethodPost,
		endpoint: "/api/admin/unidentified/upload",
		token:    token,
		form:     form,
		formType: contentType,
	}, &receipt)
	return receipt, err
}

// ListUnidentified lists active unidentified-person records. Admin only.
func (c *Client) ListUnidentified(ctx context.Context, token string) ([]UnidentifiedPerson, error) {
	var people []UnidentifiedPerson
	err := c.do(ctx, request{
		method:   http.MethodGet,
		endpoint: "/api/admin/unidentified/all",
		token:    token,
	}, &people)
	return people, err
}

// Ping probes backend connectivity. Diagnostic only; callers may ignore the
// result without affecting application state.
func (c *Client) Ping(ctx context.Context) error {
	return c.do(ctx, request{
		method:   http.MethodGet,
		endpoint: "/api/test",
	}, nil)
}
