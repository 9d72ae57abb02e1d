// Package api wraps HTTP calls to the remote missing-persons reporting API.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"

	"github.com/reuniteapp/reunite/internal/platform/timeouts"
)

// Config defines the inputs for the API client.
type Config struct {
	// BaseURL is the host prefix every endpoint is resolved against,
	// e.g. "https://api.example.org". Endpoint paths carry the /api mount.
	BaseURL string
	// HTTPClient overrides the transport; a default client with the shared
	// request timeout is used when nil.
	HTTPClient *http.Client
	// Logger receives transport and decode failures; log.Default() when nil.
	Logger *log.Logger
}

// Client issues requests against the reporting API.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *log.Logger
}

// New builds a configured API client.
func New(cfg Config) (*Client, error) {
	baseURL := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if baseURL == "" {
		return nil, errors.New("api base url is required")
	}
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: timeouts.APIRequest}
	}
	logger := cfg.Logger
	if logger == nil {
		logger = log.Default()
	}
	return &Client{baseURL: baseURL, httpClient: httpClient, logger: logger}, nil
}

// request describes one API round trip. Exactly one of payload and form may
// be set: payload is JSON-encoded, form is a multipart body passed through
// unchanged together with its boundary-carrying content type.
type request struct {
	method   string
	endpoint string
	token    string
	payload  any
	form     io.Reader
	formType string
}

// do issues the request and decodes the JSON response into out when out is
// non-nil. Non-2xx responses become *Error values carrying the
// server-supplied message.
func (c *Client) do(ctx context.Context, req request, out any) error {
	var body io.Reader
	if req.form != nil {
		body = req.form
	} else if req.payload != nil {
		encoded, err := json.Marshal(req.payload)
		if err != nil {
			return fmt.Errorf("encode %s %s body: %w", req.method, req.endpoint, err)
		}
		body = bytes.NewReader(encoded)
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.method, c.baseURL+req.endpoint, body)
	if err != nil {
		return fmt.Errorf("build %s %s request: %w", req.method, req.endpoint, err)
	}
	httpReq.Header.Set("Accept", "application/json")
	if req.form != nil {
		// The multipart writer picked the boundary; overriding the content
		// type here would break part parsing on the server.
		httpReq.Header.Set("Content-Type", req.formType)
	} else {
		httpReq.Header.Set("Content-Type", "application/json")
	}
	if token := strings.TrimSpace(req.token); token != "" {
		httpReq.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		c.logger.Printf("api request failed method=%s endpoint=%s err=%v", req.method, req.endpoint, err)
		return fmt.Errorf("call %s %s: %w", req.method, req.endpoint, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		c.logger.Printf("api response read failed method=%s endpoint=%s err=%v", req.method, req.endpoint, err)
		return fmt.Errorf("read %s %s response: %w", req.method, req.endpoint, err)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		var serverErr struct {
			Error string `json:"error"`
		}
		_ = json.Unmarshal(raw, &serverErr)
		return newStatusError(resp.StatusCode, strings.TrimSpace(serverErr.Error))
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		c.logger.Printf("api response decode failed method=%s endpoint=%s err=%v", req.method, req.endpoint, err)
		return fmt.Errorf("decode %s %s response: %w", req.method, req.endpoint, err)
	}
	return nil
}
