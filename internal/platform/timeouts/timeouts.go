// Package timeouts defines shared timeout constants used across the web
// client. Centralizing these values keeps the durations discoverable.
package timeouts

import "time"

// APIRequest caps the time allowed for a single round trip to the
// reporting API.
const APIRequest = 15 * time.Second

// Probe caps the startup connectivity probe against the reporting API.
const Probe = 5 * time.Second

// ReadHeader limits how long the HTTP server waits for request headers.
const ReadHeader = 5 * time.Second

// Shutdown limits how long the HTTP server waits for in-flight requests
// during graceful shutdown.
const Shutdown = 5 * time.Second
