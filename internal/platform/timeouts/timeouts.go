// Package timeouts defines shared timeout constants used by HomeoInvent
// servers.
package timeouts

import "time"

// ReadHeader limits how long an HTTP server waits for request headers.
const ReadHeader = 5 * time.Second

// Request caps the time a single HTTP handler may spend on storage calls.
const Request = 10 * time.Second

// Shutdown limits how long servers wait for in-flight requests during
// graceful shutdown.
const Shutdown = 5 * time.Second
