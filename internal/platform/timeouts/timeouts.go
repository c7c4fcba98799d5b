// Package timeouts defines shared timeout constants used by the web service.
package timeouts

import "time"

// ReadHeader limits how long an HTTP server waits for request headers.
const ReadHeader = 5 * time.Second

// Shutdown limits how long an HTTP server waits for in-flight requests
// during graceful shutdown.
const Shutdown = 5 * time.Second

// AuthRequest caps a single call to the external auth back end.
const AuthRequest = 3 * time.Second

// StoreRequest caps a single call to the practice store.
const StoreRequest = 3 * time.Second
