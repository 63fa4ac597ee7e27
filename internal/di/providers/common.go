// Package providers contains dependency injection providers for the
// BookTrack server.
package providers

import "time"

const (
	// shutdownTimeout is the maximum time to wait for graceful shutdown of
	// in-flight requests.
	shutdownTimeout = 15 * time.Second
)
