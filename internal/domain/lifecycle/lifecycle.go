// Package lifecycle holds timeouts shared by fx start and stop hooks.
package lifecycle

import "time"

const (
	// DefaultTimeout bounds a single start or stop hook (DB ping, HTTP shutdown, publisher flush).
	DefaultTimeout = 10 * time.Second

	// ProbeTimeout bounds health probes issued from request handlers.
	ProbeTimeout = 2 * time.Second
)
