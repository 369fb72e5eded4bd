// Package lifecycle holds shared timeouts for application start and stop hooks.
package lifecycle

import "time"

// DefaultTimeout bounds lifecycle operations such as database pings and
// HTTP server shutdown.
const DefaultTimeout = 10 * time.Second
