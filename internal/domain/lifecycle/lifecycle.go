// Package lifecycle holds shared constants for application start/stop handling.
package lifecycle

import "time"

// DefaultTimeout bounds lifecycle hooks such as database pings and
// graceful HTTP shutdown.
const DefaultTimeout = 10 * time.Second
