// Package lifecycle holds constants shared by startup and shutdown hooks.
package lifecycle

import "time"

// DefaultTimeout bounds graceful startup checks and shutdown.
const DefaultTimeout = 10 * time.Second
