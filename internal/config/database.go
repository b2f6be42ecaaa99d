// internal/config/database.go
package config

import (
	"strings"
	"time"
)

// MemoryURL selects the in-process document store.
const MemoryURL = "memory://"

// Enabled reports whether a document store is configured at all.
// Without one the API serves the seed catalog directly.
func (d *DatabaseConfig) Enabled() bool {
	return strings.TrimSpace(d.URL) != ""
}

func (d *DatabaseConfig) IsMemory() bool {
	return strings.HasPrefix(d.URL, MemoryURL)
}

func (d *DatabaseConfig) Timeout() time.Duration {
	if d.ConnectTimeout <= 0 {
		return 10 * time.Second
	}
	return time.Duration(d.ConnectTimeout) * time.Second
}
