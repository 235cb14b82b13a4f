// Package module defines the minimal contract for a modkit module plus the port registry
package module

import (
	phttp "reviewtrust/internal/platform/net/http"
)

// Module defines the minimal contract used by modkit
// kept as a sibling so a module can export its own ports type without an import cycle
type Module interface {
	MountRoutes(r phttp.Router)
	Ports() any
	Name() string
}

// HasPorts reports whether m exposes a non nil port set
func HasPorts(m Module) bool {
	if m == nil {
		return false
	}
	return m.Ports() != nil
}
