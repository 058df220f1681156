// Package module defines what the API mounts and how other code reaches a module's ports
package module

import (
	phttp "gadash/internal/platform/net/http"
)

// Module is one mountable slice of the API
// Ports returns the module's port bundle, which PortsOf searches
type Module interface {
	Name() string
	MountRoutes(r phttp.Router)
	Ports() any
}
