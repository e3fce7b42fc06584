// Package staff holds the fulfillment and catalog management API.
// Every route in here sits behind the staff middleware.
package staff

import "github.com/kitoblarda/internal/provider"

// Handler serves the staff API.
type Handler struct {
	*provider.Container
}

// New creates the staff handler.
func New(c *provider.Container) *Handler {
	return &Handler{Container: c}
}
