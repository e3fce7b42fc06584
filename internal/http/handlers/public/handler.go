// Package public holds the storefront API handlers: catalog, cart,
// auth, orders and payment submission.
package public

import "github.com/kitoblarda/internal/provider"

// Handler serves the customer-facing API.
type Handler struct {
	*provider.Container
}

// New creates the storefront handler.
func New(c *provider.Container) *Handler {
	return &Handler{Container: c}
}
