package service

import "errors"

// Sentinel errors shared across services. Handlers map these to HTTP
// codes and localized messages.
var (
	ErrBookNotFound         = errors.New("book not found")
	ErrBookNotAvailable     = errors.New("book not available")
	ErrCategoryNotFound     = errors.New("category not found")
	ErrCartEmpty            = errors.New("cart is empty")
	ErrCartUnavailable      = errors.New("cart store unavailable")
	ErrAddressRequired      = errors.New("delivery address required")
	ErrOrderNotFound        = errors.New("order not found")
	ErrNoActiveOrder        = errors.New("no order awaiting payment")
	ErrOrderStatusInvalid   = errors.New("order status does not allow this transition")
	ErrScreenshotRequired   = errors.New("payment screenshot required")
	ErrPhoneTaken           = errors.New("phone number already registered")
	ErrInvalidCredentials   = errors.New("invalid phone or password")
	ErrInvalidPhone         = errors.New("invalid phone number")
	ErrWeakPassword         = errors.New("password too short")
	ErrPaymentCardMissing   = errors.New("payment card not configured")
	ErrUploadTooLarge       = errors.New("upload exceeds size limit")
	ErrUploadTypeInvalid    = errors.New("upload type not allowed")
	ErrSlugTaken            = errors.New("slug already in use")
	ErrNotFound             = errors.New("not found")
)
