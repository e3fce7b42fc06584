package constants

// Order statuses
const (
	OrderStatusPending              = "pending"
	OrderStatusAwaitingConfirmation = "awaiting_confirmation"
	OrderStatusConfirmedPreparing   = "confirmed_preparing"
	OrderStatusAwaitingDelivery     = "awaiting_delivery"
	OrderStatusDelivered            = "delivered"
	OrderStatusCancelled            = "cancelled"
)

// Book cover types
const (
	CoverTypeHard = "hard"
	CoverTypeSoft = "soft"
)

// Session
const (
	// SessionCookieName is the session id cookie set for every user agent
	SessionCookieName = "sid"
	// SessionCartKey is the session key the serialized cart lives under
	SessionCartKey = "cart"
)

// Queue task type names
const (
	TaskOrderStatusLog = "order:status_log"

	QueueDefault = "default"
)

// Default locale for user-facing messages
const (
	LocaleUzbek   = "uz"
	LocaleRussian = "ru"
	LocaleEnglish = "en"
)
