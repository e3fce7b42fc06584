package service

import (
	"strings"

	"github.com/kitoblarda/internal/constants"
)

// allowedTransitions is the order state machine. Delivered and
// cancelled are terminal.
var allowedTransitions = map[string]map[string]bool{
	constants.OrderStatusPending: {
		constants.OrderStatusAwaitingConfirmation: true,
	},
	constants.OrderStatusAwaitingConfirmation: {
		constants.OrderStatusConfirmedPreparing: true,
		constants.OrderStatusCancelled:          true,
	},
	constants.OrderStatusConfirmedPreparing: {
		constants.OrderStatusAwaitingDelivery: true,
	},
	constants.OrderStatusAwaitingDelivery: {
		constants.OrderStatusDelivered: true,
	},
}

// CanTransition reports whether an order may move between the two
// statuses.
func CanTransition(from, to string) bool {
	from = strings.ToLower(strings.TrimSpace(from))
	to = strings.ToLower(strings.TrimSpace(to))
	targets, ok := allowedTransitions[from]
	if !ok {
		return false
	}
	return targets[to]
}

// IsTerminalStatus reports whether no transition leaves the status.
func IsTerminalStatus(status string) bool {
	status = strings.ToLower(strings.TrimSpace(status))
	return status == constants.OrderStatusDelivered || status == constants.OrderStatusCancelled
}

// IsKnownStatus reports whether the status belongs to the pipeline.
func IsKnownStatus(status string) bool {
	switch strings.ToLower(strings.TrimSpace(status)) {
	case constants.OrderStatusPending,
		constants.OrderStatusAwaitingConfirmation,
		constants.OrderStatusConfirmedPreparing,
		constants.OrderStatusAwaitingDelivery,
		constants.OrderStatusDelivered,
		constants.OrderStatusCancelled:
		return true
	default:
		return false
	}
}
