package order

import "HomeChef-Backend/domain"

var transitions = map[string][]string{
	domain.OrderStatusPending:    {domain.OrderStatusAccepted, domain.OrderStatusRejected},
	domain.OrderStatusAccepted:   {domain.OrderStatusProcessing, domain.OrderStatusCancelled},
	domain.OrderStatusProcessing: {domain.OrderStatusCompleted, domain.OrderStatusCancelled},
}

// NextStatuses lists the statuses the lifecycle expects after current.
// Terminal statuses have none.
func NextStatuses(current string) []string {
	next := transitions[current]
	out := make([]string, len(next))
	copy(out, next)
	return out
}

// CanTransition guards a status change requested by the chef. Only completed
// and cancelled orders are closed. Other moves are not checked against
// NextStatuses.
func CanTransition(current, next string) error {
	switch next {
	case domain.OrderStatusAccepted,
		domain.OrderStatusRejected,
		domain.OrderStatusProcessing,
		domain.OrderStatusCompleted,
		domain.OrderStatusCancelled:
	default:
		return domain.ErrInvalidOrderStatus
	}

	if current == domain.OrderStatusCompleted || current == domain.OrderStatusCancelled {
		return domain.ErrOrderClosed
	}
	return nil
}
