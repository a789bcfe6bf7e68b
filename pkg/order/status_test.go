package order

import (
	"testing"

	"HomeChef-Backend/domain"

	"github.com/stretchr/testify/assert"
)

func TestNextStatuses(t *testing.T) {
	assert.Equal(t, []string{domain.OrderStatusAccepted, domain.OrderStatusRejected}, NextStatuses(domain.OrderStatusPending))
	assert.Equal(t, []string{domain.OrderStatusCompleted, domain.OrderStatusCancelled}, NextStatuses(domain.OrderStatusProcessing))
	assert.Empty(t, NextStatuses(domain.OrderStatusCompleted))
	assert.Empty(t, NextStatuses(domain.OrderStatusRejected))
}

func TestCanTransition(t *testing.T) {
	tests := []struct {
		name    string
		current string
		next    string
		wantErr error
	}{
		{"pending to accepted", domain.OrderStatusPending, domain.OrderStatusAccepted, nil},
		{"pending to cancelled", domain.OrderStatusPending, domain.OrderStatusCancelled, nil},
		{"processing to cancelled", domain.OrderStatusProcessing, domain.OrderStatusCancelled, nil},
		{"pending to completed skips the lifecycle", domain.OrderStatusPending, domain.OrderStatusCompleted, nil},
		{"pending to processing skips acceptance", domain.OrderStatusPending, domain.OrderStatusProcessing, nil},
		{"rejected is reopened", domain.OrderStatusRejected, domain.OrderStatusAccepted, nil},
		{"rejected to completed", domain.OrderStatusRejected, domain.OrderStatusCompleted, nil},
		{"processing back to accepted", domain.OrderStatusProcessing, domain.OrderStatusAccepted, nil},
		{"completed is closed", domain.OrderStatusCompleted, domain.OrderStatusCancelled, domain.ErrOrderClosed},
		{"cancelled is closed", domain.OrderStatusCancelled, domain.OrderStatusAccepted, domain.ErrOrderClosed},
		{"unknown target", domain.OrderStatusPending, "shipped", domain.ErrInvalidOrderStatus},
		{"pending is never a target", domain.OrderStatusAccepted, domain.OrderStatusPending, domain.ErrInvalidOrderStatus},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CanTransition(tt.current, tt.next)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
