package service

import "context"

// BookingEvent is published when a booking changes state. The notifier worker
// consumes it and pushes to the provider's registered devices.
type BookingEvent struct {
	BookingID  string   `json:"booking_id"`
	Reference  string   `json:"reference"`
	ProviderID string   `json:"provider_id"`
	CustomerID string   `json:"customer_id"`
	Status     string   `json:"status"`
	TotalCents int64    `json:"total_cents"`
	Tokens     []string `json:"tokens,omitempty"` // provider device tokens at publish time
	RequestID  string   `json:"request_id,omitempty"`
}

// EventPublisher defines the interface for publishing booking events.
type EventPublisher interface {
	// PublishBookingEvent publishes a booking state change.
	PublishBookingEvent(ctx context.Context, event *BookingEvent) error

	// Close releases the publisher's resources.
	Close() error
}
