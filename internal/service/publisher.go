package service

import "log"

// Routing keys for domain events published after a successful commit.
const (
	KeyPackageUpdated         = "package.updated"
	KeyPackageStatusChanged   = "package.status_changed"
	KeyPackageChangeRequested = "package.change_requested"
	KeyBookingConfirmed       = "booking.confirmed"
	KeyBookingCancelled       = "booking.cancelled"
	KeyMessageSent            = "message.sent"
)

// Publisher is satisfied by *rabbitmq.Publisher. A nil Publisher disables publishing.
type Publisher interface {
	Publish(routingKey string, payload any) error
}

// publish never fails the caller: the transaction has already committed.
func publish(p Publisher, routingKey string, payload any) {
	if p == nil {
		return
	}
	if err := p.Publish(routingKey, payload); err != nil {
		log.Printf("[Publisher] %s: %v", routingKey, err)
	}
}

type PackageEvent struct {
	PackageID string   `json:"package_id"`
	Status    string   `json:"status"`
	LodgingID *string  `json:"lodging_id,omitempty"`
	EventIDs  []string `json:"event_ids,omitempty"`
	Notes     string   `json:"notes,omitempty"`
}

type BookingEvent struct {
	BookingID string `json:"booking_id"`
	PackageID string `json:"package_id,omitempty"`
	UserID    string `json:"user_id,omitempty"`
	Status    string `json:"status"`
}

type MessageEvent struct {
	MessageID  string  `json:"message_id"`
	SenderID   string  `json:"sender_id"`
	ReceiverID string  `json:"receiver_id"`
	PackageID  *string `json:"package_id,omitempty"`
}
