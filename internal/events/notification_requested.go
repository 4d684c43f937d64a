package events

import "time"

const NotificationRequestedTopic = "attendance.notification.requested.v1"

const NotificationRequestedType = "notification_requested"

// NotificationRequestedEvent carries a fully rendered email; consumers only deliver it.
type NotificationRequestedEvent struct {
	EventType      string    `json:"event_type"`
	RequestID      string    `json:"request_id,omitempty"`
	NotificationID string    `json:"notification_id"`
	Kind           string    `json:"kind"`
	To             string    `json:"to"`
	Subject        string    `json:"subject"`
	HTML           string    `json:"html"`
	OccurredAt     time.Time `json:"occurred_at"`
}
