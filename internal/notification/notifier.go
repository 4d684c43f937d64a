package notification

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	"go-attendance/internal/events"
	"go-attendance/internal/messaging/kafka"
	"go-attendance/internal/shared/contextutil"

	"github.com/google/uuid"
)

// Notifier queues a message for delivery. tx, when non-nil, is the caller's
// transaction so the message is only sent if the surrounding write commits.
type Notifier interface {
	Queue(ctx context.Context, tx *sql.Tx, msg Message) error
}

type outboxNotifier struct {
	outbox kafka.OutboxRepository
	now    func() time.Time
}

func NewOutboxNotifier(outbox kafka.OutboxRepository) Notifier {
	return &outboxNotifier{
		outbox: outbox,
		now:    func() time.Time { return time.Now().UTC() },
	}
}

func (n *outboxNotifier) Queue(ctx context.Context, tx *sql.Tx, msg Message) error {
	rid := contextutil.GetRequestID(ctx)
	event := events.NotificationRequestedEvent{
		EventType:      events.NotificationRequestedType,
		RequestID:      rid,
		NotificationID: uuid.NewString(),
		Kind:           msg.Kind,
		To:             msg.To,
		Subject:        msg.Subject,
		HTML:           msg.HTML,
		OccurredAt:     n.now(),
	}
	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}

	repo := n.outbox
	if tx != nil {
		repo = repo.WithTx(tx)
	}
	return repo.Create(ctx, kafka.OutboxEvent{
		ID:            uuid.NewString(),
		RequestID:     rid,
		AggregateType: "notification",
		AggregateID:   event.NotificationID,
		EventType:     event.EventType,
		Topic:         events.NotificationRequestedTopic,
		Payload:       payload,
		Status:        kafka.OutboxStatusPending,
	})
}
