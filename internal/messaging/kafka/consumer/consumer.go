package consumer

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"time"

	"go-attendance/internal/events"
	"go-attendance/internal/notification"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// MessageReader is satisfied by *kafkago.Reader.
type MessageReader interface {
	FetchMessage(ctx context.Context) (kafkago.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafkago.Message) error
}

// Fetch errors back off exponentially between these bounds.
var (
	fetchRetryBase = 500 * time.Millisecond
	fetchRetryMax  = 30 * time.Second
)

// ConsumeNotifications delivers notification events until ctx is cancelled.
// Delivery is best effort: a failed send is logged and the offset committed.
// It also returns when the reader is closed.
func ConsumeNotifications(
	ctx context.Context,
	reader MessageReader,
	sender notification.Sender,
	logger *zap.Logger,
) {
	log := logger.Named("kafka.consumer.notification")
	log.Info("notification consumer started")

	delay := fetchRetryBase
	for {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Info("notification consumer stopped")
				return
			}
			if errors.Is(err, io.EOF) {
				log.Info("notification reader closed")
				return
			}
			log.Error("fetch notification message failed", zap.Error(err), zap.Duration("retry_in", delay))
			select {
			case <-ctx.Done():
				log.Info("notification consumer stopped")
				return
			case <-time.After(delay):
			}
			delay = min(delay*2, fetchRetryMax)
			continue
		}
		delay = fetchRetryBase

		handleMessage(ctx, sender, msg, log)

		if err := reader.CommitMessages(ctx, msg); err != nil {
			log.Error("commit notification message failed", zap.Error(err))
		}
	}
}

func handleMessage(ctx context.Context, sender notification.Sender, msg kafkago.Message, log *zap.Logger) {
	var event events.NotificationRequestedEvent
	if err := json.Unmarshal(msg.Value, &event); err != nil {
		log.Error("decode notification event failed", zap.Int64("offset", msg.Offset), zap.Error(err))
		return
	}
	if event.To == "" {
		log.Warn("notification event without recipient, skipping", zap.String("notification_id", event.NotificationID))
		return
	}

	err := sender.Send(ctx, notification.Message{
		Kind:    event.Kind,
		To:      event.To,
		Subject: event.Subject,
		HTML:    event.HTML,
	})
	if err != nil {
		log.Warn("notification delivery failed",
			zap.String("notification_id", event.NotificationID),
			zap.String("request_id", event.RequestID),
			zap.String("kind", event.Kind),
			zap.Error(err),
		)
		return
	}

	log.Info("notification delivered",
		zap.String("notification_id", event.NotificationID),
		zap.String("request_id", event.RequestID),
		zap.String("kind", event.Kind),
	)
}
