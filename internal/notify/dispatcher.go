package notify

import (
	"context"

	"go.uber.org/zap"

	"github.com/mamediksunduk/sunduk-relay/internal/core/domain"
	"github.com/mamediksunduk/sunduk-relay/internal/core/ports"
	"github.com/mamediksunduk/sunduk-relay/internal/metrics"
)

const (
	// maxMessageLen is the destination chat's hard message cap, in runes.
	maxMessageLen = 4096
	// truncationMarker is appended whenever a message is cut at the cap.
	truncationMarker = "... (message truncated)"
)

// Dispatcher fans a composed notification out to every configured channel.
// Delivery is best-effort, at most once: failures are logged and counted,
// never retried, never surfaced to the event source.
type Dispatcher struct {
	logger     *zap.Logger
	messengers []ports.Messenger
}

func NewDispatcher(logger *zap.Logger, messengers ...ports.Messenger) *Dispatcher {
	return &Dispatcher{
		logger:     logger.Named("notify"),
		messengers: messengers,
	}
}

var _ ports.Sink = (*Dispatcher)(nil)

// Deliver sends the notification to all channels, enforcing the message cap
// first. One channel failing does not stop the others.
func (d *Dispatcher) Deliver(ctx context.Context, n domain.Notification) {
	text := Truncate(n.Text)

	for _, m := range d.messengers {
		if err := m.SendMessage(ctx, text, n.Payload); err != nil {
			metrics.NotificationFailures.WithLabelValues(m.Name()).Inc()
			d.logger.Error("notification delivery failed",
				zap.String("channel", m.Name()),
				zap.Error(err),
			)
			continue
		}
		metrics.NotificationsSent.WithLabelValues(m.Name()).Inc()
		d.logger.Info("notification delivered", zap.String("channel", m.Name()))
	}
}

// Truncate cuts text to the destination's cap and appends the truncation
// marker. The cap counts runes, not bytes.
func Truncate(text string) string {
	runes := []rune(text)
	if len(runes) <= maxMessageLen {
		return text
	}
	return string(runes[:maxMessageLen]) + truncationMarker
}
