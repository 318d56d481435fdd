package ports

import (
	"context"

	"github.com/mamediksunduk/sunduk-relay/internal/core/domain"
)

// Directory resolves users and posts against the remote VK API.
// Absence is reported through the boolean, never as an error: a failed
// transport, an API error envelope and a genuinely missing record all
// collapse to not-found at the adapter.
type Directory interface {
	FetchUser(ctx context.Context, userID int64) (domain.UserIdentity, bool)
	FetchPost(ctx context.Context, ownerID, postID int64) (domain.PostRecord, bool)
}

// Messenger is one outbound notification channel bound to its fixed
// destination chat.
type Messenger interface {
	Name() string
	SendMessage(ctx context.Context, text string, payload map[string]any) error
}

// Sink accepts a composed notification for delivery. Delivery failures are
// logged inside the sink and never surfaced to the caller.
type Sink interface {
	Deliver(ctx context.Context, n domain.Notification)
}
