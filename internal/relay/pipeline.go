package relay

import (
	"context"
	"encoding/json"

	"go.uber.org/zap"

	"github.com/mamediksunduk/sunduk-relay/internal/core/domain"
	"github.com/mamediksunduk/sunduk-relay/internal/core/ports"
	"github.com/mamediksunduk/sunduk-relay/internal/metrics"
)

// Pipeline validates raw group events, resolves the people involved and
// forwards composed notifications to the sink. It holds no per-event state,
// so any number of events may flow through it concurrently; one event's
// failure never touches another.
type Pipeline struct {
	logger   *zap.Logger
	dir      ports.Directory
	sink     ports.Sink
	resolver *AuthorResolver
	composer Composer
}

func NewPipeline(dir ports.Directory, sink ports.Sink, composer Composer, logger *zap.Logger) *Pipeline {
	return &Pipeline{
		logger:   logger.Named("pipeline"),
		dir:      dir,
		sink:     sink,
		resolver: NewAuthorResolver(dir, logger),
		composer: composer,
	}
}

// Handle processes one raw event end to end. It never returns an error to
// the transport: malformed or unresolvable events are logged and discarded.
func (p *Pipeline) Handle(ctx context.Context, eventType string, object json.RawMessage) {
	metrics.EventsReceived.WithLabelValues(eventType).Inc()

	switch eventType {
	case EventWallPostNew:
		p.handleWallPost(ctx, object)
	case EventLikeAdd:
		p.handleLike(ctx, object, false)
	case EventLikeRemove:
		p.handleLike(ctx, object, true)
	default:
		p.logger.Debug("ignoring event", zap.String("type", eventType))
	}
}

func (p *Pipeline) handleWallPost(ctx context.Context, object json.RawMessage) {
	e, err := decodeWallPost(object)
	if err != nil {
		p.discard(EventWallPostNew, "invalid", zap.Error(err))
		return
	}

	// A new-post notification is worthless without the submitter's name,
	// so an unresolvable creator discards the event.
	creatorID := e.CreatorID()
	admin, ok := p.dir.FetchUser(ctx, creatorID)
	if !ok {
		p.discard(EventWallPostNew, "creator_unresolved", zap.Int64("creator_id", creatorID))
		return
	}

	p.sink.Deliver(ctx, p.composer.NewPost(e, admin))
}

func (p *Pipeline) handleLike(ctx context.Context, object json.RawMessage, removed bool) {
	eventType := EventLikeAdd
	if removed {
		eventType = EventLikeRemove
	}

	e, err := decodeLike(object)
	if err != nil {
		p.discard(eventType, "invalid", zap.Error(err))
		return
	}

	liker, ok := p.dir.FetchUser(ctx, *e.LikerID)
	if !ok {
		p.discard(eventType, "liker_unresolved", zap.Int64("liker_id", *e.LikerID))
		return
	}

	// Unlike the liker, the post author may degrade to a placeholder: a
	// like notification without a confirmed author is still valuable.
	ref := e.Ref()
	authorID := p.resolver.Resolve(ctx, ref.OwnerID, ref.PostID)

	var author *domain.UserIdentity
	if authorID != 0 {
		if u, ok := p.dir.FetchUser(ctx, authorID); ok {
			author = &u
		}
	}

	var n domain.Notification
	if removed {
		n = p.composer.LikeRemoved(ref, liker, authorID, author)
	} else {
		n = p.composer.LikeAdded(ref, liker, authorID, author)
	}
	p.sink.Deliver(ctx, n)
}

func (p *Pipeline) discard(eventType, reason string, fields ...zap.Field) {
	metrics.EventsDiscarded.WithLabelValues(eventType, reason).Inc()
	p.logger.Warn("discarding event",
		append([]zap.Field{zap.String("type", eventType), zap.String("reason", reason)}, fields...)...)
}
