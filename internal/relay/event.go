package relay

import (
	"encoding/json"
	"fmt"

	"github.com/mamediksunduk/sunduk-relay/internal/core/domain"
)

// Group event types delivered by the Bots Long Poll server.
const (
	EventWallPostNew = "wall_post_new"
	EventLikeAdd     = "like_add"
	EventLikeRemove  = "like_remove"
)

// WallPostEvent is the object of a wall_post_new event. The upstream payload
// is loosely typed; a zero ID or OwnerID means the field was missing or
// unusable, either way the event cannot be handled.
type WallPostEvent struct {
	ID        int64  `json:"id"`
	OwnerID   int64  `json:"owner_id"`
	FromID    int64  `json:"from_id"`
	CreatedBy int64  `json:"created_by"`
	PostType  string `json:"post_type"`
}

func (e WallPostEvent) Ref() domain.PostRef {
	return domain.PostRef{OwnerID: e.OwnerID, PostID: e.ID}
}

// Suggested reports whether the post is a suggested (pending-approval) post.
func (e WallPostEvent) Suggested() bool {
	return e.PostType == "suggest"
}

// CreatorID picks the id of the user responsible for the post: created_by,
// falling back to from_id, falling back to owner_id.
func (e WallPostEvent) CreatorID() int64 {
	switch {
	case e.CreatedBy != 0:
		return e.CreatedBy
	case e.FromID != 0:
		return e.FromID
	default:
		return e.OwnerID
	}
}

// decodeWallPost converts a raw wall_post_new object into a typed event,
// turning missing-field surprises into one explicit validation error.
func decodeWallPost(object json.RawMessage) (WallPostEvent, error) {
	var e WallPostEvent
	if err := json.Unmarshal(object, &e); err != nil {
		return WallPostEvent{}, fmt.Errorf("malformed wall post object: %w", err)
	}
	if e.ID == 0 || e.OwnerID == 0 {
		return WallPostEvent{}, fmt.Errorf("wall post object missing id (%d) or owner_id (%d)", e.ID, e.OwnerID)
	}
	return e, nil
}

// LikeEvent is the object of a like_add / like_remove event. The three
// fields are required keys; pointers distinguish an absent key from a
// present zero.
type LikeEvent struct {
	ObjectOwnerID *int64 `json:"object_owner_id"`
	ObjectID      *int64 `json:"object_id"`
	LikerID       *int64 `json:"liker_id"`
}

func (e LikeEvent) Ref() domain.PostRef {
	return domain.PostRef{OwnerID: *e.ObjectOwnerID, PostID: *e.ObjectID}
}

func decodeLike(object json.RawMessage) (LikeEvent, error) {
	var e LikeEvent
	if err := json.Unmarshal(object, &e); err != nil {
		return LikeEvent{}, fmt.Errorf("malformed like object: %w", err)
	}
	switch {
	case e.ObjectOwnerID == nil:
		return LikeEvent{}, fmt.Errorf("like object missing object_owner_id")
	case e.ObjectID == nil:
		return LikeEvent{}, fmt.Errorf("like object missing object_id")
	case e.LikerID == nil:
		return LikeEvent{}, fmt.Errorf("like object missing liker_id")
	}
	return e, nil
}
