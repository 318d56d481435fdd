package relay

import (
	"fmt"
	"strings"

	"github.com/mamediksunduk/sunduk-relay/internal/core/domain"
)

// Author line placeholders. Unresolved identities are always spelled out;
// a message never carries a silently empty name.
const (
	AuthorUnknown      = "could not determine"
	AuthorUndetermined = "not determined"
)

// Composer renders notifications per event kind. It is pure: same inputs,
// same text and payload.
type Composer struct {
	// LinkHost is the host used in generated wall links, e.g. "vk.com".
	LinkHost string
}

func NewComposer(linkHost string) Composer {
	if linkHost == "" {
		linkHost = "vk.com"
	}
	return Composer{LinkHost: linkHost}
}

// PostLink builds the fixed-form link https://<host>/wall{owner}_{post}.
func (c Composer) PostLink(ref domain.PostRef) string {
	return fmt.Sprintf("https://%s/%s", c.LinkHost, ref.Wall())
}

// NewPost renders a wall_post_new notification, distinguishing a suggested
// post from a regular one.
func (c Composer) NewPost(e WallPostEvent, admin domain.UserIdentity) domain.Notification {
	var text, key string
	if e.Suggested() {
		key = "suggested_post"
		text = fmt.Sprintf(
			"🔔 New suggested post! 🤔\n📜 Post ID: %d\n👤 Suggested by: %s\n🔗 Link: %s",
			e.ID, admin.FullName(), c.PostLink(e.Ref()),
		)
	} else {
		key = "new_wall_post"
		text = fmt.Sprintf(
			"🔔 New post on the community wall! 🔔\n📜 Post ID: %d\n👤 Administrator: %s\n🔗 Link: %s",
			e.ID, admin.FullName(), c.PostLink(e.Ref()),
		)
	}

	return domain.Notification{
		Text: text,
		Payload: map[string]any{
			"type":     "post",
			"key":      key,
			"post_id":  e.ID,
			"owner_id": e.OwnerID,
		},
	}
}

// LikeAdded renders a like_add notification. author may be nil when the
// resolved author id could not be looked up; authorID may be zero when no
// author could be determined at all.
func (c Composer) LikeAdded(ref domain.PostRef, liker domain.UserIdentity, authorID int64, author *domain.UserIdentity) domain.Notification {
	return c.like(ref, liker, authorID, author,
		"❤️ New like! 💕", "👤 Liked by", "like", "new_like")
}

// LikeRemoved renders a like_remove notification with the same body shape
// as LikeAdded.
func (c Composer) LikeRemoved(ref domain.PostRef, liker domain.UserIdentity, authorID int64, author *domain.UserIdentity) domain.Notification {
	return c.like(ref, liker, authorID, author,
		"❌ Like removed! 💔", "👤 Unliked by", "like_remove", "like_removed")
}

func (c Composer) like(ref domain.PostRef, liker domain.UserIdentity, authorID int64, author *domain.UserIdentity, header, likerLabel, payloadType, payloadKey string) domain.Notification {
	parts := []string{
		header,
		"📜 Post info:",
		fmt.Sprintf("🆔 Post ID: %d", ref.PostID),
		fmt.Sprintf("%s: %s (ID: %d)", likerLabel, liker.FullName(), liker.ID),
		"🖋 Post author: " + c.authorLine(authorID, author),
		fmt.Sprintf("🔗 Link: %s", c.PostLink(ref)),
	}

	return domain.Notification{
		Text: strings.Join(parts, "\n"),
		Payload: map[string]any{
			"type":     payloadType,
			"key":      payloadKey,
			"post_id":  ref.PostID,
			"liker_id": liker.ID,
		},
	}
}

func (c Composer) authorLine(authorID int64, author *domain.UserIdentity) string {
	switch {
	case authorID == 0:
		return AuthorUndetermined
	case author == nil:
		return AuthorUnknown
	default:
		return fmt.Sprintf("%s (ID: %d)", author.FullName(), author.ID)
	}
}
