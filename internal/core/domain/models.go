package domain

import "fmt"

// UserIdentity is a VK user's name as returned by users.get.
// Fetched fresh per resolution, never cached across events.
type UserIdentity struct {
	ID        int64
	FirstName string
	LastName  string
}

func (u UserIdentity) FullName() string {
	return u.FirstName + " " + u.LastName
}

// PostRef identifies a wall post. Community owners have negative ids.
type PostRef struct {
	OwnerID int64
	PostID  int64
}

// Wall returns the "wall{owner}_{post}" suffix used in post links.
func (r PostRef) Wall() string {
	return fmt.Sprintf("wall%d_%d", r.OwnerID, r.PostID)
}

// PostRecord carries the extended authorship attributes of a wall post.
// Any subset of the fields may be zero; the upstream API does not reliably
// populate a single "responsible user" field.
type PostRecord struct {
	CreatedBy int64
	SignerID  int64
	FromID    int64
	OwnerID   int64
}

// Notification is one composed message ready for delivery.
// Payload values are strings or integers.
type Notification struct {
	Text    string
	Payload map[string]any
}
