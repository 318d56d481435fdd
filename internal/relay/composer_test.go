package relay

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mamediksunduk/sunduk-relay/internal/core/domain"
)

var (
	anna = domain.UserIdentity{ID: 55, FirstName: "Anna", LastName: "Ivanova"}
	ivan = domain.UserIdentity{ID: 7, FirstName: "Ivan", LastName: "Petrov"}
)

func TestNewPost_Suggested(t *testing.T) {
	c := NewComposer("vk.com")
	e := WallPostEvent{ID: 10, OwnerID: -100, PostType: "suggest"}

	n := c.NewPost(e, anna)
	assert.Contains(t, n.Text, "New suggested post")
	assert.Contains(t, n.Text, "Anna Ivanova")
	assert.Contains(t, n.Text, "https://vk.com/wall-100_10")
	assert.Equal(t, "suggested_post", n.Payload["key"])
	assert.Equal(t, "post", n.Payload["type"])
	assert.Equal(t, int64(10), n.Payload["post_id"])
	assert.Equal(t, int64(-100), n.Payload["owner_id"])
}

func TestNewPost_Regular(t *testing.T) {
	c := NewComposer("vk.com")
	e := WallPostEvent{ID: 10, OwnerID: -100, PostType: "post"}

	n := c.NewPost(e, anna)
	assert.Contains(t, n.Text, "community wall")
	assert.Contains(t, n.Text, "Administrator: Anna Ivanova")
	assert.Equal(t, "new_wall_post", n.Payload["key"])
}

func TestLikeAdded(t *testing.T) {
	c := NewComposer("vk.com")
	ref := domain.PostRef{OwnerID: -100, PostID: 10}

	n := c.LikeAdded(ref, ivan, anna.ID, &anna)
	assert.Contains(t, n.Text, "New like")
	assert.Contains(t, n.Text, "Liked by: Ivan Petrov (ID: 7)")
	assert.Contains(t, n.Text, "Post author: Anna Ivanova (ID: 55)")
	assert.Contains(t, n.Text, "https://vk.com/wall-100_10")
	assert.Equal(t, map[string]any{
		"type":     "like",
		"key":      "new_like",
		"post_id":  int64(10),
		"liker_id": int64(7),
	}, n.Payload)
}

func TestLikeRemoved(t *testing.T) {
	c := NewComposer("vk.com")
	ref := domain.PostRef{OwnerID: -100, PostID: 10}

	n := c.LikeRemoved(ref, ivan, anna.ID, &anna)
	assert.Contains(t, n.Text, "Like removed")
	assert.Contains(t, n.Text, "Unliked by: Ivan Petrov (ID: 7)")
	assert.Equal(t, "like_removed", n.Payload["key"])
	assert.Equal(t, "like_remove", n.Payload["type"])
}

func TestLike_AuthorPlaceholders(t *testing.T) {
	c := NewComposer("vk.com")
	ref := domain.PostRef{OwnerID: -100, PostID: 10}

	lookupFailed := c.LikeAdded(ref, ivan, 55, nil)
	assert.Contains(t, lookupFailed.Text, "Post author: "+AuthorUnknown)

	noAuthor := c.LikeAdded(ref, ivan, 0, nil)
	assert.Contains(t, noAuthor.Text, "Post author: "+AuthorUndetermined)
}

func TestPostLink_CustomHost(t *testing.T) {
	c := NewComposer("vk.example.org")
	assert.Equal(t, "https://vk.example.org/wall-100_10",
		c.PostLink(domain.PostRef{OwnerID: -100, PostID: 10}))
}

func TestNewComposer_DefaultHost(t *testing.T) {
	c := NewComposer("")
	assert.Equal(t, "vk.com", c.LinkHost)
}
