package relay

import (
	"context"

	"go.uber.org/zap"

	"github.com/mamediksunduk/sunduk-relay/internal/core/ports"
)

// AuthorResolver derives the most plausible responsible user id for a wall
// post. The API populates authorship fields inconsistently (original poster
// vs. suggested-post submitter vs. the community itself), so the resolver
// walks an ordered candidate list and degrades to the community id instead
// of failing.
type AuthorResolver struct {
	dir    ports.Directory
	logger *zap.Logger
}

func NewAuthorResolver(dir ports.Directory, logger *zap.Logger) *AuthorResolver {
	return &AuthorResolver{
		dir:    dir,
		logger: logger.Named("resolver"),
	}
}

// Resolve always returns a usable id; ownerID is the fallback when the post
// cannot be fetched or no candidate field is populated.
func (r *AuthorResolver) Resolve(ctx context.Context, ownerID, postID int64) int64 {
	post, ok := r.dir.FetchPost(ctx, ownerID, postID)
	if !ok {
		return ownerID
	}

	// Candidate order is deliberate: explicit creator, explicit signer,
	// then the absolute actor/owner ids.
	candidates := []int64{
		post.CreatedBy,
		post.SignerID,
		abs(post.FromID),
		abs(post.OwnerID),
		abs(ownerID),
	}

	for _, id := range candidates {
		if id != 0 {
			r.logger.Debug("author candidate selected",
				zap.Int64("owner_id", ownerID),
				zap.Int64("post_id", postID),
				zap.Int64("author_id", id),
			)
			return id
		}
	}

	r.logger.Warn("could not determine post author",
		zap.Int64("owner_id", ownerID),
		zap.Int64("post_id", postID),
	)
	return ownerID
}

func abs(v int64) int64 {
	if v < 0 {
		return -v
	}
	return v
}
