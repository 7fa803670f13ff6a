package repository

import (
	"context"

	"portfolioapi/internal/model"
)

// PostRepository stores blog posts partitioned by language code.
// The language code is used verbatim; any string names its own partition.
type PostRepository interface {
	// Load returns every post of the partition in append order.
	// A missing partition is created with a single seeded post and that post is returned.
	Load(ctx context.Context, lang string) ([]model.BlogPost, error)

	// Save appends post to the end of the partition, creating the partition first if needed.
	// Ids are not checked for uniqueness.
	Save(ctx context.Context, post model.BlogPost, lang string) error
}
