package hashtags

import (
	"context"

	"github.com/podshelf/catalog-api/internal/models"
	"github.com/podshelf/catalog-api/pkg/pagination"
)

// HashTagRepository defines the data access interface for hashtags.
type HashTagRepository interface {
	ListHashTags(ctx context.Context, page pagination.Request) ([]models.HashTag, int64, error)
	GetHashTagByName(ctx context.Context, name string) (*models.HashTag, error)
	CreateHashTag(ctx context.Context, tag *models.HashTag) error
}

// HashTagService defines the business logic interface for tag operations.
type HashTagService interface {
	ListAll(ctx context.Context, page int) (*HashTagList, error)
	// Resolve maps tag names to persisted tags with create-or-reuse
	// semantics, deriving a URL-safe slug for new ones.
	Resolve(ctx context.Context, names []string) ([]models.HashTag, error)
}

// HashTagList is a successful page of hashtags with their podcasts hydrated.
type HashTagList struct {
	HashTags   []models.HashTag `json:"hash_tags"`
	TotalCount int64            `json:"total_count"`
	TotalPages int              `json:"total_pages"`
}
