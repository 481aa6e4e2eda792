package hashtags

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/podshelf/catalog-api/internal/models"
	catalogerrors "github.com/podshelf/catalog-api/pkg/errors"
	"github.com/podshelf/catalog-api/pkg/pagination"
)

type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) HashTagRepository {
	return &Repository{db: db}
}

// ListHashTags returns one page of tags with their podcast collections
// hydrated.
func (r *Repository) ListHashTags(ctx context.Context, page pagination.Request) ([]models.HashTag, int64, error) {
	var tags []models.HashTag
	var total int64

	query := r.db.WithContext(ctx).Model(&models.HashTag{})
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("counting hashtags: %w", err)
	}

	if err := query.
		Preload(models.RelationPodcasts).
		Limit(page.Limit()).
		Offset(page.Offset()).
		Find(&tags).Error; err != nil {
		return nil, 0, fmt.Errorf("listing hashtags: %w", err)
	}

	return tags, total, nil
}

// GetHashTagByName retrieves a tag by its exact name.
func (r *Repository) GetHashTagByName(ctx context.Context, name string) (*models.HashTag, error) {
	var tag models.HashTag
	if err := r.db.WithContext(ctx).Where("name = ?", name).First(&tag).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, catalogerrors.Newf(catalogerrors.KindNotFound, "HashTag %q doesn't exist.", name)
		}
		return nil, fmt.Errorf("getting hashtag: %w", err)
	}
	return &tag, nil
}

// CreateHashTag persists a new tag.
func (r *Repository) CreateHashTag(ctx context.Context, tag *models.HashTag) error {
	if err := r.db.WithContext(ctx).Create(tag).Error; err != nil {
		return fmt.Errorf("creating hashtag: %w", err)
	}
	return nil
}
