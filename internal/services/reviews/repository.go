package reviews

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/podshelf/catalog-api/internal/models"
	catalogerrors "github.com/podshelf/catalog-api/pkg/errors"
)

type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) ReviewRepository {
	return &Repository{db: db}
}

// CreateReview persists a new review.
func (r *Repository) CreateReview(ctx context.Context, review *models.Review) error {
	if err := r.db.WithContext(ctx).Create(review).Error; err != nil {
		return fmt.Errorf("creating review: %w", err)
	}
	return nil
}

// GetReviewByID retrieves a review by identity.
func (r *Repository) GetReviewByID(ctx context.Context, id uint) (*models.Review, error) {
	var review models.Review
	if err := r.db.WithContext(ctx).First(&review, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, catalogerrors.Newf(catalogerrors.KindNotFound, "Review id: %d doesn't exist.", id)
		}
		return nil, fmt.Errorf("getting review: %w", err)
	}
	return &review, nil
}

// UpdateReviewDescription updates the description column only.
func (r *Repository) UpdateReviewDescription(ctx context.Context, id uint, description string) error {
	if err := r.db.WithContext(ctx).
		Model(&models.Review{}).
		Where("id = ?", id).
		Update("description", description).Error; err != nil {
		return fmt.Errorf("updating review: %w", err)
	}
	return nil
}

// DeleteReview hard-deletes a review by identity.
func (r *Repository) DeleteReview(ctx context.Context, id uint) error {
	if err := r.db.WithContext(ctx).Unscoped().Delete(&models.Review{}, id).Error; err != nil {
		return fmt.Errorf("deleting review: %w", err)
	}
	return nil
}
