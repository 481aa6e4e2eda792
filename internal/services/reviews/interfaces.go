package reviews

import (
	"context"

	"github.com/podshelf/catalog-api/internal/models"
)

// ReviewRepository defines the data access interface for reviews.
type ReviewRepository interface {
	CreateReview(ctx context.Context, review *models.Review) error
	GetReviewByID(ctx context.Context, id uint) (*models.Review, error)
	UpdateReviewDescription(ctx context.Context, id uint, description string) error
	DeleteReview(ctx context.Context, id uint) error
}

// PodcastCatalog is the slice of the podcast service reviews depend on.
type PodcastCatalog interface {
	GetPodcast(ctx context.Context, id uint, relations ...string) (*models.Podcast, error)
}

// ReviewService defines the business logic interface for review operations.
// Update and Delete enforce that the caller actually wrote the review.
type ReviewService interface {
	List(ctx context.Context, podcastID uint) ([]models.Review, error)
	Create(ctx context.Context, writer *models.User, podcastID uint, description string) (*models.Review, error)
	Update(ctx context.Context, writerID, reviewID uint, description string) error
	Delete(ctx context.Context, writerID, reviewID uint) error
}
