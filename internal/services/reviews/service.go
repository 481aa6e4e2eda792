package reviews

import (
	"context"

	"github.com/podshelf/catalog-api/internal/models"
	catalogerrors "github.com/podshelf/catalog-api/pkg/errors"
)

type Service struct {
	repository ReviewRepository
	catalog    PodcastCatalog
}

func NewService(repository ReviewRepository, catalog PodcastCatalog) ReviewService {
	return &Service{
		repository: repository,
		catalog:    catalog,
	}
}

// List returns a podcast's review collection, propagating the podcast's
// not-found error verbatim.
func (s *Service) List(ctx context.Context, podcastID uint) ([]models.Review, error) {
	podcast, err := s.catalog.GetPodcast(ctx, podcastID, models.RelationReviews)
	if err != nil {
		return nil, catalogerrors.Ensure(err, "Fail to get reviews.")
	}
	if podcast.Reviews == nil {
		return []models.Review{}, nil
	}
	return podcast.Reviews, nil
}

// Create confirms the podcast exists, then links a new review to the writer
// and podcast.
func (s *Service) Create(ctx context.Context, writer *models.User, podcastID uint, description string) (*models.Review, error) {
	if _, err := s.catalog.GetPodcast(ctx, podcastID); err != nil {
		return nil, catalogerrors.Ensure(err, "Fail to create podcast review.")
	}

	review := &models.Review{
		Description: description,
		WriterID:    writer.ID,
		PodcastID:   podcastID,
	}
	if err := s.repository.CreateReview(ctx, review); err != nil {
		return nil, catalogerrors.Ensure(err, "Fail to create podcast review.")
	}
	return review, nil
}

// Update changes a review's description. Only the writer may do it.
func (s *Service) Update(ctx context.Context, writerID, reviewID uint, description string) error {
	if err := s.mustBeWriter(ctx, writerID, reviewID); err != nil {
		return err
	}
	if err := s.repository.UpdateReviewDescription(ctx, reviewID, description); err != nil {
		return catalogerrors.Ensure(err, "Fail to update review.")
	}
	return nil
}

// Delete removes a review. Only the writer may do it.
func (s *Service) Delete(ctx context.Context, writerID, reviewID uint) error {
	if err := s.mustBeWriter(ctx, writerID, reviewID); err != nil {
		return err
	}
	if err := s.repository.DeleteReview(ctx, reviewID); err != nil {
		return catalogerrors.Ensure(err, "Fail to delete review.")
	}
	return nil
}

// mustBeWriter loads the review and rejects callers who didn't write it with
// an ownership error, distinct from not-found.
func (s *Service) mustBeWriter(ctx context.Context, writerID, reviewID uint) error {
	review, err := s.repository.GetReviewByID(ctx, reviewID)
	if err != nil {
		return catalogerrors.Ensure(err, "Fail to find review.")
	}
	if review.WriterID != writerID {
		return catalogerrors.New(catalogerrors.KindForbidden, "This review is not yours.")
	}
	return nil
}
