package episodes

import (
	"context"

	"github.com/podshelf/catalog-api/internal/models"
	catalogerrors "github.com/podshelf/catalog-api/pkg/errors"
)

type Service struct {
	repository EpisodeRepository
	catalog    PodcastCatalog
}

func NewService(repository EpisodeRepository, catalog PodcastCatalog) EpisodeService {
	return &Service{
		repository: repository,
		catalog:    catalog,
	}
}

// ErrEpisodeNotFound builds the episode-scoped not-found error, distinct from
// the podcast one.
func ErrEpisodeNotFound(id uint) *catalogerrors.Error {
	return catalogerrors.Newf(catalogerrors.KindNotFound, "Episode id: %d does not exist.", id)
}

// List returns a podcast's episode collection, propagating the podcast's
// not-found error verbatim.
func (s *Service) List(ctx context.Context, podcastID uint) ([]models.Episode, error) {
	podcast, err := s.catalog.GetPodcast(ctx, podcastID, models.RelationEpisodes)
	if err != nil {
		return nil, catalogerrors.Ensure(err, "Fail to get episodes.")
	}
	if podcast.Episodes == nil {
		return []models.Episode{}, nil
	}
	return podcast.Episodes, nil
}

// Create confirms the podcast exists, then creates an episode with rating
// zero linked to it.
func (s *Service) Create(ctx context.Context, podcastID uint, input CreateEpisodeInput) (*models.Episode, error) {
	if _, err := s.catalog.GetPodcast(ctx, podcastID); err != nil {
		return nil, catalogerrors.Ensure(err, "Fail to create episode.")
	}

	episode := &models.Episode{
		Title:       input.Title,
		Description: input.Description,
		Rating:      0,
		PodcastID:   podcastID,
	}
	if err := s.repository.CreateEpisode(ctx, episode); err != nil {
		return nil, catalogerrors.Ensure(err, "Fail to create episode.")
	}
	return episode, nil
}

// Exists confirms the podcast exists and that the episode belongs to it. It
// is the prerequisite gate for Update and Delete.
func (s *Service) Exists(ctx context.Context, podcastID, episodeID uint) error {
	podcast, err := s.catalog.GetPodcast(ctx, podcastID, models.RelationEpisodes)
	if err != nil {
		return catalogerrors.Ensure(err, "Fail to find episode.")
	}
	for _, episode := range podcast.Episodes {
		if episode.ID == episodeID {
			return nil
		}
	}
	return ErrEpisodeNotFound(episodeID)
}

// Update partial-updates an episode by its own identity. The podcast id is
// only used for the existence gate, not as an update filter.
func (s *Service) Update(ctx context.Context, podcastID, episodeID uint, patch models.EpisodePatch) error {
	if err := s.Exists(ctx, podcastID, episodeID); err != nil {
		return err
	}
	if err := s.repository.UpdateEpisode(ctx, episodeID, patch); err != nil {
		return catalogerrors.Ensure(err, "Fail to update episode.")
	}
	return nil
}

// Delete removes an episode by identity after the existence gate passes.
func (s *Service) Delete(ctx context.Context, podcastID, episodeID uint) error {
	if err := s.Exists(ctx, podcastID, episodeID); err != nil {
		return err
	}
	if err := s.repository.DeleteEpisode(ctx, episodeID); err != nil {
		return catalogerrors.Ensure(err, "Fail to delete episode.")
	}
	return nil
}

// MarkPlayed records that the listener finished an episode. The episode is
// looked up directly by id, without podcast scoping.
func (s *Service) MarkPlayed(ctx context.Context, listenerID, episodeID uint) error {
	if err := s.repository.MarkPlayed(ctx, listenerID, episodeID); err != nil {
		return catalogerrors.Ensure(err, "Fail to mark episode as played.")
	}
	return nil
}
