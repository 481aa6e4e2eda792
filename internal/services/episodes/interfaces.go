package episodes

import (
	"context"

	"github.com/podshelf/catalog-api/internal/models"
)

// EpisodeRepository defines the data access interface for episodes.
type EpisodeRepository interface {
	CreateEpisode(ctx context.Context, episode *models.Episode) error
	GetEpisodeByID(ctx context.Context, id uint) (*models.Episode, error)
	UpdateEpisode(ctx context.Context, id uint, patch models.EpisodePatch) error
	DeleteEpisode(ctx context.Context, id uint) error

	// MarkPlayed appends the episode to the listener's played set inside one
	// transaction. Repeated calls leave exactly one row.
	MarkPlayed(ctx context.Context, listenerID, episodeID uint) error
}

// PodcastCatalog is the slice of the podcast service episodes depend on: the
// single point of truth for podcast existence and relation hydration.
type PodcastCatalog interface {
	GetPodcast(ctx context.Context, id uint, relations ...string) (*models.Podcast, error)
}

// EpisodeService defines the business logic interface for episode operations,
// all scoped to a parent podcast except the direct played-episode lookup.
type EpisodeService interface {
	List(ctx context.Context, podcastID uint) ([]models.Episode, error)
	Create(ctx context.Context, podcastID uint, input CreateEpisodeInput) (*models.Episode, error)
	Exists(ctx context.Context, podcastID, episodeID uint) error
	Update(ctx context.Context, podcastID, episodeID uint, patch models.EpisodePatch) error
	Delete(ctx context.Context, podcastID, episodeID uint) error
	MarkPlayed(ctx context.Context, listenerID, episodeID uint) error
}

// CreateEpisodeInput carries the fields a host supplies for a new episode.
type CreateEpisodeInput struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
}
