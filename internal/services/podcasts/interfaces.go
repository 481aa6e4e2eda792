package podcasts

import (
	"context"

	"github.com/podshelf/catalog-api/internal/models"
	"github.com/podshelf/catalog-api/pkg/pagination"
)

// PodcastRepository defines the data access interface for podcasts.
// Relation hydration is selective: callers name exactly the relations they
// need loaded.
type PodcastRepository interface {
	CreatePodcast(ctx context.Context, podcast *models.Podcast) error
	GetPodcastByID(ctx context.Context, id uint, relations ...string) (*models.Podcast, error)

	ListPodcasts(ctx context.Context, page pagination.Request) ([]models.Podcast, int64, error)
	ListPodcastsByHost(ctx context.Context, hostID uint, page pagination.Request) ([]models.Podcast, int64, error)
	ListPodcastsByHashTags(ctx context.Context, tagNames []string, page pagination.Request) ([]models.Podcast, int64, error)
	SearchPodcastsByTitle(ctx context.Context, query string, page pagination.Request) ([]models.Podcast, int64, error)

	UpdatePodcast(ctx context.Context, id uint, patch models.PodcastPatch) error
	DeletePodcast(ctx context.Context, id uint) error

	// ToggleSubscription runs the whole read-modify-write in one transaction:
	// removes the podcast from the subscriber's set if present, otherwise
	// confirms the podcast exists and appends it.
	ToggleSubscription(ctx context.Context, subscriberID, podcastID uint) error
}

// TagResolver resolves hashtag names to persisted tags, creating missing
// ones. Implemented by the hashtags service.
type TagResolver interface {
	Resolve(ctx context.Context, names []string) ([]models.HashTag, error)
}

// PodcastService defines the business logic interface for catalog podcast
// operations.
type PodcastService interface {
	ListAll(ctx context.Context, page int) (*PodcastList, error)
	Search(ctx context.Context, query string, page int) (*PodcastList, error)
	ListByHost(ctx context.Context, hostID uint, page int) (*PodcastList, error)
	ListByHashTags(ctx context.Context, tagNames []string, page int) (*PodcastList, error)

	GetPodcast(ctx context.Context, id uint, relations ...string) (*models.Podcast, error)
	GetForHost(ctx context.Context, authUserID, podcastID uint) (*models.Podcast, error)
	GetForListener(ctx context.Context, podcastID uint) (*models.Podcast, error)

	Create(ctx context.Context, host *models.User, input CreatePodcastInput) (*models.Podcast, error)
	Update(ctx context.Context, podcastID uint, patch models.PodcastPatch) error
	Delete(ctx context.Context, podcastID uint) error
	ToggleSubscription(ctx context.Context, subscriberID, podcastID uint) error
}

// CreatePodcastInput carries the fields a host supplies for a new podcast.
type CreatePodcastInput struct {
	Title        string   `json:"title" binding:"required"`
	Description  string   `json:"description" binding:"required"`
	CoverImage   string   `json:"cover_image"`
	HashTagNames []string `json:"hash_tag_names"`
}

// PodcastList is a successful page of podcasts.
type PodcastList struct {
	Podcasts   []models.Podcast `json:"podcasts"`
	TotalCount int64            `json:"total_count"`
	TotalPages int              `json:"total_pages"`
}
