package podcasts

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/podshelf/catalog-api/internal/models"
	catalogerrors "github.com/podshelf/catalog-api/pkg/errors"
	"github.com/podshelf/catalog-api/pkg/pagination"
)

type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) PodcastRepository {
	return &Repository{db: db}
}

// ErrPodcastNotFound builds the contract not-found error for a podcast id.
// Every lookup path funnels through this message.
func ErrPodcastNotFound(id uint) *catalogerrors.Error {
	return catalogerrors.Newf(catalogerrors.KindNotFound, "Podcast id: %d doesn't exist.", id)
}

// CreatePodcast persists a new podcast.
func (r *Repository) CreatePodcast(ctx context.Context, podcast *models.Podcast) error {
	if err := r.db.WithContext(ctx).Create(podcast).Error; err != nil {
		return fmt.Errorf("creating podcast: %w", err)
	}
	return nil
}

// GetPodcastByID retrieves a podcast with the named relations hydrated.
func (r *Repository) GetPodcastByID(ctx context.Context, id uint, relations ...string) (*models.Podcast, error) {
	query := r.db.WithContext(ctx)
	for _, relation := range relations {
		query = query.Preload(relation)
	}

	var podcast models.Podcast
	if err := query.First(&podcast, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPodcastNotFound(id)
		}
		return nil, fmt.Errorf("getting podcast: %w", err)
	}
	return &podcast, nil
}

// ListPodcasts returns one page of all podcasts with the host hydrated.
func (r *Repository) ListPodcasts(ctx context.Context, page pagination.Request) ([]models.Podcast, int64, error) {
	var podcasts []models.Podcast
	var total int64

	query := r.db.WithContext(ctx).Model(&models.Podcast{})
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("counting podcasts: %w", err)
	}

	if err := query.
		Preload(models.RelationHost).
		Limit(page.Limit()).
		Offset(page.Offset()).
		Find(&podcasts).Error; err != nil {
		return nil, 0, fmt.Errorf("listing podcasts: %w", err)
	}

	return podcasts, total, nil
}

// ListPodcastsByHost returns one page of a single host's podcasts. Only the
// host id column is carried, not the full host row.
func (r *Repository) ListPodcastsByHost(ctx context.Context, hostID uint, page pagination.Request) ([]models.Podcast, int64, error) {
	var podcasts []models.Podcast
	var total int64

	query := r.db.WithContext(ctx).Model(&models.Podcast{}).Where("host_id = ?", hostID)
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("counting host podcasts: %w", err)
	}

	if err := query.
		Limit(page.Limit()).
		Offset(page.Offset()).
		Find(&podcasts).Error; err != nil {
		return nil, 0, fmt.Errorf("listing host podcasts: %w", err)
	}

	return podcasts, total, nil
}

// ListPodcastsByHashTags returns one page of podcasts tagged with any of the
// named tags.
func (r *Repository) ListPodcastsByHashTags(ctx context.Context, tagNames []string, page pagination.Request) ([]models.Podcast, int64, error) {
	var podcasts []models.Podcast
	var total int64

	tagged := r.db.Table("podcast_hash_tags").
		Select("podcast_hash_tags.podcast_id").
		Joins("JOIN hash_tags ON hash_tags.id = podcast_hash_tags.hash_tag_id").
		Where("hash_tags.name IN ?", tagNames)

	query := r.db.WithContext(ctx).Model(&models.Podcast{}).Where("id IN (?)", tagged)
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("counting tagged podcasts: %w", err)
	}

	if err := query.
		Preload(models.RelationHost).
		Limit(page.Limit()).
		Offset(page.Offset()).
		Find(&podcasts).Error; err != nil {
		return nil, 0, fmt.Errorf("listing tagged podcasts: %w", err)
	}

	return podcasts, total, nil
}

// SearchPodcastsByTitle returns one page of podcasts whose title contains the
// query, case-insensitively. An empty query matches every row.
func (r *Repository) SearchPodcastsByTitle(ctx context.Context, query string, page pagination.Request) ([]models.Podcast, int64, error) {
	var podcasts []models.Podcast
	var total int64

	pattern := "%" + strings.ToLower(query) + "%"

	tx := r.db.WithContext(ctx).Model(&models.Podcast{}).Where("LOWER(title) LIKE ?", pattern)
	if err := tx.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("counting matching podcasts: %w", err)
	}

	if err := tx.
		Limit(page.Limit()).
		Offset(page.Offset()).
		Find(&podcasts).Error; err != nil {
		return nil, 0, fmt.Errorf("searching podcasts: %w", err)
	}

	return podcasts, total, nil
}

// UpdatePodcast applies a partial column update. Relation collections are
// never touched here.
func (r *Repository) UpdatePodcast(ctx context.Context, id uint, patch models.PodcastPatch) error {
	updates := patch.Updates()
	if len(updates) == 0 {
		return nil
	}
	if err := r.db.WithContext(ctx).
		Model(&models.Podcast{}).
		Where("id = ?", id).
		Updates(updates).Error; err != nil {
		return fmt.Errorf("updating podcast: %w", err)
	}
	return nil
}

// DeletePodcast hard-deletes a podcast and explicitly cascades to its
// episodes, reviews, and join rows inside a single transaction.
func (r *Repository) DeletePodcast(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// Played-episode rows reference episodes about to go away.
		if err := tx.Exec(
			"DELETE FROM user_played_episodes WHERE episode_id IN (SELECT id FROM episodes WHERE podcast_id = ?)",
			id).Error; err != nil {
			return fmt.Errorf("clearing played episodes: %w", err)
		}
		if err := tx.Unscoped().Where("podcast_id = ?", id).Delete(&models.Episode{}).Error; err != nil {
			return fmt.Errorf("deleting episodes: %w", err)
		}
		if err := tx.Unscoped().Where("podcast_id = ?", id).Delete(&models.Review{}).Error; err != nil {
			return fmt.Errorf("deleting reviews: %w", err)
		}
		if err := tx.Exec("DELETE FROM user_subscriptions WHERE podcast_id = ?", id).Error; err != nil {
			return fmt.Errorf("clearing subscriptions: %w", err)
		}
		if err := tx.Exec("DELETE FROM podcast_hash_tags WHERE podcast_id = ?", id).Error; err != nil {
			return fmt.Errorf("clearing hashtag links: %w", err)
		}
		if err := tx.Unscoped().Delete(&models.Podcast{}, id).Error; err != nil {
			return fmt.Errorf("deleting podcast: %w", err)
		}
		return nil
	})
}

// ToggleSubscription flips a listener's subscription to a podcast. The
// subscription set is read and written inside one transaction so two
// concurrent toggles cannot both act on the same stale set.
func (r *Repository) ToggleSubscription(ctx context.Context, subscriberID, podcastID uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var subscriber models.User
		if err := tx.Preload(models.RelationSubscriptions).First(&subscriber, subscriberID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return catalogerrors.New(catalogerrors.KindNotFound, "Couldn't find a user.")
			}
			return fmt.Errorf("loading subscriber: %w", err)
		}

		for _, subscription := range subscriber.Subscriptions {
			if subscription.ID == podcastID {
				if err := tx.Model(&subscriber).
					Association(models.RelationSubscriptions).
					Delete(&models.Podcast{Model: gorm.Model{ID: podcastID}}); err != nil {
					return fmt.Errorf("removing subscription: %w", err)
				}
				return nil
			}
		}

		var podcast models.Podcast
		if err := tx.First(&podcast, podcastID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrPodcastNotFound(podcastID)
			}
			return fmt.Errorf("getting podcast: %w", err)
		}

		// The join table's composite key keeps this a set even if two appends
		// race past the containment check.
		if err := tx.Model(&subscriber).
			Association(models.RelationSubscriptions).
			Append(&podcast); err != nil {
			return fmt.Errorf("adding subscription: %w", err)
		}
		return nil
	})
}
