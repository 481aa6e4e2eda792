package episodes

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

func NewRepository(db *gorm.DB) EpisodeRepository {
	return &Repository{db: db}
}

// CreateEpisode persists a new episode.
func (r *Repository) CreateEpisode(ctx context.Context, episode *models.Episode) error {
	if err := r.db.WithContext(ctx).Create(episode).Error; err != nil {
		return fmt.Errorf("creating episode: %w", err)
	}
	return nil
}

// GetEpisodeByID retrieves an episode without podcast scoping. Used by the
// played-episode path, so the not-found message is deliberately generic.
func (r *Repository) GetEpisodeByID(ctx context.Context, id uint) (*models.Episode, error) {
	var episode models.Episode
	if err := r.db.WithContext(ctx).First(&episode, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, catalogerrors.New(catalogerrors.KindNotFound, "Couldn't find episode.")
		}
		return nil, fmt.Errorf("getting episode: %w", err)
	}
	return &episode, nil
}

// UpdateEpisode applies a partial column update keyed by episode identity.
func (r *Repository) UpdateEpisode(ctx context.Context, id uint, patch models.EpisodePatch) error {
	updates := patch.Updates()
	if len(updates) == 0 {
		return nil
	}
	if err := r.db.WithContext(ctx).
		Model(&models.Episode{}).
		Where("id = ?", id).
		Updates(updates).Error; err != nil {
		return fmt.Errorf("updating episode: %w", err)
	}
	return nil
}

// DeleteEpisode hard-deletes an episode and its played-set rows.
func (r *Repository) DeleteEpisode(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec("DELETE FROM user_played_episodes WHERE episode_id = ?", id).Error; err != nil {
			return fmt.Errorf("clearing played rows: %w", err)
		}
		if err := tx.Unscoped().Delete(&models.Episode{}, id).Error; err != nil {
			return fmt.Errorf("deleting episode: %w", err)
		}
		return nil
	})
}

// MarkPlayed adds the episode to the listener's played set. The set is read
// and written inside one transaction, and the containment check plus the join
// table's composite key keep repeated calls from producing duplicates.
func (r *Repository) MarkPlayed(ctx context.Context, listenerID, episodeID uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var episode models.Episode
		if err := tx.First(&episode, episodeID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return catalogerrors.New(catalogerrors.KindNotFound, "Couldn't find episode.")
			}
			return fmt.Errorf("getting episode: %w", err)
		}

		var listener models.User
		if err := tx.First(&listener, listenerID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return catalogerrors.New(catalogerrors.KindNotFound, "Couldn't find a user.")
			}
			return fmt.Errorf("loading listener: %w", err)
		}

		var already int64
		if err := tx.Table("user_played_episodes").
			Where("user_id = ? AND episode_id = ?", listenerID, episodeID).
			Count(&already).Error; err != nil {
			return fmt.Errorf("checking played set: %w", err)
		}
		if already > 0 {
			return nil
		}

		if err := tx.Model(&listener).
			Association(models.RelationPlayedEpisodes).
			Append(&episode); err != nil {
			return fmt.Errorf("appending played episode: %w", err)
		}
		return nil
	})
}
