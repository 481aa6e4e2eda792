package users

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

func NewRepository(db *gorm.DB) UserRepository {
	return &Repository{db: db}
}

// ErrUserNotFound is the shared account not-found error.
func ErrUserNotFound() *catalogerrors.Error {
	return catalogerrors.New(catalogerrors.KindNotFound, "Couldn't find a user.")
}

// CreateUser persists a new account.
func (r *Repository) CreateUser(ctx context.Context, user *models.User) error {
	if err := r.db.WithContext(ctx).Create(user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return catalogerrors.Newf(catalogerrors.KindConflict,
				"User email: %s already exists.", user.Email)
		}
		return fmt.Errorf("creating user: %w", err)
	}
	return nil
}

// GetUserByID retrieves an account with the named relations hydrated.
func (r *Repository) GetUserByID(ctx context.Context, id uint, relations ...string) (*models.User, error) {
	query := r.db.WithContext(ctx)
	for _, relation := range relations {
		query = query.Preload(relation)
	}

	var user models.User
	if err := query.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound()
		}
		return nil, fmt.Errorf("getting user: %w", err)
	}
	return &user, nil
}

// GetUserByEmail retrieves an account by email, digest included.
func (r *Repository) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound()
		}
		return nil, fmt.Errorf("getting user by email: %w", err)
	}
	return &user, nil
}

// UpdateUser applies a partial column update.
func (r *Repository) UpdateUser(ctx context.Context, id uint, updates map[string]any) error {
	if len(updates) == 0 {
		return nil
	}
	if err := r.db.WithContext(ctx).
		Model(&models.User{}).
		Where("id = ?", id).
		Updates(updates).Error; err != nil {
		return fmt.Errorf("updating user: %w", err)
	}
	return nil
}

// DeleteUser removes the account and explicitly cascades: every hosted
// podcast goes with its episodes, reviews, and join rows, then the user's own
// reviews and set memberships, all inside one transaction.
func (r *Repository) DeleteUser(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var hostedIDs []uint
		if err := tx.Model(&models.Podcast{}).
			Where("host_id = ?", id).
			Pluck("id", &hostedIDs).Error; err != nil {
			return fmt.Errorf("listing hosted podcasts: %w", err)
		}

		if len(hostedIDs) > 0 {
			if err := tx.Exec(
				"DELETE FROM user_played_episodes WHERE episode_id IN (SELECT id FROM episodes WHERE podcast_id IN ?)",
				hostedIDs).Error; err != nil {
				return fmt.Errorf("clearing played episodes: %w", err)
			}
			if err := tx.Unscoped().Where("podcast_id IN ?", hostedIDs).Delete(&models.Episode{}).Error; err != nil {
				return fmt.Errorf("deleting hosted episodes: %w", err)
			}
			if err := tx.Unscoped().Where("podcast_id IN ?", hostedIDs).Delete(&models.Review{}).Error; err != nil {
				return fmt.Errorf("deleting hosted reviews: %w", err)
			}
			if err := tx.Exec("DELETE FROM user_subscriptions WHERE podcast_id IN ?", hostedIDs).Error; err != nil {
				return fmt.Errorf("clearing podcast subscriptions: %w", err)
			}
			if err := tx.Exec("DELETE FROM podcast_hash_tags WHERE podcast_id IN ?", hostedIDs).Error; err != nil {
				return fmt.Errorf("clearing hashtag links: %w", err)
			}
			if err := tx.Unscoped().Where("host_id = ?", id).Delete(&models.Podcast{}).Error; err != nil {
				return fmt.Errorf("deleting hosted podcasts: %w", err)
			}
		}

		if err := tx.Unscoped().Where("writer_id = ?", id).Delete(&models.Review{}).Error; err != nil {
			return fmt.Errorf("deleting authored reviews: %w", err)
		}
		if err := tx.Exec("DELETE FROM user_subscriptions WHERE user_id = ?", id).Error; err != nil {
			return fmt.Errorf("clearing subscriptions: %w", err)
		}
		if err := tx.Exec("DELETE FROM user_played_episodes WHERE user_id = ?", id).Error; err != nil {
			return fmt.Errorf("clearing played set: %w", err)
		}
		if err := tx.Unscoped().Delete(&models.User{}, id).Error; err != nil {
			return fmt.Errorf("deleting user: %w", err)
		}
		return nil
	})
}
