package users

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/podshelf/catalog-api/internal/database"
	"github.com/podshelf/catalog-api/internal/models"
	catalogerrors "github.com/podshelf/catalog-api/pkg/errors"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := database.Initialize(":memory:", false)
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(models.All()...))

	t.Cleanup(func() {
		_ = db.Close()
	})
	return db.DB
}

func TestRepository_CreateUser_DuplicateEmail(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRepository(db)

	first := &models.User{Email: "dup@example.com", PasswordHash: "x", Role: models.RoleListener}
	require.NoError(t, repo.CreateUser(context.Background(), first))

	second := &models.User{Email: "dup@example.com", PasswordHash: "y", Role: models.RoleHost}
	err := repo.CreateUser(context.Background(), second)

	require.Error(t, err)
	assert.True(t, catalogerrors.IsKind(err, catalogerrors.KindConflict))
	assert.Equal(t, "User email: dup@example.com already exists.", catalogerrors.Message(err))
}

func TestRepository_GetUserByID_NotFound(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRepository(db)

	_, err := repo.GetUserByID(context.Background(), 404)

	require.Error(t, err)
	assert.Equal(t, "Couldn't find a user.", catalogerrors.Message(err))
}

func TestRepository_DeleteUser_CascadesHostedContent(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRepository(db)

	host := &models.User{Email: "host@example.com", PasswordHash: "x", Role: models.RoleHost}
	require.NoError(t, db.Create(host).Error)
	listener := &models.User{Email: "listener@example.com", PasswordHash: "x", Role: models.RoleListener}
	require.NoError(t, db.Create(listener).Error)

	tech := models.HashTag{Name: "tech", Slug: "tech"}
	require.NoError(t, db.Create(&tech).Error)

	podcast := models.Podcast{
		Title:  "Hosted",
		HostID: host.ID,
		Episodes: []models.Episode{
			{Title: "Ep 1"},
		},
		Reviews: []models.Review{
			{Description: "By listener", WriterID: listener.ID},
		},
		HashTags: []models.HashTag{tech},
	}
	require.NoError(t, db.Create(&podcast).Error)

	// The listener subscribes to and plays the hosted content.
	require.NoError(t, db.Exec(
		"INSERT INTO user_subscriptions (user_id, podcast_id) VALUES (?, ?)",
		listener.ID, podcast.ID).Error)
	require.NoError(t, db.Exec(
		"INSERT INTO user_played_episodes (user_id, episode_id) VALUES (?, ?)",
		listener.ID, podcast.Episodes[0].ID).Error)

	require.NoError(t, repo.DeleteUser(context.Background(), host.ID))

	// Count past the soft-delete scope so tombstoned rows would be caught.
	var podcastCount, episodeCount, reviewCount, subCount, playedCount, tagLinkCount int64
	require.NoError(t, db.Unscoped().Model(&models.Podcast{}).Count(&podcastCount).Error)
	require.NoError(t, db.Unscoped().Model(&models.Episode{}).Count(&episodeCount).Error)
	require.NoError(t, db.Unscoped().Model(&models.Review{}).Count(&reviewCount).Error)
	require.NoError(t, db.Table("user_subscriptions").Count(&subCount).Error)
	require.NoError(t, db.Table("user_played_episodes").Count(&playedCount).Error)
	require.NoError(t, db.Table("podcast_hash_tags").Count(&tagLinkCount).Error)

	assert.Zero(t, podcastCount)
	assert.Zero(t, episodeCount)
	assert.Zero(t, reviewCount)
	assert.Zero(t, subCount)
	assert.Zero(t, playedCount)
	assert.Zero(t, tagLinkCount)

	// The listener account itself survives.
	_, err := repo.GetUserByID(context.Background(), listener.ID)
	assert.NoError(t, err)

	_, err = repo.GetUserByID(context.Background(), host.ID)
	require.Error(t, err)
	assert.True(t, catalogerrors.IsKind(err, catalogerrors.KindNotFound))
}

func TestRepository_DeleteUser_CascadesAuthoredReviews(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRepository(db)

	host := &models.User{Email: "host@example.com", PasswordHash: "x", Role: models.RoleHost}
	require.NoError(t, db.Create(host).Error)
	writer := &models.User{Email: "writer@example.com", PasswordHash: "x", Role: models.RoleListener}
	require.NoError(t, db.Create(writer).Error)

	podcast := models.Podcast{Title: "Kept", HostID: host.ID}
	require.NoError(t, db.Create(&podcast).Error)
	review := models.Review{Description: "Gone soon", WriterID: writer.ID, PodcastID: podcast.ID}
	require.NoError(t, db.Create(&review).Error)

	require.NoError(t, repo.DeleteUser(context.Background(), writer.ID))

	var reviewCount, podcastCount int64
	require.NoError(t, db.Unscoped().Model(&models.Review{}).Count(&reviewCount).Error)
	require.NoError(t, db.Unscoped().Model(&models.Podcast{}).Count(&podcastCount).Error)

	assert.Zero(t, reviewCount)
	// The reviewed podcast is untouched.
	assert.Equal(t, int64(1), podcastCount)
}
