package episodes

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

func seedEpisode(t *testing.T, db *gorm.DB) (*models.User, *models.Episode) {
	t.Helper()

	host := &models.User{Email: "host@example.com", PasswordHash: "x", Role: models.RoleHost}
	require.NoError(t, db.Create(host).Error)
	listener := &models.User{Email: "listener@example.com", PasswordHash: "x", Role: models.RoleListener}
	require.NoError(t, db.Create(listener).Error)

	podcast := &models.Podcast{Title: "Show", HostID: host.ID}
	require.NoError(t, db.Create(podcast).Error)
	episode := &models.Episode{Title: "Pilot", PodcastID: podcast.ID}
	require.NoError(t, db.Create(episode).Error)

	return listener, episode
}

func TestRepository_MarkPlayed_NoDuplicates(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRepository(db)
	listener, episode := seedEpisode(t, db)

	// Mark the same episode played twice.
	require.NoError(t, repo.MarkPlayed(context.Background(), listener.ID, episode.ID))
	require.NoError(t, repo.MarkPlayed(context.Background(), listener.ID, episode.ID))

	var count int64
	require.NoError(t, db.Table("user_played_episodes").
		Where("user_id = ? AND episode_id = ?", listener.ID, episode.ID).
		Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestRepository_MarkPlayed_MissingEpisode(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRepository(db)
	listener, _ := seedEpisode(t, db)

	err := repo.MarkPlayed(context.Background(), listener.ID, 999)

	require.Error(t, err)
	assert.True(t, catalogerrors.IsKind(err, catalogerrors.KindNotFound))
	assert.Equal(t, "Couldn't find episode.", catalogerrors.Message(err))
}

func TestRepository_MarkPlayed_MissingListener(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRepository(db)
	_, episode := seedEpisode(t, db)

	err := repo.MarkPlayed(context.Background(), 999, episode.ID)

	require.Error(t, err)
	assert.Equal(t, "Couldn't find a user.", catalogerrors.Message(err))
}

func TestRepository_DeleteEpisode_ClearsPlayedRows(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRepository(db)
	listener, episode := seedEpisode(t, db)

	require.NoError(t, repo.MarkPlayed(context.Background(), listener.ID, episode.ID))
	require.NoError(t, repo.DeleteEpisode(context.Background(), episode.ID))

	var playedCount int64
	require.NoError(t, db.Table("user_played_episodes").
		Where("episode_id = ?", episode.ID).
		Count(&playedCount).Error)
	assert.Zero(t, playedCount)

	_, err := repo.GetEpisodeByID(context.Background(), episode.ID)
	require.Error(t, err)
	assert.True(t, catalogerrors.IsKind(err, catalogerrors.KindNotFound))
}

func TestRepository_UpdateEpisode_PartialPatch(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRepository(db)
	_, episode := seedEpisode(t, db)

	title := "Renamed"
	require.NoError(t, repo.UpdateEpisode(context.Background(), episode.ID, models.EpisodePatch{Title: &title}))

	updated, err := repo.GetEpisodeByID(context.Background(), episode.ID)
	require.NoError(t, err)
	assert.Equal(t, "Renamed", updated.Title)
	// Untouched field survives.
	assert.Equal(t, episode.Description, updated.Description)
}
