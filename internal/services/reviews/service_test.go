package reviews

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/podshelf/catalog-api/internal/models"
	catalogerrors "github.com/podshelf/catalog-api/pkg/errors"
)

// MockReviewRepository is a mock implementation of ReviewRepository
type MockReviewRepository struct {
	mock.Mock
}

func (m *MockReviewRepository) CreateReview(ctx context.Context, review *models.Review) error {
	args := m.Called(ctx, review)
	return args.Error(0)
}

func (m *MockReviewRepository) GetReviewByID(ctx context.Context, id uint) (*models.Review, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Review), args.Error(1)
}

func (m *MockReviewRepository) UpdateReviewDescription(ctx context.Context, id uint, description string) error {
	args := m.Called(ctx, id, description)
	return args.Error(0)
}

func (m *MockReviewRepository) DeleteReview(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockPodcastCatalog is a mock implementation of PodcastCatalog
type MockPodcastCatalog struct {
	mock.Mock
}

func (m *MockPodcastCatalog) GetPodcast(ctx context.Context, id uint, relations ...string) (*models.Podcast, error) {
	args := m.Called(ctx, id, relations)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Podcast), args.Error(1)
}

// Tests

func TestService_List(t *testing.T) {
	mockCatalog := new(MockPodcastCatalog)
	service := NewService(nil, mockCatalog)

	podcast := &models.Podcast{
		Title: "Show",
		Reviews: []models.Review{
			{Description: "Great", WriterID: 1},
			{Description: "Meh", WriterID: 2},
		},
	}
	mockCatalog.On("GetPodcast", mock.Anything, uint(1), []string{models.RelationReviews}).
		Return(podcast, nil)

	reviews, err := service.List(context.Background(), 1)

	require.NoError(t, err)
	assert.Len(t, reviews, 2)
	mockCatalog.AssertExpectations(t)
}

func TestService_List_MissingPodcast(t *testing.T) {
	mockCatalog := new(MockPodcastCatalog)
	service := NewService(nil, mockCatalog)

	mockCatalog.On("GetPodcast", mock.Anything, uint(9), mock.Anything).
		Return(nil, catalogerrors.Newf(catalogerrors.KindNotFound, "Podcast id: %d doesn't exist.", 9))

	_, err := service.List(context.Background(), 9)

	require.Error(t, err)
	assert.Equal(t, "Podcast id: 9 doesn't exist.", catalogerrors.Message(err))
}

func TestService_Create(t *testing.T) {
	mockRepo := new(MockReviewRepository)
	mockCatalog := new(MockPodcastCatalog)
	service := NewService(mockRepo, mockCatalog)

	writer := &models.User{Role: models.RoleListener}
	writer.ID = 4

	mockCatalog.On("GetPodcast", mock.Anything, uint(2), []string(nil)).
		Return(&models.Podcast{Title: "Show"}, nil)
	mockRepo.On("CreateReview", mock.Anything, mock.MatchedBy(func(r *models.Review) bool {
		return r.Description == "Loved it" && r.WriterID == uint(4) && r.PodcastID == uint(2)
	})).Return(nil)

	review, err := service.Create(context.Background(), writer, 2, "Loved it")

	require.NoError(t, err)
	assert.Equal(t, "Loved it", review.Description)
	mockRepo.AssertExpectations(t)
}

func TestService_Create_MissingPodcast(t *testing.T) {
	mockRepo := new(MockReviewRepository)
	mockCatalog := new(MockPodcastCatalog)
	service := NewService(mockRepo, mockCatalog)

	writer := &models.User{}
	writer.ID = 4

	mockCatalog.On("GetPodcast", mock.Anything, uint(2), mock.Anything).
		Return(nil, catalogerrors.Newf(catalogerrors.KindNotFound, "Podcast id: %d doesn't exist.", 2))

	_, err := service.Create(context.Background(), writer, 2, "Loved it")

	require.Error(t, err)
	assert.True(t, catalogerrors.IsKind(err, catalogerrors.KindNotFound))
	mockRepo.AssertNotCalled(t, "CreateReview", mock.Anything, mock.Anything)
}

func TestService_Update_ByWriter(t *testing.T) {
	mockRepo := new(MockReviewRepository)
	service := NewService(mockRepo, nil)

	review := &models.Review{Description: "Old", WriterID: 4}
	review.ID = 9
	mockRepo.On("GetReviewByID", mock.Anything, uint(9)).Return(review, nil)
	mockRepo.On("UpdateReviewDescription", mock.Anything, uint(9), "New").Return(nil)

	require.NoError(t, service.Update(context.Background(), 4, 9, "New"))
	mockRepo.AssertExpectations(t)
}

func TestService_Update_NotTheWriter(t *testing.T) {
	mockRepo := new(MockReviewRepository)
	service := NewService(mockRepo, nil)

	review := &models.Review{Description: "Old", WriterID: 4}
	mockRepo.On("GetReviewByID", mock.Anything, uint(9)).Return(review, nil)

	err := service.Update(context.Background(), 77, 9, "New")

	require.Error(t, err)
	assert.True(t, catalogerrors.IsKind(err, catalogerrors.KindForbidden))
	assert.Equal(t, "This review is not yours.", catalogerrors.Message(err))
	mockRepo.AssertNotCalled(t, "UpdateReviewDescription", mock.Anything, mock.Anything, mock.Anything)
}

func TestService_Update_MissingReview(t *testing.T) {
	mockRepo := new(MockReviewRepository)
	service := NewService(mockRepo, nil)

	mockRepo.On("GetReviewByID", mock.Anything, uint(9)).
		Return(nil, catalogerrors.Newf(catalogerrors.KindNotFound, "Review id: %d doesn't exist.", 9))

	err := service.Update(context.Background(), 4, 9, "New")

	require.Error(t, err)
	assert.Equal(t, "Review id: 9 doesn't exist.", catalogerrors.Message(err))
}

func TestService_Delete_NotTheWriter(t *testing.T) {
	mockRepo := new(MockReviewRepository)
	service := NewService(mockRepo, nil)

	review := &models.Review{Description: "Old", WriterID: 4}
	mockRepo.On("GetReviewByID", mock.Anything, uint(9)).Return(review, nil)

	err := service.Delete(context.Background(), 77, 9)

	require.Error(t, err)
	assert.True(t, catalogerrors.IsKind(err, catalogerrors.KindForbidden))
	mockRepo.AssertNotCalled(t, "DeleteReview", mock.Anything, mock.Anything)
}

func TestService_Delete_ByWriter(t *testing.T) {
	mockRepo := new(MockReviewRepository)
	service := NewService(mockRepo, nil)

	review := &models.Review{Description: "Old", WriterID: 4}
	review.ID = 9
	mockRepo.On("GetReviewByID", mock.Anything, uint(9)).Return(review, nil)
	mockRepo.On("DeleteReview", mock.Anything, uint(9)).Return(nil)

	require.NoError(t, service.Delete(context.Background(), 4, 9))
	mockRepo.AssertExpectations(t)
}
