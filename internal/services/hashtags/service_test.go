package hashtags

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/podshelf/catalog-api/internal/models"
	catalogerrors "github.com/podshelf/catalog-api/pkg/errors"
	"github.com/podshelf/catalog-api/pkg/pagination"
)

// MockHashTagRepository is a mock implementation of HashTagRepository
type MockHashTagRepository struct {
	mock.Mock
}

func (m *MockHashTagRepository) ListHashTags(ctx context.Context, page pagination.Request) ([]models.HashTag, int64, error) {
	args := m.Called(ctx, page)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}
	return args.Get(0).([]models.HashTag), args.Get(1).(int64), args.Error(2)
}

func (m *MockHashTagRepository) GetHashTagByName(ctx context.Context, name string) (*models.HashTag, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.HashTag), args.Error(1)
}

func (m *MockHashTagRepository) CreateHashTag(ctx context.Context, tag *models.HashTag) error {
	args := m.Called(ctx, tag)
	return args.Error(0)
}

func notFound(name string) error {
	return catalogerrors.Newf(catalogerrors.KindNotFound, "HashTag %q doesn't exist.", name)
}

// Tests

func TestService_ListAll(t *testing.T) {
	mockRepo := new(MockHashTagRepository)
	service := NewService(mockRepo)

	tags := []models.HashTag{{Name: "tech", Slug: "tech"}}
	mockRepo.On("ListHashTags", mock.Anything, pagination.Default(1)).
		Return(tags, int64(1), nil)

	list, err := service.ListAll(context.Background(), 1)

	require.NoError(t, err)
	assert.Len(t, list.HashTags, 1)
	assert.Equal(t, 1, list.TotalPages)
}

func TestService_ListAll_PagePastEnd(t *testing.T) {
	mockRepo := new(MockHashTagRepository)
	service := NewService(mockRepo)

	mockRepo.On("ListHashTags", mock.Anything, pagination.Default(5)).
		Return([]models.HashTag{}, int64(10), nil)

	_, err := service.ListAll(context.Background(), 5)

	require.Error(t, err)
	assert.True(t, catalogerrors.IsKind(err, catalogerrors.KindOutOfRange))
}

func TestService_Resolve_ReusesExisting(t *testing.T) {
	mockRepo := new(MockHashTagRepository)
	service := NewService(mockRepo)

	existing := &models.HashTag{Name: "tech", Slug: "tech"}
	existing.ID = 3
	mockRepo.On("GetHashTagByName", mock.Anything, "tech").Return(existing, nil)

	tags, err := service.Resolve(context.Background(), []string{"tech"})

	require.NoError(t, err)
	require.Len(t, tags, 1)
	assert.Equal(t, uint(3), tags[0].ID)
	mockRepo.AssertNotCalled(t, "CreateHashTag", mock.Anything, mock.Anything)
}

func TestService_Resolve_CreatesMissingWithSlug(t *testing.T) {
	mockRepo := new(MockHashTagRepository)
	service := NewService(mockRepo)

	mockRepo.On("GetHashTagByName", mock.Anything, "True Crime!").
		Return(nil, notFound("True Crime!"))
	mockRepo.On("CreateHashTag", mock.Anything, mock.MatchedBy(func(tag *models.HashTag) bool {
		return tag.Name == "True Crime!" && tag.Slug == "true-crime"
	})).Return(nil)

	tags, err := service.Resolve(context.Background(), []string{"True Crime!"})

	require.NoError(t, err)
	require.Len(t, tags, 1)
	assert.Equal(t, "true-crime", tags[0].Slug)
	mockRepo.AssertExpectations(t)
}

func TestService_Resolve_SkipsEmptyAndDuplicateNames(t *testing.T) {
	mockRepo := new(MockHashTagRepository)
	service := NewService(mockRepo)

	existing := &models.HashTag{Name: "tech", Slug: "tech"}
	mockRepo.On("GetHashTagByName", mock.Anything, "tech").Return(existing, nil).Once()

	tags, err := service.Resolve(context.Background(), []string{"", "tech", "tech"})

	require.NoError(t, err)
	assert.Len(t, tags, 1)
	mockRepo.AssertExpectations(t)
}

func TestService_Resolve_PropagatesStorageFault(t *testing.T) {
	mockRepo := new(MockHashTagRepository)
	service := NewService(mockRepo)

	mockRepo.On("GetHashTagByName", mock.Anything, "tech").
		Return(nil, catalogerrors.Wrap(assert.AnError, catalogerrors.KindStorage, "Fail to resolve hashtags."))

	_, err := service.Resolve(context.Background(), []string{"tech"})

	require.Error(t, err)
	assert.True(t, catalogerrors.IsKind(err, catalogerrors.KindStorage))
}
