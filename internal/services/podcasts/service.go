package podcasts

import (
	"context"

	"github.com/podshelf/catalog-api/internal/models"
	catalogerrors "github.com/podshelf/catalog-api/pkg/errors"
	"github.com/podshelf/catalog-api/pkg/pagination"
)

type Service struct {
	repository PodcastRepository
	tags       TagResolver
}

func NewService(repository PodcastRepository, tags TagResolver) PodcastService {
	return &Service{
		repository: repository,
		tags:       tags,
	}
}

// ListAll returns one page of the whole catalog with hosts hydrated.
func (s *Service) ListAll(ctx context.Context, page int) (*PodcastList, error) {
	request := pagination.Default(page)
	podcasts, total, err := s.repository.ListPodcasts(ctx, request)
	if err != nil {
		return nil, catalogerrors.Ensure(err, "Fail to get podcasts.")
	}
	return s.paginate(podcasts, total, request)
}

// Search matches podcast titles by case-insensitive substring. An empty
// query is not rejected; it matches all rows.
func (s *Service) Search(ctx context.Context, query string, page int) (*PodcastList, error) {
	request := pagination.Search(page)
	podcasts, total, err := s.repository.SearchPodcastsByTitle(ctx, query, request)
	if err != nil {
		return nil, catalogerrors.Ensure(err, "Fail to search podcasts.")
	}
	return s.paginate(podcasts, total, request)
}

// ListByHost returns one page of a single host's podcasts. A host with no
// podcasts yet gets an empty successful page, never a pagination error.
func (s *Service) ListByHost(ctx context.Context, hostID uint, page int) (*PodcastList, error) {
	request := pagination.Default(page)
	podcasts, total, err := s.repository.ListPodcastsByHost(ctx, hostID, request)
	if err != nil {
		return nil, catalogerrors.Ensure(err, "Fail to get podcasts.")
	}
	return s.paginate(podcasts, total, request)
}

// ListByHashTags returns one page of podcasts tagged with any of the named
// tags.
func (s *Service) ListByHashTags(ctx context.Context, tagNames []string, page int) (*PodcastList, error) {
	request := pagination.Default(page)
	podcasts, total, err := s.repository.ListPodcastsByHashTags(ctx, tagNames, request)
	if err != nil {
		return nil, catalogerrors.Ensure(err, "Fail to get podcasts.")
	}
	return s.paginate(podcasts, total, request)
}

// GetPodcast is the single point of truth for podcast existence: any caller
// needing a podcast row composes on top of it instead of re-querying ad hoc.
func (s *Service) GetPodcast(ctx context.Context, id uint, relations ...string) (*models.Podcast, error) {
	podcast, err := s.repository.GetPodcastByID(ctx, id, relations...)
	if err != nil {
		return nil, catalogerrors.Ensure(err, "Fail to find podcast.")
	}
	return podcast, nil
}

// GetForHost retrieves a fully hydrated podcast for its owner. A host asking
// for someone else's podcast gets an ownership error, distinct from
// not-found.
func (s *Service) GetForHost(ctx context.Context, authUserID, podcastID uint) (*models.Podcast, error) {
	podcast, err := s.GetPodcast(ctx, podcastID,
		models.RelationEpisodes, models.RelationReviews, models.RelationSubscribers, models.RelationHost)
	if err != nil {
		return nil, err
	}
	if podcast.Host.ID != authUserID {
		return nil, catalogerrors.New(catalogerrors.KindForbidden, "This podcast is not yours.")
	}
	return podcast, nil
}

// GetForListener retrieves a podcast with host, episodes, and reviews
// hydrated. No ownership check.
func (s *Service) GetForListener(ctx context.Context, podcastID uint) (*models.Podcast, error) {
	return s.GetPodcast(ctx, podcastID,
		models.RelationHost, models.RelationEpisodes, models.RelationReviews)
}

// Create builds a new podcast for the authenticated host: rating zero, empty
// episode and review collections, and hashtags resolved with create-or-reuse
// semantics.
func (s *Service) Create(ctx context.Context, host *models.User, input CreatePodcastInput) (*models.Podcast, error) {
	hashTags, err := s.tags.Resolve(ctx, input.HashTagNames)
	if err != nil {
		return nil, catalogerrors.Ensure(err, "Fail to create podcast.")
	}

	podcast := &models.Podcast{
		Title:       input.Title,
		Description: input.Description,
		CoverImage:  input.CoverImage,
		Rating:      0,
		HostID:      host.ID,
		Episodes:    []models.Episode{},
		Reviews:     []models.Review{},
		HashTags:    hashTags,
	}
	if err := s.repository.CreatePodcast(ctx, podcast); err != nil {
		return nil, catalogerrors.Ensure(err, "Fail to create podcast.")
	}
	return podcast, nil
}

// Update confirms the podcast exists, then applies the partial update. The
// existence check's error propagates verbatim.
func (s *Service) Update(ctx context.Context, podcastID uint, patch models.PodcastPatch) error {
	if _, err := s.GetPodcast(ctx, podcastID); err != nil {
		return err
	}
	if err := s.repository.UpdatePodcast(ctx, podcastID, patch); err != nil {
		return catalogerrors.Ensure(err, "Fail to update podcast.")
	}
	return nil
}

// Delete confirms the podcast exists, then hard-deletes it. Child episodes
// and reviews go with it via the repository's transactional cascade.
func (s *Service) Delete(ctx context.Context, podcastID uint) error {
	if _, err := s.GetPodcast(ctx, podcastID); err != nil {
		return err
	}
	if err := s.repository.DeletePodcast(ctx, podcastID); err != nil {
		return catalogerrors.Ensure(err, "Fail to delete podcast.")
	}
	return nil
}

// ToggleSubscription subscribes the listener if they aren't subscribed and
// unsubscribes them if they are. Subscribing to a nonexistent podcast fails
// with that podcast's not-found error.
func (s *Service) ToggleSubscription(ctx context.Context, subscriberID, podcastID uint) error {
	if err := s.repository.ToggleSubscription(ctx, subscriberID, podcastID); err != nil {
		return catalogerrors.Ensure(err, "Fail to toggle subscription.")
	}
	return nil
}

// paginate applies the page-bounds policy to a counted result.
func (s *Service) paginate(podcasts []models.Podcast, total int64, request pagination.Request) (*PodcastList, error) {
	if err := request.Validate(total); err != nil {
		return nil, catalogerrors.Ensure(err, "Fail to get podcasts.")
	}
	if podcasts == nil {
		podcasts = []models.Podcast{}
	}
	return &PodcastList{
		Podcasts:   podcasts,
		TotalCount: total,
		TotalPages: request.TotalPages(total),
	}, nil
}
