package hashtags

import (
	"context"

	"github.com/gosimple/slug"

	"github.com/podshelf/catalog-api/internal/models"
	catalogerrors "github.com/podshelf/catalog-api/pkg/errors"
	"github.com/podshelf/catalog-api/pkg/pagination"
)

type Service struct {
	repository HashTagRepository
}

func NewService(repository HashTagRepository) HashTagService {
	return &Service{repository: repository}
}

// ListAll returns one page of tags with associated podcasts.
func (s *Service) ListAll(ctx context.Context, page int) (*HashTagList, error) {
	request := pagination.Default(page)
	tags, total, err := s.repository.ListHashTags(ctx, request)
	if err != nil {
		return nil, catalogerrors.Ensure(err, "Fail to get hashtags.")
	}
	if err := request.Validate(total); err != nil {
		return nil, catalogerrors.Ensure(err, "Fail to get hashtags.")
	}
	if tags == nil {
		tags = []models.HashTag{}
	}
	return &HashTagList{
		HashTags:   tags,
		TotalCount: total,
		TotalPages: request.TotalPages(total),
	}, nil
}

// Resolve returns a persisted tag per name: an existing tag matched by name,
// or a fresh one whose slug lowercases the name and collapses
// non-alphanumeric runs to a single separator.
func (s *Service) Resolve(ctx context.Context, names []string) ([]models.HashTag, error) {
	tags := make([]models.HashTag, 0, len(names))
	seen := make(map[string]bool, len(names))

	for _, name := range names {
		if name == "" || seen[name] {
			continue
		}
		seen[name] = true

		existing, err := s.repository.GetHashTagByName(ctx, name)
		if err == nil {
			tags = append(tags, *existing)
			continue
		}
		if !catalogerrors.IsKind(err, catalogerrors.KindNotFound) {
			return nil, catalogerrors.Ensure(err, "Fail to resolve hashtags.")
		}

		tag := models.HashTag{
			Name: name,
			Slug: slug.Make(name),
		}
		if err := s.repository.CreateHashTag(ctx, &tag); err != nil {
			return nil, catalogerrors.Ensure(err, "Fail to resolve hashtags.")
		}
		tags = append(tags, tag)
	}

	return tags, nil
}
