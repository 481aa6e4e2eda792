package types

import (
	"github.com/podshelf/catalog-api/internal/database"
	"github.com/podshelf/catalog-api/internal/services/auth"
	"github.com/podshelf/catalog-api/internal/services/episodes"
	"github.com/podshelf/catalog-api/internal/services/hashtags"
	"github.com/podshelf/catalog-api/internal/services/podcasts"
	"github.com/podshelf/catalog-api/internal/services/reviews"
	"github.com/podshelf/catalog-api/internal/services/users"
)

// Dependencies holds everything handlers need.
type Dependencies struct {
	DB             *database.DB
	Tokens         *auth.Tokens
	UserService    users.UserService
	PodcastService podcasts.PodcastService
	EpisodeService episodes.EpisodeService
	ReviewService  reviews.ReviewService
	HashTagService hashtags.HashTagService
}
