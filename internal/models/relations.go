package models

// Relation names callers pass to repositories for selective hydration.
// They match the struct field names GORM preloads.
const (
	RelationHost           = "Host"
	RelationEpisodes       = "Episodes"
	RelationReviews        = "Reviews"
	RelationSubscribers    = "Subscribers"
	RelationHashTags       = "HashTags"
	RelationPodcasts       = "Podcasts"
	RelationWriter         = "Writer"
	RelationSubscriptions  = "Subscriptions"
	RelationPlayedEpisodes = "PlayedEpisodes"
)
