package models

import (
	"gorm.io/gorm"
)

// UserRole determines which catalog operations a user may perform.
type UserRole string

const (
	RoleHost     UserRole = "Host"
	RoleListener UserRole = "Listener"
)

// User represents a host or listener account.
// PasswordHash holds only the bcrypt digest and is never serialized.
type User struct {
	gorm.Model
	Email        string   `json:"email" gorm:"uniqueIndex;not null"`
	PasswordHash string   `json:"-" gorm:"not null"`
	Role         UserRole `json:"role" gorm:"type:varchar(16);not null"`
	ProfileImage string   `json:"profile_image,omitempty"`

	Podcasts       []Podcast `json:"podcasts,omitempty" gorm:"foreignKey:HostID"`
	Reviews        []Review  `json:"reviews,omitempty" gorm:"foreignKey:WriterID"`
	Subscriptions  []Podcast `json:"subscriptions,omitempty" gorm:"many2many:user_subscriptions"`
	PlayedEpisodes []Episode `json:"played_episodes,omitempty" gorm:"many2many:user_played_episodes"`
}

// Podcast represents a show owned by a single host.
type Podcast struct {
	gorm.Model
	Title       string  `json:"title" gorm:"not null;index"`
	Description string  `json:"description" gorm:"type:text"`
	CoverImage  string  `json:"cover_image,omitempty"`
	Rating      float64 `json:"rating" gorm:"default:0"`

	HostID uint `json:"host_id" gorm:"not null;index"`
	Host   User `json:"host,omitempty"`

	Episodes    []Episode `json:"episodes,omitempty" gorm:"foreignKey:PodcastID"`
	Reviews     []Review  `json:"reviews,omitempty" gorm:"foreignKey:PodcastID"`
	Subscribers []User    `json:"subscribers,omitempty" gorm:"many2many:user_subscriptions"`
	HashTags    []HashTag `json:"hash_tags,omitempty" gorm:"many2many:podcast_hash_tags"`
}

// Episode belongs to exactly one podcast.
type Episode struct {
	gorm.Model
	Title       string  `json:"title" gorm:"not null"`
	Description string  `json:"description" gorm:"type:text"`
	Rating      float64 `json:"rating" gorm:"default:0"`
	PodcastID   uint    `json:"podcast_id" gorm:"not null;index"`
}

// Review is written by one user about one podcast.
type Review struct {
	gorm.Model
	Description string `json:"description" gorm:"type:text;not null"`

	WriterID uint `json:"writer_id" gorm:"not null;index"`
	Writer   User `json:"writer,omitempty"`

	PodcastID uint `json:"podcast_id" gorm:"not null;index"`
}

// HashTag labels podcasts. Tags have their own lifecycle and survive
// deletion of every podcast that carries them.
type HashTag struct {
	gorm.Model
	Name string `json:"name" gorm:"uniqueIndex;not null"`
	Slug string `json:"slug" gorm:"not null"`

	Podcasts []Podcast `json:"podcasts,omitempty" gorm:"many2many:podcast_hash_tags"`
}

// All returns every entity for automigration, parents before children.
func All() []any {
	return []any{&User{}, &Podcast{}, &Episode{}, &Review{}, &HashTag{}}
}
