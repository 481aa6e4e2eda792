package models

// Patch structs carry partial updates. A nil field means "leave unchanged".
// Updates() is the single merge point: repositories feed its result to a
// column-level UPDATE so relation collections are never replaced wholesale.

// PodcastPatch updates podcast scalar fields.
type PodcastPatch struct {
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
	CoverImage  *string `json:"cover_image,omitempty"`
}

// Updates returns the changed columns.
func (p PodcastPatch) Updates() map[string]any {
	updates := map[string]any{}
	if p.Title != nil {
		updates["title"] = *p.Title
	}
	if p.Description != nil {
		updates["description"] = *p.Description
	}
	if p.CoverImage != nil {
		updates["cover_image"] = *p.CoverImage
	}
	return updates
}

// EpisodePatch updates episode scalar fields.
type EpisodePatch struct {
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
}

// Updates returns the changed columns.
func (p EpisodePatch) Updates() map[string]any {
	updates := map[string]any{}
	if p.Title != nil {
		updates["title"] = *p.Title
	}
	if p.Description != nil {
		updates["description"] = *p.Description
	}
	return updates
}

// UserPatch updates profile fields. Password is handled separately by the
// account service because it must pass through the one-way hash first.
type UserPatch struct {
	Email        *string `json:"email,omitempty"`
	Password     *string `json:"password,omitempty"`
	ProfileImage *string `json:"profile_image,omitempty"`
}

// Updates returns the changed profile columns. Password is deliberately
// absent: the plaintext never reaches the store.
func (p UserPatch) Updates() map[string]any {
	updates := map[string]any{}
	if p.Email != nil {
		updates["email"] = *p.Email
	}
	if p.ProfileImage != nil {
		updates["profile_image"] = *p.ProfileImage
	}
	return updates
}
