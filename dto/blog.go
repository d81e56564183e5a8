package dto

import (
	"time"

	"blogger/models"
)

// AuthorDTO is the public projection of a blog's creator.
type AuthorDTO struct {
	ID       string `json:"_id" example:"665f1c2b9d3e4a0012345678"`
	Username string `json:"username" example:"alice"`
	Email    string `json:"email" example:"alice@example.com"`
}

// NewAuthorDTO projects a user to {_id, username, email}.
func NewAuthorDTO(u models.User) *AuthorDTO {
	return &AuthorDTO{ID: u.ID.Hex(), Username: u.Username, Email: u.Email}
}

// NewAuthorDTOFromIdentity projects the request principal.
func NewAuthorDTOFromIdentity(id models.Identity) *AuthorDTO {
	return &AuthorDTO{ID: id.ID.Hex(), Username: id.Username, Email: id.Email}
}

// BlogDTO is the wire form of a blog. Content is omitted in list
// projections. CreatedBy is null when the creator account no longer exists.
type BlogDTO struct {
	ID          string     `json:"_id" example:"665f1c2b9d3e4a0087654321"`
	Title       string     `json:"title" example:"Hello World"`
	Description string     `json:"description" example:"A test post"`
	Content     *string    `json:"content,omitempty" example:"body"`
	Tags        []string   `json:"tags"`
	Type        string     `json:"type" example:"Technical"`
	CreatedBy   *AuthorDTO `json:"createdBy"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

// NewBlogDTO constructs a BlogDTO from models.Blog.
func NewBlogDTO(b models.Blog, author *AuthorDTO, withContent bool) BlogDTO {
	tags := b.Tags
	if tags == nil {
		tags = []string{}
	}
	d := BlogDTO{
		ID:          b.ID.Hex(),
		Title:       b.Title,
		Description: b.Description,
		Tags:        tags,
		Type:        string(b.Type),
		CreatedBy:   author,
		CreatedAt:   b.CreatedAt,
		UpdatedAt:   b.UpdatedAt,
	}
	if withContent {
		content := b.Content
		d.Content = &content
	}
	return d
}
