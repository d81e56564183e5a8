package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// BlogType classifies a post.
type BlogType string

const (
	BlogTypeLiterary  BlogType = "Literary"
	BlogTypeTechnical BlogType = "Technical"
	BlogTypeOther     BlogType = "Other"
)

// BlogTypes lists the accepted values in display order.
var BlogTypes = []BlogType{BlogTypeLiterary, BlogTypeTechnical, BlogTypeOther}

// Field limits enforced on every write.
const (
	MaxTitleLength       = 150
	MaxDescriptionLength = 300
	MaxContentLength     = 20000
	MaxTagLength         = 30
)

// Blog is a post owned by the user that created it.
// Collection: blogs
type Blog struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Title       string             `bson:"title" json:"title"`
	Description string             `bson:"description" json:"description"`
	Content     string             `bson:"content" json:"content"`
	Tags        []string           `bson:"tags" json:"tags"`
	Type        BlogType           `bson:"type" json:"type"`
	CreatedBy   primitive.ObjectID `bson:"createdBy" json:"createdBy"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// IsOwnedBy reports whether id created the blog.
func (b *Blog) IsOwnedBy(id primitive.ObjectID) bool {
	return b.CreatedBy == id
}
