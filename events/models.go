package events

import (
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"blogger/models"
)

// EventType names a blog lifecycle event.
type EventType string

const (
	BlogCreated EventType = "blog.created"
	BlogUpdated EventType = "blog.updated"
	BlogDeleted EventType = "blog.deleted"
)

const (
	SourceAPI = "api"
	Version   = "1"
)

// BaseEvent is the envelope shared by every event.
type BaseEvent struct {
	ID        string    `json:"id"`
	Type      EventType `json:"type"`
	Timestamp time.Time `json:"timestamp"`
	Source    string    `json:"source"` // "api", "auditlog"
	Version   string    `json:"version"`
}

func (e BaseEvent) GetType() EventType {
	return e.Type
}

// BlogEvent is emitted after a blog write has been stored.
type BlogEvent struct {
	BaseEvent
	BlogID    primitive.ObjectID `json:"blog_id"`
	CreatedBy primitive.ObjectID `json:"created_by"`
	Title     string             `json:"title"`
}

// NewBlogEvent stamps a fresh event for b.
func NewBlogEvent(t EventType, b *models.Blog) BlogEvent {
	return BlogEvent{
		BaseEvent: BaseEvent{
			ID:        uuid.NewString(),
			Type:      t,
			Timestamp: time.Now().UTC(),
			Source:    SourceAPI,
			Version:   Version,
		},
		BlogID:    b.ID,
		CreatedBy: b.CreatedBy,
		Title:     b.Title,
	}
}
