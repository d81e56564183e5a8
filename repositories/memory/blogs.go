package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"blogger/models"
	"blogger/repositories"
)

type blogRecord struct {
	blog models.Blog
	seq  uint64
}

// BlogStore keeps blogs in memory with the same observable behaviour as
// repositories.BlogRepository. Each call is atomic on its own; nothing spans
// calls, just like the Mongo implementation.
type BlogStore struct {
	mu    sync.RWMutex
	blogs map[primitive.ObjectID]*blogRecord
	seq   uint64
	now   func() time.Time
}

// NewBlogStore creates an empty store.
func NewBlogStore() *BlogStore {
	return &BlogStore{
		blogs: make(map[primitive.ObjectID]*blogRecord),
		now:   func() time.Time { return time.Now().UTC().Truncate(time.Millisecond) },
	}
}

// WithClock replaces the timestamp source. Tests use it to create blogs in
// the same instant or in a fixed order.
func (s *BlogStore) WithClock(now func() time.Time) *BlogStore {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.now = now
	return s
}

func (s *BlogStore) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Blog, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rec, ok := s.blogs[id]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	b := cloneBlog(rec.blog)
	return &b, nil
}

func (s *BlogStore) ExistsByTitleOrDescription(ctx context.Context, title, description *string) (bool, error) {
	if title == nil && description == nil {
		return false, nil
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, rec := range s.blogs {
		if title != nil && rec.blog.Title == *title {
			return true, nil
		}
		if description != nil && rec.blog.Description == *description {
			return true, nil
		}
	}
	return false, nil
}

func (s *BlogStore) List(ctx context.Context, opt repositories.ListBlogsOptions) ([]models.Blog, int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	matched := make([]*blogRecord, 0, len(s.blogs))
	for _, rec := range s.blogs {
		if opt.CreatedBy != nil && rec.blog.CreatedBy != *opt.CreatedBy {
			continue
		}
		matched = append(matched, rec)
	}

	sort.Slice(matched, func(i, j int) bool {
		a, b := matched[i], matched[j]
		if !a.blog.CreatedAt.Equal(b.blog.CreatedAt) {
			return a.blog.CreatedAt.After(b.blog.CreatedAt)
		}
		return a.seq > b.seq
	})

	total := int64(len(matched))
	out := []models.Blog{}
	if opt.Skip < 0 || opt.Skip >= total || opt.Limit <= 0 {
		return out, total, nil
	}
	end := total
	if opt.Limit < total-opt.Skip {
		end = opt.Skip + opt.Limit
	}
	for _, rec := range matched[opt.Skip:end] {
		b := cloneBlog(rec.blog)
		if opt.ExcludeContent {
			b.Content = ""
		}
		out = append(out, b)
	}
	return out, total, nil
}

func (s *BlogStore) Insert(ctx context.Context, b *models.Blog) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	if b.ID.IsZero() {
		b.ID = primitive.NewObjectID()
	}
	b.CreatedAt = now
	b.UpdatedAt = now
	if b.Tags == nil {
		b.Tags = []string{}
	}
	s.seq++
	s.blogs[b.ID] = &blogRecord{blog: cloneBlog(*b), seq: s.seq}
	return nil
}

func (s *BlogStore) Update(ctx context.Context, b *models.Blog) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.blogs[b.ID]
	if !ok {
		return repositories.ErrNotFound
	}
	if b.Tags == nil {
		b.Tags = []string{}
	}
	b.UpdatedAt = s.now()

	stored := rec.blog
	stored.Title = b.Title
	stored.Description = b.Description
	stored.Content = b.Content
	stored.Tags = append([]string(nil), b.Tags...)
	stored.Type = b.Type
	stored.UpdatedAt = b.UpdatedAt
	rec.blog = stored
	return nil
}

func (s *BlogStore) Delete(ctx context.Context, id primitive.ObjectID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.blogs[id]; !ok {
		return repositories.ErrNotFound
	}
	delete(s.blogs, id)
	return nil
}

// Len returns the number of stored blogs.
func (s *BlogStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.blogs)
}

func cloneBlog(b models.Blog) models.Blog {
	if b.Tags != nil {
		b.Tags = append([]string{}, b.Tags...)
	}
	return b
}
