package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"blogger/dto"
	"blogger/events"
	"blogger/logger"
	"blogger/models"
	"blogger/repositories"
)

// BlogRepository is the blog store the service runs on. Implemented by
// repositories.BlogRepository (Mongo) and memory.BlogStore.
type BlogRepository interface {
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Blog, error)
	ExistsByTitleOrDescription(ctx context.Context, title, description *string) (bool, error)
	List(ctx context.Context, opts repositories.ListBlogsOptions) ([]models.Blog, int64, error)
	Insert(ctx context.Context, b *models.Blog) error
	Update(ctx context.Context, b *models.Blog) error
	Delete(ctx context.Context, id primitive.ObjectID) error
}

// UserDirectory resolves blog creators for the {_id, username, email} projection.
type UserDirectory interface {
	FindByIDs(ctx context.Context, ids []primitive.ObjectID) (map[primitive.ObjectID]models.User, error)
}

// EventPublisher receives lifecycle events after successful writes.
type EventPublisher interface {
	PublishBlogEvent(ctx context.Context, evt events.BlogEvent) error
}

const publishTimeout = 5 * time.Second

// BlogService holds the blog business rules and DTO mapping.
type BlogService struct {
	blogs  BlogRepository
	users  UserDirectory
	events EventPublisher

	defaultLimit        int
	myBlogsDefaultLimit int
}

func NewBlogService(blogs BlogRepository, users UserDirectory) *BlogService {
	return &BlogService{
		blogs:               blogs,
		users:               users,
		defaultLimit:        3,
		myBlogsDefaultLimit: 5,
	}
}

// WithEvents enables lifecycle event publication.
func (s *BlogService) WithEvents(p EventPublisher) *BlogService {
	s.events = p
	return s
}

// WithPageDefaults overrides the default page sizes for ListBlogs and
// ListMyBlogs. Values below 1 are ignored.
func (s *BlogService) WithPageDefaults(list, mine int) *BlogService {
	if list > 0 {
		s.defaultLimit = list
	}
	if mine > 0 {
		s.myBlogsDefaultLimit = mine
	}
	return s
}

// CreateBlogInput carries the create payload. Nil pointers mean the field
// was not sent at all, which is different from an empty string.
type CreateBlogInput struct {
	Title       *string
	Description *string
	Content     *string
	Tags        []string
	Type        *string
}

// BlogPatch carries an update payload. Text fields and Type replace the
// stored value only when non-blank. Tags replace the stored list only when
// TagsSet, i.e. the client sent an array.
type BlogPatch struct {
	Title       *string
	Description *string
	Content     *string
	Tags        []string
	TagsSet     bool
	Type        *string
}

func (s *BlogService) CreateBlog(ctx context.Context, in CreateBlogInput, actor models.Identity) (*dto.BlogDTO, error) {
	if err := requireActor(actor); err != nil {
		return nil, err
	}

	for _, f := range []*string{in.Title, in.Description, in.Content} {
		if f != nil && strings.TrimSpace(*f) == "" {
			return nil, NewValidationError("All fields are required")
		}
	}

	var title *string
	if in.Title != nil {
		t := strings.TrimSpace(*in.Title)
		title = &t
	}

	exists, err := s.blogs.ExistsByTitleOrDescription(ctx, title, in.Description)
	if err != nil {
		return nil, NewInternalError("Something went wrong while creating blog", fmt.Errorf("check duplicate blog: %w", err))
	}
	if exists {
		return nil, NewConflictError("Similar blog already exists")
	}

	blog := &models.Blog{
		Title:       deref(title),
		Description: deref(in.Description),
		Content:     deref(in.Content),
		Tags:        in.Tags,
		Type:        models.BlogTypeOther,
		CreatedBy:   actor.ID,
	}
	if blog.Tags == nil {
		blog.Tags = []string{}
	}
	if in.Type != nil && *in.Type != "" {
		blog.Type = models.BlogType(*in.Type)
	}

	if err := validateBlog(blog); err != nil {
		return nil, err
	}

	if err := s.blogs.Insert(ctx, blog); err != nil {
		return nil, NewInternalError("Something went wrong while creating blog", fmt.Errorf("insert blog: %w", err))
	}

	s.publish(ctx, events.BlogCreated, blog)

	view := dto.NewBlogDTO(*blog, dto.NewAuthorDTOFromIdentity(actor), true)
	return &view, nil
}

func (s *BlogService) DeleteBlog(ctx context.Context, blogID string, actor models.Identity) error {
	blog, err := s.loadOwned(ctx, blogID, actor, "You are not authorized to delete this blog")
	if err != nil {
		return err
	}

	if err := s.blogs.Delete(ctx, blog.ID); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return NewNotFoundError("Blog not found")
		}
		return NewInternalError("Something went wrong while deleting blog", fmt.Errorf("delete blog %s: %w", blog.ID.Hex(), err))
	}

	s.publish(ctx, events.BlogDeleted, blog)
	return nil
}

func (s *BlogService) UpdateBlog(ctx context.Context, blogID string, actor models.Identity, patch BlogPatch) (*dto.BlogDTO, error) {
	blog, err := s.loadOwned(ctx, blogID, actor, "You are not authorized to update this blog")
	if err != nil {
		return nil, err
	}

	applyText(&blog.Title, patch.Title)
	applyText(&blog.Description, patch.Description)
	applyText(&blog.Content, patch.Content)
	if patch.TagsSet {
		blog.Tags = patch.Tags
		if blog.Tags == nil {
			blog.Tags = []string{}
		}
	}
	if patch.Type != nil && *patch.Type != "" {
		blog.Type = models.BlogType(*patch.Type)
	}

	if err := validateBlog(blog); err != nil {
		return nil, err
	}

	if err := s.blogs.Update(ctx, blog); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, NewNotFoundError("Blog not found")
		}
		return nil, NewInternalError("Something went wrong while updating blog", fmt.Errorf("update blog %s: %w", blog.ID.Hex(), err))
	}

	s.publish(ctx, events.BlogUpdated, blog)

	view := dto.NewBlogDTO(*blog, dto.NewAuthorDTOFromIdentity(actor), true)
	return &view, nil
}

// ListBlogs returns one page of every blog, newest first, without content.
func (s *BlogService) ListBlogs(ctx context.Context, q PageQuery) (*dto.BlogPageDTO, error) {
	w := resolvePage(q, s.defaultLimit)

	items, total, err := s.blogs.List(ctx, repositories.ListBlogsOptions{
		Skip:           w.skip,
		Limit:          int64(w.limit),
		ExcludeContent: true,
	})
	if err != nil {
		return nil, NewInternalError("Something went wrong while fetching blogs", fmt.Errorf("list blogs: %w", err))
	}

	authors, err := s.authorsOf(ctx, items)
	if err != nil {
		return nil, err
	}

	out := make([]dto.BlogDTO, 0, len(items))
	for _, b := range items {
		out = append(out, dto.NewBlogDTO(b, authors[b.CreatedBy], false))
	}
	return &dto.BlogPageDTO{
		Blogs:       out,
		TotalBlogs:  total,
		CurrentPage: w.page,
		TotalPages:  totalPages(total, w.limit),
	}, nil
}

// GetBlog loads a single blog with its content.
func (s *BlogService) GetBlog(ctx context.Context, blogID string) (*dto.BlogDTO, error) {
	id, err := primitive.ObjectIDFromHex(blogID)
	if err != nil {
		return nil, NewNotFoundError("No blog found")
	}

	blog, err := s.blogs.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, NewNotFoundError("No blog found")
		}
		return nil, NewInternalError("Something went wrong while fetching blog", fmt.Errorf("find blog %s: %w", blogID, err))
	}

	authors, err := s.authorsOf(ctx, []models.Blog{*blog})
	if err != nil {
		return nil, err
	}

	view := dto.NewBlogDTO(*blog, authors[blog.CreatedBy], true)
	return &view, nil
}

// ListMyBlogs returns one page of the actor's own blogs, content included.
func (s *BlogService) ListMyBlogs(ctx context.Context, actor models.Identity, q PageQuery) (*dto.BlogPageDTO, error) {
	if err := requireActor(actor); err != nil {
		return nil, err
	}
	w := resolvePage(q, s.myBlogsDefaultLimit)

	owner := actor.ID
	items, total, err := s.blogs.List(ctx, repositories.ListBlogsOptions{
		CreatedBy: &owner,
		Skip:      w.skip,
		Limit:     int64(w.limit),
	})
	if err != nil {
		return nil, NewInternalError("Something went wrong while fetching blogs", fmt.Errorf("list blogs of %s: %w", owner.Hex(), err))
	}

	author := dto.NewAuthorDTOFromIdentity(actor)
	out := make([]dto.BlogDTO, 0, len(items))
	for _, b := range items {
		out = append(out, dto.NewBlogDTO(b, author, true))
	}
	return &dto.BlogPageDTO{
		Blogs:       out,
		TotalBlogs:  total,
		CurrentPage: w.page,
		TotalPages:  totalPages(total, w.limit),
	}, nil
}

// loadOwned runs the id, existence and ownership checks shared by update
// and delete, in that order.
func (s *BlogService) loadOwned(ctx context.Context, blogID string, actor models.Identity, forbidden string) (*models.Blog, error) {
	if err := requireActor(actor); err != nil {
		return nil, err
	}
	if strings.TrimSpace(blogID) == "" {
		return nil, NewValidationError("Blog ID is required")
	}
	id, err := primitive.ObjectIDFromHex(blogID)
	if err != nil {
		return nil, NewNotFoundError("Blog not found")
	}

	blog, err := s.blogs.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, NewNotFoundError("Blog not found")
		}
		return nil, NewInternalError("Something went wrong while fetching blog", fmt.Errorf("find blog %s: %w", blogID, err))
	}
	if !blog.IsOwnedBy(actor.ID) {
		return nil, NewForbiddenError(forbidden)
	}
	return blog, nil
}

func (s *BlogService) authorsOf(ctx context.Context, blogs []models.Blog) (map[primitive.ObjectID]*dto.AuthorDTO, error) {
	ids := make([]primitive.ObjectID, 0, len(blogs))
	seen := make(map[primitive.ObjectID]bool, len(blogs))
	for _, b := range blogs {
		if !seen[b.CreatedBy] {
			seen[b.CreatedBy] = true
			ids = append(ids, b.CreatedBy)
		}
	}

	users, err := s.users.FindByIDs(ctx, ids)
	if err != nil {
		return nil, NewInternalError("Something went wrong while fetching blogs", fmt.Errorf("load authors: %w", err))
	}

	out := make(map[primitive.ObjectID]*dto.AuthorDTO, len(users))
	for id, u := range users {
		out[id] = dto.NewAuthorDTO(u)
	}
	return out, nil
}

// publish logs failures instead of returning them; the write is already stored.
func (s *BlogService) publish(ctx context.Context, t events.EventType, b *models.Blog) {
	if s.events == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), publishTimeout)
	defer cancel()

	if err := s.events.PublishBlogEvent(ctx, events.NewBlogEvent(t, b)); err != nil {
		logger.ErrorWithFields("failed to publish blog event", logger.Fields{
			"event_type": string(t),
			"blog_id":    b.ID.Hex(),
			"error":      err.Error(),
		})
	}
}

func requireActor(actor models.Identity) error {
	if actor.ID.IsZero() {
		return NewUnauthorizedError("Unauthorized request", nil)
	}
	return nil
}

func applyText(dst *string, v *string) {
	if v == nil {
		return
	}
	if t := strings.TrimSpace(*v); t != "" {
		*dst = t
	}
}

func deref(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}
