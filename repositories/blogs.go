package repositories

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"blogger/models"
)

// ListBlogsOptions describes one page of a blog scan.
// Results are always ordered by createdAt desc with _id desc as tie-break.
type ListBlogsOptions struct {
	CreatedBy      *primitive.ObjectID
	Skip           int64
	Limit          int64
	ExcludeContent bool
}

type BlogRepository struct {
	col *mongo.Collection
}

func NewBlogRepository(db *mongo.Database) *BlogRepository {
	return &BlogRepository{col: db.Collection("blogs")}
}

// FindByID returns a blog by its ObjectID.
func (r *BlogRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Blog, error) {
	var b models.Blog
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&b); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &b, nil
}

// ExistsByTitleOrDescription reports whether any blog has the given title
// or the given description. Nil arguments are left out of the OR; with
// both nil nothing can match and no query is sent.
func (r *BlogRepository) ExistsByTitleOrDescription(ctx context.Context, title, description *string) (bool, error) {
	filter := orFilter(title, description)
	if filter == nil {
		return false, nil
	}
	opts := options.FindOne().SetProjection(bson.M{"_id": 1})
	err := r.col.FindOne(ctx, filter, opts).Err()
	if errors.Is(err, mongo.ErrNoDocuments) {
		return false, nil
	}
	return err == nil, err
}

func orFilter(title, description *string) bson.M {
	or := bson.A{}
	if description != nil {
		or = append(or, bson.M{"description": *description})
	}
	if title != nil {
		or = append(or, bson.M{"title": *title})
	}
	if len(or) == 0 {
		return nil
	}
	return bson.M{"$or": or}
}

// List returns one page of blogs and the total number of blogs matching
// the filter (ignoring skip/limit).
func (r *BlogRepository) List(ctx context.Context, opt ListBlogsOptions) ([]models.Blog, int64, error) {
	filter := bson.M{}
	if opt.CreatedBy != nil {
		filter["createdBy"] = *opt.CreatedBy
	}

	total, err := r.col.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	findOpts := options.Find().SetSkip(opt.Skip).SetLimit(opt.Limit).SetSort(bson.D{
		{Key: "createdAt", Value: -1},
		{Key: "_id", Value: -1},
	})
	if opt.ExcludeContent {
		findOpts.SetProjection(bson.M{"content": 0})
	}
	cur, err := r.col.Find(ctx, filter, findOpts)
	if err != nil {
		return nil, 0, err
	}
	defer cur.Close(ctx)

	results := make([]models.Blog, 0, pageCapacity(total, opt.Skip, opt.Limit))
	for cur.Next(ctx) {
		var b models.Blog
		if err := cur.Decode(&b); err != nil {
			return nil, 0, err
		}
		results = append(results, b)
	}
	if err := cur.Err(); err != nil {
		return nil, 0, err
	}
	return results, total, nil
}

// pageCapacity bounds the preallocation by what the collection can return,
// never by the client's limit alone.
func pageCapacity(total, skip, limit int64) int64 {
	remaining := total - skip
	if remaining <= 0 || limit <= 0 {
		return 0
	}
	return min(remaining, limit)
}

// Insert stores a new blog and fills in its id and timestamps.
func (r *BlogRepository) Insert(ctx context.Context, b *models.Blog) error {
	now := storeNow()
	if b.ID.IsZero() {
		b.ID = primitive.NewObjectID()
	}
	b.CreatedAt = now
	b.UpdatedAt = now
	if b.Tags == nil {
		b.Tags = []string{}
	}
	_, err := r.col.InsertOne(ctx, b)
	return err
}

// Update writes the mutable fields of b. createdBy and createdAt are never
// part of the update.
func (r *BlogRepository) Update(ctx context.Context, b *models.Blog) error {
	now := storeNow()
	tags := b.Tags
	if tags == nil {
		tags = []string{}
	}
	res, err := r.col.UpdateByID(ctx, b.ID, bson.M{
		"$set": bson.M{
			"title":       b.Title,
			"description": b.Description,
			"content":     b.Content,
			"tags":        tags,
			"type":        b.Type,
			"updatedAt":   now,
		},
	})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	b.Tags = tags
	b.UpdatedAt = now
	return nil
}

// Delete removes a blog permanently.
func (r *BlogRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// storeNow matches the millisecond precision Mongo keeps for dates so the
// value returned to callers equals what a later read yields.
func storeNow() time.Time {
	return time.Now().UTC().Truncate(time.Millisecond)
}
