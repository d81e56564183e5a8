package repositories

import (
	"context"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"

	"blogger/models"
)

func strPtr(s string) *string { return &s }

func blogDoc(id, owner primitive.ObjectID, title string, createdAt time.Time) bson.D {
	return bson.D{
		{Key: "_id", Value: id},
		{Key: "title", Value: title},
		{Key: "description", Value: title + " description"},
		{Key: "content", Value: "body"},
		{Key: "tags", Value: bson.A{"go", "mongo"}},
		{Key: "type", Value: "Technical"},
		{Key: "createdBy", Value: owner},
		{Key: "createdAt", Value: createdAt},
		{Key: "updatedAt", Value: createdAt},
	}
}

func TestOrFilter(t *testing.T) {
	assert.Nil(t, orFilter(nil, nil))

	assert.Equal(t,
		bson.M{"$or": bson.A{bson.M{"description": "d"}, bson.M{"title": "t"}}},
		orFilter(strPtr("t"), strPtr("d")),
	)
	assert.Equal(t,
		bson.M{"$or": bson.A{bson.M{"title": "t"}}},
		orFilter(strPtr("t"), nil),
	)
}

func TestPageCapacity(t *testing.T) {
	tests := []struct {
		name               string
		total, skip, limit int64
		want               int64
	}{
		{"limit smaller than remaining", 10, 0, 3, 3},
		{"remaining smaller than limit", 10, 8, 5, 2},
		{"huge limit", 1, 0, 1 << 40, 1},
		{"max limit", 7, 2, math.MaxInt64, 5},
		{"skip past the end", 3, 9, 3, 0},
		{"empty collection", 0, 0, 3, 0},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, pageCapacity(tc.total, tc.skip, tc.limit))
		})
	}
}

func TestBlogRepository(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))
	ctx := context.Background()
	ns := "blogger.blogs"

	mt.Run("FindByID decodes document", func(mt *mtest.T) {
		repo := NewBlogRepository(mt.DB)
		id, owner := primitive.NewObjectID(), primitive.NewObjectID()
		created := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch, blogDoc(id, owner, "Hello", created)))

		b, err := repo.FindByID(ctx, id)
		require.NoError(mt, err)
		assert.Equal(mt, id, b.ID)
		assert.Equal(mt, "Hello", b.Title)
		assert.Equal(mt, []string{"go", "mongo"}, b.Tags)
		assert.Equal(mt, models.BlogTypeTechnical, b.Type)
		assert.Equal(mt, owner, b.CreatedBy)
		assert.True(mt, created.Equal(b.CreatedAt))
	})

	mt.Run("FindByID maps no documents to ErrNotFound", func(mt *mtest.T) {
		repo := NewBlogRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch))

		_, err := repo.FindByID(ctx, primitive.NewObjectID())
		assert.ErrorIs(mt, err, ErrNotFound)
	})

	mt.Run("ExistsByTitleOrDescription", func(mt *mtest.T) {
		repo := NewBlogRepository(mt.DB)
		mt.AddMockResponses(
			mtest.CreateCursorResponse(0, ns, mtest.FirstBatch, bson.D{{Key: "_id", Value: primitive.NewObjectID()}}),
			mtest.CreateCursorResponse(0, ns, mtest.FirstBatch),
		)

		exists, err := repo.ExistsByTitleOrDescription(ctx, strPtr("Hello"), strPtr("x"))
		require.NoError(mt, err)
		assert.True(mt, exists)

		exists, err = repo.ExistsByTitleOrDescription(ctx, strPtr("Other"), strPtr("y"))
		require.NoError(mt, err)
		assert.False(mt, exists)

		// nothing to compare against: no round trip is needed
		exists, err = repo.ExistsByTitleOrDescription(ctx, nil, nil)
		require.NoError(mt, err)
		assert.False(mt, exists)
	})

	mt.Run("List returns page and total", func(mt *mtest.T) {
		repo := NewBlogRepository(mt.DB)
		owner := primitive.NewObjectID()
		now := time.Now().UTC().Truncate(time.Millisecond)
		mt.AddMockResponses(
			mtest.CreateCursorResponse(0, ns, mtest.FirstBatch, bson.D{{Key: "n", Value: int32(7)}}),
			mtest.CreateCursorResponse(0, ns, mtest.FirstBatch,
				blogDoc(primitive.NewObjectID(), owner, "newest", now),
				blogDoc(primitive.NewObjectID(), owner, "older", now.Add(-time.Minute)),
			),
		)

		blogs, total, err := repo.List(ctx, ListBlogsOptions{CreatedBy: &owner, Skip: 0, Limit: 2})
		require.NoError(mt, err)
		assert.EqualValues(mt, 7, total)
		require.Len(mt, blogs, 2)
		assert.Equal(mt, "newest", blogs[0].Title)
		assert.Equal(mt, "older", blogs[1].Title)
	})

	mt.Run("List with a huge limit allocates by result size", func(mt *mtest.T) {
		repo := NewBlogRepository(mt.DB)
		owner := primitive.NewObjectID()
		mt.AddMockResponses(
			mtest.CreateCursorResponse(0, ns, mtest.FirstBatch, bson.D{{Key: "n", Value: int32(1)}}),
			mtest.CreateCursorResponse(0, ns, mtest.FirstBatch, blogDoc(primitive.NewObjectID(), owner, "only", time.Now().UTC())),
		)

		blogs, total, err := repo.List(ctx, ListBlogsOptions{Limit: 1 << 40})
		require.NoError(mt, err)
		assert.EqualValues(mt, 1, total)
		require.Len(mt, blogs, 1)
		assert.Equal(mt, "only", blogs[0].Title)
	})

	mt.Run("Insert fills id and timestamps", func(mt *mtest.T) {
		repo := NewBlogRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateSuccessResponse())

		b := &models.Blog{Title: "t", Description: "d", Content: "c", Type: models.BlogTypeOther}
		require.NoError(mt, repo.Insert(ctx, b))
		assert.False(mt, b.ID.IsZero())
		assert.False(mt, b.CreatedAt.IsZero())
		assert.Equal(mt, b.CreatedAt, b.UpdatedAt)
		assert.Equal(mt, []string{}, b.Tags)
	})

	mt.Run("Update reports missing document", func(mt *mtest.T) {
		repo := NewBlogRepository(mt.DB)
		mt.AddMockResponses(
			mtest.CreateSuccessResponse(bson.E{Key: "n", Value: int32(1)}, bson.E{Key: "nModified", Value: int32(1)}),
			mtest.CreateSuccessResponse(bson.E{Key: "n", Value: int32(0)}, bson.E{Key: "nModified", Value: int32(0)}),
		)

		b := &models.Blog{ID: primitive.NewObjectID(), Title: "t"}
		require.NoError(mt, repo.Update(ctx, b))
		assert.False(mt, b.UpdatedAt.IsZero())

		err := repo.Update(ctx, &models.Blog{ID: primitive.NewObjectID()})
		assert.ErrorIs(mt, err, ErrNotFound)
	})

	mt.Run("Delete reports missing document", func(mt *mtest.T) {
		repo := NewBlogRepository(mt.DB)
		mt.AddMockResponses(
			mtest.CreateSuccessResponse(bson.E{Key: "n", Value: int32(1)}),
			mtest.CreateSuccessResponse(bson.E{Key: "n", Value: int32(0)}),
		)

		require.NoError(mt, repo.Delete(ctx, primitive.NewObjectID()))
		assert.ErrorIs(mt, repo.Delete(ctx, primitive.NewObjectID()), ErrNotFound)
	})
}

func TestUserRepository(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))
	ctx := context.Background()
	ns := "blogger.users"

	mt.Run("FindByIDs keys users by id", func(mt *mtest.T) {
		repo := NewUserRepository(mt.DB)
		alice, bob := primitive.NewObjectID(), primitive.NewObjectID()
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch,
			bson.D{{Key: "_id", Value: alice}, {Key: "username", Value: "alice"}, {Key: "email", Value: "a@example.com"}},
			bson.D{{Key: "_id", Value: bob}, {Key: "username", Value: "bob"}, {Key: "email", Value: "b@example.com"}},
		))

		users, err := repo.FindByIDs(ctx, []primitive.ObjectID{alice, bob})
		require.NoError(mt, err)
		assert.Len(mt, users, 2)
		assert.Equal(mt, "bob", users[bob].Username)
	})

	mt.Run("FindByIDs with no ids skips the query", func(mt *mtest.T) {
		repo := NewUserRepository(mt.DB)
		users, err := repo.FindByIDs(ctx, nil)
		require.NoError(mt, err)
		assert.Empty(mt, users)
	})

	mt.Run("FindByID maps no documents to ErrNotFound", func(mt *mtest.T) {
		repo := NewUserRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch))

		_, err := repo.FindByID(ctx, primitive.NewObjectID())
		assert.ErrorIs(mt, err, ErrNotFound)
	})
}
