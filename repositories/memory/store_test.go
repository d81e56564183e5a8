package memory

import (
	"context"
	"fmt"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"blogger/models"
	"blogger/repositories"
)

func strPtr(s string) *string { return &s }

// fixedClock hands out instants one second apart, starting at base.
func fixedClock(base time.Time) func() time.Time {
	n := 0
	return func() time.Time {
		t := base.Add(time.Duration(n) * time.Second)
		n++
		return t
	}
}

func TestBlogStore_InsertAssignsIDAndTimestamps(t *testing.T) {
	store := NewBlogStore()
	ctx := context.Background()

	b := &models.Blog{Title: "t", Description: "d", Content: "c", CreatedBy: primitive.NewObjectID()}
	require.NoError(t, store.Insert(ctx, b))

	assert.False(t, b.ID.IsZero())
	assert.False(t, b.CreatedAt.IsZero())
	assert.Equal(t, b.CreatedAt, b.UpdatedAt)
	assert.Equal(t, []string{}, b.Tags)

	got, err := store.FindByID(ctx, b.ID)
	require.NoError(t, err)
	assert.Equal(t, *b, *got)
}

func TestBlogStore_FindByIDReturnsCopy(t *testing.T) {
	store := NewBlogStore()
	ctx := context.Background()

	b := &models.Blog{Title: "t", Tags: []string{"a"}}
	require.NoError(t, store.Insert(ctx, b))

	got, err := store.FindByID(ctx, b.ID)
	require.NoError(t, err)
	got.Title = "changed"
	got.Tags[0] = "changed"

	again, err := store.FindByID(ctx, b.ID)
	require.NoError(t, err)
	assert.Equal(t, "t", again.Title)
	assert.Equal(t, []string{"a"}, again.Tags)
}

func TestBlogStore_ExistsByTitleOrDescription(t *testing.T) {
	store := NewBlogStore()
	ctx := context.Background()
	require.NoError(t, store.Insert(ctx, &models.Blog{Title: "Hello", Description: "World"}))

	tests := []struct {
		name        string
		title       *string
		description *string
		want        bool
	}{
		{name: "title matches", title: strPtr("Hello"), description: strPtr("other"), want: true},
		{name: "description matches", title: strPtr("other"), description: strPtr("World"), want: true},
		{name: "neither matches", title: strPtr("other"), description: strPtr("other"), want: false},
		{name: "only title supplied", title: strPtr("Hello"), want: true},
		{name: "nothing supplied", want: false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := store.ExistsByTitleOrDescription(ctx, tc.title, tc.description)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestBlogStore_ListOrdersNewestFirstWithStableTieBreak(t *testing.T) {
	same := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	store := NewBlogStore().WithClock(func() time.Time { return same })
	ctx := context.Background()

	var ids []primitive.ObjectID
	for i := 0; i < 4; i++ {
		b := &models.Blog{Title: fmt.Sprintf("b%d", i)}
		require.NoError(t, store.Insert(ctx, b))
		ids = append(ids, b.ID)
	}

	for run := 0; run < 3; run++ {
		page, total, err := store.List(ctx, repositories.ListBlogsOptions{Limit: 10})
		require.NoError(t, err)
		assert.EqualValues(t, 4, total)
		require.Len(t, page, 4)
		// same instant: later inserts come first
		for i, b := range page {
			assert.Equal(t, ids[3-i], b.ID)
		}
	}
}

func TestBlogStore_ListPaginatesAndFilters(t *testing.T) {
	store := NewBlogStore().WithClock(fixedClock(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)))
	ctx := context.Background()
	owner := primitive.NewObjectID()
	other := primitive.NewObjectID()

	for i := 0; i < 7; i++ {
		author := owner
		if i%2 == 1 {
			author = other
		}
		require.NoError(t, store.Insert(ctx, &models.Blog{Title: fmt.Sprintf("b%d", i), Content: "body", CreatedBy: author}))
	}

	page, total, err := store.List(ctx, repositories.ListBlogsOptions{Skip: 6, Limit: 3, ExcludeContent: true})
	require.NoError(t, err)
	assert.EqualValues(t, 7, total)
	require.Len(t, page, 1)
	assert.Equal(t, "b0", page[0].Title)
	assert.Empty(t, page[0].Content)

	page, total, err = store.List(ctx, repositories.ListBlogsOptions{Skip: 9, Limit: 3})
	require.NoError(t, err)
	assert.EqualValues(t, 7, total)
	assert.Empty(t, page)

	page, total, err = store.List(ctx, repositories.ListBlogsOptions{CreatedBy: &owner, Limit: 10})
	require.NoError(t, err)
	assert.EqualValues(t, 4, total)
	require.Len(t, page, 4)
	assert.Equal(t, "b6", page[0].Title)
	assert.Equal(t, "body", page[0].Content)
}

func TestBlogStore_ListWithHugeLimit(t *testing.T) {
	store := NewBlogStore()
	ctx := context.Background()
	for i := 0; i < 3; i++ {
		require.NoError(t, store.Insert(ctx, &models.Blog{Title: fmt.Sprintf("b%d", i)}))
	}

	page, total, err := store.List(ctx, repositories.ListBlogsOptions{Skip: 1, Limit: math.MaxInt64})
	require.NoError(t, err)
	assert.EqualValues(t, 3, total)
	assert.Len(t, page, 2)
}

func TestBlogStore_UpdateKeepsOwnerAndCreatedAt(t *testing.T) {
	store := NewBlogStore().WithClock(fixedClock(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)))
	ctx := context.Background()
	owner := primitive.NewObjectID()

	b := &models.Blog{Title: "t", CreatedBy: owner}
	require.NoError(t, store.Insert(ctx, b))
	created := b.CreatedAt

	patch := *b
	patch.Title = "new"
	patch.CreatedBy = primitive.NewObjectID()
	require.NoError(t, store.Update(ctx, &patch))

	got, err := store.FindByID(ctx, b.ID)
	require.NoError(t, err)
	assert.Equal(t, "new", got.Title)
	assert.Equal(t, owner, got.CreatedBy)
	assert.Equal(t, created, got.CreatedAt)
	assert.True(t, got.UpdatedAt.After(created))
}

func TestBlogStore_UpdateAndDeleteMissing(t *testing.T) {
	store := NewBlogStore()
	ctx := context.Background()

	err := store.Update(ctx, &models.Blog{ID: primitive.NewObjectID()})
	assert.ErrorIs(t, err, repositories.ErrNotFound)

	err = store.Delete(ctx, primitive.NewObjectID())
	assert.ErrorIs(t, err, repositories.ErrNotFound)
}

func TestBlogStore_DeleteIsPermanent(t *testing.T) {
	store := NewBlogStore()
	ctx := context.Background()

	b := &models.Blog{Title: "t"}
	require.NoError(t, store.Insert(ctx, b))
	require.NoError(t, store.Delete(ctx, b.ID))

	_, err := store.FindByID(ctx, b.ID)
	assert.ErrorIs(t, err, repositories.ErrNotFound)
	assert.Equal(t, 0, store.Len())
}

func TestUserStore_FindByIDs(t *testing.T) {
	store := NewUserStore()
	ctx := context.Background()
	alice := store.Add(models.User{Username: "alice", Email: "alice@example.com"})

	found, err := store.FindByIDs(ctx, []primitive.ObjectID{alice.ID, primitive.NewObjectID()})
	require.NoError(t, err)
	assert.Len(t, found, 1)
	assert.Equal(t, "alice", found[alice.ID].Username)

	_, err = store.FindByID(ctx, primitive.NewObjectID())
	assert.ErrorIs(t, err, repositories.ErrNotFound)
}
