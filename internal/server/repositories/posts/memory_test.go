package posts

import (
	"context"
	"math"
	"testing"

	"github.com/dmitrijs2005/gophblog/internal/common"
	"github.com/dmitrijs2005/gophblog/internal/server/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seed(t *testing.T, repo *MemoryRepository, n int) {
	t.Helper()
	for i := 0; i < n; i++ {
		_, err := repo.Create(context.Background(), &models.Post{Title: "t", AuthorID: 1})
		require.NoError(t, err)
	}
}

func TestMemoryRepository_CRUD(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRepository()

	p, err := repo.Create(ctx, &models.Post{Title: "Hello", Content: "body", AuthorID: 7})
	require.NoError(t, err)
	assert.Equal(t, int64(1), p.ID)
	assert.Equal(t, p.CreatedAt, p.UpdatedAt)

	got, err := repo.GetByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, "Hello", got.Title)

	upd, err := repo.Update(ctx, &models.Post{ID: p.ID, Title: "Bye", Content: "new", AuthorID: 99})
	require.NoError(t, err)
	assert.Equal(t, "Bye", upd.Title)
	assert.Equal(t, int64(7), upd.AuthorID, "author never changes on update")

	_, err = repo.Update(ctx, &models.Post{ID: 42, Title: "x"})
	require.ErrorIs(t, err, common.ErrNotFound)

	require.NoError(t, repo.Delete(ctx, p.ID))
	require.ErrorIs(t, repo.Delete(ctx, p.ID), common.ErrNotFound)
	_, err = repo.GetByID(ctx, p.ID)
	require.ErrorIs(t, err, common.ErrNotFound)
}

func TestMemoryRepository_ListWindow(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRepository()
	seed(t, repo, 25)

	n, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, uint64(25), n)

	page, err := repo.List(ctx, 10, 20)
	require.NoError(t, err)
	require.Len(t, page, 5)
	assert.Equal(t, int64(21), page[0].ID)
	assert.Equal(t, int64(25), page[4].ID)

	page, err = repo.List(ctx, 10, 30)
	require.NoError(t, err)
	assert.NotNil(t, page)
	assert.Empty(t, page)

	page, err = repo.List(ctx, 0, 0)
	require.NoError(t, err)
	assert.Empty(t, page)
}

func TestMemoryRepository_ListHugeWindow(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRepository()
	seed(t, repo, 3)

	page, err := repo.List(ctx, math.MaxUint64, 1)
	require.NoError(t, err)
	require.Len(t, page, 2)
	assert.Equal(t, int64(2), page[0].ID)

	page, err = repo.List(ctx, math.MaxUint64, math.MaxUint64)
	require.NoError(t, err)
	assert.Empty(t, page)

	page, err = repo.List(ctx, 0, 1)
	require.NoError(t, err)
	assert.Empty(t, page)
}
