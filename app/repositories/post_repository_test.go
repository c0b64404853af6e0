package repositories

import (
	"fmt"
	"testing"

	"blogsite/app/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestPost(title string) *models.Post {
	return &models.Post{
		UserID:   1,
		Author:   "Admin",
		Title:    title,
		Subtitle: "A subtitle",
		Body:     "Body content long enough to validate",
		ImageURL: "https://example.com/cover.jpg",
	}
}

func TestPostCreateAndGet(t *testing.T) {
	db := setupTestDB(t)
	repo := NewBadgerPostRepository(db)

	post := newTestPost("First Post")
	require.NoError(t, repo.Create(post))
	assert.Equal(t, 1, post.ID)
	assert.NotEmpty(t, post.Date)

	got, err := repo.GetByID(post.ID)
	require.NoError(t, err)
	assert.Equal(t, "First Post", got.Title)
	assert.Equal(t, post.Date, got.Date)

	_, err = repo.GetByID(42)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestPostCreateRejectsDuplicateTitle(t *testing.T) {
	db := setupTestDB(t)
	repo := NewBadgerPostRepository(db)

	require.NoError(t, repo.Create(newTestPost("Unique Title")))

	err := repo.Create(newTestPost("Unique Title"))
	assert.ErrorIs(t, err, ErrDuplicateTitle)
}

func TestPostList(t *testing.T) {
	db := setupTestDB(t)
	repo := NewBadgerPostRepository(db)

	for i := 1; i <= 5; i++ {
		require.NoError(t, repo.Create(newTestPost(fmt.Sprintf("Post %d", i))))
	}

	posts, err := repo.List(10, 0)
	require.NoError(t, err)
	assert.Len(t, posts, 5)

	page, err := repo.List(2, 2)
	require.NoError(t, err)
	assert.Len(t, page, 2)
}

func TestPostUpdate(t *testing.T) {
	db := setupTestDB(t)
	repo := NewBadgerPostRepository(db)

	post := newTestPost("Before Edit")
	require.NoError(t, repo.Create(post))

	t.Run("update fields in place", func(t *testing.T) {
		post.Subtitle = "Edited subtitle"
		post.Body = "Edited body content long enough"
		require.NoError(t, repo.Update(post))

		got, err := repo.GetByID(post.ID)
		require.NoError(t, err)
		assert.Equal(t, "Edited subtitle", got.Subtitle)
		assert.Equal(t, post.ID, got.ID)
	})

	t.Run("title change re-indexes", func(t *testing.T) {
		post.Title = "After Edit"
		require.NoError(t, repo.Update(post))

		// Old title is released, new one is claimed
		require.NoError(t, repo.Create(newTestPost("Before Edit")))
		err := repo.Create(newTestPost("After Edit"))
		assert.ErrorIs(t, err, ErrDuplicateTitle)
	})

	t.Run("missing post", func(t *testing.T) {
		ghost := newTestPost("Ghost")
		ghost.ID = 404
		assert.ErrorIs(t, repo.Update(ghost), ErrNotFound)
	})
}

func TestPostDelete(t *testing.T) {
	db := setupTestDB(t)
	repo := NewBadgerPostRepository(db)

	post := newTestPost("Doomed Post")
	require.NoError(t, repo.Create(post))

	require.NoError(t, repo.Delete(post.ID))

	_, err := repo.GetByID(post.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	// Title index entry goes with the row
	require.NoError(t, repo.Create(newTestPost("Doomed Post")))

	assert.ErrorIs(t, repo.Delete(999), ErrNotFound)
}
