package database

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/rpupo63/portfolio-backend/errs"
	"github.com/rpupo63/portfolio-backend/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	postSummaryCols = []string{"id", "title", "slug", "published", "created_at", "updated_at"}
	postCols        = []string{"id", "title", "content", "slug", "published", "created_at", "updated_at"}
)

func TestPostRepoLists(t *testing.T) {
	now := time.Now().UTC()

	t.Run("published only", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectQuery(q(`FROM posts WHERE published = $1 ORDER BY created_at DESC`)).
			WithArgs(true).
			WillReturnRows(sqlmock.NewRows(postSummaryCols).AddRow(1, "Hello", "hello", true, now, now))

		posts, err := NewPostRepo(db).FindPublished(context.Background())
		require.NoError(t, err)
		require.Len(t, posts, 1)
		assert.Equal(t, "hello", posts[0].Slug)
	})

	t.Run("all posts include drafts", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectQuery(q(`SELECT id, title, slug, published, created_at, updated_at FROM posts ORDER BY created_at DESC`)).
			WillReturnRows(sqlmock.NewRows(postSummaryCols).
				AddRow(2, "Draft", "draft", false, now, now).
				AddRow(1, "Hello", "hello", true, now, now))

		posts, err := NewPostRepo(db).FindAll(context.Background())
		require.NoError(t, err)
		assert.Len(t, posts, 2)
		assert.False(t, posts[0].Published)
	})
}

func TestPostRepoFindPublishedBySlug(t *testing.T) {
	now := time.Now().UTC()

	t.Run("found", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectQuery(q(`WHERE slug = $1 AND published = $2`)).
			WithArgs("hello-world", true).
			WillReturnRows(sqlmock.NewRows(postCols).AddRow(1, "Hello World", "body", "hello-world", true, now, now))

		post, err := NewPostRepo(db).FindPublishedBySlug(context.Background(), "hello-world")
		require.NoError(t, err)
		assert.Equal(t, "body", post.Content)
	})

	t.Run("draft or missing", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectQuery(q(`ORDER BY created_at DESC`)).
			WithArgs("draft", true).
			WillReturnRows(sqlmock.NewRows(postCols))

		_, err := NewPostRepo(db).FindPublishedBySlug(context.Background(), "draft")
		assert.True(t, errs.IsNotFound(err))
	})
}

func TestPostRepoAdd(t *testing.T) {
	now := time.Now().UTC()

	tests := []struct {
		name string
		post models.Post
		slug string
	}{
		{"derived slug", models.Post{Title: "Hello World", Content: "x"}, "hello-world"},
		{"explicit slug", models.Post{Title: "Hello World", Content: "x", Slug: "custom"}, "custom"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock := newMockDB(t)
			mock.ExpectQuery(q(`INSERT INTO posts (title, content, slug, published)`) + `[\s\S]*` + q(`RETURNING `+postColumns)).
				WithArgs(tt.post.Title, tt.post.Content, tt.slug, false).
				WillReturnRows(sqlmock.NewRows(postCols).AddRow(8, tt.post.Title, tt.post.Content, tt.slug, false, now, now))

			post := tt.post
			require.NoError(t, NewPostRepo(db).Add(context.Background(), &post))
			assert.Equal(t, int64(8), post.ID)
			assert.Equal(t, tt.post.Title, post.Title)
			assert.Equal(t, tt.slug, post.Slug)
		})
	}
}

func TestPostRepoUpdate(t *testing.T) {
	later := time.Now().UTC()

	t.Run("refreshes updated_at", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectQuery(q(`updated_at = CURRENT_TIMESTAMP`) + `[\s\S]*` + q(`RETURNING `+postColumns)).
			WithArgs("New Title", "new body", "new-title", true, int64(1)).
			WillReturnRows(sqlmock.NewRows(postCols).AddRow(1, "New Title", "new body", "new-title", true, later.Add(-time.Hour), later))

		post := &models.Post{ID: 1, Title: "New Title", Content: "new body", Published: true}
		require.NoError(t, NewPostRepo(db).Update(context.Background(), post))
		assert.Equal(t, int64(1), post.ID)
		assert.Equal(t, "New Title", post.Title)
		assert.Equal(t, "new-title", post.Slug)
		assert.Equal(t, later, post.UpdatedAt)
	})

	t.Run("missing", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectQuery(q(`UPDATE posts`)).
			WillReturnRows(sqlmock.NewRows(postCols))

		err := NewPostRepo(db).Update(context.Background(), &models.Post{ID: 9, Title: "t", Content: "c"})
		assert.True(t, errs.IsNotFound(err))
	})
}

func TestPostRepoDelete(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectExec(q(`DELETE FROM posts WHERE id = $1`)).
		WithArgs(int64(12)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := NewPostRepo(db).Delete(context.Background(), 12)
	assert.True(t, errs.IsNotFound(err))
}
