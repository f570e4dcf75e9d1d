package database

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/rpupo63/portfolio-backend/errs"
	"github.com/rpupo63/portfolio-backend/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTagRepoFindAllWithCounts(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectQuery(q(`COUNT(pt.project_id) AS project_count`)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "project_count"}).
			AddRow(1, "go", 3).
			AddRow(2, "rust", 0))

	tags, err := NewTagRepo(db).FindAllWithCounts(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []models.TagWithCount{
		{ID: 1, Name: "go", ProjectCount: 3},
		{ID: 2, Name: "rust", ProjectCount: 0},
	}, tags)
}

func TestTagRepoAdd(t *testing.T) {
	t.Run("trims name", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectQuery(q(`INSERT INTO tags (name) VALUES ($1) RETURNING id, name`)).
			WithArgs("docker").
			WillReturnRows(sqlmock.NewRows([]string{"id", "name"}).AddRow(4, "docker"))

		tag := &models.Tag{Name: "  docker "}
		require.NoError(t, NewTagRepo(db).Add(context.Background(), tag))
		assert.Equal(t, models.Tag{ID: 4, Name: "docker"}, *tag)
	})

	t.Run("duplicate", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectQuery(q(`INSERT INTO tags`)).
			WillReturnError(errors.New(`ERROR: duplicate key value violates unique constraint "idx_tags_name" (SQLSTATE 23505)`))

		err := NewTagRepo(db).Add(context.Background(), &models.Tag{Name: "go"})
		assert.True(t, errs.IsAlreadyExists(err))
	})
}
