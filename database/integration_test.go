//go:build integration

package database

import (
	"context"
	"testing"
	"time"

	"github.com/rpupo63/portfolio-backend/errs"
	"github.com/rpupo63/portfolio-backend/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupPostgres(t *testing.T) *gorm.DB {
	t.Helper()
	ctx := context.Background()

	container, err := tcpostgres.Run(ctx,
		"postgres:16-alpine",
		tcpostgres.WithDatabase("portfolio"),
		tcpostgres.WithUsername("postgres"),
		tcpostgres.WithPassword("postgres"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2),
		),
	)
	require.NoError(t, err)
	t.Cleanup(func() {
		if err := container.Terminate(context.Background()); err != nil {
			t.Logf("failed to terminate container: %s", err)
		}
	})

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)
	require.NoError(t, Migrate(db))
	return db
}

func truncate(t *testing.T, db *gorm.DB) {
	t.Helper()
	for _, table := range []string{"project_tags", "projects", "tags", "posts", "contact_messages"} {
		require.NoError(t, db.Exec("TRUNCATE "+table+" RESTART IDENTITY CASCADE").Error)
	}
}

func countRows(t *testing.T, db *gorm.DB, table string) int64 {
	t.Helper()
	var n int64
	require.NoError(t, db.Table(table).Count(&n).Error)
	return n
}

func TestIntegration(t *testing.T) {
	db := setupPostgres(t)
	store := New(db)
	ctx := context.Background()

	addTag := func(t *testing.T, name string) models.Tag {
		tag := models.Tag{Name: name}
		require.NoError(t, store.TagRepo().Add(ctx, &tag))
		return tag
	}

	t.Run("project without tags has empty tag list", func(t *testing.T) {
		truncate(t, db)
		project := &models.Project{Title: "Portfolio", TechStack: "Go"}
		require.NoError(t, store.ProjectRepo().Add(ctx, project, nil))
		assert.NotZero(t, project.ID)
		assert.Equal(t, "Portfolio", project.Title)
		assert.Equal(t, "Go", project.TechStack)
		assert.False(t, project.CreatedAt.IsZero())

		detail, err := store.ProjectRepo().FindByID(ctx, project.ID)
		require.NoError(t, err)
		assert.Equal(t, "Portfolio", detail.Title)
		assert.Equal(t, []models.Tag{}, detail.Tags)
	})

	t.Run("tag set round trips regardless of order", func(t *testing.T) {
		truncate(t, db)
		goTag, pgTag, awsTag := addTag(t, "go"), addTag(t, "postgres"), addTag(t, "aws")

		project := &models.Project{Title: "API"}
		require.NoError(t, store.ProjectRepo().Add(ctx, project, []int64{pgTag.ID, awsTag.ID, goTag.ID}))

		detail, err := store.ProjectRepo().FindByID(ctx, project.ID)
		require.NoError(t, err)
		assert.ElementsMatch(t, []models.Tag{goTag, pgTag, awsTag}, detail.Tags)

		counts, err := store.TagRepo().FindAllWithCounts(ctx)
		require.NoError(t, err)
		assert.Len(t, counts, 3)
		for _, c := range counts {
			assert.Equal(t, int64(1), c.ProjectCount)
		}
	})

	t.Run("project update replaces tag set", func(t *testing.T) {
		truncate(t, db)
		goTag, pgTag, awsTag := addTag(t, "go"), addTag(t, "postgres"), addTag(t, "aws")
		project := &models.Project{Title: "API"}
		require.NoError(t, store.ProjectRepo().Add(ctx, project, []int64{goTag.ID, pgTag.ID}))
		created := project.CreatedAt

		updated := &models.Project{ID: project.ID, Title: "API v2", Featured: true}
		require.NoError(t, store.ProjectRepo().Update(ctx, updated, []int64{awsTag.ID}))
		assert.Equal(t, project.ID, updated.ID)
		assert.Equal(t, "API v2", updated.Title)
		assert.True(t, created.Equal(updated.CreatedAt))

		detail, err := store.ProjectRepo().FindByID(ctx, project.ID)
		require.NoError(t, err)
		assert.Equal(t, "API v2", detail.Title)
		assert.Equal(t, []models.Tag{awsTag}, detail.Tags)

		require.NoError(t, store.ProjectRepo().Update(ctx, &models.Project{ID: project.ID, Title: "API v3"}, nil))
		detail, err = store.ProjectRepo().FindByID(ctx, project.ID)
		require.NoError(t, err)
		assert.Equal(t, []models.Tag{awsTag}, detail.Tags)
	})

	t.Run("unknown tag rolls back project insert", func(t *testing.T) {
		truncate(t, db)
		err := store.ProjectRepo().Add(ctx, &models.Project{Title: "Ghost"}, []int64{999})
		assert.True(t, errs.IsForeignKeyConstraintError(err))
		assert.Zero(t, countRows(t, db, "projects"))
	})

	t.Run("featured projects are a subset", func(t *testing.T) {
		truncate(t, db)
		for i, featured := range []bool{true, false, true} {
			p := &models.Project{Title: "p" + string(rune('a'+i)), Featured: featured}
			require.NoError(t, store.ProjectRepo().Add(ctx, p, nil))
		}

		all, err := store.ProjectRepo().FindAll(ctx, false)
		require.NoError(t, err)
		featured, err := store.ProjectRepo().FindAll(ctx, true)
		require.NoError(t, err)

		assert.Len(t, all, 3)
		assert.Len(t, featured, 2)
		ids := map[int64]bool{}
		for _, p := range all {
			ids[p.ID] = true
		}
		for _, p := range featured {
			assert.True(t, p.Featured)
			assert.True(t, ids[p.ID])
		}
	})

	t.Run("deleting a project cascades links", func(t *testing.T) {
		truncate(t, db)
		tag := addTag(t, "go")
		project := &models.Project{Title: "Gone"}
		require.NoError(t, store.ProjectRepo().Add(ctx, project, []int64{tag.ID}))

		require.NoError(t, store.ProjectRepo().Delete(ctx, project.ID))
		assert.Zero(t, countRows(t, db, "project_tags"))
	})

	t.Run("deleting a missing project leaves rows unchanged", func(t *testing.T) {
		truncate(t, db)
		require.NoError(t, store.ProjectRepo().Add(ctx, &models.Project{Title: "Keep"}, nil))

		err := store.ProjectRepo().Delete(ctx, 424242)
		assert.True(t, errs.IsNotFound(err))
		assert.Equal(t, int64(1), countRows(t, db, "projects"))
	})

	t.Run("unpublished post is hidden by slug", func(t *testing.T) {
		truncate(t, db)
		draft := &models.Post{Title: "Secret Draft", Content: "wip"}
		require.NoError(t, store.PostRepo().Add(ctx, draft))
		assert.Equal(t, "Secret Draft", draft.Title)
		assert.Equal(t, "secret-draft", draft.Slug)

		_, err := store.PostRepo().FindPublishedBySlug(ctx, "secret-draft")
		assert.True(t, errs.IsNotFound(err))

		all, err := store.PostRepo().FindAll(ctx)
		require.NoError(t, err)
		require.Len(t, all, 1)
		assert.Equal(t, draft.ID, all[0].ID)

		published, err := store.PostRepo().FindPublished(ctx)
		require.NoError(t, err)
		assert.Empty(t, published)
	})

	t.Run("post update is visible by slug", func(t *testing.T) {
		truncate(t, db)
		post := &models.Post{Title: "First", Content: "v1", Published: true}
		require.NoError(t, store.PostRepo().Add(ctx, post))
		before := post.UpdatedAt

		time.Sleep(10 * time.Millisecond)
		updated := &models.Post{ID: post.ID, Title: "Second Take", Content: "v2", Published: true}
		require.NoError(t, store.PostRepo().Update(ctx, updated))

		got, err := store.PostRepo().FindPublishedBySlug(ctx, "second-take")
		require.NoError(t, err)
		assert.Equal(t, "Second Take", got.Title)
		assert.Equal(t, "v2", got.Content)
		assert.True(t, got.UpdatedAt.After(before))
	})

	t.Run("contact message persists one row", func(t *testing.T) {
		truncate(t, db)
		msg := &models.ContactMessage{Name: "Ada", Email: "ada@example.com", Message: "Hello"}
		require.NoError(t, store.ContactMessageRepo().Add(ctx, msg))
		assert.NotZero(t, msg.ID)
		assert.Equal(t, "Ada", msg.Name)
		assert.Equal(t, "ada@example.com", msg.Email)
		assert.Equal(t, "Hello", msg.Message)
		assert.Equal(t, int64(1), countRows(t, db, "contact_messages"))

		require.NoError(t, store.ContactMessageRepo().Delete(ctx, msg.ID))
		assert.True(t, errs.IsNotFound(store.ContactMessageRepo().Delete(ctx, msg.ID)))
	})

	t.Run("migrated schema has no drift", func(t *testing.T) {
		drift, err := SchemaDrift(ctx, db)
		require.NoError(t, err)
		assert.Empty(t, drift)
	})
}
