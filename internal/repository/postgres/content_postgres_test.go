package postgres

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"portfolioapi/internal/model"
	"portfolioapi/internal/repository"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMock(t *testing.T) (*ContentPostgres, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	t.Cleanup(func() { db.Close() })
	return NewContentPostgres(db), mock
}

var profileColumns = []string{
	"name", "title", "location", "email", "phone", "nationality", "current_focus", "summary",
	"resume_text", "passion_text", "collaboration_blurb", "hero_image", "cv_document", "updated_at",
}

func TestContentPostgres_GetProfile(t *testing.T) {
	repo, mock := newMock(t)
	ctx := context.Background()

	t.Run("found", func(t *testing.T) {
		updated := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
		mock.ExpectQuery("SELECT (.+) FROM site_profile WHERE id = 1").
			WillReturnRows(sqlmock.NewRows(profileColumns).AddRow(
				"Jane Doe", "Engineer", "Nairobi", "jane@example.com", "", "", "", "Summary",
				"", "", "Blurb", "profile/images/me.jpg", "", updated,
			))

		p, err := repo.GetProfile(ctx)

		require.NoError(t, err)
		assert.Equal(t, "Jane Doe", p.Name)
		assert.Equal(t, "profile/images/me.jpg", p.HeroImage)
		assert.Equal(t, updated, p.UpdatedAt)
	})

	t.Run("not found", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM site_profile").WillReturnError(sql.ErrNoRows)

		p, err := repo.GetProfile(ctx)

		assert.ErrorIs(t, err, sql.ErrNoRows)
		assert.Nil(t, p)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestContentPostgres_GetSiteText(t *testing.T) {
	repo, mock := newMock(t)
	now := time.Now().UTC()

	mock.ExpectQuery("SELECT (.+) FROM site_texts WHERE key = ").
		WithArgs("resume").
		WillReturnRows(sqlmock.NewRows([]string{"key", "title", "content", "updated_at"}).
			AddRow("resume", "Resume", "Resume body", now))

	txt, err := repo.GetSiteText(context.Background(), model.SiteTextResume)

	require.NoError(t, err)
	assert.Equal(t, model.SiteTextResume, txt.Key)
	assert.Equal(t, "Resume body", txt.Content)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestContentPostgres_ListStory(t *testing.T) {
	repo, mock := newMock(t)

	mock.ExpectQuery("SELECT (.+) FROM story_items WHERE is_published = TRUE ORDER BY sort_order, id").
		WillReturnRows(sqlmock.NewRows([]string{"id", "is_published", "sort_order", "year", "title", "detail"}).
			AddRow(1, true, 0, "2013", "Start", "Began teaching").
			AddRow(2, true, 1, "2016", "Coordination", "Regional work"))

	items, err := repo.ListStory(context.Background())

	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "Start", items[0].Title)
	assert.True(t, items[1].IsPublished)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestContentPostgres_ListStats_Empty(t *testing.T) {
	repo, mock := newMock(t)

	mock.ExpectQuery("SELECT (.+) FROM highlight_stats").
		WillReturnRows(sqlmock.NewRows([]string{"id", "is_published", "sort_order", "label", "value"}))

	items, err := repo.ListStats(context.Background())

	require.NoError(t, err)
	assert.NotNil(t, items)
	assert.Empty(t, items)
}

func TestContentPostgres_ListExperience(t *testing.T) {
	repo, mock := newMock(t)

	mock.ExpectQuery("SELECT (.+) FROM experience_items WHERE is_published = TRUE").
		WillReturnRows(sqlmock.NewRows([]string{"id", "is_published", "sort_order", "role", "organization", "period", "location", "description"}).
			AddRow(10, true, 0, "Lead", "Ministry", "2021 - Present", "Addis Ababa", "").
			AddRow(11, true, 1, "Tutor", "Learning Centre", "2013 - 2014", "", ""))
	mock.ExpectQuery("SELECT (.+) FROM experience_highlights h JOIN experience_items e").
		WillReturnRows(sqlmock.NewRows([]string{"id", "experience_id", "sort_order", "text"}).
			AddRow(1, 10, 0, "Led national projects").
			AddRow(2, 10, 1, "Enabled 300 institutions"))

	items, err := repo.ListExperience(context.Background())

	require.NoError(t, err)
	require.Len(t, items, 2)
	require.Len(t, items[0].Highlights, 2)
	assert.Equal(t, "Led national projects", items[0].Highlights[0].Text)
	assert.NotNil(t, items[1].Highlights)
	assert.Empty(t, items[1].Highlights)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestContentPostgres_ListExperience_NoItemsSkipsHighlights(t *testing.T) {
	repo, mock := newMock(t)

	mock.ExpectQuery("SELECT (.+) FROM experience_items").
		WillReturnRows(sqlmock.NewRows([]string{"id", "is_published", "sort_order", "role", "organization", "period", "location", "description"}))

	items, err := repo.ListExperience(context.Background())

	require.NoError(t, err)
	assert.Empty(t, items)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestContentPostgres_ListSkills(t *testing.T) {
	repo, mock := newMock(t)

	mock.ExpectQuery("SELECT (.+) FROM skill_items WHERE is_published = TRUE ORDER BY category, sort_order, id").
		WillReturnRows(sqlmock.NewRows([]string{"id", "is_published", "sort_order", "category", "label"}).
			AddRow(1, true, 0, "core", "Policy").
			AddRow(2, true, 0, "language", "Amharic"))

	items, err := repo.ListSkills(context.Background())

	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, model.SkillCore, items[0].Category)
	assert.Equal(t, model.SkillLanguage, items[1].Category)
}

func TestContentPostgres_ListMedia(t *testing.T) {
	repo, mock := newMock(t)

	mock.ExpectQuery("SELECT (.+) FROM media_assets WHERE is_published = TRUE ORDER BY section, sort_order, id").
		WillReturnRows(sqlmock.NewRows([]string{"id", "is_published", "sort_order", "title", "caption", "asset_type", "section", "file"}).
			AddRow(3, true, 0, "Hero", "", "image", "home", "assets/hero.jpg"))

	items, err := repo.ListMedia(context.Background())

	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, model.AssetImage, items[0].AssetType)
	assert.Equal(t, model.SectionHome, items[0].Section)
}

func TestContentPostgres_ListBlogs(t *testing.T) {
	repo, mock := newMock(t)
	cols := []string{"id", "is_published", "sort_order", "category", "title", "summary", "content", "external_url", "published_on"}
	day := time.Date(2024, 3, 9, 0, 0, 0, 0, time.UTC)

	t.Run("filtered", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM blog_items").
			WithArgs("news").
			WillReturnRows(sqlmock.NewRows(cols).
				AddRow(1, true, 0, "news", "Launch", "", "", "", day).
				AddRow(2, true, 1, "news", "Undated", "", "", "", nil))

		items, err := repo.ListBlogs(context.Background(), repository.BlogFilter{Category: model.BlogNews})

		require.NoError(t, err)
		require.Len(t, items, 2)
		require.NotNil(t, items[0].PublishedOn)
		assert.Equal(t, day, *items[0].PublishedOn)
		assert.Nil(t, items[1].PublishedOn)
	})

	t.Run("all categories", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM blog_items").
			WithArgs("").
			WillReturnRows(sqlmock.NewRows(cols))

		items, err := repo.ListBlogs(context.Background(), repository.BlogFilter{})

		require.NoError(t, err)
		assert.Empty(t, items)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestContentPostgres_QueryError(t *testing.T) {
	repo, mock := newMock(t)
	boom := errors.New("connection refused")

	mock.ExpectQuery("SELECT (.+) FROM publication_items").WillReturnError(boom)

	items, err := repo.ListPublications(context.Background())

	assert.ErrorIs(t, err, boom)
	assert.Nil(t, items)
}
