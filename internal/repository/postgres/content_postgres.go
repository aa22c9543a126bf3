package postgres

import (
	"context"
	"database/sql"

	"portfolioapi/internal/model"
	"portfolioapi/internal/repository"
)

// ContentPostgres is a PostgreSQL implementation of repository.ContentReader and
// repository.ContentWriter. It uses database/sql with parameterized queries and
// contains no business logic.
type ContentPostgres struct {
	db *sql.DB
}

// NewContentPostgres creates a new ContentPostgres repository.
func NewContentPostgres(db *sql.DB) *ContentPostgres {
	return &ContentPostgres{db: db}
}

var (
	_ repository.ContentReader = (*ContentPostgres)(nil)
	_ repository.ContentWriter = (*ContentPostgres)(nil)
)

// GetProfile returns the single profile row, or sql.ErrNoRows.
func (r *ContentPostgres) GetProfile(ctx context.Context) (*model.Profile, error) {
	const q = `
		SELECT name, title, location, email, phone, nationality, current_focus, summary,
		       resume_text, passion_text, collaboration_blurb, hero_image, cv_document, updated_at
		FROM site_profile
		WHERE id = 1
	`
	var p model.Profile
	if err := r.db.QueryRowContext(ctx, q).Scan(
		&p.Name,
		&p.Title,
		&p.Location,
		&p.Email,
		&p.Phone,
		&p.Nationality,
		&p.CurrentFocus,
		&p.Summary,
		&p.ResumeText,
		&p.PassionText,
		&p.CollaborationBlurb,
		&p.HeroImage,
		&p.CVDocument,
		&p.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &p, nil
}

// GetSiteText returns the text block stored under key, or sql.ErrNoRows.
func (r *ContentPostgres) GetSiteText(ctx context.Context, key model.SiteTextKey) (*model.SiteText, error) {
	const q = `
		SELECT key, title, content, updated_at
		FROM site_texts
		WHERE key = $1
	`
	var t model.SiteText
	var k string
	if err := r.db.QueryRowContext(ctx, q, string(key)).Scan(&k, &t.Title, &t.Content, &t.UpdatedAt); err != nil {
		return nil, err
	}
	t.Key = model.SiteTextKey(k)
	return &t, nil
}

func (r *ContentPostgres) ListStats(ctx context.Context) ([]model.HighlightStat, error) {
	const q = `
		SELECT id, is_published, sort_order, label, value
		FROM highlight_stats
		WHERE is_published = TRUE
		ORDER BY sort_order, id
	`
	return queryAll(ctx, r.db, q, func(s scanner, it *model.HighlightStat) error {
		return s.Scan(&it.ID, &it.IsPublished, &it.SortOrder, &it.Label, &it.Value)
	})
}

func (r *ContentPostgres) ListStory(ctx context.Context) ([]model.StoryItem, error) {
	const q = `
		SELECT id, is_published, sort_order, year, title, detail
		FROM story_items
		WHERE is_published = TRUE
		ORDER BY sort_order, id
	`
	return queryAll(ctx, r.db, q, func(s scanner, it *model.StoryItem) error {
		return s.Scan(&it.ID, &it.IsPublished, &it.SortOrder, &it.Year, &it.Title, &it.Detail)
	})
}

// ListExperience loads published items, then attaches highlights in (sort_order, id) order.
func (r *ContentPostgres) ListExperience(ctx context.Context) ([]model.ExperienceItem, error) {
	const qItems = `
		SELECT id, is_published, sort_order, role, organization, period, location, description
		FROM experience_items
		WHERE is_published = TRUE
		ORDER BY sort_order, id
	`
	items, err := queryAll(ctx, r.db, qItems, func(s scanner, it *model.ExperienceItem) error {
		return s.Scan(&it.ID, &it.IsPublished, &it.SortOrder, &it.Role, &it.Organization, &it.Period, &it.Location, &it.Description)
	})
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return items, nil
	}

	const qHighlights = `
		SELECT h.id, h.experience_id, h.sort_order, h.text
		FROM experience_highlights h
		JOIN experience_items e ON e.id = h.experience_id
		WHERE e.is_published = TRUE
		ORDER BY h.experience_id, h.sort_order, h.id
	`
	highlights, err := queryAll(ctx, r.db, qHighlights, func(s scanner, h *model.ExperienceHighlight) error {
		return s.Scan(&h.ID, &h.ExperienceID, &h.SortOrder, &h.Text)
	})
	if err != nil {
		return nil, err
	}

	byParent := make(map[int64][]model.ExperienceHighlight, len(items))
	for _, h := range highlights {
		byParent[h.ExperienceID] = append(byParent[h.ExperienceID], h)
	}
	for i := range items {
		items[i].Highlights = byParent[items[i].ID]
		if items[i].Highlights == nil {
			items[i].Highlights = []model.ExperienceHighlight{}
		}
	}
	return items, nil
}

func (r *ContentPostgres) ListEducation(ctx context.Context) ([]model.EducationItem, error) {
	const q = `
		SELECT id, is_published, sort_order, degree, field, institution, year
		FROM education_items
		WHERE is_published = TRUE
		ORDER BY sort_order, id
	`
	return queryAll(ctx, r.db, q, func(s scanner, it *model.EducationItem) error {
		return s.Scan(&it.ID, &it.IsPublished, &it.SortOrder, &it.Degree, &it.Field, &it.Institution, &it.Year)
	})
}

func (r *ContentPostgres) ListPrograms(ctx context.Context) ([]model.ProgramItem, error) {
	const q = `
		SELECT id, is_published, sort_order, title, organization, period
		FROM program_items
		WHERE is_published = TRUE
		ORDER BY sort_order, id
	`
	return queryAll(ctx, r.db, q, func(s scanner, it *model.ProgramItem) error {
		return s.Scan(&it.ID, &it.IsPublished, &it.SortOrder, &it.Title, &it.Organization, &it.Period)
	})
}

func (r *ContentPostgres) ListSkills(ctx context.Context) ([]model.SkillItem, error) {
	const q = `
		SELECT id, is_published, sort_order, category, label
		FROM skill_items
		WHERE is_published = TRUE
		ORDER BY category, sort_order, id
	`
	return queryAll(ctx, r.db, q, func(s scanner, it *model.SkillItem) error {
		var category string
		if err := s.Scan(&it.ID, &it.IsPublished, &it.SortOrder, &category, &it.Label); err != nil {
			return err
		}
		it.Category = model.SkillCategory(category)
		return nil
	})
}

func (r *ContentPostgres) ListPublications(ctx context.Context) ([]model.PublicationItem, error) {
	const q = `
		SELECT id, is_published, sort_order, title, year, item_type, status, summary,
		       external_url, document, cover_image
		FROM publication_items
		WHERE is_published = TRUE
		ORDER BY sort_order, id
	`
	return queryAll(ctx, r.db, q, func(s scanner, it *model.PublicationItem) error {
		return s.Scan(&it.ID, &it.IsPublished, &it.SortOrder, &it.Title, &it.Year, &it.ItemType, &it.Status,
			&it.Summary, &it.ExternalURL, &it.Document, &it.CoverImage)
	})
}

func (r *ContentPostgres) ListIdeas(ctx context.Context) ([]model.IdeaItem, error) {
	const q = `
		SELECT id, is_published, sort_order, title, stage, summary, impact,
		       external_url, document, cover_image
		FROM idea_items
		WHERE is_published = TRUE
		ORDER BY sort_order, id
	`
	return queryAll(ctx, r.db, q, func(s scanner, it *model.IdeaItem) error {
		return s.Scan(&it.ID, &it.IsPublished, &it.SortOrder, &it.Title, &it.Stage, &it.Summary, &it.Impact,
			&it.ExternalURL, &it.Document, &it.CoverImage)
	})
}

func (r *ContentPostgres) ListMedia(ctx context.Context) ([]model.MediaAsset, error) {
	const q = `
		SELECT id, is_published, sort_order, title, caption, asset_type, section, file
		FROM media_assets
		WHERE is_published = TRUE
		ORDER BY section, sort_order, id
	`
	return queryAll(ctx, r.db, q, func(s scanner, it *model.MediaAsset) error {
		var assetType, section string
		if err := s.Scan(&it.ID, &it.IsPublished, &it.SortOrder, &it.Title, &it.Caption, &assetType, &section, &it.File); err != nil {
			return err
		}
		it.AssetType = model.AssetType(assetType)
		it.Section = model.MediaSection(section)
		return nil
	})
}

// ListBlogs returns published blog items, optionally restricted to one category.
func (r *ContentPostgres) ListBlogs(ctx context.Context, filter repository.BlogFilter) ([]model.BlogItem, error) {
	const q = `
		SELECT id, is_published, sort_order, category, title, summary, content, external_url, published_on
		FROM blog_items
		WHERE is_published = TRUE AND ($1::text = '' OR category = $1::text)
		ORDER BY category, sort_order, id
	`
	return queryAll(ctx, r.db, q, func(s scanner, it *model.BlogItem) error {
		var category string
		var published sql.NullTime
		if err := s.Scan(&it.ID, &it.IsPublished, &it.SortOrder, &category, &it.Title, &it.Summary,
			&it.Content, &it.ExternalURL, &published); err != nil {
			return err
		}
		it.Category = model.BlogCategory(category)
		if published.Valid {
			d := published.Time
			it.PublishedOn = &d
		}
		return nil
	}, string(filter.Category))
}
