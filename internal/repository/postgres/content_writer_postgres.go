package postgres

import (
	"context"
	"fmt"

	"portfolioapi/internal/model"
)

// UpsertProfile writes the single profile row; the last writer wins. An empty
// hero_image or cv_document keeps the stored attachment.
func (r *ContentPostgres) UpsertProfile(ctx context.Context, p *model.Profile) error {
	const q = `
		INSERT INTO site_profile (id, name, title, location, email, phone, nationality, current_focus,
		                          summary, resume_text, passion_text, collaboration_blurb, hero_image,
		                          cv_document, updated_at)
		VALUES (1, $1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, now())
		ON CONFLICT (id) DO UPDATE SET
			name = EXCLUDED.name,
			title = EXCLUDED.title,
			location = EXCLUDED.location,
			email = EXCLUDED.email,
			phone = EXCLUDED.phone,
			nationality = EXCLUDED.nationality,
			current_focus = EXCLUDED.current_focus,
			summary = EXCLUDED.summary,
			resume_text = EXCLUDED.resume_text,
			passion_text = EXCLUDED.passion_text,
			collaboration_blurb = EXCLUDED.collaboration_blurb,
			hero_image = COALESCE(NULLIF(EXCLUDED.hero_image, ''), site_profile.hero_image),
			cv_document = COALESCE(NULLIF(EXCLUDED.cv_document, ''), site_profile.cv_document),
			updated_at = now()
		RETURNING updated_at
	`
	return r.db.QueryRowContext(ctx, q,
		p.Name,
		p.Title,
		p.Location,
		p.Email,
		p.Phone,
		p.Nationality,
		p.CurrentFocus,
		p.Summary,
		p.ResumeText,
		p.PassionText,
		p.CollaborationBlurb,
		p.HeroImage,
		p.CVDocument,
	).Scan(&p.UpdatedAt)
}

// UpsertSiteText writes the text block under its key; the last writer wins.
func (r *ContentPostgres) UpsertSiteText(ctx context.Context, t *model.SiteText) error {
	const q = `
		INSERT INTO site_texts (key, title, content, updated_at)
		VALUES ($1, $2, $3, now())
		ON CONFLICT (key) DO UPDATE SET
			title = EXCLUDED.title,
			content = EXCLUDED.content,
			updated_at = now()
		RETURNING updated_at
	`
	return r.db.QueryRowContext(ctx, q, string(t.Key), t.Title, t.Content).Scan(&t.UpdatedAt)
}

func (r *ContentPostgres) CreateStat(ctx context.Context, s *model.HighlightStat) (err error) {
	const q = `
		INSERT INTO highlight_stats (is_published, sort_order, label, value)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`
	s.ID, err = insertID(ctx, r.db, q, s.IsPublished, s.SortOrder, s.Label, s.Value)
	return err
}

func (r *ContentPostgres) CreateStory(ctx context.Context, s *model.StoryItem) (err error) {
	const q = `
		INSERT INTO story_items (is_published, sort_order, year, title, detail)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`
	s.ID, err = insertID(ctx, r.db, q, s.IsPublished, s.SortOrder, s.Year, s.Title, s.Detail)
	return err
}

// CreateExperience inserts the item and then each highlight as separate statements.
func (r *ContentPostgres) CreateExperience(ctx context.Context, e *model.ExperienceItem) error {
	const qItem = `
		INSERT INTO experience_items (is_published, sort_order, role, organization, period, location, description)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`
	id, err := insertID(ctx, r.db, qItem, e.IsPublished, e.SortOrder, e.Role, e.Organization, e.Period, e.Location, e.Description)
	if err != nil {
		return err
	}
	e.ID = id

	const qHighlight = `
		INSERT INTO experience_highlights (experience_id, sort_order, text)
		VALUES ($1, $2, $3)
		RETURNING id
	`
	for i := range e.Highlights {
		h := &e.Highlights[i]
		h.ExperienceID = id
		if h.ID, err = insertID(ctx, r.db, qHighlight, id, h.SortOrder, h.Text); err != nil {
			return fmt.Errorf("insert highlight %d: %w", i, err)
		}
	}
	return nil
}

func (r *ContentPostgres) CreateEducation(ctx context.Context, e *model.EducationItem) (err error) {
	const q = `
		INSERT INTO education_items (is_published, sort_order, degree, field, institution, year)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`
	e.ID, err = insertID(ctx, r.db, q, e.IsPublished, e.SortOrder, e.Degree, e.Field, e.Institution, e.Year)
	return err
}

func (r *ContentPostgres) CreateProgram(ctx context.Context, p *model.ProgramItem) (err error) {
	const q = `
		INSERT INTO program_items (is_published, sort_order, title, organization, period)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`
	p.ID, err = insertID(ctx, r.db, q, p.IsPublished, p.SortOrder, p.Title, p.Organization, p.Period)
	return err
}

func (r *ContentPostgres) CreateSkill(ctx context.Context, s *model.SkillItem) (err error) {
	const q = `
		INSERT INTO skill_items (is_published, sort_order, category, label)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`
	s.ID, err = insertID(ctx, r.db, q, s.IsPublished, s.SortOrder, string(s.Category), s.Label)
	return err
}

func (r *ContentPostgres) CreatePublication(ctx context.Context, p *model.PublicationItem) (err error) {
	const q = `
		INSERT INTO publication_items (is_published, sort_order, title, year, item_type, status, summary,
		                               external_url, document, cover_image)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id
	`
	p.ID, err = insertID(ctx, r.db, q, p.IsPublished, p.SortOrder, p.Title, p.Year, p.ItemType, p.Status,
		p.Summary, p.ExternalURL, p.Document, p.CoverImage)
	return err
}

func (r *ContentPostgres) CreateIdea(ctx context.Context, i *model.IdeaItem) (err error) {
	const q = `
		INSERT INTO idea_items (is_published, sort_order, title, stage, summary, impact,
		                        external_url, document, cover_image)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id
	`
	i.ID, err = insertID(ctx, r.db, q, i.IsPublished, i.SortOrder, i.Title, i.Stage, i.Summary, i.Impact,
		i.ExternalURL, i.Document, i.CoverImage)
	return err
}

func (r *ContentPostgres) CreateMedia(ctx context.Context, m *model.MediaAsset) (err error) {
	const q = `
		INSERT INTO media_assets (is_published, sort_order, title, caption, asset_type, section, file)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`
	m.ID, err = insertID(ctx, r.db, q, m.IsPublished, m.SortOrder, m.Title, m.Caption,
		string(m.AssetType), string(m.Section), m.File)
	return err
}

func (r *ContentPostgres) CreateBlog(ctx context.Context, b *model.BlogItem) (err error) {
	const q = `
		INSERT INTO blog_items (is_published, sort_order, category, title, summary, content, external_url, published_on)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id
	`
	var published any
	if b.PublishedOn != nil {
		published = *b.PublishedOn
	}
	b.ID, err = insertID(ctx, r.db, q, b.IsPublished, b.SortOrder, string(b.Category), b.Title, b.Summary,
		b.Content, b.ExternalURL, published)
	return err
}

// resetTables lists content tables in delete order; highlights go with their parents.
var resetTables = []string{
	"blog_items",
	"site_texts",
	"experience_items",
	"story_items",
	"education_items",
	"program_items",
	"skill_items",
	"publication_items",
	"idea_items",
	"highlight_stats",
	"media_assets",
	"site_profile",
}

// Reset deletes all content rows, one statement per table.
func (r *ContentPostgres) Reset(ctx context.Context) error {
	for _, table := range resetTables {
		if _, err := r.db.ExecContext(ctx, "DELETE FROM "+table); err != nil {
			return fmt.Errorf("reset %s: %w", table, err)
		}
	}
	return nil
}
