// Package seed imports site content from a JSON file into the content store.
package seed

import (
	"context"
	"fmt"
	"mime"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"portfolioapi/internal/logging"
	"portfolioapi/internal/model"
	"portfolioapi/internal/repository"
	"portfolioapi/internal/service"
	"portfolioapi/internal/storage"
)

// DefaultStats are inserted when a reset seed carries no stats of its own.
var DefaultStats = []StatEntry{
	{Label: "15+ years", Value: "Leadership in public sector innovation"},
	{Label: "National programs", Value: "Startup and ecosystem coordination"},
	{Label: "Global exposure", Value: "China, United States, UK partnerships"},
}

// Options configures a seed run.
type Options struct {
	// Reset clears all content and inserts every list from the payload.
	Reset bool
	// BaseDir resolves relative media paths, usually the seed file's directory.
	BaseDir string
}

// Result counts what a seed run wrote.
type Result struct {
	Inserted int
	Uploaded int
}

type Seeder struct {
	writer repository.ContentWriter
	store  storage.Storage
	log    logging.Logger
}

func NewSeeder(writer repository.ContentWriter, store storage.Storage, log logging.Logger) *Seeder {
	return &Seeder{writer: writer, store: store, log: log.With("component", "seed")}
}

// Run upserts the profile. Site texts and lists are only written when opt.Reset is set,
// lists with sort_order equal to their position. The profile's stored attachments
// are never cleared by a seed.
func (s *Seeder) Run(ctx context.Context, p *Payload, opt Options) (*Result, error) {
	res := &Result{}

	if opt.Reset {
		if err := s.writer.Reset(ctx); err != nil {
			return nil, err
		}
		s.log.Info(ctx, "seed_reset")
	}

	profile := s.profile(p)
	if err := s.writer.UpsertProfile(ctx, profile); err != nil {
		return nil, fmt.Errorf("upsert profile: %w", err)
	}

	if !opt.Reset {
		s.log.Info(ctx, "seed_finished", "reset", false)
		return res, nil
	}

	texts := []*model.SiteText{
		{Key: model.SiteTextResume, Title: service.DefaultResumeTitle, Content: orDefault(profile.ResumeText, service.DefaultResumeText)},
		{Key: model.SiteTextPassion, Title: service.DefaultPassionTitle, Content: orDefault(profile.PassionText, service.DefaultPassionText)},
	}
	for _, t := range texts {
		if err := s.writer.UpsertSiteText(ctx, t); err != nil {
			return nil, fmt.Errorf("upsert site text %s: %w", t.Key, err)
		}
	}

	steps := []func(context.Context, *Payload, *Result) error{
		s.stats, s.story, s.experience, s.education, s.programs, s.skills, s.publications, s.ideas, s.blogs,
	}
	for _, step := range steps {
		if err := step(ctx, p, res); err != nil {
			return nil, err
		}
	}
	if err := s.media(ctx, p, opt.BaseDir, res); err != nil {
		return nil, err
	}

	s.log.Info(ctx, "seed_finished", "reset", true, "inserted", res.Inserted, "uploaded", res.Uploaded)
	return res, nil
}

func (s *Seeder) profile(p *Payload) *model.Profile {
	pe := p.Profile
	blurb := p.ContactBlurb
	if blurb == "" {
		blurb = pe.CollaborationBlurb
	}
	return &model.Profile{
		Name:               pe.Name,
		Title:              pe.Title,
		Location:           pe.Location,
		Email:              pe.Email,
		Phone:              pe.Phone,
		Nationality:        pe.Nationality,
		CurrentFocus:       pe.CurrentFocus,
		Summary:            p.Summary,
		ResumeText:         firstSet(p.ResumeText, pe.ResumeText, service.DefaultResumeText),
		PassionText:        firstSet(p.PassionText, pe.PassionText, service.DefaultPassionText),
		CollaborationBlurb: blurb,
	}
}

func (s *Seeder) stats(ctx context.Context, p *Payload, res *Result) error {
	stats := p.Stats
	if len(stats) == 0 {
		stats = DefaultStats
	}
	for i, it := range stats {
		if err := s.writer.CreateStat(ctx, &model.HighlightStat{
			Placement: placed(i), Label: it.Label, Value: it.Value,
		}); err != nil {
			return fmt.Errorf("create stat %d: %w", i, err)
		}
		res.Inserted++
	}
	return nil
}

func (s *Seeder) story(ctx context.Context, p *Payload, res *Result) error {
	for i, it := range p.Story {
		if err := s.writer.CreateStory(ctx, &model.StoryItem{
			Placement: placed(i), Year: it.Year, Title: it.Title, Detail: it.Detail,
		}); err != nil {
			return fmt.Errorf("create story %d: %w", i, err)
		}
		res.Inserted++
	}
	return nil
}

func (s *Seeder) experience(ctx context.Context, p *Payload, res *Result) error {
	for i, it := range p.Experience {
		item := &model.ExperienceItem{
			Placement:    placed(i),
			Role:         it.Role,
			Organization: it.Organization,
			Period:       it.Period,
			Location:     it.Location,
			Description:  it.Description,
		}
		for j, h := range it.Highlights {
			item.Highlights = append(item.Highlights, model.ExperienceHighlight{SortOrder: j, Text: h})
		}
		if err := s.writer.CreateExperience(ctx, item); err != nil {
			return fmt.Errorf("create experience %d: %w", i, err)
		}
		res.Inserted++
	}
	return nil
}

func (s *Seeder) education(ctx context.Context, p *Payload, res *Result) error {
	for i, it := range p.Education {
		if err := s.writer.CreateEducation(ctx, &model.EducationItem{
			Placement: placed(i), Degree: it.Degree, Field: it.Field, Institution: it.Institution, Year: it.Year,
		}); err != nil {
			return fmt.Errorf("create education %d: %w", i, err)
		}
		res.Inserted++
	}
	return nil
}

func (s *Seeder) programs(ctx context.Context, p *Payload, res *Result) error {
	for i, it := range p.Programs {
		if err := s.writer.CreateProgram(ctx, &model.ProgramItem{
			Placement: placed(i), Title: it.Title, Organization: it.Organization, Period: it.Period,
		}); err != nil {
			return fmt.Errorf("create program %d: %w", i, err)
		}
		res.Inserted++
	}
	return nil
}

func (s *Seeder) skills(ctx context.Context, p *Payload, res *Result) error {
	groups := []struct {
		category model.SkillCategory
		labels   []string
	}{
		{model.SkillCore, p.Competencies},
		{model.SkillTechnical, p.Technical},
		{model.SkillLanguage, p.Languages},
		{model.SkillInterest, p.Interests},
	}
	for _, g := range groups {
		for i, label := range g.labels {
			if err := s.writer.CreateSkill(ctx, &model.SkillItem{
				Placement: placed(i), Category: g.category, Label: label,
			}); err != nil {
				return fmt.Errorf("create %s skill %d: %w", g.category, i, err)
			}
			res.Inserted++
		}
	}
	return nil
}

func (s *Seeder) publications(ctx context.Context, p *Payload, res *Result) error {
	for i, it := range p.Publications {
		if err := s.writer.CreatePublication(ctx, &model.PublicationItem{
			Placement:   placed(i),
			Title:       it.Title,
			Year:        it.Year,
			ItemType:    it.Type,
			Status:      it.Status,
			Summary:     it.Summary,
			ExternalURL: it.URL,
		}); err != nil {
			return fmt.Errorf("create publication %d: %w", i, err)
		}
		res.Inserted++
	}
	return nil
}

func (s *Seeder) ideas(ctx context.Context, p *Payload, res *Result) error {
	for i, it := range p.Ideas {
		if err := s.writer.CreateIdea(ctx, &model.IdeaItem{
			Placement:   placed(i),
			Title:       it.Title,
			Stage:       it.Stage,
			Summary:     it.Summary,
			Impact:      it.Impact,
			ExternalURL: it.URL,
		}); err != nil {
			return fmt.Errorf("create idea %d: %w", i, err)
		}
		res.Inserted++
	}
	return nil
}

// blogs shares one running sort index across categories.
func (s *Seeder) blogs(ctx context.Context, p *Payload, res *Result) error {
	groups := []struct {
		category model.BlogCategory
		items    []BlogEntry
	}{
		{model.BlogNews, p.Blogs.News},
		{model.BlogArticles, p.Blogs.Articles},
		{model.BlogInsights, p.Blogs.Insights},
	}
	idx := 0
	for _, g := range groups {
		for _, it := range g.items {
			b := &model.BlogItem{
				Placement:   placed(idx),
				Category:    g.category,
				Title:       it.Title,
				Summary:     it.Summary,
				Content:     it.Content,
				ExternalURL: it.URL,
			}
			if it.PublishedOn != "" {
				d, err := time.Parse("2006-01-02", it.PublishedOn)
				if err != nil {
					return fmt.Errorf("blog %q: invalid published_on %q", it.Title, it.PublishedOn)
				}
				b.PublishedOn = &d
			}
			if err := s.writer.CreateBlog(ctx, b); err != nil {
				return fmt.Errorf("create blog %d: %w", idx, err)
			}
			idx++
			res.Inserted++
		}
	}
	return nil
}

// media uploads each file under assets/<basename> and records the asset.
func (s *Seeder) media(ctx context.Context, p *Payload, baseDir string, res *Result) error {
	for i, it := range p.Media {
		assetType := model.AssetType(strings.ToLower(it.AssetType))
		if assetType != model.AssetImage && assetType != model.AssetDocument {
			return fmt.Errorf("media %d: unknown asset_type %q", i, it.AssetType)
		}
		section := model.MediaSection(strings.ToLower(it.Section))
		if section == "" {
			section = model.SectionGeneral
		}
		if !validSection(section) {
			return fmt.Errorf("media %d: unknown section %q", i, it.Section)
		}

		key, err := s.upload(ctx, filepath.Join(baseDir, filepath.FromSlash(it.Path)))
		if err != nil {
			return fmt.Errorf("media %d: %w", i, err)
		}
		res.Uploaded++

		if err := s.writer.CreateMedia(ctx, &model.MediaAsset{
			Placement: placed(i),
			Title:     it.Title,
			Caption:   it.Caption,
			AssetType: assetType,
			Section:   section,
			File:      key,
		}); err != nil {
			return fmt.Errorf("create media %d: %w", i, err)
		}
		res.Inserted++
	}
	return nil
}

func (s *Seeder) upload(ctx context.Context, file string) (string, error) {
	f, err := os.Open(file)
	if err != nil {
		return "", fmt.Errorf("open media file: %w", err)
	}
	defer f.Close()

	st, err := f.Stat()
	if err != nil {
		return "", err
	}

	key := path.Join("assets", filepath.Base(file))
	_, err = s.store.Put(ctx, key, f, storage.PutObjectOptions{
		Size:        st.Size(),
		ContentType: mime.TypeByExtension(filepath.Ext(file)),
		Metadata:    map[string]string{"original-filename": filepath.Base(file)},
	})
	if err != nil {
		return "", fmt.Errorf("upload to storage: %w", err)
	}
	s.log.Info(ctx, "seed_media_uploaded", "key", key, "size", st.Size())
	return key, nil
}

func validSection(s model.MediaSection) bool {
	for _, v := range model.MediaSections {
		if v == s {
			return true
		}
	}
	return false
}

func placed(i int) model.Placement {
	return model.Placement{IsPublished: true, SortOrder: i}
}

func firstSet(a, b *string, def string) string {
	if a != nil {
		return *a
	}
	if b != nil {
		return *b
	}
	return def
}

func orDefault(s, def string) string {
	if strings.TrimSpace(s) == "" {
		return def
	}
	return s
}
