package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"portfolioapi/internal/asset"
	"portfolioapi/internal/model"
	"portfolioapi/internal/repository"
)

// ErrStorageUnavailable marks any failure to read from or write to the content store.
var ErrStorageUnavailable = errors.New("content store unavailable")

const (
	DefaultResumeTitle  = "Resume"
	DefaultPassionTitle = "Passion"

	DefaultResumeText = "A career spent building programs, teams, and partnerships. " +
		"The full resume is being updated; please use the contact form to request a copy."
	DefaultPassionText = "Helping founders, institutions, and communities turn ideas into lasting impact."
)

// ContentService defines the read-side use cases of the public site.
type ContentService interface {
	// Build aggregates every published record into one document. base is the
	// absolute origin used for file URLs; empty keeps storage URLs as they are.
	Build(ctx context.Context, base string) (*model.Document, error)

	// Blogs returns published blog items of one category, or all when category is empty.
	Blogs(ctx context.Context, category model.BlogCategory) ([]model.BlogView, error)
}

type contentService struct {
	repo     repository.ContentReader
	resolver *asset.Resolver
}

// NewContentService constructs a new ContentService.
func NewContentService(repo repository.ContentReader, resolver *asset.Resolver) ContentService {
	return &contentService{repo: repo, resolver: resolver}
}

func unavailable(what string, err error) error {
	return fmt.Errorf("%w: %s: %v", ErrStorageUnavailable, what, err)
}

func (s *contentService) Build(ctx context.Context, base string) (*model.Document, error) {
	profile, err := s.repo.GetProfile(ctx)
	if err != nil {
		if !errors.Is(err, sql.ErrNoRows) {
			return nil, unavailable("profile", err)
		}
		profile = nil
	}

	resume, err := s.siteText(ctx, model.SiteTextResume, profile, DefaultResumeTitle, DefaultResumeText)
	if err != nil {
		return nil, err
	}
	passion, err := s.siteText(ctx, model.SiteTextPassion, profile, DefaultPassionTitle, DefaultPassionText)
	if err != nil {
		return nil, err
	}

	blogs, err := s.repo.ListBlogs(ctx, repository.BlogFilter{})
	if err != nil {
		return nil, unavailable("blogs", err)
	}
	stats, err := s.repo.ListStats(ctx)
	if err != nil {
		return nil, unavailable("stats", err)
	}
	story, err := s.repo.ListStory(ctx)
	if err != nil {
		return nil, unavailable("story", err)
	}
	experience, err := s.repo.ListExperience(ctx)
	if err != nil {
		return nil, unavailable("experience", err)
	}
	education, err := s.repo.ListEducation(ctx)
	if err != nil {
		return nil, unavailable("education", err)
	}
	programs, err := s.repo.ListPrograms(ctx)
	if err != nil {
		return nil, unavailable("programs", err)
	}
	skills, err := s.repo.ListSkills(ctx)
	if err != nil {
		return nil, unavailable("skills", err)
	}
	publications, err := s.repo.ListPublications(ctx)
	if err != nil {
		return nil, unavailable("publications", err)
	}
	ideas, err := s.repo.ListIdeas(ctx)
	if err != nil {
		return nil, unavailable("ideas", err)
	}
	media, err := s.repo.ListMedia(ctx)
	if err != nil {
		return nil, unavailable("media", err)
	}

	doc := &model.Document{
		Resume:       resume,
		Passion:      passion,
		ResumeText:   resume.Content,
		PassionText:  passion.Content,
		Blogs:        groupBlogs(blogViews(blogs)),
		Stats:        make([]model.StatView, 0, len(stats)),
		Story:        make([]model.StoryView, 0, len(story)),
		Experience:   make([]model.ExperienceView, 0, len(experience)),
		Education:    make([]model.EducationView, 0, len(education)),
		Programs:     make([]model.ProgramView, 0, len(programs)),
		Competencies: []string{},
		Technical:    []string{},
		Languages:    []string{},
		Interests:    []string{},
		Publications: make([]model.PublicationView, 0, len(publications)),
		Ideas:        make([]model.IdeaView, 0, len(ideas)),
		Media:        groupMedia(s.mediaViews(ctx, base, media)),
	}

	doc.Profile = s.profileView(ctx, base, profile, doc.Media)
	if profile != nil {
		doc.Summary = profile.Summary
		doc.ContactBlurb = profile.CollaborationBlurb
	}

	for _, it := range stats {
		doc.Stats = append(doc.Stats, model.StatView{Label: it.Label, Value: it.Value})
	}
	for _, it := range story {
		doc.Story = append(doc.Story, model.StoryView{Year: it.Year, Title: it.Title, Detail: it.Detail})
	}
	for _, it := range experience {
		highlights := make([]string, 0, len(it.Highlights))
		for _, h := range it.Highlights {
			highlights = append(highlights, h.Text)
		}
		doc.Experience = append(doc.Experience, model.ExperienceView{
			Role:         it.Role,
			Organization: it.Organization,
			Period:       it.Period,
			Location:     it.Location,
			Description:  it.Description,
			Highlights:   highlights,
		})
	}
	for _, it := range education {
		doc.Education = append(doc.Education, model.EducationView{
			Degree:      it.Degree,
			Field:       it.Field,
			Institution: it.Institution,
			Year:        it.Year,
		})
	}
	for _, it := range programs {
		doc.Programs = append(doc.Programs, model.ProgramView{Title: it.Title, Organization: it.Organization, Period: it.Period})
	}
	for _, it := range skills {
		switch it.Category {
		case model.SkillCore:
			doc.Competencies = append(doc.Competencies, it.Label)
		case model.SkillTechnical:
			doc.Technical = append(doc.Technical, it.Label)
		case model.SkillLanguage:
			doc.Languages = append(doc.Languages, it.Label)
		case model.SkillInterest:
			doc.Interests = append(doc.Interests, it.Label)
		}
	}
	for _, it := range publications {
		doc.Publications = append(doc.Publications, model.PublicationView{
			Title:       it.Title,
			Year:        it.Year,
			Type:        it.ItemType,
			Status:      it.Status,
			Summary:     it.Summary,
			URL:         it.ExternalURL,
			DocumentURL: s.resolver.Resolve(ctx, base, it.Document, ""),
			ImageURL:    s.resolver.Resolve(ctx, base, it.CoverImage, ""),
		})
	}
	for _, it := range ideas {
		doc.Ideas = append(doc.Ideas, model.IdeaView{
			Title:       it.Title,
			Stage:       it.Stage,
			Summary:     it.Summary,
			Impact:      it.Impact,
			URL:         it.ExternalURL,
			DocumentURL: s.resolver.Resolve(ctx, base, it.Document, ""),
			ImageURL:    s.resolver.Resolve(ctx, base, it.CoverImage, ""),
		})
	}

	return doc, nil
}

func (s *contentService) Blogs(ctx context.Context, category model.BlogCategory) ([]model.BlogView, error) {
	items, err := s.repo.ListBlogs(ctx, repository.BlogFilter{Category: category})
	if err != nil {
		return nil, unavailable("blogs", err)
	}
	return blogViews(items), nil
}

// siteText picks the dedicated text row, then the same-named profile field, then def.
func (s *contentService) siteText(ctx context.Context, key model.SiteTextKey, p *model.Profile, title, def string) (model.TextBlock, error) {
	t, err := s.repo.GetSiteText(ctx, key)
	switch {
	case err == nil:
		if strings.TrimSpace(t.Title) != "" {
			title = t.Title
		}
		return model.TextBlock{Title: title, Content: t.Content}, nil
	case !errors.Is(err, sql.ErrNoRows):
		return model.TextBlock{}, unavailable("site text "+string(key), err)
	}

	content := def
	if p != nil {
		field := p.ResumeText
		if key == model.SiteTextPassion {
			field = p.PassionText
		}
		if strings.TrimSpace(field) != "" {
			content = field
		}
	}
	return model.TextBlock{Title: title, Content: content}, nil
}

// profileView renders the profile, preferring its own attachments over media fallbacks.
// Only the profile's own files carry the version token.
func (s *contentService) profileView(ctx context.Context, base string, p *model.Profile, media model.MediaGroups) model.ProfileView {
	var v model.ProfileView
	if p != nil {
		version := asset.VersionToken(p.UpdatedAt)
		v = model.ProfileView{
			Name:         p.Name,
			Title:        p.Title,
			Location:     p.Location,
			Email:        p.Email,
			Phone:        p.Phone,
			Nationality:  p.Nationality,
			CurrentFocus: p.CurrentFocus,
		}
		if p.HeroImage != "" {
			v.HeroImageURL = s.resolver.Resolve(ctx, base, p.HeroImage, version)
		}
		if p.CVDocument != "" {
			v.CVURL = s.resolver.Resolve(ctx, base, p.CVDocument, version)
		}
		if !p.UpdatedAt.IsZero() {
			v.UpdatedAt = p.UpdatedAt.Format(time.RFC3339)
		}
	}

	if p == nil || p.HeroImage == "" {
		v.HeroImageURL = firstURL(media.Home, model.AssetImage)
	}
	if p == nil || p.CVDocument == "" {
		v.CVURL = firstURL(media.Library, model.AssetDocument)
	}
	return v
}

func firstURL(items []model.MediaView, t model.AssetType) string {
	for _, it := range items {
		if it.AssetType == string(t) {
			return it.FileURL
		}
	}
	return ""
}

func (s *contentService) mediaViews(ctx context.Context, base string, items []model.MediaAsset) []model.MediaView {
	out := make([]model.MediaView, 0, len(items))
	for _, it := range items {
		out = append(out, model.MediaView{
			ID:        it.ID,
			Title:     it.Title,
			Caption:   it.Caption,
			AssetType: string(it.AssetType),
			Section:   string(it.Section),
			FileURL:   s.resolver.Resolve(ctx, base, it.File, ""),
		})
	}
	return out
}

func groupMedia(all []model.MediaView) model.MediaGroups {
	g := model.MediaGroups{
		All:       all,
		Images:    []model.MediaView{},
		Documents: []model.MediaView{},
		General:   []model.MediaView{},
		Home:      []model.MediaView{},
		Story:     []model.MediaView{},
		Work:      []model.MediaView{},
		Research:  []model.MediaView{},
		Library:   []model.MediaView{},
	}
	for _, it := range all {
		switch model.AssetType(it.AssetType) {
		case model.AssetImage:
			g.Images = append(g.Images, it)
		case model.AssetDocument:
			g.Documents = append(g.Documents, it)
		}
		switch model.MediaSection(it.Section) {
		case model.SectionGeneral:
			g.General = append(g.General, it)
		case model.SectionHome:
			g.Home = append(g.Home, it)
		case model.SectionStory:
			g.Story = append(g.Story, it)
		case model.SectionWork:
			g.Work = append(g.Work, it)
		case model.SectionResearch:
			g.Research = append(g.Research, it)
		case model.SectionLibrary:
			g.Library = append(g.Library, it)
		}
	}
	return g
}

func blogViews(items []model.BlogItem) []model.BlogView {
	out := make([]model.BlogView, 0, len(items))
	for _, it := range items {
		v := model.BlogView{
			ID:       it.ID,
			Category: string(it.Category),
			Title:    it.Title,
			Summary:  it.Summary,
			Content:  it.Content,
			URL:      it.ExternalURL,
		}
		if it.PublishedOn != nil {
			v.PublishedOn = it.PublishedOn.Format("2006-01-02")
		}
		out = append(out, v)
	}
	return out
}

func groupBlogs(all []model.BlogView) model.BlogGroups {
	g := model.BlogGroups{
		All:      all,
		News:     []model.BlogView{},
		Articles: []model.BlogView{},
		Insights: []model.BlogView{},
	}
	for _, it := range all {
		switch model.BlogCategory(it.Category) {
		case model.BlogNews:
			g.News = append(g.News, it)
		case model.BlogArticles:
			g.Articles = append(g.Articles, it)
		case model.BlogInsights:
			g.Insights = append(g.Insights, it)
		}
	}
	return g
}
