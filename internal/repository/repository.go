package repository

// Package repository contains data access layer abstractions.
// Implementations live in subpackages (e.g., postgres) inside this directory.

import (
	"context"

	"portfolioapi/internal/model"
)

// ContentReader reads published content for the public API.
// Singleton lookups return sql.ErrNoRows when no row exists.
// List methods return only published rows in display order.
type ContentReader interface {
	GetProfile(ctx context.Context) (*model.Profile, error)
	GetSiteText(ctx context.Context, key model.SiteTextKey) (*model.SiteText, error)

	ListStats(ctx context.Context) ([]model.HighlightStat, error)
	ListStory(ctx context.Context) ([]model.StoryItem, error)
	// ListExperience returns items with their highlights attached.
	ListExperience(ctx context.Context) ([]model.ExperienceItem, error)
	ListEducation(ctx context.Context) ([]model.EducationItem, error)
	ListPrograms(ctx context.Context) ([]model.ProgramItem, error)
	// ListSkills orders by category, then sort order.
	ListSkills(ctx context.Context) ([]model.SkillItem, error)
	ListPublications(ctx context.Context) ([]model.PublicationItem, error)
	ListIdeas(ctx context.Context) ([]model.IdeaItem, error)
	// ListMedia orders by section, then sort order.
	ListMedia(ctx context.Context) ([]model.MediaAsset, error)
	ListBlogs(ctx context.Context, filter BlogFilter) ([]model.BlogItem, error)
}

// ContentWriter persists content rows. Used by the seeding tool; the admin
// interface writes to the same tables directly.
type ContentWriter interface {
	UpsertProfile(ctx context.Context, p *model.Profile) error
	UpsertSiteText(ctx context.Context, t *model.SiteText) error

	CreateStat(ctx context.Context, s *model.HighlightStat) error
	CreateStory(ctx context.Context, s *model.StoryItem) error
	// CreateExperience inserts the item, then each of its highlights.
	CreateExperience(ctx context.Context, e *model.ExperienceItem) error
	CreateEducation(ctx context.Context, e *model.EducationItem) error
	CreateProgram(ctx context.Context, p *model.ProgramItem) error
	CreateSkill(ctx context.Context, s *model.SkillItem) error
	CreatePublication(ctx context.Context, p *model.PublicationItem) error
	CreateIdea(ctx context.Context, i *model.IdeaItem) error
	CreateMedia(ctx context.Context, m *model.MediaAsset) error
	CreateBlog(ctx context.Context, b *model.BlogItem) error

	// Reset deletes every content row. Contact messages are kept.
	Reset(ctx context.Context) error
}

// ContactRepository appends contact messages.
type ContactRepository interface {
	// Create inserts the message and returns it with the store-assigned ID and ReceivedAt.
	Create(ctx context.Context, msg *model.ContactMessage) (*model.ContactMessage, error)
}

// BlogFilter narrows ListBlogs. A zero Category matches every category.
type BlogFilter struct {
	Category model.BlogCategory
}
