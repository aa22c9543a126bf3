package model

import "time"

// Content entities are pure data schemas with no persistence or admin-UI bindings.
// Ordered entities embed Placement; only published rows reach the public API.

// Placement carries the cross-cutting publish flag and ordering key.
type Placement struct {
	IsPublished bool `json:"is_published"`
	SortOrder   int  `json:"sort_order"`
}

// Profile is the single site profile row. File fields hold storage keys; empty means absent.
type Profile struct {
	Name               string    `json:"name"`
	Title              string    `json:"title"`
	Location           string    `json:"location"`
	Email              string    `json:"email"`
	Phone              string    `json:"phone"`
	Nationality        string    `json:"nationality"`
	CurrentFocus       string    `json:"current_focus"`
	Summary            string    `json:"summary"`
	ResumeText         string    `json:"resume_text"`
	PassionText        string    `json:"passion_text"`
	CollaborationBlurb string    `json:"collaboration_blurb"`
	HeroImage          string    `json:"hero_image"`
	CVDocument         string    `json:"cv_document"`
	UpdatedAt          time.Time `json:"updated_at"`
}

// SiteTextKey names an editable long-form text block.
type SiteTextKey string

const (
	SiteTextResume  SiteTextKey = "resume"
	SiteTextPassion SiteTextKey = "passion"
)

// SiteText is a keyed long-form text block (resume, passion).
type SiteText struct {
	Key       SiteTextKey `json:"key"`
	Title     string      `json:"title"`
	Content   string      `json:"content"`
	UpdatedAt time.Time   `json:"updated_at"`
}

type HighlightStat struct {
	ID int64 `json:"id"`
	Placement
	Label string `json:"label"`
	Value string `json:"value"`
}

type StoryItem struct {
	ID int64 `json:"id"`
	Placement
	Year   string `json:"year"`
	Title  string `json:"title"`
	Detail string `json:"detail"`
}

// ExperienceItem owns its highlights; deleting the item deletes them.
type ExperienceItem struct {
	ID int64 `json:"id"`
	Placement
	Role         string                `json:"role"`
	Organization string                `json:"organization"`
	Period       string                `json:"period"`
	Location     string                `json:"location"`
	Description  string                `json:"description"`
	Highlights   []ExperienceHighlight `json:"highlights"`
}

type ExperienceHighlight struct {
	ID           int64  `json:"id"`
	ExperienceID int64  `json:"experience_id"`
	SortOrder    int    `json:"sort_order"`
	Text         string `json:"text"`
}

type EducationItem struct {
	ID int64 `json:"id"`
	Placement
	Degree      string `json:"degree"`
	Field       string `json:"field"`
	Institution string `json:"institution"`
	Year        string `json:"year"`
}

type ProgramItem struct {
	ID int64 `json:"id"`
	Placement
	Title        string `json:"title"`
	Organization string `json:"organization"`
	Period       string `json:"period"`
}

// SkillCategory partitions skills into the four public lists.
type SkillCategory string

const (
	SkillCore      SkillCategory = "core"
	SkillTechnical SkillCategory = "technical"
	SkillLanguage  SkillCategory = "language"
	SkillInterest  SkillCategory = "interest"
)

type SkillItem struct {
	ID int64 `json:"id"`
	Placement
	Category SkillCategory `json:"category"`
	Label    string        `json:"label"`
}

type PublicationItem struct {
	ID int64 `json:"id"`
	Placement
	Title       string `json:"title"`
	Year        string `json:"year"`
	ItemType    string `json:"item_type"`
	Status      string `json:"status"`
	Summary     string `json:"summary"`
	ExternalURL string `json:"external_url"`
	Document    string `json:"document"`
	CoverImage  string `json:"cover_image"`
}

type IdeaItem struct {
	ID int64 `json:"id"`
	Placement
	Title       string `json:"title"`
	Stage       string `json:"stage"`
	Summary     string `json:"summary"`
	Impact      string `json:"impact"`
	ExternalURL string `json:"external_url"`
	Document    string `json:"document"`
	CoverImage  string `json:"cover_image"`
}

type AssetType string

const (
	AssetImage    AssetType = "image"
	AssetDocument AssetType = "document"
)

// MediaSection is a coarse placement tag grouping assets for page regions.
type MediaSection string

const (
	SectionGeneral  MediaSection = "general"
	SectionHome     MediaSection = "home"
	SectionStory    MediaSection = "story"
	SectionWork     MediaSection = "work"
	SectionResearch MediaSection = "research"
	SectionLibrary  MediaSection = "library"
)

// MediaSections lists every section in display order.
var MediaSections = []MediaSection{
	SectionGeneral, SectionHome, SectionStory, SectionWork, SectionResearch, SectionLibrary,
}

type MediaAsset struct {
	ID int64 `json:"id"`
	Placement
	Title     string       `json:"title"`
	Caption   string       `json:"caption"`
	AssetType AssetType    `json:"asset_type"`
	Section   MediaSection `json:"section"`
	File      string       `json:"file"`
}

type BlogCategory string

const (
	BlogNews     BlogCategory = "news"
	BlogArticles BlogCategory = "articles"
	BlogInsights BlogCategory = "insights"
)

// ParseBlogCategory validates a category name. The empty string is not a category.
func ParseBlogCategory(s string) (BlogCategory, bool) {
	switch c := BlogCategory(s); c {
	case BlogNews, BlogArticles, BlogInsights:
		return c, true
	}
	return "", false
}

type BlogItem struct {
	ID int64 `json:"id"`
	Placement
	Category    BlogCategory `json:"category"`
	Title       string       `json:"title"`
	Summary     string       `json:"summary"`
	Content     string       `json:"content"`
	ExternalURL string       `json:"external_url"`
	PublishedOn *time.Time   `json:"published_on"`
}

// ContactMessage is append-only; ID and ReceivedAt are assigned by the store.
type ContactMessage struct {
	ID         int64     `json:"id"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Subject    string    `json:"subject"`
	Message    string    `json:"message"`
	ReceivedAt time.Time `json:"received_at"`
}
