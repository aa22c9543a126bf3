package seed

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
)

// Payload mirrors the aggregated document shape so an export can be fed back in.
type Payload struct {
	Profile      ProfileEntry      `json:"profile"`
	Summary      string            `json:"summary"`
	ResumeText   *string           `json:"resume_text"`
	PassionText  *string           `json:"passion_text"`
	ContactBlurb string            `json:"contact_blurb"`
	Stats        []StatEntry       `json:"stats"`
	Story        []StoryEntry      `json:"story"`
	Experience   []ExperienceEntry `json:"experience"`
	Education    []EducationEntry  `json:"education"`
	Programs     []ProgramEntry    `json:"programs"`
	Competencies []string          `json:"competencies"`
	Technical    []string          `json:"technical"`
	Languages    []string          `json:"languages"`
	Interests    []string          `json:"interests"`
	Publications []WorkEntry       `json:"publications"`
	Ideas        []IdeaEntry       `json:"ideas"`
	Blogs        BlogGroups        `json:"blogs"`
	Media        []MediaEntry      `json:"media"`
}

type ProfileEntry struct {
	Name               string  `json:"name"`
	Title              string  `json:"title"`
	Location           string  `json:"location"`
	Email              string  `json:"email"`
	Phone              string  `json:"phone"`
	Nationality        string  `json:"nationality"`
	CurrentFocus       string  `json:"current_focus"`
	ResumeText         *string `json:"resume_text"`
	PassionText        *string `json:"passion_text"`
	CollaborationBlurb string  `json:"collaboration_blurb"`
}

type StatEntry struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

type StoryEntry struct {
	Year   string `json:"year"`
	Title  string `json:"title"`
	Detail string `json:"detail"`
}

type ExperienceEntry struct {
	Role         string   `json:"role"`
	Organization string   `json:"organization"`
	Period       string   `json:"period"`
	Location     string   `json:"location"`
	Description  string   `json:"description"`
	Highlights   []string `json:"highlights"`
}

type EducationEntry struct {
	Degree      string `json:"degree"`
	Field       string `json:"field"`
	Institution string `json:"institution"`
	Year        string `json:"year"`
}

// ProgramEntry accepts either an object or a bare title string.
type ProgramEntry struct {
	Title        string `json:"title"`
	Organization string `json:"organization"`
	Period       string `json:"period"`
}

func (p *ProgramEntry) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) > 0 && b[0] == '{' {
		type plain ProgramEntry
		return json.Unmarshal(b, (*plain)(p))
	}
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	switch x := v.(type) {
	case nil:
		*p = ProgramEntry{}
	case string:
		*p = ProgramEntry{Title: x}
	default:
		*p = ProgramEntry{Title: string(b)}
	}
	return nil
}

type WorkEntry struct {
	Title   string `json:"title"`
	Year    string `json:"year"`
	Type    string `json:"type"`
	Status  string `json:"status"`
	Summary string `json:"summary"`
	URL     string `json:"url"`
}

type IdeaEntry struct {
	Title   string `json:"title"`
	Stage   string `json:"stage"`
	Summary string `json:"summary"`
	Impact  string `json:"impact"`
	URL     string `json:"url"`
}

type BlogEntry struct {
	Title       string `json:"title"`
	Summary     string `json:"summary"`
	Content     string `json:"content"`
	URL         string `json:"url"`
	PublishedOn string `json:"published_on"`
}

// BlogGroups ignores the aggregated "all" list; items are read per category.
type BlogGroups struct {
	News     []BlogEntry `json:"news"`
	Articles []BlogEntry `json:"articles"`
	Insights []BlogEntry `json:"insights"`
}

// MediaEntry points at a local file; Path is relative to the seed file's directory.
type MediaEntry struct {
	Title     string `json:"title"`
	Caption   string `json:"caption"`
	AssetType string `json:"asset_type"`
	Section   string `json:"section"`
	Path      string `json:"path"`
}

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// LoadFile reads a seed payload, tolerating a leading UTF-8 byte order mark.
func LoadFile(path string) (*Payload, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read seed file: %w", err)
	}
	var p Payload
	if err := json.Unmarshal(bytes.TrimPrefix(b, utf8BOM), &p); err != nil {
		return nil, fmt.Errorf("parse seed file %s: %w", path, err)
	}
	return &p, nil
}
