package model

// Document is the aggregated public site content served by /api/content and
// written by the static export. Every list is non-nil so it encodes as [].
type Document struct {
	Profile      ProfileView       `json:"profile"`
	Summary      string            `json:"summary"`
	ResumeText   string            `json:"resume_text"`
	PassionText  string            `json:"passion_text"`
	Resume       TextBlock         `json:"resume"`
	Passion      TextBlock         `json:"passion"`
	ContactBlurb string            `json:"contact_blurb"`
	Blogs        BlogGroups        `json:"blogs"`
	Stats        []StatView        `json:"stats"`
	Story        []StoryView       `json:"story"`
	Experience   []ExperienceView  `json:"experience"`
	Education    []EducationView   `json:"education"`
	Programs     []ProgramView     `json:"programs"`
	Competencies []string          `json:"competencies"`
	Technical    []string          `json:"technical"`
	Languages    []string          `json:"languages"`
	Interests    []string          `json:"interests"`
	Publications []PublicationView `json:"publications"`
	Ideas        []IdeaView        `json:"ideas"`
	Media        MediaGroups       `json:"media"`
}

type ProfileView struct {
	Name         string `json:"name"`
	Title        string `json:"title"`
	Location     string `json:"location"`
	Email        string `json:"email"`
	Phone        string `json:"phone"`
	Nationality  string `json:"nationality"`
	CurrentFocus string `json:"current_focus"`
	HeroImageURL string `json:"hero_image_url"`
	CVURL        string `json:"cv_url"`
	UpdatedAt    string `json:"updated_at"`
}

type TextBlock struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

type BlogView struct {
	ID          int64  `json:"id"`
	Category    string `json:"category"`
	Title       string `json:"title"`
	Summary     string `json:"summary"`
	Content     string `json:"content"`
	URL         string `json:"url"`
	PublishedOn string `json:"published_on"`
}

type BlogGroups struct {
	All      []BlogView `json:"all"`
	News     []BlogView `json:"news"`
	Articles []BlogView `json:"articles"`
	Insights []BlogView `json:"insights"`
}

type StatView struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

type StoryView struct {
	Year   string `json:"year"`
	Title  string `json:"title"`
	Detail string `json:"detail"`
}

type ExperienceView struct {
	Role         string   `json:"role"`
	Organization string   `json:"organization"`
	Period       string   `json:"period"`
	Location     string   `json:"location"`
	Description  string   `json:"description"`
	Highlights   []string `json:"highlights"`
}

type EducationView struct {
	Degree      string `json:"degree"`
	Field       string `json:"field"`
	Institution string `json:"institution"`
	Year        string `json:"year"`
}

type ProgramView struct {
	Title        string `json:"title"`
	Organization string `json:"organization"`
	Period       string `json:"period"`
}

type PublicationView struct {
	Title       string `json:"title"`
	Year        string `json:"year"`
	Type        string `json:"type"`
	Status      string `json:"status"`
	Summary     string `json:"summary"`
	URL         string `json:"url"`
	DocumentURL string `json:"document_url"`
	ImageURL    string `json:"image_url"`
}

type IdeaView struct {
	Title       string `json:"title"`
	Stage       string `json:"stage"`
	Summary     string `json:"summary"`
	Impact      string `json:"impact"`
	URL         string `json:"url"`
	DocumentURL string `json:"document_url"`
	ImageURL    string `json:"image_url"`
}

type MediaView struct {
	ID        int64  `json:"id"`
	Title     string `json:"title"`
	Caption   string `json:"caption"`
	AssetType string `json:"asset_type"`
	Section   string `json:"section"`
	FileURL   string `json:"file_url"`
}

// MediaGroups indexes the same serialized assets by type and by section.
type MediaGroups struct {
	All       []MediaView `json:"all"`
	Images    []MediaView `json:"images"`
	Documents []MediaView `json:"documents"`
	General   []MediaView `json:"general"`
	Home      []MediaView `json:"home"`
	Story     []MediaView `json:"story"`
	Work      []MediaView `json:"work"`
	Research  []MediaView `json:"research"`
	Library   []MediaView `json:"library"`
}
