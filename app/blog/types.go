package blog

import "errors"

var (
	ErrPostNotFound         = errors.New("post not found")
	ErrMalformedFrontmatter = errors.New("malformed frontmatter")
)

// PostMetadata is the normalized representation of one post.
// Optional fields always hold a value after normalization, possibly empty.
type PostMetadata struct {
	Title       string   `json:"title"`
	Subtitle    string   `json:"subtitle"`
	Date        string   `json:"date"`
	Description string   `json:"description"`
	ImageURL    string   `json:"imageUrl"`
	ImageAlt    string   `json:"imageAlt"`
	Tags        []string `json:"tags"`
	Slug        string   `json:"slug"` // Derived from the file name
}

// Post is a single post with its markdown body, as needed by detail pages.
type Post struct {
	PostMetadata
	FileName string `json:"-"`
	Body     []byte `json:"-"`
}

// Frontmatter holds the decoded key/value block of a content file.
type Frontmatter map[string]interface{}

// Filter selects posts by a metadata field. Matching is case-insensitive.
type Filter struct {
	Field    string   `yaml:"field"`
	Includes []string `yaml:"includes"`
	Excludes []string `yaml:"excludes"`
}
