package site

import "github.com/kronos-guild/website/app/blog"

const (
	TabPosts      = "posts"
	TabComingSoon = "coming_soon"
)

type Config struct {
	Title            string        `yaml:"title"`
	Description      string        `yaml:"description"`
	PreviewImage     string        `yaml:"preview_image"`
	Hero             Hero          `yaml:"hero"`
	Footer           string        `yaml:"footer"`
	BlogTitle        string        `yaml:"blog_title"`
	Fonts            Fonts         `yaml:"fonts"`
	Tabs             []Tab         `yaml:"tabs"`
	PlaceholderImage string        `yaml:"placeholder_image"`
	CardVariant      string        `yaml:"card_variant"`
	Filters          []blog.Filter `yaml:"filters"` // Applied to every listing
}

type Hero struct {
	Headline  string `yaml:"headline"`
	Highlight string `yaml:"highlight"`
	Tagline   string `yaml:"tagline"`
	Logo      string `yaml:"logo"`
	LogoAlt   string `yaml:"logo_alt"`
	Clock     string `yaml:"clock"`
}

// Fonts are handed to page templates explicitly; nothing is registered globally.
type Fonts struct {
	Display Font `yaml:"display"`
	Accent  Font `yaml:"accent"`
}

type Font struct {
	Family string `yaml:"family"`
	File   string `yaml:"file"` // Relative to the static directory
	Weight string `yaml:"weight"`
}

type Tab struct {
	Name string `yaml:"name"`
	Kind string `yaml:"kind"`
}
