package card

// ColorPair holds the utility classes used to draw a tag badge.
type ColorPair struct {
	Background string `json:"bgColor"`
	Text       string `json:"textColor"`
}

type TagBadge struct {
	Name string `json:"name"`
	ColorPair
}

// VariantStyle holds the classes of one card color scheme.
type VariantStyle struct {
	Container   string `json:"container"`
	Title       string `json:"title"`
	Subtitle    string `json:"subtitle"`
	Description string `json:"description"`
}

// Card is the display projection of a single post.
type Card struct {
	Href        string       `json:"href"`
	Slug        string       `json:"slug"`
	Title       string       `json:"title"`
	Subtitle    string       `json:"subtitle"`
	Description string       `json:"description"`
	Date        string       `json:"date"`
	ImageURL    string       `json:"imageUrl"`
	ImageAlt    string       `json:"imageAlt"`
	Tags        []TagBadge   `json:"tags"`
	Style       VariantStyle `json:"style"`
}

// Layout is the landing page arrangement: the newest post as a large card
// followed by the rest as small cards.
type Layout struct {
	Large *Card
	Small []Card
}
