package feed

// Channel describes the feed itself. Links are absolute.
type Channel struct {
	Title       string
	Link        string // Site root, post links are built from it
	Description string
	SelfURL     string
	Language    string
	ImageURL    string
	Version     string
}
