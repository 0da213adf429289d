package card

import (
	"testing"

	"github.com/kronos-guild/website/app/blog"
)

func TestNewMapperDefaults(t *testing.T) {
	m, err := NewMapper("", "")
	if err != nil {
		t.Fatal(err)
	}
	c := m.Map(blog.PostMetadata{Title: "Intro", Slug: "intro", Tags: []string{}})

	if c.ImageURL != DefaultPlaceholderImage {
		t.Errorf("Expected placeholder '%s', got '%s'", DefaultPlaceholderImage, c.ImageURL)
	}
	if c.Style != variantStyles["default"] {
		t.Errorf("Expected default variant style, got %+v", c.Style)
	}
}

func TestNewMapperUnknownVariant(t *testing.T) {
	if _, err := NewMapper("", "neon"); err == nil {
		t.Error("Expected error for unknown variant")
	}
}

func TestMapFallbacks(t *testing.T) {
	m, err := NewMapper("/img/fallback.png", "purple")
	if err != nil {
		t.Fatal(err)
	}

	c := m.Map(blog.PostMetadata{Title: "Intro", Slug: "intro", Tags: []string{"Rust", "anchor"}})

	if c.Href != "/blog/intro" {
		t.Errorf("Expected href '/blog/intro', got '%s'", c.Href)
	}
	if c.ImageURL != "/img/fallback.png" {
		t.Errorf("Expected fallback image, got '%s'", c.ImageURL)
	}
	if c.ImageAlt != "Intro" {
		t.Errorf("Expected alt text to fall back to title, got '%s'", c.ImageAlt)
	}
	if len(c.Tags) != 2 {
		t.Fatalf("Expected 2 tag badges, got %d", len(c.Tags))
	}
	if c.Tags[0].Name != "Rust" || c.Tags[0].Background != "bg-indigo-400/30" {
		t.Errorf("Expected Rust badge with indigo background, got %+v", c.Tags[0])
	}
	if c.Tags[1].Name != "anchor" || c.Tags[1].ColorPair != TagColors("anchor") {
		t.Errorf("Expected anchor badge with hashed colors, got %+v", c.Tags[1])
	}
	if c.Style.Title != "text-purple-900 dark:text-purple-100" {
		t.Errorf("Expected purple title style, got '%s'", c.Style.Title)
	}
}

func TestMapEscapesSlug(t *testing.T) {
	m, err := NewMapper("", "")
	if err != nil {
		t.Fatal(err)
	}

	c := m.Map(blog.PostMetadata{Title: "Spaced", Slug: "my post"})
	if c.Href != "/blog/my%20post" {
		t.Errorf("Expected href '/blog/my%%20post', got '%s'", c.Href)
	}
	if c.Slug != "my post" {
		t.Errorf("Expected raw slug 'my post', got '%s'", c.Slug)
	}
}

func TestMapKeepsProvidedImage(t *testing.T) {
	m, _ := NewMapper("", "")
	meta := blog.PostMetadata{Title: "T", Slug: "t", ImageURL: "/a.png", ImageAlt: "A", Tags: []string{}}

	c := m.Map(meta)

	if c.ImageURL != "/a.png" || c.ImageAlt != "A" {
		t.Errorf("Expected provided image fields, got '%s' / '%s'", c.ImageURL, c.ImageAlt)
	}
	if meta.ImageURL != "/a.png" {
		t.Error("Expected input metadata to be unchanged")
	}
}

func TestLayout(t *testing.T) {
	m, _ := NewMapper("", "")
	posts := []blog.PostMetadata{
		{Title: "Newest", Slug: "newest"},
		{Title: "Middle", Slug: "middle"},
		{Title: "Oldest", Slug: "oldest"},
	}

	layout := m.Layout(posts)

	if layout.Large == nil || layout.Large.Slug != "newest" {
		t.Fatalf("Expected large card 'newest', got %+v", layout.Large)
	}
	if len(layout.Small) != 2 || layout.Small[0].Slug != "middle" || layout.Small[1].Slug != "oldest" {
		t.Errorf("Expected small cards [middle oldest], got %+v", layout.Small)
	}
}

func TestLayoutEmpty(t *testing.T) {
	m, _ := NewMapper("", "")

	layout := m.Layout(nil)

	if layout.Large != nil {
		t.Errorf("Expected no large card, got %+v", layout.Large)
	}
	if len(layout.Small) != 0 {
		t.Errorf("Expected no small cards, got %d", len(layout.Small))
	}
}
