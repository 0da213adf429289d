package blog

import (
	"reflect"
	"testing"
	"time"
)

func TestNormalizeFillsDefaults(t *testing.T) {
	meta := Normalize(Frontmatter{"title": "Intro"}, "intro.md")

	if meta.Title != "Intro" {
		t.Errorf("Expected title 'Intro', got '%s'", meta.Title)
	}
	if meta.Slug != "intro" {
		t.Errorf("Expected slug 'intro', got '%s'", meta.Slug)
	}
	for name, value := range map[string]string{
		"subtitle":    meta.Subtitle,
		"date":        meta.Date,
		"description": meta.Description,
		"imageUrl":    meta.ImageURL,
		"imageAlt":    meta.ImageAlt,
	} {
		if value != "" {
			t.Errorf("Expected empty %s, got '%s'", name, value)
		}
	}
	if meta.Tags == nil || len(meta.Tags) != 0 {
		t.Errorf("Expected empty non-nil tags, got %v", meta.Tags)
	}
}

func TestNormalizeCopiesFields(t *testing.T) {
	fm := Frontmatter{
		"title":       "Anchor Basics",
		"subtitle":    "Accounts and PDAs",
		"date":        "2024-03-01",
		"description": "A walk through Anchor",
		"imageUrl":    "/images/anchor.png",
		"imageAlt":    "Anchor logo",
		"tags":        []interface{}{"Rust", "Solana", 2024},
	}

	meta := Normalize(fm, "anchor-basics.mdx")

	expected := PostMetadata{
		Title:       "Anchor Basics",
		Subtitle:    "Accounts and PDAs",
		Date:        "2024-03-01",
		Description: "A walk through Anchor",
		ImageURL:    "/images/anchor.png",
		ImageAlt:    "Anchor logo",
		Tags:        []string{"Rust", "Solana", "2024"},
		Slug:        "anchor-basics",
	}
	if !reflect.DeepEqual(meta, expected) {
		t.Errorf("Expected %+v, got %+v", expected, meta)
	}
}

func TestNormalizeScalarTag(t *testing.T) {
	meta := Normalize(Frontmatter{"tags": "general"}, "post.md")

	if len(meta.Tags) != 1 || meta.Tags[0] != "general" {
		t.Errorf("Expected tags [general], got %v", meta.Tags)
	}
}

func TestNormalizeIgnoresUnsupportedValues(t *testing.T) {
	meta := Normalize(Frontmatter{
		"title":    map[string]interface{}{"nested": true},
		"subtitle": nil,
		"tags":     42,
	}, "odd.md")

	if meta.Title != "" || meta.Subtitle != "" {
		t.Errorf("Expected empty title and subtitle, got '%s' and '%s'", meta.Title, meta.Subtitle)
	}
	if meta.Tags == nil || len(meta.Tags) != 0 {
		t.Errorf("Expected empty tags, got %v", meta.Tags)
	}
}

func TestNormalizeTimeDate(t *testing.T) {
	dateOnly := Normalize(Frontmatter{"date": time.Date(2024, 6, 20, 0, 0, 0, 0, time.UTC)}, "a.md")
	if dateOnly.Date != "2024-06-20" {
		t.Errorf("Expected date '2024-06-20', got '%s'", dateOnly.Date)
	}

	withTime := Normalize(Frontmatter{"date": time.Date(2024, 6, 20, 14, 30, 0, 0, time.UTC)}, "b.md")
	if withTime.Date != "2024-06-20T14:30:00Z" {
		t.Errorf("Expected date '2024-06-20T14:30:00Z', got '%s'", withTime.Date)
	}
}

func TestNormalizeIsIdempotent(t *testing.T) {
	first := Normalize(Frontmatter{
		"title": "Intro",
		"date":  "2024-01-15",
		"tags":  []interface{}{"beginner"},
	}, "intro.mdx")

	projected := Frontmatter{
		"title":       first.Title,
		"subtitle":    first.Subtitle,
		"date":        first.Date,
		"description": first.Description,
		"imageUrl":    first.ImageURL,
		"imageAlt":    first.ImageAlt,
		"tags":        first.Tags,
	}
	second := Normalize(projected, "intro.mdx")

	if !reflect.DeepEqual(first, second) {
		t.Errorf("Expected idempotent normalization, got %+v then %+v", first, second)
	}
}
