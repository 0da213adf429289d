package feed

import (
	"strings"
	"testing"
	"time"

	"github.com/kronos-guild/website/app/blog"
	"github.com/mmcdole/gofeed"
)

func testChannel() Channel {
	return Channel{
		Title:       "Kronos Guild Blog",
		Link:        "https://kronosguild.com",
		Description: "Learn. Create. Build.",
		SelfURL:     "https://kronosguild.com/rss.xml",
		Version:     "1.2.3",
	}
}

func TestGenerateRSS(t *testing.T) {
	generator := NewGenerator()

	posts := []blog.PostMetadata{
		{
			Title:       "Anchor Deep Dive",
			Slug:        "anchor-deep-dive",
			Date:        "2024-06-20",
			Description: "Accounts, PDAs and CPIs",
			Tags:        []string{"Rust", "Solana"},
			ImageURL:    "https://kronosguild.com/images/anchor.png",
		},
		{
			Title:    "Intro",
			Slug:     "intro",
			Date:     "2024-01-15",
			Subtitle: "Start here",
			Tags:     []string{},
		},
	}

	rss, err := generator.Run(testChannel(), posts)
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	if !strings.Contains(rss, `<?xml version="1.0" encoding="UTF-8"?>`) {
		t.Error("RSS should contain XML declaration")
	}

	if !strings.Contains(rss, `xmlns:atom="http://www.w3.org/2005/Atom"`) {
		t.Error("RSS should contain atom namespace")
	}

	if !strings.Contains(rss, `<atom:link href="https://kronosguild.com/rss.xml" rel="self" type="application/rss+xml" />`) {
		t.Error("RSS should contain atom:link self reference")
	}

	if !strings.Contains(rss, `<guid isPermaLink="true">https://kronosguild.com/blog/anchor-deep-dive</guid>`) {
		t.Error("RSS should contain permalink GUID")
	}

	if !strings.Contains(rss, "<category>Rust</category>") || !strings.Contains(rss, "<category>Solana</category>") {
		t.Error("RSS should contain tags as categories")
	}

	if !strings.Contains(rss, "<description>Start here</description>") {
		t.Error("RSS should fall back to the subtitle when there is no description")
	}

	if !strings.Contains(rss, `<enclosure url="https://kronosguild.com/images/anchor.png" length="0" type="image/png" />`) {
		t.Error("RSS should contain image enclosure")
	}

	if !strings.Contains(rss, "<generator>Kronos-Guild/1.2.3</generator>") {
		t.Error("RSS should contain generator with version")
	}
}

func TestGeneratedRSSParses(t *testing.T) {
	posts := []blog.PostMetadata{
		{Title: "Newest", Slug: "newest", Date: "2024-06-20", Tags: []string{"General"}},
		{Title: "Oldest", Slug: "oldest", Date: "2024-01-15", Tags: []string{}},
	}

	rss, err := NewGenerator().Run(testChannel(), posts)
	if err != nil {
		t.Fatal(err)
	}

	parsed, err := gofeed.NewParser().ParseString(rss)
	if err != nil {
		t.Fatalf("Expected generated RSS to parse, got: %v", err)
	}

	if parsed.FeedType != "rss" {
		t.Errorf("Expected feed type 'rss', got '%s'", parsed.FeedType)
	}
	if parsed.Title != "Kronos Guild Blog" {
		t.Errorf("Expected title 'Kronos Guild Blog', got '%s'", parsed.Title)
	}
	if len(parsed.Items) != 2 {
		t.Fatalf("Expected 2 items, got %d", len(parsed.Items))
	}
	if parsed.Items[0].Link != "https://kronosguild.com/blog/newest" {
		t.Errorf("Expected first item link to newest post, got '%s'", parsed.Items[0].Link)
	}
	if parsed.Items[0].PublishedParsed == nil {
		t.Fatal("Expected first item to have a parsed pubDate")
	}
	if got := parsed.Items[0].PublishedParsed.Format(time.DateOnly); got != "2024-06-20" {
		t.Errorf("Expected pubDate 2024-06-20, got %s", got)
	}
	if len(parsed.Items[0].Categories) != 1 || parsed.Items[0].Categories[0] != "General" {
		t.Errorf("Expected categories [General], got %v", parsed.Items[0].Categories)
	}
}

func TestGenerateWithUndatedPost(t *testing.T) {
	posts := []blog.PostMetadata{
		{Title: "Someday", Slug: "someday", Tags: []string{}},
	}

	rss, err := NewGenerator().Run(testChannel(), posts)
	if err != nil {
		t.Fatal(err)
	}

	itemStart := strings.Index(rss, "<item>")
	if itemStart == -1 {
		t.Fatal("Expected an item")
	}
	if strings.Contains(rss[itemStart:], "<pubDate>") {
		t.Error("Undated post should not have a pubDate")
	}
	if !strings.Contains(rss, "<lastBuildDate>") {
		t.Error("RSS should always contain lastBuildDate")
	}
}

func TestGenerateWithSpecialCharacters(t *testing.T) {
	channel := testChannel()
	channel.Title = "Guild <News> & \"Notes\""

	posts := []blog.PostMetadata{
		{
			Title:       "Item with <tags> & \"quotes\"",
			Slug:        "special",
			Description: "Description with <em>emphasis</em>",
			Tags:        []string{"Category & Ampersand"},
		},
	}

	rss, err := NewGenerator().Run(channel, posts)
	if err != nil {
		t.Fatal(err)
	}

	if !strings.Contains(rss, "Guild &lt;News&gt; &amp; &#34;Notes&#34;") {
		t.Error("Channel title should have escaped special characters")
	}
	if !strings.Contains(rss, "Item with &lt;tags&gt; &amp; &#34;quotes&#34;") {
		t.Error("Item title should have escaped special characters")
	}
	if !strings.Contains(rss, "Description with &lt;em&gt;emphasis&lt;/em&gt;") {
		t.Error("Item description should have escaped special characters")
	}
	if !strings.Contains(rss, "<category>Category &amp; Ampersand</category>") {
		t.Error("Category with ampersand should be escaped")
	}
}

func TestGenerateWithEmptyPosts(t *testing.T) {
	rss, err := NewGenerator().Run(testChannel(), []blog.PostMetadata{})
	if err != nil {
		t.Fatalf("Expected no error with empty posts, got: %v", err)
	}

	if strings.Contains(rss, "<item>") {
		t.Error("Empty RSS should not contain any items")
	}
	if !strings.Contains(rss, "</channel>") || !strings.Contains(rss, "</rss>") {
		t.Error("Empty RSS should be closed properly")
	}
}

func TestGenerateRequiresLink(t *testing.T) {
	if _, err := NewGenerator().Run(Channel{Title: "No link"}, nil); err == nil {
		t.Error("Expected error for channel without link")
	}
}

func TestIsURLMethod(t *testing.T) {
	generator := NewGenerator()

	tests := []struct {
		input    string
		expected bool
	}{
		{"", false},
		{"http://example.com", true},
		{"https://example.com", true},
		{"ftp://example.com", false},
		{"/placeholder.png", false},
		{"http://", false},
		{"https://", false},
	}

	for _, test := range tests {
		result := generator.isURL(test.input)
		if result != test.expected {
			t.Errorf("For input '%s', expected %v, got %v", test.input, test.expected, result)
		}
	}
}

func TestPostURL(t *testing.T) {
	if got := PostURL("https://kronosguild.com/", "intro"); got != "https://kronosguild.com/blog/intro" {
		t.Errorf("Expected 'https://kronosguild.com/blog/intro', got '%s'", got)
	}
	if got := PostURL("https://kronosguild.com", "my post"); got != "https://kronosguild.com/blog/my%20post" {
		t.Errorf("Expected escaped slug, got '%s'", got)
	}
}
