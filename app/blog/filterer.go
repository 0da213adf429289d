package blog

import (
	"fmt"
	"log/slog"
	"strings"
)

var filterFields = map[string]bool{
	"title":       true,
	"subtitle":    true,
	"description": true,
	"tags":        true,
}

type Filterer struct{}

func NewFilterer() *Filterer {
	return &Filterer{}
}

// Run returns the posts that pass every filter, preserving order.
func (f *Filterer) Run(posts []PostMetadata, filters []Filter) []PostMetadata {
	if len(filters) == 0 {
		return posts
	}

	kept := make([]PostMetadata, 0, len(posts))
	for _, post := range posts {
		if excluded, reason := f.applyFilters(post, filters); excluded {
			slog.Debug("Post filtered out", "slug", post.Slug, "reason", reason)
			continue
		}
		kept = append(kept, post)
	}

	return kept
}

// ValidateFilters rejects unknown fields and filters without rules.
func ValidateFilters(filters []Filter) error {
	for i, filter := range filters {
		if !filterFields[filter.Field] {
			return fmt.Errorf("invalid filter field at index %d: %s", i, filter.Field)
		}
		if len(filter.Includes) == 0 && len(filter.Excludes) == 0 {
			return fmt.Errorf("filter at index %d must have at least one include or exclude rule", i)
		}
	}
	return nil
}

func (f *Filterer) applyFilters(post PostMetadata, filters []Filter) (bool, string) {
	for _, filter := range filters {
		for _, exclude := range filter.Excludes {
			if f.matches(post, filter.Field, exclude) {
				return true, fmt.Sprintf("Excluded by %s filter: matches '%s'", filter.Field, exclude)
			}
		}

		if len(filter.Includes) > 0 {
			matched := false
			for _, include := range filter.Includes {
				if f.matches(post, filter.Field, include) {
					matched = true
					break
				}
			}
			if !matched {
				return true, fmt.Sprintf("Excluded by %s filter: does not match any of %v", filter.Field, filter.Includes)
			}
		}
	}

	return false, ""
}

// Tags match whole tags; text fields match substrings.
func (f *Filterer) matches(post PostMetadata, field, pattern string) bool {
	if field == "tags" {
		for _, tag := range post.Tags {
			if strings.EqualFold(tag, pattern) {
				return true
			}
		}
		return false
	}
	return strings.Contains(strings.ToLower(f.getFieldValue(post, field)), strings.ToLower(pattern))
}

func (f *Filterer) getFieldValue(post PostMetadata, field string) string {
	switch field {
	case "title":
		return post.Title
	case "subtitle":
		return post.Subtitle
	case "description":
		return post.Description
	default:
		return ""
	}
}
