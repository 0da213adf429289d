package blog

import (
	"fmt"
	"time"
)

// Normalize builds a PostMetadata from decoded frontmatter and the originating
// file name. It never fails: missing or malformed optional fields degrade to
// their defaults.
func Normalize(fm Frontmatter, fileName string) PostMetadata {
	return PostMetadata{
		Title:       stringField(fm, "title"),
		Subtitle:    stringField(fm, "subtitle"),
		Date:        stringField(fm, "date"),
		Description: stringField(fm, "description"),
		ImageURL:    stringField(fm, "imageUrl"),
		ImageAlt:    stringField(fm, "imageAlt"),
		Tags:        tagsField(fm, "tags"),
		Slug:        Slug(fileName),
	}
}

func stringField(fm Frontmatter, key string) string {
	value, ok := fm[key]
	if !ok {
		return ""
	}
	return stringify(value)
}

func tagsField(fm Frontmatter, key string) []string {
	tags := []string{}

	switch value := fm[key].(type) {
	case []interface{}:
		for _, v := range value {
			if tag := stringify(v); tag != "" {
				tags = append(tags, tag)
			}
		}
	case []string:
		for _, tag := range value {
			if tag != "" {
				tags = append(tags, tag)
			}
		}
	case string:
		if value != "" {
			tags = append(tags, value)
		}
	}

	return tags
}

func stringify(value interface{}) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case time.Time:
		return formatDate(v)
	case bool, int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64, float32, float64:
		return fmt.Sprint(v)
	default:
		return ""
	}
}

// formatDate keeps date-only values in their short form.
func formatDate(t time.Time) string {
	if t.Hour() == 0 && t.Minute() == 0 && t.Second() == 0 && t.Nanosecond() == 0 {
		return t.Format(time.DateOnly)
	}
	return t.Format(time.RFC3339)
}
