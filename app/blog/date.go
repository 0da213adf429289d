package blog

import (
	"slices"
	"strings"
	"time"

	"github.com/araddon/dateparse"
)

// ParseDate interprets a frontmatter date string as a point in time.
func ParseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}

	t, err := dateparse.ParseIn(s, time.Local)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

type datedPost struct {
	meta  PostMetadata
	date  time.Time
	valid bool
}

// SortByDate orders posts most recent first. Posts whose date is empty or
// unparseable come after all dated posts. Ties keep their input order.
func SortByDate(posts []PostMetadata) {
	dated := make([]datedPost, len(posts))
	for i, p := range posts {
		t, ok := ParseDate(p.Date)
		dated[i] = datedPost{meta: p, date: t, valid: ok}
	}

	slices.SortStableFunc(dated, func(a, b datedPost) int {
		switch {
		case a.valid && b.valid:
			return b.date.Compare(a.date)
		case a.valid:
			return -1
		case b.valid:
			return 1
		default:
			return 0
		}
	})

	for i := range dated {
		posts[i] = dated[i].meta
	}
}
