package card

import (
	"fmt"
	"net/url"

	"github.com/kronos-guild/website/app/blog"
)

const (
	DefaultPlaceholderImage = "/placeholder.png"
	DefaultVariant          = "default"
)

var variantStyles = map[string]VariantStyle{
	"default": {
		Container:   "bg-neutral-100/15 border-neutral-100/10",
		Title:       "text-white",
		Subtitle:    "text-slate-300",
		Description: "text-slate-400",
	},
	"blue": {
		Container:   "bg-blue-100/20 dark:bg-blue-900/20 border-blue-200/30 dark:border-blue-800/30",
		Title:       "text-blue-900 dark:text-blue-100",
		Subtitle:    "text-blue-700 dark:text-blue-300",
		Description: "text-blue-600 dark:text-blue-400",
	},
	"green": {
		Container:   "bg-green-100/20 dark:bg-green-900/20 border-green-200/30 dark:border-green-800/30",
		Title:       "text-green-900 dark:text-green-100",
		Subtitle:    "text-green-700 dark:text-green-300",
		Description: "text-green-600 dark:text-green-400",
	},
	"purple": {
		Container:   "bg-purple-100/20 dark:bg-purple-900/20 border-purple-200/30 dark:border-purple-800/30",
		Title:       "text-purple-900 dark:text-purple-100",
		Subtitle:    "text-purple-700 dark:text-purple-300",
		Description: "text-purple-600 dark:text-purple-400",
	},
	"orange": {
		Container:   "bg-orange-100/20 dark:bg-orange-900/20 border-orange-200/30 dark:border-orange-800/30",
		Title:       "text-orange-900 dark:text-orange-100",
		Subtitle:    "text-orange-700 dark:text-orange-300",
		Description: "text-orange-600 dark:text-orange-400",
	},
	"gradient": {
		Container:   "bg-gradient-to-r from-indigo-100/20 to-purple-100/20 dark:from-indigo-900/20 dark:to-purple-900/20 border-indigo-200/30 dark:border-indigo-800/30",
		Title:       "text-indigo-900 dark:text-indigo-100",
		Subtitle:    "text-indigo-700 dark:text-indigo-300",
		Description: "text-indigo-600 dark:text-indigo-400",
	},
}

// IsVariant reports whether name is a known card color scheme.
func IsVariant(name string) bool {
	_, ok := variantStyles[name]
	return ok
}

// Mapper projects post metadata into cards.
type Mapper struct {
	placeholderImage string
	style            VariantStyle
}

func NewMapper(placeholderImage, variant string) (*Mapper, error) {
	if placeholderImage == "" {
		placeholderImage = DefaultPlaceholderImage
	}
	if variant == "" {
		variant = DefaultVariant
	}

	style, ok := variantStyles[variant]
	if !ok {
		return nil, fmt.Errorf("unknown card variant: %s", variant)
	}

	return &Mapper{
		placeholderImage: placeholderImage,
		style:            style,
	}, nil
}

// Map builds the card for one post. The input is not modified.
func (m *Mapper) Map(meta blog.PostMetadata) Card {
	imageURL := meta.ImageURL
	if imageURL == "" {
		imageURL = m.placeholderImage
	}
	imageAlt := meta.ImageAlt
	if imageAlt == "" {
		imageAlt = meta.Title
	}

	tags := make([]TagBadge, 0, len(meta.Tags))
	for _, tag := range meta.Tags {
		tags = append(tags, TagBadge{Name: tag, ColorPair: TagColors(tag)})
	}

	return Card{
		Href:        "/blog/" + url.PathEscape(meta.Slug),
		Slug:        meta.Slug,
		Title:       meta.Title,
		Subtitle:    meta.Subtitle,
		Description: meta.Description,
		Date:        meta.Date,
		ImageURL:    imageURL,
		ImageAlt:    imageAlt,
		Tags:        tags,
		Style:       m.style,
	}
}

func (m *Mapper) MapAll(posts []blog.PostMetadata) []Card {
	cards := make([]Card, 0, len(posts))
	for _, meta := range posts {
		cards = append(cards, m.Map(meta))
	}
	return cards
}

func (m *Mapper) Layout(posts []blog.PostMetadata) Layout {
	if len(posts) == 0 {
		return Layout{Small: []Card{}}
	}

	large := m.Map(posts[0])
	return Layout{
		Large: &large,
		Small: m.MapAll(posts[1:]),
	}
}
