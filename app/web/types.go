package web

import (
	"context"
	"html/template"

	"github.com/kronos-guild/website/app/blog"
	"github.com/kronos-guild/website/app/card"
	"github.com/kronos-guild/website/app/feed"
	"github.com/kronos-guild/website/app/render"
	"github.com/kronos-guild/website/app/site"
)

type PostRepository interface {
	List(ctx context.Context) ([]blog.PostMetadata, error)
	Get(ctx context.Context, slug string) (*blog.Post, error)
}

type BodyRenderer interface {
	Render(body []byte) (template.HTML, error)
}

type FeedGenerator interface {
	Run(channel feed.Channel, posts []blog.PostMetadata) (string, error)
}

var (
	_ PostRepository = (*blog.Repository)(nil)
	_ BodyRenderer   = (*render.Renderer)(nil)
	_ FeedGenerator  = (*feed.Generator)(nil)
)

type Handler struct {
	posts     PostRepository
	renderer  BodyRenderer
	generator FeedGenerator
	filterer  *blog.Filterer
	mapper    *card.Mapper
	site      *site.Config
	channel   feed.Channel
}

// tabView is one landing page tab with its resolved content.
type tabView struct {
	Name   string
	Href   string
	Active bool
	Posts  bool
	Layout card.Layout
}
