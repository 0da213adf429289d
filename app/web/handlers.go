package web

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/kronos-guild/website/app/blog"
	"github.com/kronos-guild/website/app/card"
	"github.com/kronos-guild/website/app/feed"
	"github.com/kronos-guild/website/app/site"
)

func NewHandler(posts PostRepository, renderer BodyRenderer, mapper *card.Mapper,
	siteConfig *site.Config, channel feed.Channel) *Handler {
	return &Handler{
		posts:     posts,
		renderer:  renderer,
		generator: feed.NewGenerator(),
		filterer:  blog.NewFilterer(),
		mapper:    mapper,
		site:      siteConfig,
		channel:   channel,
	}
}

func (h *Handler) Home(c *gin.Context) {
	posts, err := h.listPosts(c, nil)
	if err != nil {
		slog.Error("Failed to list posts", "page", "home", "request_id", requestID(c), "error", err)
		h.renderError(c)
		return
	}

	active := c.Query("tab")
	if !h.hasTab(active) {
		active = h.site.Tabs[0].Name
	}

	tabs := make([]tabView, 0, len(h.site.Tabs))
	for _, tab := range h.site.Tabs {
		view := tabView{
			Name:   tab.Name,
			Href:   "/?tab=" + url.QueryEscape(tab.Name),
			Active: tab.Name == active,
			Posts:  tab.Kind == site.TabPosts,
		}
		if view.Active && view.Posts {
			view.Layout = h.mapper.Layout(posts)
		}
		tabs = append(tabs, view)
	}

	h.view(c, http.StatusOK, "home.html", gin.H{
		"Tabs": tabs,
	})
}

func (h *Handler) BlogIndex(c *gin.Context) {
	tag := strings.TrimSpace(c.Query("tag"))

	var filters []blog.Filter
	if tag != "" {
		filters = append(filters, blog.Filter{Field: "tags", Includes: []string{tag}})
	}

	posts, err := h.listPosts(c, filters)
	if err != nil {
		slog.Error("Failed to list posts", "page", "blog", "request_id", requestID(c), "error", err)
		h.renderError(c)
		return
	}

	h.view(c, http.StatusOK, "blog_index.html", gin.H{
		"Title": h.site.BlogTitle,
		"Tag":   tag,
		"Cards": h.mapper.MapAll(posts),
	})
}

func (h *Handler) BlogPost(c *gin.Context) {
	slug := c.Param("slug")

	post, err := h.getPost(c, slug)
	if err != nil {
		if errors.Is(err, blog.ErrPostNotFound) {
			slog.Debug("Post not found", "slug", slug, "request_id", requestID(c))
			h.view(c, http.StatusNotFound, "post_not_found.html", gin.H{
				"Title": "Post Not Found",
			})
			return
		}
		slog.Error("Failed to load post", "slug", slug, "request_id", requestID(c), "error", err)
		h.renderError(c)
		return
	}

	body, err := h.renderer.Render(post.Body)
	if err != nil {
		slog.Error("Failed to render post body", "slug", slug, "request_id", requestID(c), "error", err)
		h.renderError(c)
		return
	}

	h.view(c, http.StatusOK, "post.html", gin.H{
		"Title": post.Title,
		"Card":  h.mapper.Map(post.PostMetadata),
		"Body":  body,
	})
}

func (h *Handler) StartBuilding(c *gin.Context) {
	h.view(c, http.StatusOK, "start_building.html", gin.H{
		"Title": "Start Building",
	})
}

func (h *Handler) RSS(c *gin.Context) {
	posts, err := h.listPosts(c, nil)
	if err != nil {
		slog.Error("Failed to list posts", "page", "rss", "request_id", requestID(c), "error", err)
		c.Status(http.StatusInternalServerError)
		return
	}

	rss, err := h.generator.Run(h.channel, posts)
	if err != nil {
		slog.Error("RSS generation error", "request_id", requestID(c), "error", err)
		c.Status(http.StatusInternalServerError)
		return
	}

	c.Header("Content-Type", "application/rss+xml; charset=utf-8")
	c.Header("X-Feed-Items", strconv.Itoa(len(posts)))

	c.String(http.StatusOK, rss)
}

func (h *Handler) APIListPosts(c *gin.Context) {
	var filters []blog.Filter
	if tag := strings.TrimSpace(c.Query("tag")); tag != "" {
		filters = append(filters, blog.Filter{Field: "tags", Includes: []string{tag}})
	}

	posts, err := h.listPosts(c, filters)
	if err != nil {
		slog.Error("Failed to list posts", "operation", "api_list_posts", "request_id", requestID(c), "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list posts"})
		return
	}

	if c.Query("view") == "cards" {
		c.JSON(http.StatusOK, map[string]interface{}{
			"cards": h.mapper.MapAll(posts),
			"total": len(posts),
		})
		return
	}

	c.JSON(http.StatusOK, map[string]interface{}{
		"posts": posts,
		"total": len(posts),
	})
}

func (h *Handler) APIGetPost(c *gin.Context) {
	slug := c.Param("slug")

	post, err := h.getPost(c, slug)
	if err != nil {
		if errors.Is(err, blog.ErrPostNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Post not found"})
			return
		}
		slog.Error("Failed to load post", "operation", "api_get_post", "slug", slug, "request_id", requestID(c), "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load post"})
		return
	}

	body, err := h.renderer.Render(post.Body)
	if err != nil {
		slog.Error("Failed to render post body", "slug", slug, "request_id", requestID(c), "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to render post"})
		return
	}

	c.JSON(http.StatusOK, map[string]interface{}{
		"post": post.PostMetadata,
		"card": h.mapper.Map(post.PostMetadata),
		"html": string(body),
	})
}

func (h *Handler) Health(c *gin.Context) {
	health := map[string]interface{}{
		"timestamp": time.Now().In(time.Local).Format(time.RFC3339),
		"version":   h.channel.Version,
	}

	posts, err := h.posts.List(c.Request.Context())
	if err != nil {
		slog.Error("Health check failed", "request_id", requestID(c), "error", err)
		health["status"] = "degraded"
		health["error"] = err.Error()
		c.JSON(http.StatusServiceUnavailable, health)
		return
	}

	health["status"] = "ok"
	health["posts"] = len(posts)

	c.JSON(http.StatusOK, health)
}

func (h *Handler) NotFound(c *gin.Context) {
	if strings.HasPrefix(c.Request.URL.Path, "/api/") {
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
		return
	}

	h.view(c, http.StatusNotFound, "not_found.html", gin.H{
		"Title": "Not Found",
	})
}

// listPosts returns the collection with the site-wide filters and any extra
// filters applied.
func (h *Handler) listPosts(c *gin.Context, extra []blog.Filter) ([]blog.PostMetadata, error) {
	posts, err := h.posts.List(c.Request.Context())
	if err != nil {
		return nil, err
	}

	filters := append(append([]blog.Filter{}, h.site.Filters...), extra...)
	return h.filterer.Run(posts, filters), nil
}

// getPost loads a single post, treating posts hidden by the site-wide filters
// as missing.
func (h *Handler) getPost(c *gin.Context, slug string) (*blog.Post, error) {
	post, err := h.posts.Get(c.Request.Context(), slug)
	if err != nil {
		return nil, err
	}

	if len(h.filterer.Run([]blog.PostMetadata{post.PostMetadata}, h.site.Filters)) == 0 {
		return nil, fmt.Errorf("post %s is filtered out: %w", slug, blog.ErrPostNotFound)
	}
	return post, nil
}

func (h *Handler) hasTab(name string) bool {
	for _, tab := range h.site.Tabs {
		if tab.Name == name {
			return true
		}
	}
	return false
}

func (h *Handler) view(c *gin.Context, status int, name string, data gin.H) {
	data["Site"] = h.site
	data["Path"] = c.Request.URL.Path
	c.HTML(status, name, data)
}

func (h *Handler) renderError(c *gin.Context) {
	h.view(c, http.StatusInternalServerError, "error.html", gin.H{
		"Title":     "Error",
		"RequestID": requestID(c),
	})
}
