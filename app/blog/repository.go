package blog

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"strings"

	"golang.org/x/sync/errgroup"
)

const DefaultConcurrency = 8

// Repository assembles post collections from a Store. It keeps no state
// between calls: every List reads the content directory again.
type Repository struct {
	store       *Store
	concurrency int
	strict      bool
}

type RepositoryOption func(*Repository)

// WithConcurrency bounds the number of files read in parallel.
func WithConcurrency(n int) RepositoryOption {
	return func(r *Repository) {
		if n > 0 {
			r.concurrency = n
		}
	}
}

// WithStrict makes a single unreadable or malformed post fail the whole List.
func WithStrict(strict bool) RepositoryOption {
	return func(r *Repository) {
		r.strict = strict
	}
}

func NewRepository(store *Store, opts ...RepositoryOption) *Repository {
	r := &Repository{
		store:       store,
		concurrency: DefaultConcurrency,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// List returns the metadata of every post, most recent first.
func (r *Repository) List(ctx context.Context) ([]PostMetadata, error) {
	names, err := r.store.List(ctx)
	if err != nil {
		return nil, err
	}
	names = preferMDX(names)

	results := make([]*PostMetadata, len(names))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.concurrency)

	for i, name := range names {
		g.Go(func() error {
			post, err := r.load(gctx, name)
			if err != nil {
				if isContextErr(err) || r.strict {
					return fmt.Errorf("failed to load %s: %w", name, err)
				}
				slog.Warn("Skipping post", "file", name, "error", err)
				return nil
			}
			results[i] = &post.PostMetadata
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	posts := make([]PostMetadata, 0, len(results))
	for _, meta := range results {
		if meta != nil {
			posts = append(posts, *meta)
		}
	}
	SortByDate(posts)

	slog.Debug("Post collection assembled", "files", len(names), "posts", len(posts))

	return posts, nil
}

// Get reads a single post by slug. A .mdx file takes precedence over a .md
// file with the same stem. Unknown slugs yield ErrPostNotFound.
func (r *Repository) Get(ctx context.Context, slug string) (*Post, error) {
	if !validSlug(slug) {
		return nil, fmt.Errorf("%w: %q", ErrPostNotFound, slug)
	}

	for _, ext := range postExtensions {
		post, err := r.load(ctx, slug+ext)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return nil, err
		}
		return post, nil
	}

	return nil, fmt.Errorf("%w: %q", ErrPostNotFound, slug)
}

func (r *Repository) load(ctx context.Context, name string) (*Post, error) {
	data, err := r.store.Read(ctx, name)
	if err != nil {
		return nil, err
	}

	fm, body, err := ParseFrontmatter(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", name, err)
	}

	return &Post{
		PostMetadata: Normalize(fm, name),
		FileName:     name,
		Body:         body,
	}, nil
}

// preferMDX drops a .md file whose stem also exists as .mdx, keeping slugs
// unique within a collection.
func preferMDX(names []string) []string {
	chosen := make(map[string]string, len(names))
	order := make([]string, 0, len(names))

	for _, name := range names {
		slug := Slug(name)
		prev, seen := chosen[slug]
		if !seen {
			chosen[slug] = name
			order = append(order, slug)
			continue
		}

		kept, skipped := prev, name
		if strings.HasSuffix(name, ".mdx") {
			kept, skipped = name, prev
		}
		chosen[slug] = kept
		slog.Warn("Duplicate post slug", "slug", slug, "kept", kept, "skipped", skipped)
	}

	out := make([]string, 0, len(order))
	for _, slug := range order {
		out = append(out, chosen[slug])
	}
	return out
}

func validSlug(slug string) bool {
	if slug == "" || slug == "." || slug == ".." {
		return false
	}
	return !strings.ContainsAny(slug, `/\`) && fs.ValidPath(slug)
}

func isContextErr(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}
