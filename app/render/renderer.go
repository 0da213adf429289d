// Package render turns post bodies into sanitized HTML.
package render

import (
	"bytes"
	"fmt"
	"html/template"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer"
	"github.com/yuin/goldmark/renderer/html"
	"github.com/yuin/goldmark/util"
)

type Renderer struct {
	md     goldmark.Markdown
	policy *bluemonday.Policy
}

// New builds a Renderer. Without visitors the site's StyleVisitor is used.
func New(visitors ...Visitor) *Renderer {
	if len(visitors) == 0 {
		visitors = []Visitor{StyleVisitor{}}
	}

	md := goldmark.New(
		goldmark.WithExtensions(
			extension.GFM,
			extension.Footnote,
			extension.Typographer,
		),
		goldmark.WithParserOptions(
			parser.WithAutoHeadingID(),
			parser.WithASTTransformers(
				util.Prioritized(&visitorTransformer{visitors: visitors}, 100),
			),
		),
		goldmark.WithRendererOptions(
			html.WithUnsafe(),
			renderer.WithNodeRenderers(
				util.Prioritized(newCodeBlockRenderer(), 100),
			),
		),
	)

	return &Renderer{
		md:     md,
		policy: newPolicy(),
	}
}

// Render converts a markdown body to HTML. Raw HTML in the body is allowed
// through the parser and then sanitized.
func (r *Renderer) Render(body []byte) (template.HTML, error) {
	var buf bytes.Buffer
	if err := r.md.Convert(body, &buf); err != nil {
		return "", fmt.Errorf("failed to convert markdown: %w", err)
	}

	return template.HTML(r.policy.SanitizeBytes(buf.Bytes())), nil
}

func newPolicy() *bluemonday.Policy {
	p := bluemonday.UGCPolicy()
	p.AllowAttrs("class").Matching(bluemonday.SpaceSeparatedTokens).OnElements(
		"code", "span", "pre", "a", "img", "sup", "li", "div", "hr",
		"h1", "h2", "h3", "h4", "h5", "h6",
	)
	p.AllowAttrs("id").OnElements("h1", "h2", "h3", "h4", "h5", "h6", "sup", "li")
	p.AllowElements("table", "thead", "tbody", "tr", "th", "td")
	p.AddTargetBlankToFullyQualifiedLinks(true)
	return p
}
