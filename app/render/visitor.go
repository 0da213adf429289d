package render

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"
)

// Visitor receives the nodes of a parsed body that carry presentation.
// Implementations mutate node attributes; the HTML renderer emits them.
type Visitor interface {
	VisitHeading(n *ast.Heading)
	VisitLink(n *ast.Link)
	VisitImage(n *ast.Image)
	VisitCodeBlock(n *ast.FencedCodeBlock, source []byte)
}

// Attribute keys read back by the code block renderer.
var (
	attrHighlightLines = []byte("highlight-lines")
	attrHighlightWords = []byte("highlight-words")
)

// StyleVisitor applies the site's typography classes.
type StyleVisitor struct{}

var headingClasses = map[int]string{
	1: "text-4xl font-bold mt-12 mb-6",
	2: "text-3xl font-bold mt-10 mb-4",
	3: "text-2xl font-semibold mt-8 mb-3",
	4: "text-xl font-semibold mt-6 mb-2",
	5: "text-lg font-semibold mt-4 mb-2",
	6: "text-base font-semibold mt-4 mb-2",
}

func (StyleVisitor) VisitHeading(n *ast.Heading) {
	n.SetAttributeString("class", []byte(headingClasses[n.Level]))
}

func (StyleVisitor) VisitLink(n *ast.Link) {
	n.SetAttributeString("class", []byte("underline underline-offset-4"))
}

func (StyleVisitor) VisitImage(n *ast.Image) {
	n.SetAttributeString("class", []byte("rounded-lg mx-auto"))
}

func (StyleVisitor) VisitCodeBlock(n *ast.FencedCodeBlock, source []byte) {
	lines, words := parseCodeMeta(codeMeta(n, source))
	if len(lines) > 0 {
		n.SetAttribute(attrHighlightLines, lines)
	}
	if len(words) > 0 {
		n.SetAttribute(attrHighlightWords, words)
	}
}

// visitorTransformer walks the document once and dispatches typed nodes.
type visitorTransformer struct {
	visitors []Visitor
}

func (t *visitorTransformer) Transform(doc *ast.Document, reader text.Reader, _ parser.Context) {
	source := reader.Source()

	_ = ast.Walk(doc, func(node ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		for _, v := range t.visitors {
			switch n := node.(type) {
			case *ast.Heading:
				v.VisitHeading(n)
			case *ast.Link:
				v.VisitLink(n)
			case *ast.Image:
				v.VisitImage(n)
			case *ast.FencedCodeBlock:
				v.VisitCodeBlock(n, source)
			}
		}
		return ast.WalkContinue, nil
	})
}

// codeMeta returns the info string of a fenced block without its language.
func codeMeta(n *ast.FencedCodeBlock, source []byte) string {
	if n.Info == nil {
		return ""
	}
	info := strings.TrimSpace(string(n.Info.Segment.Value(source)))
	if i := strings.IndexAny(info, " \t"); i >= 0 {
		return strings.TrimSpace(info[i:])
	}
	return ""
}

var (
	lineRangePattern = regexp.MustCompile(`\{([^}]*)\}`)
	wordPattern      = regexp.MustCompile(`/([^/]+)/`)
)

type lineRange struct {
	from, to int
}

// lineRanges is a set of inclusive 1-based line ranges.
type lineRanges []lineRange

func (r lineRanges) Contains(line int) bool {
	for _, lr := range r {
		if line >= lr.from && line <= lr.to {
			return true
		}
	}
	return false
}

// parseCodeMeta reads "{1,3-4}" line ranges and "/word/" markers.
func parseCodeMeta(meta string) (lineRanges, []string) {
	var lines lineRanges
	for _, m := range lineRangePattern.FindAllStringSubmatch(meta, -1) {
		for _, part := range strings.Split(m[1], ",") {
			from, to, err := parseRange(strings.TrimSpace(part))
			if err != nil {
				continue
			}
			lines = append(lines, lineRange{from: from, to: to})
		}
	}

	var words []string
	for _, m := range wordPattern.FindAllStringSubmatch(meta, -1) {
		words = append(words, m[1])
	}

	return lines, words
}

func parseRange(part string) (int, int, error) {
	if part == "" {
		return 0, 0, fmt.Errorf("empty range")
	}

	start, end, isRange := strings.Cut(part, "-")
	from, err := strconv.Atoi(strings.TrimSpace(start))
	if err != nil {
		return 0, 0, err
	}
	if !isRange {
		return from, from, nil
	}

	to, err := strconv.Atoi(strings.TrimSpace(end))
	if err != nil {
		return 0, 0, err
	}
	if to < from {
		return 0, 0, fmt.Errorf("invalid range %s", part)
	}
	return from, to, nil
}
