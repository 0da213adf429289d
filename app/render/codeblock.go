package render

import (
	"bytes"

	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/renderer"
	"github.com/yuin/goldmark/renderer/html"
	"github.com/yuin/goldmark/util"
)

// codeBlockRenderer emits fenced code as one span per line so lines can be
// styled and highlighted individually.
type codeBlockRenderer struct {
	writer html.Writer
}

func newCodeBlockRenderer() renderer.NodeRenderer {
	return &codeBlockRenderer{writer: html.DefaultWriter}
}

func (r *codeBlockRenderer) RegisterFuncs(reg renderer.NodeRendererFuncRegisterer) {
	reg.Register(ast.KindFencedCodeBlock, r.renderFencedCodeBlock)
}

func (r *codeBlockRenderer) renderFencedCodeBlock(w util.BufWriter, source []byte, node ast.Node, entering bool) (ast.WalkStatus, error) {
	if !entering {
		return ast.WalkContinue, nil
	}
	n := node.(*ast.FencedCodeBlock)

	var highlighted lineRanges
	if v, ok := n.AttributeString(string(attrHighlightLines)); ok {
		highlighted, _ = v.(lineRanges)
	}
	var words []string
	if v, ok := n.AttributeString(string(attrHighlightWords)); ok {
		words, _ = v.([]string)
	}

	_, _ = w.WriteString(`<pre class="code-block">`)
	if lang := n.Language(source); lang != nil {
		_, _ = w.WriteString(`<code class="language-`)
		r.writer.Write(w, lang)
		_, _ = w.WriteString(`">`)
	} else {
		_, _ = w.WriteString("<code>")
	}

	lines := n.Lines()
	for i := 0; i < lines.Len(); i++ {
		segment := lines.At(i)
		value := bytes.TrimRight(segment.Value(source), "\r\n")

		if highlighted.Contains(i + 1) {
			_, _ = w.WriteString(`<span class="line line--highlighted">`)
		} else {
			_, _ = w.WriteString(`<span class="line">`)
		}
		if len(value) == 0 {
			_ = w.WriteByte(' ')
		} else {
			r.writeLine(w, value, words)
		}
		_, _ = w.WriteString("</span>\n")
	}

	_, _ = w.WriteString("</code></pre>\n")
	return ast.WalkSkipChildren, nil
}

// writeLine escapes a line, wrapping every occurrence of a marked word.
func (r *codeBlockRenderer) writeLine(w util.BufWriter, line []byte, words []string) {
	for len(line) > 0 {
		at, word := nextWord(line, words)
		if at < 0 {
			r.writer.RawWrite(w, line)
			return
		}

		r.writer.RawWrite(w, line[:at])
		_, _ = w.WriteString(`<span class="word word--highlighted">`)
		r.writer.RawWrite(w, line[at:at+len(word)])
		_, _ = w.WriteString("</span>")
		line = line[at+len(word):]
	}
}

func nextWord(line []byte, words []string) (int, string) {
	at, found := -1, ""
	for _, word := range words {
		i := bytes.Index(line, []byte(word))
		if i >= 0 && (at < 0 || i < at) {
			at, found = i, word
		}
	}
	return at, found
}
