// Package markdown renders blog posts with GitHub-flavoured extensions,
// YAML front-matter and syntax-highlighted code blocks.
package markdown

import (
	"bytes"
	"strings"

	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	goldmarkhtml "github.com/yuin/goldmark/renderer/html"
	"go.abhg.dev/goldmark/frontmatter"
)

// chroma style for fenced code blocks
const codeStyle = "dracula"

// Document is one rendered Markdown source.
type Document struct {
	HTML []byte
	Meta map[string]any // empty when there is no usable front-matter
	Body string         // source text after the front-matter block
}

type Parser struct {
	md goldmark.Markdown
}

func NewParser() *Parser {
	md := goldmark.New(
		goldmark.WithExtensions(
			extension.GFM,
			extension.Footnote,
			extension.Typographer,
			&frontmatter.Extender{},
			highlighting.NewHighlighting(
				highlighting.WithStyle(codeStyle),
			),
		),
		goldmark.WithParserOptions(
			parser.WithAutoHeadingID(),
		),
		goldmark.WithRendererOptions(
			goldmarkhtml.WithXHTML(),
			// posts are authored in-repo and may embed ad slots or iframes
			goldmarkhtml.WithUnsafe(),
		),
	)

	return &Parser{md: md}
}

// Render converts source to HTML and decodes its front-matter.
func (p *Parser) Render(source []byte) (*Document, error) {
	pc := parser.NewContext()
	var buf bytes.Buffer

	err := p.md.Convert(source, &buf, parser.WithContext(pc))
	if err != nil {
		return nil, err
	}

	return &Document{
		HTML: buf.Bytes(),
		Meta: decodeMeta(pc),
		Body: StripFrontmatter(string(source)),
	}, nil
}

func decodeMeta(pc parser.Context) map[string]any {
	data := frontmatter.Get(pc)
	if data == nil {
		return map[string]any{}
	}

	var meta map[string]any
	if err := data.Decode(&meta); err != nil || meta == nil {
		return map[string]any{}
	}
	return meta
}

// StripFrontmatter drops a leading "---" delimited block.
// Sources without a closed block come back unchanged.
func StripFrontmatter(content string) string {
	normalized := strings.ReplaceAll(content, "\r\n", "\n")
	if !strings.HasPrefix(normalized, "---\n") {
		return content
	}
	end := strings.Index(normalized[4:], "\n---")
	if end < 0 {
		return content
	}
	rest := normalized[4+end+4:]
	return strings.TrimPrefix(rest, "\n")
}
