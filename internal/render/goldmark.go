package render

import (
	"bytes"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"
	"github.com/yuin/goldmark/util"
)

// Goldmark renders documentation as GitHub flavoured Markdown.
type Goldmark struct {
	md goldmark.Markdown
}

// NewGoldmark returns a Markdown renderer that anchors h1-h4 headings.
func NewGoldmark() *Goldmark {
	md := goldmark.New(
		goldmark.WithExtensions(extension.GFM),
		goldmark.WithParserOptions(
			parser.WithASTTransformers(util.Prioritized(headingIDs{}, 100)), //nolint:gomnd
		),
	)

	return &Goldmark{md: md}
}

func (g *Goldmark) Name() string {
	return NameGoldmark
}

func (g *Goldmark) Render(text string) ([]byte, error) {
	var buff bytes.Buffer

	if err := g.md.Convert([]byte(text), &buff); err != nil {
		return nil, err
	}

	return buff.Bytes(), nil
}

const maxAnchorLevel = 4

// headingIDs sets the id of each heading to its text with spaces replaced by
// underscores.
type headingIDs struct{}

func (headingIDs) Transform(doc *ast.Document, reader text.Reader, _ parser.Context) {
	source := reader.Source()

	_ = ast.Walk(doc, func(node ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}

		heading, ok := node.(*ast.Heading)
		if !ok || heading.Level > maxAnchorLevel {
			return ast.WalkContinue, nil
		}

		if id := Anchor(string(heading.Text(source))); len(id) != 0 {
			heading.SetAttributeString("id", []byte(id))
		}

		return ast.WalkSkipChildren, nil
	})
}

// Anchor returns the element id used for a heading.
func Anchor(title string) string {
	return strings.ReplaceAll(strings.TrimSpace(title), " ", "_")
}
