package render

import (
	_ "embed"
	"html/template"
	"io"
	"strconv"
	"strings"

	"github.com/ezerfernandes/litdoc/internal/litdoc"
)

//go:embed page.html.tmpl
var pageTemplate string

var page = template.Must(template.New("page").Funcs(template.FuncMap{
	"gutter": gutter,
}).Parse(pageTemplate))

// Doc is the rendered documentation of one block. Hooks may replace HTML.
type Doc struct {
	Block *litdoc.Block
	HTML  template.HTML
}

// Hook is called after every block has been rendered, with the full set of
// documentation nodes.
type Hook func(docs []*Doc)

// Page is the data passed to the page template.
type Page struct {
	Title string
	Docs  []*Doc
}

// Renderer writes blocks as an HTML page.
type Renderer struct {
	Doc   DocRenderer
	Hooks []Hook
}

// New returns a Renderer using doc, or [Verbatim] when doc is nil.
func New(doc DocRenderer, hooks ...Hook) *Renderer {
	if doc == nil {
		doc = Verbatim{}
	}

	return &Renderer{Doc: doc, Hooks: hooks}
}

// Docs renders the documentation of every block. A block the renderer
// cannot handle is rendered verbatim.
func (r *Renderer) Docs(blocks litdoc.Blocks) []*Doc {
	docs := make([]*Doc, 0, len(blocks))

	for _, block := range blocks {
		out, err := r.doc().Render(block.Doc)
		if err != nil {
			out, _ = Verbatim{}.Render(block.Doc)
		}

		docs = append(docs, &Doc{Block: block, HTML: template.HTML(out)}) //nolint:gosec
	}

	return docs
}

// Render renders blocks, runs the hooks in registration order and writes
// the resulting page to w.
func (r *Renderer) Render(w io.Writer, title string, blocks litdoc.Blocks) error {
	docs := r.Docs(blocks)

	for _, hook := range r.Hooks {
		hook(docs)
	}

	return page.Execute(w, &Page{Title: title, Docs: docs})
}

func (r *Renderer) doc() DocRenderer {
	if r.Doc == nil {
		return Verbatim{}
	}

	return r.Doc
}

// gutter returns the one-based line numbers of the block's code, one per line.
func gutter(block *litdoc.Block) string {
	var buff strings.Builder

	for _, idx := range block.Gutter() {
		buff.WriteString(strconv.Itoa(idx + 1))
		buff.WriteString(" \n")
	}

	return buff.String()
}
