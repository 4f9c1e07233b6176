package render_test

import (
	"bytes"
	"errors"
	"html/template"
	"testing"

	"github.com/ezerfernandes/litdoc/internal/litdoc"
	"github.com/ezerfernandes/litdoc/internal/render"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const source = `/**
 * # App Title
 *
 * Some *text*.
 */
var App = {};

/** <script>alert(1)</script> */
if (a < b) {}
`

func TestSelect(t *testing.T) {
	t.Parallel()

	doc, err := render.Select(nil)
	require.NoError(t, err)
	assert.Equal(t, render.NameGoldmark, doc.Name())

	doc, err = render.Select([]string{render.NameVerbatim, render.NameGoldmark})
	require.NoError(t, err)
	assert.Equal(t, render.NameVerbatim, doc.Name())

	doc, err = render.Select([]string{render.NameBlackfriday})
	require.NoError(t, err)
	assert.Equal(t, render.NameBlackfriday, doc.Name())

	_, err = render.Select([]string{"goldmark", "creole"})
	require.ErrorIs(t, err, render.ErrUnknownRenderer)
}

func TestGoldmarkHeadingIDs(t *testing.T) {
	t.Parallel()

	out, err := render.NewGoldmark().Render("# App Title\n\n##### Deep Heading\n")
	require.NoError(t, err)

	assert.Contains(t, string(out), `<h1 id="App_Title">App Title</h1>`)
	assert.Contains(t, string(out), `<h5>Deep Heading</h5>`)
}

func TestBlackfriday(t *testing.T) {
	t.Parallel()

	out, err := render.NewBlackfriday().Render("Some *text*.\n")
	require.NoError(t, err)

	assert.Contains(t, string(out), "<em>text</em>")
}

func TestVerbatimEscapes(t *testing.T) {
	t.Parallel()

	out, err := render.Verbatim{}.Render("a < b\n")
	require.NoError(t, err)

	assert.Equal(t, "<div><pre>a &lt; b\n</pre></div>\n", string(out))
}

func TestAnchor(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "App.trim()", render.Anchor(" App.trim() "))
	assert.Equal(t, "A_B_C", render.Anchor("A B C"))
}

type failing struct{}

func (failing) Name() string { return "failing" }

func (failing) Render(string) ([]byte, error) { return nil, errors.New("boom") }

func TestDocsFallsBackToVerbatim(t *testing.T) {
	t.Parallel()

	docs := render.New(failing{}).Docs(litdoc.Extract(source))

	require.Len(t, docs, 2)
	assert.Contains(t, string(docs[0].HTML), "<pre>\n# App Title")
}

func TestRenderPage(t *testing.T) {
	t.Parallel()

	var buff bytes.Buffer

	err := render.New(render.NewGoldmark()).Render(&buff, "docs.js", litdoc.Extract(source))
	require.NoError(t, err)

	out := buff.String()

	assert.Contains(t, out, "<title>docs.js</title>")
	assert.Contains(t, out, `<h1 id="App_Title">App Title</h1>`)
	assert.Contains(t, out, `<pre class="nums">6 
7 
</pre>`)
	assert.Contains(t, out, "var App = {};")
	assert.Contains(t, out, "if (a &lt; b) {}")
	assert.Equal(t, 2, bytes.Count(buff.Bytes(), []byte(`<div class="divider"></div>`)))
}

func TestRenderHooksInOrder(t *testing.T) {
	t.Parallel()

	var calls []string

	first := func(docs []*render.Doc) {
		calls = append(calls, "first")

		assert.Len(t, docs, 2)

		docs[0].HTML = template.HTML("<p>replaced</p>")
	}
	second := func(docs []*render.Doc) {
		calls = append(calls, "second")

		assert.Equal(t, template.HTML("<p>replaced</p>"), docs[0].HTML)
	}

	var buff bytes.Buffer

	err := render.New(nil, first, second).Render(&buff, "t", litdoc.Extract(source))
	require.NoError(t, err)

	assert.Equal(t, []string{"first", "second"}, calls)
	assert.Contains(t, buff.String(), "<p>replaced</p>")
}

func TestRenderEmpty(t *testing.T) {
	t.Parallel()

	var buff bytes.Buffer

	require.NoError(t, render.New(nil).Render(&buff, "empty", nil))
	assert.NotContains(t, buff.String(), "divider")
}
