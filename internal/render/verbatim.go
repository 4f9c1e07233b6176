package render

import "html"

// Verbatim renders documentation as preformatted text. It never fails.
type Verbatim struct{}

func (Verbatim) Name() string {
	return NameVerbatim
}

func (Verbatim) Render(text string) ([]byte, error) {
	return []byte("<div><pre>" + html.EscapeString(text) + "</pre></div>\n"), nil
}
