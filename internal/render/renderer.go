// Package render turns extracted blocks into an HTML page.
package render

import (
	"errors"
	"fmt"
)

// DocRenderer converts documentation text into HTML.
type DocRenderer interface {
	Name() string
	Render(text string) ([]byte, error)
}

const (
	NameGoldmark    = "goldmark"
	NameBlackfriday = "blackfriday"
	NameVerbatim    = "verbatim"
)

// DefaultOrder is the preference order used when none is configured.
var DefaultOrder = []string{NameGoldmark, NameBlackfriday, NameVerbatim}

var renderers = map[string]func() DocRenderer{
	NameGoldmark:    func() DocRenderer { return NewGoldmark() },
	NameBlackfriday: func() DocRenderer { return NewBlackfriday() },
	NameVerbatim:    func() DocRenderer { return Verbatim{} },
}

// ErrUnknownRenderer is returned by [Select] for a name no renderer answers to.
var ErrUnknownRenderer = errors.New("unknown renderer")

// Names returns the known renderer names in default preference order.
func Names() []string {
	return append([]string(nil), DefaultOrder...)
}

// Select returns the first renderer named in names. An empty list selects
// from [DefaultOrder].
func Select(names []string) (DocRenderer, error) {
	if len(names) == 0 {
		names = DefaultOrder
	}

	for _, name := range names {
		if _, ok := renderers[name]; !ok {
			return nil, fmt.Errorf("%w: %s", ErrUnknownRenderer, name)
		}
	}

	return renderers[names[0]](), nil
}
