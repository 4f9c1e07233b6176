package render

import "github.com/russross/blackfriday/v2"

// Blackfriday renders documentation as Markdown with blackfriday's common
// extensions.
type Blackfriday struct {
	extensions blackfriday.Extensions
}

func NewBlackfriday() *Blackfriday {
	return &Blackfriday{extensions: blackfriday.CommonExtensions | blackfriday.AutoHeadingIDs}
}

func (b *Blackfriday) Name() string {
	return NameBlackfriday
}

func (b *Blackfriday) Render(text string) ([]byte, error) {
	return blackfriday.Run([]byte(text), blackfriday.WithExtensions(b.extensions)), nil
}
