// Package litdoc splits source text into documentation comments and the code
// each of them describes.
package litdoc

import (
	"errors"
	"strings"
)

// Syntax describes the delimiters of a documentation comment.
type Syntax struct {
	// Open starts a documentation comment when it begins a trimmed line.
	Open string
	// Close ends the comment on any line containing it.
	Close string
	// Leader is the conventional prefix of comment body lines.
	Leader string
}

// DefaultSyntax is the /** ... */ convention.
var DefaultSyntax = Syntax{Open: "/**", Close: "*/", Leader: "*"}

var (
	// ErrMissingOpen is returned by [Syntax.Validate] for an empty opener.
	ErrMissingOpen = errors.New("missing comment opener")
	// ErrMissingClose is returned by [Syntax.Validate] for an empty closer.
	ErrMissingClose = errors.New("missing comment closer")
)

// Validate reports whether the syntax can delimit a comment.
func (s Syntax) Validate() error {
	if len(s.Open) == 0 {
		return ErrMissingOpen
	}

	if len(s.Close) == 0 {
		return ErrMissingClose
	}

	return nil
}

// Walker is called for each block in source order. Returning an error stops
// the walk.
type Walker func(block *Block) error

// Extract splits source into blocks using [DefaultSyntax].
func Extract(source string) Blocks {
	return DefaultSyntax.Extract(source)
}

// Extract splits source into blocks. Code before the first documentation
// comment is dropped and comments without text are skipped.
func (s Syntax) Extract(source string) Blocks {
	var blocks Blocks

	_ = s.Walk(source, func(block *Block) error {
		blocks = append(blocks, block)

		return nil
	})

	return blocks
}

type state int

const (
	scanning state = iota
	inComment
)

type accumulator struct {
	doc       strings.Builder
	code      strings.Builder
	first     int
	last      int
	processed int
}

// flush returns the pending block, if it has any text, and clears the
// documentation text.
func (a *accumulator) flush() *Block {
	defer a.doc.Reset()

	if len(strings.TrimSpace(a.doc.String())) == 0 {
		return nil
	}

	return &Block{
		Doc:       a.doc.String(),
		Code:      a.code.String(),
		StartLine: a.first,
		LineCount: a.last - a.first + 1,
		CodeEnd:   a.processed,
	}
}

func (a *accumulator) open(index int, text string) {
	a.doc.WriteString(text)
	a.doc.WriteByte('\n')
	a.code.Reset()
	a.first = index
	a.last = index
}

// Walk splits source into blocks and calls walker for each one.
func (s Syntax) Walk(source string, walker Walker) error {
	var (
		acc accumulator
		st  = scanning
	)

	emit := func() error {
		if block := acc.flush(); block != nil {
			return walker(block)
		}

		return nil
	}

	for index, line := range splitLines(source) {
		switch st {
		case inComment:
			acc.last++

			if strings.Contains(line, s.Close) {
				st = scanning
			} else {
				acc.doc.WriteString(s.strip(line))
				acc.doc.WriteByte('\n')
			}
		case scanning:
			trimmed := strings.TrimSpace(line)
			if !strings.HasPrefix(trimmed, s.Open) {
				acc.code.WriteString(line)
				acc.code.WriteString("\r\n")

				break
			}

			if err := emit(); err != nil {
				return err
			}

			rest := trimmed[len(s.Open):]
			if idx := strings.Index(rest, s.Close); idx >= 0 {
				acc.open(index, strings.TrimSpace(rest[:idx]))
			} else {
				acc.open(index, strings.TrimSpace(rest))
				st = inComment
			}
		}

		acc.processed = index + 1
	}

	return emit()
}

func (s Syntax) strip(line string) string {
	text := strings.TrimSpace(line)

	if len(s.Leader) != 0 && strings.HasPrefix(text, s.Leader) {
		text = strings.TrimPrefix(text[len(s.Leader):], " ")
	}

	return text
}

// Normalize converts "\r\n" and "\r" line endings to "\n".
func Normalize(source string) string {
	source = strings.ReplaceAll(source, "\r\n", "\n")

	return strings.ReplaceAll(source, "\r", "\n")
}

func splitLines(source string) []string {
	return strings.Split(Normalize(source), "\n")
}
