package litdoc

// Block is a documentation comment together with the code that follows it.
type Block struct {
	// Doc is the de-commented documentation text, one line per comment line,
	// each terminated by a newline.
	Doc string
	// Code holds the source lines between the end of the comment and the next
	// documentation comment, each terminated by "\r\n".
	Code string
	// StartLine is the zero-based line of the opening delimiter.
	StartLine int
	// LineCount is the number of lines spanned by the comment, delimiters included.
	LineCount int
	// CodeEnd is the zero-based index one past the last code line.
	CodeEnd int
}

type Blocks []*Block

// CodeStart returns the index of the first line after the comment.
func (b *Block) CodeStart() int {
	return b.StartLine + b.LineCount
}

// Gutter returns the zero-based indices of the lines annotating the code.
func (b *Block) Gutter() []int {
	start := b.CodeStart()
	if b.CodeEnd <= start {
		return nil
	}

	lines := make([]int, 0, b.CodeEnd-start)
	for i := start; i < b.CodeEnd; i++ {
		lines = append(lines, i)
	}

	return lines
}
