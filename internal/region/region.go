// Package region locates named #region/#endregion sections in source files.
package region

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

const (
	reSpec       = `[!"#$%%&'()*+,\-./:;<=>?@[\\\]^_{|}~]`
	reLineBegin  = `(?m)^[[:blank:]]*`
	reLineEnd    = `*[[:blank:]]*\n`
	regionFormat = reLineBegin + reSpec +
		`+[[:blank:]]*#region[[:blank:]]+%s[[:blank:]]*` +
		reSpec + reLineEnd
	namedEndFormat = reLineBegin + reSpec +
		`+[[:blank:]]*#endregion[[:blank:]]+%s[[:blank:]]*` +
		reSpec + reLineEnd
)

var (
	reName = regexp.MustCompile(reLineBegin + reSpec +
		`+[[:blank:]]*#region[[:blank:]]+(\w+)[[:blank:]]*`)
	reEnd = regexp.MustCompile(reLineBegin + reSpec +
		`+[[:blank:]]*#endregion[[:blank:]]*` +
		reSpec + reLineEnd)
)

var (
	// ErrNotFound is returned when no region has the requested name.
	ErrNotFound = errors.New("region not found")
	// ErrMissingEndregion is returned when a #region marker has no matching
	// #endregion.
	ErrMissingEndregion = errors.New("missing #endregion")
)

// Span is the body of a region, markers excluded.
type Span struct {
	// Begin and End are byte offsets into the source.
	Begin int
	End   int
	// Line is the zero-based line of the first body line.
	Line int
}

func marker(format string, name string) (*regexp.Regexp, error) {
	return regexp.Compile(fmt.Sprintf(format, regexp.QuoteMeta(name)))
}

// Find locates the region called name. Source lines must end in "\n".
// A named #endregion is preferred over the first anonymous one.
func Find(source string, name string) (Span, error) {
	reBegin, err := marker(regionFormat, name)
	if err != nil {
		return Span{}, err
	}

	idxBegin := reBegin.FindStringIndex(source)
	if idxBegin == nil {
		return Span{}, fmt.Errorf("%w: %s", ErrNotFound, name)
	}

	reNamedEnd, err := marker(namedEndFormat, name)
	if err != nil {
		return Span{}, err
	}

	body := source[idxBegin[1]:]

	idxEnd := reNamedEnd.FindStringIndex(body)
	if idxEnd == nil {
		if idxEnd = reEnd.FindStringIndex(body); idxEnd == nil {
			return Span{}, fmt.Errorf("%w: %s", ErrMissingEndregion, name)
		}
	}

	return Span{
		Begin: idxBegin[1],
		End:   idxBegin[1] + idxEnd[0],
		Line:  strings.Count(source[:idxBegin[1]], "\n"),
	}, nil
}

// Read returns the body of the region called name and its first line.
func Read(source string, name string) (string, int, error) {
	span, err := Find(source, name)
	if err != nil {
		return "", 0, err
	}

	return source[span.Begin:span.End], span.Line, nil
}

// Names lists the region names of source in order of appearance.
func Names(source string) []string {
	var names []string

	for _, match := range reName.FindAllStringSubmatch(source, -1) {
		names = append(names, match[1])
	}

	return names
}
