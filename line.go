// FILE: lixenwraith/unixconfig/line.go
package unixconfig

import "regexp"

// LineKind classifies one line of configuration text.
type LineKind int

const (
	LineBlank LineKind = iota
	LineComment
	LineSection
	LineParameter
	LineUnrecognized
)

// String returns the name of the line kind.
func (k LineKind) String() string {
	switch k {
	case LineBlank:
		return "blank"
	case LineComment:
		return "comment"
	case LineSection:
		return "section"
	case LineParameter:
		return "parameter"
	case LineUnrecognized:
		return "unrecognized"
	default:
		return "unknown"
	}
}

// Line is the result of classifying a single line.
// Name is set for LineSection; Key and Value are set for LineParameter.
type Line struct {
	Kind  LineKind
	Name  string
	Key   string
	Value string
}

// Line grammar, tried in order. Quoted values keep their quotes.
var (
	blankLine       = regexp.MustCompile(`^\s*$`)
	commentLine     = regexp.MustCompile(`^\s*[#;]`)
	sectionLine     = regexp.MustCompile(`^\s*\[(.+?)\]\s*([#;].*)?$`)
	paramLine       = regexp.MustCompile(`^\s*([A-Za-z0-9_-]+)\s*=.*$`)
	paramSingleQuot = regexp.MustCompile(`^\s*([A-Za-z0-9_-]+)\s*=\s*('.*')\s*([#;].*)?$`)
	paramDoubleQuot = regexp.MustCompile(`^\s*([A-Za-z0-9_-]+)\s*=\s*(".*")\s*([#;].*)?$`)
	paramBare       = regexp.MustCompile(`^\s*([A-Za-z0-9_-]+)\s*=\s*(.*?)\s*([#;].*)?$`)
)

// Classify maps one line of text, without its line terminator, to a Line.
// It is stateless; the first matching rule wins.
func Classify(text string) Line {
	if blankLine.MatchString(text) {
		return Line{Kind: LineBlank}
	}
	if commentLine.MatchString(text) {
		return Line{Kind: LineComment}
	}
	if m := sectionLine.FindStringSubmatch(text); m != nil {
		return Line{Kind: LineSection, Name: m[1]}
	}
	if !paramLine.MatchString(text) {
		return Line{Kind: LineUnrecognized}
	}

	for _, re := range []*regexp.Regexp{paramSingleQuot, paramDoubleQuot, paramBare} {
		if m := re.FindStringSubmatch(text); m != nil {
			return Line{Kind: LineParameter, Key: m[1], Value: m[2]}
		}
	}

	// paramBare matches whatever paramLine matches
	return Line{Kind: LineUnrecognized}
}
