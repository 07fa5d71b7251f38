// FILE: lixenwraith/unixconfig/line_test.go
package unixconfig

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestClassify tests line classification precedence and value extraction
func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		text string
		want Line
	}{
		{"Empty", "", Line{Kind: LineBlank}},
		{"Whitespace", " \t  ", Line{Kind: LineBlank}},
		{"HashComment", "# a comment", Line{Kind: LineComment}},
		{"SemicolonComment", "   ; key=value", Line{Kind: LineComment}},
		{"Section", "[server]", Line{Kind: LineSection, Name: "server"}},
		{"SectionIndented", "  [server]  ", Line{Kind: LineSection, Name: "server"}},
		{"SectionTrailingComment", "[server] # main", Line{Kind: LineSection, Name: "server"}},
		{"SectionWithSpaces", "[my section]", Line{Kind: LineSection, Name: "my section"}},
		{"SectionRootMarker", "[[-UnixConfigStyle-]]", Line{Kind: LineSection, Name: RootSection}},
		{"SectionTrailingJunk", "[server] junk", Line{Kind: LineUnrecognized}},
		{"Bare", "key=value", Line{Kind: LineParameter, Key: "key", Value: "value"}},
		{"BareSpaced", "  key  =   value with spaces   ", Line{Kind: LineParameter, Key: "key", Value: "value with spaces"}},
		{"BareHashComment", "key = value # comment", Line{Kind: LineParameter, Key: "key", Value: "value"}},
		{"BareSemicolonComment", "key = a;b", Line{Kind: LineParameter, Key: "key", Value: "a"}},
		{"BareEmpty", "key=", Line{Kind: LineParameter, Key: "key", Value: ""}},
		{"KeyAlphabet", "Key_1-x=v", Line{Kind: LineParameter, Key: "Key_1-x", Value: "v"}},
		{"SingleQuoted", "key = 'a # not comment'", Line{Kind: LineParameter, Key: "key", Value: "'a # not comment'"}},
		{"SingleQuotedComment", "key='v' ; note", Line{Kind: LineParameter, Key: "key", Value: "'v'"}},
		{"DoubleQuoted", `key = "hello world"`, Line{Kind: LineParameter, Key: "key", Value: `"hello world"`}},
		{"DoubleQuotedComment", `key="v"   # note`, Line{Kind: LineParameter, Key: "key", Value: `"v"`}},
		{"QuoteThenText", `key = "a" b`, Line{Kind: LineParameter, Key: "key", Value: `"a" b`}},
		{"NoEquals", "just some words", Line{Kind: LineUnrecognized}},
		{"InvalidKey", "bad key = v", Line{Kind: LineUnrecognized}},
		{"DottedKey", "a.b = v", Line{Kind: LineUnrecognized}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.text))
		})
	}
}

func TestLineKindString(t *testing.T) {
	assert.Equal(t, "blank", LineBlank.String())
	assert.Equal(t, "parameter", LineParameter.String())
	assert.Equal(t, "unrecognized", LineUnrecognized.String())
	assert.Equal(t, "unknown", LineKind(42).String())
}
