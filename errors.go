// FILE: lixenwraith/unixconfig/errors.go
package unixconfig

import (
	"errors"
	"fmt"
)

// Errors returned by configuration operations.
var (
	// ErrSourceUnreadable indicates a source could not be opened for reading.
	// Nothing is loaded when this is returned.
	ErrSourceUnreadable = errors.New("config source is not readable")

	// ErrInvalidPolicy indicates an unknown load policy.
	ErrInvalidPolicy = errors.New("invalid load policy")

	// ErrInvalidWriteArgument indicates a nil destination or a comment that cannot be written as one line.
	ErrInvalidWriteArgument = errors.New("invalid write argument")

	// ErrIndexOutOfRange indicates a value index outside the value list.
	ErrIndexOutOfRange = errors.New("value index out of range")

	// ErrNoValues indicates an operation that would leave a key with an empty value list.
	ErrNoValues = errors.New("at least one value is required")

	// ErrConfigNotFound indicates a configuration file does not exist.
	ErrConfigNotFound = errors.New("config file not found")

	// ErrUnknownFormat indicates an export/import format that is not supported.
	ErrUnknownFormat = errors.New("unknown config format")

	// ErrExportConflict indicates a root key and a section share a name in a nested format.
	ErrExportConflict = errors.New("root key conflicts with section name")
)

// IndexError reports an out-of-range value index.
type IndexError struct {
	Section string
	Key     string
	Index   int
	Len     int
}

// Error implements the error interface.
func (e *IndexError) Error() string {
	return fmt.Sprintf("index %d out of range for key %q in section %q (len %d)", e.Index, e.Key, displaySection(e.Section), e.Len)
}

// Unwrap returns ErrIndexOutOfRange.
func (e *IndexError) Unwrap() error {
	return ErrIndexOutOfRange
}

// Warning is a non-fatal diagnostic for a line the loader could not classify.
type Warning struct {
	// Source names the stream the line came from (file path or reader name).
	Source string
	// Line is the 1-based line number.
	Line int
	// Text is the offending line without its line terminator.
	Text string
}

// Error implements the error interface.
func (w Warning) Error() string {
	return fmt.Sprintf("unrecognized line %d in %s: %s", w.Line, w.Source, w.Text)
}

// WarningHandler receives format warnings raised while loading.
type WarningHandler func(Warning)
