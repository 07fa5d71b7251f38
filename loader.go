// FILE: lixenwraith/unixconfig/loader.go
package unixconfig

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// Policy defines where a loaded value lands in an existing value list.
type Policy int

const (
	// PolicyPush appends: later sources rank after earlier ones (pair with LastValue).
	PolicyPush Policy = iota
	// PolicyInsert prepends: later sources rank before earlier ones (pair with FirstValue).
	PolicyInsert
)

// MaxLineSize bounds a single line read from a source.
const MaxLineSize = 1 << 20

// String returns the policy name.
func (p Policy) String() string {
	switch p {
	case PolicyPush:
		return "push"
	case PolicyInsert:
		return "insert"
	default:
		return fmt.Sprintf("Policy(%d)", int(p))
	}
}

func (p Policy) valid() bool {
	return p == PolicyPush || p == PolicyInsert
}

// ParsePolicy converts "push" or "insert" to a Policy.
func ParsePolicy(s string) (Policy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "push":
		return PolicyPush, nil
	case "insert":
		return PolicyInsert, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidPolicy, s)
	}
}

// Push loads a file, appending its values after existing ones.
func (c *Config) Push(path string) error {
	return c.Load(path, PolicyPush)
}

// Insert loads a file, prepending its values before existing ones.
func (c *Config) Insert(path string) error {
	return c.Load(path, PolicyInsert)
}

// Load reads a configuration file into the store under policy.
//
// The file is opened before any line is processed; if it cannot be opened the
// store is left untouched and the error wraps ErrSourceUnreadable. Once reading
// starts, lines are applied as they are parsed: a read error part way through
// returns an error but does not undo the lines already applied.
func (c *Config) Load(path string, policy Policy) error {
	if !policy.valid() {
		return fmt.Errorf("%w: %s", ErrInvalidPolicy, policy)
	}

	file, err := openSource(path)
	if err != nil {
		return err
	}
	defer file.Close()

	return c.load(file, path, policy)
}

// LoadReader reads configuration text from r under policy. name identifies
// the source in warnings and errors. The same partial-apply contract as Load holds.
func (c *Config) LoadReader(r io.Reader, name string, policy Policy) error {
	if !policy.valid() {
		return fmt.Errorf("%w: %s", ErrInvalidPolicy, policy)
	}
	if r == nil {
		return fmt.Errorf("%w: nil reader for '%s'", ErrSourceUnreadable, name)
	}
	return c.load(r, name, policy)
}

// openSource opens path for reading, rejecting directories.
func openSource(path string) (*os.File, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("%w: '%s': %w", ErrSourceUnreadable, path, err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("%w: '%s' is a directory", ErrSourceUnreadable, path)
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: '%s': %w", ErrSourceUnreadable, path, err)
	}
	return file, nil
}

// load runs the line state machine. The current section starts at root and
// moves on every header; parameters land in the current section.
func (c *Config) load(r io.Reader, name string, policy Policy) error {
	current := c.ensureRoot()

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), MaxLineSize)

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		text := strings.TrimRight(scanner.Text(), "\r")

		line := Classify(text)
		switch line.Kind {
		case LineBlank, LineComment:
			continue

		case LineSection:
			current = c.ensureNamed(line.Name)

		case LineParameter:
			if policy == PolicyInsert {
				current.prependValues(line.Key, line.Value)
			} else {
				current.appendValues(line.Key, line.Value)
			}

		case LineUnrecognized:
			c.warn(Warning{Source: name, Line: lineNo, Text: text})
		}
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to read config source '%s' after line %d: %w", name, lineNo, err)
	}
	return nil
}
