package unixconfig

import (
	"log/slog"
)

// RootSection is the reserved name of the global section holding directives
// that precede any section header. The empty string addresses it as well.
const RootSection = "[-UnixConfigStyle-]"

// Config is an ordered, multi-valued configuration store.
// Section order, key order and value order are all significant.
//
// A Config is not safe for concurrent mutation; callers sharing one
// across goroutines must serialize access themselves.
type Config struct {
	root     *section            // Created on first load or first root addition
	sections []*section          // Named sections in first-appearance order
	index    map[string]*section // Name to named section
	logger   *slog.Logger
	onWarn   WarningHandler
}

// Option configures a Config.
type Option func(*Config)

// WithLogger sets the logger used for format warnings.
func WithLogger(l *slog.Logger) Option {
	return func(c *Config) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithWarningHandler routes format warnings to fn instead of the logger.
func WithWarningHandler(fn WarningHandler) Option {
	return func(c *Config) {
		c.onWarn = fn
	}
}

// New creates an empty Config.
func New(opts ...Option) *Config {
	c := &Config{
		index:  make(map[string]*section),
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// NewFromFile creates a Config seeded by push-loading path.
func NewFromFile(path string, opts ...Option) (*Config, error) {
	c := New(opts...)
	if err := c.Push(path); err != nil {
		return nil, err
	}
	return c, nil
}

// RootSectionName returns the reserved name of the root section.
func (c *Config) RootSectionName() string {
	return RootSection
}

// isRoot reports whether name addresses the root section.
func isRoot(name string) bool {
	return name == "" || name == RootSection
}

// lookup resolves a section argument; nil means absent.
func (c *Config) lookup(name string) *section {
	if isRoot(name) {
		return c.root
	}
	return c.index[name]
}

// ensureRoot creates the root section if needed.
func (c *Config) ensureRoot() *section {
	if c.root == nil {
		c.root = newSection(RootSection)
	}
	return c.root
}

// ensureNamed creates a named section on first reference.
// It never resolves to root, so a header spelling RootSection gets its own section.
func (c *Config) ensureNamed(name string) *section {
	if s, exists := c.index[name]; exists {
		return s
	}
	s := newSection(name)
	c.sections = append(c.sections, s)
	c.index[name] = s
	return s
}

// ensure resolves a section argument, creating the section if needed.
func (c *Config) ensure(name string) *section {
	if isRoot(name) {
		return c.ensureRoot()
	}
	return c.ensureNamed(name)
}

// Sections returns the named sections in first-appearance order. Root is excluded.
func (c *Config) Sections() []string {
	names := make([]string, 0, len(c.sections))
	for _, s := range c.sections {
		names = append(names, s.name)
	}
	return names
}

// Keys returns the keys of a section in first-appearance order.
// The second return value is false if the section does not exist.
func (c *Config) Keys(section string) ([]string, bool) {
	s := c.lookup(section)
	if s == nil {
		return nil, false
	}
	return append([]string{}, s.keys...), true
}

// MergedKeys returns root keys followed by the keys of section, each key once.
func (c *Config) MergedKeys(section string) []string {
	seen := make(map[string]bool)
	keys := appendUnique(nil, seen, c.root)
	if !isRoot(section) {
		keys = appendUnique(keys, seen, c.index[section])
	}
	return keys
}

// AllKeys returns root keys followed by the keys of every section in order, each key once.
func (c *Config) AllKeys() []string {
	seen := make(map[string]bool)
	keys := appendUnique(nil, seen, c.root)
	for _, s := range c.sections {
		keys = appendUnique(keys, seen, s)
	}
	return keys
}

// SectionExists reports whether a section exists. Root exists once anything has been loaded into or added to it.
func (c *Config) SectionExists(section string) bool {
	return c.lookup(section) != nil
}

// KeyExists reports whether key exists directly in section.
func (c *Config) KeyExists(section, key string) bool {
	return c.lookup(section).hasKey(key)
}

// HasKeys reports whether section holds at least one key.
func (c *Config) HasKeys(section string) bool {
	return !c.lookup(section).empty()
}

// HasSections reports whether any named section exists.
func (c *Config) HasSections() bool {
	return len(c.sections) > 0
}

// IsEmpty reports whether no section, root included, holds any key.
func (c *Config) IsEmpty() bool {
	if !c.root.empty() {
		return false
	}
	for _, s := range c.sections {
		if !s.empty() {
			return false
		}
	}
	return true
}

// warn reports a format warning to the handler, or logs it.
func (c *Config) warn(w Warning) {
	if c.onWarn != nil {
		c.onWarn(w)
		return
	}
	c.logger.Warn("unrecognized config line",
		"source", w.Source,
		"line", w.Line,
		"text", w.Text)
}
