// File: lixenwraith/unixconfig/convenience.go
package unixconfig

import (
	"fmt"
	"strings"
)

// Quick creates a Config by push-loading each path in order, so later files
// win under LastValue. Every file must be readable.
func Quick(paths ...string) (*Config, error) {
	cfg := New()
	for _, path := range paths {
		if err := cfg.Push(path); err != nil {
			return nil, err
		}
	}
	return cfg, nil
}

// MustQuick is like Quick but panics on error
func MustQuick(paths ...string) *Config {
	cfg, err := Quick(paths...)
	if err != nil {
		panic(fmt.Sprintf("config initialization failed: %v", err))
	}
	return cfg
}

// Clone creates a deep copy of the configuration, sharing logger and warning handler
func (c *Config) Clone() *Config {
	clone := &Config{
		index:    make(map[string]*section, len(c.index)),
		sections: make([]*section, 0, len(c.sections)),
		logger:   c.logger,
		onWarn:   c.onWarn,
	}

	if c.root != nil {
		clone.root = c.root.clone()
	}
	for _, s := range c.sections {
		cs := s.clone()
		clone.sections = append(clone.sections, cs)
		clone.index[cs.name] = cs
	}

	return clone
}

// Debug returns a formatted string showing every section, key and indexed value
func (c *Config) Debug() string {
	var b strings.Builder
	b.WriteString("Configuration Debug Info:\n")
	fmt.Fprintf(&b, "Sections: %v\n", c.Sections())

	debugSection(&b, RootSection, c.root)
	for _, s := range c.sections {
		debugSection(&b, s.name, s)
	}

	return b.String()
}

func debugSection(b *strings.Builder, name string, s *section) {
	if s == nil {
		return
	}
	fmt.Fprintf(b, "  %s:\n", name)
	for _, key := range s.keys {
		fmt.Fprintf(b, "    %s:\n", key)
		for i, v := range s.values[key] {
			fmt.Fprintf(b, "      [%d] %s\n", i, v)
		}
	}
}
