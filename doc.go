// File: lixenwraith/unixconfig/doc.go

// Package unixconfig reads, merges and writes Unix-style configuration files:
// "[section]" headers, "key=value" lines and "#" or ";" comments.
//
// Features:
//   - Ordered store: sections, keys and values keep first-appearance order
//   - Multi-valued keys: every key=value line adds a value
//   - Layering: push (append) or insert (prepend) each loaded file
//   - First-wins and last-wins lookups, with optional fallback to the root section
//   - Writer that re-emits the line grammar, atomic file writes
//   - TOML, YAML and JSON export and import
//   - Struct decoding of a section via mapstructure
//   - Builder with optional files, discovery and validators
//
// Quick Start:
//
//	cfg := unixconfig.New()
//	if err := cfg.Push("/etc/myapp.conf"); err != nil {
//	    log.Fatal(err)
//	}
//	if err := cfg.Push(userConfigPath); err != nil &&
//	    !errors.Is(err, unixconfig.ErrSourceUnreadable) {
//	    log.Fatal(err)
//	}
//
//	// user file wins
//	host, ok := cfg.LastValue("server", "host")
//
// Grammar:
//
//	# comment            ; also a comment
//	key=value            directive in the root section
//	[section]            following directives belong to section
//	name = 'quoted'      quotes are kept in the stored value
//	name2 = bare # note  bare values are trimmed, trailing comment dropped
//
// Lines that match none of these are reported as a Warning and skipped.
//
// Root Section:
// Directives before the first header live in the root section, named
// RootSection; the empty string addresses it too. A header spelling
// RootSection creates an ordinary named section, which accessors cannot
// reach by name because the name resolves to root.
//
// Layering:
//
//	cfg.Push("system.conf")   // k=1
//	cfg.Push("user.conf")     // k=2
//	cfg.Values("", "k")       // [1 2], LastValue is the user value
//
//	cfg.Insert("system.conf")
//	cfg.Insert("user.conf")
//	cfg.Values("", "k")       // [2 1], FirstValue is the user value
//
// Thread Safety:
// A Config is not safe for concurrent mutation. Callers sharing one across
// goroutines must serialize access.
package unixconfig
