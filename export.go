// FILE: lixenwraith/unixconfig/export.go
package unixconfig

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Supported structured formats for Export and Import.
const (
	FormatTOML = "toml"
	FormatYAML = "yaml"
	FormatJSON = "json"
)

// Export writes the store as a structured document: root keys at the top
// level, each section as a table, every key as a list of strings.
// YAML output keeps store order; TOML and JSON sort keys.
func (c *Config) Export(w io.Writer, format string) error {
	tree, err := c.tree()
	if err != nil {
		return err
	}

	switch format {
	case FormatTOML:
		if err := toml.NewEncoder(w).Encode(tree); err != nil {
			return fmt.Errorf("failed to marshal config data to TOML: %w", err)
		}
	case FormatJSON:
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(tree); err != nil {
			return fmt.Errorf("failed to marshal config data to JSON: %w", err)
		}
	case FormatYAML:
		encoder := yaml.NewEncoder(w)
		encoder.SetIndent(2)
		if err := encoder.Encode(c.yamlNode()); err != nil {
			return fmt.Errorf("failed to marshal config data to YAML: %w", err)
		}
		if err := encoder.Close(); err != nil {
			return fmt.Errorf("failed to flush YAML encoder: %w", err)
		}
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
	return nil
}

// ExportFile writes the store to path atomically in the format implied by its extension.
func (c *Config) ExportFile(path string) error {
	format := detectFileFormat(path)
	if format == "" {
		return fmt.Errorf("%w: cannot determine format for '%s'", ErrUnknownFormat, path)
	}

	var buf bytes.Buffer
	if err := c.Export(&buf, format); err != nil {
		return err
	}
	return atomicWriteFile(path, buf.Bytes())
}

// tree builds the nested representation shared by TOML and JSON.
func (c *Config) tree() (map[string]any, error) {
	tree := make(map[string]any)
	if c.root != nil {
		for _, key := range c.root.keys {
			tree[key] = append([]string(nil), c.root.values[key]...)
		}
	}
	for _, s := range c.sections {
		if _, clash := tree[s.name]; clash {
			return nil, fmt.Errorf("%w: %q", ErrExportConflict, s.name)
		}
		table := make(map[string]any, len(s.keys))
		for _, key := range s.keys {
			table[key] = append([]string(nil), s.values[key]...)
		}
		tree[s.name] = table
	}
	return tree, nil
}

// yamlNode builds an ordered YAML mapping. tree has already rejected conflicts.
func (c *Config) yamlNode() *yaml.Node {
	doc := &yaml.Node{Kind: yaml.MappingNode}
	if c.root != nil {
		appendYAMLKeys(doc, c.root)
	}
	for _, s := range c.sections {
		table := &yaml.Node{Kind: yaml.MappingNode}
		appendYAMLKeys(table, s)
		doc.Content = append(doc.Content, yamlString(s.name), table)
	}
	return doc
}

func appendYAMLKeys(mapping *yaml.Node, s *section) {
	for _, key := range s.keys {
		seq := &yaml.Node{Kind: yaml.SequenceNode}
		for _, v := range s.values[key] {
			seq.Content = append(seq.Content, yamlString(v))
		}
		mapping.Content = append(mapping.Content, yamlString(key), seq)
	}
}

func yamlString(v string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: v}
}

// importOp is one key's values headed for one section.
type importOp struct {
	section string
	key     string
	values  []string
}

// Import merges a structured document into the store under policy.
// Top-level scalars and lists land in root; tables become sections, nested
// tables become dotted section names. Values are stringified and unquoted
// the way TOML/YAML/JSON present them. Keys must match the line grammar's key
// pattern; the document is validated in full before anything is applied.
func (c *Config) Import(r io.Reader, format string, policy Policy) error {
	if !policy.valid() {
		return fmt.Errorf("%w: %s", ErrInvalidPolicy, policy)
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("failed to read %s document: %w", format, err)
	}

	doc := make(map[string]any)
	switch format {
	case FormatTOML:
		if err := toml.Unmarshal(data, &doc); err != nil {
			return fmt.Errorf("failed to parse TOML document: %w", err)
		}
	case FormatJSON:
		decoder := json.NewDecoder(bytes.NewReader(data))
		decoder.UseNumber()
		if err := decoder.Decode(&doc); err != nil {
			return fmt.Errorf("failed to parse JSON document: %w", err)
		}
	case FormatYAML:
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return fmt.Errorf("failed to parse YAML document: %w", err)
		}
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}

	ops, err := collectImport(nil, "", doc)
	if err != nil {
		return err
	}

	c.ensureRoot()
	for _, op := range ops {
		var s *section
		if op.section == "" {
			s = c.root
		} else {
			s = c.ensureNamed(op.section)
		}
		for _, v := range op.values {
			if policy == PolicyInsert {
				s.prependValues(op.key, v)
			} else {
				s.appendValues(op.key, v)
			}
		}
	}
	return nil
}

// ImportFile imports path in the format implied by its extension.
func (c *Config) ImportFile(path string, policy Policy) error {
	format := detectFileFormat(path)
	if format == "" {
		return fmt.Errorf("%w: cannot determine format for '%s'", ErrUnknownFormat, path)
	}

	file, err := openSource(path)
	if err != nil {
		return err
	}
	defer file.Close()

	return c.Import(file, format, policy)
}

// collectImport flattens doc into ops in sorted key order, tables after keys.
func collectImport(ops []importOp, sectionName string, doc map[string]any) ([]importOp, error) {
	keys := make([]string, 0, len(doc))
	for k := range doc {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var tables []string
	for _, k := range keys {
		if _, isTable := doc[k].(map[string]any); isTable {
			tables = append(tables, k)
			continue
		}
		if !isValidKey(k) {
			return nil, fmt.Errorf("invalid key %q in section %q", k, displaySection(sectionName))
		}
		values := stringifyValues(doc[k])
		if len(values) == 0 {
			continue
		}
		ops = append(ops, importOp{section: sectionName, key: k, values: values})
	}

	for _, k := range tables {
		name := k
		if sectionName != "" {
			name = sectionName + "." + k
		}
		var err error
		if ops, err = collectImport(ops, name, doc[k].(map[string]any)); err != nil {
			return nil, err
		}
	}
	return ops, nil
}

func stringifyValues(v any) []string {
	switch list := v.(type) {
	case []any:
		out := make([]string, 0, len(list))
		for _, item := range list {
			out = append(out, stringify(item))
		}
		return out
	case []map[string]any:
		out := make([]string, 0, len(list))
		for _, item := range list {
			out = append(out, stringify(item))
		}
		return out
	default:
		return []string{stringify(v)}
	}
}

func stringify(v any) string {
	switch val := v.(type) {
	case string:
		return val
	case nil:
		return ""
	case json.Number:
		return val.String()
	default:
		return fmt.Sprint(val)
	}
}

// detectFileFormat determines format from file extension
func detectFileFormat(path string) string {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".toml", ".tml":
		return FormatTOML
	case ".json":
		return FormatJSON
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return ""
	}
}
