package unixconfig

// Values returns a copy of the values of key in section, in stored order.
// The second return value is false if the section or key does not exist.
func (c *Config) Values(section, key string) ([]string, bool) {
	vals, exists := c.lookup(section).get(key)
	if !exists {
		return nil, false
	}
	return append([]string(nil), vals...), true
}

// FirstValue returns the head of the value list: the first-loaded value under
// push loading, the last-loaded one under insert loading.
func (c *Config) FirstValue(section, key string) (string, bool) {
	vals, exists := c.lookup(section).get(key)
	if !exists {
		return "", false
	}
	return vals[0], true
}

// LastValue returns the tail of the value list: the last-loaded value under push loading.
func (c *Config) LastValue(section, key string) (string, bool) {
	vals, exists := c.lookup(section).get(key)
	if !exists {
		return "", false
	}
	return vals[len(vals)-1], true
}

// ValueAt returns the value at index. A missing key reports false with a nil error;
// an index outside a present list returns an *IndexError.
func (c *Config) ValueAt(section, key string, index int) (string, bool, error) {
	vals, exists := c.lookup(section).get(key)
	if !exists {
		return "", false, nil
	}
	if index < 0 || index >= len(vals) {
		return "", false, &IndexError{Section: section, Key: key, Index: index, Len: len(vals)}
	}
	return vals[index], true, nil
}

// Global is a read view that merges the root section into every section lookup.
type Global struct {
	c *Config
}

// Global returns a view whose reads fall back to the root section.
func (c *Config) Global() Global {
	return Global{c: c}
}

// merged returns root values followed by the section's own values.
func (g Global) merged(section, key string) ([]string, bool) {
	rootVals, inRoot := g.c.root.get(key)
	if isRoot(section) {
		return rootVals, inRoot
	}
	ownVals, inSection := g.c.index[section].get(key)
	if !inRoot && !inSection {
		return nil, false
	}
	out := make([]string, 0, len(rootVals)+len(ownVals))
	out = append(out, rootVals...)
	return append(out, ownVals...), true
}

// Values returns root values then section values for key.
func (g Global) Values(section, key string) ([]string, bool) {
	vals, exists := g.merged(section, key)
	if !exists {
		return nil, false
	}
	return append([]string(nil), vals...), true
}

// FirstValue returns the head of the merged list.
func (g Global) FirstValue(section, key string) (string, bool) {
	vals, exists := g.merged(section, key)
	if !exists {
		return "", false
	}
	return vals[0], true
}

// LastValue returns the tail of the merged list.
func (g Global) LastValue(section, key string) (string, bool) {
	vals, exists := g.merged(section, key)
	if !exists {
		return "", false
	}
	return vals[len(vals)-1], true
}

// ValueAt indexes into the merged list.
func (g Global) ValueAt(section, key string, index int) (string, bool, error) {
	vals, exists := g.merged(section, key)
	if !exists {
		return "", false, nil
	}
	if index < 0 || index >= len(vals) {
		return "", false, &IndexError{Section: section, Key: key, Index: index, Len: len(vals)}
	}
	return vals[index], true, nil
}

// KeyExists reports whether key exists in section or, failing that, in root.
func (g Global) KeyExists(section, key string) bool {
	return g.c.KeyExists(section, key) || g.c.root.hasKey(key)
}

// AddSection creates section if it does not exist. The empty name creates root.
func (c *Config) AddSection(section string) {
	c.ensure(section)
}

// AddValue appends value to key in section, creating both as needed.
func (c *Config) AddValue(section, key, value string) {
	c.ensure(section).appendValues(key, value)
}

// AddValues appends values in order. It is a no-op without values.
func (c *Config) AddValues(section, key string, values ...string) {
	if len(values) == 0 {
		return
	}
	c.ensure(section).appendValues(key, values...)
}

// InsertValue prepends value to key in section, creating both as needed.
func (c *Config) InsertValue(section, key, value string) {
	c.ensure(section).prependValues(key, value)
}

// InsertValues prepends values as a block, keeping their order. It is a no-op without values.
func (c *Config) InsertValues(section, key string, values ...string) {
	if len(values) == 0 {
		return
	}
	c.ensure(section).prependValues(key, values...)
}

// ReplaceFirst replaces the head value. It reports false if the key does not exist.
func (c *Config) ReplaceFirst(section, key, value string) bool {
	vals, exists := c.lookup(section).get(key)
	if !exists {
		return false
	}
	vals[0] = value
	return true
}

// ReplaceLast replaces the tail value. It reports false if the key does not exist.
func (c *Config) ReplaceLast(section, key, value string) bool {
	vals, exists := c.lookup(section).get(key)
	if !exists {
		return false
	}
	vals[len(vals)-1] = value
	return true
}

// ReplaceAt replaces the value at index.
func (c *Config) ReplaceAt(section, key string, index int, value string) (bool, error) {
	vals, exists := c.lookup(section).get(key)
	if !exists {
		return false, nil
	}
	if index < 0 || index >= len(vals) {
		return false, &IndexError{Section: section, Key: key, Index: index, Len: len(vals)}
	}
	vals[index] = value
	return true, nil
}

// ReplaceAll replaces the whole value list of an existing key.
func (c *Config) ReplaceAll(section, key string, values ...string) (bool, error) {
	if len(values) == 0 {
		return false, ErrNoValues
	}
	s := c.lookup(section)
	if !s.hasKey(key) {
		return false, nil
	}
	s.values[key] = append([]string(nil), values...)
	return true, nil
}
