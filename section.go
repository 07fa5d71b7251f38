package unixconfig

// section holds the keys of one section in first-appearance order.
// A key present in values always has at least one value.
type section struct {
	name   string
	keys   []string
	values map[string][]string
}

func newSection(name string) *section {
	return &section{
		name:   name,
		values: make(map[string][]string),
	}
}

// ensureKey registers key in first-appearance order.
func (s *section) ensureKey(key string) {
	if _, exists := s.values[key]; !exists {
		s.keys = append(s.keys, key)
		s.values[key] = nil
	}
}

func (s *section) appendValues(key string, values ...string) {
	if len(values) == 0 {
		return
	}
	s.ensureKey(key)
	s.values[key] = append(s.values[key], values...)
}

func (s *section) prependValues(key string, values ...string) {
	if len(values) == 0 {
		return
	}
	s.ensureKey(key)
	current := s.values[key]
	merged := make([]string, 0, len(values)+len(current))
	merged = append(merged, values...)
	merged = append(merged, current...)
	s.values[key] = merged
}

// get returns the live value list for key.
func (s *section) get(key string) ([]string, bool) {
	if s == nil {
		return nil, false
	}
	vals, exists := s.values[key]
	return vals, exists
}

func (s *section) hasKey(key string) bool {
	_, exists := s.get(key)
	return exists
}

func (s *section) empty() bool {
	return s == nil || len(s.keys) == 0
}

func (s *section) clone() *section {
	c := newSection(s.name)
	c.keys = append([]string(nil), s.keys...)
	for k, v := range s.values {
		c.values[k] = append([]string(nil), v...)
	}
	return c
}
