// FILE: lixenwraith/unixconfig/decode.go
package unixconfig

import (
	"fmt"
	"net"
	"net/url"
	"reflect"
	"time"

	"github.com/mitchellh/mapstructure"
)

// TagName is the struct tag read by Scan.
const TagName = "ini"

var netIPType = reflect.TypeOf(net.IP{})

// Scan decodes the keys of section into target, a non-nil struct or map pointer.
// Scalar fields take the last value of a key, slice fields take every value.
// Quotes are stripped from a copy of each value; the store is not modified.
// An absent section decodes as empty.
func (c *Config) Scan(section string, target any) error {
	values := make(map[string][]string)
	if s := c.lookup(section); s != nil {
		for _, key := range s.keys {
			values[key] = s.values[key]
		}
	}
	return decodeValues(values, section, target)
}

// Scan decodes the merged root and section keys into target, root values first.
func (g Global) Scan(section string, target any) error {
	values := make(map[string][]string)
	for _, key := range g.c.MergedKeys(section) {
		vals, _ := g.merged(section, key)
		values[key] = vals
	}
	return decodeValues(values, section, target)
}

// decodeValues is the single decoding path behind Scan.
func decodeValues(values map[string][]string, section string, target any) error {
	rv := reflect.ValueOf(target)
	if rv.Kind() != reflect.Ptr || rv.IsNil() {
		return fmt.Errorf("scan target must be non-nil pointer, got %T", target)
	}

	input := make(map[string]any, len(values))
	for key, vals := range values {
		input[key] = unquoteAll(vals)
	}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           target,
		TagName:          TagName,
		WeaklyTypedInput: true,
		DecodeHook:       decodeHook(),
		ZeroFields:       true,
	})
	if err != nil {
		return fmt.Errorf("decoder creation failed: %w", err)
	}

	if err := decoder.Decode(input); err != nil {
		return fmt.Errorf("decode failed for section %q: %w", displaySection(section), err)
	}
	return nil
}

// decodeHook returns the composite decode hook for all type conversions
func decodeHook() mapstructure.DecodeHookFunc {
	return mapstructure.ComposeDecodeHookFunc(
		// Collapse value lists first so later hooks see strings
		lastValueHookFunc(),

		stringToNetIPHookFunc(),
		stringToURLHookFunc(),

		mapstructure.StringToTimeDurationHookFunc(),
		mapstructure.StringToTimeHookFunc(time.RFC3339),
	)
}

// lastValueHookFunc picks the last value of a list for non-slice targets.
func lastValueHookFunc() mapstructure.DecodeHookFunc {
	return func(f reflect.Type, t reflect.Type, data any) (any, error) {
		if f.Kind() != reflect.Slice {
			return data, nil
		}
		if t.Kind() == reflect.Interface || (t.Kind() == reflect.Slice && t != netIPType) || t.Kind() == reflect.Array {
			return data, nil
		}
		vals, ok := data.([]string)
		if !ok || len(vals) == 0 {
			return data, nil
		}
		return vals[len(vals)-1], nil
	}
}

// stringToNetIPHookFunc handles net.IP conversion
func stringToNetIPHookFunc() mapstructure.DecodeHookFunc {
	return func(f reflect.Type, t reflect.Type, data any) (any, error) {
		if f.Kind() != reflect.String || t != netIPType {
			return data, nil
		}

		str := data.(string)
		if len(str) > 45 { // Max IPv6 length
			return nil, fmt.Errorf("invalid IP length: %d", len(str))
		}

		ip := net.ParseIP(str)
		if ip == nil {
			return nil, fmt.Errorf("invalid IP address: %s", str)
		}
		return ip, nil
	}
}

// stringToURLHookFunc handles url.URL conversion
func stringToURLHookFunc() mapstructure.DecodeHookFunc {
	return func(f reflect.Type, t reflect.Type, data any) (any, error) {
		if f.Kind() != reflect.String {
			return data, nil
		}
		isPtr := t.Kind() == reflect.Ptr
		targetType := t
		if isPtr {
			targetType = t.Elem()
		}
		if targetType != reflect.TypeOf(url.URL{}) {
			return data, nil
		}

		str := data.(string)
		if len(str) > 2048 {
			return nil, fmt.Errorf("URL too long: %d bytes", len(str))
		}
		u, err := url.Parse(str)
		if err != nil {
			return nil, fmt.Errorf("invalid URL: %w", err)
		}
		if isPtr {
			return u, nil
		}
		return *u, nil
	}
}
