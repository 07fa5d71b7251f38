// FILE: lixenwraith/unixconfig/discovery.go
package unixconfig

import (
	"os"
	"path/filepath"
)

// DiscoveryOptions configures the search for layered config files
type DiscoveryOptions struct {
	// Base name of config file (without extension)
	Name string

	// Extensions to try (in order); "" tries the bare name
	Extensions []string

	// Directories to search, lowest precedence first (e.g. system before user)
	Paths []string

	// Whether to search the current directory after Paths
	UseCurrentDir bool
}

// DefaultDiscoveryOptions searches /etc and /etc/<appName> for <appName>, <appName>.conf and <appName>.cfg
func DefaultDiscoveryOptions(appName string) DiscoveryOptions {
	return DiscoveryOptions{
		Name:       appName,
		Extensions: []string{"", ".conf", ".cfg"},
		Paths: []string{
			"/etc",
			filepath.Join("/etc", appName),
		},
	}
}

// Discover returns every existing regular config file matched by opts,
// in search order. Loading them in that order with PolicyPush makes later
// directories win under LastValue.
func Discover(opts DiscoveryOptions) []string {
	if opts.Name == "" {
		return nil
	}

	searchPaths := append([]string(nil), opts.Paths...)
	if opts.UseCurrentDir {
		if cwd, err := os.Getwd(); err == nil {
			searchPaths = append(searchPaths, cwd)
		}
	}

	extensions := opts.Extensions
	if len(extensions) == 0 {
		extensions = []string{""}
	}

	var found []string
	seen := make(map[string]bool)
	for _, dir := range searchPaths {
		for _, ext := range extensions {
			path := filepath.Join(dir, opts.Name+ext)
			if seen[path] {
				continue
			}
			if info, err := os.Stat(path); err == nil && info.Mode().IsRegular() {
				seen[path] = true
				found = append(found, path)
			}
		}
	}

	return found
}

// WithDiscovery adds every discovered file as an optional source under the current policy
func (b *Builder) WithDiscovery(opts DiscoveryOptions) *Builder {
	for _, path := range Discover(opts) {
		b.WithOptionalFile(path)
	}
	return b
}
