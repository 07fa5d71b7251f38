// File: lixenwraith/unixconfig/io.go
package unixconfig

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// Write serializes the store to w: an optional "#comment" line, root values,
// then each named section as a "[name]" header followed by its values.
// Every value is written as one key=value line exactly as stored.
// An empty comment writes no comment line.
func (c *Config) Write(w io.Writer, comment string) error {
	if w == nil {
		return fmt.Errorf("%w: nil destination", ErrInvalidWriteArgument)
	}
	if !isSingleLine(comment) {
		return fmt.Errorf("%w: comment must be a single line", ErrInvalidWriteArgument)
	}

	bw := bufio.NewWriter(w)
	if comment != "" {
		fmt.Fprintf(bw, "#%s\n", comment)
	}

	writeSection(bw, c.root)
	for _, s := range c.sections {
		fmt.Fprintf(bw, "[%s]\n", s.name)
		writeSection(bw, s)
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

func writeSection(w io.Writer, s *section) {
	if s == nil {
		return
	}
	for _, key := range s.keys {
		for _, value := range s.values[key] {
			fmt.Fprintf(w, "%s=%s\n", key, value)
		}
	}
}

// String returns the serialized store without a comment line.
func (c *Config) String() string {
	var buf bytes.Buffer
	_ = c.Write(&buf, "")
	return buf.String()
}

// WriteFile serializes the store to path atomically.
func (c *Config) WriteFile(path, comment string) error {
	var buf bytes.Buffer
	if err := c.Write(&buf, comment); err != nil {
		return err
	}
	return atomicWriteFile(path, buf.Bytes())
}

// atomicWriteFile writes data to a temporary file beside path and renames it into place.
func atomicWriteFile(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory '%s': %w", dir, err)
	}

	tempFile, err := os.CreateTemp(dir, filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temporary config file in '%s': %w", dir, err)
	}

	tempPath := tempFile.Name()
	removed := false
	defer func() {
		if !removed {
			os.Remove(tempPath)
		}
	}()

	if _, err := tempFile.Write(data); err != nil {
		tempFile.Close()
		return fmt.Errorf("failed to write temp config file '%s': %w", tempPath, err)
	}

	if err := tempFile.Sync(); err != nil {
		tempFile.Close()
		return fmt.Errorf("failed to sync temp config file '%s': %w", tempPath, err)
	}

	if err := tempFile.Close(); err != nil {
		return fmt.Errorf("failed to close temp config file '%s': %w", tempPath, err)
	}

	if err := os.Chmod(tempPath, 0644); err != nil {
		return fmt.Errorf("failed to set permissions on temporary config file '%s': %w", tempPath, err)
	}

	if err := os.Rename(tempPath, path); err != nil {
		return fmt.Errorf("failed to rename temp file '%s' to '%s': %w", tempPath, path, err)
	}
	removed = true

	return nil
}
