// File: lixenwraith/unixconfig/builder.go
package unixconfig

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
)

// ValidatorFunc defines the signature for a function that can validate a Config instance.
// It receives the fully loaded *Config object and should return an error if validation fails.
type ValidatorFunc func(c *Config) error

// fileSource is one queued file with the policy in effect when it was added.
type fileSource struct {
	path     string
	policy   Policy
	optional bool
}

// Builder provides a fluent interface for layering configuration files
type Builder struct {
	opts       []Option
	logger     *slog.Logger
	policy     Policy
	files      []fileSource
	err        error
	validators []ValidatorFunc
}

// NewBuilder creates a new configuration builder using the push policy
func NewBuilder() *Builder {
	return &Builder{
		logger:     slog.Default(),
		policy:     PolicyPush,
		validators: make([]ValidatorFunc, 0),
	}
}

// WithLogger sets the logger for the built Config and for build diagnostics
func (b *Builder) WithLogger(l *slog.Logger) *Builder {
	if l != nil {
		b.logger = l
		b.opts = append(b.opts, WithLogger(l))
	}
	return b
}

// WithWarningHandler routes format warnings of the built Config to fn
func (b *Builder) WithWarningHandler(fn WarningHandler) *Builder {
	b.opts = append(b.opts, WithWarningHandler(fn))
	return b
}

// WithPolicy sets the load policy for files added after this call
func (b *Builder) WithPolicy(p Policy) *Builder {
	if !p.valid() && b.err == nil {
		b.err = fmt.Errorf("%w: %s", ErrInvalidPolicy, p)
		return b
	}
	b.policy = p
	return b
}

// WithFile adds a required configuration file. Files load in the order added.
func (b *Builder) WithFile(path string) *Builder {
	b.files = append(b.files, fileSource{path: path, policy: b.policy})
	return b
}

// WithFiles adds several required files in order
func (b *Builder) WithFiles(paths ...string) *Builder {
	for _, path := range paths {
		b.WithFile(path)
	}
	return b
}

// WithOptionalFile adds a file that is skipped when it does not exist
func (b *Builder) WithOptionalFile(path string) *Builder {
	b.files = append(b.files, fileSource{path: path, policy: b.policy, optional: true})
	return b
}

// WithValidator adds a validation function that runs at the end of the build process
// Multiple validators can be added and are executed in the order they are added
func (b *Builder) WithValidator(fn ValidatorFunc) *Builder {
	if fn != nil {
		b.validators = append(b.validators, fn)
	}
	return b
}

// Build creates the Config, loading every queued file in order
func (b *Builder) Build() (*Config, error) {
	if b.err != nil {
		return nil, b.err
	}

	cfg := New(b.opts...)

	for _, src := range b.files {
		if src.optional {
			if _, err := os.Stat(src.path); errors.Is(err, os.ErrNotExist) {
				b.logger.Debug("skipping missing optional config file", "path", src.path)
				continue
			}
		}
		if err := cfg.Load(src.path, src.policy); err != nil {
			if errors.Is(err, os.ErrNotExist) {
				return nil, fmt.Errorf("%w: %w", ErrConfigNotFound, err)
			}
			return nil, err
		}
	}

	for _, validator := range b.validators {
		if err := validator(cfg); err != nil {
			return nil, fmt.Errorf("configuration validation failed: %w", err)
		}
	}

	return cfg, nil
}

// MustBuild is like Build but panics on error
func (b *Builder) MustBuild() *Config {
	cfg, err := b.Build()
	if err != nil {
		panic(fmt.Sprintf("config build failed: %v", err))
	}
	return cfg
}
