// File: lixenwraith/settings/builder.go
package settings

import (
	"errors"
	"fmt"
	"io"
	"maps"

	"go.uber.org/zap"
)

// ValidatorFunc defines the signature for a function that can validate a Store.
// It receives the fully loaded *Store and should return an error if validation fails.
type ValidatorFunc func(s *Store) error

// Builder provides a fluent interface for building a Store
type Builder struct {
	opts       LoadOptions
	file       string
	reader     io.Reader
	defaults   map[string]Setting
	required   []string
	err        error
	validators []ValidatorFunc
}

// NewBuilder creates a new settings builder
func NewBuilder() *Builder {
	return &Builder{
		opts:       DefaultLoadOptions(),
		defaults:   make(map[string]Setting),
		validators: make([]ValidatorFunc, 0),
	}
}

// WithFile sets the settings file path
func (b *Builder) WithFile(path string) *Builder {
	b.file = path
	return b
}

// WithReader sets an already-open source to parse. It takes precedence over
// WithFile and is not closed by Build.
func (b *Builder) WithReader(r io.Reader) *Builder {
	b.reader = r
	return b
}

// WithSeparator sets the key/value separator
func (b *Builder) WithSeparator(sep string) *Builder {
	if sep == "" {
		b.err = ErrInvalidSeparator
		return b
	}
	b.opts.Separator = sep
	return b
}

// WithLogger sets the logger used while parsing
func (b *Builder) WithLogger(logger *zap.Logger) *Builder {
	b.opts.Logger = logger
	return b
}

// WithMaxLineSize sets the longest accepted line in bytes
func (b *Builder) WithMaxLineSize(size int) *Builder {
	b.opts.MaxLineSize = size
	return b
}

// WithDefaults adds settings present before the source is parsed.
// Parsed entries with the same key replace them.
func (b *Builder) WithDefaults(defaults map[string]Setting) *Builder {
	maps.Copy(b.defaults, defaults)
	return b
}

// WithDefaultStruct adds defaults derived from a struct, see FromStruct
func (b *Builder) WithDefaultStruct(structWithDefaults any) *Builder {
	store, err := FromStruct(structWithDefaults)
	if err != nil {
		b.err = fmt.Errorf("failed to register defaults: %w", err)
		return b
	}
	return b.WithDefaults(store.items)
}

// WithRequired lists keys that must be present after loading
func (b *Builder) WithRequired(keys ...string) *Builder {
	b.required = append(b.required, keys...)
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

// Build creates the Store with all specified options.
// Without a file or reader the Store holds only the defaults.
func (b *Builder) Build() (*Store, error) {
	if b.err != nil {
		return nil, b.err
	}

	opts, err := b.opts.normalize()
	if err != nil {
		return nil, err
	}

	store := FromMap(b.defaults)
	store.separator = opts.Separator

	switch {
	case b.reader != nil:
		if err := store.parse(b.reader, opts); err != nil {
			return nil, err
		}
	case b.file != "":
		if err := store.parseFile(b.file, opts); err != nil {
			return nil, err
		}
	}

	if err := store.Validate(b.required...); err != nil {
		return nil, err
	}

	var validationErrors []error
	for _, validator := range b.validators {
		if err := validator(store); err != nil {
			validationErrors = append(validationErrors, err)
		}
	}
	if err := errors.Join(validationErrors...); err != nil {
		return nil, fmt.Errorf("settings validation failed: %w", err)
	}

	return store, nil
}

// MustBuild is like Build but panics on error
func (b *Builder) MustBuild() *Store {
	store, err := b.Build()
	if err != nil {
		panic(fmt.Sprintf("settings build failed: %v", err))
	}
	return store
}

// BuildAndScan builds the Store and decodes it into the provided target pointer
func (b *Builder) BuildAndScan(target any) (*Store, error) {
	store, err := b.Build()
	if err != nil {
		return nil, err
	}

	if err := store.Scan(target); err != nil {
		return nil, fmt.Errorf("failed to scan final settings into target: %w", err)
	}
	return store, nil
}
