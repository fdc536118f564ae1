// FILE: lixenwraith/settings/loader.go
package settings

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"os"

	"go.uber.org/zap"
)

// DefaultSeparator divides key from value when no separator is configured
const DefaultSeparator = ":"

// LoadOptions configures how a settings source is parsed
type LoadOptions struct {
	// Separator divides key from value. It is matched literally.
	// Default: ":"
	Separator string

	// Logger receives debug records for skipped and overwritten lines.
	// If nil, logging is disabled.
	Logger *zap.Logger

	// MaxLineSize limits the length of one line in bytes.
	// If zero, lines of any length are accepted.
	MaxLineSize int
}

// DefaultLoadOptions returns the standard load options
func DefaultLoadOptions() LoadOptions {
	return LoadOptions{
		Separator: DefaultSeparator,
		Logger:    zap.NewNop(),
	}
}

// normalize validates opts and fills in defaults for unset fields.
func (o LoadOptions) normalize() (LoadOptions, error) {
	if o.Separator == "" {
		return o, ErrInvalidSeparator
	}
	if o.Logger == nil {
		o.Logger = zap.NewNop()
	}
	return o, nil
}

// Load reads a settings file using the default separator.
func Load(path string) (*Store, error) {
	return LoadWithOptions(path, DefaultLoadOptions())
}

// LoadWithOptions reads a settings file with custom options.
// The file is closed before returning, whether or not parsing succeeded.
func LoadWithOptions(path string, opts LoadOptions) (*Store, error) {
	opts, err := opts.normalize()
	if err != nil {
		return nil, err
	}

	store := New()
	store.separator = opts.Separator
	if err := store.parseFile(path, opts); err != nil {
		return nil, err
	}
	return store, nil
}

// Parse reads settings from r using the default separator.
// r is read to the end but not closed.
func Parse(r io.Reader) (*Store, error) {
	return ParseWithOptions(r, DefaultLoadOptions())
}

// ParseWithOptions reads settings from r with custom options.
// r is read to the end but not closed.
func ParseWithOptions(r io.Reader, opts LoadOptions) (*Store, error) {
	opts, err := opts.normalize()
	if err != nil {
		return nil, err
	}

	store := New()
	store.separator = opts.Separator
	if err := store.parse(r, opts); err != nil {
		return nil, err
	}
	return store, nil
}

// parseFile opens path and parses it into the store.
func (s *Store) parseFile(path string, opts LoadOptions) error {
	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("%w: %s", ErrSettingsNotFound, path)
		}
		return fmt.Errorf("failed to open settings file '%s': %w", path, err)
	}
	defer file.Close()

	if err := s.parse(file, opts); err != nil {
		return fmt.Errorf("failed to load settings file '%s': %w", path, err)
	}
	return nil
}

// parse inserts one setting per entry line of r. Later lines overwrite
// earlier lines with the same key.
func (s *Store) parse(r io.Reader, opts LoadOptions) error {
	log := opts.Logger

	limit := opts.MaxLineSize
	if limit <= 0 {
		limit = math.MaxInt
	}
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, min(4096, limit)), limit)

	lineNo, skipped := 0, 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()

		key, raw, ok := splitLine(line, opts.Separator)
		if !ok {
			skipped++
			log.Debug("skipping line", zap.Int("line", lineNo))
			continue
		}

		setting := InferValue(raw)
		if replaced := s.put(key, setting); replaced {
			log.Debug("overwriting duplicate key",
				zap.String("key", key),
				zap.Int("line", lineNo),
				zap.Stringer("setting", setting))
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to read settings at line %d: %w", lineNo+1, err)
	}

	log.Debug("settings parsed",
		zap.Int("lines", lineNo),
		zap.Int("skipped", skipped),
		zap.Int("entries", len(s.items)))
	return nil
}
