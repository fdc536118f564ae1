// File: lixenwraith/settings/io.go
package settings

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Format selects an output encoding for a Store
type Format string

const (
	// FormatLines is the native "key<sep>value" line format
	FormatLines Format = "lines"
	// FormatTOML encodes entries as top-level TOML keys
	FormatTOML Format = "toml"
	// FormatYAML encodes entries as a flat YAML mapping
	FormatYAML Format = "yaml"
	// FormatJSON encodes entries as a flat JSON object
	FormatJSON Format = "json"
)

// ParseFormat converts a format name to a Format.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "lines", "settings":
		return FormatLines, nil
	case "toml", "tml":
		return FormatTOML, nil
	case "yaml", "yml":
		return FormatYAML, nil
	case "json":
		return FormatJSON, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, name)
}

// DetectFormat determines the output format from a file extension.
// Unrecognized extensions use the line format.
func DetectFormat(path string) Format {
	ext := strings.TrimPrefix(filepath.Ext(path), ".")
	if format, err := ParseFormat(ext); err == nil {
		return format
	}
	return FormatLines
}

// values returns the store contents as plain Go values, skipping unset settings.
func (s *Store) values() map[string]any {
	out := make(map[string]any, len(s.items))
	for key, item := range s.items {
		if val, err := item.Value(); err == nil {
			out[key] = val
		}
	}
	return out
}

// Encode writes the store to w in the given format.
func (s *Store) Encode(w io.Writer, format Format) error {
	switch format {
	case FormatLines:
		return s.encodeLines(w)

	case FormatTOML:
		if err := toml.NewEncoder(w).Encode(s.values()); err != nil {
			return fmt.Errorf("failed to marshal settings to TOML: %w", err)
		}

	case FormatYAML:
		encoder := yaml.NewEncoder(w)
		if err := encoder.Encode(s.values()); err != nil {
			return fmt.Errorf("failed to marshal settings to YAML: %w", err)
		}
		if err := encoder.Close(); err != nil {
			return fmt.Errorf("failed to flush YAML output: %w", err)
		}

	case FormatJSON:
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(s.values()); err != nil {
			return fmt.Errorf("failed to marshal settings to JSON: %w", err)
		}

	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
	return nil
}

// encodeLines writes one "key<sep> value" line per set entry, in key order.
// Entries that would not read back as the same key and value are rejected
// before anything is written.
func (s *Store) encodeLines(w io.Writer) error {
	keys := s.Keys()
	for _, key := range keys {
		if item := s.items[key]; item.IsSet() {
			if err := s.checkLine(key, item); err != nil {
				return err
			}
		}
	}

	bw := bufio.NewWriter(w)
	for _, key := range keys {
		item := s.items[key]
		if !item.IsSet() {
			continue
		}
		if _, err := fmt.Fprintf(bw, "%s%s %s\n", key, s.separator, item.text()); err != nil {
			return fmt.Errorf("failed to write setting %s: %w", key, err)
		}
	}
	return bw.Flush()
}

// checkLine reports whether key and item survive a write and reparse as one line.
func (s *Store) checkLine(key string, item Setting) error {
	switch {
	case strings.ContainsAny(key, "\r\n"):
		return fmt.Errorf("%w: key %q contains a line break", ErrUnencodable, key)
	case strings.Contains(key, s.separator):
		return fmt.Errorf("%w: key %q contains separator %q", ErrUnencodable, key, s.separator)
	case strings.HasPrefix(key, CommentPrefix):
		return fmt.Errorf("%w: key %q starts with comment prefix %q", ErrUnencodable, key, CommentPrefix)
	case item.kind == KindString && strings.ContainsAny(item.s, "\r\n"):
		return fmt.Errorf("%w: value of key %q contains a line break", ErrUnencodable, key)
	}
	return nil
}

// Save writes the store to path in the line format atomically.
func (s *Store) Save(path string) error {
	return s.SaveAs(path, FormatLines)
}

// SaveAs writes the store to path in the given format atomically.
func (s *Store) SaveAs(path string, format Format) error {
	var buf bytes.Buffer
	if err := s.Encode(&buf, format); err != nil {
		return err
	}
	return atomicWriteFile(path, buf.Bytes())
}

// atomicWriteFile performs atomic file write
func atomicWriteFile(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create directory '%s': %w", dir, err)
	}

	tempFile, err := os.CreateTemp(dir, filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temporary file: %w", err)
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
		return fmt.Errorf("failed to write temporary file '%s': %w", tempPath, err)
	}

	if err := tempFile.Sync(); err != nil {
		tempFile.Close()
		return fmt.Errorf("failed to sync temporary file '%s': %w", tempPath, err)
	}

	if err := tempFile.Close(); err != nil {
		return fmt.Errorf("failed to close temporary file '%s': %w", tempPath, err)
	}

	if err := os.Chmod(tempPath, 0644); err != nil {
		return fmt.Errorf("failed to set permissions on '%s': %w", tempPath, err)
	}

	if err := os.Rename(tempPath, path); err != nil {
		return fmt.Errorf("failed to rename temporary file '%s' to '%s': %w", tempPath, path, err)
	}
	removed = true

	return nil
}
