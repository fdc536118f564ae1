// FILE: lixenwraith/settings/errors.go
package settings

import "errors"

var (
	// ErrSettingsNotFound is returned when the settings file does not exist
	ErrSettingsNotFound = errors.New("settings file not found")

	// ErrInvalidSeparator is returned when the configured separator is empty
	ErrInvalidSeparator = errors.New("separator cannot be empty")

	// ErrDuplicateKey is returned by Add when the key is already present
	ErrDuplicateKey = errors.New("key already exists")

	// ErrKeyNotFound is returned when reading or updating an absent key
	ErrKeyNotFound = errors.New("key not found")

	// ErrTypeMismatch is returned when a typed read does not match the stored kind
	ErrTypeMismatch = errors.New("type mismatch")

	// ErrValueUnset is returned when reading a setting that was never given a value
	ErrValueUnset = errors.New("setting value is unset")

	// ErrUnsupportedType is returned when storing a value that is not a supported scalar
	ErrUnsupportedType = errors.New("unsupported value type")

	// ErrMissingRequired is returned by Validate when required keys are absent
	ErrMissingRequired = errors.New("missing required settings")

	// ErrUnencodable is returned when an entry cannot be written as a single line
	ErrUnencodable = errors.New("setting cannot be encoded as a line")

	// ErrUnknownFormat is returned for an unrecognized output format
	ErrUnknownFormat = errors.New("unknown format")
)
