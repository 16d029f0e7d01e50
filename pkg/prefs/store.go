// Package prefs implements the flat, typed user-preference store: a
// registry of named settings with typed defaults, persisted as an
// INI-style record whose values are self-describing JSON literals. The
// store tolerates both older files (missing keys keep their defaults) and
// newer ones (unknown keys are logged and ignored).
package prefs

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"sort"
	"strings"

	encini "github.com/go-viper/encoding/ini"
	"github.com/spf13/viper"
)

// Preference access errors.
var (
	ErrUnknownKey   = errors.New("unknown preference key")
	ErrTypeMismatch = errors.New("preference value type mismatch")
)

// Store holds the current preference values. It starts from the default
// table and is overridden by a persisted file when present and valid.
// Like the collection registry, it assumes a single logical writer.
type Store struct {
	defaults map[string]any
	values   map[string]any
	log      *slog.Logger
}

// Option configures a Store.
type Option func(*Store)

// WithLogger sets the logger used for load and save diagnostics.
func WithLogger(log *slog.Logger) Option {
	return func(s *Store) {
		s.log = log
	}
}

// New returns a store populated with the given default table. The
// default's runtime type fixes the accepted type for each key.
func New(defaults map[string]any, opts ...Option) *Store {
	s := &Store{
		defaults: defaults,
		values:   make(map[string]any, len(defaults)),
		log:      slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.Reset()
	return s
}

// Reset restores every key to its default value.
func (s *Store) Reset() {
	for key, def := range s.defaults {
		s.values[key] = cloneValue(def)
	}
}

// Keys returns all known preference keys, sorted.
func (s *Store) Keys() []string {
	keys := make([]string, 0, len(s.defaults))
	for key := range s.defaults {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// Get returns the current value for key.
func (s *Store) Get(key string) (any, bool) {
	v, ok := s.values[key]
	return v, ok
}

// GetString returns the current value for key as a string.
func (s *Store) GetString(key string) string {
	v, _ := s.values[key].(string)
	return v
}

// GetBool returns the current value for key as a bool.
func (s *Store) GetBool(key string) bool {
	v, _ := s.values[key].(bool)
	return v
}

// GetInt returns the current value for key as an int.
func (s *Store) GetInt(key string) int {
	v, _ := s.values[key].(int)
	return v
}

// GetFloat returns the current value for key as a float64. Integer
// values are converted.
func (s *Store) GetFloat(key string) float64 {
	switch v := s.values[key].(type) {
	case float64:
		return v
	case int:
		return float64(v)
	default:
		return 0
	}
}

// Set stores a new value for key after checking it against the key's
// declared type. An integer is accepted where a float is expected.
func (s *Store) Set(key string, value any) error {
	def, ok := s.defaults[key]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownKey, key)
	}
	coerced, ok := coerceNative(value, def)
	if !ok {
		return fmt.Errorf("%w: %s expects %T", ErrTypeMismatch, key, def)
	}
	s.values[key] = coerced
	return nil
}

// Load reads persisted preferences from path and overrides the in-memory
// values. A missing file is not an error: the store keeps its defaults.
// Keys in the file that are not in the default table are logged and
// ignored. A value that fails to decode or does not match its declared
// type falls back to the default with a warning. Any other read failure
// is logged and leaves the store at its last good state.
func (s *Store) Load(path string) error {
	v, err := newINIReader()
	if err != nil {
		return fmt.Errorf("preparing preferences reader: %w", err)
	}
	v.SetConfigFile(path)
	v.SetConfigType("ini")
	if err := v.ReadInConfig(); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			s.log.Info("no preferences file found, starting with defaults", "path", path)
			return nil
		}
		s.log.Error("failed to read preferences", "path", path, "error", err)
		return fmt.Errorf("reading preferences: %w", err)
	}

	for _, raw := range v.AllKeys() {
		key := strings.TrimPrefix(raw, "default.")
		if _, known := s.defaults[key]; !known {
			s.log.Warn("skipping obsolete preference key", "key", key)
		}
	}

	for key, def := range s.defaults {
		raw, ok := rawValue(v, key)
		if !ok {
			// A new preference key missing from an older file keeps
			// its default.
			continue
		}
		value, err := decodeLiteral(raw, def)
		if err != nil {
			s.log.Warn("failed to parse preference value", "key", key, "error", err)
			s.values[key] = cloneValue(def)
			continue
		}
		coerced, ok := coerceLiteral(value, def)
		if !ok {
			s.log.Warn("falling back to default preference value after type mismatch",
				"key", key, "expected", fmt.Sprintf("%T", def))
			s.values[key] = cloneValue(def)
			continue
		}
		s.values[key] = coerced
	}
	return nil
}

// Save writes every known key's current value to path as one flat
// INI-style record with JSON-encoded values, in sorted key order. A
// write failure is logged; the in-memory state is unaffected either way.
func (s *Store) Save(path string) error {
	var buf bytes.Buffer
	for _, key := range s.Keys() {
		encoded, err := json.Marshal(s.values[key])
		if err != nil {
			s.log.Error("failed to encode preference value", "key", key, "error", err)
			return fmt.Errorf("encoding preference %s: %w", key, err)
		}
		fmt.Fprintf(&buf, "%s = %s\n", key, encoded)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		s.log.Error("failed to write preferences", "path", path, "error", err)
		return fmt.Errorf("writing preferences: %w", err)
	}
	return nil
}

// newINIReader builds a viper instance with the INI codec registered.
// Viper no longer ships the INI format; it lives in go-viper/encoding.
func newINIReader() (*viper.Viper, error) {
	registry := viper.NewCodecRegistry()
	if err := registry.RegisterCodec("ini", encini.Codec{}); err != nil {
		return nil, err
	}
	return viper.NewWithOptions(viper.WithCodecRegistry(registry)), nil
}

// rawValue fetches the persisted literal for key, looking in both the
// unnamed (default) INI section and the flattened key space.
func rawValue(v *viper.Viper, key string) (string, bool) {
	for _, candidate := range []string{key, "default." + key} {
		if v.IsSet(candidate) {
			return v.GetString(candidate), true
		}
	}
	return "", false
}

// decodeLiteral parses one persisted value. Values are JSON literals,
// but the INI reader strips surrounding quotes, so for string keys the
// raw text is taken verbatim when it is not a quoted JSON string. This
// keeps strings that happen to spell other literals ("true", "30")
// from being read back as a bool or number.
func decodeLiteral(raw string, def any) (any, error) {
	if _, ok := def.(string); ok {
		var s string
		if err := json.Unmarshal([]byte(raw), &s); err == nil {
			return s, nil
		}
		return raw, nil
	}
	dec := json.NewDecoder(strings.NewReader(raw))
	dec.UseNumber()
	var value any
	if err := dec.Decode(&value); err != nil {
		return nil, err
	}
	return value, nil
}

// coerceLiteral converts a decoded JSON value to the declared type of
// def. An integer is accepted where a float is expected; nothing else is
// converted.
func coerceLiteral(value any, def any) (any, bool) {
	switch def.(type) {
	case string:
		v, ok := value.(string)
		return v, ok
	case bool:
		v, ok := value.(bool)
		return v, ok
	case int:
		n, ok := value.(json.Number)
		if !ok {
			return nil, false
		}
		i, err := n.Int64()
		if err != nil {
			return nil, false
		}
		return int(i), true
	case float64:
		n, ok := value.(json.Number)
		if !ok {
			return nil, false
		}
		f, err := n.Float64()
		if err != nil {
			return nil, false
		}
		return f, true
	case map[string]any:
		v, ok := value.(map[string]any)
		if !ok {
			return nil, false
		}
		return normalizeNumbers(v), true
	case []any:
		v, ok := value.([]any)
		if !ok {
			return nil, false
		}
		return normalizeNumbers(v), true
	default:
		return nil, false
	}
}

// coerceNative checks an in-process value against the declared type of
// def, converting integers where floats are expected.
func coerceNative(value any, def any) (any, bool) {
	switch def.(type) {
	case string:
		v, ok := value.(string)
		return v, ok
	case bool:
		v, ok := value.(bool)
		return v, ok
	case int:
		switch v := value.(type) {
		case int:
			return v, true
		case int64:
			return int(v), true
		default:
			return nil, false
		}
	case float64:
		switch v := value.(type) {
		case float64:
			return v, true
		case int:
			return float64(v), true
		case int64:
			return float64(v), true
		default:
			return nil, false
		}
	case map[string]any:
		v, ok := value.(map[string]any)
		return v, ok
	case []any:
		v, ok := value.([]any)
		return v, ok
	default:
		return nil, false
	}
}

// normalizeNumbers replaces json.Number values with float64 throughout a
// decoded structure so that open mappings (colors) hold plain numbers.
func normalizeNumbers(value any) any {
	switch v := value.(type) {
	case json.Number:
		f, err := v.Float64()
		if err != nil {
			return v.String()
		}
		return f
	case map[string]any:
		out := make(map[string]any, len(v))
		for k, item := range v {
			out[k] = normalizeNumbers(item)
		}
		return out
	case []any:
		out := make([]any, len(v))
		for i, item := range v {
			out[i] = normalizeNumbers(item)
		}
		return out
	default:
		return v
	}
}

// cloneValue deep-copies a default so that callers mutating an open
// mapping cannot corrupt the default table.
func cloneValue(value any) any {
	switch v := value.(type) {
	case map[string]any:
		out := make(map[string]any, len(v))
		for k, item := range v {
			out[k] = cloneValue(item)
		}
		return out
	case []any:
		out := make([]any, len(v))
		for i, item := range v {
			out[i] = cloneValue(item)
		}
		return out
	default:
		return v
	}
}
