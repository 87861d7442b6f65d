package clientconf

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Source ordinals follow the MicroProfile config convention: higher
// ordinals take precedence during arbitration.
const (
	OrdinalDefault = 100
	OrdinalFile    = 100
	OrdinalEnv     = 300
	OrdinalCLI     = 400
)

// MapSource is an immutable in-memory property source with a fixed ordinal.
type MapSource struct {
	name    string
	ordinal int
	values  map[string]string
}

// NewMapSource creates a property source from a flat name -> value map.
// The map is copied; the source does not observe later mutations.
func NewMapSource(name string, ordinal int, values map[string]string) *MapSource {
	copied := make(map[string]string, len(values))
	for k, v := range values {
		copied[k] = v
	}
	return &MapSource{name: name, ordinal: ordinal, values: copied}
}

// Name returns the source name used to attribute resolved values.
func (s *MapSource) Name() string { return s.name }

// Ordinal returns the priority rank of the source.
func (s *MapSource) Ordinal() int { return s.ordinal }

// Lookup returns the raw value for an exact property name.
func (s *MapSource) Lookup(name string) (string, bool) {
	v, ok := s.values[name]
	return v, ok
}

// PropertyNames returns the names of all properties the source defines.
func (s *MapSource) PropertyNames() []string {
	names := make([]string, 0, len(s.values))
	for name := range s.values {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Store layers property sources and serves each lookup from the
// highest-ordinal source defining the name. Sources added earlier win ties.
// A Store is safe for concurrent reads once fully assembled.
type Store struct {
	sources []*MapSource
}

// NewStore creates a store over the given sources.
func NewStore(sources ...*MapSource) *Store {
	return &Store{sources: sources}
}

// Add appends a source to the store. Not safe to call concurrently with
// lookups; assemble the store before handing it to a resolver.
func (s *Store) Add(src *MapSource) {
	s.sources = append(s.sources, src)
}

// Lookup implements LookupStore.
func (s *Store) Lookup(name string) (ConfigValue, bool) {
	var best ConfigValue
	found := false
	for _, src := range s.sources {
		raw, ok := src.values[name]
		if !ok {
			continue
		}
		if !found || src.ordinal > best.Ordinal {
			best = ConfigValue{Name: name, Value: raw, Source: src.name, Ordinal: src.ordinal}
			found = true
		}
	}
	return best, found
}

// PropertyNames implements PropertyLister with the union of all source
// names.
func (s *Store) PropertyNames() []string {
	seen := make(map[string]bool)
	var names []string
	for _, src := range s.sources {
		for name := range src.values {
			if !seen[name] {
				seen[name] = true
				names = append(names, name)
			}
		}
	}
	sort.Strings(names)
	return names
}

// NewFileSource loads a TOML, JSON or YAML property file into a source at
// the file ordinal. The format is detected from the file extension first
// and from the content as a fallback. Nested tables are flattened into
// dotted property names; a key that itself contains a separator is
// re-quoted so the canonical quoted spelling survives the round trip.
//
// A missing file returns ErrConfigNotFound.
func NewFileSource(path string) (*MapSource, error) {
	fileData, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, ErrConfigNotFound
		}
		return nil, fmt.Errorf("failed to read config file '%s': %w", path, err)
	}

	format := detectFileFormat(path)
	if format == "" {
		format = detectFormatFromContent(fileData)
		if format == "" {
			return nil, fmt.Errorf("%w: '%s'", ErrUnknownFormat, path)
		}
	}

	parsed := make(map[string]any)
	switch format {
	case "toml":
		if err := toml.Unmarshal(fileData, &parsed); err != nil {
			return nil, fmt.Errorf("failed to parse TOML config file '%s': %w", path, err)
		}
	case "json":
		decoder := json.NewDecoder(bytes.NewReader(fileData))
		decoder.UseNumber() // Preserve number precision
		if err := decoder.Decode(&parsed); err != nil {
			return nil, fmt.Errorf("failed to parse JSON config file '%s': %w", path, err)
		}
	case "yaml":
		if err := yaml.Unmarshal(fileData, &parsed); err != nil {
			return nil, fmt.Errorf("failed to parse YAML config file '%s': %w", path, err)
		}
	default:
		return nil, fmt.Errorf("%w: '%s'", ErrUnknownFormat, path)
	}

	return NewMapSource(filepath.Base(path), OrdinalFile, flattenNames(parsed, "")), nil
}

// NewEnvSource builds a property source from environment variables for the
// given candidate property names. Each name is transformed the MicroProfile
// way: non-alphanumeric characters become underscores and the result is
// uppercased, with the optional prefix prepended.
func NewEnvSource(prefix string, names []string) *MapSource {
	values := make(map[string]string)
	for _, name := range names {
		if v, ok := os.LookupEnv(envTransform(prefix, name)); ok {
			values[name] = v
		}
	}
	return &MapSource{name: "env", ordinal: OrdinalEnv, values: values}
}

// envTransform converts a property name to its environment variable form.
func envTransform(prefix, name string) string {
	var b strings.Builder
	b.Grow(len(prefix) + len(name))
	b.WriteString(prefix)
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z':
			b.WriteRune(r - ('a' - 'A'))
		case (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9'):
			b.WriteRune(r)
		default:
			b.WriteByte('_')
		}
	}
	return b.String()
}

// detectFileFormat determines format from the file extension.
func detectFileFormat(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml", ".tml":
		return "toml"
	case ".json":
		return "json"
	case ".yaml", ".yml":
		return "yaml"
	default:
		return ""
	}
}

// detectFormatFromContent attempts to detect the format by parsing.
func detectFormatFromContent(data []byte) string {
	// Try JSON first (strict format)
	var jsonTest any
	if err := json.Unmarshal(data, &jsonTest); err == nil {
		return "json"
	}

	// Try YAML (superset of JSON, so check after JSON)
	var yamlTest any
	if err := yaml.Unmarshal(data, &yamlTest); err == nil {
		return "yaml"
	}

	var tomlTest any
	if err := toml.Unmarshal(data, &tomlTest); err == nil {
		return "toml"
	}

	return ""
}
