package store

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Format identifies the on-disk encoding of a store file.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

// FormatFor picks the format from the file extension, defaulting to JSON.
func FormatFor(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	case ".toml":
		return FormatTOML
	default:
		return FormatJSON
	}
}

// Encode renders a Document in the given format.
func Encode(doc *Document, format Format) ([]byte, error) {
	doc.normalize()

	switch format {
	case FormatYAML:
		var buf bytes.Buffer
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return nil, fmt.Errorf("serializing YAML: %w", err)
		}
		if err := enc.Close(); err != nil {
			return nil, fmt.Errorf("serializing YAML: %w", err)
		}
		return buf.Bytes(), nil

	case FormatTOML:
		var buf bytes.Buffer
		if err := toml.NewEncoder(&buf).Encode(doc); err != nil {
			return nil, fmt.Errorf("serializing TOML: %w", err)
		}
		return buf.Bytes(), nil

	default:
		data, err := json.MarshalIndent(doc, "", "    ")
		if err != nil {
			return nil, fmt.Errorf("serializing JSON: %w", err)
		}
		return append(data, '\n'), nil
	}
}

// Decode parses store content in the given format. JSON content is checked
// against the document schema first; YAML and TOML reject unknown fields.
func Decode(data []byte, format Format) (*Document, error) {
	doc := &Document{}

	switch format {
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(doc); err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("parsing YAML: %w", err)
		}

	case FormatTOML:
		md, err := toml.Decode(string(data), doc)
		if err != nil {
			return nil, fmt.Errorf("parsing TOML: %w", err)
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			keys := make([]string, 0, len(undecoded))
			for _, k := range undecoded {
				keys = append(keys, k.String())
			}
			sort.Strings(keys)
			return nil, fmt.Errorf("parsing TOML: unknown keys %s", strings.Join(keys, ", "))
		}

	default:
		if err := ValidateJSON(data); err != nil {
			return nil, err
		}
		if err := json.Unmarshal(data, doc); err != nil {
			return nil, fmt.Errorf("parsing JSON: %w", err)
		}
	}

	doc.normalize()
	return doc, nil
}
