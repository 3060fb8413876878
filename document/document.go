package document

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"math"
	"os"

	"github.com/erraggy/oascomponents/internal/fileutil"
	"github.com/erraggy/oascomponents/oaserrors"
	"go.yaml.in/yaml/v4"
)

// Document is a fully materialized API description: a tree of
// map[string]any, []any and JSON scalars.
type Document = map[string]any

// Load reads the document at path. The format is chosen by file extension,
// falling back to content sniffing. A missing file returns an error
// matching oaserrors.ErrNotFound.
func Load(path string) (Document, Format, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, FormatUnknown, &oaserrors.NotFoundError{Path: path, Cause: err}
		}
		return nil, FormatUnknown, fmt.Errorf("document: failed to read file: %w", err)
	}

	format := FormatFromPath(path)
	if format == FormatUnknown {
		format = FormatFromContent(data)
	}
	doc, err := Parse(data, format)
	if err != nil {
		var pErr *oaserrors.ParseError
		if errors.As(err, &pErr) {
			pErr.Path = path
		}
		return nil, format, err
	}
	return doc, format, nil
}

// Parse decodes data in the given format. FormatUnknown sniffs the content.
//
// YAML values are converted to the JSON value model. The non-finite YAML
// floats .inf, -.inf and .nan have no JSON form and are kept as those
// strings.
func Parse(data []byte, format Format) (Document, error) {
	if format == FormatUnknown {
		format = FormatFromContent(data)
	}

	var raw any
	switch format {
	case FormatJSON:
		if err := json.Unmarshal(data, &raw); err != nil {
			return nil, &oaserrors.ParseError{Format: string(format), Cause: err}
		}
	case FormatYAML:
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return nil, &oaserrors.ParseError{Format: string(format), Cause: err}
		}
		var err error
		if raw, err = normalize(raw); err != nil {
			return nil, &oaserrors.ParseError{Format: string(format), Cause: err}
		}
	default:
		return nil, &oaserrors.ParseError{Message: "empty document"}
	}

	doc, ok := raw.(map[string]any)
	if !ok {
		return nil, &oaserrors.ParseError{
			Format:  string(format),
			Message: fmt.Sprintf("document root must be a mapping, got %T", raw),
		}
	}
	return doc, nil
}

// Marshal encodes doc in the given format. JSON is indented with two
// spaces; FormatUnknown encodes as JSON.
func Marshal(doc Document, format Format) ([]byte, error) {
	if format == FormatYAML {
		return yaml.Marshal(doc)
	}
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Write encodes doc and writes it to path. Failures are reported as
// *oaserrors.WriteError.
func Write(path string, doc Document, format Format) error {
	if format == FormatUnknown {
		format = FormatFromPath(path)
	}
	data, err := Marshal(doc, format)
	if err != nil {
		return &oaserrors.WriteError{Path: path, Cause: err}
	}
	if err := os.WriteFile(path, data, fileutil.OwnerReadWrite); err != nil {
		return &oaserrors.WriteError{Path: path, Cause: err}
	}
	return nil
}

// normalize converts a decoded YAML tree into the JSON value model so
// that YAML and JSON sources compare and merge identically: mappings
// become map[string]any and numbers become float64. Non-finite floats
// are replaced by their YAML spelling.
func normalize(v any) (any, error) {
	data, err := json.Marshal(stringKeys(v))
	if err != nil {
		return nil, err
	}
	var out any
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func stringKeys(v any) any {
	switch t := v.(type) {
	case map[string]any:
		for k, val := range t {
			t[k] = stringKeys(val)
		}
		return t
	case map[any]any:
		m := make(map[string]any, len(t))
		for k, val := range t {
			m[fmt.Sprint(k)] = stringKeys(val)
		}
		return m
	case []any:
		for i, val := range t {
			t[i] = stringKeys(val)
		}
		return t
	case float64:
		switch {
		case math.IsNaN(t):
			return ".nan"
		case math.IsInf(t, 1):
			return ".inf"
		case math.IsInf(t, -1):
			return "-.inf"
		}
		return t
	default:
		return v
	}
}
