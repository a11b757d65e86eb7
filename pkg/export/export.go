package export

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-formbuilder/pkg/formdata"
	"github.com/goliatone/go-formbuilder/pkg/schema"
	"github.com/goliatone/go-formbuilder/pkg/session"
	"github.com/goliatone/go-formbuilder/pkg/uischema"
)

// Format selects the output encoding.
type Format string

const (
	FormatJSON    Format = "json"
	FormatYAML    Format = "yaml"
	FormatOpenAPI Format = "openapi"
)

// ErrUnknownFormat is returned for formats other than the ones above.
var ErrUnknownFormat = errors.New("export: unknown format")

// ParseFormat normalises a user supplied format name.
func ParseFormat(raw string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(raw))); f {
	case FormatJSON, FormatYAML, FormatOpenAPI:
		return f, nil
	case "yml":
		return FormatYAML, nil
	case "":
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, raw)
	}
}

// Bundle is the exported view of a session.
type Bundle struct {
	Schema   schema.DataSchema `json:"schema" yaml:"schema"`
	UISchema uischema.Element  `json:"uischema" yaml:"uischema"`
	Data     formdata.Data     `json:"data" yaml:"data"`
}

// FromState captures the derived artifacts of st.
func FromState(st session.State) Bundle {
	return Bundle{
		Schema:   st.DataSchema,
		UISchema: st.UILayout,
		Data:     st.FormData,
	}
}

// Marshal encodes v as pretty printed JSON or YAML.
func Marshal(format Format, v any) ([]byte, error) {
	switch format {
	case FormatJSON:
		out, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("export: encode json: %w", err)
		}
		return append(out, '\n'), nil
	case FormatYAML:
		var buf bytes.Buffer
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return nil, fmt.Errorf("export: encode yaml: %w", err)
		}
		if err := enc.Close(); err != nil {
			return nil, fmt.Errorf("export: encode yaml: %w", err)
		}
		return buf.Bytes(), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

// Encode renders b in format. The OpenAPI format only carries the data
// schema.
func Encode(ctx context.Context, format Format, b Bundle) ([]byte, error) {
	if format == FormatOpenAPI {
		return OpenAPI(ctx, b.Schema, OpenAPIOptions{})
	}
	return Marshal(format, b)
}
