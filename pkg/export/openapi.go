package export

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/goliatone/go-formbuilder/pkg/schema"
)

const openAPIVersion = "3.0.3"

// OpenAPIOptions names the generated document and component.
type OpenAPIOptions struct {
	Title      string
	Version    string
	SchemaName string
}

func (o OpenAPIOptions) withDefaults() OpenAPIOptions {
	if o.Title == "" {
		o.Title = "Form"
	}
	if o.Version == "" {
		o.Version = "1.0.0"
	}
	if o.SchemaName == "" {
		o.SchemaName = "Form"
	}
	return o
}

// Document builds an OpenAPI document holding ds under
// components.schemas[SchemaName] and validates it.
func Document(ctx context.Context, ds schema.DataSchema, opts OpenAPIOptions) (*openapi3.T, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	opts = opts.withDefaults()

	doc := &openapi3.T{
		OpenAPI: openAPIVersion,
		Info: &openapi3.Info{
			Title:   opts.Title,
			Version: opts.Version,
		},
		Paths: openapi3.NewPaths(),
		Components: &openapi3.Components{
			Schemas: openapi3.Schemas{
				opts.SchemaName: openapi3.NewSchemaRef("", schema.OpenAPISchema(ds)),
			},
		},
	}
	if err := doc.Validate(ctx); err != nil {
		return nil, fmt.Errorf("export: openapi document: %w", err)
	}
	return doc, nil
}

// OpenAPI renders Document as indented JSON.
func OpenAPI(ctx context.Context, ds schema.DataSchema, opts OpenAPIOptions) ([]byte, error) {
	doc, err := Document(ctx, ds, opts)
	if err != nil {
		return nil, err
	}
	out, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("export: encode openapi: %w", err)
	}
	return append(out, '\n'), nil
}
