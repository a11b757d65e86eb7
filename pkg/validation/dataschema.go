package validation

import (
	"context"
	"fmt"

	"github.com/goliatone/go-formbuilder/pkg/schema"
	"github.com/goliatone/go-formbuilder/pkg/tree"
)

// ValidateDataSchema checks that ds is a well formed object schema and that
// its OpenAPI rendition passes kin-openapi validation.
func ValidateDataSchema(ctx context.Context, ds schema.DataSchema) SchemaValidationResult {
	result := SchemaValidationResult{Valid: true}
	if err := ctx.Err(); err != nil {
		result.add(SchemaIssue{Message: err.Error()})
		return result
	}

	if ds.Type != "object" {
		result.add(issueAt("#/type", fmt.Sprintf("schema type is %q, want \"object\"", ds.Type)))
	}
	for _, id := range ds.PropertyIDs() {
		prop := ds.Properties[id]
		if !tree.ValidType(tree.KindField, prop.ValueType) || prop.ValueType == tree.FieldTypeEmpty {
			result.add(issueAt("#/properties/"+pointerSegment(id)+"/type", fmt.Sprintf("unsupported property type %q", prop.ValueType)))
		}
	}
	for i, id := range ds.Required {
		if _, ok := ds.Properties[id]; !ok {
			result.add(SchemaIssue{Path: fmt.Sprintf("#/required/%d", i), Field: id, Message: "required id has no property"})
		}
	}

	if err := schema.OpenAPISchema(ds).Validate(ctx); err != nil {
		result.add(issueFromError(err))
	}
	return result
}
