package schema

import (
	"github.com/getkin/kin-openapi/openapi3"

	"github.com/goliatone/go-formbuilder/pkg/tree"
)

// OpenAPISchema converts d into an OpenAPI 3 object schema. Properties keep
// their titles; number fields map to "number" without a format.
func OpenAPISchema(d DataSchema) *openapi3.Schema {
	out := openapi3.NewObjectSchema()
	for _, id := range d.PropertyIDs() {
		prop := d.Properties[id]
		s := propertySchema(prop.ValueType)
		s.Title = prop.Title
		out = out.WithProperty(id, s)
	}
	if len(d.Required) > 0 {
		out.Required = append([]string{}, d.Required...)
	}
	return out
}

func propertySchema(typ tree.FieldType) *openapi3.Schema {
	switch typ {
	case tree.FieldTypeNumber:
		return openapi3.NewFloat64Schema()
	case tree.FieldTypeBoolean:
		return openapi3.NewBoolSchema()
	case tree.FieldTypeString:
		return openapi3.NewStringSchema()
	default:
		return &openapi3.Schema{}
	}
}
