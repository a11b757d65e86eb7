package validation

import (
	"strings"
)

// SchemaIssue represents a validation error with optional location metadata.
type SchemaIssue struct {
	Path    string `json:"path,omitempty"`
	Field   string `json:"field,omitempty"`
	Message string `json:"message"`
}

// SchemaValidationResult captures validation outcomes for previews and
// exports.
type SchemaValidationResult struct {
	Valid  bool          `json:"valid"`
	Issues []SchemaIssue `json:"issues,omitempty"`
}

func (r *SchemaValidationResult) add(issue SchemaIssue) {
	r.Valid = false
	r.Issues = append(r.Issues, issue)
}

func issueAt(path, message string) SchemaIssue {
	return SchemaIssue{Path: path, Field: fieldPathFromPointer(path), Message: message}
}

func issueFromError(err error) SchemaIssue {
	if err == nil {
		return SchemaIssue{Message: "unknown error"}
	}
	msg := strings.TrimSpace(err.Error())
	path := extractJSONPointer(msg)
	if path != "" {
		msg = strings.Replace(msg, " at "+path, "", 1)
	}
	msg = strings.TrimPrefix(msg, "openapi3: ")
	return issueAt(path, strings.TrimSpace(msg))
}

func extractJSONPointer(message string) string {
	if idx := strings.LastIndex(message, " at "); idx >= 0 {
		return trimPointer(message[idx+4:])
	}
	if idx := strings.LastIndex(message, "#/"); idx >= 0 {
		return trimPointer(message[idx:])
	}
	return ""
}

func trimPointer(pointer string) string {
	return strings.TrimSpace(strings.TrimRight(strings.TrimSpace(pointer), ".)];,"))
}

// fieldPathFromPointer turns "#/properties/email/type" into "email".
func fieldPathFromPointer(pointer string) string {
	trimmed := strings.TrimPrefix(strings.TrimSpace(pointer), "#")
	trimmed = strings.TrimPrefix(trimmed, "/")
	if trimmed == "" {
		return ""
	}

	parts := strings.Split(trimmed, "/")
	for idx := 0; idx+1 < len(parts); idx++ {
		if parts[idx] == "properties" {
			segment := strings.ReplaceAll(parts[idx+1], "~1", "/")
			return strings.ReplaceAll(segment, "~0", "~")
		}
	}
	return ""
}

func pointerSegment(id string) string {
	return strings.ReplaceAll(strings.ReplaceAll(id, "~", "~0"), "/", "~1")
}
