package session

import (
	"html"
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

// TitleSanitizer cleans a user-entered title before it is committed.
type TitleSanitizer func(string) string

var (
	titlePolicyOnce sync.Once
	titlePolicy     *bluemonday.Policy
)

// StripMarkup removes every HTML element from raw. Titles are rendered as
// labels by the preview, so only their text is kept; entities are decoded
// back so "Name & Address" survives unchanged.
func StripMarkup(raw string) string {
	if !strings.ContainsAny(raw, "<>&") {
		return raw
	}
	titlePolicyOnce.Do(func() {
		titlePolicy = bluemonday.StrictPolicy()
	})
	return html.UnescapeString(titlePolicy.Sanitize(raw))
}
