package validation

import (
	"html"
	"strings"
)

// escaper replaces the characters that can open markup, attributes or
// script contexts with HTML entities.
var escaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&#x27;",
	"/", "&#x2F;",
	`\`, "&#x5C;",
	"`", "&#96;",
)

// Escape HTML-escapes s. The input is unescaped first, so
// Escape(Escape(s)) == Escape(s) and an already escaped value is stored
// once-escaped instead of accumulating "&amp;amp;" chains.
func Escape(s string) string {
	return escaper.Replace(html.UnescapeString(s))
}
