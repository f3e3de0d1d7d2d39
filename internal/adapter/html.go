package adapter

import (
	"regexp"
	"strings"
)

var (
	tagPattern        = regexp.MustCompile(`<[^>]*>`)
	whitespacePattern = regexp.MustCompile(`\s+`)

	// The CMS export only ever produces these named entities in body text, so
	// decoding is limited to exactly this set for compatibility.
	entityReplacer = strings.NewReplacer(
		"&amp;", "&",
		"&lt;", "<",
		"&gt;", ">",
		"&quot;", `"`,
		"&#039;", "'",
		"&nbsp;", " ",
	)
)

// StripHTML removes markup from an HTML fragment, decodes the common named
// entities, and collapses runs of whitespace into single spaces.
func StripHTML(html string) string {
	text := tagPattern.ReplaceAllString(html, "")
	text = entityReplacer.Replace(text)
	text = whitespacePattern.ReplaceAllString(text, " ")
	return strings.TrimSpace(text)
}
