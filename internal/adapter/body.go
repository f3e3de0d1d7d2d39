package adapter

import (
	"bytes"

	"club-mareva-site/internal/content"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/renderer/html"
)

// sanitizer allows the basic formatting markup the CMS produces while
// stripping anything dangerous. Policies are immutable after construction and
// safe for concurrent use.
var sanitizer = bluemonday.UGCPolicy()

// markdown renders with raw HTML passthrough enabled; the sanitizer runs on
// the output, so unsafe rendering never reaches a consumer.
var markdown = goldmark.New(
	goldmark.WithRendererOptions(html.WithUnsafe()),
)

// Sanitize returns markup safe to render verbatim.
func Sanitize(raw string) string {
	return sanitizer.Sanitize(raw)
}

// EnsureBody fills in the derived representations of a content body. Records
// exported by the CMS carry all three; hand-authored data files may carry only
// Raw (HTML or markdown), in which case Clean is rendered and sanitized here
// and Text is stripped from Clean.
func EnsureBody(body content.ContentBody) content.ContentBody {
	if body.Clean == "" && body.Raw != "" {
		var buf bytes.Buffer
		if err := markdown.Convert([]byte(body.Raw), &buf); err == nil {
			body.Clean = sanitizer.Sanitize(buf.String())
		} else {
			body.Clean = sanitizer.Sanitize(body.Raw)
		}
	}
	if body.Text == "" && body.Clean != "" {
		body.Text = StripHTML(body.Clean)
	}
	return body
}
