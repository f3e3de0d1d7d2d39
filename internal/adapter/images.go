package adapter

import "strings"

// ResolveImagePath normalizes a possibly-absent image path for display.
// Absolute HTTP(S) URLs pass through untouched; anything else gets exactly one
// leading slash. The function is idempotent.
func ResolveImagePath(path string) string {
	if path == "" {
		return ""
	}
	if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		return path
	}
	return "/" + strings.TrimLeft(path, "/")
}
