//go:build unit

package fsstore

import (
	"os"
	"path/filepath"
	"testing"

	"club-mareva-site/internal/logger"
)

// writeFile creates a fixture file, making parent directories as needed.
func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

func newTestStore(t *testing.T) (*Store, string) {
	t.Helper()
	dir := t.TempDir()
	return New(dir, logger.Nop()), dir
}

func TestPosts(t *testing.T) {
	store, dir := newTestStore(t)
	writeFile(t, filepath.Join(dir, "posts", "older.json"), `{
		"id": 1, "title": "Older", "slug": "older", "status": "publish",
		"date_created": "2025-01-01T10:00:00Z", "date_modified": "2025-01-01T10:00:00Z",
		"content": {"raw": "<p>a</p>", "clean": "<p>a</p>", "text": "a"}
	}`)
	writeFile(t, filepath.Join(dir, "posts", "newer.json"), `{
		"id": 2, "title": "Newer", "slug": "newer", "status": "publish",
		"date_created": "2025-03-01T10:00:00Z", "date_modified": "2025-03-01T10:00:00Z",
		"content": {"raw": "<p>b</p>", "clean": "<p>b</p>", "text": "b"}
	}`)
	writeFile(t, filepath.Join(dir, "posts", "draft.json"), `{
		"id": 3, "title": "Draft", "slug": "draft", "status": "draft",
		"date_created": "2025-04-01T10:00:00Z", "date_modified": "2025-04-01T10:00:00Z",
		"content": {"raw": "", "clean": "", "text": ""}
	}`)

	posts, err := store.Posts()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(posts) != 2 {
		t.Fatalf("expected 2 published posts, got %d", len(posts))
	}
	if posts[0].Slug != "newer" || posts[1].Slug != "older" {
		t.Errorf("expected newest-first order, got %q then %q", posts[0].Slug, posts[1].Slug)
	}
	for _, post := range posts {
		if post.Status != "publish" {
			t.Errorf("unpublished post leaked through: %+v", post)
		}
	}
}

func TestPostsSkipsCorruptFile(t *testing.T) {
	store, dir := newTestStore(t)
	writeFile(t, filepath.Join(dir, "posts", "good.json"), `{
		"id": 1, "title": "Good", "slug": "good", "status": "publish",
		"date_created": "2025-01-01T10:00:00Z", "date_modified": "2025-01-01T10:00:00Z",
		"content": {"raw": "", "clean": "", "text": ""}
	}`)
	writeFile(t, filepath.Join(dir, "posts", "bad.json"), `{this is not json`)

	posts, err := store.Posts()
	if err != nil {
		t.Fatalf("a corrupt file must not abort the scan: %v", err)
	}
	if len(posts) != 1 || posts[0].Slug != "good" {
		t.Errorf("expected exactly the valid post, got %+v", posts)
	}
}

func TestPostsMissingDirectory(t *testing.T) {
	store, _ := newTestStore(t)
	if _, err := store.Posts(); err == nil {
		t.Fatal("expected an error for a missing posts directory")
	}
}

func TestPagesDerivesCleanFromMarkdown(t *testing.T) {
	store, dir := newTestStore(t)
	writeFile(t, filepath.Join(dir, "pages", "about.json"), `{
		"id": 10, "title": "About", "slug": "about", "status": "publish",
		"date_created": "2025-01-01T10:00:00Z", "date_modified": "2025-01-01T10:00:00Z",
		"content": {"raw": "# About Us\n\nA private lounge.", "clean": "", "text": ""}
	}`)

	pages, err := store.Pages()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(pages) != 1 {
		t.Fatalf("expected 1 page, got %d", len(pages))
	}
	body := pages[0].Content
	if body.Clean == "" {
		t.Fatal("expected clean content to be rendered from raw markdown")
	}
	if body.Text == "" {
		t.Fatal("expected text content to be derived")
	}
}

func TestUpcomingEventRecords(t *testing.T) {
	store, dir := newTestStore(t)
	writeFile(t, filepath.Join(dir, "upcoming-events.json"), `[
		{"id": "e1", "title": "Past", "date": "2020-01-01T19:00:00Z"},
		{"id": "e2", "title": "Future", "date": "2099-01-01T19:00:00Z"}
	]`)

	events, err := store.UpcomingEventRecords()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// The store returns the raw list; upcoming filtering is the service's job.
	if len(events) != 2 {
		t.Errorf("expected the unfiltered list, got %d records", len(events))
	}
}

func TestSignaturesSortedByOrder(t *testing.T) {
	store, dir := newTestStore(t)
	writeFile(t, filepath.Join(dir, "signatures.json"), `[
		{"id": "s2", "title": "Second", "order": 2},
		{"id": "s1", "title": "First", "order": 1}
	]`)

	items, err := store.Signatures()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(items) != 2 || items[0].ID != "s1" || items[1].ID != "s2" {
		t.Errorf("expected ascending order, got %+v", items)
	}
}

func TestMetadata(t *testing.T) {
	store, dir := newTestStore(t)
	writeFile(t, filepath.Join(dir, "metadata", "categories.json"),
		`{"categories": [{"id": 1, "name": "News", "slug": "news", "parent": null}]}`)
	writeFile(t, filepath.Join(dir, "metadata", "authors.json"),
		`{"authors": [{"id": 1, "name": "Staff", "login": "staff"}]}`)
	writeFile(t, filepath.Join(dir, "metadata", "image-manifest.json"),
		`{"http://cdn/x.jpg": "images/local/x.jpg"}`)

	categories, err := store.Categories()
	if err != nil || len(categories) != 1 || categories[0].Slug != "news" {
		t.Errorf("unexpected categories: %v, err %v", categories, err)
	}

	authors, err := store.Authors()
	if err != nil || len(authors) != 1 || authors[0].Login != "staff" {
		t.Errorf("unexpected authors: %v, err %v", authors, err)
	}

	manifest, err := store.ImageManifest()
	if err != nil || manifest["http://cdn/x.jpg"] != "images/local/x.jpg" {
		t.Errorf("unexpected manifest: %v, err %v", manifest, err)
	}
}
