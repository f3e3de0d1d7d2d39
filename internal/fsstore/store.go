// Package fsstore reads the static JSON content directory that backs the site
// when the remote API is disabled or unreachable. The layout is:
//
//	data/
//	  posts/*.json
//	  pages/*.json
//	  upcoming-events.json
//	  signatures.json
//	  metadata/{categories,authors,image-manifest}.json
//
// The store returns raw records in source order semantics (posts sorted,
// status filtered); it performs no time-based filtering, that belongs to the
// service layer.
package fsstore

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"club-mareva-site/internal/adapter"
	"club-mareva-site/internal/content"
	"club-mareva-site/internal/logger"
)

// Store loads content records from a local data directory.
type Store struct {
	dataDir string
	log     logger.Logger
}

// New creates a Store rooted at dataDir.
func New(dataDir string, log logger.Logger) *Store {
	return &Store{dataDir: dataDir, log: log}
}

func loadJSON(path string, out interface{}) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}
	return nil
}

// listJSONFiles returns the .json files directly inside dir.
func listJSONFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read dir %s: %w", dir, err)
	}
	var files []string
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}
		files = append(files, filepath.Join(dir, entry.Name()))
	}
	return files, nil
}

// Posts returns all published posts sorted descending by creation date.
// A corrupt file is logged and skipped; it never aborts the scan.
func (s *Store) Posts() ([]content.Post, error) {
	files, err := listJSONFiles(filepath.Join(s.dataDir, "posts"))
	if err != nil {
		return nil, err
	}

	posts := make([]content.Post, 0, len(files))
	for _, file := range files {
		var post content.Post
		if err := loadJSON(file, &post); err != nil {
			s.log.Error(err, "skipping unreadable post file")
			continue
		}
		if post.Status != content.StatusPublish {
			continue
		}
		post.Content = adapter.EnsureBody(post.Content)
		posts = append(posts, post)
	}

	sort.SliceStable(posts, func(i, j int) bool {
		return laterDate(posts[i].DateCreated, posts[j].DateCreated)
	})
	return posts, nil
}

// Pages returns all published pages. Pages have no defined ordering.
func (s *Store) Pages() ([]content.Page, error) {
	files, err := listJSONFiles(filepath.Join(s.dataDir, "pages"))
	if err != nil {
		return nil, err
	}

	pages := make([]content.Page, 0, len(files))
	for _, file := range files {
		var page content.Page
		if err := loadJSON(file, &page); err != nil {
			s.log.Error(err, "skipping unreadable page file")
			continue
		}
		if page.Status != content.StatusPublish {
			continue
		}
		page.Content = adapter.EnsureBody(page.Content)
		pages = append(pages, page)
	}
	return pages, nil
}

// UpcomingEventRecords returns the full event list as stored, unfiltered.
func (s *Store) UpcomingEventRecords() ([]content.UpcomingEvent, error) {
	var events []content.UpcomingEvent
	if err := loadJSON(filepath.Join(s.dataDir, "upcoming-events.json"), &events); err != nil {
		return nil, err
	}
	return events, nil
}

// Signatures returns the house signature items sorted ascending by order.
func (s *Store) Signatures() ([]content.SignatureItem, error) {
	var items []content.SignatureItem
	if err := loadJSON(filepath.Join(s.dataDir, "signatures.json"), &items); err != nil {
		return nil, err
	}
	sort.SliceStable(items, func(i, j int) bool { return items[i].Order < items[j].Order })
	return items, nil
}

// Categories returns the taxonomy metadata.
func (s *Store) Categories() ([]content.Category, error) {
	var data struct {
		Categories []content.Category `json:"categories"`
	}
	if err := loadJSON(filepath.Join(s.dataDir, "metadata", "categories.json"), &data); err != nil {
		return nil, err
	}
	return data.Categories, nil
}

// Authors returns the author metadata.
func (s *Store) Authors() ([]content.Author, error) {
	var data struct {
		Authors []content.Author `json:"authors"`
	}
	if err := loadJSON(filepath.Join(s.dataDir, "metadata", "authors.json"), &data); err != nil {
		return nil, err
	}
	return data.Authors, nil
}

// ImageManifest returns the map from original remote image URLs to resolved
// local paths.
func (s *Store) ImageManifest() (content.ImageManifest, error) {
	var manifest content.ImageManifest
	if err := loadJSON(filepath.Join(s.dataDir, "metadata", "image-manifest.json"), &manifest); err != nil {
		return nil, err
	}
	return manifest, nil
}

// laterDate reports whether a sorts before b in newest-first order. The store
// dates are ISO-8601, which also sorts lexicographically, so unparseable
// values fall back to a string comparison instead of being dropped.
func laterDate(a, b string) bool {
	ta, errA := time.Parse(time.RFC3339, a)
	tb, errB := time.Parse(time.RFC3339, b)
	if errA == nil && errB == nil {
		return ta.After(tb)
	}
	return a > b
}
