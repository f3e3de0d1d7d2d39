// Package service is the content façade: one entry point per query shape,
// owning source selection, remote-to-filesystem fallback, and memoization.
// Content queries never return transport errors to callers; a failed source
// degrades to the other source, and with both sources down a list query
// yields an empty slice and a single-item query yields ErrNotFound.
package service

import (
	"context"
	"encoding/json"
	"errors"
	"sort"
	"strings"
	"time"

	"club-mareva-site/internal/adapter"
	"club-mareva-site/internal/api"
	"club-mareva-site/internal/cache"
	"club-mareva-site/internal/content"
	"club-mareva-site/internal/logger"
)

// ErrNotFound is the not-found result for single-item queries. It is the only
// error a content query can return.
var ErrNotFound = errors.New("content not found")

// Mode selects the primary content source for every query uniformly.
type Mode string

const (
	// ModeRemote queries the content API first and falls back to the
	// filesystem store on any failure.
	ModeRemote Mode = "remote"
	// ModeFilesystem serves the static data directory only.
	ModeFilesystem Mode = "filesystem"
)

// ParseMode maps a configuration string onto a Mode, defaulting to
// filesystem.
func ParseMode(s string) Mode {
	if s == string(ModeRemote) {
		return ModeRemote
	}
	return ModeFilesystem
}

// RemoteSource is the slice of the API client the façade consumes.
type RemoteSource interface {
	AllNews(ctx context.Context, page, limit int) (*api.Paginated[api.NewsArticle], error)
	LatestNews(ctx context.Context, limit int) (*api.Paginated[api.NewsArticle], error)
	NewsBySlug(ctx context.Context, slug string) (*api.NewsArticle, error)
	UpcomingEvents(ctx context.Context, limit int) (*api.Paginated[api.Event], error)
	EventBySlug(ctx context.Context, slug string) (*api.Event, error)
	CigarBrands(ctx context.Context, limit int) (*api.Paginated[api.CigarBrand], error)
	CigarBrandByID(ctx context.Context, id string) (*api.CigarBrand, error)
	SubmitContact(ctx context.Context, sub api.ContactSubmission) (*api.MessageResponse, error)
	RegisterForEvent(ctx context.Context, eventID string, reg api.EventRegistration) (*api.MessageResponse, error)
}

// FileStore is the slice of the filesystem store the façade consumes.
type FileStore interface {
	Posts() ([]content.Post, error)
	Pages() ([]content.Page, error)
	UpcomingEventRecords() ([]content.UpcomingEvent, error)
	Signatures() ([]content.SignatureItem, error)
	Categories() ([]content.Category, error)
	Authors() ([]content.Author, error)
	ImageManifest() (content.ImageManifest, error)
}

// TTLs are the freshness windows for remote-sourced cache entries.
// Filesystem entries never expire; they are dropped only by ClearCache.
type TTLs struct {
	News   time.Duration
	Events time.Duration
	Brands time.Duration
}

// ContentService is the façade.
type ContentService struct {
	mode   Mode
	remote RemoteSource
	files  FileStore
	cache  cache.Cache
	ttl    TTLs
	log    logger.Logger
	now    func() time.Time
}

// Option configures optional ContentService behavior.
type Option func(*ContentService)

// WithClock overrides the time source used for upcoming-event filtering.
func WithClock(now func() time.Time) Option {
	return func(s *ContentService) { s.now = now }
}

// NewContentService creates the façade. The mode is fixed for the lifetime of
// the service; it is not per-call configurable.
func NewContentService(mode Mode, remote RemoteSource, files FileStore, c cache.Cache, ttl TTLs, log logger.Logger, opts ...Option) *ContentService {
	s := &ContentService{
		mode:   mode,
		remote: remote,
		files:  files,
		cache:  c,
		ttl:    ttl,
		log:    log,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Mode reports the active content source mode.
func (s *ContentService) Mode() Mode {
	return s.mode
}

// ClearCache drops every memoized collection so the next query hits the
// sources again.
func (s *ContentService) ClearCache() {
	if err := s.cache.Clear(); err != nil {
		s.log.Error(err, "failed to clear content cache")
	}
}

// cached loads a memoized value into out, reporting whether it was present.
// Cache failures degrade to a miss.
func (s *ContentService) cached(key string, out interface{}) bool {
	raw, ok, err := s.cache.Get(key)
	if err != nil {
		s.log.Error(err, "cache read failed for "+key)
		return false
	}
	if !ok {
		return false
	}
	if err := json.Unmarshal(raw, out); err != nil {
		s.log.Error(err, "corrupt cache entry "+key)
		_ = s.cache.Delete(key)
		return false
	}
	return true
}

// memoize stores a value under key. Failures are logged and ignored; caching
// is never correctness-critical.
func (s *ContentService) memoize(key string, value interface{}, ttl time.Duration) {
	raw, err := json.Marshal(value)
	if err != nil {
		s.log.Error(err, "cache marshal failed for "+key)
		return
	}
	if err := s.cache.Set(key, raw, ttl); err != nil {
		s.log.Error(err, "cache write failed for "+key)
	}
}

// ---- Posts ----

// fsPosts is the filesystem pipeline for posts: memoized scan, published
// only, newest first.
func (s *ContentService) fsPosts() []content.Post {
	var posts []content.Post
	if s.cached("posts:fs", &posts) {
		return posts
	}
	posts, err := s.files.Posts()
	if err != nil {
		s.log.Error(err, "failed to load posts from filesystem")
		return []content.Post{}
	}
	s.memoize("posts:fs", posts, 0)
	return posts
}

// GetAllPosts returns every published post, newest first.
func (s *ContentService) GetAllPosts(ctx context.Context) []content.Post {
	if s.mode == ModeRemote {
		var posts []content.Post
		if s.cached("posts:remote", &posts) {
			return posts
		}
		resp, err := s.remote.AllNews(ctx, 1, api.DefaultNewsLimit)
		if err == nil {
			posts = make([]content.Post, 0, len(resp.Items))
			for _, item := range resp.Items {
				posts = append(posts, adapter.NewsToPost(item))
			}
			s.memoize("posts:remote", posts, s.ttl.News)
			return posts
		}
		s.log.Error(err, "API error fetching all posts, falling back to filesystem")
	}
	return s.fsPosts()
}

// GetLatestPosts returns the newest count posts. In remote mode the API is
// asked for a smaller page directly; the ordering matches GetAllPosts.
func (s *ContentService) GetLatestPosts(ctx context.Context, count int) []content.Post {
	if count <= 0 {
		return []content.Post{}
	}
	if s.mode == ModeRemote {
		key := "posts:remote:latest"
		var posts []content.Post
		if s.cached(key, &posts) && len(posts) >= count {
			return posts[:count]
		}
		resp, err := s.remote.LatestNews(ctx, count)
		if err == nil {
			posts = make([]content.Post, 0, len(resp.Items))
			for _, item := range resp.Items {
				posts = append(posts, adapter.NewsToPost(item))
			}
			s.memoize(key, posts, s.ttl.News)
			return posts
		}
		s.log.Error(err, "API error fetching latest posts, falling back to filesystem")
	}
	posts := s.fsPosts()
	if count > len(posts) {
		count = len(posts)
	}
	return posts[:count]
}

// GetPostBySlug returns one post, or ErrNotFound.
func (s *ContentService) GetPostBySlug(ctx context.Context, slug string) (*content.Post, error) {
	if s.mode == ModeRemote {
		article, err := s.remote.NewsBySlug(ctx, slug)
		if err == nil {
			post := adapter.NewsToPost(*article)
			return &post, nil
		}
		s.log.Error(err, "API error fetching post \""+slug+"\", falling back to filesystem")
	}
	for _, post := range s.fsPosts() {
		if post.Slug == slug {
			return &post, nil
		}
	}
	return nil, ErrNotFound
}

// GetPostsByCategory filters the full post list by case-insensitive category
// membership.
func (s *ContentService) GetPostsByCategory(ctx context.Context, category string) []content.Post {
	posts := s.GetAllPosts(ctx)
	filtered := make([]content.Post, 0, len(posts))
	for _, post := range posts {
		for _, c := range post.Categories {
			if strings.EqualFold(c, category) {
				filtered = append(filtered, post)
				break
			}
		}
	}
	return filtered
}

// ---- Upcoming events ----

// fsEventRecords returns the memoized raw event list. Filtering happens at
// call time so a long-lived process never serves an event that has passed.
func (s *ContentService) fsEventRecords() []content.UpcomingEvent {
	var events []content.UpcomingEvent
	if s.cached("events:fs", &events) {
		return events
	}
	events, err := s.files.UpcomingEventRecords()
	if err != nil {
		s.log.Error(err, "failed to load events from filesystem")
		return []content.UpcomingEvent{}
	}
	s.memoize("events:fs", events, 0)
	return events
}

// upcomingOnly keeps events strictly in the future and sorts them ascending
// by date. Events with unparseable dates cannot be compared to now and are
// excluded.
func (s *ContentService) upcomingOnly(events []content.UpcomingEvent) []content.UpcomingEvent {
	now := s.now()
	upcoming := make([]content.UpcomingEvent, 0, len(events))
	type dated struct {
		event content.UpcomingEvent
		at    time.Time
	}
	parsed := make([]dated, 0, len(events))
	for _, event := range events {
		at, err := time.Parse(time.RFC3339, event.Date)
		if err != nil || !at.After(now) {
			continue
		}
		parsed = append(parsed, dated{event: event, at: at})
	}
	sort.SliceStable(parsed, func(i, j int) bool { return parsed[i].at.Before(parsed[j].at) })
	for _, d := range parsed {
		upcoming = append(upcoming, d.event)
	}
	return upcoming
}

// GetUpcomingEvents returns future events, soonest first. The upcoming filter
// runs against the current clock in both modes.
func (s *ContentService) GetUpcomingEvents(ctx context.Context) []content.UpcomingEvent {
	if s.mode == ModeRemote {
		var events []content.UpcomingEvent
		if s.cached("events:remote", &events) {
			return s.upcomingOnly(events)
		}
		resp, err := s.remote.UpcomingEvents(ctx, api.DefaultEventsLimit)
		if err == nil {
			events = make([]content.UpcomingEvent, 0, len(resp.Items))
			for _, item := range resp.Items {
				events = append(events, adapter.EventToUpcomingEvent(item))
			}
			s.memoize("events:remote", events, s.ttl.Events)
			return s.upcomingOnly(events)
		}
		s.log.Error(err, "API error fetching upcoming events, falling back to filesystem")
	}
	return s.upcomingOnly(s.fsEventRecords())
}

// GetUpcomingEventBySlug returns one upcoming event matched by slug or id, or
// ErrNotFound.
func (s *ContentService) GetUpcomingEventBySlug(ctx context.Context, slug string) (*content.UpcomingEvent, error) {
	if s.mode == ModeRemote {
		raw, err := s.remote.EventBySlug(ctx, slug)
		if err == nil {
			event := adapter.EventToUpcomingEvent(*raw)
			return &event, nil
		}
		s.log.Error(err, "API error fetching event \""+slug+"\", falling back to filesystem")
	}
	for _, event := range s.upcomingOnly(s.fsEventRecords()) {
		if event.Slug == slug || event.ID == slug {
			return &event, nil
		}
	}
	return nil, ErrNotFound
}

// GetUpcomingEventByID looks an event up by its id.
//
// Deprecated: routing moved to slugs; use GetUpcomingEventBySlug.
func (s *ContentService) GetUpcomingEventByID(ctx context.Context, id string) (*content.UpcomingEvent, error) {
	return s.GetUpcomingEventBySlug(ctx, id)
}

// GetAllUpcomingEventSlugs returns the routing identifiers of every upcoming
// event, soonest first.
func (s *ContentService) GetAllUpcomingEventSlugs(ctx context.Context) []string {
	events := s.GetUpcomingEvents(ctx)
	slugs := make([]string, 0, len(events))
	for _, event := range events {
		slugs = append(slugs, event.RouteSlug())
	}
	return slugs
}

// ---- Pages ----

// GetAllPages returns every published page. Pages are filesystem-only; the
// remote API has no equivalent endpoint, so the mode flag does not apply.
func (s *ContentService) GetAllPages(ctx context.Context) []content.Page {
	var pages []content.Page
	if s.cached("pages:fs", &pages) {
		return pages
	}
	pages, err := s.files.Pages()
	if err != nil {
		s.log.Error(err, "failed to load pages from filesystem")
		return []content.Page{}
	}
	s.memoize("pages:fs", pages, 0)
	return pages
}

// GetPageBySlug returns one page, or ErrNotFound.
func (s *ContentService) GetPageBySlug(ctx context.Context, slug string) (*content.Page, error) {
	for _, page := range s.GetAllPages(ctx) {
		if page.Slug == slug {
			return &page, nil
		}
	}
	return nil, ErrNotFound
}

// ---- Brands ----

// GetBrands returns the enriched brand listing. Brands only exist in the
// remote API; there is no filesystem fallback, so a failure yields an empty
// list and the presentation layer's hardcoded fallback takes over.
func (s *ContentService) GetBrands(ctx context.Context) []content.Brand {
	var brands []content.Brand
	if s.cached("brands:remote", &brands) {
		return brands
	}
	resp, err := s.remote.CigarBrands(ctx, api.DefaultBrandsLimit)
	if err != nil {
		s.log.Error(err, "API error fetching cigar brands")
		return []content.Brand{}
	}
	brands = make([]content.Brand, 0, len(resp.Items))
	for _, item := range resp.Items {
		brands = append(brands, adapter.BrandToBrand(item))
	}
	s.memoize("brands:remote", brands, s.ttl.Brands)
	return brands
}

// GetShowcaseBrands returns the minimal name/logo projection for the logo
// wall.
func (s *ContentService) GetShowcaseBrands(ctx context.Context) []content.ShowcaseBrand {
	var brands []content.ShowcaseBrand
	if s.cached("brands:showcase", &brands) {
		return brands
	}
	resp, err := s.remote.CigarBrands(ctx, api.DefaultBrandsLimit)
	if err != nil {
		s.log.Error(err, "API error fetching showcase brands")
		return []content.ShowcaseBrand{}
	}
	brands = make([]content.ShowcaseBrand, 0, len(resp.Items))
	for _, item := range resp.Items {
		brands = append(brands, adapter.BrandToShowcase(item))
	}
	s.memoize("brands:showcase", brands, s.ttl.Brands)
	return brands
}

// GetBrandByID returns one enriched brand, or ErrNotFound.
func (s *ContentService) GetBrandByID(ctx context.Context, id string) (*content.Brand, error) {
	raw, err := s.remote.CigarBrandByID(ctx, id)
	if err != nil {
		s.log.Error(err, "API error fetching cigar brand \""+id+"\"")
		return nil, ErrNotFound
	}
	brand := adapter.BrandToBrand(*raw)
	return &brand, nil
}

// ---- Metadata, signatures, images ----

// GetCategories returns the taxonomy metadata (filesystem only).
func (s *ContentService) GetCategories(ctx context.Context) []content.Category {
	var categories []content.Category
	if s.cached("categories:fs", &categories) {
		return categories
	}
	categories, err := s.files.Categories()
	if err != nil {
		s.log.Error(err, "failed to load categories")
		return []content.Category{}
	}
	s.memoize("categories:fs", categories, 0)
	return categories
}

// GetAuthors returns the author metadata (filesystem only, uncached as in the
// original site).
func (s *ContentService) GetAuthors(ctx context.Context) []content.Author {
	authors, err := s.files.Authors()
	if err != nil {
		s.log.Error(err, "failed to load authors")
		return []content.Author{}
	}
	return authors
}

// GetSignatures returns the house signature items in display order
// (filesystem only).
func (s *ContentService) GetSignatures(ctx context.Context) []content.SignatureItem {
	var items []content.SignatureItem
	if s.cached("signatures:fs", &items) {
		return items
	}
	items, err := s.files.Signatures()
	if err != nil {
		s.log.Error(err, "failed to load signatures")
		return []content.SignatureItem{}
	}
	s.memoize("signatures:fs", items, 0)
	return items
}

// GetImagePath resolves an original image URL for display. Remote mode serves
// CDN URLs as-is; filesystem mode consults the image manifest and falls back
// to the original URL on a miss.
func (s *ContentService) GetImagePath(ctx context.Context, originalURL string) string {
	if s.mode == ModeRemote {
		return originalURL
	}
	var manifest content.ImageManifest
	if !s.cached("manifest:fs", &manifest) {
		var err error
		manifest, err = s.files.ImageManifest()
		if err != nil {
			s.log.Error(err, "failed to load image manifest")
			return originalURL
		}
		s.memoize("manifest:fs", manifest, 0)
	}
	if localPath, ok := manifest[originalURL]; ok {
		return adapter.ResolveImagePath(localPath)
	}
	return originalURL
}
