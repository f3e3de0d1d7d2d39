package api

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
)

// DefaultNewsLimit is large enough to fetch the whole archive in one page.
const DefaultNewsLimit = 200

// AllNews fetches a page of news articles.
func (c *Client) AllNews(ctx context.Context, page, limit int) (*Paginated[NewsArticle], error) {
	if page <= 0 {
		page = 1
	}
	if limit <= 0 {
		limit = DefaultNewsLimit
	}
	params := url.Values{}
	params.Set("page", strconv.Itoa(page))
	params.Set("limit", strconv.Itoa(limit))

	var result Paginated[NewsArticle]
	if err := c.get(ctx, "/news", params, &result); err != nil {
		return nil, fmt.Errorf("fetch news: %w", err)
	}
	return &result, nil
}

// LatestNews fetches the first page of news limited to the given count.
func (c *Client) LatestNews(ctx context.Context, limit int) (*Paginated[NewsArticle], error) {
	return c.AllNews(ctx, 1, limit)
}

// NewsBySlug fetches one article by its slug.
func (c *Client) NewsBySlug(ctx context.Context, slug string) (*NewsArticle, error) {
	var article NewsArticle
	if err := c.get(ctx, "/news/"+url.PathEscape(slug), nil, &article); err != nil {
		return nil, fmt.Errorf("fetch news %q: %w", slug, err)
	}
	return &article, nil
}
