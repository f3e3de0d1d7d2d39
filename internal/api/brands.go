package api

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
)

// DefaultBrandsLimit bounds the brand listing page.
const DefaultBrandsLimit = 100

// CigarBrands fetches the brand listing.
func (c *Client) CigarBrands(ctx context.Context, limit int) (*Paginated[CigarBrand], error) {
	if limit <= 0 {
		limit = DefaultBrandsLimit
	}
	params := url.Values{}
	params.Set("page", "1")
	params.Set("limit", strconv.Itoa(limit))

	var result Paginated[CigarBrand]
	if err := c.get(ctx, "/cigar-brands", params, &result); err != nil {
		return nil, fmt.Errorf("fetch cigar brands: %w", err)
	}
	return &result, nil
}

// CigarBrandByID fetches one brand by its id.
func (c *Client) CigarBrandByID(ctx context.Context, id string) (*CigarBrand, error) {
	var brand CigarBrand
	if err := c.get(ctx, "/cigar-brands/"+url.PathEscape(id), nil, &brand); err != nil {
		return nil, fmt.Errorf("fetch cigar brand %q: %w", id, err)
	}
	return &brand, nil
}
