//go:build unit

package adapter

import (
	"testing"

	"club-mareva-site/internal/api"
)

func TestBrandToBrandEnriched(t *testing.T) {
	brand := BrandToBrand(api.CigarBrand{
		Name:        "Davidoff",
		Description: "Top-shelf luxury selection.",
		LogoURL:     "http://x/logo.png",
	})

	if brand.Name != "Davidoff" {
		t.Errorf("unexpected name %q", brand.Name)
	}
	if brand.Origin != "Dominican Republic" {
		t.Errorf("expected enriched origin, got %q", brand.Origin)
	}
	if brand.Established != "Est. 1968" {
		t.Errorf("expected enriched established, got %q", brand.Established)
	}
	if brand.Description != "Top-shelf luxury selection." {
		t.Errorf("description must come from the API record, got %q", brand.Description)
	}
	if brand.Logo != "http://x/logo.png" {
		t.Errorf("unexpected logo %q", brand.Logo)
	}
	if brand.Testimonial == nil || brand.Testimonial.Quote == "" {
		t.Error("expected a non-empty testimonial quote from the enrichment table")
	}
	if len(brand.Hashtags) == 0 {
		t.Error("expected hashtags from the enrichment table")
	}
	if brand.Website == "" {
		t.Error("expected website from the enrichment table")
	}
}

func TestBrandToBrandMissingEnrichment(t *testing.T) {
	brand := BrandToBrand(api.CigarBrand{
		Name:        "Casa Nueva",
		Description: "A newcomer.",
		LogoURL:     "http://x/casa.png",
	})

	if brand.Origin != "Unknown" {
		t.Errorf("expected stub origin Unknown, got %q", brand.Origin)
	}
	if brand.Established != "" || brand.Website != "" || brand.Testimonial != nil || brand.Hashtags != nil {
		t.Errorf("stub brand must carry no enrichment fields: %+v", brand)
	}
	// The brand itself survives the miss.
	if brand.Name != "Casa Nueva" || brand.Description != "A newcomer." || brand.Logo != "http://x/casa.png" {
		t.Errorf("API-sourced fields lost on enrichment miss: %+v", brand)
	}
}

func TestBrandDisplayNameJoin(t *testing.T) {
	// Older API responses carry the name in title only.
	brand := BrandToBrand(api.CigarBrand{Title: "Habanos", Description: "d"})
	if brand.Origin != "Cuba" {
		t.Errorf("expected title to join against the table, got origin %q", brand.Origin)
	}
}

func TestBrandToBrandStructuredLogo(t *testing.T) {
	brand := BrandToBrand(api.CigarBrand{
		Name:    "Saga",
		LogoURL: "http://x/old.png",
		Logo:    &api.ImageRef{URL: "http://x/new.png"},
	})
	if brand.Logo != "http://x/new.png" {
		t.Errorf("expected structured logo to win, got %q", brand.Logo)
	}
}

func TestBrandToShowcase(t *testing.T) {
	got := BrandToShowcase(api.CigarBrand{Name: "Patoro", LogoURL: "http://x/p.png"})
	if got.Name != "Patoro" || got.Logo != "http://x/p.png" {
		t.Errorf("unexpected showcase projection: %+v", got)
	}
}
