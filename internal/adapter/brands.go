package adapter

import (
	"club-mareva-site/internal/api"
	"club-mareva-site/internal/content"
)

// brandLogoURL resolves the brand logo with the same structured-then-flat
// fallback as article images.
func brandLogoURL(brand api.CigarBrand) string {
	if brand.Logo != nil && brand.Logo.URL != "" {
		return brand.Logo.URL
	}
	return brand.LogoURL
}

// BrandToBrand converts a raw API brand record into a canonical Brand by
// joining it with the static enrichment table on the exact brand name. A
// missing entry never removes the brand from a listing; it only leaves the
// profile sparse, with origin "Unknown".
func BrandToBrand(brand api.CigarBrand) content.Brand {
	enrichment, ok := brandEnrichment[brand.DisplayName()]
	if !ok {
		enrichment = BrandEnrichment{Origin: "Unknown"}
	}

	return content.Brand{
		Name:        brand.DisplayName(),
		Origin:      enrichment.Origin,
		Established: enrichment.Established,
		Description: brand.Description,
		Logo:        brandLogoURL(brand),
		Hashtags:    enrichment.Hashtags,
		Testimonial: enrichment.Testimonial,
		Website:     enrichment.Website,
	}
}

// BrandToShowcase keeps only what the brand logo wall needs.
func BrandToShowcase(brand api.CigarBrand) content.ShowcaseBrand {
	return content.ShowcaseBrand{
		Name: brand.DisplayName(),
		Logo: brandLogoURL(brand),
	}
}
