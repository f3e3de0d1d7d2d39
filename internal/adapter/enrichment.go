package adapter

import "club-mareva-site/internal/content"

// BrandEnrichment is the hand-maintained marketing metadata for one brand.
type BrandEnrichment struct {
	Origin      string
	Established string
	Hashtags    []string
	Testimonial *content.Testimonial
	Website     string
}

// brandEnrichment maps brand display names to their marketing metadata. The
// remote API carries only name, description and logo, so everything else
// lives here. The join is exact-string only; do not loosen it to a fuzzy
// match, listings depend on a miss producing the sparse stub.
var brandEnrichment = map[string]BrandEnrichment{
	"Habanos": {
		Origin:      "Cuba",
		Established: "Est. 1994",
		Hashtags:    []string{"#CubanCigars", "#Habanos", "#ClubMareva"},
		Testimonial: &content.Testimonial{
			Quote:  "The Cohiba Behike is simply unmatched. Club Mareva’s selection and service made it an unforgettable experience.",
			Author: "Michel R.",
			Title:  "Founding Member",
		},
		Website: "https://www.habanos.com",
	},
	"Davidoff": {
		Origin:      "Dominican Republic",
		Established: "Est. 1968",
		Hashtags:    []string{"#Davidoff", "#LuxuryCigars", "#Refinement"},
		Testimonial: &content.Testimonial{
			Quote:  "For special occasions, nothing compares to a Davidoff. The presentation and quality at Club Mareva elevate the entire experience.",
			Author: "Antoine K.",
			Title:  "Premium Member",
		},
		Website: "https://www.davidoff.com",
	},
	"Caldwell": {
		Origin:      "Various",
		Established: "Est. 2014",
		Hashtags:    []string{"#Caldwell", "#BoutiqueCigars", "#Innovation"},
		Testimonial: &content.Testimonial{
			Quote:  "Caldwell's Eastern Standard is my go-to. The staff at Club Mareva always knows exactly what I'm looking for.",
			Author: "Georges M.",
			Title:  "Regular Member",
		},
		Website: "https://caldwellcigars.com",
	},
	"Hiram & Solomon": {
		Origin:      "Dominican Republic",
		Established: "Est. 2016",
		Hashtags:    []string{"#HiramAndSolomon", "#MasonicHeritage", "#Craftsmanship"},
		Testimonial: &content.Testimonial{
			Quote:  "The Traveling Man is a masterpiece. Finding it at Club Mareva was a revelation—truly a hidden gem.",
			Author: "Fadi S.",
			Title:  "Cigar Enthusiast",
		},
		Website: "https://www.hiramandsolomoncigars.com",
	},
	"Patoro": {
		Origin:      "Dominican Republic",
		Established: "Est. 2005",
		Hashtags:    []string{"#Patoro", "#CubanSeed", "#Elegance"},
		Testimonial: &content.Testimonial{
			Quote:  "Patoro's Gran Añejo is pure silk. The humidor at Club Mareva keeps them in perfect condition.",
			Author: "Karim H.",
			Title:  "Connoisseur",
		},
		Website: "https://www.patoro.com",
	},
	"Drew Estate": {
		Origin:      "Nicaragua",
		Established: "Est. 1996",
		Hashtags:    []string{"#DrewEstate", "#LigaPrivada", "#BoldFlavors"},
		Testimonial: &content.Testimonial{
			Quote:  "The Liga Privada No. 9 paired with aged rum—pure magic. Club Mareva’s pairing suggestions are always spot-on.",
			Author: "Ziad B.",
			Title:  "Regular Guest",
		},
		Website: "https://drewestate.com",
	},
	"Rocky Patel": {
		Origin:      "Nicaragua/Honduras",
		Established: "Est. 1996",
		Hashtags:    []string{"#RockyPatel", "#PremiumCigars", "#BoldFlavors"},
		Testimonial: &content.Testimonial{
			Quote:  "The Decade is my daily companion. Consistent, reliable, and always available at Club Mareva.",
			Author: "Nabil F.",
			Title:  "Daily Visitor",
		},
		Website: "https://rockypatel.com",
	},
	"Casdagli": {
		Origin:      "Dominican/Costa Rica",
		Established: "Est. 2014",
		Hashtags:    []string{"#Casdagli", "#BritishHeritage", "#Refined"},
		Testimonial: &content.Testimonial{
			Quote:  "Casdagli's Daughters of the Wind is exceptional. Club Mareva introduced me to this brand—forever grateful.",
			Author: "Jean-Pierre L.",
			Title:  "Member Since 2020",
		},
		Website: "https://www.casdaglicigars.com",
	},
	"Saga": {
		Origin:      "Dominican Republic",
		Established: "Est. 2016",
		Hashtags:    []string{"#SagaCigars", "#ExceptionalValue", "#Quality"},
		Testimonial: &content.Testimonial{
			Quote:  "Perfect for a quick smoke break. Saga delivers quality at an accessible price point.",
			Author: "Sami T.",
			Title:  "Regular Guest",
		},
		Website: "https://www.sagacigars.com",
	},
	"Smoking Jacket": {
		Origin:      "Dominican Republic",
		Established: "Est. 2018",
		Hashtags:    []string{"#SmokingJacket", "#ModernBoutique", "#Innovation"},
		Testimonial: &content.Testimonial{
			Quote:  "Hendrik Jr.'s vision shines through every blend. A must-try for any serious aficionado.",
			Author: "Rami D.",
			Title:  "Cigar Collector",
		},
		Website: "https://www.smokingcigarjacket.com",
	},
}
