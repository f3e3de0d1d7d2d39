// Package content defines the canonical, source-agnostic content shapes that
// every consumer of the site works with. Records originate either in the remote
// content API or in the static JSON data directory; by the time they leave the
// service layer they all look like the types below.
package content

// Author identifies the writer of a post or page.
type Author struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Login string `json:"login"`
}

// PostImage is a single image attached to a post or page. OriginalURL is the
// address the CMS exported; LocalPath is the resolved path actually served.
type PostImage struct {
	OriginalURL string `json:"original_url"`
	LocalPath   string `json:"local_path"`
	AltText     string `json:"alt_text,omitempty"`
}

// ContentBody carries three parallel representations of the same markup:
// Raw as authored, Clean sanitized for rendering, and Text with all markup
// stripped for excerpts and search.
type ContentBody struct {
	Raw   string `json:"raw"`
	Clean string `json:"clean"`
	Text  string `json:"text"`
}

// Embeds groups third-party embed URLs found in a post body.
type Embeds struct {
	YouTube   []string `json:"youtube"`
	Instagram []string `json:"instagram"`
}

// Post is a published news or event article.
//
// Slug is the only identifier that is stable across data sources; the remote
// API uses string ids while the filesystem store uses integers, so ID must not
// be compared across modes.
type Post struct {
	ID            int         `json:"id"`
	Title         string      `json:"title"`
	Slug          string      `json:"slug"`
	Status        string      `json:"status"`
	DateCreated   string      `json:"date_created"`
	DateModified  string      `json:"date_modified"`
	Author        Author      `json:"author"`
	Categories    []string    `json:"categories"`
	Content       ContentBody `json:"content"`
	FeaturedImage *PostImage  `json:"featured_image,omitempty"`
	Images        []PostImage `json:"images"`
	Embeds        *Embeds     `json:"embeds,omitempty"`
}

// Page is static informational content. Pages exist only in the filesystem
// store; the remote API has no equivalent endpoint.
type Page struct {
	ID            int         `json:"id"`
	Title         string      `json:"title"`
	Slug          string      `json:"slug"`
	Status        string      `json:"status"`
	DateCreated   string      `json:"date_created"`
	DateModified  string      `json:"date_modified"`
	Author        Author      `json:"author"`
	Content       ContentBody `json:"content"`
	FeaturedImage *PostImage  `json:"featured_image,omitempty"`
	Images        []PostImage `json:"images"`
	Embeds        *Embeds     `json:"embeds,omitempty"`
}

// UpcomingEvent is a dated, bookable happening. Slug may be empty for older
// records, in which case ID doubles as the routing key.
type UpcomingEvent struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Slug        string `json:"slug,omitempty"`
	Date        string `json:"date"`
	Category    string `json:"category"`
	Description string `json:"description"`
	Image       string `json:"image"`
	Featured    bool   `json:"featured"`
	Location    string `json:"location,omitempty"`
	MaxVisitors int    `json:"maxVisitors,omitempty"`
	Body        string `json:"body,omitempty"`
}

// RouteSlug returns the identifier used for event detail routing.
func (e UpcomingEvent) RouteSlug() string {
	if e.Slug != "" {
		return e.Slug
	}
	return e.ID
}

// Testimonial is a member quote attached to a brand profile.
type Testimonial struct {
	Quote  string `json:"quote"`
	Author string `json:"author"`
	Title  string `json:"title"`
}

// Brand is a cigar brand profile. Name, Description and Logo come from the
// remote API; everything else is joined from the static enrichment table and
// may be absent when the brand has no entry there.
type Brand struct {
	Name        string       `json:"name"`
	Origin      string       `json:"origin"`
	Established string       `json:"established,omitempty"`
	Description string       `json:"description"`
	Logo        string       `json:"logo"`
	Hashtags    []string     `json:"hashtags,omitempty"`
	Testimonial *Testimonial `json:"testimonial,omitempty"`
	Website     string       `json:"website,omitempty"`
}

// ShowcaseBrand is the minimal projection used by the brand logo wall.
type ShowcaseBrand struct {
	Name string `json:"name"`
	Logo string `json:"logo"`
}

// Category is an entry from the filesystem taxonomy metadata.
type Category struct {
	ID     int     `json:"id"`
	Name   string  `json:"name"`
	Slug   string  `json:"slug"`
	Parent *string `json:"parent"`
}

// SignatureContentSection is one block of long-form signature copy.
type SignatureContentSection struct {
	Heading  string `json:"heading,omitempty"`
	Text     string `json:"text"`
	Image    string `json:"image,omitempty"`
	ImageAlt string `json:"imageAlt,omitempty"`
}

// SignatureSpec is a single label/value attribute of a signature item.
type SignatureSpec struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// SignatureItem is a house-signature product feature, filesystem only.
type SignatureItem struct {
	ID              string                    `json:"id"`
	Title           string                    `json:"title"`
	Category        string                    `json:"category"`
	Tagline         string                    `json:"tagline"`
	Description     string                    `json:"description"`
	Image           string                    `json:"image"`
	Gallery         []string                  `json:"gallery"`
	ContentSections []SignatureContentSection `json:"contentSections,omitempty"`
	Specs           []SignatureSpec           `json:"specs"`
	Collaborators   string                    `json:"collaborators"`
	PostSlug        string                    `json:"postSlug"`
	Order           int                       `json:"order"`
}

// ImageManifest maps original remote image URLs to resolved local paths. It is
// consulted only in filesystem mode.
type ImageManifest map[string]string

// StatusPublish is the only status exposed to consumers; anything else is
// filtered out at the store boundary.
const StatusPublish = "publish"
