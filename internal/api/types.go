package api

// Pagination describes the collection window of a paginated response.
type Pagination struct {
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	Total      int `json:"total"`
	TotalPages int `json:"totalPages"`
}

// Paginated is the collection wrapper used by every list endpoint.
type Paginated[T any] struct {
	Items      []T        `json:"items"`
	Pagination Pagination `json:"pagination"`
}

// ImageRef is the structured image representation the API migrated to. Older
// records carry only the flat mainImageUrl field instead.
type ImageRef struct {
	URL string `json:"url"`
	Alt string `json:"alt"`
}

// NewsArticle is a raw news record from the API.
type NewsArticle struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Slug         string    `json:"slug"`
	Date         string    `json:"date"`
	MainImageURL string    `json:"mainImageUrl,omitempty"`
	Body         string    `json:"body"`
	IsFeatured   bool      `json:"isFeatured"`
	Image        *ImageRef `json:"image,omitempty"`
	CreatedAt    string    `json:"createdAt"`
	UpdatedAt    string    `json:"updatedAt"`
}

// Event is a raw event record from the API.
type Event struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Slug         string    `json:"slug"`
	Date         string    `json:"date"`
	Location     string    `json:"location,omitempty"`
	MainImageURL string    `json:"mainImageUrl,omitempty"`
	Body         string    `json:"body"`
	IsFeatured   bool      `json:"isFeatured"`
	MaxVisitors  int       `json:"maxVisitors,omitempty"`
	Image        *ImageRef `json:"image,omitempty"`
}

// CigarBrand is a raw brand record from the API. The API carries only the
// marketing card basics; the rest of a brand profile comes from the local
// enrichment table.
type CigarBrand struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Name         string    `json:"name,omitempty"`
	Description  string    `json:"description"`
	LogoURL      string    `json:"logoUrl,omitempty"`
	IsFeatured   bool      `json:"isFeatured"`
	DisplayOrder int       `json:"displayOrder"`
	Logo         *ImageRef `json:"logo,omitempty"`
}

// DisplayName is the brand's display name and enrichment join key. Newer API
// responses carry it as name; older ones only as title.
func (b CigarBrand) DisplayName() string {
	if b.Name != "" {
		return b.Name
	}
	return b.Title
}

// ContactSubmission is the contact form payload.
type ContactSubmission struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Message   string `json:"message"`
}

// EventRegistration is the event signup payload.
type EventRegistration struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

// MessageResponse is the confirmation body returned by form endpoints.
type MessageResponse struct {
	Message string `json:"message"`
}
