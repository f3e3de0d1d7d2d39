// Package adapter contains the pure normalization functions that map raw
// source records onto the canonical content shapes. Adapters never perform
// I/O; failure to enrich or parse a field degrades the record, it never drops
// it.
package adapter

import (
	"strconv"

	"club-mareva-site/internal/api"
	"club-mareva-site/internal/content"
)

// apiAuthor stands in for the author field the remote API does not carry.
var apiAuthor = content.Author{ID: 0, Name: "Club Mareva Beirut", Login: "admin"}

// newsImageURL picks the display image for an API record: the structured
// image field when present, else the legacy flat mainImageUrl. The API
// migrated its image representation over time, so both must be honored.
func newsImageURL(image *api.ImageRef, mainImageURL string) (url, alt string) {
	if image != nil && image.URL != "" {
		return image.URL, image.Alt
	}
	return mainImageURL, ""
}

// NewsToPost converts a raw API news article into a canonical Post.
//
// The API has no category taxonomy; featured articles file under Events,
// everything else under News. API ids are strings and only best-effort
// convertible: an unparseable id becomes 0, which is fine because slug is the
// durable identifier.
func NewsToPost(article api.NewsArticle) content.Post {
	id, _ := strconv.Atoi(article.ID)

	dateCreated := article.Date
	if dateCreated == "" {
		dateCreated = article.CreatedAt
	}
	dateModified := article.UpdatedAt
	if dateModified == "" {
		dateModified = dateCreated
	}

	categories := []string{"News"}
	if article.IsFeatured {
		categories = []string{"Events"}
	}

	post := content.Post{
		ID:           id,
		Title:        article.Title,
		Slug:         article.Slug,
		Status:       content.StatusPublish,
		DateCreated:  dateCreated,
		DateModified: dateModified,
		Author:       apiAuthor,
		Categories:   categories,
		Content: content.ContentBody{
			Raw:   article.Body,
			Clean: Sanitize(article.Body),
			Text:  StripHTML(article.Body),
		},
		Images: []content.PostImage{},
	}

	if url, alt := newsImageURL(article.Image, article.MainImageURL); url != "" {
		if alt == "" {
			alt = article.Title
		}
		post.FeaturedImage = &content.PostImage{
			OriginalURL: url,
			LocalPath:   url,
			AltText:     alt,
		}
	}

	return post
}
