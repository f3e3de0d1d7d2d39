//go:build unit

package adapter

import (
	"strings"
	"testing"

	"club-mareva-site/internal/api"
)

func TestNewsToPost(t *testing.T) {
	article := api.NewsArticle{
		ID:         "42",
		Title:      "Whisky Pairing Night",
		Slug:       "whisky-pairing-night",
		Date:       "2025-06-01T20:00:00Z",
		Body:       "<p>Join us for an evening of rare malts &amp; cigars.</p>",
		IsFeatured: false,
		Image:      &api.ImageRef{URL: "https://cdn.example.com/malts.jpg", Alt: "Rare malts"},
		CreatedAt:  "2025-05-20T10:00:00Z",
		UpdatedAt:  "2025-05-25T10:00:00Z",
	}

	post := NewsToPost(article)

	if post.ID != 42 {
		t.Errorf("expected id 42, got %d", post.ID)
	}
	if post.Slug != "whisky-pairing-night" {
		t.Errorf("unexpected slug %q", post.Slug)
	}
	if post.Status != "publish" {
		t.Errorf("expected status publish, got %q", post.Status)
	}
	if post.DateCreated != "2025-06-01T20:00:00Z" {
		t.Errorf("expected date field to win over createdAt, got %q", post.DateCreated)
	}
	if post.DateModified != "2025-05-25T10:00:00Z" {
		t.Errorf("unexpected date_modified %q", post.DateModified)
	}
	if len(post.Categories) != 1 || post.Categories[0] != "News" {
		t.Errorf("expected categories [News], got %v", post.Categories)
	}
	if post.Content.Raw != article.Body {
		t.Errorf("raw content must be the untouched body")
	}
	if want := "Join us for an evening of rare malts & cigars."; post.Content.Text != want {
		t.Errorf("expected text %q, got %q", want, post.Content.Text)
	}
	if strings.ContainsAny(post.Content.Text, "<>") {
		t.Errorf("text content contains markup: %q", post.Content.Text)
	}
	if post.FeaturedImage == nil || post.FeaturedImage.OriginalURL != "https://cdn.example.com/malts.jpg" {
		t.Errorf("expected structured image to be used, got %+v", post.FeaturedImage)
	}
	if post.FeaturedImage.AltText != "Rare malts" {
		t.Errorf("unexpected alt text %q", post.FeaturedImage.AltText)
	}
	if post.Images == nil || len(post.Images) != 0 {
		t.Errorf("expected empty images list, got %v", post.Images)
	}
}

func TestNewsToPostFeaturedCategory(t *testing.T) {
	post := NewsToPost(api.NewsArticle{ID: "1", IsFeatured: true, Body: "x"})
	if len(post.Categories) != 1 || post.Categories[0] != "Events" {
		t.Errorf("expected featured article to file under Events, got %v", post.Categories)
	}
}

func TestNewsToPostImageFallback(t *testing.T) {
	t.Run("legacy mainImageUrl honored", func(t *testing.T) {
		post := NewsToPost(api.NewsArticle{
			ID:           "7",
			Title:        "Legacy",
			MainImageURL: "http://cdn/x.jpg",
		})
		if post.FeaturedImage == nil || post.FeaturedImage.OriginalURL != "http://cdn/x.jpg" {
			t.Fatalf("expected mainImageUrl fallback, got %+v", post.FeaturedImage)
		}
		// No structured alt; the title stands in.
		if post.FeaturedImage.AltText != "Legacy" {
			t.Errorf("expected title as alt text, got %q", post.FeaturedImage.AltText)
		}
	})

	t.Run("structured image wins over legacy", func(t *testing.T) {
		post := NewsToPost(api.NewsArticle{
			ID:           "7",
			MainImageURL: "http://cdn/old.jpg",
			Image:        &api.ImageRef{URL: "http://cdn/new.jpg"},
		})
		if post.FeaturedImage.OriginalURL != "http://cdn/new.jpg" {
			t.Errorf("expected structured image to win, got %q", post.FeaturedImage.OriginalURL)
		}
	})

	t.Run("no image at all", func(t *testing.T) {
		post := NewsToPost(api.NewsArticle{ID: "7"})
		if post.FeaturedImage != nil {
			t.Errorf("expected nil featured image, got %+v", post.FeaturedImage)
		}
	})
}

func TestNewsToPostUnparseableID(t *testing.T) {
	post := NewsToPost(api.NewsArticle{ID: "clx9f2k7", Slug: "still-works"})
	if post.ID != 0 {
		t.Errorf("expected unparseable id to become 0, got %d", post.ID)
	}
	if post.Slug != "still-works" {
		t.Errorf("slug must survive regardless of id, got %q", post.Slug)
	}
}
