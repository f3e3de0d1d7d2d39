//go:build unit

package adapter

import (
	"testing"

	"club-mareva-site/internal/api"
)

func TestEventToUpcomingEvent(t *testing.T) {
	event := api.Event{
		ID:          "evt-1",
		Title:       "Summer Terrace Opening",
		Slug:        "summer-terrace-opening",
		Date:        "2025-07-01T19:00:00Z",
		Location:    "Rooftop Terrace",
		Body:        "<p>Live music &amp; a curated humidor.</p>",
		IsFeatured:  true,
		MaxVisitors: 80,
		Image:       &api.ImageRef{URL: "https://cdn.example.com/terrace.jpg"},
	}

	got := EventToUpcomingEvent(event)

	if got.ID != "evt-1" || got.Slug != "summer-terrace-opening" {
		t.Errorf("unexpected identity: %+v", got)
	}
	if got.Category != "Event" {
		t.Errorf("category must be hardcoded to Event, got %q", got.Category)
	}
	if want := "Live music & a curated humidor."; got.Description != want {
		t.Errorf("expected stripped description %q, got %q", want, got.Description)
	}
	if got.Body != event.Body {
		t.Errorf("body must keep the raw HTML for detail rendering")
	}
	if got.Image != "https://cdn.example.com/terrace.jpg" {
		t.Errorf("unexpected image %q", got.Image)
	}
	if !got.Featured || got.Location != "Rooftop Terrace" || got.MaxVisitors != 80 {
		t.Errorf("lost promotion fields: %+v", got)
	}
}

func TestEventToUpcomingEventImageFallback(t *testing.T) {
	got := EventToUpcomingEvent(api.Event{
		ID:           "evt-2",
		MainImageURL: "http://cdn/x.jpg",
	})
	if got.Image != "http://cdn/x.jpg" {
		t.Errorf("expected mainImageUrl fallback, got %q", got.Image)
	}

	got = EventToUpcomingEvent(api.Event{ID: "evt-3"})
	if got.Image != "" {
		t.Errorf("expected empty image when neither field is set, got %q", got.Image)
	}
}

func TestEventRouteSlugFallsBackToID(t *testing.T) {
	got := EventToUpcomingEvent(api.Event{ID: "evt-4"})
	if got.RouteSlug() != "evt-4" {
		t.Errorf("expected id as routing key when slug missing, got %q", got.RouteSlug())
	}
}
