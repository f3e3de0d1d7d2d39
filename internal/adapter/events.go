package adapter

import (
	"club-mareva-site/internal/api"
	"club-mareva-site/internal/content"
)

// EventToUpcomingEvent converts a raw API event into a canonical
// UpcomingEvent. The API has no event-category field, so the category is
// always "Event". The body is kept raw for detail rendering; the description
// is the stripped body for card layouts.
func EventToUpcomingEvent(event api.Event) content.UpcomingEvent {
	url, _ := newsImageURL(event.Image, event.MainImageURL)

	return content.UpcomingEvent{
		ID:          event.ID,
		Title:       event.Title,
		Slug:        event.Slug,
		Date:        event.Date,
		Category:    "Event",
		Description: StripHTML(event.Body),
		Image:       url,
		Featured:    event.IsFeatured,
		Location:    event.Location,
		MaxVisitors: event.MaxVisitors,
		Body:        event.Body,
	}
}
