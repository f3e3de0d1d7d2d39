package api

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
)

// DefaultEventsLimit bounds the upcoming events page.
const DefaultEventsLimit = 100

// UpcomingEvents fetches events the API considers upcoming, soonest first.
func (c *Client) UpcomingEvents(ctx context.Context, limit int) (*Paginated[Event], error) {
	if limit <= 0 {
		limit = DefaultEventsLimit
	}
	params := url.Values{}
	params.Set("upcoming", "true")
	params.Set("page", "1")
	params.Set("limit", strconv.Itoa(limit))

	var result Paginated[Event]
	if err := c.get(ctx, "/events", params, &result); err != nil {
		return nil, fmt.Errorf("fetch upcoming events: %w", err)
	}
	return &result, nil
}

// EventBySlug fetches one event by its slug.
func (c *Client) EventBySlug(ctx context.Context, slug string) (*Event, error) {
	var event Event
	if err := c.get(ctx, "/events/"+url.PathEscape(slug), nil, &event); err != nil {
		return nil, fmt.Errorf("fetch event %q: %w", slug, err)
	}
	return &event, nil
}

// RegisterForEvent submits an event signup.
func (c *Client) RegisterForEvent(ctx context.Context, eventID string, reg EventRegistration) (*MessageResponse, error) {
	var result MessageResponse
	path := "/events/" + url.PathEscape(eventID) + "/register"
	if err := c.post(ctx, path, reg, &result); err != nil {
		return nil, fmt.Errorf("register for event %q: %w", eventID, err)
	}
	return &result, nil
}
