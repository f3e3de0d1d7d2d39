package api

import (
	"context"
	"fmt"
)

// SubmitContact submits the contact form.
func (c *Client) SubmitContact(ctx context.Context, sub ContactSubmission) (*MessageResponse, error) {
	var result MessageResponse
	if err := c.post(ctx, "/contact-submissions", sub, &result); err != nil {
		return nil, fmt.Errorf("submit contact form: %w", err)
	}
	return &result, nil
}
