package tvdb

import "context"

// GetLanguages returns all languages the API can translate into.
func (c *Client) GetLanguages(ctx context.Context, opts *RequestOptions) ([]Language, error) {
	return execute[[]Language](ctx, c, "languages", opts)
}
