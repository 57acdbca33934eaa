package tvdb

import (
	"context"
	"strconv"
)

// GetUpdates returns the series updated between two unix timestamps.
// toTime is optional; pass 0 to let the server pick its default window.
func (c *Client) GetUpdates(ctx context.Context, fromTime, toTime int64, opts *RequestOptions) ([]Update, error) {
	opts = withQueryParam(opts, "fromTime", strconv.FormatInt(fromTime, 10))
	if toTime > 0 {
		opts = withQueryParam(opts, "toTime", strconv.FormatInt(toTime, 10))
	}
	return execute[[]Update](ctx, c, "updated/query", opts)
}
