package tvdb

import (
	"context"
	"encoding/json"
)

// aggregatePages merges a paginated collection into one logical result.
//
// Pages are fetched strictly sequentially in ascending page-number order
// so the concatenation is deterministic and load is not amplified. Any
// page failure aborts the aggregation and surfaces that failure; pages
// already fetched are discarded, never returned partially.
func (c *Client) aggregatePages(ctx context.Context, first *Envelope, path string, params requestParams) (json.RawMessage, error) {
	// Pagination only ever applies to list endpoints. A scalar or object
	// payload is returned as-is even if a next link is present.
	if !isJSONArray(first.Data) {
		return first.Data, nil
	}

	pages := first.Links.remainingPages()
	if len(pages) == 0 {
		return first.Data, nil
	}

	c.logger.Debug().
		Str("endpoint", path).
		Int("remaining_pages", len(pages)).
		Msg("Aggregating paginated response")

	var merged []json.RawMessage
	if err := json.Unmarshal(first.Data, &merged); err != nil {
		return nil, &ParseError{Err: err}
	}

	for _, page := range pages {
		env, err := c.fetchEnvelope(ctx, path, params.withPage(page))
		if err != nil {
			return nil, err
		}
		tvdbPagesFetchedTotal.Inc()

		var items []json.RawMessage
		if err := json.Unmarshal(env.Data, &items); err != nil {
			tvdbErrorsTotal.WithLabelValues(string(ErrorClassParse)).Inc()
			return nil, &ParseError{Err: err}
		}
		merged = append(merged, items...)
	}

	data, err := json.Marshal(merged)
	if err != nil {
		return nil, &ParseError{Err: err}
	}

	return data, nil
}
