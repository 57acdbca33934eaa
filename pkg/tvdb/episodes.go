package tvdb

import (
	"context"
	"fmt"
)

// GetEpisodeByID returns a single episode record.
func (c *Client) GetEpisodeByID(ctx context.Context, id int, opts *RequestOptions) (*Episode, error) {
	episode, err := execute[Episode](ctx, c, fmt.Sprintf("episodes/%d", id), opts)
	if err != nil {
		return nil, err
	}
	return &episode, nil
}

// GetEpisodesBySeriesID returns every episode of a series, merged across
// all result pages.
func (c *Client) GetEpisodesBySeriesID(ctx context.Context, id int, opts *RequestOptions) ([]Episode, error) {
	return execute[[]Episode](ctx, c, fmt.Sprintf("series/%d/episodes", id), opts)
}

// QueryEpisodes returns the episodes of a series matching the given
// query parameters (airedSeason, airedEpisode, imdbId, dvdSeason, ...).
func (c *Client) QueryEpisodes(ctx context.Context, id int, query map[string]string, opts *RequestOptions) ([]Episode, error) {
	for key, value := range query {
		opts = withQueryParam(opts, key, value)
	}
	return execute[[]Episode](ctx, c, fmt.Sprintf("series/%d/episodes/query", id), opts)
}

// GetEpisodesByAirDate returns the episodes of a series that first aired
// on the given date (YYYY-MM-DD).
func (c *Client) GetEpisodesByAirDate(ctx context.Context, id int, airDate string, opts *RequestOptions) ([]Episode, error) {
	return c.QueryEpisodes(ctx, id, map[string]string{"firstAired": airDate}, opts)
}
