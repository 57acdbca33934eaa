package tvdb

import "context"

// searchPath is the series search endpoint.
const searchPath = "search/series"

// GetSeriesByName searches series by name.
func (c *Client) GetSeriesByName(ctx context.Context, name string, opts *RequestOptions) ([]SeriesSearchResult, error) {
	opts = withQueryParam(opts, "name", name)
	return execute[[]SeriesSearchResult](ctx, c, searchPath, opts)
}

// GetSeriesByIMDBID looks up series by IMDB id (e.g. "tt0903747").
func (c *Client) GetSeriesByIMDBID(ctx context.Context, imdbID string, opts *RequestOptions) ([]SeriesSearchResult, error) {
	opts = withQueryParam(opts, "imdbId", imdbID)
	return execute[[]SeriesSearchResult](ctx, c, searchPath, opts)
}

// GetSeriesByZap2ItID looks up series by Zap2It id.
func (c *Client) GetSeriesByZap2ItID(ctx context.Context, zap2itID string, opts *RequestOptions) ([]SeriesSearchResult, error) {
	opts = withQueryParam(opts, "zap2itId", zap2itID)
	return execute[[]SeriesSearchResult](ctx, c, searchPath, opts)
}
