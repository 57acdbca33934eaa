package tvdb

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"golang.org/x/sync/errgroup"
)

// GetSeriesByID returns the full series record for a series id.
func (c *Client) GetSeriesByID(ctx context.Context, id int, opts *RequestOptions) (*Series, error) {
	series, err := execute[Series](ctx, c, fmt.Sprintf("series/%d", id), opts)
	if err != nil {
		return nil, err
	}
	return &series, nil
}

// GetActors returns the cast of a series.
func (c *Client) GetActors(ctx context.Context, id int, opts *RequestOptions) ([]Actor, error) {
	return execute[[]Actor](ctx, c, fmt.Sprintf("series/%d/actors", id), opts)
}

// FilterSeries returns a partial series record holding only the requested
// comma-separated keys.
func (c *Client) FilterSeries(ctx context.Context, id int, keys []string, opts *RequestOptions) (*Series, error) {
	opts = withQueryParam(opts, "keys", strings.Join(keys, ","))

	series, err := execute[Series](ctx, c, fmt.Sprintf("series/%d/filter", id), opts)
	if err != nil {
		return nil, err
	}
	return &series, nil
}

// GetSeriesBanner returns the banner artwork path of a series, reshaped
// out of a filtered series record.
func (c *Client) GetSeriesBanner(ctx context.Context, id int, opts *RequestOptions) (string, error) {
	series, err := c.FilterSeries(ctx, id, []string{"banner"}, opts)
	if err != nil {
		return "", err
	}
	return series.Banner, nil
}

// GetSeriesImages returns artwork of the given key type (poster, fanart,
// season, series).
func (c *Client) GetSeriesImages(ctx context.Context, id int, keyType string, opts *RequestOptions) ([]Image, error) {
	opts = withQueryParam(opts, "keyType", keyType)
	return execute[[]Image](ctx, c, fmt.Sprintf("series/%d/images/query", id), opts)
}

// GetSeriesPosters returns the poster artwork of a series.
func (c *Client) GetSeriesPosters(ctx context.Context, id int, opts *RequestOptions) ([]Image, error) {
	return c.GetSeriesImages(ctx, id, "poster", opts)
}

// GetSeasonPosters returns the poster artwork of one season.
func (c *Client) GetSeasonPosters(ctx context.Context, id int, season int, opts *RequestOptions) ([]Image, error) {
	opts = withQueryParam(opts, "subKey", strconv.Itoa(season))
	return c.GetSeriesImages(ctx, id, "season", opts)
}

// GetSeriesAllByID returns the series record together with every episode.
// The two underlying fetches run concurrently; the episode fetch still
// aggregates its pages sequentially.
func (c *Client) GetSeriesAllByID(ctx context.Context, id int, opts *RequestOptions) (*SeriesAll, error) {
	var all SeriesAll

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		series, err := c.GetSeriesByID(ctx, id, opts)
		if err != nil {
			return err
		}
		all.Series = *series
		return nil
	})
	g.Go(func() error {
		episodes, err := c.GetEpisodesBySeriesID(ctx, id, opts)
		if err != nil {
			return err
		}
		all.Episodes = episodes
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &all, nil
}

// withQueryParam returns a copy of opts with one query parameter set,
// leaving the caller's options untouched.
func withQueryParam(opts *RequestOptions, key, value string) *RequestOptions {
	merged := RequestOptions{Query: url.Values{}}
	if opts != nil {
		for k, values := range opts.Query {
			merged.Query[k] = append([]string(nil), values...)
		}
		merged.Headers = opts.Headers
		merged.Language = opts.Language
	}
	merged.Query.Set(key, value)
	return &merged
}
