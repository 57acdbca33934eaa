package tvdb

import (
	"net/url"
	"strconv"
)

// RequestOptions configures a single request. All fields are optional;
// unset fields fall back to the client defaults.
type RequestOptions struct {
	// Query holds extra query string parameters. Multi-valued keys are
	// encoded as repeated parameters.
	Query url.Values

	// Headers holds extra request headers. They are applied after the
	// computed Accept and Accept-Language headers (and may override
	// them), but before Authorization, which always wins.
	Headers map[string]string

	// Language overrides the client's default Accept-Language value.
	Language string
}

// requestParams is a RequestOptions merged with the client defaults,
// ready for URL and header construction. One instance is shared by the
// first-page fetch and every follow-up page of an aggregation.
type requestParams struct {
	query    url.Values
	headers  map[string]string
	language string
}

// resolve merges opts over the client defaults. The query is copied so
// pagination can overwrite the page parameter without mutating the
// caller's values.
func (c *Client) resolve(opts *RequestOptions) requestParams {
	params := requestParams{
		query:    url.Values{},
		language: c.language,
	}

	if opts == nil {
		return params
	}

	for key, values := range opts.Query {
		for _, value := range values {
			params.query.Add(key, value)
		}
	}
	params.headers = opts.Headers
	if opts.Language != "" {
		params.language = opts.Language
	}
	return params
}

// withPage returns a copy of the params with the page query parameter
// overwritten.
func (p requestParams) withPage(page int) requestParams {
	query := url.Values{}
	for key, values := range p.query {
		query[key] = append([]string(nil), values...)
	}
	query.Set("page", strconv.Itoa(page))

	return requestParams{
		query:    query,
		headers:  p.headers,
		language: p.language,
	}
}
