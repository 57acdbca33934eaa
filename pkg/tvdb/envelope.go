package tvdb

import "encoding/json"

// Links holds the pagination metadata of one response page. Absent page
// numbers are nil.
type Links struct {
	First *int `json:"first"`
	Last  *int `json:"last"`
	Next  *int `json:"next"`
	Prev  *int `json:"prev"`
}

// Envelope is one decoded response page: the data payload, optional
// pagination links, and the API's application error field.
type Envelope struct {
	Data  json.RawMessage `json:"data"`
	Links *Links          `json:"links"`
	Error string          `json:"Error"`
}

// remainingPages returns the page numbers still to fetch after the first
// page, in ascending order. An absent or non-meaningful next link means
// the first page is the only one; an absent last link means next is the
// only remaining page.
func (l *Links) remainingPages() []int {
	if l == nil || l.Next == nil {
		return nil
	}

	next := *l.Next
	if next <= 1 {
		return nil
	}

	last := next
	if l.Last != nil && *l.Last > next {
		last = *l.Last
	}

	pages := make([]int, 0, last-next+1)
	for page := next; page <= last; page++ {
		pages = append(pages, page)
	}
	return pages
}

// isJSONArray reports whether raw holds a JSON array. Pagination merging
// only applies to array payloads.
func isJSONArray(raw json.RawMessage) bool {
	for _, b := range raw {
		switch b {
		case ' ', '\t', '\r', '\n':
			continue
		case '[':
			return true
		default:
			return false
		}
	}
	return false
}
