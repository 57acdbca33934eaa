package tvdb

import (
	"net/url"
	"testing"
)

func TestResolve_Defaults(t *testing.T) {
	client, err := New(Config{APIKey: "k", Language: "fr"})
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}

	params := client.resolve(nil)
	if params.language != "fr" {
		t.Errorf("language = %q, want client default %q", params.language, "fr")
	}
	if len(params.query) != 0 {
		t.Errorf("query = %v, want empty", params.query)
	}
}

func TestResolve_Overrides(t *testing.T) {
	client, err := New(Config{APIKey: "k"})
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}

	opts := &RequestOptions{
		Query:    url.Values{"keys": []string{"banner", "overview"}},
		Language: "de",
	}

	params := client.resolve(opts)
	if params.language != "de" {
		t.Errorf("language = %q, want override %q", params.language, "de")
	}
	if got := params.query["keys"]; len(got) != 2 {
		t.Errorf("keys = %v, want both values preserved", got)
	}

	// The resolved query is a copy; mutating it must not leak back.
	params.query.Set("page", "2")
	if opts.Query.Get("page") != "" {
		t.Error("resolve() must copy the caller's query values")
	}
}

func TestWithPage(t *testing.T) {
	client, err := New(Config{APIKey: "k"})
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}

	params := client.resolve(&RequestOptions{
		Query: url.Values{"airedSeason": []string{"2"}},
	})

	paged := params.withPage(3)
	if got := paged.query.Get("page"); got != "3" {
		t.Errorf("page = %q, want %q", got, "3")
	}
	if got := paged.query.Get("airedSeason"); got != "2" {
		t.Errorf("airedSeason = %q, original parameters must survive", got)
	}
	if params.query.Get("page") != "" {
		t.Error("withPage() must not mutate the original parameters")
	}
}
