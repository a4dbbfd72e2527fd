package search

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const (
	wikipediaEndpoint = "https://en.wikipedia.org/w/api.php"

	// Wikimedia asks API clients to identify themselves.
	wikipediaUserAgent = "howto-teacher/1.0 (https://github.com/howtolabs/howto-teacher)"
)

// Wikipedia searches article titles via the MediaWiki API and returns a
// two-sentence plain-text summary per matching article.
type Wikipedia struct {
	client   *http.Client
	endpoint string
}

// NewWikipedia creates a Wikipedia searcher with a modest timeout.
func NewWikipedia() *Wikipedia {
	return &Wikipedia{
		client:   &http.Client{Timeout: 15 * time.Second},
		endpoint: wikipediaEndpoint,
	}
}

func (w *Wikipedia) Name() string { return "wikipedia" }

// Search finds up to maxSnippets article titles for query and fetches a
// short summary for each. A title whose summary fetch fails is skipped
// so one bad article never discards the rest.
func (w *Wikipedia) Search(ctx context.Context, query string) ([]string, error) {
	if strings.TrimSpace(query) == "" {
		return nil, errors.New("query is empty")
	}

	titles, err := w.searchTitles(ctx, query)
	if err != nil {
		return nil, err
	}

	var snippets []string
	for _, title := range titles {
		summary, err := w.fetchSummary(ctx, title)
		if err != nil {
			log.Printf("[search] wikipedia summary for %q failed: %v", title, err)
			continue
		}
		if summary == "" {
			continue
		}
		snippets = append(snippets, summary)
		if len(snippets) >= maxSnippets {
			break
		}
	}
	return snippets, nil
}

// searchTitles runs a MediaWiki full-text search and returns the
// matching article titles.
func (w *Wikipedia) searchTitles(ctx context.Context, query string) ([]string, error) {
	params := url.Values{}
	params.Set("action", "query")
	params.Set("list", "search")
	params.Set("srsearch", query)
	params.Set("srlimit", fmt.Sprintf("%d", maxSnippets))
	params.Set("format", "json")

	var payload struct {
		Query struct {
			Search []struct {
				Title string `json:"title"`
			} `json:"search"`
		} `json:"query"`
	}
	if err := w.get(ctx, params, &payload); err != nil {
		return nil, err
	}

	titles := make([]string, 0, len(payload.Query.Search))
	for _, hit := range payload.Query.Search {
		titles = append(titles, hit.Title)
	}
	return titles, nil
}

// fetchSummary returns the first two sentences of the article as plain
// text, following redirects.
func (w *Wikipedia) fetchSummary(ctx context.Context, title string) (string, error) {
	params := url.Values{}
	params.Set("action", "query")
	params.Set("prop", "extracts")
	params.Set("titles", title)
	params.Set("exsentences", "2")
	params.Set("explaintext", "1")
	params.Set("redirects", "1")
	params.Set("format", "json")

	var payload struct {
		Query struct {
			Pages map[string]struct {
				Extract string `json:"extract"`
			} `json:"pages"`
		} `json:"query"`
	}
	if err := w.get(ctx, params, &payload); err != nil {
		return "", err
	}

	for _, page := range payload.Query.Pages {
		if extract := strings.TrimSpace(page.Extract); extract != "" {
			return extract, nil
		}
	}
	return "", fmt.Errorf("no extract for %q", title)
}

func (w *Wikipedia) get(ctx context.Context, params url.Values, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, w.endpoint+"?"+params.Encode(), nil)
	if err != nil {
		return err
	}
	req.Header.Set("User-Agent", wikipediaUserAgent)

	resp, err := w.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("wikipedia http %d", resp.StatusCode)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
