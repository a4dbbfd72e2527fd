package search

import (
	"context"
	"errors"
	"fmt"
	"html"
	"io"
	"net/http"
	"net/url"
	"regexp"
	"strings"
	"time"
)

const ddgEndpoint = "https://html.duckduckgo.com/html/"

var (
	ddgSnippetRe = regexp.MustCompile(`(?s)<a[^>]+class="result__snippet"[^>]*>(.*?)</a>`)
	htmlTagRe    = regexp.MustCompile(`<[^>]*>`)
	whitespaceRe = regexp.MustCompile(`\s+`)
)

// DuckDuckGo scrapes result snippets from DuckDuckGo's HTML interface.
type DuckDuckGo struct {
	client   *http.Client
	endpoint string
}

// NewDuckDuckGo creates a DuckDuckGo searcher with a modest timeout.
func NewDuckDuckGo() *DuckDuckGo {
	return &DuckDuckGo{
		client:   &http.Client{Timeout: 10 * time.Second},
		endpoint: ddgEndpoint,
	}
}

func (d *DuckDuckGo) Name() string { return "duckduckgo" }

// Search fetches the results page for query and extracts up to
// maxSnippets result snippets.
func (d *DuckDuckGo) Search(ctx context.Context, query string) ([]string, error) {
	if strings.TrimSpace(query) == "" {
		return nil, errors.New("query is empty")
	}

	endpoint := d.endpoint + "?q=" + url.QueryEscape(query)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	// DuckDuckGo serves an empty shell to unknown clients.
	req.Header.Set("User-Agent", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36")

	resp, err := d.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("duckduckgo http %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	return parseSnippets(string(body)), nil
}

// parseSnippets extracts the snippet anchors from the results HTML and
// strips them down to plain text.
func parseSnippets(page string) []string {
	var snippets []string
	for _, match := range ddgSnippetRe.FindAllStringSubmatch(page, -1) {
		text := cleanHTML(match[1])
		if text == "" {
			continue
		}
		snippets = append(snippets, text)
		if len(snippets) >= maxSnippets {
			break
		}
	}
	return snippets
}

// cleanHTML strips markup and entities, collapsing whitespace runs.
func cleanHTML(fragment string) string {
	text := htmlTagRe.ReplaceAllString(fragment, "")
	text = html.UnescapeString(text)
	text = whitespaceRe.ReplaceAllString(text, " ")
	return strings.TrimSpace(text)
}
