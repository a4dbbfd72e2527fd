// Package search retrieves short reference snippets used to ground
// generated lessons: DuckDuckGo first, Wikipedia as the fallback.
package search

import "context"

// maxSnippets caps how many snippets any provider returns for a query.
const maxSnippets = 3

// Provider returns up to maxSnippets plain-text snippets for a query.
type Provider interface {
	Name() string
	Search(ctx context.Context, query string) ([]string, error)
}
