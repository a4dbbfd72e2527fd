package search

import (
	"context"
	"log"
)

// Fallback cascades over providers: the first one to come back with a
// non-empty snippet list wins. Provider failures are logged and
// swallowed; a lesson can always be generated without grounding.
type Fallback struct {
	providers []Provider
}

// NewFallback orders providers by priority.
func NewFallback(providers ...Provider) *Fallback {
	return &Fallback{providers: providers}
}

// Search returns the first provider's non-empty snippets, or nil when
// every provider fails or comes back empty. It never returns an error.
func (f *Fallback) Search(ctx context.Context, query string) []string {
	for _, p := range f.providers {
		snippets, err := p.Search(ctx, query)
		if err != nil {
			log.Printf("[search] %s failed: %v", p.Name(), err)
			continue
		}
		if len(snippets) > 0 {
			return snippets
		}
		log.Printf("[search] %s returned no snippets", p.Name())
	}
	return nil
}
