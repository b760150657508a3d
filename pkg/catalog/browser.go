package catalog

import (
	"context"
	"log"
	"net/url"
	"sync"
	"sync/atomic"

	"github.com/vitrine-store/gateway/pkg/models"
)

// Fetcher is the catalog read side of the backend client.
type Fetcher interface {
	FindAllProducts(ctx context.Context, params url.Values) (*models.CatalogPage, error)
}

// Browser is the catalog view of one browsing session. Every fetch is tagged
// with a monotonically increasing sequence number; a response that completes
// after a newer one has already landed is discarded instead of overwriting
// the session's current snapshot. Rapid filter or page changes therefore can
// never show page N's results under page N+1's filters.
type Browser struct {
	fetcher Fetcher
	seq     atomic.Uint64

	mu      sync.Mutex
	applied uint64
	current *models.CatalogPage
	query   Query

	search *Debouncer
}

func NewBrowser(fetcher Fetcher) *Browser {
	return &Browser{
		fetcher: fetcher,
		search:  NewDebouncer(SearchQuietPeriod),
	}
}

// Fetch runs the query against the backend. The caller always receives this
// call's own result; the shared snapshot only advances when this call is
// still the newest one to complete.
func (b *Browser) Fetch(ctx context.Context, q Query) (*models.CatalogPage, error) {
	tag := b.seq.Add(1)

	page, err := b.fetcher.FindAllProducts(ctx, q.Values())
	if err != nil {
		return nil, err
	}

	b.mu.Lock()
	if tag > b.applied {
		b.applied = tag
		b.current = page
		b.query = q
	}
	b.mu.Unlock()

	return page, nil
}

// Current returns the snapshot of the newest completed fetch, or nil before
// the first one lands.
func (b *Browser) Current() *models.CatalogPage {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.current
}

// SetSearch updates the search term after the quiet period, resetting to the
// first page. Superseding input cancels the pending fetch, so a burst of
// keystrokes costs one request.
func (b *Browser) SetSearch(term string) {
	b.search.Trigger(func() {
		b.mu.Lock()
		q := b.query
		b.mu.Unlock()

		q.Search = term
		q.Page = 1

		if _, err := b.Fetch(context.Background(), q); err != nil {
			log.Printf("Warning: debounced catalog search failed: %v", err)
		}
	})
}

// Close cancels any pending debounced search.
func (b *Browser) Close() {
	b.search.Stop()
}

// BrowserSet hands out one Browser per session key so concurrent requests
// from the same client share a stale-response guard.
type BrowserSet struct {
	fetcher Fetcher

	mu       sync.Mutex
	browsers map[string]*Browser
}

func NewBrowserSet(fetcher Fetcher) *BrowserSet {
	return &BrowserSet{
		fetcher:  fetcher,
		browsers: make(map[string]*Browser),
	}
}

func (s *BrowserSet) Get(key string) *Browser {
	s.mu.Lock()
	defer s.mu.Unlock()

	b, ok := s.browsers[key]
	if !ok {
		b = NewBrowser(s.fetcher)
		s.browsers[key] = b
	}
	return b
}
