package adapters

import (
	lru "github.com/hashicorp/golang-lru/v2"

	"mod-updater/internal/ports"
)

// DefaultLookupCacheSize is far above the number of coordinates a project
// declares, so entries are not evicted within a run.
const DefaultLookupCacheSize = 4096

type LookupCacheAdapter struct {
	cache *lru.Cache[string, string]
}

func NewLookupCacheAdapter(size int) (*LookupCacheAdapter, error) {
	if size <= 0 {
		size = DefaultLookupCacheSize
	}
	cache, err := lru.New[string, string](size)
	if err != nil {
		return nil, err
	}
	return &LookupCacheAdapter{cache: cache}, nil
}

func (a *LookupCacheAdapter) Get(key string) (string, bool) {
	return a.cache.Get(key)
}

func (a *LookupCacheAdapter) Add(key string, value string) {
	a.cache.Add(key, value)
}

func (a *LookupCacheAdapter) Len() int {
	return a.cache.Len()
}

var _ ports.LookupCache = (*LookupCacheAdapter)(nil)
