package cache

import (
	"fmt"
	"time"

	gocache "github.com/patrickmn/go-cache"
	"go.uber.org/zap"

	"github.com/volunteerhub/volunteerhub-web/pkg/hubapi"
	"github.com/volunteerhub/volunteerhub-web/pkg/logger"
	"github.com/volunteerhub/volunteerhub-web/pkg/metrics"
)

const (
	needsCacheName   = "needs_feed"
	cacheCheckPeriod = time.Minute
)

// NeedsFeedCache is a short-lived TTL cache for the public browse-needs
// feed, keyed by page window. It only serves reads; any need mutation
// flushes the whole cache so the next read sees fresh backend data.
type NeedsFeedCache struct {
	cache *gocache.Cache
	ttl   time.Duration
}

// NewNeedsFeedCache creates a needs feed cache with the given TTL
func NewNeedsFeedCache(ttlSeconds int) *NeedsFeedCache {
	ttl := time.Duration(ttlSeconds) * time.Second
	return &NeedsFeedCache{
		cache: gocache.New(ttl, cacheCheckPeriod),
		ttl:   ttl,
	}
}

func pageKey(page hubapi.Page) string {
	return fmt.Sprintf("needs:skip:%d:limit:%d", page.Skip, page.Limit)
}

// Get returns the cached feed page, if present
func (nc *NeedsFeedCache) Get(page hubapi.Page) ([]hubapi.Need, bool) {
	data, found := nc.cache.Get(pageKey(page))
	if !found {
		metrics.CacheMisses.WithLabelValues(needsCacheName).Inc()
		return nil, false
	}

	needs, ok := data.([]hubapi.Need)
	if !ok {
		logger.Error("Invalid cache data type for needs feed")
		nc.cache.Delete(pageKey(page))
		metrics.CacheMisses.WithLabelValues(needsCacheName).Inc()
		return nil, false
	}

	metrics.CacheHits.WithLabelValues(needsCacheName).Inc()
	return needs, true
}

// Set stores a feed page with the configured TTL
func (nc *NeedsFeedCache) Set(page hubapi.Page, needs []hubapi.Need) {
	nc.cache.Set(pageKey(page), needs, nc.ttl)
}

// Invalidate flushes all cached feed pages. Called after every need
// create, update or delete.
func (nc *NeedsFeedCache) Invalidate() {
	count := nc.cache.ItemCount()
	nc.cache.Flush()
	if count > 0 {
		logger.Debug("Needs feed cache invalidated", zap.Int("evicted_pages", count))
	}
}
