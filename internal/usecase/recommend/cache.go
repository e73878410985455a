package recommend

import (
	"container/list"
	"strconv"
	"sync"

	domrec "github.com/litmatch/litmatch/internal/domain/recommend"
)

// responseCache is a small LRU of computed responses keyed by
// (max_results, text). It is flushed on every successful rebuild, so a
// cached entry never outlives the index it was computed against.
type responseCache struct {
	mu      sync.Mutex
	cap     int
	order   *list.List // front = most recently used
	entries map[string]*list.Element
}

type cacheEntry struct {
	key  string
	resp Response
}

func newResponseCache(capacity int) *responseCache {
	return &responseCache{
		cap:     capacity,
		order:   list.New(),
		entries: make(map[string]*list.Element, capacity),
	}
}

func cacheKey(req domrec.Request) string {
	return strconv.Itoa(req.MaxResults()) + "\x00" + req.Text()
}

func (c *responseCache) Get(req domrec.Request) (Response, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	el, ok := c.entries[cacheKey(req)]
	if !ok {
		return Response{}, false
	}
	c.order.MoveToFront(el)
	return el.Value.(*cacheEntry).resp, true
}

func (c *responseCache) Put(req domrec.Request, resp Response) {
	c.mu.Lock()
	defer c.mu.Unlock()

	key := cacheKey(req)
	if el, ok := c.entries[key]; ok {
		c.order.MoveToFront(el)
		el.Value.(*cacheEntry).resp = resp
		return
	}

	el := c.order.PushFront(&cacheEntry{key: key, resp: resp})
	c.entries[key] = el

	if c.order.Len() > c.cap {
		oldest := c.order.Back()
		c.order.Remove(oldest)
		delete(c.entries, oldest.Value.(*cacheEntry).key)
	}
}

func (c *responseCache) Flush() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.order.Init()
	c.entries = make(map[string]*list.Element, c.cap)
}

func (c *responseCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.order.Len()
}
