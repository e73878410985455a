package recommend

import (
	"strconv"
	"testing"

	domrec "github.com/litmatch/litmatch/internal/domain/recommend"
)

func cacheRequest(t *testing.T, text string) domrec.Request {
	t.Helper()
	req, err := domrec.New(text, nil, domrec.DefaultLimits())
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	return req
}

func TestResponseCache_PutGet(t *testing.T) {
	c := newResponseCache(2)
	req := cacheRequest(t, "alpha")

	if _, ok := c.Get(req); ok {
		t.Fatal("unexpected hit on empty cache")
	}

	c.Put(req, Response{Query: "alpha"})
	got, ok := c.Get(req)
	if !ok {
		t.Fatal("expected hit")
	}
	if got.Query != "alpha" {
		t.Errorf("cached query = %q, want \"alpha\"", got.Query)
	}
}

func TestResponseCache_KeyIncludesMaxResults(t *testing.T) {
	c := newResponseCache(4)

	one, two := 1, 2
	reqOne, err := domrec.New("alpha", &one, domrec.DefaultLimits())
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	reqTwo, err := domrec.New("alpha", &two, domrec.DefaultLimits())
	if err != nil {
		t.Fatalf("request: %v", err)
	}

	c.Put(reqOne, Response{Query: "one"})
	if _, ok := c.Get(reqTwo); ok {
		t.Error("same text with different max_results must not share entries")
	}
}

func TestResponseCache_EvictsLRU(t *testing.T) {
	c := newResponseCache(2)

	reqs := make([]domrec.Request, 3)
	for i := range reqs {
		reqs[i] = cacheRequest(t, "query "+strconv.Itoa(i))
	}

	c.Put(reqs[0], Response{})
	c.Put(reqs[1], Response{})
	// Touch 0 so 1 becomes the eviction candidate.
	c.Get(reqs[0])
	c.Put(reqs[2], Response{})

	if _, ok := c.Get(reqs[1]); ok {
		t.Error("expected LRU entry to be evicted")
	}
	if _, ok := c.Get(reqs[0]); !ok {
		t.Error("recently used entry should survive")
	}
	if _, ok := c.Get(reqs[2]); !ok {
		t.Error("newest entry should be present")
	}
	if c.Len() != 2 {
		t.Errorf("cache length = %d, want 2", c.Len())
	}
}

func TestResponseCache_Flush(t *testing.T) {
	c := newResponseCache(2)
	req := cacheRequest(t, "alpha")

	c.Put(req, Response{})
	c.Flush()

	if c.Len() != 0 {
		t.Errorf("cache length after flush = %d, want 0", c.Len())
	}
	if _, ok := c.Get(req); ok {
		t.Error("unexpected hit after flush")
	}
}
