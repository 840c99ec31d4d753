// Package cache holds a small LRU of snippet file contents so interactive
// surfaces can render previews without re-reading the file on every cursor
// move. Entries are keyed by path and dropped wholesale whenever a new
// catalog generation publishes.
package cache

import (
	"container/list"
	"sync"
)

type Contents struct {
	mu        sync.Mutex
	size      int
	gen       uint64
	evictList *list.List
	items     map[string]*list.Element
}

type entry struct {
	path string
	data []byte
}

func NewContents(size int) *Contents {
	if size < 1 {
		size = 1
	}
	return &Contents{
		size:      size,
		evictList: list.New(),
		items:     make(map[string]*list.Element),
	}
}

// Get returns the cached contents for path, if present.
func (c *Contents) Get(path string) ([]byte, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if ele, hit := c.items[path]; hit {
		c.evictList.MoveToFront(ele)
		return ele.Value.(*entry).data, true
	}
	return nil, false
}

// Put stores the contents for path, evicting the least recently used entry
// when the cache is full.
func (c *Contents) Put(path string, data []byte) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if ele, hit := c.items[path]; hit {
		c.evictList.MoveToFront(ele)
		ele.Value.(*entry).data = data
		return
	}

	ele := c.evictList.PushFront(&entry{path: path, data: data})
	c.items[path] = ele

	if c.evictList.Len() > c.size {
		c.removeOldest()
	}
}

// Reset drops every cached entry when the catalog generation moves past the
// one the cache was filled under.
func (c *Contents) Reset(gen uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if gen == c.gen {
		return
	}
	c.gen = gen
	c.evictList.Init()
	c.items = make(map[string]*list.Element)
}

func (c *Contents) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.evictList.Len()
}

func (c *Contents) removeOldest() {
	ele := c.evictList.Back()
	if ele != nil {
		c.removeElement(ele)
	}
}

func (c *Contents) removeElement(e *list.Element) {
	c.evictList.Remove(e)
	kv := e.Value.(*entry)
	delete(c.items, kv.path)
}
