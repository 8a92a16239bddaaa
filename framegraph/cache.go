package framegraph

import (
	"container/list"
	"strconv"
	"sync"

	"github.com/katalvlaran/refframe/frame"
)

// pathKey identifies a resolved path. generation ties the entry to the graph
// state it was computed from.
type pathKey struct {
	from, to   frame.Frame
	jd         float64
	generation uint64
}

// String is the singleflight key. Frames are spelled as quoted kind plus
// realization so that no two distinct keys share a string.
func (k pathKey) String() string {
	return frameKey(k.from) + "|" + frameKey(k.to) + "|" +
		strconv.FormatFloat(k.jd, 'g', -1, 64) + "|" +
		strconv.FormatUint(k.generation, 10)
}

func frameKey(f frame.Frame) string {
	return strconv.Quote(string(f.Kind)) + "/" + strconv.Itoa(f.Realization)
}

// pathCache is a fixed-size LRU of resolved paths. Front is most recent.
type pathCache struct {
	mu       sync.Mutex
	capacity int
	items    map[pathKey]*list.Element
	order    *list.List
}

type cacheEntry struct {
	key  pathKey
	path Path
}

func newPathCache(capacity int) *pathCache {
	return &pathCache{
		capacity: capacity,
		items:    make(map[pathKey]*list.Element, capacity),
		order:    list.New(),
	}
}

func (c *pathCache) get(key pathKey) (Path, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	elem, ok := c.items[key]
	if !ok {
		return Path{}, false
	}
	c.order.MoveToFront(elem)

	return elem.Value.(*cacheEntry).path, true
}

func (c *pathCache) set(key pathKey, p Path) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if elem, ok := c.items[key]; ok {
		c.order.MoveToFront(elem)
		elem.Value.(*cacheEntry).path = p

		return
	}
	if c.order.Len() >= c.capacity {
		oldest := c.order.Back()
		c.order.Remove(oldest)
		delete(c.items, oldest.Value.(*cacheEntry).key)
	}
	c.items[key] = c.order.PushFront(&cacheEntry{key: key, path: p})
}

func (c *pathCache) purge() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.items = make(map[pathKey]*list.Element, c.capacity)
	c.order.Init()
}

func (c *pathCache) size() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.order.Len()
}
