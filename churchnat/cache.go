package churchnat

import (
	"sync"

	"github.com/hashicorp/golang-lru/v2/simplelru"
)

// Cache remembers recently built numerals.
// A miss extends the largest cached numeral below the requested one instead
// of starting again from Zero.
type Cache struct {
	limits Limits

	mu  sync.Mutex
	lru *simplelru.LRU[int, Nat]
}

func NewCache(limits Limits, size int) *Cache {
	lru, err := simplelru.NewLRU[int, Nat](size, nil)
	if err != nil {
		panic(err)
	}
	return &Cache{limits: limits, lru: lru}
}

// ToEncoded returns the numeral for k.
// It fails the same way Limits.ToEncoded does.
func (c *Cache) ToEncoded(k int) (Nat, error) {
	if err := c.limits.check(int64(k)); err != nil {
		return nil, err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if n, exists := c.lru.Get(k); exists {
		return n, nil
	}
	n, from := Zero(), 0
	for _, k2 := range c.lru.Keys() {
		if k2 < k && k2 > from {
			n2, _ := c.lru.Peek(k2)
			n, from = n2, k2
		}
	}
	for range k - from {
		n = Succ(n)
	}
	c.lru.Add(k, n)
	return n, nil
}

func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lru.Len()
}
