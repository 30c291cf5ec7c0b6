package notation

import (
	lru "github.com/hashicorp/golang-lru/v2"
)

// DefaultCacheSize is the number of parsed moves a Cache keeps by default.
const DefaultCacheSize = 256

// Cache remembers parsed moves by their text. Parsing does not depend on the
// board, so a move typed again is not parsed again. Failed parses are not cached.
type Cache struct {
	cache *lru.Cache[string, Intent]
}

// NewCache creates a cache holding up to size parsed moves.
func NewCache(size int) (*Cache, error) {
	c, err := lru.New[string, Intent](size)
	if err != nil {
		return nil, err
	}
	return &Cache{cache: c}, nil
}

// Parse returns the cached intent for text, parsing and storing it on a miss.
func (c *Cache) Parse(text string) (Intent, error) {
	if in, ok := c.cache.Get(text); ok {
		return in, nil
	}
	in, err := Parse(text)
	if err != nil {
		return in, err
	}
	c.cache.Add(text, in)
	return in, nil
}

// Len returns the number of cached moves.
func (c *Cache) Len() int {
	return c.cache.Len()
}
