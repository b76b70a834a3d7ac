package cache

import (
	"sync"

	"textbook-parser/internal/textutil"

	"github.com/rs/zerolog/log"
)

// Memo remembers resolved glossary lookups so that headwords repeated across
// lessons and books are only resolved once per run.
type Memo struct {
	mu     sync.RWMutex
	memory map[string]string // hash(kind, query) → gloss
	hits   int
	misses int
}

// New creates an empty memo.
func New() *Memo {
	return &Memo{memory: make(map[string]string)}
}

func key(kind, query string) string {
	return textutil.Hash(kind + "\x00" + query)
}

// Get returns the remembered gloss for query. An empty gloss is a valid
// remembered result ("looked up, nothing found").
func (c *Memo) Get(kind, query string) (string, bool) {
	k := key(kind, query)

	c.mu.Lock()
	defer c.mu.Unlock()

	v, ok := c.memory[k]
	if ok {
		c.hits++
	} else {
		c.misses++
	}
	return v, ok
}

// Set remembers gloss as the result for query.
func (c *Memo) Set(kind, query, gloss string) {
	k := key(kind, query)

	c.mu.Lock()
	c.memory[k] = gloss
	c.mu.Unlock()
}

// Len returns the number of remembered lookups.
func (c *Memo) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.memory)
}

// LogStats writes hit and miss counters through the global logger.
func (c *Memo) LogStats() {
	c.mu.RLock()
	defer c.mu.RUnlock()

	log.Debug().
		Int("entries", len(c.memory)).
		Int("hits", c.hits).
		Int("misses", c.misses).
		Msg("Lookup cache stats")
}
