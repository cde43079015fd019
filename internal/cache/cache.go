package cache

import (
	"container/list"
	"crypto/sha256"
	"encoding/hex"
	"strings"
	"sync"
	"time"
)

// Cache is a size-bounded LRU of summaries with per-entry expiry.
// A nil *Cache is valid and never hits.
type Cache struct {
	mu         sync.Mutex
	entries    map[string]*list.Element
	order      *list.List
	maxEntries int
}

type entry struct {
	key       string
	summary   string
	expiresAt time.Time
}

func New(maxEntries int) *Cache {
	if maxEntries <= 0 {
		return nil
	}

	return &Cache{
		entries:    make(map[string]*list.Element, maxEntries),
		order:      list.New(),
		maxEntries: maxEntries,
	}
}

// Key digests the summary options and text. Blank text yields an empty key.
// The language is kept verbatim apart from trimming, as it is in the prompt.
func Key(summaryType string, targetLanguage string, text string) string {
	normalizedText := strings.TrimSpace(text)
	if normalizedText == "" {
		return ""
	}

	hash := sha256.Sum256([]byte(normalizedText))

	return summaryType + "|" + strings.TrimSpace(targetLanguage) + "|" + hex.EncodeToString(hash[:])
}

func (c *Cache) Get(key string, now time.Time) (string, bool) {
	if c == nil || key == "" {
		return "", false
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	elem, ok := c.entries[key]
	if !ok {
		return "", false
	}

	e := entryOf(elem)
	if now.After(e.expiresAt) {
		c.removeElement(elem)

		return "", false
	}

	c.order.MoveToFront(elem)

	return e.summary, true
}

func (c *Cache) Set(
	key string,
	summary string,
	expiresAt time.Time,
	now time.Time,
) {
	if c == nil || key == "" || summary == "" || expiresAt.IsZero() {
		return
	}

	if !expiresAt.After(now) {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if elem, ok := c.entries[key]; ok {
		e := entryOf(elem)
		e.summary = summary
		e.expiresAt = expiresAt
		c.order.MoveToFront(elem)

		return
	}

	elem := c.order.PushFront(&entry{
		key:       key,
		summary:   summary,
		expiresAt: expiresAt,
	})
	c.entries[key] = elem

	c.evictExpiredLocked(now)
	c.enforceSizeLimitLocked()
}

// Purge drops expired entries and reports how many were removed.
func (c *Cache) Purge(now time.Time) int {
	if c == nil {
		return 0
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	before := len(c.entries)
	c.evictExpiredLocked(now)

	return before - len(c.entries)
}

func (c *Cache) Len() int {
	if c == nil {
		return 0
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	return len(c.entries)
}

func (c *Cache) evictExpiredLocked(now time.Time) {
	for elem := c.order.Back(); elem != nil; {
		prev := elem.Prev()
		if now.After(entryOf(elem).expiresAt) {
			c.removeElement(elem)
		}
		elem = prev
	}
}

func (c *Cache) enforceSizeLimitLocked() {
	for len(c.entries) > c.maxEntries {
		elem := c.order.Back()
		if elem == nil {
			return
		}
		c.removeElement(elem)
	}
}

func (c *Cache) removeElement(elem *list.Element) {
	delete(c.entries, entryOf(elem).key)
	c.order.Remove(elem)
}

// entryOf reads the entry held by an element of c.order.
func entryOf(elem *list.Element) *entry {
	return elem.Value.(*entry)
}
