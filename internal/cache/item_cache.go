package cache

import (
	"context"
	"log"
	"sync"

	"github.com/grishma-roka/Campus-Cart/internal/metrics"
	"github.com/grishma-roka/Campus-Cart/internal/repository"
)

type ItemRepository interface {
	GetAvailable(ctx context.Context) ([]*repository.Item, error)
}

// ItemCache holds the currently available items so the listing endpoint
// does not hit the store on every read. Lifecycle operations keep it in
// step with availability toggles after their transactions commit.
type ItemCache struct {
	mu    sync.RWMutex
	cache map[string]*repository.Item
	repo  ItemRepository
	warm  bool
}

func NewItemCache(repo ItemRepository) *ItemCache {
	return &ItemCache{
		cache: make(map[string]*repository.Item),
		repo:  repo,
	}
}

func (c *ItemCache) LoadInitialData(ctx context.Context) error {
	log.Println("Loading initial data into item cache...")
	items, err := c.repo.GetAvailable(ctx)
	if err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	for _, item := range items {
		itemCopy := *item
		c.cache[item.ID] = &itemCopy
	}
	c.warm = true
	metrics.ItemCacheItems.Set(float64(len(c.cache)))
	log.Printf("Successfully loaded %d available items into cache.", len(c.cache))
	return nil
}

func (c *ItemCache) Warm() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.warm
}

func (c *ItemCache) GetAll() []*repository.Item {
	c.mu.RLock()
	defer c.mu.RUnlock()
	items := make([]*repository.Item, 0, len(c.cache))
	for _, item := range c.cache {
		itemCopy := *item
		items = append(items, &itemCopy)
	}
	return items
}

func (c *ItemCache) Get(itemID string) (*repository.Item, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	item, found := c.cache[itemID]
	if !found {
		return nil, false
	}
	itemCopy := *item
	return &itemCopy, true
}

// Set caches an item if it is available, otherwise evicts it.
func (c *ItemCache) Set(item *repository.Item) {
	if !item.IsAvailable {
		c.Delete(item.ID)
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	itemCopy := *item
	c.cache[item.ID] = &itemCopy
	metrics.ItemCacheItems.Set(float64(len(c.cache)))
}

// SetAvailability applies an availability toggle. An item turning
// unavailable is evicted; one turning available is only re-cached if we
// still know it, otherwise the next warm load picks it up.
func (c *ItemCache) SetAvailability(itemID string, available bool) {
	if !available {
		c.Delete(itemID)
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if item, found := c.cache[itemID]; found {
		item.IsAvailable = true
		return
	}
	// Not cached: force a reload on the next listing.
	c.warm = false
}

func (c *ItemCache) Delete(itemID string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.cache, itemID)
	metrics.ItemCacheItems.Set(float64(len(c.cache)))
}
