package cache

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/grishma-roka/Campus-Cart/internal/repository"
)

type stubItemRepo struct {
	items []*repository.Item
	err   error
}

func (s *stubItemRepo) GetAvailable(_ context.Context) ([]*repository.Item, error) {
	return s.items, s.err
}

func TestItemCache_LoadInitialData(t *testing.T) {
	repo := &stubItemRepo{items: []*repository.Item{
		{ID: "item-1", IsAvailable: true},
		{ID: "item-2", IsAvailable: true},
	}}
	c := NewItemCache(repo)
	assert.False(t, c.Warm())

	require.NoError(t, c.LoadInitialData(context.Background()))

	assert.True(t, c.Warm())
	assert.Len(t, c.GetAll(), 2)
}

func TestItemCache_LoadInitialDataError(t *testing.T) {
	repo := &stubItemRepo{err: errors.New("db is down")}
	c := NewItemCache(repo)

	assert.Error(t, c.LoadInitialData(context.Background()))
	assert.False(t, c.Warm())
}

func TestItemCache_SetEvictsUnavailable(t *testing.T) {
	c := NewItemCache(&stubItemRepo{})
	c.Set(&repository.Item{ID: "item-1", IsAvailable: true})

	_, found := c.Get("item-1")
	assert.True(t, found)

	c.Set(&repository.Item{ID: "item-1", IsAvailable: false})

	_, found = c.Get("item-1")
	assert.False(t, found)
}

func TestItemCache_GetReturnsCopy(t *testing.T) {
	c := NewItemCache(&stubItemRepo{})
	c.Set(&repository.Item{ID: "item-1", Title: "Tent", IsAvailable: true})

	got, found := c.Get("item-1")
	require.True(t, found)
	got.Title = "mutated"

	again, _ := c.Get("item-1")
	assert.Equal(t, "Tent", again.Title)
}

func TestItemCache_SetAvailability(t *testing.T) {
	t.Run("unavailable evicts", func(t *testing.T) {
		c := NewItemCache(&stubItemRepo{})
		require.NoError(t, c.LoadInitialData(context.Background()))
		c.Set(&repository.Item{ID: "item-1", IsAvailable: true})

		c.SetAvailability("item-1", false)

		_, found := c.Get("item-1")
		assert.False(t, found)
		assert.True(t, c.Warm())
	})

	t.Run("available again re-caches a known item", func(t *testing.T) {
		c := NewItemCache(&stubItemRepo{})
		require.NoError(t, c.LoadInitialData(context.Background()))
		c.Set(&repository.Item{ID: "item-1", IsAvailable: true})

		c.SetAvailability("item-1", true)

		got, found := c.Get("item-1")
		require.True(t, found)
		assert.True(t, got.IsAvailable)
	})

	t.Run("unknown item turning available cools the cache", func(t *testing.T) {
		c := NewItemCache(&stubItemRepo{})
		require.NoError(t, c.LoadInitialData(context.Background()))

		c.SetAvailability("item-unknown", true)

		assert.False(t, c.Warm())
	})
}
