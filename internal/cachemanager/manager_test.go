package cachemanager

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCache_SetGet(t *testing.T) {
	c := New[string]("test", DefaultExpiration, DefaultCleanupInterval)

	c.Set("a", "alpha")
	v, ok := c.Get("a")
	assert.True(t, ok)
	assert.Equal(t, "alpha", v)

	_, ok = c.Get("missing")
	assert.False(t, ok)
}

func TestCache_Delete(t *testing.T) {
	c := New[int]("test", DefaultExpiration, DefaultCleanupInterval)

	c.Set("a", 1)
	c.Delete("a")

	_, ok := c.Get("a")
	assert.False(t, ok)
}

func TestCache_FlushAndCount(t *testing.T) {
	c := New[int]("test", DefaultExpiration, DefaultCleanupInterval)

	c.Set("a", 1)
	c.Set("b", 2)
	assert.Equal(t, 2, c.Count())

	c.Flush()
	assert.Equal(t, 0, c.Count())
}

func TestCache_Expiration(t *testing.T) {
	c := New[string]("test", 10*time.Millisecond, time.Minute)

	c.Set("a", "alpha")
	time.Sleep(30 * time.Millisecond)

	_, ok := c.Get("a")
	assert.False(t, ok)
}

func TestCache_StructValues(t *testing.T) {
	type pair struct{ X, Y int }
	c := New[pair]("test", DefaultExpiration, DefaultCleanupInterval)

	c.Set("p", pair{X: 1, Y: 2})
	v, ok := c.Get("p")
	assert.True(t, ok)
	assert.Equal(t, pair{X: 1, Y: 2}, v)
}
