package lru_test

import (
	"testing"

	"github.com/grahamgower/moments/internal/lru"
	"github.com/stretchr/testify/require"
)

// TestPutGetEviction ensures eviction drops the least-recently-used key.
func TestPutGetEviction(t *testing.T) {
	c := lru.New[int, string](2)
	c.Put(1, "a")
	c.Put(2, "b")

	// touch key 1 so key 2 becomes least-recently-used
	_, ok := c.Get(1)
	require.True(t, ok)

	c.Put(3, "c")

	_, ok = c.Get(2)
	require.False(t, ok, "key 2 should have been evicted")

	v, ok := c.Get(1)
	require.True(t, ok)
	require.Equal(t, "a", v)

	v, ok = c.Get(3)
	require.True(t, ok)
	require.Equal(t, "c", v)
}

// TestUnboundedWhenCapacityZero ensures a non-positive capacity never evicts.
func TestUnboundedWhenCapacityZero(t *testing.T) {
	c := lru.New[int, int](0)
	for i := 0; i < 100; i++ {
		c.Put(i, i*i)
	}
	require.Equal(t, 100, c.Len())
}
