package chain

import (
	"testing"

	"github.com/gostonefire/chainhashmap/hmerrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestChain - Returns a chain populated with the given keys, values taken from their position (1, 2, 3, ...)
func newTestChain(keys ...string) *Chain[string, int] {
	c := New[string, int]()
	for i, k := range keys {
		c.Upsert(k, i+1)
	}
	return c
}

// countNodes - Walks the chain and returns the number of reachable nodes
func countNodes[K comparable, V comparable](c *Chain[K, V]) int {
	n := 0
	for nd := c.head; nd != nil; nd = nd.next {
		n++
	}
	return n
}

func TestChain_Upsert(t *testing.T) {
	t.Run("inserts into an empty chain", func(t *testing.T) {
		// Prepare
		c := New[string, int]()

		// Execute
		result := c.Upsert("x", 1)

		// Check
		assert.Equal(t, Inserted, result, "reports inserted")
		assert.Equal(t, 1, c.Size(), "size increased")
		assert.False(t, c.IsEmpty(), "chain not empty")
		assert.Equal(t, "x", c.head.key, "first insert becomes head")
	})

	t.Run("appends new keys at the tail", func(t *testing.T) {
		// Prepare
		c := newTestChain("a", "b")

		// Execute
		result := c.Upsert("c", 3)

		// Check
		assert.Equal(t, Inserted, result, "reports inserted")
		assert.Equal(t, []string{"a", "b", "c"}, c.Keys(), "insertion order kept")
		assert.Equal(t, 3, countNodes(c), "size matches reachable nodes")
	})

	t.Run("updates an existing key in place", func(t *testing.T) {
		// Prepare
		c := newTestChain("a", "b", "c")

		// Execute
		result := c.Upsert("b", 3000)

		// Check
		assert.Equal(t, Updated, result, "reports updated")
		assert.Equal(t, 3, c.Size(), "size unchanged")
		assert.Equal(t, []string{"a", "b", "c"}, c.Keys(), "order unchanged")
		v, err := c.Get("b")
		assert.NoError(t, err, "gets updated key")
		assert.Equal(t, 3000, v, "latest value returned")
	})

	t.Run("updates the tail key without appending", func(t *testing.T) {
		// Prepare
		c := newTestChain("a", "b")

		// Execute
		result := c.Upsert("b", 20)

		// Check
		assert.Equal(t, Updated, result, "reports updated")
		assert.Equal(t, 2, countNodes(c), "no node appended")
	})
}

func TestChain_Get(t *testing.T) {
	t.Run("gets value for existing key", func(t *testing.T) {
		// Prepare
		c := newTestChain("a", "b", "c")

		// Execute
		v, err := c.Get("c")

		// Check
		assert.NoError(t, err, "key found")
		assert.Equal(t, 3, v, "correct value")
	})

	t.Run("returns KeyNotFound for missing key", func(t *testing.T) {
		// Prepare
		c := newTestChain("a")

		// Execute
		_, err := c.Get("z")

		// Check
		assert.ErrorIs(t, err, hmerrors.KeyNotFound{}, "get correct error")
	})

	t.Run("returns KeyNotFound on empty chain", func(t *testing.T) {
		// Prepare
		c := New[string, int]()

		// Execute
		_, err := c.Get("z")

		// Check
		assert.ErrorIs(t, err, hmerrors.KeyNotFound{}, "get correct error")
	})
}

func TestChain_Ref(t *testing.T) {
	t.Run("updates value through reference", func(t *testing.T) {
		// Prepare
		c := newTestChain("ABC")

		// Execute
		ref, err := c.Ref("ABC")
		require.NoError(t, err, "gets reference")
		*ref = 3000

		// Check
		v, err := c.Get("ABC")
		assert.NoError(t, err, "gets value")
		assert.Equal(t, 3000, v, "value updated in place")
	})

	t.Run("returns KeyNotFound for missing key", func(t *testing.T) {
		// Prepare
		c := newTestChain("ABC")

		// Execute
		ref, err := c.Ref("DEF")

		// Check
		assert.ErrorIs(t, err, hmerrors.KeyNotFound{}, "get correct error")
		assert.Nil(t, ref, "no reference")
	})
}

func TestChain_HasAndHasValue(t *testing.T) {
	t.Run("finds keys and values", func(t *testing.T) {
		// Prepare
		c := newTestChain("a", "b")

		// Execute and Check
		assert.True(t, c.Has("a"), "has key a")
		assert.True(t, c.Has("b"), "has key b")
		assert.False(t, c.Has("c"), "no key c")
		assert.True(t, c.HasValue(2), "has value 2")
		assert.False(t, c.HasValue(5), "no value 5")
	})

	t.Run("empty chain has nothing", func(t *testing.T) {
		// Prepare
		c := New[string, int]()

		// Execute and Check
		assert.False(t, c.Has("a"), "no key")
		assert.False(t, c.HasValue(0), "no zero value")
	})
}

func TestChain_Remove(t *testing.T) {
	t.Run("removes head and returns its value", func(t *testing.T) {
		// Prepare
		c := newTestChain("a", "b", "c")

		// Execute
		v, err := c.Remove("a")

		// Check
		assert.NoError(t, err, "removes head")
		assert.Equal(t, 1, v, "value of removed node")
		assert.Equal(t, []string{"b", "c"}, c.Keys(), "head moved")
		assert.Equal(t, 2, c.Size(), "size decreased")
	})

	t.Run("removes a middle node and returns its value", func(t *testing.T) {
		// Prepare
		c := newTestChain("a", "b", "c")

		// Execute
		v, err := c.Remove("b")

		// Check
		assert.NoError(t, err, "removes middle")
		assert.Equal(t, 2, v, "value of removed node, not its predecessor")
		assert.Equal(t, []string{"a", "c"}, c.Keys(), "relinked")
		assert.Equal(t, 2, countNodes(c), "size matches reachable nodes")
	})

	t.Run("removes the tail", func(t *testing.T) {
		// Prepare
		c := newTestChain("a", "b", "c")

		// Execute
		v, err := c.Remove("c")

		// Check
		assert.NoError(t, err, "removes tail")
		assert.Equal(t, 3, v, "value of removed node")
		assert.Equal(t, []string{"a", "b"}, c.Keys(), "tail cut")

		c.Upsert("d", 4)
		assert.Equal(t, []string{"a", "b", "d"}, c.Keys(), "appends after new tail")
	})

	t.Run("removes the only node", func(t *testing.T) {
		// Prepare
		c := newTestChain("a")

		// Execute
		v, err := c.Remove("a")

		// Check
		assert.NoError(t, err, "removes single node")
		assert.Equal(t, 1, v, "value of removed node")
		assert.True(t, c.IsEmpty(), "chain empty")
		assert.Equal(t, 0, c.Size(), "size zero")
	})

	t.Run("fails cleanly on an empty chain", func(t *testing.T) {
		// Prepare
		c := New[string, int]()

		// Execute
		_, err := c.Remove("a")

		// Check
		assert.ErrorIs(t, err, hmerrors.KeyNotFound{}, "get correct error")
		assert.Equal(t, 0, c.Size(), "size unchanged")
	})

	t.Run("fails cleanly on a single non-matching node", func(t *testing.T) {
		// Prepare
		c := newTestChain("a")

		// Execute
		_, err := c.Remove("b")

		// Check
		assert.ErrorIs(t, err, hmerrors.KeyNotFound{}, "get correct error")
		assert.Equal(t, 1, c.Size(), "size unchanged")
		assert.Equal(t, []string{"a"}, c.Keys(), "contents unchanged")
	})

	t.Run("fails cleanly when no node matches", func(t *testing.T) {
		// Prepare
		c := newTestChain("a", "b", "c")

		// Execute
		_, err := c.Remove("z")

		// Check
		assert.ErrorIs(t, err, hmerrors.KeyNotFound{}, "get correct error")
		assert.Equal(t, []string{"a", "b", "c"}, c.Keys(), "contents unchanged")
	})
}

func TestChain_Clear(t *testing.T) {
	t.Run("clears all nodes", func(t *testing.T) {
		// Prepare
		c := newTestChain("a", "b", "c")

		// Execute
		c.Clear()

		// Check
		assert.True(t, c.IsEmpty(), "empty after clear")
		assert.Equal(t, 0, c.Size(), "size zero")
		assert.Empty(t, c.Keys(), "no keys")
		assert.False(t, c.Has("a"), "key gone")
	})
}

func TestChain_Extraction(t *testing.T) {
	t.Run("returns snapshots in insertion order", func(t *testing.T) {
		// Prepare
		c := newTestChain("x", "y", "z")

		// Execute
		keys := c.Keys()
		values := c.Values()
		entries := c.Entries()

		// Check
		assert.Equal(t, []string{"x", "y", "z"}, keys, "keys in order")
		assert.Equal(t, []int{1, 2, 3}, values, "values in order")
		assert.Equal(t, []Entry[string, int]{{"x", 1}, {"y", 2}, {"z", 3}}, entries, "entries in order")
	})

	t.Run("snapshots are not affected by later mutation", func(t *testing.T) {
		// Prepare
		c := newTestChain("x", "y")
		entries := c.Entries()

		// Execute
		c.Upsert("x", 100)
		_, _ = c.Remove("y")

		// Check
		assert.Equal(t, []Entry[string, int]{{"x", 1}, {"y", 2}}, entries, "snapshot intact")
	})

	t.Run("empty chain gives empty snapshots", func(t *testing.T) {
		// Prepare
		c := New[string, int]()

		// Execute and Check
		assert.Empty(t, c.Keys())
		assert.Empty(t, c.Values())
		assert.Empty(t, c.Entries())
	})
}

func TestChain_Clone(t *testing.T) {
	t.Run("clone is independent of the original", func(t *testing.T) {
		// Prepare
		c := newTestChain("a", "b", "c")

		// Execute
		cl := c.Clone()
		c.Upsert("a", 100)
		_, _ = c.Remove("b")

		// Check
		assert.Equal(t, 3, cl.Size(), "clone size kept")
		assert.Equal(t, []Entry[string, int]{{"a", 1}, {"b", 2}, {"c", 3}}, cl.Entries(), "clone contents kept")
		cl.Upsert("d", 4)
		assert.Equal(t, []string{"a", "b", "c", "d"}, cl.Keys(), "clone tail is correct")
	})
}

func TestChain_String(t *testing.T) {
	t.Run("renders entries", func(t *testing.T) {
		// Prepare
		c := newTestChain("a", "b")

		// Execute
		s := c.String()

		// Check
		assert.Equal(t, "{K: a, V: 1}, {K: b, V: 2}", s, "rendered")
		assert.Equal(t, "", New[string, int]().String(), "empty chain renders empty")
	})
}
