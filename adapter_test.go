package pith_test

import (
	"testing"

	"github.com/fwojciec/pith"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testAdapter struct {
	name     string
	patterns []string
	priority int
}

func (a *testAdapter) Name() string       { return a.name }
func (a *testAdapter) Patterns() []string { return a.patterns }
func (a *testAdapter) Priority() int      { return a.priority }

func (a *testAdapter) Extract(doc pith.Document, url string) (*pith.ExtractedContent, error) {
	return &pith.ExtractedContent{URL: url, Title: a.name}, nil
}

func TestRegistry_Dispatch(t *testing.T) {
	t.Parallel()

	t.Run("highest priority wins among matching adapters", func(t *testing.T) {
		t.Parallel()

		reg := pith.NewRegistry()
		require.NoError(t, reg.Register(&testAdapter{name: "low", patterns: []string{`example\.com`}, priority: 5}))
		require.NoError(t, reg.Register(&testAdapter{name: "high", patterns: []string{`example\.com`}, priority: 10}))

		adapter, ok := reg.Dispatch("https://example.com/article")

		require.True(t, ok)
		assert.Equal(t, "high", adapter.Name())
	})

	t.Run("equal priorities resolve by registration order", func(t *testing.T) {
		t.Parallel()

		reg := pith.NewRegistry()
		require.NoError(t, reg.Register(&testAdapter{name: "first", patterns: []string{`example\.com`}, priority: 5}))
		require.NoError(t, reg.Register(&testAdapter{name: "second", patterns: []string{`example\.com`}, priority: 5}))

		adapter, ok := reg.Dispatch("https://example.com/article")

		require.True(t, ok)
		assert.Equal(t, "first", adapter.Name())
	})

	t.Run("non-matching URL dispatches to nothing", func(t *testing.T) {
		t.Parallel()

		reg := pith.NewRegistry()
		require.NoError(t, reg.Register(&testAdapter{name: "wiki", patterns: []string{`wikipedia\.org`}, priority: 10}))

		_, ok := reg.Dispatch("https://example.com/article")

		assert.False(t, ok)
	})
}

func TestRegistry_Register(t *testing.T) {
	t.Parallel()

	t.Run("re-registering a name replaces without duplicating", func(t *testing.T) {
		t.Parallel()

		reg := pith.NewRegistry()
		require.NoError(t, reg.Register(&testAdapter{name: "wiki", patterns: []string{`wikipedia\.org`}, priority: 5}))
		require.NoError(t, reg.Register(&testAdapter{name: "wiki", patterns: []string{`wikipedia\.org`}, priority: 20}))

		assert.Len(t, reg.List(), 1)

		adapter, ok := reg.Get("wiki")
		require.True(t, ok)
		assert.Equal(t, 20, adapter.Priority())
	})

	t.Run("replacement keeps registration position", func(t *testing.T) {
		t.Parallel()

		reg := pith.NewRegistry()
		require.NoError(t, reg.Register(&testAdapter{name: "a", patterns: []string{`x\.com`}, priority: 5}))
		require.NoError(t, reg.Register(&testAdapter{name: "b", patterns: []string{`x\.com`}, priority: 5}))
		require.NoError(t, reg.Register(&testAdapter{name: "a", patterns: []string{`x\.com`}, priority: 5}))

		adapter, ok := reg.Dispatch("https://x.com/page")
		require.True(t, ok)
		assert.Equal(t, "a", adapter.Name())
	})

	t.Run("invalid pattern returns EINVALID", func(t *testing.T) {
		t.Parallel()

		reg := pith.NewRegistry()
		err := reg.Register(&testAdapter{name: "bad", patterns: []string{`[unclosed`}})

		require.Error(t, err)
		assert.Equal(t, pith.EINVALID, pith.ErrorCode(err))
		assert.Empty(t, reg.List())
	})
}

func TestRegistry_Unregister(t *testing.T) {
	t.Parallel()

	t.Run("removes the named adapter", func(t *testing.T) {
		t.Parallel()

		reg := pith.NewRegistry()
		require.NoError(t, reg.Register(&testAdapter{name: "wiki", patterns: []string{`wikipedia\.org`}, priority: 5}))

		assert.True(t, reg.Unregister("wiki"))
		assert.False(t, reg.Unregister("wiki"))
		assert.Empty(t, reg.List())
	})

	t.Run("dispatch still works after removal from the middle", func(t *testing.T) {
		t.Parallel()

		reg := pith.NewRegistry()
		require.NoError(t, reg.Register(&testAdapter{name: "a", patterns: []string{`a\.com`}, priority: 5}))
		require.NoError(t, reg.Register(&testAdapter{name: "b", patterns: []string{`b\.com`}, priority: 5}))
		require.NoError(t, reg.Register(&testAdapter{name: "c", patterns: []string{`c\.com`}, priority: 5}))

		require.True(t, reg.Unregister("b"))

		adapter, ok := reg.Get("c")
		require.True(t, ok)
		assert.Equal(t, "c", adapter.Name())

		dispatched, ok := reg.Dispatch("https://c.com/page")
		require.True(t, ok)
		assert.Equal(t, "c", dispatched.Name())
	})
}

func TestRegistry_List(t *testing.T) {
	t.Parallel()

	reg := pith.NewRegistry()
	require.NoError(t, reg.Register(&testAdapter{name: "one", patterns: nil, priority: 1}))
	require.NoError(t, reg.Register(&testAdapter{name: "two", patterns: nil, priority: 2}))

	list := reg.List()

	require.Len(t, list, 2)
	assert.Equal(t, "one", list[0].Name())
	assert.Equal(t, "two", list[1].Name())
}
