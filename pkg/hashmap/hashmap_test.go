package hashmap

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_Empty(t *testing.T) {
	m := New[string, int]()
	assert.Equal(t, DefaultCapacity, m.Capacity())
	assert.Equal(t, 0, m.Size())
	assert.True(t, m.Empty())

	assert.False(t, m.ContainsKey("not in map"))
	assert.Equal(t, -1, m.BucketIndex("not in map"))
	assert.Equal(t, 0, m.BucketSize("not in map"))

	_, err := m.At("not in map")
	assert.ErrorIs(t, err, ErrKeyNotFound)
}

func TestInsertAndSet(t *testing.T) {
	m := New[string, int]()
	m.Set("a", 1)
	assert.True(t, m.Insert("b", 2))
	m.Set("c", 30)
	m.Set("c", 3)

	assert.False(t, m.Insert("b", 20), "insert must not overwrite")
	assert.Equal(t, 3, m.Size())

	for k, want := range map[string]int{"a": 1, "b": 2, "c": 3} {
		got, err := m.At(k)
		require.NoError(t, err)
		assert.Equal(t, want, got, k)
		assert.GreaterOrEqual(t, m.BucketIndex(k), 0)
		assert.GreaterOrEqual(t, m.BucketSize(k), 1)
	}
}

func TestGrowth(t *testing.T) {
	m := New[int, int]()
	for i := 0; i < 12; i++ {
		m.Set(i, i)
	}
	assert.Equal(t, 16, m.Capacity(), "12/16 is exactly the upper load factor")

	m.Set(12, 12)
	assert.Equal(t, 32, m.Capacity())
	assert.LessOrEqual(t, m.LoadFactor(), DefaultUpperLoadFactor)

	for i := 0; i < 13; i++ {
		v, ok := m.Get(i)
		assert.True(t, ok)
		assert.Equal(t, i, v)
	}
}

func TestShrink(t *testing.T) {
	m := New[int, int]()
	for i := 0; i < 100; i++ {
		m.Set(i, i)
	}
	grown := m.Capacity()
	require.Greater(t, grown, DefaultCapacity)

	for i := 0; i < 99; i++ {
		require.True(t, m.Erase(i))
	}
	assert.Equal(t, 1, m.Size())
	assert.Less(t, m.Capacity(), grown)
	assert.GreaterOrEqual(t, m.LoadFactor(), DefaultLowerLoadFactor)

	require.True(t, m.Erase(99))
	assert.Equal(t, 1, m.Capacity())
	assert.True(t, m.Empty())
	assert.False(t, m.Erase(99))
}

func TestClear(t *testing.T) {
	m := New[string, string]()
	m.Set("x", "y")
	m.Clear()
	assert.True(t, m.Empty())
	assert.Equal(t, DefaultCapacity, m.Capacity())
	assert.False(t, m.ContainsKey("x"))
}

func TestAll(t *testing.T) {
	m := New[string, int]()
	want := map[string]int{}
	for i := 0; i < 40; i++ {
		k := fmt.Sprintf("k%d", i)
		m.Set(k, i)
		want[k] = i
	}

	got := map[string]int{}
	for k, v := range m.All() {
		got[k] = v
	}
	assert.Equal(t, want, got)

	n := 0
	for range m.All() {
		n++
		if n == 3 {
			break
		}
	}
	assert.Equal(t, 3, n)
}

func TestEqual(t *testing.T) {
	a := New[string, int]()
	b := New[string, int]()
	for i := 0; i < 20; i++ {
		a.Set(fmt.Sprint(i), i)
	}
	for i := 19; i >= 0; i-- {
		b.Set(fmt.Sprint(i), i)
	}
	assert.True(t, Equal(a, b))

	b.Set("3", 33)
	assert.False(t, Equal(a, b))

	b.Erase("3")
	assert.False(t, Equal(a, b))
}
