package orderedmap

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func collect[K comparable, V any](om *OrderedMap[K, V]) ([]K, []V) {
	var (
		keys   []K
		values []V
	)
	for iter := om.Front(); iter != nil; iter = iter.Next() {
		keys = append(keys, *iter.Key)
		values = append(values, iter.Value)
	}

	return keys, values
}

func TestOrderedMap(t *testing.T) {
	t.Run("insertion order", func(t *testing.T) {
		om := NewOrderedMap[string, int]()
		om.Set("one", 1)
		om.Set("two", 2)
		om.Set("three", 3)

		keys, values := collect(om)
		assert.Equal(t, []string{"one", "two", "three"}, keys)
		assert.Equal(t, []int{1, 2, 3}, values)
	})

	t.Run("overwrite keeps the position", func(t *testing.T) {
		om := NewOrderedMap[string, int]()
		om.Set("one", 1)
		om.Set("two", 2)
		om.Set("one", 11)

		keys, values := collect(om)
		assert.Equal(t, []string{"one", "two"}, keys)
		assert.Equal(t, []int{11, 2}, values)
		assert.Equal(t, 2, om.Count())
	})

	t.Run("count", func(t *testing.T) {
		om := NewOrderedMap[string, int]()
		assert.Equal(t, 0, om.Count())

		om.Set("one", 1)
		assert.Equal(t, 1, om.Count())

		om.Set("two", 2)
		assert.Equal(t, 2, om.Count())
	})

	t.Run("iterator end", func(t *testing.T) {
		om := NewOrderedMap[string, int]()
		om.Set("only", 1)

		iter := om.Front()
		require.NotNil(t, iter)
		assert.Equal(t, "only", *iter.Key)
		assert.Nil(t, iter.Next())

		var none *Iterator[string, int]
		assert.Nil(t, none.Next())
	})

	t.Run("empty map iteration", func(t *testing.T) {
		om := NewOrderedMap[string, int]()
		assert.Nil(t, om.Front())

		var nilMap *OrderedMap[string, int]
		assert.Nil(t, nilMap.Front())
	})

	t.Run("pointer keys", func(t *testing.T) {
		type entry struct {
			name string
		}

		om := NewOrderedMap[*entry, struct{}]()
		a, b := &entry{"a"}, &entry{"a"}
		om.Set(a, struct{}{})
		om.Set(b, struct{}{})
		om.Set(a, struct{}{})

		keys, _ := collect(om)
		assert.Equal(t, 2, om.Count(), "distinct pointers are distinct keys")
		assert.Equal(t, []*entry{a, b}, keys)
	})
}
