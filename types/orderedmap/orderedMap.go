// Package orderedmap provides a map which remembers insertion order.
package orderedmap

/*
	Ordered map implementation
	based on https://www.tugberkugurlu.com/archive/implementing-ordered-map-in-go-2-0-by-using-generics-with-delete-operation-in-o-1-time-complexity
*/
import (
	"container/list"
)

// Iterator starting at OrderedMap.Front. Key and Value hold the current entry.
type Iterator[K comparable, V any] struct {
	Key   *K
	Value V
	ll    *list.Element
}

// OrderedMap definition data is stored in insertion order
type OrderedMap[K comparable, V any] struct {
	store map[K]*list.Element
	keys  *list.List
}

type keyValue[K comparable, V any] struct {
	key   K
	value V
}

func (n *Iterator[K, V]) load() *Iterator[K, V] {
	if n.ll == nil {
		return nil
	}

	kv := n.ll.Value.(*keyValue[K, V])
	n.Key = &kv.key
	n.Value = kv.value

	return n
}

// Next moves to the next entry in insertion order or returns nil when no more entries remain
func (n *Iterator[K, V]) Next() *Iterator[K, V] {
	if n == nil || n.ll == nil {
		return nil
	}
	n.ll = n.ll.Next()

	return n.load()
}

// NewOrderedMap creates a new OrderedMap of type K
func NewOrderedMap[K comparable, V any]() *OrderedMap[K, V] {
	return &OrderedMap[K, V]{
		store: map[K]*list.Element{},
		keys:  list.New(),
	}
}

// Set will store a key-value pair. If the key already exists,
// it will overwrite the value and keep the original position
func (o *OrderedMap[K, V]) Set(key K, val V) {
	if e, exists := o.store[key]; exists {
		e.Value.(*keyValue[K, V]).value = val
		return
	}

	o.store[key] = o.keys.PushBack(&keyValue[K, V]{
		key:   key,
		value: val,
	})
}

// Count returns the count of keys in OrderedMap
func (o *OrderedMap[K, V]) Count() int {
	return o.keys.Len()
}

// Front returns an iterator pointing to the oldest (inserted-first) entry, or nil when the map is empty
func (o *OrderedMap[K, V]) Front() *Iterator[K, V] {
	if o == nil || o.keys.Len() == 0 {
		return nil
	}

	iter := &Iterator[K, V]{ll: o.keys.Front()}

	return iter.load()
}
