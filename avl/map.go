package avl

import (
	"cmp"
	"fmt"
	"io"
)

// Map is an ordered key-to-value index. Unlike Set, a repeated Insert
// overwrites the existing value rather than counting it, and every
// Erase of a present key physically removes it.
type Map[K, V any] struct {
	root     *node[K, V]
	count    int
	less     lessFunc[K]
	counters Counters
}

// NewMap returns an empty Map ordered by lt.
func NewMap[K, V any](lt func(a, b K) bool) *Map[K, V] {
	return &Map[K, V]{less: lt}
}

// NewOrderedMap returns an empty Map for a key type with a natural
// ordering.
func NewOrderedMap[K cmp.Ordered, V any]() *Map[K, V] {
	return NewMap[K, V](func(a, b K) bool { return a < b })
}

// Insert stores value under key. It returns true iff key already
// existed and was updated — the mirror of Set.Insert's convention,
// per spec: Set reports "newly added", Map reports "updated existing".
func (m *Map[K, V]) Insert(key K, value V) bool {
	var wasNew bool
	m.root, _, wasNew = insert[K, V](m.root, key, m.less,
		func() V { return value },
		func(cur *V) { *cur = value },
		&m.counters,
	)
	if wasNew {
		m.count++
	}
	return !wasNew
}

// Erase removes key and reports whether it was present.
func (m *Map[K, V]) Erase(key K) bool {
	var removed bool
	m.root, _, removed = erase[K, V](m.root, key, m.less,
		func(*V) action { return actionRemove },
		&m.counters,
	)
	if removed {
		m.count--
	}
	return removed
}

// Contains reports whether key is present, via an iterative descent.
func (m *Map[K, V]) Contains(key K) bool {
	_, ok := m.Find(key)
	return ok
}

// Find returns the value stored under key, if any.
func (m *Map[K, V]) Find(key K) (V, bool) {
	n := m.root
	for n != nil {
		switch {
		case m.less(key, n.key):
			n = n.left
		case m.less(n.key, key):
			n = n.right
		default:
			return n.payload, true
		}
	}
	var zero V
	return zero, false
}

// Size returns the number of keys currently stored.
func (m *Map[K, V]) Size() int { return m.count }

// Empty reports whether Size() == 0.
func (m *Map[K, V]) Empty() bool { return m.count == 0 }

// Clear empties the map. See Set.Clear for why there is no explicit
// recursive free.
func (m *Map[K, V]) Clear() {
	m.root = nil
	m.count = 0
	m.counters = Counters{}
}

// Keys returns the keys in ascending order.
func (m *Map[K, V]) Keys() []K {
	return keysInto(m.root, make([]K, 0, m.count))
}

// PrintTree writes an indented, right-subtree-first dump of the tree
// to w.
func (m *Map[K, V]) PrintTree(w io.Writer) {
	printNode(w, m.root, 0, func(k K, v V) string {
		return fmt.Sprintf("%v -> %v", k, v)
	})
}

// Counters returns a snapshot of the eight rotation counters.
func (m *Map[K, V]) Counters() Counters {
	return m.counters
}
