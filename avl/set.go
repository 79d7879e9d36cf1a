package avl

import (
	"cmp"
	"fmt"
	"io"
)

// Set is an ordered collection of keys that counts duplicate
// insertions instead of rejecting them: inserting the same key twice
// leaves size() at one but bumps an internal counter, and erase must
// be called once per insertion before the key actually disappears.
type Set[K any] struct {
	root  *node[K, uint]
	count int
	less  lessFunc[K]
}

// New returns an empty Set ordered by lt.
func New[K any](lt func(a, b K) bool) *Set[K] {
	return &Set[K]{less: lt}
}

// NewOrdered returns an empty Set for a key type with a natural
// ordering (numbers, strings, and the like).
func NewOrdered[K cmp.Ordered]() *Set[K] {
	return New[K](func(a, b K) bool { return a < b })
}

// Insert adds key, incrementing its duplicate counter if it is
// already present. It returns true iff a new node was created — a
// repeated key returns false even though the tree did change (its
// counter went up).
func (s *Set[K]) Insert(key K) bool {
	var wasNew bool
	s.root, _, wasNew = insert[K, uint](s.root, key, s.less,
		func() uint { return 1 },
		func(cur *uint) { *cur++ },
		nil,
	)
	if wasNew {
		s.count++
	}
	return wasNew
}

// Erase decrements key's duplicate counter and returns true only on
// the transition from one to zero, i.e. when the node is physically
// removed. Decrementing a counter that stays above zero, or erasing a
// key that is not present, returns false.
func (s *Set[K]) Erase(key K) bool {
	var removed bool
	s.root, _, removed = erase[K, uint](s.root, key, s.less,
		func(cur *uint) action {
			*cur--
			if *cur == 0 {
				return actionRemove
			}
			return actionDecrement
		},
		nil,
	)
	if removed {
		s.count--
	}
	return removed
}

// Contains reports whether key is present, via an iterative descent.
func (s *Set[K]) Contains(key K) bool {
	n := s.root
	for n != nil {
		switch {
		case s.less(key, n.key):
			n = n.left
		case s.less(n.key, key):
			n = n.right
		default:
			return true
		}
	}
	return false
}

// Count returns how many times key has been inserted (without a
// matching number of erases); zero if key is absent.
func (s *Set[K]) Count(key K) uint {
	n := s.root
	for n != nil {
		switch {
		case s.less(key, n.key):
			n = n.left
		case s.less(n.key, key):
			n = n.right
		default:
			return n.payload
		}
	}
	return 0
}

// Size returns the number of distinct keys currently stored.
func (s *Set[K]) Size() int { return s.count }

// Empty reports whether Size() == 0.
func (s *Set[K]) Empty() bool { return s.count == 0 }

// Clear empties the set. The subtree becomes unreachable in one
// assignment and the garbage collector reclaims it; there is no
// explicit per-node free to write in Go.
func (s *Set[K]) Clear() {
	s.root = nil
	s.count = 0
}

// Keys returns the distinct keys in ascending order.
func (s *Set[K]) Keys() []K {
	return keysInto(s.root, make([]K, 0, s.count))
}

// PrintTree writes an indented, right-subtree-first dump of the tree
// to w, annotating each key with its duplicate count.
func (s *Set[K]) PrintTree(w io.Writer) {
	printNode(w, s.root, 0, func(k K, cnt uint) string {
		if cnt > 1 {
			return fmt.Sprintf("%v (x%d)", k, cnt)
		}
		return fmt.Sprintf("%v", k)
	})
}
