package avl

import "testing"

func TestInsertTriggersEachRotationShape(t *testing.T) {
	t.Run("LL", func(t *testing.T) {
		m := NewOrderedMap[int, int]()
		for _, k := range []int{3, 2, 1} {
			m.Insert(k, k)
		}
		checkInvariants[int, int](t, m.root, m.less)
		if c := m.Counters(); c.Lli != 1 {
			t.Fatalf("Lli = %d; want 1 (counters: %+v)", c.Lli, c)
		}
	})

	t.Run("RR", func(t *testing.T) {
		m := NewOrderedMap[int, int]()
		for _, k := range []int{1, 2, 3} {
			m.Insert(k, k)
		}
		checkInvariants[int, int](t, m.root, m.less)
		if c := m.Counters(); c.Rri != 1 {
			t.Fatalf("Rri = %d; want 1 (counters: %+v)", c.Rri, c)
		}
	})

	t.Run("LR", func(t *testing.T) {
		m := NewOrderedMap[int, int]()
		for _, k := range []int{3, 1, 2} {
			m.Insert(k, k)
		}
		checkInvariants[int, int](t, m.root, m.less)
		if c := m.Counters(); c.Lri != 1 {
			t.Fatalf("Lri = %d; want 1 (counters: %+v)", c.Lri, c)
		}
	})

	t.Run("RL", func(t *testing.T) {
		m := NewOrderedMap[int, int]()
		for _, k := range []int{1, 3, 2} {
			m.Insert(k, k)
		}
		checkInvariants[int, int](t, m.root, m.less)
		if c := m.Counters(); c.Rli != 1 {
			t.Fatalf("Rli = %d; want 1 (counters: %+v)", c.Rli, c)
		}
	})
}

// TestEraseTriggersSingleRotation builds a right-heavy-by-one node
// directly (node1 leaf on the left, a two-leaf subtree on the right)
// so that erasing the left leaf forces exactly one RR rotation on the
// erasure path, with the "sibling was balanced" restamp from spec
// §4.1 (p.bal=+1, p1.bal=-1, flag cleared rather than propagated).
func TestEraseTriggersSingleRotation(t *testing.T) {
	lt := func(a, b int) bool { return a < b }
	m := NewMap[int, int](lt)

	n1 := &node[int, int]{key: 1, payload: 1}
	n3 := &node[int, int]{key: 3, payload: 3}
	n5 := &node[int, int]{key: 5, payload: 5}
	n4 := &node[int, int]{key: 4, payload: 4, left: n3, right: n5}
	n2 := &node[int, int]{key: 2, payload: 2, bal: 1, left: n1, right: n4}
	m.root = n2
	m.count = 5
	checkInvariants[int, int](t, m.root, m.less)

	if !m.Erase(1) {
		t.Fatalf("Erase(1) should report the key was present")
	}
	checkInvariants[int, int](t, m.root, m.less)

	if m.root.key != 4 {
		t.Fatalf("root key = %d; want 4 after the RR rotation", m.root.key)
	}
	c := m.Counters()
	if c.Rre != 1 {
		t.Fatalf("Rre = %d; want 1, counters: %+v", c.Rre, c)
	}
	if c.Lli+c.Lri+c.Rli+c.Lle+c.Lre+c.Rle != 0 {
		t.Fatalf("expected only Rre to be nonzero, counters: %+v", c)
	}
}

func TestInvariantViolationPanicsOnCorruptBalance(t *testing.T) {
	defer func() {
		r := recover()
		if r == nil {
			t.Fatalf("expected a panic for an out-of-range balance factor")
		}
		if _, ok := r.(InvariantViolation); !ok {
			t.Fatalf("expected InvariantViolation, got %T: %v", r, r)
		}
	}()

	n := &node[int, int]{key: 1, bal: 2}
	balanceLeft(n, nil)
}
