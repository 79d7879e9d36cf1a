package avl

// action tells erase what to do once it has located the node whose
// key matches: mutate the payload in place and stop (actionDecrement,
// used by Set while its duplicate counter is still above one), or
// physically remove the node (actionRemove, used by Map always and by
// Set when its counter reaches zero).
type action int

const (
	actionDecrement action = iota
	actionRemove
)

// erase descends recursively by key comparison. removed reports
// whether onMatch chose actionRemove; it is computed once at the
// match point and threaded back up unchanged, while shrunk tracks
// the height-decreased flag that rebalancing may absorb, propagate,
// or (on a double rotation) always keep set.
func erase[K, P any](
	n *node[K, P],
	key K,
	lt lessFunc[K],
	onMatch func(cur *P) action,
	counters *Counters,
) (newRoot *node[K, P], shrunk bool, removed bool) {
	if n == nil {
		return nil, false, false
	}

	switch {
	case lt(key, n.key):
		n.left, shrunk, removed = erase(n.left, key, lt, onMatch, counters)
		if shrunk {
			n, shrunk = balanceLeft(n, counters)
		}
		return n, shrunk, removed

	case lt(n.key, key):
		n.right, shrunk, removed = erase(n.right, key, lt, onMatch, counters)
		if shrunk {
			n, shrunk = balanceRight(n, counters)
		}
		return n, shrunk, removed

	default:
		switch onMatch(&n.payload) {
		case actionDecrement:
			return n, false, false
		default:
			newRoot, shrunk := erasePhysical(n, counters)
			return newRoot, shrunk, true
		}
	}
}

// erasePhysical unlinks n itself. A node with at most one child is
// spliced directly; a node with two children borrows a replacement
// key/payload from whichever subtree is deeper (n.bal), which biases
// the rebalancing work toward the side that needed it least — the
// optimization spec §4.3 describes.
func erasePhysical[K, P any](n *node[K, P], counters *Counters) (*node[K, P], bool) {
	if n.left == nil {
		return n.right, true
	}
	if n.right == nil {
		return n.left, true
	}

	if n.bal <= 0 {
		newLeft, shrunk := eraseRight(n.left, n, counters)
		n.left = newLeft
		if shrunk {
			return balanceLeft(n, counters)
		}
		return n, false
	}

	newRight, shrunk := eraseLeft(n.right, n, counters)
	n.right = newRight
	if shrunk {
		return balanceRight(n, counters)
	}
	return n, false
}

// eraseRight descends to the rightmost node of the subtree rooted at
// r (the predecessor of target), copies its key/payload into target,
// and splices the predecessor's only possible child (a left child) in
// its place.
func eraseRight[K, P any](r *node[K, P], target *node[K, P], counters *Counters) (*node[K, P], bool) {
	if r.right != nil {
		newRight, shrunk := eraseRight(r.right, target, counters)
		r.right = newRight
		if shrunk {
			return balanceRight(r, counters)
		}
		return r, false
	}
	target.key = r.key
	target.payload = r.payload
	return r.left, true
}

// eraseLeft mirrors eraseRight, extracting the successor.
func eraseLeft[K, P any](l *node[K, P], target *node[K, P], counters *Counters) (*node[K, P], bool) {
	if l.left != nil {
		newLeft, shrunk := eraseLeft(l.left, target, counters)
		l.left = newLeft
		if shrunk {
			return balanceLeft(l, counters)
		}
		return l, false
	}
	target.key = l.key
	target.payload = l.payload
	return l.right, true
}

// balanceLeft is invoked when n's left subtree has just shrunk. A
// single rotation's outcome depends on the right child's pre-rotation
// balance: 0 means the rotation didn't reduce height (flag clears);
// otherwise height did shrink (flag stays set, letting the caller keep
// propagating). A double rotation always reduces height by one.
func balanceLeft[K, P any](n *node[K, P], counters *Counters) (*node[K, P], bool) {
	switch n.bal {
	case -1:
		n.bal = 0
		return n, true
	case 0:
		n.bal = 1
		return n, false
	case 1:
		p1 := n.right
		if p1.bal >= 0 {
			newRoot, np1 := rotRR(n)
			counters.delRR()
			if p1.bal == 0 {
				n.bal, np1.bal = 1, -1
				return newRoot, false
			}
			n.bal, np1.bal = 0, 0
			return newRoot, true
		}
		newRoot, np1, np2 := rotRL(n)
		applyRLBalances(n, np1, np2)
		counters.delRL()
		return newRoot, true
	default:
		panic(InvariantViolation{Bal: n.bal})
	}
}

// balanceRight mirrors balanceLeft.
func balanceRight[K, P any](n *node[K, P], counters *Counters) (*node[K, P], bool) {
	switch n.bal {
	case 1:
		n.bal = 0
		return n, true
	case 0:
		n.bal = -1
		return n, false
	case -1:
		p1 := n.left
		if p1.bal <= 0 {
			newRoot, np1 := rotLL(n)
			counters.delLL()
			if p1.bal == 0 {
				n.bal, np1.bal = -1, 1
				return newRoot, false
			}
			n.bal, np1.bal = 0, 0
			return newRoot, true
		}
		newRoot, np1, np2 := rotLR(n)
		applyLRBalances(n, np1, np2)
		counters.delLR()
		return newRoot, true
	default:
		panic(InvariantViolation{Bal: n.bal})
	}
}
