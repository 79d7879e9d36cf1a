package avl

// insert descends recursively by key comparison. On reaching a nil
// child slot it allocates a new node. On the return path each frame
// inspects its balance factor against the table in spec §4.2 and
// either absorbs the height increase, propagates it, or rebalances
// and clears it.
//
// newPayload builds the payload for a brand-new node; onExisting
// mutates the payload of a node whose key already compares equal.
// wasNew reports whether a new node was created, letting Set and Map
// derive their (opposite) boolean return conventions from one
// recursion.
func insert[K, P any](
	n *node[K, P],
	key K,
	lt lessFunc[K],
	newPayload func() P,
	onExisting func(cur *P),
	counters *Counters,
) (newRoot *node[K, P], grew bool, wasNew bool) {
	if n == nil {
		return &node[K, P]{key: key, payload: newPayload()}, true, true
	}

	switch {
	case lt(key, n.key):
		var childGrew, wasNewChild bool
		n.left, childGrew, wasNewChild = insert(n.left, key, lt, newPayload, onExisting, counters)
		if !childGrew {
			return n, false, wasNewChild
		}
		switch n.bal {
		case 1:
			n.bal = 0
			return n, false, wasNewChild
		case 0:
			n.bal = -1
			return n, true, wasNewChild
		case -1:
			p1 := n.left
			if p1.bal == -1 {
				newRoot, np1 := rotLL(n)
				n.bal, np1.bal = 0, 0
				counters.insLL()
				return newRoot, false, wasNewChild
			}
			newRoot, np1, np2 := rotLR(n)
			applyLRBalances(n, np1, np2)
			counters.insLR()
			return newRoot, false, wasNewChild
		default:
			panic(InvariantViolation{Bal: n.bal})
		}

	case lt(n.key, key):
		var childGrew, wasNewChild bool
		n.right, childGrew, wasNewChild = insert(n.right, key, lt, newPayload, onExisting, counters)
		if !childGrew {
			return n, false, wasNewChild
		}
		switch n.bal {
		case -1:
			n.bal = 0
			return n, false, wasNewChild
		case 0:
			n.bal = 1
			return n, true, wasNewChild
		case 1:
			p1 := n.right
			if p1.bal == 1 {
				newRoot, np1 := rotRR(n)
				n.bal, np1.bal = 0, 0
				counters.insRR()
				return newRoot, false, wasNewChild
			}
			newRoot, np1, np2 := rotRL(n)
			applyRLBalances(n, np1, np2)
			counters.insRL()
			return newRoot, false, wasNewChild
		default:
			panic(InvariantViolation{Bal: n.bal})
		}

	default:
		onExisting(&n.payload)
		return n, false, false
	}
}
