package avl

// rotLL performs the link surgery for a left-left rotation:
// p.left <- p1.right; p1.right <- p. It returns the new subtree root
// (p1) and leaves balance factors untouched; callers restamp them
// since the insert and erase paths restamp differently.
func rotLL[K, P any](p *node[K, P]) (newRoot, p1 *node[K, P]) {
	p1 = p.left
	p.left = p1.right
	p1.right = p
	return p1, p1
}

// rotRR mirrors rotLL.
func rotRR[K, P any](p *node[K, P]) (newRoot, p1 *node[K, P]) {
	p1 = p.right
	p.right = p1.left
	p1.left = p
	return p1, p1
}

// rotLR rotates p1 left then p right, returning p2 as the new root
// along with p1 and p2 so the caller can apply the double-rotation
// balance table (applyLRBalances) using p2's pre-rotation balance.
func rotLR[K, P any](p *node[K, P]) (newRoot, p1, p2 *node[K, P]) {
	p1 = p.left
	p2 = p1.right
	p1.right = p2.left
	p2.left = p1
	p.left = p2.right
	p2.right = p
	return p2, p1, p2
}

// rotRL mirrors rotLR.
func rotRL[K, P any](p *node[K, P]) (newRoot, p1, p2 *node[K, P]) {
	p1 = p.right
	p2 = p1.left
	p1.left = p2.right
	p2.right = p1
	p.right = p2.left
	p2.left = p
	return p2, p1, p2
}

// applyLRBalances restamps p, p1, p2 after rotLR according to p2's
// balance factor *before* this call (rotLR's link surgery never
// touches bal fields, so p2.bal still holds it).
func applyLRBalances[K, P any](p, p1, p2 *node[K, P]) {
	switch p2.bal {
	case -1:
		p.bal, p1.bal, p2.bal = 1, 0, 0
	case 0:
		p.bal, p1.bal, p2.bal = 0, 0, 0
	case 1:
		p.bal, p1.bal, p2.bal = 0, -1, 0
	default:
		panic(InvariantViolation{Bal: p2.bal})
	}
}

// applyRLBalances mirrors applyLRBalances.
func applyRLBalances[K, P any](p, p1, p2 *node[K, P]) {
	switch p2.bal {
	case -1:
		p.bal, p1.bal, p2.bal = 0, 1, 0
	case 0:
		p.bal, p1.bal, p2.bal = 0, 0, 0
	case 1:
		p.bal, p1.bal, p2.bal = -1, 0, 0
	default:
		panic(InvariantViolation{Bal: p2.bal})
	}
}
