package avl

// Counters holds the eight monotonic rotation counters the map
// variant exposes: one per rotation shape (LL, LR, RL, RR), split by
// whether the rotation happened on the insertion path or the erasure
// path. Set does not carry telemetry; only Map does.
//
// Counters are read-only to callers. To reset them, construct a new
// Map.
type Counters struct {
	Lli, Lri, Rli, Rri uint64 // insertion path
	Lle, Lre, Rle, Rre uint64 // erasure path
}

func (c *Counters) insLL() {
	if c != nil {
		c.Lli++
	}
}

func (c *Counters) insLR() {
	if c != nil {
		c.Lri++
	}
}

func (c *Counters) insRL() {
	if c != nil {
		c.Rli++
	}
}

func (c *Counters) insRR() {
	if c != nil {
		c.Rri++
	}
}

func (c *Counters) delLL() {
	if c != nil {
		c.Lle++
	}
}

func (c *Counters) delLR() {
	if c != nil {
		c.Lre++
	}
}

func (c *Counters) delRL() {
	if c != nil {
		c.Rle++
	}
}

func (c *Counters) delRR() {
	if c != nil {
		c.Rre++
	}
}
