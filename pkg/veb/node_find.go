package veb

// findNext returns the smallest key >= x.
func (n *node) findNext(x uint64) (uint64, bool) {
	if n.isEmpty() || x > n.max {
		return 0, false
	}
	if x <= n.min {
		return n.min, true
	}
	if n.summaryEmpty() {
		return n.max, true
	}

	h, l := n.high(x), n.low(x)
	if c := n.clusters.get(h); c != nil && !c.isEmpty() && l <= c.max {
		next, _ := c.findNext(l)
		return n.merge(h, next), true
	}

	if h, ok := n.summary.findNext(h + 1); ok {
		return n.merge(h, n.clusters.get(h).min), true
	}
	return n.max, true
}

// findPrev returns the largest key <= x.
func (n *node) findPrev(x uint64) (uint64, bool) {
	if n.isEmpty() || x < n.min {
		return 0, false
	}
	if x >= n.max {
		return n.max, true
	}
	if n.summaryEmpty() {
		return n.min, true
	}

	h, l := n.high(x), n.low(x)
	if c := n.clusters.get(h); c != nil && !c.isEmpty() && l >= c.min {
		prev, _ := c.findPrev(l)
		return n.merge(h, prev), true
	}

	if h > 0 {
		if h, ok := n.summary.findPrev(h - 1); ok {
			return n.merge(h, n.clusters.get(h).max), true
		}
	}
	return n.min, true
}
