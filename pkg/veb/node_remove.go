package veb

// remove deletes x from the set rooted at n and reports whether it was present.
// Removing an absent key leaves the node untouched.
func (n *node) remove(x uint64) bool {
	if n.isEmpty() || x < n.min || x > n.max {
		return false
	}

	if n.min == n.max {
		// x == min == max here
		n.min, n.max, n.occupied = 0, 0, false
		return true
	}

	if x == n.min {
		if n.width == 1 || n.summaryEmpty() {
			n.min = n.max
			return true
		}
		// promote the smallest clustered key, then drop it from its cluster below
		h := n.summary.min
		x = n.merge(h, n.clusters.get(h).min)
		n.min = x
	} else if x == n.max {
		if n.width == 1 || n.summaryEmpty() {
			n.max = n.min
			return true
		}
		h := n.summary.max
		x = n.merge(h, n.clusters.get(h).max)
		n.max = x
	}

	h, l := n.high(x), n.low(x)
	c := n.clusters.get(h)
	if c == nil || !c.remove(l) {
		return false
	}

	if c.isEmpty() {
		n.summary.remove(h)
		n.clusters.del(h)
	}
	if n.summary.isEmpty() {
		n.summary = nil
	}
	return true
}
