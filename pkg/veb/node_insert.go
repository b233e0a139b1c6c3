package veb

// insert adds x to the set rooted at n and reports whether it was absent.
// x must be in range.
func (n *node) insert(x uint64) bool {
	if n.isEmpty() {
		n.min, n.max, n.occupied = x, x, true
		return true
	}
	if x == n.min || x == n.max {
		return false
	}

	if n.min == n.max {
		if x < n.min {
			n.min = x
		} else {
			n.max = x
		}
		return true
	}

	if x < n.min {
		n.min, x = x, n.min
	} else if x > n.max {
		n.max, x = x, n.max
	}

	h, l := n.high(x), n.low(x)
	c := n.clusters.get(h)
	if c == nil {
		c = newNode(n.lowBits)
		n.clusters.put(h, c)
	}

	// the summary learns about h before the cluster stops being empty
	if c.isEmpty() {
		if n.summary == nil {
			n.summary = newNode(n.highBits())
		}
		n.summary.insert(h)
	}
	return c.insert(l)
}
