package veb

// nodes with at most 2^maxDenseBits clusters keep them in a slice,
// wider ones in a map keyed by high index
const maxDenseBits = 8

// node is a set over the universe [0, 2^width).
// min and max are held only at this level and never mirrored into clusters.
type node struct {
	width    uint8
	lowBits  uint8
	occupied bool // min and max are valid
	min      uint64
	max      uint64
	summary  *node
	clusters clusterTable
}

func newNode(width uint8) *node {
	n := &node{
		width:   width,
		lowBits: width >> 1,
	}
	if width > 1 {
		n.clusters = newClusterTable(n.highBits())
	}
	return n
}

func (n *node) highBits() uint8 {
	return n.width - n.lowBits
}

func (n *node) high(x uint64) uint64 {
	return x >> n.lowBits
}

func (n *node) low(x uint64) uint64 {
	return x & (1<<n.lowBits - 1)
}

func (n *node) merge(high, low uint64) uint64 {
	return high<<n.lowBits | low
}

func (n *node) isEmpty() bool {
	return !n.occupied
}

// summaryEmpty reports whether no cluster is populated.
func (n *node) summaryEmpty() bool {
	return n.summary == nil || n.summary.isEmpty()
}

func (n *node) lookup(x uint64) bool {
	if n.isEmpty() {
		return false
	}
	if x == n.min || x == n.max {
		return true
	}
	if n.width == 1 {
		return false
	}

	c := n.clusters.get(n.high(x))
	return c != nil && c.lookup(n.low(x))
}

// clusterTable holds the optional cluster children of a node.
type clusterTable struct {
	dense  []*node
	sparse map[uint64]*node
}

func newClusterTable(highBits uint8) clusterTable {
	if highBits <= maxDenseBits {
		return clusterTable{dense: make([]*node, 1<<highBits)}
	}
	return clusterTable{sparse: map[uint64]*node{}}
}

func (ct *clusterTable) get(h uint64) *node {
	if ct.dense != nil {
		return ct.dense[h]
	}
	return ct.sparse[h]
}

func (ct *clusterTable) put(h uint64, c *node) {
	if ct.dense != nil {
		ct.dense[h] = c
		return
	}
	ct.sparse[h] = c
}

func (ct *clusterTable) del(h uint64) {
	if ct.dense != nil {
		ct.dense[h] = nil
		return
	}
	delete(ct.sparse, h)
}

// each calls fn for every allocated cluster, in no particular order
func (ct *clusterTable) each(fn func(h uint64, c *node)) {
	if ct.dense != nil {
		for h, c := range ct.dense {
			if c != nil {
				fn(uint64(h), c)
			}
		}
		return
	}
	for h, c := range ct.sparse {
		fn(h, c)
	}
}
