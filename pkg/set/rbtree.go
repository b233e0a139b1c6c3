package set

import (
	"iter"

	"github.com/emirpasic/gods/trees/redblacktree"
	"github.com/emirpasic/gods/utils"
)

type treeSet struct {
	tree *redblacktree.Tree
}

func NewTree() Set {
	return &treeSet{tree: redblacktree.NewWith(utils.UInt32Comparator)}
}

func (s *treeSet) Put(key uint32) bool {
	if _, found := s.tree.Get(key); found {
		return false
	}
	s.tree.Put(key, struct{}{})
	return true
}

func (s *treeSet) Count() uint64 {
	return uint64(s.tree.Size())
}

// Range walks successors with Ceiling, one O(log n) lookup per key.
func (s *treeSet) Range(from, to uint32) iter.Seq[uint32] {
	return func(yield func(uint32) bool) {
		if from > to {
			return
		}
		n, ok := s.tree.Ceiling(from)
		for ok {
			k := n.Key.(uint32)
			if k > to || !yield(k) || k == to {
				return
			}
			n, ok = s.tree.Ceiling(k + 1)
		}
	}
}
