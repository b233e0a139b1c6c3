package set

import (
	"iter"

	"veb_counter/pkg/util"
	"veb_counter/pkg/veb"
)

const vebWidth = 32

type vebSet struct {
	tree *veb.Tree
}

func NewVEB() Set {
	return &vebSet{tree: util.Must(veb.New(vebWidth))}
}

// every uint32 is inside the universe, so Insert cannot fail
func (s *vebSet) Put(key uint32) bool {
	return util.Must(s.tree.Insert(uint64(key)))
}

func (s *vebSet) Count() uint64 {
	return s.tree.Len()
}

func (s *vebSet) Range(from, to uint32) iter.Seq[uint32] {
	return func(yield func(uint32) bool) {
		for k := range s.tree.Range(uint64(from), uint64(to)) {
			if !yield(uint32(k)) {
				return
			}
		}
	}
}
