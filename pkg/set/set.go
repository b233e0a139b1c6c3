// Package set provides ordered sets of uint32 keys behind one interface,
// backed either by a van Emde Boas tree or by a red-black tree.
package set

import (
	"errors"
	"fmt"
	"iter"
	"math"
)

var ErrUnknownKind = errors.New("unknown set kind")

type Kind string

const (
	KindVEB    Kind = "veb"
	KindRBTree Kind = "rbtree"
)

// Set is an ordered set of uint32 keys. Implementations are not safe for
// concurrent use.
type Set interface {
	// Put adds key and reports whether it was absent.
	Put(key uint32) bool

	// Count returns the number of keys.
	Count() uint64

	// Range yields the keys in [from, to] in increasing order.
	Range(from, to uint32) iter.Seq[uint32]
}

// New creates an empty set of the given kind.
func New(kind Kind) (Set, error) {
	switch kind {
	case KindVEB:
		return NewVEB(), nil
	case KindRBTree:
		return NewTree(), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}
}

// All yields every key of s in increasing order.
func All(s Set) iter.Seq[uint32] {
	return s.Range(0, math.MaxUint32)
}
