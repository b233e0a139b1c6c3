// Package veb implements a van Emde Boas set of unsigned integers over a
// fixed universe [0, 2^w). Membership, insertion, removal and the
// successor/predecessor queries all run in O(log w).
//
// A Tree is not safe for concurrent use.
package veb

import (
	"fmt"
	"math"

	"veb_counter/pkg/stack"
)

// MaxWidth is the widest supported universe, one machine word.
const MaxWidth = 64

// Tree is a set of keys in [0, MaxKey()]. The zero value is not usable,
// create trees with New.
type Tree struct {
	root  *node
	count uint64
}

// New creates an empty set over [0, 2^width).
func New(width uint) (*Tree, error) {
	if width == 0 || width > MaxWidth {
		return nil, fmt.Errorf("%w: %d, must be in [1, %d]", ErrInvalidWidth, width, MaxWidth)
	}
	return &Tree{root: newNode(uint8(width))}, nil
}

// Width returns the number of key bits.
func (t *Tree) Width() uint {
	return uint(t.root.width)
}

// MaxKey returns the largest key the tree accepts.
func (t *Tree) MaxKey() uint64 {
	if t.root.width == MaxWidth {
		return math.MaxUint64
	}
	return 1<<t.root.width - 1
}

// Len returns the number of keys in the set.
func (t *Tree) Len() uint64 {
	return t.count
}

// IsEmpty reports whether the set holds no keys.
func (t *Tree) IsEmpty() bool {
	return t.root.isEmpty()
}

// Min returns the smallest key, or false if the set is empty.
func (t *Tree) Min() (uint64, bool) {
	return t.root.min, t.root.occupied
}

// Max returns the largest key, or false if the set is empty.
func (t *Tree) Max() (uint64, bool) {
	return t.root.max, t.root.occupied
}

// Lookup reports whether x is in the set.
func (t *Tree) Lookup(x uint64) (bool, error) {
	if err := t.checkKey(x); err != nil {
		return false, err
	}
	return t.root.lookup(x), nil
}

// Insert adds x to the set. Inserting a present key is a no-op and
// reports false.
func (t *Tree) Insert(x uint64) (inserted bool, err error) {
	if err := t.checkKey(x); err != nil {
		return false, err
	}
	inserted = t.root.insert(x)
	if inserted {
		t.count++
	}
	return inserted, nil
}

// Remove deletes x from the set. Removing an absent key is a no-op and
// reports false.
func (t *Tree) Remove(x uint64) (removed bool, err error) {
	if err := t.checkKey(x); err != nil {
		return false, err
	}
	removed = t.root.remove(x)
	if removed {
		t.count--
	}
	return removed, nil
}

// FindNext returns the smallest key in the set that is >= x.
func (t *Tree) FindNext(x uint64) (next uint64, ok bool, err error) {
	if err := t.checkKey(x); err != nil {
		return 0, false, err
	}
	next, ok = t.root.findNext(x)
	return next, ok, nil
}

// FindPrev returns the largest key in the set that is <= x.
func (t *Tree) FindPrev(x uint64) (prev uint64, ok bool, err error) {
	if err := t.checkKey(x); err != nil {
		return 0, false, err
	}
	prev, ok = t.root.findPrev(x)
	return prev, ok, nil
}

// Clear removes every key. The width is kept.
func (t *Tree) Clear() {
	t.root = newNode(t.root.width)
	t.count = 0
}

// NodeCount returns the number of allocated nodes, the root included.
// Memory use is proportional to it.
func (t *Tree) NodeCount() int {
	count := 0
	s := stack.New[*node](int(t.root.width))
	s.Push(t.root)
	for !s.Empty() {
		n, _ := s.Pop()
		count++
		if n.summary != nil {
			s.Push(n.summary)
		}
		n.clusters.each(func(_ uint64, c *node) {
			s.Push(c)
		})
	}
	return count
}

func (t *Tree) checkKey(x uint64) error {
	if x > t.MaxKey() {
		return fmt.Errorf("%w: %d, max %d", ErrOutOfRange, x, t.MaxKey())
	}
	return nil
}
