package veb

import (
	"context"
	"iter"
)

// All yields the keys in increasing order.
func (t *Tree) All() iter.Seq[uint64] {
	return t.Range(0, t.MaxKey())
}

// Range yields the keys in [from, to] in increasing order. The tree must
// not be modified while iterating.
func (t *Tree) Range(from, to uint64) iter.Seq[uint64] {
	return func(yield func(uint64) bool) {
		if from > to {
			return
		}
		k, ok := t.root.findNext(from)
		for ok && k <= to {
			if !yield(k) || k == to {
				return
			}
			k, ok = t.root.findNext(k + 1)
		}
	}
}

// Backward yields the keys in decreasing order.
func (t *Tree) Backward() iter.Seq[uint64] {
	return func(yield func(uint64) bool) {
		k, ok := t.root.findPrev(t.MaxKey())
		for ok {
			if !yield(k) || k == 0 {
				return
			}
			k, ok = t.root.findPrev(k - 1)
		}
	}
}

// Iterator streams the keys in increasing order through a channel with
// cacheSize buffered slots. The channel is closed after the last key or
// once ctx is done, whichever comes first.
func (t *Tree) Iterator(ctx context.Context, cacheSize int) <-chan uint64 {
	ch := make(chan uint64, cacheSize)
	go func() {
		defer close(ch)
		for k := range t.All() {
			select {
			case ch <- k:
			case <-ctx.Done():
				return
			}
		}
	}()
	return ch
}
