package util

import (
	"cmp"
	"container/heap"
	"iter"
)

type queueItem[T cmp.Ordered] struct {
	next func() (T, bool)
	stop func()
	last T
}

type iteratorQueue[T cmp.Ordered] []queueItem[T]

func (iq iteratorQueue[T]) Len() int {
	return len(iq)
}

func (iq iteratorQueue[T]) Less(i, j int) bool {
	return iq[i].last < iq[j].last
}

func (iq iteratorQueue[T]) Swap(i, j int) {
	iq[i], iq[j] = iq[j], iq[i]
}

func (iq *iteratorQueue[T]) Push(x any) {
	*iq = append(*iq, x.(queueItem[T]))
}

func (iq *iteratorQueue[T]) Pop() any {
	lastIndex := len(*iq) - 1
	top := (*iq)[lastIndex]
	*iq = (*iq)[:lastIndex]
	return top
}

// MultiIterator merges ascending sequences into one ascending sequence.
// Duplicates across sequences are all yielded.
func MultiIterator[T cmp.Ordered](seqs []iter.Seq[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		iq := make(iteratorQueue[T], 0, len(seqs))
		defer func() {
			for _, itm := range iq {
				itm.stop()
			}
		}()

		for _, seq := range seqs {
			next, stop := iter.Pull(seq)
			last, ok := next()
			if !ok {
				stop()
				continue
			}
			iq = append(iq, queueItem[T]{next: next, stop: stop, last: last})
		}

		heap.Init(&iq)
		for iq.Len() > 0 {
			itm := &iq[0]
			last := itm.last
			if next, ok := itm.next(); ok {
				itm.last = next
				heap.Fix(&iq, 0)
			} else {
				itm.stop()
				heap.Pop(&iq)
			}

			if !yield(last) {
				return
			}
		}
	}
}
