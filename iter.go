package ixlist

import (
	"github.com/bradenaw/juniper/iterator"
)

var _ iterator.Iterator[int] = &Iter[int]{}
var _ iterator.Iterator[*int] = &IterMut[int]{}

// walk is the two-ended traversal state shared by Iter and IterMut. Each end keeps its own
// position; when the two positions meet on the last remaining element, consuming it from either
// side ends the walk for both.
type walk[T any] struct {
	nodes []node[T]
	ends  [2]int
	taken int
}

func newWalk[T any](l *List[T]) walk[T] {
	return walk[T]{nodes: l.nodes, ends: l.ends}
}

// step consumes the element at end s and returns its slot.
func (w *walk[T]) step(s side) (int, bool) {
	i := w.ends[s]
	if i == endIx {
		return endIx, false
	}
	if w.ends[head] == w.ends[tail] {
		w.ends = [2]int{endIx, endIx}
	} else {
		// Leaving the head means following next links, leaving the tail means following prev.
		w.ends[s] = w.nodes[i].link[s.opp()]
	}
	w.taken++
	return i, true
}

func (w *walk[T]) remaining() int { return len(w.nodes) - w.taken }

func (w *walk[T]) done() bool { return w.ends[head] == endIx }

// Iter iterates over the values of a List in order. It can be consumed from both ends in any
// interleaving; every element is produced exactly once.
//
// Any number of Iters may be open on a list at once. Stepping an Iter after the list has been
// structurally modified, or after an IterMut or Cursor has been opened on it, panics.
type Iter[T any] struct {
	l       *List[T]
	version uint64
	w       walk[T]
}

// Iter returns an iterator over the list's values from front to back.
func (l *List[T]) Iter() *Iter[T] {
	l.shared("Iter")
	return &Iter[T]{l: l, version: l.version, w: newWalk(l)}
}

// Next returns the next value from the front, or false in the second return once every element
// has been produced.
func (it *Iter[T]) Next() (T, bool) { return it.step(head) }

// NextBack returns the next value from the back.
func (it *Iter[T]) NextBack() (T, bool) { return it.step(tail) }

// Len returns the number of elements not yet produced.
func (it *Iter[T]) Len() int { return it.w.remaining() }

// Reverse returns an iterator that consumes it from the back.
func (it *Iter[T]) Reverse() iterator.Iterator[T] { return backward[T]{it} }

func (it *Iter[T]) step(s side) (T, bool) {
	if it.l.version != it.version {
		panic("ixlist: list modified or exclusively borrowed during iteration")
	}
	i, ok := it.w.step(s)
	if !ok {
		var zero T
		return zero, false
	}
	return it.w.nodes[i].value, true
}

// IterMut iterates over pointers to the values of a List, allowing them to be modified in place.
// Like Iter it can be consumed from both ends; no two calls ever return pointers to the same
// element.
//
// An open IterMut holds the list exclusively. It releases the list once every element has been
// produced or when Close is called, whichever comes first.
type IterMut[T any] struct {
	l      *List[T]
	w      walk[T]
	closed bool
}

// IterMut returns an iterator over pointers to the list's values from front to back.
func (l *List[T]) IterMut() *IterMut[T] {
	l.acquire("IterMut")
	it := &IterMut[T]{l: l, w: newWalk(l)}
	if it.w.done() {
		it.Close()
	}
	return it
}

// Next returns a pointer to the next value from the front, or false in the second return once
// every element has been produced.
func (it *IterMut[T]) Next() (*T, bool) { return it.step(head) }

// NextBack returns a pointer to the next value from the back.
func (it *IterMut[T]) NextBack() (*T, bool) { return it.step(tail) }

// Len returns the number of elements not yet produced.
func (it *IterMut[T]) Len() int { return it.w.remaining() }

// Reverse returns an iterator that consumes it from the back.
func (it *IterMut[T]) Reverse() iterator.Iterator[*T] { return backward[*T]{it} }

// Close releases the list. It is safe to call more than once.
func (it *IterMut[T]) Close() {
	if it.closed {
		return
	}
	it.closed = true
	it.l.release()
}

func (it *IterMut[T]) step(s side) (*T, bool) {
	if it.closed {
		return nil, false
	}
	i, ok := it.w.step(s)
	if !ok {
		it.Close()
		return nil, false
	}
	if it.w.done() {
		it.Close()
	}
	// The walk never yields a slot twice, so this is the only pointer to nodes[i] handed out. It
	// stays valid after Close until the list is next modified.
	return &it.w.nodes[i].value, true
}

type doubleEnded[T any] interface {
	NextBack() (T, bool)
}

type backward[T any] struct {
	inner doubleEnded[T]
}

func (b backward[T]) Next() (T, bool) { return b.inner.NextBack() }
