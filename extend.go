package ixlist

import (
	"slices"

	"github.com/bradenaw/juniper/iterator"
)

// FromSlice returns a list holding the elements of s in order.
func FromSlice[T any](s []T) *List[T] {
	l := WithCapacity[T](len(s))
	l.ExtendSlice(s)
	return l
}

// FromIterator returns a list holding the elements produced by iter in order.
func FromIterator[T any](iter iterator.Iterator[T]) *List[T] {
	l := New[T]()
	l.Extend(iter)
	return l
}

// ExtendSlice appends the elements of s to the back of the list in order.
func (l *List[T]) ExtendSlice(s []T) {
	l.shared("ExtendSlice")
	l.nodes = slices.Grow(l.nodes, len(s))
	l.Extend(iterator.Slice(s))
}

// Extend appends every element produced by iter to the back of the list in order. The result is
// the same as calling PushBack for each element.
//
// If iter has a Len() int method, as Iter does, it is used to reserve space up front.
func (l *List[T]) Extend(iter iterator.Iterator[T]) {
	// Bump the version only at the end: an Iter over l itself may be the source.
	l.shared("Extend")
	if hinted, ok := iter.(interface{ Len() int }); ok {
		l.nodes = slices.Grow(l.nodes, hinted.Len())
	}

	oldTail := l.ends[tail]
	first := len(l.nodes)
	last := oldTail
	// Link in whatever was appended, even if iter panics partway through.
	defer func() {
		if last == oldTail {
			return
		}
		l.nodes[last].link[next] = endIx
		if oldTail != endIx {
			l.nodes[oldTail].link[next] = first
		} else {
			l.ends[head] = first
		}
		l.ends[tail] = last
		l.version++
		l.checkInvariants()
	}()

	for {
		value, ok := iter.Next()
		if !ok {
			return
		}
		idx := len(l.nodes)
		// The next link is provisional; the deferred fixup ends the chain at the final element.
		l.nodes = append(l.nodes, node[T]{value: value, link: [2]int{last, idx + 1}})
		last = idx
	}
}
