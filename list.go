// Package ixlist contains a doubly linked list that lives entirely inside one slice, using indexes
// instead of pointers for its links.
//
// All nodes are stored contiguously, so pushing never allocates per node and iteration does not
// chase pointers across the heap. The cost is that indexes are not stable: removing an element
// moves the last slot of the backing slice into the hole it leaves. Handles into the list (Iter,
// IterMut, Cursor) therefore borrow it, and the list refuses structural changes while a mutable
// handle is open.
package ixlist

import (
	"fmt"
	"math"
	"strings"
)

// endIx marks a missing link. It is the largest int so that it never collides with a real slot.
const endIx = math.MaxInt

// side selects one of the two link slots of a node or one of the two terminals of a list. Pushes,
// pops and iteration are written once in terms of a side and its opposite.
type side int

const (
	// head and prev share index 0: the head is the node whose prev link is endIx.
	head side = 0
	tail side = 1

	prev side = 0
	next side = 1
)

func (s side) opp() side { return s ^ 1 }

type node[T any] struct {
	value T
	link  [2]int
}

// List is a doubly linked list stored in a single slice.
//
// A List must be created with New, WithCapacity, FromSlice or FromIterator.
//
// List is not safe for concurrent use. Any number of Iters may be open at once, but an open IterMut
// or Cursor excludes every other use of the list until it is closed; violating this panics.
type List[T any] struct {
	nodes []node[T]
	ends  [2]int

	// Set while an IterMut or Cursor is open.
	excl bool
	// Bumped on every structural change and every exclusive borrow so that open Iters can notice.
	version uint64
}

// New returns an empty list.
func New[T any]() *List[T] {
	return &List[T]{ends: [2]int{endIx, endIx}}
}

// WithCapacity returns an empty list with room for n elements before it needs to grow.
func WithCapacity[T any](n int) *List[T] {
	l := New[T]()
	l.nodes = make([]node[T], 0, n)
	return l
}

// Len returns the number of elements in the list.
func (l *List[T]) Len() int { return len(l.nodes) }

// Cap returns the number of elements the list can hold without growing.
func (l *List[T]) Cap() int { return cap(l.nodes) }

// Clear removes all elements from the list, keeping the allocated capacity.
func (l *List[T]) Clear() {
	l.mutate("Clear")
	var zero node[T]
	for i := range l.nodes {
		l.nodes[i] = zero
	}
	l.nodes = l.nodes[:0]
	l.ends = [2]int{endIx, endIx}
}

// PushFront adds value to the front of the list.
func (l *List[T]) PushFront(value T) {
	l.mutate("PushFront")
	l.push(head, value)
}

// PushBack adds value to the back of the list.
func (l *List[T]) PushBack(value T) {
	l.mutate("PushBack")
	l.push(tail, value)
}

// PopFront removes and returns the first element of the list, or false in the second return if
// the list is empty. Popping an empty list leaves it untouched.
//
// The last slot of the backing slice is moved into the freed slot.
func (l *List[T]) PopFront() (T, bool) {
	l.shared("PopFront")
	return l.pop(head)
}

// PopBack removes and returns the last element of the list, or false in the second return if the
// list is empty.
func (l *List[T]) PopBack() (T, bool) {
	l.shared("PopBack")
	return l.pop(tail)
}

// Front returns the first element of the list without removing it.
func (l *List[T]) Front() (T, bool) { return l.peek("Front", head) }

// Back returns the last element of the list without removing it.
func (l *List[T]) Back() (T, bool) { return l.peek("Back", tail) }

func (l *List[T]) peek(op string, s side) (T, bool) {
	l.shared(op)
	i := l.ends[s]
	if i == endIx {
		var zero T
		return zero, false
	}
	return l.nodes[i].value, true
}

// Slice returns the elements of the list in order.
func (l *List[T]) Slice() []T {
	out := make([]T, 0, l.Len())
	it := l.Iter()
	for {
		v, ok := it.Next()
		if !ok {
			return out
		}
		out = append(out, v)
	}
}

// String formats the list in order, like a slice.
func (l *List[T]) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, v := range l.Slice() {
		if i > 0 {
			sb.WriteByte(' ')
		}
		fmt.Fprint(&sb, v)
	}
	sb.WriteByte(']')
	return sb.String()
}

// push appends value as a new slot and links it in as the new terminal s.
func (l *List[T]) push(s side, value T) int {
	idx := len(l.nodes)
	n := node[T]{value: value}
	// Toward s there is nothing; away from s is the old terminal.
	n.link[s] = endIx
	n.link[s.opp()] = l.ends[s]
	l.nodes = append(l.nodes, n)
	if old := l.ends[s]; old != endIx {
		l.nodes[old].link[s] = idx
	} else {
		l.ends[s.opp()] = idx
	}
	l.ends[s] = idx
	l.checkInvariants()
	return idx
}

func (l *List[T]) pop(s side) (T, bool) {
	t := l.ends[s]
	if t == endIx {
		var zero T
		return zero, false
	}
	l.version++
	newEnd := l.nodes[t].link[s.opp()]
	l.prepareRemove(t)
	l.ends[s] = newEnd
	if newEnd == endIx {
		l.ends[s.opp()] = endIx
	}
	l.prepareSwap(t, len(l.nodes)-1)
	value := l.swapRemove(t)
	l.checkInvariants()
	return value, true
}

// prepareRemove unlinks the node at idx by pointing its neighbors at each other.
func (l *List[T]) prepareRemove(idx int) {
	p := l.nodes[idx].link[prev]
	n := l.nodes[idx].link[next]
	if p != endIx {
		l.nodes[p].link[next] = n
	}
	if n != endIx {
		l.nodes[n].link[prev] = p
	}
}

// prepareSwap rewrites every link to moved, including the terminals, to point at free instead.
// It must run after the node at free has been unlinked and before swapRemove.
func (l *List[T]) prepareSwap(free int, moved int) {
	if free == moved {
		return
	}
	p := l.nodes[moved].link[prev]
	n := l.nodes[moved].link[next]
	invariant(p != free && n != free, "moved node still linked to the freed slot")
	if p != endIx {
		l.nodes[p].link[next] = free
	}
	if n != endIx {
		l.nodes[n].link[prev] = free
	}
	for s := head; s <= tail; s++ {
		if l.ends[s] == moved {
			l.ends[s] = free
		}
	}
}

// swapRemove moves the last slot into idx, shrinks the slice by one, and returns the value that
// was at idx.
func (l *List[T]) swapRemove(idx int) T {
	last := len(l.nodes) - 1
	value := l.nodes[idx].value
	l.nodes[idx] = l.nodes[last]
	var zero node[T]
	l.nodes[last] = zero
	l.nodes = l.nodes[:last]
	return value
}

// mutate is called at the top of public methods that always change the structure of the list.
func (l *List[T]) mutate(op string) {
	l.shared(op)
	l.version++
}

// shared is called by every other public method that touches the list outside of a handle.
func (l *List[T]) shared(op string) {
	if l.excl {
		panic("ixlist: " + op + " called while an IterMut or Cursor is open")
	}
}

// acquire takes the exclusive borrow for an IterMut or Cursor. Iters opened earlier panic on their
// next step.
func (l *List[T]) acquire(op string) {
	l.shared(op)
	l.excl = true
	l.version++
}

func (l *List[T]) release() { l.excl = false }

// validate walks the list in both directions and reports the first broken invariant.
func (l *List[T]) validate() error {
	if len(l.nodes) == 0 {
		if l.ends[head] != endIx || l.ends[tail] != endIx {
			return fmt.Errorf("empty list has ends %v", l.ends)
		}
		return nil
	}
	for s := head; s <= tail; s++ {
		i := l.ends[s]
		if i < 0 || i >= len(l.nodes) {
			return fmt.Errorf("end %d out of range: %d", s, i)
		}
		if l.nodes[i].link[s] != endIx {
			return fmt.Errorf("end %d (slot %d) has link %d toward the outside", s, i, l.nodes[i].link[s])
		}
	}
	// Walk from each end; the walk must see every slot exactly once and finish at the other end.
	for s := head; s <= tail; s++ {
		seen := make([]bool, len(l.nodes))
		last := endIx
		count := 0
		for i := l.ends[s]; i != endIx; i = l.nodes[i].link[s.opp()] {
			if i < 0 || i >= len(l.nodes) {
				return fmt.Errorf("link to %d out of range", i)
			}
			if seen[i] {
				return fmt.Errorf("slot %d visited twice walking from end %d", i, s)
			}
			if l.nodes[i].link[s] != last {
				return fmt.Errorf("slot %d has back link %d, want %d", i, l.nodes[i].link[s], last)
			}
			seen[i] = true
			last = i
			count++
		}
		if count != len(l.nodes) {
			return fmt.Errorf("walk from end %d visited %d of %d slots", s, count, len(l.nodes))
		}
		if last != l.ends[s.opp()] {
			return fmt.Errorf("walk from end %d finished at %d, want %d", s, last, l.ends[s.opp()])
		}
	}
	return nil
}

// checkInvariants runs validate in builds with the ixlistdebug tag.
func (l *List[T]) checkInvariants() {
	if !debug {
		return
	}
	if err := l.validate(); err != nil {
		panic("ixlist: invariant violated: " + err.Error())
	}
}
