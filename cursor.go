package ixlist

// Cursor is a position in a List that can step in both directions and insert at that position.
//
// A cursor sits before an element, or on a single virtual slot that is both before the front and
// past the back of the list. Stepping past either end lands on the virtual slot, and stepping again
// wraps around to the other end, so repeatedly calling Next cycles through the list.
//
// An open Cursor holds the list exclusively until Close is called. Removals move elements between
// slots, so a position cannot survive a PopFront or PopBack; those and all other methods except
// Len and Cap panic while a cursor is open.
type Cursor[T any] struct {
	l      *List[T]
	pos    int
	closed bool
}

// Cursor returns a cursor positioned before the front of the list.
func (l *List[T]) Cursor() *Cursor[T] {
	l.acquire("Cursor")
	return &Cursor[T]{l: l, pos: l.ends[head]}
}

// Close releases the list. Using the cursor after Close panics. It is safe to call Close more than
// once.
func (c *Cursor[T]) Close() {
	if c.closed {
		return
	}
	c.closed = true
	c.l.release()
}

// Next returns a pointer to the element after the cursor and moves past it.
//
// If the cursor is on the virtual slot, Next instead moves it before the front of the list and
// returns false in the second return.
//
// The returned pointer is valid until the next call to Insert.
func (c *Cursor[T]) Next() (*T, bool) {
	c.checkOpen()
	if c.pos == endIx {
		c.pos = c.l.ends[head]
		return nil, false
	}
	n := &c.l.nodes[c.pos]
	c.pos = n.link[next]
	return &n.value, true
}

// Prev moves the cursor back by one element and returns a pointer to it.
//
// If the cursor is before the front of the list, Prev instead moves it to the virtual slot and
// returns false in the second return; the following Prev moves to the back of the list.
func (c *Cursor[T]) Prev() (*T, bool) {
	c.checkOpen()
	if c.pos == c.l.ends[head] {
		c.pos = endIx
		return nil, false
	}
	var p int
	if c.pos == endIx {
		p = c.l.ends[tail]
	} else {
		p = c.l.nodes[c.pos].link[prev]
	}
	c.pos = p
	return &c.l.nodes[p].value, true
}

// Insert adds value before the element that Next would return, and positions the cursor before
// the new element so that Next returns it.
//
// On the virtual slot this is the same as PushBack; before the front it is the same as PushFront.
func (c *Cursor[T]) Insert(value T) {
	c.checkOpen()
	l := c.l
	l.version++
	switch c.pos {
	case endIx:
		c.pos = l.push(tail, value)
	case l.ends[head]:
		c.pos = l.push(head, value)
	default:
		idx := len(l.nodes)
		p := l.nodes[c.pos].link[prev]
		n := node[T]{value: value}
		n.link[prev] = p
		n.link[next] = c.pos
		l.nodes = append(l.nodes, n)
		l.nodes[p].link[next] = idx
		l.nodes[c.pos].link[prev] = idx
		c.pos = idx
		l.checkInvariants()
	}
}

type seekKind int

const (
	seekForward seekKind = iota
	seekBackward
	seekHead
	seekTail
)

// Seek describes a cursor movement for Cursor.Seek.
type Seek struct {
	kind seekKind
	n    int
}

var (
	// Head moves the cursor before the front of the list.
	Head = Seek{kind: seekHead}
	// Tail moves the cursor to the virtual slot past the back of the list, where Insert appends.
	Tail = Seek{kind: seekTail}
)

// Forward moves the cursor up to n elements toward the back.
func Forward(n int) Seek { return Seek{kind: seekForward, n: n} }

// Backward moves the cursor up to n elements toward the front.
func Backward(n int) Seek { return Seek{kind: seekBackward, n: n} }

// Seek moves the cursor. Forward and Backward stop early, without wrapping around, once the cursor
// reaches the virtual slot.
func (c *Cursor[T]) Seek(s Seek) {
	c.checkOpen()
	switch s.kind {
	case seekHead:
		c.pos = c.l.ends[head]
	case seekTail:
		c.pos = endIx
	case seekForward:
		for i := 0; i < s.n && c.pos != endIx; i++ {
			c.Next()
		}
	case seekBackward:
		for i := 0; i < s.n; i++ {
			if _, ok := c.Prev(); !ok {
				break
			}
		}
	}
}

func (c *Cursor[T]) checkOpen() {
	if c.closed {
		panic("ixlist: cursor used after Close")
	}
}
