// Package xlist is a plain pointer-linked generic list. ixlist tests use it as a reference model.
package xlist

type List[T any] struct {
	front *Node[T]
	back  *Node[T]
	size  int
}

func (l *List[T]) Len() int        { return l.size }
func (l *List[T]) Front() *Node[T] { return l.front }
func (l *List[T]) Back() *Node[T]  { return l.back }

func (l *List[T]) PushFront(value T) *Node[T] {
	node := &Node[T]{
		next:  l.front,
		Value: value,
	}
	if l.front != nil {
		l.front.prev = node
	} else {
		l.back = node
	}
	l.front = node
	l.size++
	return node
}

func (l *List[T]) PushBack(value T) *Node[T] {
	node := &Node[T]{
		prev:  l.back,
		Value: value,
	}
	if l.back != nil {
		l.back.next = node
	} else {
		l.front = node
	}
	l.back = node
	l.size++
	return node
}

// InsertBefore adds value before mark, or at the back if mark is nil.
func (l *List[T]) InsertBefore(value T, mark *Node[T]) *Node[T] {
	if mark == nil {
		return l.PushBack(value)
	}
	node := &Node[T]{
		prev:  mark.prev,
		next:  mark,
		Value: value,
	}
	if node.prev != nil {
		node.prev.next = node
	} else {
		l.front = node
	}
	mark.prev = node
	l.size++
	return node
}

func (l *List[T]) Remove(node *Node[T]) {
	if l.front == node {
		l.front = node.next
	} else {
		node.prev.next = node.next
	}
	if l.back == node {
		l.back = node.prev
	} else {
		node.next.prev = node.prev
	}
	node.prev = nil
	node.next = nil
	l.size--
}

// Values returns the list's values from front to back.
func (l *List[T]) Values() []T {
	out := make([]T, 0, l.size)
	for node := l.front; node != nil; node = node.next {
		out = append(out, node.Value)
	}
	return out
}

type Node[T any] struct {
	prev  *Node[T]
	next  *Node[T]
	Value T
}

func (n *Node[T]) Next() *Node[T] { return n.next }
func (n *Node[T]) Prev() *Node[T] { return n.prev }
