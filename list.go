/*
Package cdlist implements a circular doubly linked list whose nodes are held by
owning and observing links.

Forward next links own their targets, except the tail's next which observes
the head. Every prev link observes. The list handle owns both the head and the
tail, so a node is released the moment its last owning link is dropped, without
any cycle breaking.
*/
package cdlist

import (
	"fmt"
	"strings"

	"github.com/mgnsk/cdlist/internal/arena"
)

// List is a circular doubly linked list.
//
// The zero value is a ready to use empty list.
// A List must not be used concurrently.
type List[V any] struct {
	nodes   arena.Arena[node[V]]
	head    link
	tail    link
	len     int
	version uint64
	check   bool
}

// New creates an empty list.
func New[V any](opts ...Option) *List[V] {
	o := newDefaultListOptions()
	for _, opt := range opts {
		opt.apply(&o)
	}

	l := &List[V]{
		check: o.invariantChecks,
	}
	l.nodes.Grow(o.capacity)

	return l
}

// Len returns the number of elements in the list.
func (l *List[V]) Len() int {
	return l.len
}

// IsEmpty reports whether the list has no elements.
func (l *List[V]) IsEmpty() bool {
	return l.len == 0
}

// PushFront inserts a value at the front of the list.
func (l *List[V]) PushFront(v V) {
	defer l.mutated()

	h := l.newNode(v)
	if l.len == 0 {
		l.pushFirst(h)
		return
	}

	head, tail := l.head.target, l.tail.target

	n := l.node(h)
	n.prev = observe(tail)
	n.next = l.own(head)

	l.setPrev(head, observe(h))
	// With a single node this replaces its self-reference.
	l.setNext(tail, observe(h))

	old := l.head
	l.head = l.own(h)
	l.drop(old)

	l.len++
}

// PushBack inserts a value at the back of the list.
func (l *List[V]) PushBack(v V) {
	defer l.mutated()

	h := l.newNode(v)
	if l.len == 0 {
		l.pushFirst(h)
		return
	}

	head, tail := l.head.target, l.tail.target

	n := l.node(h)
	n.prev = observe(tail)
	n.next = observe(head)

	l.setNext(tail, l.own(h))
	// With a single node this replaces its self-reference.
	l.setPrev(head, observe(h))

	old := l.tail
	l.tail = l.own(h)
	l.drop(old)

	l.len++
}

func (l *List[V]) pushFirst(h arena.Handle) {
	n := l.node(h)
	n.next = observe(h)
	n.prev = observe(h)

	l.head = l.own(h)
	l.tail = l.own(h)
	l.len = 1
}

// PopFront removes the front element and returns its value.
// It returns false if the list is empty.
func (l *List[V]) PopFront() (value V, ok bool) {
	if l.len == 0 {
		return value, false
	}

	defer l.mutated()

	l.len--
	if l.len == 0 {
		return l.popLast(), true
	}

	// The handle's holder of the old head now belongs to this call.
	h := l.head.target
	l.head = link{}

	succ := l.successor(h)
	tail := l.tail.target

	l.setNext(tail, observe(succ))
	l.setPrev(succ, observe(tail))
	l.head = l.own(succ)

	return l.take(h), true
}

// PopBack removes the back element and returns its value.
// It returns false if the list is empty.
func (l *List[V]) PopBack() (value V, ok bool) {
	if l.len == 0 {
		return value, false
	}

	defer l.mutated()

	l.len--
	if l.len == 0 {
		return l.popLast(), true
	}

	t := l.tail.target
	head := l.head.target
	pred := l.predecessor(t)

	// The tail is owned by both the handle and its predecessor.
	// Turning the predecessor's next into the wrap edge leaves the handle as sole owner.
	if next := l.node(pred).next; next.kind != linkOwning || next.target != t {
		panic("cdlist: predecessor does not own the tail")
	}
	l.setNext(pred, observe(head))

	l.tail = link{}
	l.setPrev(head, observe(pred))
	l.tail = l.own(pred)

	return l.take(t), true
}

func (l *List[V]) popLast() V {
	head := l.head
	l.head = link{}
	l.drop(head)

	t := l.tail.target
	l.tail = link{}

	return l.take(t)
}

// PeekFront returns a reference to the front value.
// It returns false if the list is empty.
func (l *List[V]) PeekFront() (Ref[V], bool) {
	if l.len == 0 {
		return Ref[V]{}, false
	}
	return l.ref(l.head.target), true
}

// PeekBack returns a reference to the back value.
// It returns false if the list is empty.
func (l *List[V]) PeekBack() (Ref[V], bool) {
	if l.len == 0 {
		return Ref[V]{}, false
	}
	return l.ref(l.tail.target), true
}

// InsertAt inserts a value so that it ends up at position index.
// Index 0 inserts at the front and index Len() at the back.
// Any other index outside of [0, Len()] leaves the list unchanged
// and returns ErrIndexOutOfRange.
func (l *List[V]) InsertAt(index int, v V) error {
	switch {
	case index < 0 || index > l.len:
		return fmt.Errorf("%w: index %d, length %d", ErrIndexOutOfRange, index, l.len)

	case index == 0:
		l.PushFront(v)
		return nil

	case index == l.len:
		l.PushBack(v)
		return nil
	}

	defer l.mutated()

	pred := l.walk(index - 1)
	succ := l.successor(pred)

	h := l.newNode(v)
	n := l.node(h)
	n.next = l.own(succ)
	n.prev = observe(pred)

	l.setNext(pred, l.own(h))
	l.setPrev(succ, observe(h))

	l.len++

	return nil
}

// RemoveAt removes the element at position index and returns its value.
// It returns false if index is out of range.
func (l *List[V]) RemoveAt(index int) (value V, ok bool) {
	switch {
	case index < 0 || index >= l.len:
		return value, false

	case index == 0:
		return l.PopFront()

	case index == l.len-1:
		return l.PopBack()
	}

	defer l.mutated()

	pred := l.walk(index - 1)
	target := l.successor(pred)
	succ := l.successor(target)

	// Hold the target while its only owning link is redirected past it.
	l.nodes.Retain(target)

	l.setNext(pred, l.own(succ))
	l.setPrev(succ, observe(pred))

	l.len--

	return l.take(target), true
}

// Clear removes all elements, releasing them one at a time from the front.
func (l *List[V]) Clear() {
	for l.len > 0 {
		l.PopFront()
	}
}

// Values returns the values of the list in front to back order.
func (l *List[V]) Values() []V {
	values := make([]V, 0, l.len)

	l.do(func(v V) {
		values = append(values, v)
	})

	return values
}

// String renders the values of the list in front to back order.
func (l *List[V]) String() string {
	var b strings.Builder

	b.WriteByte('[')

	i := 0
	l.do(func(v V) {
		if i > 0 {
			b.WriteByte(' ')
		}
		fmt.Fprint(&b, v)
		i++
	})

	b.WriteByte(']')

	return b.String()
}

// do calls f for each value in forward order. It visits exactly Len() nodes
// and never follows the wrap edge.
func (l *List[V]) do(f func(v V)) {
	if l.len == 0 {
		return
	}

	h := l.head.target
	for i := 0; ; i++ {
		f(l.node(h).value)

		if i == l.len-1 {
			return
		}

		h = l.successor(h)
	}
}

// walk returns the node at position index by following owning next links from the head.
func (l *List[V]) walk(index int) arena.Handle {
	h := l.head.target
	for range index {
		h = l.successor(h)
	}
	return h
}

func (l *List[V]) mutated() {
	l.version++

	if l.check {
		if err := l.checkInvariants(); err != nil {
			panic("cdlist: invariant violation: " + err.Error())
		}
	}
}
