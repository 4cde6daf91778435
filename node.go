package cdlist

import "github.com/mgnsk/cdlist/internal/arena"

type linkKind uint8

const (
	linkNone linkKind = iota
	linkOwning
	linkObserving
)

// link is either an owning or an observing reference to a node.
// Only owning links are counted in the target's owner count.
type link struct {
	target arena.Handle
	kind   linkKind
}

func (k linkKind) String() string {
	switch k {
	case linkOwning:
		return "owning"
	case linkObserving:
		return "observing"
	default:
		return "none"
	}
}

type node[V any] struct {
	next, prev link
	value      V
}

// newNode allocates a detached node. It has no owners until a link is formed.
func (l *List[V]) newNode(v V) arena.Handle {
	return l.nodes.Alloc(node[V]{value: v})
}

// node resolves a handle the invariant guarantees to be live.
// The pointer is valid until the next allocation.
func (l *List[V]) node(h arena.Handle) *node[V] {
	n, ok := l.nodes.Get(h)
	if !ok {
		panic("cdlist: dangling link")
	}
	return n
}

// own forms a new owning link to h.
func (l *List[V]) own(h arena.Handle) link {
	l.nodes.Retain(h)
	return link{target: h, kind: linkOwning}
}

func observe(h arena.Handle) link {
	return link{target: h, kind: linkObserving}
}

// drop discards a link. Dropping the last owning link frees the node
// and drops the links it held in turn.
func (l *List[V]) drop(lk link) {
	if lk.kind != linkOwning {
		return
	}

	if n, freed := l.nodes.Release(lk.target); freed {
		l.drop(n.next)
		l.drop(n.prev)
	}
}

// take extracts the value of a node held by exactly one owner and frees it.
func (l *List[V]) take(h arena.Handle) V {
	n := l.nodes.Take(h)
	l.drop(n.next)
	l.drop(n.prev)
	return n.value
}

func (l *List[V]) setNext(h arena.Handle, lk link) {
	n := l.node(h)
	old := n.next
	n.next = lk
	l.drop(old)
}

func (l *List[V]) setPrev(h arena.Handle, lk link) {
	n := l.node(h)
	old := n.prev
	n.prev = lk
	l.drop(old)
}

// successor follows an owning next link.
func (l *List[V]) successor(h arena.Handle) arena.Handle {
	next := l.node(h).next
	if next.kind != linkOwning {
		panic("cdlist: expected owning next link, got " + next.kind.String())
	}
	return next.target
}

// predecessor resolves an observing prev link.
func (l *List[V]) predecessor(h arena.Handle) arena.Handle {
	prev := l.node(h).prev
	if prev.kind != linkObserving {
		panic("cdlist: expected observing prev link, got " + prev.kind.String())
	}

	if _, ok := l.nodes.Get(prev.target); !ok {
		panic("cdlist: dangling link")
	}

	return prev.target
}
