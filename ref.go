package cdlist

import "github.com/mgnsk/cdlist/internal/arena"

// Ref is a read-only reference to a value in a list.
// It is valid until the next mutating call on the list.
type Ref[V any] struct {
	list    *List[V]
	target  arena.Handle
	version uint64
}

func (l *List[V]) ref(h arena.Handle) Ref[V] {
	return Ref[V]{
		list:    l,
		target:  h,
		version: l.version,
	}
}

// Valid reports whether the reference can still be read.
func (r Ref[V]) Valid() bool {
	return r.list != nil && r.list.version == r.version
}

// Value returns the referenced value.
// It panics if the list has been mutated since the reference was taken.
func (r Ref[V]) Value() V {
	if !r.Valid() {
		panic("cdlist: reference used after list mutation")
	}
	return r.list.node(r.target).value
}
