/*
Package arena implements a generation-checked slot arena with owner counting.
*/
package arena

// Handle addresses a slot in an arena.
//
// The zero value never resolves.
type Handle struct {
	index uint32
	gen   uint32
}

// IsZero reports whether h is the zero handle.
func (h Handle) IsZero() bool {
	return h.gen == 0
}

type slot[T any] struct {
	value  T
	gen    uint32
	owners int
	used   bool
}

// Arena stores values in reusable slots.
// A slot is freed as soon as its owner count drops to zero.
//
// The zero value is a ready to use empty arena.
type Arena[T any] struct {
	slots []slot[T]
	free  []uint32
	len   int
}

// New creates an arena with room for capacity values.
func New[T any](capacity int) *Arena[T] {
	a := &Arena[T]{}
	a.Grow(capacity)
	return a
}

// Grow preallocates room for n more values.
func (a *Arena[T]) Grow(n int) {
	if n <= 0 {
		return
	}

	if cap(a.slots)-len(a.slots) < n {
		slots := make([]slot[T], len(a.slots), len(a.slots)+n)
		copy(slots, a.slots)
		a.slots = slots
	}
}

// Len returns the number of live values.
func (a *Arena[T]) Len() int {
	return a.len
}

// Alloc stores v in a free slot with no owners and returns its handle.
//
// Pointers returned by Get are invalidated by Alloc.
func (a *Arena[T]) Alloc(v T) Handle {
	var idx uint32

	if n := len(a.free); n > 0 {
		idx = a.free[n-1]
		a.free = a.free[:n-1]
	} else {
		idx = uint32(len(a.slots))
		a.slots = append(a.slots, slot[T]{gen: 1})
	}

	s := &a.slots[idx]
	s.value = v
	s.owners = 0
	s.used = true
	a.len++

	return Handle{index: idx, gen: s.gen}
}

// Get resolves a handle. It returns false if the slot was freed since the handle was issued.
func (a *Arena[T]) Get(h Handle) (*T, bool) {
	s, ok := a.lookup(h)
	if !ok {
		return nil, false
	}
	return &s.value, true
}

// Owners returns the owner count of a live slot or 0.
func (a *Arena[T]) Owners(h Handle) int {
	if s, ok := a.lookup(h); ok {
		return s.owners
	}
	return 0
}

// Retain adds an owner to a live slot.
func (a *Arena[T]) Retain(h Handle) {
	s, ok := a.lookup(h)
	if !ok {
		panic("arena: retain of freed slot")
	}
	s.owners++
}

// Release removes an owner from a live slot. When the last owner is released
// the slot is freed and its value returned.
func (a *Arena[T]) Release(h Handle) (value T, freed bool) {
	s, ok := a.lookup(h)
	if !ok || s.owners == 0 {
		panic("arena: release of unowned slot")
	}

	s.owners--
	if s.owners > 0 {
		return value, false
	}

	return a.reclaim(h.index), true
}

// Take frees a slot held by exactly one owner and returns its value.
func (a *Arena[T]) Take(h Handle) T {
	s, ok := a.lookup(h)
	if !ok {
		panic("arena: take of freed slot")
	}

	if s.owners != 1 {
		panic("arena: take of shared slot")
	}

	return a.reclaim(h.index)
}

func (a *Arena[T]) lookup(h Handle) (*slot[T], bool) {
	if h.gen == 0 || int(h.index) >= len(a.slots) {
		return nil, false
	}

	s := &a.slots[h.index]
	if !s.used || s.gen != h.gen {
		return nil, false
	}

	return s, true
}

func (a *Arena[T]) reclaim(idx uint32) T {
	s := &a.slots[idx]
	value := s.value

	var zero T
	s.value = zero
	s.owners = 0
	s.used = false

	// Generation 0 is reserved for the zero handle.
	if s.gen++; s.gen == 0 {
		s.gen = 1
	}

	a.free = append(a.free, idx)
	a.len--

	return value
}
