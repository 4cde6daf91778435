package cdlist

import (
	"errors"
	"fmt"

	"github.com/mgnsk/cdlist/internal/arena"
)

// checkInvariants verifies the link structure:
// every next link owns its target except the tail's, which observes the head,
// every prev link observes its predecessor, the owning chain from the head
// visits every live node exactly once, and owner counts match the holders.
func (l *List[V]) checkInvariants() error {
	if l.len == 0 {
		if l.head.kind != linkNone || l.tail.kind != linkNone {
			return errors.New("empty list holds a head or tail")
		}
		if n := l.nodes.Len(); n != 0 {
			return fmt.Errorf("empty list has %d live nodes", n)
		}
		return nil
	}

	if l.head.kind != linkOwning || l.tail.kind != linkOwning {
		return fmt.Errorf("head link is %s and tail link is %s, expected owning", l.head.kind, l.tail.kind)
	}

	if n := l.nodes.Len(); n != l.len {
		return fmt.Errorf("%d live nodes for length %d", n, l.len)
	}

	head, tail := l.head.target, l.tail.target
	seen := make(map[arena.Handle]struct{}, l.len)
	prev := tail
	h := head

	for i := 0; i < l.len; i++ {
		n, ok := l.nodes.Get(h)
		if !ok {
			return fmt.Errorf("node %d is not live", i)
		}

		if _, ok := seen[h]; ok {
			return fmt.Errorf("node %d visited twice", i)
		}
		seen[h] = struct{}{}

		if n.prev.kind != linkObserving || n.prev.target != prev {
			return fmt.Errorf("node %d: prev link is %s, expected observing the previous node", i, n.prev.kind)
		}

		want := 1
		if h == tail {
			want = 2
		}
		if got := l.nodes.Owners(h); got != want {
			return fmt.Errorf("node %d: %d owners, expected %d", i, got, want)
		}

		if i == l.len-1 {
			if h != tail {
				return errors.New("owning chain does not end at the tail")
			}
			if n.next.kind != linkObserving || n.next.target != head {
				return fmt.Errorf("tail: next link is %s, expected observing the head", n.next.kind)
			}
			break
		}

		if h == tail {
			return fmt.Errorf("tail reached after %d of %d nodes", i+1, l.len)
		}
		if n.next.kind != linkOwning {
			return fmt.Errorf("node %d: next link is %s, expected owning", i, n.next.kind)
		}

		prev = h
		h = n.next.target
	}

	return nil
}
