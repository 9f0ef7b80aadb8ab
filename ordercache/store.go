package ordercache

import "container/list"

// handle is a stable, non-owning locator into the primary store. It
// survives insertions and unrelated removals; only the record it names
// can invalidate it, by being removed. A *list.Element gives O(1)
// deletion from the middle of the sequence without a scan, the same
// idiom any intrusive linked-list handle provides.
type handle = *list.Element

// record is what the primary store actually holds per live order: the
// order value plus the bucket handles needed to remove it from the user
// and security indexes in O(1) once its own store handle is known.
type record struct {
	order    Order
	userElem handle // this record's element within its user bucket
	secElem  handle // this record's element within its security bucket
}

// store is the ordered sequence of live orders: a container/list
// preserves chronological insertion order natively and hands out stable
// element pointers as handles.
type store struct {
	orders *list.List
}

func newStore() *store {
	return &store{orders: list.New()}
}

func (s *store) insert(r *record) handle {
	return s.orders.PushBack(r)
}

func (s *store) remove(h handle) {
	s.orders.Remove(h)
}

func recordAt(h handle) *record {
	return h.Value.(*record)
}

// snapshot materializes a copy of the store in insertion order. The
// result does not alias the store: callers may hold onto it indefinitely.
func (s *store) snapshot() []Order {
	out := make([]Order, 0, s.orders.Len())
	for e := s.orders.Front(); e != nil; e = e.Next() {
		out = append(out, recordAt(e).order)
	}
	return out
}

func (s *store) len() int {
	return s.orders.Len()
}
