package ordercache

import "container/list"

// bucket is a sequence of store handles sharing a secondary-index key
// (user or security id). Handle order within a bucket is insertion
// order; a handle never appears twice. Backed by container/list for the
// same O(1)-removal-via-stored-element reason the primary store is: the
// teacher's PriceTree.Remove deletes a price level via a pointer it
// already holds rather than a scan, and bucket removal here does the
// same via the userElem/secElem pointers stashed on each record.
type bucket struct {
	handles *list.List // of handle (store *list.Element)
}

func newBucket() *bucket {
	return &bucket{handles: list.New()}
}

func (b *bucket) append(h handle) handle {
	return b.handles.PushBack(h)
}

// removeElem removes the bucket-local element e (NOT the store handle
// itself) in O(1).
func (b *bucket) removeElem(e handle) {
	b.handles.Remove(e)
}

func (b *bucket) empty() bool {
	return b.handles.Len() == 0
}

// storeHandles returns the store handles currently in the bucket, in
// insertion order. The slice is a defensive copy so callers may mutate
// the bucket (e.g. via cancellation) while iterating it.
func (b *bucket) storeHandles() []handle {
	out := make([]handle, 0, b.handles.Len())
	for e := b.handles.Front(); e != nil; e = e.Next() {
		out = append(out, e.Value.(handle))
	}
	return out
}

// indexSet holds the three secondary indexes over the primary store:
// order id is unique, user and security id each fan out to a bucket of
// handles.
type indexSet struct {
	byID       map[string]handle
	byUser     map[string]*bucket
	bySecurity map[string]*bucket
}

func newIndexSet() *indexSet {
	return &indexSet{
		byID:       make(map[string]handle),
		byUser:     make(map[string]*bucket),
		bySecurity: make(map[string]*bucket),
	}
}

// bucketFor returns the bucket for key in m, creating it if absent.
func bucketFor(m map[string]*bucket, key string) *bucket {
	b, ok := m[key]
	if !ok {
		b = newBucket()
		m[key] = b
	}
	return b
}

// dropIfEmpty erases the bucket at key if it has gone empty. An emptied
// bucket is never left dangling: lookups treat an absent bucket and an
// empty one identically, but erasing it keeps the index sets' sizes
// matching the number of distinct live users/securities.
func dropIfEmpty(m map[string]*bucket, key string) {
	if b, ok := m[key]; ok && b.empty() {
		delete(m, key)
	}
}
