package feed

import (
	"fmt"
	"io"
	"os"
	"sync"
	"sync/atomic"
	_ "unsafe" // for go:linkname

	"ordercache-service/ordercache"
)

//go:linkname semacquireSafe sync.runtime_Semacquire
func semacquireSafe(s *uint32)

//go:linkname semreleaseSafe sync.runtime_Semrelease
func semreleaseSafe(s *uint32, handoff bool, skipframes int)

// ringBuffer is a bounded, semaphore-gated queue of orders awaiting
// ingestion, gated by runtime semaphores rather than a channel: publish
// waits for a free slot and consume waits for a filled one.
// Each worker wants its own order, not a contiguous run of them, so
// there is no local batching step on the consumer side.
type ringBuffer struct {
	buffer     []ordercache.Order
	mask       int64
	writeSeq   atomic.Int64
	readSeq    atomic.Int64
	emptySlots uint32
	fullSlots  uint32
}

func newRingBuffer(size int) *ringBuffer {
	if size&(size-1) != 0 {
		panic("ring buffer size must be a power of 2")
	}
	rb := &ringBuffer{
		buffer: make([]ordercache.Order, size),
		mask:   int64(size - 1),
	}
	for i := 0; i < size; i++ {
		semreleaseSafe(&rb.emptySlots, false, 0)
	}
	return rb
}

func (rb *ringBuffer) publish(o ordercache.Order) {
	semacquireSafe(&rb.emptySlots)
	seq := rb.writeSeq.Add(1) - 1
	rb.buffer[seq&rb.mask] = o
	semreleaseSafe(&rb.fullSlots, false, 0)
}

func (rb *ringBuffer) consume() ordercache.Order {
	semacquireSafe(&rb.fullSlots)
	seq := rb.readSeq.Add(1) - 1
	o := rb.buffer[seq&rb.mask]
	semreleaseSafe(&rb.emptySlots, false, 0)
	return o
}

// Batch fans orders into workers concurrent AddOrder calls through a
// bounded ring buffer and returns once every order has been submitted to
// cache. The cache's own write lock is what makes this safe to run with
// workers > 1. Each submission is stamped with a monotonic sequence id
// and logged to diag (a nil diag defaults to os.Stderr), so an ingest
// run leaves a trace of what was submitted and in what order even
// though the workers race to drain the ring buffer.
func Batch(cache ordercache.Cache, orders []ordercache.Order, workers int, diag io.Writer) {
	if len(orders) == 0 {
		return
	}
	if workers < 1 {
		workers = 1
	}
	if diag == nil {
		diag = os.Stderr
	}

	size := 2
	for size < len(orders) {
		size <<= 1
	}
	rb := newRingBuffer(size)

	go func() {
		for _, o := range orders {
			rb.publish(o)
		}
	}()

	seq := NewSeqGenerator("feed-")

	var remaining atomic.Int64
	remaining.Store(int64(len(orders)))

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for {
				if remaining.Add(-1) < 0 {
					return
				}
				o := rb.consume()
				fmt.Fprintf(diag, "%s: submitting order %s\n", seq.Next(), o.OrderID)
				cache.AddOrder(o)
			}
		}()
	}
	wg.Wait()
}
