// File: spsc/queue.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Queue is a bounded lock-free SPSC circular buffer. The two shared
// indices live on dedicated cache lines, and each side keeps a private
// cache of the peer's index so the hot path stays free of cross-core
// loads until the cached value can no longer decide full/empty.

package spsc

import (
	"math"
	"runtime"
	"sync/atomic"
	"unsafe"

	"golang.org/x/sys/cpu"

	"github.com/momentics/hioload-spsc/api"
)

// Ensure compile-time interface compliance.
var _ api.Queue[any] = (*Queue[any])(nil)

// cacheLineSize is the destructive-interference granularity assumed for
// the target architecture, as reported by golang.org/x/sys/cpu.
const cacheLineSize = unsafe.Sizeof(cpu.CacheLinePad{})

// spinYieldMask throttles runtime.Gosched in busy-spin loops to every
// 64th iteration, so a single-P runtime cannot livelock while a pinned
// two-core deployment keeps near-pure spinning.
const spinYieldMask = 63

// Queue is a fixed-capacity SPSC queue over elements of type T.
//
// Exactly one goroutine may produce and exactly one may consume. A Queue
// must not be copied after first use. Dequeued slots are reset to the
// zero value of T, so the queue never retains references to consumed
// elements.
type Queue[T any] struct {
	buf   []T
	slots uint64 // internal capacity: requested capacity + 1
	pad   uint64 // guard slots at each end of buf, never indexed

	_          cpu.CacheLinePad
	readIdx    atomic.Uint64 // consumer-written, producer-read
	_          cpu.CacheLinePad
	readCache  uint64 // producer-private view of readIdx
	_          cpu.CacheLinePad
	writeIdx   atomic.Uint64 // producer-written, consumer-read
	_          cpu.CacheLinePad
	writeCache uint64 // consumer-private view of writeIdx
	_          cpu.CacheLinePad
}

// padSlots returns the number of element slots spanning one cache line.
// Guard zones of this many slots keep the first and last live slots off
// cache lines shared with neighboring heap allocations.
func padSlots[T any]() uint64 {
	var zero T
	size := unsafe.Sizeof(zero)
	if size == 0 {
		return 1
	}
	return uint64((cacheLineSize-1)/size) + 1
}

// New builds a queue holding up to capacity elements.
//
// Fails with ErrCapacity when capacity < 1 (a caller bug, never clamped)
// and with ErrOverflow when capacity plus the reserved slot and guard
// padding cannot be addressed as a slice. One extra slot beyond capacity
// is reserved internally to disambiguate full from empty.
func New[T any](capacity int, opts ...Option[T]) (*Queue[T], error) {
	if capacity < 1 {
		return nil, ErrCapacity
	}
	cfg := defaultConfig[T]()
	for _, opt := range opts {
		opt(&cfg)
	}
	pad := padSlots[T]()
	if uint64(capacity) > uint64(math.MaxInt)-2*pad-1 {
		return nil, ErrOverflow
	}
	slots := uint64(capacity) + 1
	total := int(slots + 2*pad)
	buf := cfg.alloc(total)
	if len(buf) < total {
		return nil, ErrAllocation
	}
	return &Queue[T]{
		buf:   buf[:total],
		slots: slots,
		pad:   pad,
	}, nil
}

// Enqueue adds an item, spinning while the queue is full. Producer only.
func (q *Queue[T]) Enqueue(item T) {
	w, next := q.claim()
	q.buf[q.pad+w] = item
	q.writeIdx.Store(next)
}

// TryEnqueue adds an item; returns false if full. Producer only.
func (q *Queue[T]) TryEnqueue(item T) bool {
	w, next, ok := q.tryClaim()
	if !ok {
		return false
	}
	q.buf[q.pad+w] = item
	q.writeIdx.Store(next)
	return true
}

// ForceEnqueue adds an item without a space check. When the queue is
// full this silently overwrites the oldest unread history; the consumer
// resumes at an implementation-defined surviving slot and FIFO order is
// not guaranteed across the overwrite. Intended for latest-value-wins
// feeds, never for strict FIFO pipelines. Producer only.
func (q *Queue[T]) ForceEnqueue(item T) {
	w := q.writeIdx.Load()
	next := w + 1
	if next == q.slots {
		next = 0
	}
	q.buf[q.pad+w] = item
	q.writeIdx.Store(next)
}

// EnqueueWith claims the next slot, spinning while the queue is full,
// and lets fill write the element in place. Replaces an extra element
// copy for large T. Producer only.
func (q *Queue[T]) EnqueueWith(fill func(*T)) {
	w, next := q.claim()
	fill(&q.buf[q.pad+w])
	q.writeIdx.Store(next)
}

// TryEnqueueWith is EnqueueWith without spinning; returns false if full.
// fill is not called on failure. Producer only.
func (q *Queue[T]) TryEnqueueWith(fill func(*T)) bool {
	w, next, ok := q.tryClaim()
	if !ok {
		return false
	}
	fill(&q.buf[q.pad+w])
	q.writeIdx.Store(next)
	return true
}

// ForceEnqueueWith is EnqueueWith without a space check; same overwrite
// semantics as ForceEnqueue. Producer only.
func (q *Queue[T]) ForceEnqueueWith(fill func(*T)) {
	w := q.writeIdx.Load()
	next := w + 1
	if next == q.slots {
		next = 0
	}
	fill(&q.buf[q.pad+w])
	q.writeIdx.Store(next)
}

// claim spins until a slot is free and returns the current and next
// write positions. The publish store remains the caller's duty so the
// element is in place before the index moves.
func (q *Queue[T]) claim() (w, next uint64) {
	w = q.writeIdx.Load()
	next = w + 1
	if next == q.slots {
		next = 0
	}
	for spins := uint(0); next == q.readCache; spins++ {
		q.readCache = q.readIdx.Load()
		if spins&spinYieldMask == spinYieldMask {
			runtime.Gosched()
		}
	}
	return w, next
}

// tryClaim refreshes the consumer-index cache at most once; ok is false
// when the queue is still full after the refresh.
func (q *Queue[T]) tryClaim() (w, next uint64, ok bool) {
	w = q.writeIdx.Load()
	next = w + 1
	if next == q.slots {
		next = 0
	}
	if next == q.readCache {
		q.readCache = q.readIdx.Load()
		if next == q.readCache {
			return 0, 0, false
		}
	}
	return w, next, true
}

// Dequeue removes and returns the oldest item, spinning while the queue
// is empty. Consumer only.
func (q *Queue[T]) Dequeue() T {
	r := q.readIdx.Load()
	for spins := uint(0); r == q.writeCache; spins++ {
		q.writeCache = q.writeIdx.Load()
		if spins&spinYieldMask == spinYieldMask {
			runtime.Gosched()
		}
	}
	return q.take(r)
}

// TryDequeue removes and returns the oldest item; ok is false if the
// queue is empty after one refresh of the producer-index cache.
// Consumer only.
func (q *Queue[T]) TryDequeue() (item T, ok bool) {
	r := q.readIdx.Load()
	if r == q.writeCache {
		q.writeCache = q.writeIdx.Load()
		if r == q.writeCache {
			var zero T
			return zero, false
		}
	}
	return q.take(r), true
}

// Front returns the oldest item in place without removing it, or nil if
// the queue is empty. The pointer is valid until Release or the next
// dequeue call; callers must not hold it past that. Consumer only.
func (q *Queue[T]) Front() *T {
	r := q.readIdx.Load()
	if r == q.writeCache {
		q.writeCache = q.writeIdx.Load()
		if r == q.writeCache {
			return nil
		}
	}
	return &q.buf[q.pad+r]
}

// Release discards the slot returned by Front without copying it out.
// A Release with no preceding successful Front is a no-op. Consumer only.
func (q *Queue[T]) Release() {
	r := q.readIdx.Load()
	if r == q.writeCache {
		q.writeCache = q.writeIdx.Load()
		if r == q.writeCache {
			return
		}
	}
	q.drop(r)
}

// take copies the element out, clears the slot and publishes the advance.
func (q *Queue[T]) take(r uint64) T {
	item := q.buf[q.pad+r]
	q.drop(r)
	return item
}

// drop clears the slot at r and advances the read index.
func (q *Queue[T]) drop(r uint64) {
	var zero T
	q.buf[q.pad+r] = zero
	next := r + 1
	if next == q.slots {
		next = 0
	}
	q.readIdx.Store(next)
}

// Len returns an instantaneous snapshot of the item count. Under
// concurrent mutation the value is an approximation by the time the
// caller observes it.
func (q *Queue[T]) Len() int {
	w := q.writeIdx.Load()
	r := q.readIdx.Load()
	if w >= r {
		return int(w - r)
	}
	return int(q.slots - r + w)
}

// Empty reports whether the queue held no items at the snapshot instant.
func (q *Queue[T]) Empty() bool {
	return q.writeIdx.Load() == q.readIdx.Load()
}

// Cap returns the usable capacity requested at construction, never the
// padded internal size.
func (q *Queue[T]) Cap() int {
	return int(q.slots - 1)
}
