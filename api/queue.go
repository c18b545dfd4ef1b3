// Package api
// Author: momentics@gmail.com
//
// Bounded single-producer/single-consumer queue contract.

package api

// Queue is the SPSC bounded queue contract. Exactly one goroutine may call
// the producer methods and exactly one goroutine may call the consumer
// methods, concurrently with each other.
type Queue[T any] interface {
	// Enqueue adds an item, spinning while the queue is full. Producer only.
	Enqueue(item T)
	// TryEnqueue adds an item, returns false if full. Producer only.
	TryEnqueue(item T) bool
	// ForceEnqueue adds an item unconditionally, overwriting unread history
	// when the queue is full. Producer only.
	ForceEnqueue(item T)

	// EnqueueWith claims the next slot, spinning while the queue is full,
	// and lets fill construct the element in place. Producer only.
	EnqueueWith(fill func(*T))
	// TryEnqueueWith is EnqueueWith without spinning; returns false if
	// full, in which case fill is not called. Producer only.
	TryEnqueueWith(fill func(*T)) bool
	// ForceEnqueueWith is EnqueueWith without a space check; same
	// overwrite semantics as ForceEnqueue. Producer only.
	ForceEnqueueWith(fill func(*T))

	// Dequeue removes the oldest item, spinning while the queue is empty.
	// Consumer only.
	Dequeue() T
	// TryDequeue removes the oldest item, ok false if empty. Consumer only.
	TryDequeue() (T, bool)
	// Front returns the oldest item in place without removing it, nil if
	// empty. The pointer is valid until Release or the next dequeue.
	// Consumer only.
	Front() *T
	// Release discards the item returned by Front. Consumer only.
	Release()

	// Len returns an instantaneous snapshot of the item count.
	Len() int
	// Empty reports whether the queue held no items at the snapshot instant.
	Empty() bool
	// Cap returns the fixed usable capacity.
	Cap() int
}
