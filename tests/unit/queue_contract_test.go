// Package unit tests the queue through its public contract.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package unit

import (
	"testing"

	"github.com/momentics/hioload-spsc/api"
	"github.com/momentics/hioload-spsc/spsc"
)

func newQueue(t *testing.T, capacity int) api.Queue[int] {
	t.Helper()
	q, err := spsc.New[int](capacity)
	if err != nil {
		t.Fatalf("New(%d): %v", capacity, err)
	}
	return q
}

// TestQueue_EnqueueDequeue tests the basic producer/consumer cycle
// through the api.Queue contract.
func TestQueue_EnqueueDequeue(t *testing.T) {
	q := newQueue(t, 8)

	if !q.TryEnqueue(42) {
		t.Errorf("Expected TryEnqueue to return true")
	}

	if q.Len() != 1 {
		t.Errorf("Expected length 1, got %d", q.Len())
	}

	item, ok := q.TryDequeue()
	if !ok {
		t.Errorf("Expected TryDequeue to return true")
	}

	if item != 42 {
		t.Errorf("Expected item to be 42, got %d", item)
	}

	if q.Len() != 0 {
		t.Errorf("Expected length 0 after TryDequeue, got %d", q.Len())
	}
}

// TestQueue_Full tests behavior when the queue is full.
func TestQueue_Full(t *testing.T) {
	q := newQueue(t, 2)

	if !q.TryEnqueue(1) {
		t.Errorf("Expected first TryEnqueue to succeed")
	}

	if !q.TryEnqueue(2) {
		t.Errorf("Expected second TryEnqueue to succeed")
	}

	if q.TryEnqueue(3) {
		t.Errorf("Expected third TryEnqueue to fail when queue is full")
	}

	if q.Len() != 2 {
		t.Errorf("Expected length 2, got %d", q.Len())
	}
}

// TestQueue_Empty tests behavior when the queue is empty.
func TestQueue_Empty(t *testing.T) {
	q := newQueue(t, 4)

	_, ok := q.TryDequeue()
	if ok {
		t.Errorf("Expected TryDequeue to return false when queue is empty")
	}

	if !q.Empty() {
		t.Errorf("Expected Empty to report true")
	}

	if q.Front() != nil {
		t.Errorf("Expected Front to return nil when queue is empty")
	}
}

// TestQueue_Capacity tests capacity reporting.
func TestQueue_Capacity(t *testing.T) {
	q := newQueue(t, 16)

	if q.Cap() != 16 {
		t.Errorf("Expected capacity 16, got %d", q.Cap())
	}

	q.TryEnqueue(1)
	q.TryEnqueue(2)

	if q.Cap() != 16 {
		t.Errorf("Expected capacity 16 after adding items, got %d", q.Cap())
	}
}
