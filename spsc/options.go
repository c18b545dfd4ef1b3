// File: spsc/options.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Construction options for the SPSC queue.

package spsc

// config collects construction-time settings.
type config[T any] struct {
	alloc func(n int) []T
}

func defaultConfig[T any]() config[T] {
	return config[T]{
		alloc: func(n int) []T { return make([]T, n) },
	}
}

// Option configures queue construction.
type Option[T any] func(*config[T])

// WithAllocator supplies the slot storage allocation, e.g. to place the
// buffer in hugepage-backed or pool-managed memory. alloc must return a
// slice of length at least n; New fails with ErrAllocation otherwise.
func WithAllocator[T any](alloc func(n int) []T) Option[T] {
	return func(c *config[T]) {
		c.alloc = alloc
	}
}
