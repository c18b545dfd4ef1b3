// Package spsc
// Author: momentics <momentics@gmail.com>
//
// Bounded, lock-free single-producer/single-consumer queue for hioload-spsc.
// Fixed-capacity circular buffer with cache-line-isolated indices and
// thread-private index caches, designed for minimum cross-core cache
// traffic in latency-sensitive pipelines.
// See queue.go for the engine, options.go for construction options.
package spsc
