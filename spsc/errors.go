// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Error definitions for the spsc package.

package spsc

import "errors"

var (
	// ErrCapacity indicates a requested capacity below one
	ErrCapacity = errors.New("spsc: capacity must be a positive number")

	// ErrOverflow indicates the capacity plus internal padding exceeds the
	// addressable slot range
	ErrOverflow = errors.New("spsc: capacity with padding exceeds addressable range, reduce queue size")

	// ErrAllocation indicates a custom allocator returned undersized storage
	ErrAllocation = errors.New("spsc: allocator returned undersized buffer")
)
