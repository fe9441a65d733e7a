//go:build !stridedebug

package stride

import "unsafe"

// debug enables bounds assertions on the unchecked accessors, and panics on
// access through a view of a freed Array. Build with -tags stridedebug to
// turn it on.
const debug = false

func markFreed(unsafe.Pointer) {}

func isFreed(unsafe.Pointer) bool { return false }
