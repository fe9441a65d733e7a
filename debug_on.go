//go:build stridedebug

package stride

import (
	"sync"
	"unsafe"
)

const debug = true

// freed records the storage of every Array released by Free. Keys are kept
// as pointers so the memory is never reused while the build can still
// recognise a stale view of it.
var freed struct {
	mu    sync.Mutex
	bases map[unsafe.Pointer]struct{}
}

func markFreed(p unsafe.Pointer) {
	freed.mu.Lock()
	defer freed.mu.Unlock()
	if freed.bases == nil {
		freed.bases = make(map[unsafe.Pointer]struct{})
	}
	freed.bases[p] = struct{}{}
}

func isFreed(p unsafe.Pointer) bool {
	freed.mu.Lock()
	defer freed.mu.Unlock()
	_, ok := freed.bases[p]
	return ok
}
