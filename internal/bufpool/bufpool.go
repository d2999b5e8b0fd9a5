// Package bufpool provides reusable copy buffers for file transfers.
//
// The pool hands out fixed-size byte slices for io.CopyBuffer, so copying
// many files in a row reuses one buffer instead of allocating per file.
// All operations are safe for concurrent use via sync.Pool.
package bufpool

import (
	"sync"
)

// Size is the length of every pooled copy buffer (1MB).
const Size = 1 << 20

var pool = sync.Pool{
	New: func() any {
		buf := make([]byte, Size)
		return &buf
	},
}

// Get returns a copy buffer of length Size.
// The caller must call Put when finished with the buffer.
func Get() []byte {
	return *pool.Get().(*[]byte)
}

// Put returns a buffer obtained from Get to the pool.
// Buffers with any other capacity are dropped and garbage collected.
func Put(buf []byte) {
	if cap(buf) != Size {
		return
	}
	full := buf[:cap(buf)]
	pool.Put(&full)
}
