package pool

import "sync"

// BufferPool implements a pool of byte slices for efficient memory reuse.
type BufferPool struct {
	pool sync.Pool
	size int
}

// NewBufferPool creates a new buffer pool with buffers of the specified size.
func NewBufferPool(size int) *BufferPool {
	return &BufferPool{
		pool: sync.Pool{
			New: func() interface{} {
				buffer := make([]byte, 0, size)
				return &buffer
			},
		},
		size: size,
	}
}

// Get retrieves a buffer from the pool or creates a new one if none are available.
func (bp *BufferPool) Get() *[]byte {
	return bp.pool.Get().(*[]byte)
}

// Put returns a buffer to the pool for reuse.
func (bp *BufferPool) Put(buffer *[]byte) {
	// Reset buffer length but keep capacity
	*buffer = (*buffer)[:0]
	bp.pool.Put(buffer)
}

// IntRowPool implements a pool of int slices sized for dynamic-programming
// rows. Rows returned by Get are zero-filled up to the requested length.
type IntRowPool struct {
	pool sync.Pool
	size int
}

// NewIntRowPool creates a new pool of int rows with the given initial capacity.
func NewIntRowPool(size int) *IntRowPool {
	return &IntRowPool{
		pool: sync.Pool{
			New: func() interface{} {
				row := make([]int, 0, size)
				return &row
			},
		},
		size: size,
	}
}

// Get retrieves a row of the requested length from the pool.
func (rp *IntRowPool) Get(length int) *[]int {
	row := rp.pool.Get().(*[]int)
	if cap(*row) < length {
		*row = make([]int, length)
		return row
	}
	*row = (*row)[:length]
	for i := range *row {
		(*row)[i] = 0
	}
	return row
}

// Put returns a row to the pool for reuse.
func (rp *IntRowPool) Put(row *[]int) {
	*row = (*row)[:0]
	rp.pool.Put(row)
}
