package handler

import (
	"bytes"
	"sync"
)

const (
	initialBufferSize = 1 << 10
	// Impact reports across every district can be large; buffers that grow
	// past this are dropped instead of pinning the memory in the pool.
	maxRetainedBufferSize = 64 << 10
)

// bufferPool recycles response encoding buffers
type bufferPool struct {
	pool sync.Pool
}

func newBufferPool() *bufferPool {
	return &bufferPool{
		pool: sync.Pool{
			New: func() any {
				return bytes.NewBuffer(make([]byte, 0, initialBufferSize))
			},
		},
	}
}

func (p *bufferPool) get() *bytes.Buffer {
	return p.pool.Get().(*bytes.Buffer)
}

func (p *bufferPool) put(buf *bytes.Buffer) {
	if buf.Cap() > maxRetainedBufferSize {
		return
	}
	buf.Reset()
	p.pool.Put(buf)
}

var responseBuffers = newBufferPool()
