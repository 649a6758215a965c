package sim

import "sync"

// deltaPool recycles staging buffers for the parallel sweep. Buffers are
// zeroed on Put so a fresh Get always starts clean.
type deltaPool struct {
	pool sync.Pool
	size int
}

func newDeltaPool(size int) *deltaPool {
	return &deltaPool{
		size: size,
		pool: sync.Pool{
			New: func() interface{} {
				return make([]float64, size)
			},
		},
	}
}

func (p *deltaPool) Get() []float64 {
	return p.pool.Get().([]float64)
}

func (p *deltaPool) Put(buf []float64) {
	if len(buf) == p.size {
		for i := range buf {
			buf[i] = 0
		}
		p.pool.Put(buf)
	}
}
