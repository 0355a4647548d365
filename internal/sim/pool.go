package sim

import "sync"

// TrailPool recycles trail buffers across reseeds.
type TrailPool struct {
	pool sync.Pool
}

func NewTrailPool() *TrailPool {
	return &TrailPool{
		pool: sync.Pool{
			New: func() interface{} {
				return new(Trail)
			},
		},
	}
}

// Get returns an empty trail.
func (p *TrailPool) Get() *Trail {
	t := p.pool.Get().(*Trail)
	t.Reset()
	return t
}

func (p *TrailPool) Put(t *Trail) {
	if t == nil {
		return
	}
	t.Reset()
	p.pool.Put(t)
}
