package model

import "sync"

// GridToPool hands a scratch grid back to the pool, if there is one
func GridToPool(grid *Grid, pool *GridPool) {
	if pool == nil || grid == nil {
		return
	}

	pool.Put(grid)
}

// GridPool recycles the scratch buffers used while advancing a generation
type GridPool struct {
	pool sync.Pool
}

func NewGridPool() *GridPool {
	return &GridPool{
		pool: sync.Pool{
			New: func() any {
				return &Grid{}
			},
		},
	}
}

// Get retrieves an all-dead grid with the requested dimensions
func (p *GridPool) Get(rows, cols int) *Grid {
	g := p.pool.Get().(*Grid)
	g.Reset(rows, cols)
	return g
}

// Put returns a grid to the pool
func (p *GridPool) Put(g *Grid) {
	p.pool.Put(g)
}
