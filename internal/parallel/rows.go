package parallel

import "sync"

// MinBandRows is the smallest band handed to a worker. Smaller jobs run on
// the calling goroutine.
const MinBandRows = 16

var (
	defaultOnce sync.Once
	defaultPool *WorkerPool
)

// Default returns the process-wide pool, started on first use.
func Default() *WorkerPool {
	defaultOnce.Do(func() {
		defaultPool = NewWorkerPool(0)
	})
	return defaultPool
}

// Rows calls fn for contiguous bands [lo, hi) covering [0, n) and returns
// when all bands are done. Bands never overlap, so fn may write rows of a
// shared buffer without locking.
func (p *WorkerPool) Rows(n int, fn func(lo, hi int)) {
	if n <= 0 {
		return
	}
	bands := min(p.workers*2, n/MinBandRows)
	if bands <= 1 || !p.IsRunning() {
		fn(0, n)
		return
	}

	work := make([]func(), 0, bands)
	for i := range bands {
		lo, hi := i*n/bands, (i+1)*n/bands
		work = append(work, func() { fn(lo, hi) })
	}
	p.ExecuteAll(work)
}
