package sim

import (
	"sync"

	"github.com/san-kum/heatgrid/internal/thermo"
)

// stageParallel splits the pair sweep across workers. Staging only reads
// pre-tick temperatures, so workers never race on body state; each stages
// into its own pooled buffer, merged here before the commit.
func (s *Scheduler) stageParallel(dt float64) {
	workers := s.workers
	if workers > len(s.pairs) {
		workers = len(s.pairs)
	}

	chunk := (len(s.pairs) + workers - 1) / workers
	buffers := make([][]float64, 0, workers)

	var wg sync.WaitGroup
	for lo := 0; lo < len(s.pairs); lo += chunk {
		hi := lo + chunk
		if hi > len(s.pairs) {
			hi = len(s.pairs)
		}

		buf := s.pool.Get()
		buffers = append(buffers, buf)

		wg.Add(1)
		go func(pairs []thermo.Pair, buf []float64) {
			defer wg.Done()
			s.stage(dt, pairs, buf)
		}(s.pairs[lo:hi], buf)
	}
	wg.Wait()

	for _, buf := range buffers {
		for i, d := range buf {
			s.deltas[i] += d
		}
		s.pool.Put(buf)
	}
}
