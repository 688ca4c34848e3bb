package multipole

import (
	"runtime"
	"sync"
)

// Pair indexes two multipoles to be evaluated together.
type Pair struct {
	A, B Multipole
}

// minChunk is the smallest slice of pairs worth handing to a worker;
// below this the goroutine overhead dominates the kernel arithmetic.
const minChunk = 64

// EachPair evaluates independent pairs concurrently on a bounded
// worker pool and returns the interactions in input order.
func (e *Evaluator) EachPair(pairs []Pair) []Interaction {
	out := make([]Interaction, len(pairs))
	parallelFor(len(pairs), minChunk, func(start, end int) {
		for i := start; i < end; i++ {
			out[i] = e.Interact(pairs[i].A, pairs[i].B)
		}
	})
	return out
}

// TotalEnergy sums pair energies plus the scheme's self-energy over
// the particles appearing in the pair list exactly once each.
func (e *Evaluator) TotalEnergy(particles []Multipole, pairs []Pair) float64 {
	var mu sync.Mutex
	var total float64
	parallelFor(len(pairs), minChunk, func(start, end int) {
		var local float64
		for i := start; i < end; i++ {
			local += e.Interact(pairs[i].A, pairs[i].B).Energy
		}
		mu.Lock()
		total += local
		mu.Unlock()
	})
	return total + e.SelfEnergy(particles)
}

func workerCount(n, minChunk int) int {
	workers := runtime.GOMAXPROCS(0)
	if n <= minChunk || workers <= 1 {
		return 1
	}
	if n/minChunk < workers {
		workers = n / minChunk
	}
	if workers < 1 {
		workers = 1
	}
	return workers
}

// parallelFor splits [0, n) into contiguous chunks across a bounded
// number of goroutines.
func parallelFor(n, minChunk int, fn func(start, end int)) {
	workers := workerCount(n, minChunk)
	if workers == 1 {
		fn(0, n)
		return
	}

	chunk := (n + workers - 1) / workers

	var wg sync.WaitGroup
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		start := w * chunk
		end := start + chunk
		if end > n {
			end = n
		}
		go func(s, e int) {
			defer wg.Done()
			fn(s, e)
		}(start, end)
	}
	wg.Wait()
}
