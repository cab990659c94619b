package protparam

import (
	"context"
	"runtime"
	"sync"
)

// BatchConfig controls RunBatch.
type BatchConfig struct {
	Workers int // <= 0 uses runtime.NumCPU()
}

// Summary is the batch level view of per-record outcomes.
type Summary struct {
	Total    int
	Complete int
	Failed   int
}

// RunBatch analyses seqs on a fixed worker pool. Results come back in input
// order whatever the completion order. A failed record never stops the batch;
// cancellation is checked between records, and a cancelled batch returns the
// results finished so far (unfinished ones stay Pending) with ctx.Err().
func RunBatch(ctx context.Context, seqs []Sequence, cfg BatchConfig) ([]Result, Summary, error) {
	numWorkers := cfg.Workers
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}

	results := make([]Result, len(seqs))
	for i, s := range seqs {
		results[i] = Result{Index: i, ID: s.ID, State: Pending}
	}

	jobs := make(chan int, numWorkers*2)
	var wg sync.WaitGroup

	// Worker pool
	for w := 0; w < numWorkers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				if ctx.Err() != nil {
					continue // drain
				}
				res := Assemble(seqs[i])
				res.Index = i
				results[i] = res // each index is owned by one job
			}
		}()
	}

	// Feed indices
feed:
	for i := range seqs {
		select {
		case <-ctx.Done():
			break feed
		case jobs <- i:
		}
	}
	close(jobs)
	wg.Wait()

	sum := Summarize(results)
	return results, sum, ctx.Err()
}

// Summarize counts outcomes in results.
func Summarize(results []Result) Summary {
	s := Summary{Total: len(results)}
	for _, r := range results {
		switch r.State {
		case Complete:
			s.Complete++
		case Failed:
			s.Failed++
		}
	}
	return s
}
