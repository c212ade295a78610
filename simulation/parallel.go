package simulation

import (
	"math/rand"
	"runtime"
	"sync"
)

// GameJob represents a single simulation job
type GameJob struct {
	SimID int
	Seed  uint64
}

// RunBatchParallel executes batch simulations using one worker per CPU
func RunBatchParallel(cfg Config, numGames int, seed uint64) AggregatedStats {
	return RunBatchParallelN(cfg, numGames, seed, 0)
}

// RunBatchParallelN executes batch simulations using numWorkers workers
// (0 = one per CPU). Game seeds are drawn exactly as in RunBatch, so both
// produce the same games. Each game is searched on a single goroutine.
func RunBatchParallelN(cfg Config, numGames int, seed uint64, numWorkers int) AggregatedStats {
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}
	numGames = max(numGames, 0)

	jobs := make(chan GameJob, numGames)
	results := make(chan GameResult, numGames)

	var wg sync.WaitGroup

	// Start workers
	for w := 0; w < numWorkers; w++ {
		wg.Add(1)
		go worker(&wg, jobs, results, cfg)
	}

	// Queue all simulation jobs with deterministic seeds
	rng := rand.New(rand.NewSource(int64(seed)))
	for i := 0; i < numGames; i++ {
		jobs <- GameJob{
			SimID: i,
			Seed:  rng.Uint64(),
		}
	}
	close(jobs)

	// Wait for all workers to complete, then close results
	go func() {
		wg.Wait()
		close(results)
	}()

	return aggregateParallelResults(cfg.Players, results, numGames)
}

// worker processes simulation jobs from the jobs channel
func worker(wg *sync.WaitGroup, jobs <-chan GameJob, results chan<- GameResult, cfg Config) {
	defer wg.Done()

	for job := range jobs {
		results <- RunSingleGame(cfg, job.Seed)
	}
}

// aggregateParallelResults collects all results and computes aggregate statistics
func aggregateParallelResults(players int, results <-chan GameResult, numGames int) AggregatedStats {
	allResults := make([]GameResult, 0, numGames)

	for result := range results {
		allResults = append(allResults, result)
	}

	return aggregateResults(players, allResults)
}
