package extract

import (
	"sync"

	"cdox/types"
)

// runWorkers fans the file jobs out to a fixed pool of goroutines and
// gathers their results. Each file is processed independently with no
// shared mutable state; result order is not guaranteed and callers
// sort before returning.
func runWorkers[R any](files []types.FileJob, jobs int, process func(types.FileJob) R) []R {
	if len(files) == 0 {
		return nil
	}

	results := make(chan R, 128)
	jobQueue := make(chan types.FileJob, 128)
	var wg sync.WaitGroup

	workerCount := jobs
	if workerCount < 1 {
		workerCount = 1
	}
	if workerCount > len(files) {
		workerCount = len(files)
	}

	worker := func() {
		defer wg.Done()
		for job := range jobQueue {
			results <- process(job)
		}
	}

	wg.Add(workerCount)
	for i := 0; i < workerCount; i++ {
		go worker()
	}

	go func() {
		for _, f := range files {
			jobQueue <- f
		}
		close(jobQueue)
	}()

	go func() {
		wg.Wait()
		close(results)
	}()

	var all []R
	for r := range results {
		all = append(all, r)
	}

	return all
}
