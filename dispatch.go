package tridiag

import (
	"sync"
)

// dispatchRanges fans groups of work out across worker goroutines and waits
// for completion. Each worker owns a contiguous range of groups to maximize
// cache reuse; run is invoked once per worker with its half-open
// [first, last) range.
func dispatchRanges(groups, workers int, run func(first, last int)) {
	// Handle edge case where there is no work
	if groups == 0 {
		return
	}
	if workers > groups/MinGroupsPerWorker {
		workers = groups / MinGroupsPerWorker
	}
	if workers <= 1 {
		run(0, groups)
		return
	}

	// Cache-aware scheduling: each worker processes multiple groups
	groupsPerWorker := (groups + workers - 1) / workers

	var wg sync.WaitGroup
	wg.Add(workers)
	for workerID := 0; workerID < workers; workerID++ {
		first := workerID * groupsPerWorker
		last := first + groupsPerWorker
		if last > groups {
			last = groups
		}
		go func(first, last int) {
			defer wg.Done()
			run(first, last)
		}(first, last)
	}
	wg.Wait()
}

// runRows launches one goroutine per row of a system and waits for all of
// them. Spawning is the synchronization point: writes made before runRows are
// visible to every row goroutine.
func runRows(rows int, row func(k int)) {
	var wg sync.WaitGroup
	wg.Add(rows)
	for k := 0; k < rows; k++ {
		go func(k int) {
			defer wg.Done()
			row(k)
		}(k)
	}
	wg.Wait()
}
