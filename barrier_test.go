package tridiag

import (
	"sync"
	"testing"
)

// TestBarrierRounds runs many release rounds through one barrier and checks
// that no party ever observes a half-written round.
func TestBarrierRounds(t *testing.T) {
	const parties = 8
	const rounds = 64

	bar := newBarrier(parties)
	data := make([]int, parties)

	var wg sync.WaitGroup
	errs := make(chan string, parties)
	for p := 0; p < parties; p++ {
		wg.Add(1)
		go func(p int) {
			defer wg.Done()
			for r := 1; r <= rounds; r++ {
				data[p] = r
				bar.wait()
				for q := 0; q < parties; q++ {
					if data[q] != r {
						errs <- "observed a stale write after the barrier"
						return
					}
				}
				bar.wait()
			}
		}(p)
	}
	wg.Wait()
	close(errs)

	for msg := range errs {
		t.Error(msg)
	}
}

// TestBarrierSingleParty checks that a one-party barrier never blocks.
func TestBarrierSingleParty(t *testing.T) {
	bar := newBarrier(1)
	for i := 0; i < 100; i++ {
		bar.wait()
	}
	if bar.round != 100 {
		t.Errorf("round = %d, want 100", bar.round)
	}
}
