package tridiag

import (
	"sync"
)

// barrier is a reusable synchronization point for a fixed number of parties.
// Every party blocks in wait until all of them have arrived, then the round
// is released and the barrier resets for the next one.
type barrier struct {
	mu      sync.Mutex
	cond    *sync.Cond
	parties int
	waiting int
	round   uint64
}

func newBarrier(parties int) *barrier {
	b := &barrier{parties: parties}
	b.cond = sync.NewCond(&b.mu)
	return b
}

// wait blocks until all parties have called it for the current round.
// Writes made by any party before its wait are visible to every party after
// wait returns.
func (b *barrier) wait() {
	b.mu.Lock()
	round := b.round
	b.waiting++
	if b.waiting == b.parties {
		b.waiting = 0
		b.round++
		b.cond.Broadcast()
		b.mu.Unlock()
		return
	}
	for round == b.round {
		b.cond.Wait()
	}
	b.mu.Unlock()
}
