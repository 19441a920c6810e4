package vig

import "sync"

// cyclicBarrier rendezvous-synchronizes a fixed number of parties, round
// after round: once `parties` goroutines have called Wait, all are
// released together and the barrier resets for the next round. Built
// from a sync.Mutex, a sync.Cond and a generation counter.
type cyclicBarrier struct {
	mu         sync.Mutex
	cond       *sync.Cond
	parties    int
	count      int
	generation int
}

func newCyclicBarrier(parties int) *cyclicBarrier {
	b := &cyclicBarrier{parties: parties}
	b.cond = sync.NewCond(&b.mu)
	return b
}

// Wait blocks until every party has called Wait for the current
// generation, then releases all of them and advances to the next
// generation.
func (b *cyclicBarrier) Wait() {
	b.mu.Lock()
	defer b.mu.Unlock()

	gen := b.generation
	b.count++
	if b.count == b.parties {
		b.count = 0
		b.generation++
		b.cond.Broadcast()
		return
	}
	for gen == b.generation {
		b.cond.Wait()
	}
}
