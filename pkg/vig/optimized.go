package vig

import (
	"fmt"
	"math"
	"sort"
	"sync"
	"sync/atomic"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/gilchrisn/vig-segment/pkg/cnf"
	"github.com/gilchrisn/vig-segment/pkg/vigerr"
	"github.com/gilchrisn/vig-segment/pkg/weight"
)

// Optimized selects the multi-threaded, memory-budgeted batched
// aggregator at the call site — the "Optimized{threads, max_buffer}"
// arm of the Naive | Optimized sum type.
type Optimized struct {
	Threads   int   // T >= 1
	MaxBuffer int64 // B, a count of pair-write slots, not bytes
}

// pairEntry is a (neighbor, weight) write-slot cell in an active
// batch's flat buffer.
type pairEntry struct {
	Neighbor int32
	W        float64
}

const edgeBytes = 16     // Edge{U,V int32; W float64}
const pairEntryBytes = 16 // pairEntry{Neighbor int32; W float64}
const scaffoldBytesPerVar = 12 // offsets + counts + wptr, int32 each

// batchRange is a contiguous [start, end] inclusive variable range
// produced by Phase 3's greedy partition.
type batchRange struct {
	start, end int
}

// activeBatch is one of up to T batches made "live" for a round: its
// per-variable prefix offsets/counts, its flat write buffer, and the
// atomic write pointers threads fetch-and-add into.
type activeBatch struct {
	start, end int
	offsets    []int32 // local prefix offsets, length = end-start+1
	counts     []int32 // per-variable contribution, narrowed to int32
	buffer     []pairEntry
	wptr       []int32 // atomic; same length as offsets, init = offsets
}

// optState is the shared, round-scoped state every worker goroutine
// reads and (for thread 0) mutates. Fields touched only by thread 0
// during setup/teardown and read by all threads during fill/reduce are
// safe without further synchronization because the barrier itself
// establishes the happens-before edge.
type optState struct {
	clauses []cnf.Clause
	tau     int
	table   *weight.Table
	contrib []int64
	batches []batchRange

	varToActive []int32 // len n; -1 unless set by current round's setup
	active      []*activeBatch
	out         [][]Edge

	peakActiveBytes int64
	peakOutputBytes int64

	err error
}

// BuildOptimized runs the five-phase batched aggregator: contribution
// counting, memory planning, batching, round execution, and merge.
func BuildOptimized(f cnf.Formula, tau int, opt Optimized, logger zerolog.Logger) (*Graph, error) {
	const op = "vig.BuildOptimized"
	runID := uuid.New()
	log := logger.With().Str("run_id", runID.String()).Str("builder", "optimized").Logger()

	T := opt.Threads
	B := opt.MaxBuffer
	if T <= 0 {
		return nil, vigerr.New(vigerr.InvalidArgument, op, "thread count T must be >= 1")
	}
	if B <= 0 {
		return nil, vigerr.New(vigerr.InvalidArgument, op, "memory budget B must be >= 1")
	}

	n := f.NumVars()
	if n == 0 {
		return &Graph{N: 0, RunID: runID}, nil
	}

	// Phase 1 — contribution counts.
	contrib := make([]int64, n)
	sMaxObserved := 0
	var sumContrib int64
	for _, clause := range f.Clauses {
		s := clause.Size()
		if s < 2 || s > tau {
			continue
		}
		if s > sMaxObserved {
			sMaxObserved = s
		}
		for i := 0; i < s-1; i++ {
			u := cnf.Var(clause[i])
			d := int64(s - 1 - i)
			contrib[u] += d
			sumContrib += d
		}
	}
	var maxContrib int64
	for _, c := range contrib {
		if c > math.MaxInt32 {
			return nil, vigerr.New(vigerr.Overflow, op, fmt.Sprintf("per-variable contribution count %d exceeds 32-bit range", c))
		}
		maxContrib = max(maxContrib, c)
	}
	table := weight.NewTable(sMaxObserved)

	// Phase 2 — memory plan.
	P := B / int64(max(1, T-1))
	P = max(P, 1)
	bumpedToFit := false
	if P < maxContrib {
		P = maxContrib
		bumpedToFit = true
	}

	// Phase 3 — batching: greedily partition variables into contiguous
	// batches that each fit within P pair-write slots.
	batches := make([]batchRange, 0, 64)
	i := 0
	for i < n {
		start := i
		accum := contrib[start]
		j := start + 1
		for j < n && accum+contrib[j] <= P {
			accum += contrib[j]
			j++
		}
		batches = append(batches, batchRange{start, j - 1})
		i = j
	}
	K := len(batches)
	numRounds := 0
	if K > 0 {
		numRounds = (K + T - 1) / T
	}

	log.Debug().
		Int("nodes", n).
		Int("batches", K).
		Int("rounds", numRounds).
		Int64("P", P).
		Int64("sum_contrib", sumContrib).
		Bool("bumped_to_fit", bumpedToFit).
		Msg("optimized VIG memory plan")

	varToActive := make([]int32, n)
	for idx := range varToActive {
		varToActive[idx] = -1
	}

	st := &optState{
		clauses:     f.Clauses,
		tau:         tau,
		table:       table,
		contrib:     contrib,
		batches:     batches,
		varToActive: varToActive,
		out:         make([][]Edge, T),
	}

	// Phase 4 — round execution, T persistent workers, four barrier
	// waits per round (setup-done, fill-done, reduce-done, round-done).
	if K > 0 {
		barrier := newCyclicBarrier(T)
		var wg sync.WaitGroup
		wg.Add(T)
		for t := 0; t < T; t++ {
			go func(tid int) {
				defer wg.Done()
				runWorker(tid, T, numRounds, st, barrier)
			}(t)
		}
		wg.Wait()
	}

	if st.err != nil {
		return nil, st.err
	}

	// Phase 5 — merge.
	total := 0
	for _, edges := range st.out {
		total += len(edges)
	}
	merged := make([]Edge, 0, total)
	for _, edges := range st.out {
		merged = append(merged, edges...)
	}

	mem := MemoryAccounting{
		PeakActiveBatchBytes: st.peakActiveBytes,
		PeakOutputEdgeBytes:  st.peakOutputBytes,
		FinalEdgeListBytes:   int64(len(merged)) * edgeBytes,
		BumpedToFit:          bumpedToFit,
	}
	mem.TotalBytes = mem.PeakActiveBatchBytes + mem.PeakOutputEdgeBytes + mem.FinalEdgeListBytes

	log.Info().Int("edges", len(merged)).Int64("total_bytes", mem.TotalBytes).Msg("optimized VIG build complete")

	return &Graph{N: n, Edges: merged, Memory: mem, RunID: runID}, nil
}

func runWorker(tid, T, numRounds int, st *optState, barrier *cyclicBarrier) {
	C := len(st.clauses)
	for r := 0; r < numRounds; r++ {
		if tid == 0 {
			setupRound(st, r, T)
		}
		barrier.Wait() // setup-done

		if st.err == nil {
			lo := C * tid / T
			hi := C * (tid + 1) / T
			fillClauses(st, lo, hi)
		}
		barrier.Wait() // fill-done

		if st.err == nil && tid < len(st.active) {
			reduceBatch(st, tid)
		}
		barrier.Wait() // reduce-done

		if tid == 0 {
			teardownRound(st)
		}
		barrier.Wait() // round-done
	}
}

func setupRound(st *optState, round, T int) {
	lo := round * T
	hi := min(lo+T, len(st.batches))

	active := make([]*activeBatch, 0, hi-lo)
	var activeBytes int64

	for bi := lo; bi < hi; bi++ {
		br := st.batches[bi]
		size := br.end - br.start + 1
		offsets := make([]int32, size)
		counts := make([]int32, size)

		var accum int64
		for k := 0; k < size; k++ {
			c := st.contrib[br.start+k]
			if c > math.MaxInt32 {
				st.err = vigerr.New(vigerr.Overflow, "vig.BuildOptimized", "active-batch buffer size exceeds native size range")
				return
			}
			offsets[k] = int32(accum)
			counts[k] = int32(c)
			accum += c
		}
		if accum > math.MaxInt32 {
			st.err = vigerr.New(vigerr.Overflow, "vig.BuildOptimized", "active-batch buffer size exceeds native size range")
			return
		}

		wptr := make([]int32, size)
		copy(wptr, offsets)

		ab := &activeBatch{
			start:   br.start,
			end:     br.end,
			offsets: offsets,
			counts:  counts,
			buffer:  make([]pairEntry, accum),
			wptr:    wptr,
		}
		active = append(active, ab)
		activeBytes += int64(size)*scaffoldBytesPerVar + accum*pairEntryBytes

		for v := br.start; v <= br.end; v++ {
			st.varToActive[v] = int32(bi - lo)
		}
	}

	st.active = active
	st.peakActiveBytes = max(st.peakActiveBytes, activeBytes)
}

func fillClauses(st *optState, lo, hi int) {
	for ci := lo; ci < hi; ci++ {
		clause := st.clauses[ci]
		s := clause.Size()
		if s < 2 || s > st.tau {
			continue
		}
		w := st.table.Get(s)
		for i := 0; i < s-1; i++ {
			u := cnf.Var(clause[i])
			b := st.varToActive[u]
			if b < 0 {
				continue
			}
			ab := st.active[b]
			d := int32(s - 1 - i)
			idx := u - ab.start
			pos0 := atomic.AddInt32(&ab.wptr[idx], d) - d
			for j := i + 1; j < s; j++ {
				v := cnf.Var(clause[j])
				ab.buffer[int(pos0)+(j-i-1)] = pairEntry{Neighbor: int32(v), W: w}
			}
		}
	}
}

func reduceBatch(st *optState, tid int) {
	ab := st.active[tid]
	out := st.out[tid]
	for a := ab.start; a <= ab.end; a++ {
		k := a - ab.start
		lo := ab.offsets[k]
		hi := lo + ab.counts[k]
		slice := ab.buffer[lo:hi]
		if len(slice) == 0 {
			continue
		}
		// A radix sort on the 32-bit neighbor id is the recommended
		// implementation; SliceStable is the comparison-based fallback
		// the spec allows, since Go's sort guarantees stability.
		sort.SliceStable(slice, func(i, j int) bool { return slice[i].Neighbor < slice[j].Neighbor })

		runStart := 0
		for idx := 1; idx <= len(slice); idx++ {
			if idx < len(slice) && slice[idx].Neighbor == slice[runStart].Neighbor {
				continue
			}
			var sum float64
			for _, e := range slice[runStart:idx] {
				sum += e.W
			}
			out = append(out, Edge{U: int32(a), V: slice[runStart].Neighbor, W: sum})
			runStart = idx
		}
	}
	st.out[tid] = out
}

func teardownRound(st *optState) {
	for _, ab := range st.active {
		for v := ab.start; v <= ab.end; v++ {
			st.varToActive[v] = -1
		}
	}

	var outputBytes int64
	for _, edges := range st.out {
		outputBytes += int64(len(edges)) * edgeBytes
	}
	st.peakOutputBytes = max(st.peakOutputBytes, outputBytes)

	st.active = nil
}
