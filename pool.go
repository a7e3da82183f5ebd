package stealpool

import (
	cryptorand "crypto/rand"
	"encoding/binary"
	"math/rand/v2"
	"runtime"
	"sync"
	"sync/atomic"
)

// Pool is a fixed-size work-stealing goroutine pool. Each worker owns a
// private StealingDeque; idle workers steal from the tails of peer
// deques. Workers never outlive the Pool: Close joins every worker
// goroutine before returning.
type Pool struct {
	config  Config
	workers []*worker

	terminated  atomic.Bool
	outstanding atomic.Int64
	submitted   atomic.Int64
	completed   atomic.Int64

	wg sync.WaitGroup

	// submitRand is the single generator behind randomIndex, shared by
	// Add's victim selection and every worker's steal callback. Both
	// paths are inherently multi-writer (arbitrary caller goroutines for
	// Add, any worker's goroutine for steal), so access is serialized by
	// submitMu rather than splitting into one generator per caller.
	submitMu   sync.Mutex
	submitRand *rand.Rand
}

// NewPool creates a pool of threadCount workers. threadCount must be >=
// 1. Workers start immediately; the pool is ready to accept Add/ForEach
// calls as soon as NewPool returns.
func NewPool(threadCount int, opts ...Option) (*Pool, error) {
	if threadCount < 1 {
		return nil, ErrInvalidThreadCount
	}

	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	p := &Pool{
		config:     cfg,
		workers:    make([]*worker, threadCount),
		submitRand: rand.New(rand.NewPCG(seed64(), seed64())),
	}

	for i := 0; i < threadCount; i++ {
		p.workers[i] = newWorker(i, p, cfg.QueueCapacity)
	}

	for _, w := range p.workers {
		p.wg.Add(1)
		go func(w *worker) {
			defer p.wg.Done()
			w.run()
		}(w)
	}

	return p, nil
}

func seed64() uint64 {
	var b [8]byte
	if _, err := cryptorand.Read(b[:]); err != nil {
		// crypto/rand failing is not a scenario this pool needs to
		// survive gracefully; fall back to a fixed, non-secret seed so
		// construction still succeeds.
		return 0x9e3779b97f4a7c15
	}
	return binary.LittleEndian.Uint64(b[:])
}

// Add enqueues task for eventual execution on a uniformly random victim
// worker. Returns immediately. A nil task or a call after Close is
// silently dropped: spec's external interface defines Add as returning
// nothing, so there is no channel to report either condition through.
func (p *Pool) Add(task Task) {
	if task == nil || p.terminated.Load() {
		return
	}

	p.outstanding.Add(1)
	p.submitted.Add(1)

	idx := p.randomIndex()
	p.workers[idx].deque.Push(task)
}

func (p *Pool) randomIndex() int {
	p.submitMu.Lock()
	defer p.submitMu.Unlock()
	return p.submitRand.IntN(len(p.workers))
}

// steal is the callback every worker uses to acquire work from a peer.
// It starts at a uniform random index and scans all N workers in order
// from there, returning the first successful steal. thiefID identifies
// the calling worker, so the victim's Profiler events are attributed to
// the thief rather than the victim itself.
func (p *Pool) steal(thiefID int) (Task, bool) {
	if p.terminated.Load() {
		return nil, false
	}

	n := len(p.workers)
	start := p.randomIndex()

	for i := 0; i < n; i++ {
		j := (start + i) % n
		if task, ok := p.workers[j].deque.TrySteal(thiefID); ok {
			return task, true
		}
	}
	return nil, false
}

// ClearTasks drops every queued-but-not-started task across all workers
// and returns how many were dropped. outstanding is decremented by the
// same amount, so WaitTasks does not hang on work that will never run.
// Tasks already dequeued and executing are unaffected.
func (p *Pool) ClearTasks() int {
	total := 0
	for _, w := range p.workers {
		total += w.deque.Clear()
	}
	if total > 0 {
		p.outstanding.Add(-int64(total))
	}
	return total
}

// WaitTasks blocks the calling goroutine until every task submitted
// before this call has finished executing. Because Add increments
// outstanding before the task becomes visible to any consumer, and a
// worker decrements it only after the task returns, this is an exact
// barrier for the current snapshot; concurrent submissions made after
// the call may extend the wait.
func (p *Pool) WaitTasks() {
	for p.outstanding.Load() != 0 {
		runtime.Gosched()
	}
}

// Close tears down the pool according to its DestructionPolicy.
//
// WaitCurrent: unstarted tasks are abandoned, tasks already running
// finish, and every worker goroutine is joined before Close returns.
//
// WaitAll: equivalent to WaitTasks followed by WaitCurrent teardown.
//
// Close is idempotent-ish: a second call simply re-signals already
// terminated workers and waits again, which returns immediately.
func (p *Pool) Close() {
	if p.config.Policy == WaitAll {
		p.WaitTasks()
	}

	p.terminated.Store(true)
	for _, w := range p.workers {
		w.terminate()
	}
	p.wg.Wait()
}

// NumWorkers returns the fixed number of workers in the pool.
func (p *Pool) NumWorkers() int {
	return len(p.workers)
}

// IsClosed reports whether Close has been called.
func (p *Pool) IsClosed() bool {
	return p.terminated.Load()
}
