package stealpool

import (
	"sync/atomic"
	"time"
)

// worker owns one stealing deque and one goroutine running the
// fetch-execute loop. It never outlives the Pool that owns it: the pool's
// Close joins every worker's goroutine before returning.
type worker struct {
	id   int
	pool *Pool

	deque *StealingDeque

	// terminated is write-once monotonic false->true.
	terminated atomic.Bool

	tasksExecuted atomic.Uint64
	tasksStolen   atomic.Uint64
}

func newWorker(id int, pool *Pool, queueCapacity int) *worker {
	return &worker{
		id:    id,
		pool:  pool,
		deque: NewStealingDeque(id, queueCapacity, pool.config.Profiler),
	}
}

// run is the worker's fetch-execute loop. It returns once terminated is
// observed with no task in hand.
func (w *worker) run() {
	if len(w.pool.config.CPUAffinity) > 0 {
		cpu := w.pool.config.CPUAffinity[w.id%len(w.pool.config.CPUAffinity)]
		_ = pinToCPU(cpu) // best-effort: affinity is a tuning hint, not a correctness requirement
	}

	if w.pool.config.OnWorkerStart != nil {
		w.pool.config.OnWorkerStart(w.id)
	}

	for !w.terminated.Load() {
		task, ok := w.findTask()
		if !ok {
			continue
		}
		if w.terminated.Load() {
			// Lost the race with shutdown after dequeuing: the task is
			// dropped, matching WaitCurrent's "unstarted tasks are
			// abandoned" contract.
			w.pool.outstanding.Add(-1)
			continue
		}
		w.runTask(task)
	}

	if w.pool.config.OnWorkerStop != nil {
		w.pool.config.OnWorkerStop(w.id)
	}
}

// findTask attempts, in order: the owner's LIFO fast path, a steal from a
// peer, then a blocking wait on the owner's own deque.
func (w *worker) findTask() (Task, bool) {
	if task, ok := w.deque.TryPop(); ok {
		return task, true
	}

	if task, ok := w.pool.steal(w.id); ok {
		w.tasksStolen.Add(1)
		return task, true
	}

	return w.deque.WaitAndPopIf(
		func(empty bool) bool { return w.terminated.Load() || !empty },
		func(empty bool) bool { return !empty && !w.terminated.Load() },
	)
}

// runTask executes task with panic recovery, then reports completion.
func (w *worker) runTask(task Task) {
	start := time.Now()
	defer func() {
		if r := recover(); r != nil {
			if w.pool.config.PanicHandler != nil {
				w.pool.config.PanicHandler(r)
			}
		}
		if w.pool.config.Profiler != nil {
			w.pool.config.Profiler.OnTask(w.id, time.Since(start))
		}
		w.tasksExecuted.Add(1)
		w.pool.outstanding.Add(-1)
		w.pool.completed.Add(1)
	}()

	task()
}

// terminate sets the terminated flag, wakes any blocked waiter, and
// returns. Idempotent.
func (w *worker) terminate() {
	w.terminated.Store(true)
	w.deque.Notify()
}
