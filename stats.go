package stealpool

// Stats is a snapshot of pool-wide and per-worker counters. It is an
// always-on, passive counterpart to the optional Profiler: no lock is
// held while gathering it, so the figures may be slightly inconsistent
// relative to each other under concurrent load.
type Stats struct {
	// Submitted is the lifetime total of tasks accepted by Add (a nil
	// task or a call after Close is not counted).
	Submitted int64

	// Completed is the lifetime total of tasks that finished executing,
	// including those that panicked. Tasks dropped by ClearTasks or
	// abandoned on a WaitCurrent Close are never completed.
	Completed int64

	// Outstanding is the counter WaitTasks is waiting to reach zero:
	// submitted minus completed, minus the tasks dropped by ClearTasks or
	// dequeued by a worker after Close began and never run.
	Outstanding int64

	// NumWorkers is the fixed number of workers in the pool.
	NumWorkers int

	// Workers holds one entry per worker, in worker-id order.
	Workers []WorkerStats
}

// WorkerStats is a snapshot of counters for one worker.
type WorkerStats struct {
	WorkerID      int
	TasksExecuted uint64
	TasksStolen   uint64
}

// Stats returns a snapshot of the pool's current counters.
func (p *Pool) Stats() Stats {
	workers := make([]WorkerStats, len(p.workers))
	for i, w := range p.workers {
		workers[i] = WorkerStats{
			WorkerID:      w.id,
			TasksExecuted: w.tasksExecuted.Load(),
			TasksStolen:   w.tasksStolen.Load(),
		}
	}

	return Stats{
		Submitted:   p.submitted.Load(),
		Completed:   p.completed.Load(),
		Outstanding: p.outstanding.Load(),
		NumWorkers:  len(p.workers),
		Workers:     workers,
	}
}
