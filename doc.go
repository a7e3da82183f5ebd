// Package stealpool provides a work-stealing goroutine pool.
//
// A fixed number of workers each own a private stealing deque of tasks.
// A worker takes its own work from the front (LIFO — best cache
// locality for recursively split work); idle workers steal from the
// back of a peer's deque (FIFO-ish — the oldest, least contended end).
//
// # Quick Start
//
//	pool, err := stealpool.NewPool(4)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer pool.Close()
//
//	for i := 0; i < 100; i++ {
//	    i := i
//	    pool.Add(func() {
//	        fmt.Println("task", i)
//	    })
//	}
//	pool.WaitTasks()
//
// # Bulk Apply
//
// ForEach recursively splits a slice across the pool's workers:
//
//	xs := make([]int, 1000)
//	stealpool.ForEach(pool, xs, func(x *int) { *x++ })
//	pool.WaitTasks()
//
// # Shutdown Policies
//
// WaitCurrent (the default) abandons queued-but-not-started tasks on
// Close; tasks already running finish first.
//
//	pool, _ := stealpool.NewPool(4, stealpool.WithPolicy(stealpool.WaitCurrent))
//
// WaitAll drains every queued task before tearing down workers —
// equivalent to calling WaitTasks followed by a WaitCurrent close.
//
//	pool, _ := stealpool.NewPool(4, stealpool.WithPolicy(stealpool.WaitAll))
//
// # Error Handling
//
// Tasks may panic without crashing a worker; the panic is recovered at
// the worker boundary and the task is still counted as completed. Use
// WithPanicHandler to observe panics:
//
//	pool, _ := stealpool.NewPool(4, stealpool.WithPanicHandler(func(r any) {
//	    log.Printf("task panicked: %v", r)
//	}))
//
// # Observability
//
// Stats returns an always-on snapshot of submitted/completed counters.
// A Profiler can additionally be installed to receive lock, wait, and
// task-duration events from every worker's deque:
//
//	pool, _ := stealpool.NewPool(4, stealpool.WithProfiler(myProfiler))
//
// # Non-goals
//
// This pool does not order tasks, schedule by priority, return task
// results, cancel a running task, resize at runtime, or guarantee fair
// stealing. It is deliberately a thin scheduling substrate that other
// concurrency primitives can be built on top of.
package stealpool
