package stealpool

import (
	"sync"
	"time"
)

// Task is the unit of work the pool executes: an opaque, movable,
// zero-argument, void-returning callable. It carries no identity and no
// ordering key.
type Task = func()

const minDequeCapacity = 16

// StealingDeque is a mutable, ordered, double-ended buffer of Tasks.
// The owner operates at the front (LIFO: Push, TryPop, WaitAndPopIf);
// thieves operate at the back (FIFO-ish: TrySteal). All mutations happen
// under a single mutex, so the deque is never observed in a torn state.
//
// Push-to-front + owner-pop-from-front makes the most recently produced
// task the most likely to be popped next (cache locality for recursively
// split work) and the least likely to be stolen (thieves take the back).
type StealingDeque struct {
	mu   sync.Mutex
	cond *sync.Cond

	buf        []Task
	head       int // index of the front element
	size       int
	initialCap int

	workerID int
	profiler Profiler
}

// NewStealingDeque creates an empty deque with the given initial
// capacity (rounded up to minDequeCapacity). workerID and profiler are
// used only to key and forward Profiler events; profiler may be nil.
func NewStealingDeque(workerID int, capacity int, profiler Profiler) *StealingDeque {
	if capacity < minDequeCapacity {
		capacity = minDequeCapacity
	}
	d := &StealingDeque{
		buf:        make([]Task, capacity),
		initialCap: capacity,
		workerID:   workerID,
		profiler:   profiler,
	}
	d.cond = sync.NewCond(&d.mu)
	return d
}

// lock acquires d.mu on behalf of the deque's owner. Profiler events are
// attributed to d.workerID.
func (d *StealingDeque) lock() (unlock func()) {
	return d.lockAs(d.workerID)
}

// lockAs acquires d.mu on behalf of callerID, attributing Profiler events
// to callerID rather than d.workerID. Used by TrySteal, where the caller
// is a thief acquiring a peer's deque, not the deque's own owner.
func (d *StealingDeque) lockAs(callerID int) (unlock func()) {
	d.mu.Lock()
	if d.profiler != nil {
		d.profiler.OnLock(callerID)
	}
	return func() {
		d.mu.Unlock()
		if d.profiler != nil {
			d.profiler.OnUnlock(callerID)
		}
	}
}

// Push inserts t at the front and wakes one waiter.
func (d *StealingDeque) Push(t Task) {
	unlock := d.lock()
	d.growIfFull()
	d.head = (d.head - 1 + len(d.buf)) % len(d.buf)
	d.buf[d.head] = t
	d.size++
	unlock()
	d.cond.Signal()
}

// TryPop removes and returns the front task if the deque is non-empty.
// Non-blocking.
func (d *StealingDeque) TryPop() (Task, bool) {
	unlock := d.lock()
	defer unlock()
	return d.popFrontLocked()
}

// TrySteal removes and returns the back task if the deque is non-empty.
// Non-blocking; safe to call concurrently with the owner and other
// thieves. thiefID identifies the calling worker, not the deque's owner,
// and is what Profiler lock/unlock events are attributed to.
func (d *StealingDeque) TrySteal(thiefID int) (Task, bool) {
	unlock := d.lockAs(thiefID)
	defer unlock()
	if d.size == 0 {
		return nil, false
	}
	tailIdx := (d.head + d.size - 1) % len(d.buf)
	t := d.buf[tailIdx]
	d.buf[tailIdx] = nil
	d.size--
	return t, true
}

// WaitAndPopIf blocks until waitPred(empty) holds, then, still holding
// the lock, evaluates popPred(empty). If popPred returns true the front
// task is removed and returned; otherwise nothing is removed.
func (d *StealingDeque) WaitAndPopIf(waitPred, popPred func(empty bool) bool) (Task, bool) {
	d.mu.Lock()
	if d.profiler != nil {
		d.profiler.OnLock(d.workerID)
	}
	defer func() {
		d.mu.Unlock()
		if d.profiler != nil {
			d.profiler.OnUnlock(d.workerID)
		}
	}()

	start := time.Now()
	for !waitPred(d.size == 0) {
		d.cond.Wait()
	}
	if d.profiler != nil {
		d.profiler.OnWait(d.workerID, time.Since(start))
	}

	if !popPred(d.size == 0) {
		return nil, false
	}
	return d.popFrontLocked()
}

// popFrontLocked must be called with d.mu held.
func (d *StealingDeque) popFrontLocked() (Task, bool) {
	if d.size == 0 {
		return nil, false
	}
	t := d.buf[d.head]
	d.buf[d.head] = nil
	d.head = (d.head + 1) % len(d.buf)
	d.size--
	return t, true
}

// Clear empties the deque and returns the number of tasks dropped.
// Tasks already dequeued and mid-execution are unaffected.
func (d *StealingDeque) Clear() int {
	unlock := d.lock()
	defer unlock()
	n := d.size
	d.buf = make([]Task, d.initialCap)
	d.head = 0
	d.size = 0
	return n
}

// Notify wakes every waiter without modifying the deque. Used to break
// blocked workers out of WaitAndPopIf for shutdown or quiescence checks.
func (d *StealingDeque) Notify() {
	d.cond.Broadcast()
}

// Empty reports whether the deque appeared empty at the instant the lock
// was held. Treat the result as a hint unless you hold the lock yourself.
func (d *StealingDeque) Empty() bool {
	unlock := d.lock()
	defer unlock()
	return d.size == 0
}

// growIfFull doubles the backing buffer when full. Caller holds d.mu.
func (d *StealingDeque) growIfFull() {
	if d.size < len(d.buf) {
		return
	}
	grown := make([]Task, len(d.buf)*2)
	for i := 0; i < d.size; i++ {
		grown[i] = d.buf[(d.head+i)%len(d.buf)]
	}
	d.buf = grown
	d.head = 0
}
