package stealpool

import (
	"runtime"
	"testing"
)

func BenchmarkPool_Add_NoOpTasks(b *testing.B) {
	pool, err := NewPool(runtime.NumCPU())
	if err != nil {
		b.Fatalf("NewPool() error = %v", err)
	}
	defer pool.Close()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		pool.Add(func() {})
	}
	pool.WaitTasks()
}

func BenchmarkForEach_Square(b *testing.B) {
	pool, err := NewPool(runtime.NumCPU())
	if err != nil {
		b.Fatalf("NewPool() error = %v", err)
	}
	defer pool.Close()

	xs := make([]int, 100000)
	for i := range xs {
		xs[i] = i
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		ForEach(pool, xs, func(x *int) { *x = *x * *x })
		pool.WaitTasks()
	}
}

func BenchmarkStealingDeque_PushTryPop(b *testing.B) {
	d := NewStealingDeque(0, 0, nil)
	noop := func() {}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		d.Push(noop)
		d.TryPop()
	}
}
