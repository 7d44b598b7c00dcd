package worker

import (
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"github.com/lgbarn/chess-go/internal/testutil"
)

func item(i int) WorkItem {
	return WorkItem{Path: fmt.Sprintf("game-%d.pgn", i), Index: i}
}

func echo(item WorkItem) ProcessResult {
	return ProcessResult{Path: item.Path, Index: item.Index}
}

func counting(counter *int32) ProcessFunc {
	return func(item WorkItem) ProcessResult {
		atomic.AddInt32(counter, 1)
		return echo(item)
	}
}

// collect drains the result channel.
func collect(pool *Pool) []ProcessResult {
	var results []ProcessResult
	for r := range pool.Results() {
		results = append(results, r)
	}
	return results
}

func TestPool(t *testing.T) {
	tests := []struct {
		name    string
		workers int
		buffer  int
		items   int
	}{
		{"several workers", 4, 10, 10},
		{"single worker", 1, 5, 5},
		{"buffer smaller than batch", 8, 2, 100},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var processed int32
			pool := NewPool(tt.workers, tt.buffer, counting(&processed))
			pool.Start()

			go func() {
				for i := 0; i < tt.items; i++ {
					pool.Submit(item(i))
				}
				pool.Close()
			}()

			seen := make(map[int]string)
			for _, r := range collect(pool) {
				seen[r.Index] = r.Path
			}
			testutil.AssertEqual(t, len(seen), tt.items)
			for i := 0; i < tt.items; i++ {
				testutil.AssertEqual(t, seen[i], item(i).Path)
			}
			testutil.AssertEqual(t, atomic.LoadInt32(&processed), int32(tt.items))
		})
	}
}

func TestPool_EarlyStop(t *testing.T) {
	var processed int32
	slow := func(item WorkItem) ProcessResult {
		time.Sleep(10 * time.Millisecond)
		atomic.AddInt32(&processed, 1)
		return echo(item)
	}

	pool := NewPool(2, 100, slow)
	pool.Start()
	const numItems = 50
	for i := 0; i < numItems; i++ {
		pool.Submit(item(i))
	}

	time.Sleep(30 * time.Millisecond)
	pool.Stop()
	testutil.AssertTrue(t, pool.IsStopped(), "pool should be stopped after Stop()")

	go pool.Close()
	collect(pool)

	if n := atomic.LoadInt32(&processed); n >= numItems {
		t.Logf("early stop may not have prevented all processing: %d processed", n)
	}
}

func TestPool_TrySubmit(t *testing.T) {
	slow := func(item WorkItem) ProcessResult {
		time.Sleep(100 * time.Millisecond)
		return echo(item)
	}

	pool := NewPool(1, 2, slow)
	pool.Start()
	testutil.AssertTrue(t, pool.TrySubmit(item(0)), "first TrySubmit should succeed")
	testutil.AssertTrue(t, pool.TrySubmit(item(1)), "second TrySubmit should succeed")

	// The third depends on timing; it must only not block.
	pool.TrySubmit(item(2))

	pool.Stop()
	testutil.AssertFalse(t, pool.TrySubmit(item(3)), "TrySubmit after Stop should fail")
	go pool.Close()
	collect(pool)
}

func TestPool_NumWorkers(t *testing.T) {
	tests := []struct {
		name     string
		input    int
		expected int
	}{
		{"valid workers", 4, 4},
		{"minimum workers", 1, 1},
		{"zero defaults to 1", 0, 1},
		{"negative defaults to 1", -1, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			testutil.AssertEqual(t, NewPool(tt.input, 10, echo).NumWorkers(), tt.expected)
		})
	}
}

func TestNewPoolWithOptions(t *testing.T) {
	tests := []struct {
		name        string
		opts        []PoolOption
		wantWorkers int
		wantBuffer  int
	}{
		{"defaults", nil, 1, 10},
		{"with workers", []PoolOption{WithWorkers(4)}, 4, 10},
		{"with buffer size", []PoolOption{WithBufferSize(50)}, 1, 50},
		{"with both", []PoolOption{WithWorkers(8), WithBufferSize(100)}, 8, 100},
		{"invalid workers ignored", []PoolOption{WithWorkers(0)}, 1, 10},
		{"invalid buffer size ignored", []PoolOption{WithBufferSize(-5)}, 1, 10},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pool := NewPoolWithOptions(echo, tt.opts...)
			testutil.AssertEqual(t, pool.NumWorkers(), tt.wantWorkers)
			testutil.AssertEqual(t, pool.bufferSize, tt.wantBuffer)
			testutil.AssertEqual(t, cap(pool.workChan), tt.wantBuffer)
		})
	}
}
