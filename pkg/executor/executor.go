// Package executor runs units of work on behalf of parallel enumerations.
package executor

import (
	"runtime"
	"sync"

	"github.com/dball/intervals/pkg/types"
)

// Executor runs tasks, possibly concurrently. Panics in tasks are the executor's concern.
type Executor interface {
	Execute(task func())
}

// Func adapts a function to an Executor.
type Func func(task func())

func (fn Func) Execute(task func()) {
	fn(task)
}

// Go returns an executor that runs each task on its own goroutine.
func Go() Executor {
	return Func(func(task func()) { go task() })
}

// Inline returns an executor that runs each task on the calling goroutine before returning.
func Inline() Executor {
	return Func(func(task func()) { task() })
}

type Config struct {
	// Workers is the number of goroutines running tasks, GOMAXPROCS by default.
	Workers int
	// QueueSize is the number of tasks that may wait for a worker before Execute blocks.
	QueueSize int
}

var defaultConfig Config = Config{
	QueueSize: 64,
}

// Pool runs tasks on a fixed set of worker goroutines.
type Pool struct {
	tasks   chan func()
	wg      sync.WaitGroup
	sending sync.WaitGroup
	lock    sync.RWMutex
	closed  bool
}

var _ Executor = (*Pool)(nil)

// NewPool starts the workers of a pool. Pools must be closed to release them.
func NewPool(config Config) *Pool {
	workers := config.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	queueSize := config.QueueSize
	if queueSize <= 0 {
		queueSize = defaultConfig.QueueSize
	}
	pool := &Pool{tasks: make(chan func(), queueSize)}
	pool.wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer pool.wg.Done()
			for task := range pool.tasks {
				task()
			}
		}()
	}
	return pool
}

// Execute queues the task, blocking while the queue is full. It panics if the pool
// has been closed. The lock is released before the send, so a task may submit to its
// own pool while Close is waiting.
func (pool *Pool) Execute(task func()) {
	pool.lock.RLock()
	if pool.closed {
		pool.lock.RUnlock()
		panic(types.NewError(types.ErrInvalidState, "executor.pool.execute.closed"))
	}
	pool.sending.Add(1)
	pool.lock.RUnlock()
	defer pool.sending.Done()
	pool.tasks <- task
}

// Close stops accepting tasks, runs those already queued or being queued, and waits for
// the workers to exit. It is safe to call more than once.
func (pool *Pool) Close() {
	pool.lock.Lock()
	first := !pool.closed
	pool.closed = true
	pool.lock.Unlock()
	if first {
		pool.sending.Wait()
		close(pool.tasks)
	}
	pool.wg.Wait()
}
