// Package engine runs one search task per input file against a worker pool,
// adapted from the teacher's generic mutex-guarded task runner and pointed at
// real file-search tasks instead of a placeholder Task interface.
package engine

import (
	"context"
	"fmt"
	"runtime"
	"sync"
)

// Task is a unit of work the engine executes, returning its own result.
type Task interface {
	Execute(ctx context.Context) (Result, error)
}

// Result is one task's search outcome.
type Result struct {
	Path    string
	Matched bool
	Output  []string
}

// Engine runs tasks concurrently over a bounded worker pool. The mutex guards
// the task list and the running flag; each task's result is written to its
// own slot of the result slice, so the results need no lock.
type Engine struct {
	mu      sync.Mutex
	running bool
	tasks   []Task
	workers int
}

// New creates an Engine sized to runtime.GOMAXPROCS(0) workers, or workers
// if a positive count is given.
func New(workers int) *Engine {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	return &Engine{tasks: make([]Task, 0), workers: workers}
}

// AddTask queues a task to run on the next Run call.
func (e *Engine) AddTask(task Task) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.tasks = append(e.tasks, task)
}

// IsRunning reports whether Run is currently executing.
func (e *Engine) IsRunning() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.running
}

// Run dispatches all queued tasks across the worker pool and returns their
// results in the order the tasks were added. ctx cancellation stops
// dispatch of not-yet-started tasks; tasks already executing run to
// completion.
func (e *Engine) Run(ctx context.Context) ([]Result, error) {
	e.mu.Lock()
	if e.running {
		e.mu.Unlock()
		return nil, fmt.Errorf("engine is already running")
	}
	e.running = true
	tasks := e.tasks
	e.mu.Unlock()

	defer func() {
		e.mu.Lock()
		e.running = false
		e.mu.Unlock()
	}()

	results := make([]Result, len(tasks))
	errs := make([]error, len(tasks))

	sem := make(chan struct{}, e.workers)
	var wg sync.WaitGroup

	for i, task := range tasks {
		select {
		case <-ctx.Done():
			errs[i] = ctx.Err()
			continue
		default:
		}

		wg.Add(1)
		sem <- struct{}{}
		go func(i int, t Task) {
			defer wg.Done()
			defer func() { <-sem }()
			res, err := t.Execute(ctx)
			results[i] = res
			errs[i] = err
		}(i, task)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return results, err
		}
	}
	return results, nil
}
