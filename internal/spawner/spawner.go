package spawner

import (
	"errors"
	"fmt"
	"log/slog"
	"runtime/debug"
	"sync"

	"go.uber.org/atomic"
)

var (
	ErrQueueFull   = errors.New("task queue is full")
	ErrStopped     = errors.New("spawner is stopped")
	ErrUnknownMode = errors.New("unknown spawner mode")
)

type Mode string

const (
	ModeGoroutine Mode = "goroutine"
	ModePool      Mode = "pool"
	ModeInline    Mode = "inline"
)

// Spawner runs fire-and-forget tasks. A task that panics is logged and does not
// affect other tasks.
type Spawner interface {
	Spawn(task func()) error
	// Shutdown stops accepting tasks and waits for running ones.
	Shutdown()
}

// New creates the spawner for mode. Workers and queueSize only apply to ModePool.
func New(mode Mode, workers int, queueSize int, logger *slog.Logger) (Spawner, error) {
	logger = logger.With(slog.String("module", "spawner"), slog.String("mode", string(mode)))

	switch mode {
	case ModeGoroutine, "":
		return NewGoroutine(logger), nil
	case ModePool:
		return NewPool(workers, queueSize, logger), nil
	case ModeInline:
		return NewInline(logger), nil
	}

	return nil, fmt.Errorf("%w: %s", ErrUnknownMode, mode)
}

func run(logger *slog.Logger, task func()) {
	defer func() {
		if r := recover(); r != nil {
			logger.Error("Recovered from panic", "panic", r, slog.String("stacktrace", string(debug.Stack())))
		}
	}()

	task()
}

// Goroutine starts one goroutine per task.
type Goroutine struct {
	logger    *slog.Logger
	stopped   atomic.Bool
	waitGroup sync.WaitGroup
}

func NewGoroutine(logger *slog.Logger) *Goroutine {
	return &Goroutine{logger: logger}
}

func (g *Goroutine) Spawn(task func()) error {
	if g.stopped.Load() {
		return ErrStopped
	}

	g.waitGroup.Add(1)
	go func() {
		defer g.waitGroup.Done()
		run(g.logger, task)
	}()

	return nil
}

func (g *Goroutine) Shutdown() {
	g.stopped.Store(true)
	g.waitGroup.Wait()
}

// Pool runs tasks on a fixed number of workers fed by a bounded queue.
type Pool struct {
	logger    *slog.Logger
	tasks     chan func()
	mu        sync.RWMutex
	stopped   bool
	waitGroup sync.WaitGroup
}

func NewPool(workers int, queueSize int, logger *slog.Logger) *Pool {
	if workers < 1 {
		workers = 1
	}
	if queueSize < 0 {
		queueSize = 0
	}

	p := &Pool{
		logger: logger,
		tasks:  make(chan func(), queueSize),
	}

	for range workers {
		p.waitGroup.Add(1)
		go func() {
			defer p.waitGroup.Done()
			for task := range p.tasks {
				run(p.logger, task)
			}
		}()
	}

	return p
}

func (p *Pool) Spawn(task func()) error {
	p.mu.RLock()
	defer p.mu.RUnlock()

	if p.stopped {
		return ErrStopped
	}

	select {
	case p.tasks <- task:
		return nil
	default:
		return ErrQueueFull
	}
}

// Shutdown runs the queued tasks to completion.
func (p *Pool) Shutdown() {
	p.mu.Lock()
	if p.stopped {
		p.mu.Unlock()
		return
	}
	p.stopped = true
	close(p.tasks)
	p.mu.Unlock()

	p.waitGroup.Wait()
}

// Inline runs every task on the calling goroutine.
type Inline struct {
	logger  *slog.Logger
	stopped atomic.Bool
}

func NewInline(logger *slog.Logger) *Inline {
	return &Inline{logger: logger}
}

func (i *Inline) Spawn(task func()) error {
	if i.stopped.Load() {
		return ErrStopped
	}

	run(i.logger, task)
	return nil
}

func (i *Inline) Shutdown() {
	i.stopped.Store(true)
}
