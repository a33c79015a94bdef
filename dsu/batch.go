package dsu

import (
	"context"
	"errors"

	"go.uber.org/atomic"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Executor applies a list of operations against one Engine using a fixed
// number of worker goroutines, statically partitioning the operation
// index range [0, len(ops)) — the teacher's cmd/main.go hand-rolls this
// partitioning with channels and a sync.WaitGroup per call site; here it
// is a single reusable type built on golang.org/x/sync/errgroup.
type Executor struct {
	Workers int
	Logger  *zap.Logger

	merged atomic.Int64
	failed atomic.Int64
}

// NewExecutor constructs an Executor with the given worker count. A nil
// logger is replaced with zap.NewNop() so callers never need a guard.
func NewExecutor(workers int, logger *zap.Logger) *Executor {
	if workers < 1 {
		workers = 1
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Executor{Workers: workers, Logger: logger}
}

// Merged returns the number of UNION operations that caused a merge
// across the most recently completed Run.
func (ex *Executor) Merged() int64 { return ex.merged.Load() }

// Failed returns the number of operations that hit an executor-local
// error (precondition violation or unexpected internal state) across
// the most recently completed Run.
func (ex *Executor) Failed() int64 { return ex.failed.Load() }

// Run assigns ops[0:len(ops)) to ex.Workers goroutines using static,
// contiguous chunking and has each worker call the engine's public API
// directly — there is no cross-worker coordination beyond what the
// engine itself provides. Per §4.7, a worker that hits a precondition
// violation or an unexpected internal error writes a sentinel into its
// result slot and logs a diagnostic rather than aborting its siblings.
//
// Run with more than one worker is only safe against an Engine that
// synchronizes its own state (Coarse, Fine, LockFree, LockFreePlain,
// LockFreeIPC). Serial has no internal synchronization at all — driving
// it through Run with Workers > 1 races. Callers that want the serial
// baseline's result, not its concurrency behavior, should use Workers: 1.
func (ex *Executor) Run(engine Engine, ops []Operation, results *[]int) error {
	ex.merged.Store(0)
	ex.failed.Store(0)
	*results = ensureLen(*results, len(ops))
	res := *results

	n := len(ops)
	if n == 0 {
		return nil
	}
	workers := ex.Workers
	if workers > n {
		workers = n
	}
	chunk := (n + workers - 1) / workers

	g, _ := errgroup.WithContext(context.Background())
	for w := 0; w < workers; w++ {
		start := w * chunk
		end := start + chunk
		if end > n {
			end = n
		}
		if start >= end {
			continue
		}
		g.Go(func() error {
			for i := start; i < end; i++ {
				ex.runOne(engine, ops[i], res, i)
			}
			return nil
		})
	}
	return g.Wait()
}

// runOne applies a single operation and writes its sentinel-aware result
// into res[i]. It never returns an error: executor-local failures are
// reported via the result slice and the logger, not by aborting the
// batch (§7).
func (ex *Executor) runOne(engine Engine, op Operation, res []int, i int) {
	r, err := applyOperation(engine, op)
	if err == nil {
		res[i] = r
		if op.Type == OpUnion && r == 1 {
			ex.merged.Inc()
		}
		return
	}

	ex.failed.Inc()
	switch {
	case errors.Is(err, ErrOutOfRange):
		res[i] = resultOutOfRange
		ex.Logger.Warn("operation out of range",
			zap.Int("index", i),
			zap.Stringer("type", op.Type),
			zap.Int("a", op.A),
			zap.Int("b", op.B),
			zap.Error(err),
		)
	default:
		res[i] = resultInternalFailure
		ex.Logger.Warn("operation failed with unexpected internal error",
			zap.Int("index", i),
			zap.Stringer("type", op.Type),
			zap.Error(err),
		)
	}
}
