// Command ufbench is the benchmark/CLI driver described in §6:
//
//	ufbench <impl> <ops_file> <num_runs> [num_threads]
//
// impl selects one of the six engines; ops_file is a workload in the
// primary wire format (see package workload); num_runs repeats the batch
// that many times over a freshly constructed engine, reporting the
// per-run wall-clock time — grounded on
// _examples/original_source/benchmarks/benchmark.cpp.
package main

import (
	"fmt"
	"os"
	"runtime"
	"strconv"
	"time"

	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/pentene/15418-final-project/dsu"
	"github.com/pentene/15418-final-project/workload"
)

func main() {
	pflag.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: %s <impl> <ops_file> <num_runs> [num_threads]\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "impl: serial | coarse | fine | lockfree | lockfree_plain | lockfree_ipc\n")
	}
	pflag.Parse()
	args := pflag.Args()

	logger, _ := zap.NewProduction()
	defer logger.Sync()

	if len(args) < 3 {
		pflag.Usage()
		os.Exit(1)
	}

	kind := dsu.EngineKind(args[0])
	opsPath := args[1]
	numRuns, err := strconv.Atoi(args[2])
	if err != nil || numRuns < 1 {
		logger.Error("invalid num_runs", zap.String("value", args[2]))
		os.Exit(1)
	}

	numThreads := runtime.GOMAXPROCS(0)
	if len(args) >= 4 {
		numThreads, err = strconv.Atoi(args[3])
		if err != nil || numThreads < 1 {
			logger.Error("invalid num_threads", zap.String("value", args[3]))
			os.Exit(1)
		}
	}

	// Serial carries no synchronization of its own: it is the ground-truth
	// single-threaded baseline, never a concurrency discipline under test.
	// Driving it through Executor with more than one worker would race.
	if kind == dsu.KindSerial && numThreads != 1 {
		logger.Warn("serial has no internal synchronization, forcing threads=1",
			zap.Int("requested", numThreads))
		numThreads = 1
	}

	f, err := os.Open(opsPath)
	if err != nil {
		logger.Error("cannot open ops file", zap.String("path", opsPath), zap.Error(err))
		os.Exit(1)
	}
	n, ops, err := workload.Load(f)
	f.Close()
	if err != nil {
		logger.Error("failed to parse ops file", zap.String("path", opsPath), zap.Error(err))
		os.Exit(1)
	}

	for run := 0; run < numRuns; run++ {
		engine, err := dsu.NewEngine(kind, n)
		if err != nil {
			logger.Error("failed to construct engine", zap.String("impl", string(kind)), zap.Error(err))
			os.Exit(1)
		}

		executor := dsu.NewExecutor(numThreads, logger)
		var results []int

		start := time.Now()
		if err := executor.Run(engine, ops, &results); err != nil {
			logger.Error("batch execution failed", zap.Error(err))
			os.Exit(1)
		}
		elapsed := time.Since(start)

		fmt.Printf("run %d: impl=%s n=%d ops=%d threads=%d elapsed=%.6fs merged=%d failed=%d\n",
			run, kind, n, len(ops), numThreads, elapsed.Seconds(), executor.Merged(), executor.Failed())
	}
}
