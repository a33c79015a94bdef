// Command genops writes a synthetic operation list in the primary wire
// format (§6), mirroring _examples/original_source/scripts/generate_ops.py
// for the Go benchmark driver in cmd/ufbench.
package main

import (
	"fmt"
	"math/rand"
	"os"

	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/pentene/15418-final-project/workload"
)

func main() {
	var (
		n          int
		numOps     int
		findRatio  float64
		unionRatio float64
		sameRatio  float64
		output     string
		seed       int64
	)
	pflag.IntVar(&n, "elements", 1000, "number of elements in the universe")
	pflag.IntVar(&numOps, "ops", 10000, "number of operations to generate")
	pflag.Float64Var(&findRatio, "find-ratio", 0.5, "relative weight of FIND operations")
	pflag.Float64Var(&unionRatio, "union-ratio", 0.4, "relative weight of UNION operations")
	pflag.Float64Var(&sameRatio, "sameset-ratio", 0.1, "relative weight of SAME_SET operations")
	pflag.StringVar(&output, "output", "ops.txt", "output file path")
	pflag.Int64Var(&seed, "seed", 1, "PRNG seed")
	pflag.Parse()

	logger, _ := zap.NewProduction()
	defer logger.Sync()

	ops, err := workload.Generate(n, numOps, workload.Mix{
		UnionRatio:   unionRatio,
		FindRatio:    findRatio,
		SameSetRatio: sameRatio,
	}, rand.New(rand.NewSource(seed)))
	if err != nil {
		logger.Fatal("failed to generate operations", zap.Error(err))
	}

	f, err := os.Create(output)
	if err != nil {
		logger.Fatal("failed to create output file", zap.String("path", output), zap.Error(err))
	}
	defer f.Close()

	if err := workload.Write(f, n, ops); err != nil {
		logger.Fatal("failed to write operations", zap.Error(err))
	}

	fmt.Printf("wrote %d operations over %d elements to %s\n", len(ops), n, output)
}
