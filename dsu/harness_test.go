package dsu_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/pentene/15418-final-project/dsu"
)

// partitionOf runs every Find(0..n) and groups elements by root, giving
// a canonical representation of the final partition independent of
// which element each engine happens to have chosen as representative.
func partitionOf(t *testing.T, e dsu.Engine) map[int][]int {
	t.Helper()
	n := e.Size()
	groups := make(map[int][]int)
	for i := 0; i < n; i++ {
		root, err := e.Find(i)
		require.NoError(t, err)
		groups[root] = append(groups[root], i)
	}
	return groups
}

// samePartition compares two partitions pairwise for all a < b, per the
// "final connectivity equivalence" property of §8.
func samePartition(t *testing.T, n int, a, b dsu.Engine) {
	t.Helper()
	for x := 0; x < n; x++ {
		rx, err := a.Find(x)
		require.NoError(t, err)
		sx, err := b.Find(x)
		require.NoError(t, err)
		for y := x + 1; y < n; y++ {
			ry, err := a.Find(y)
			require.NoError(t, err)
			sy, err := b.Find(y)
			require.NoError(t, err)
			require.Equal(t, rx == ry, sx == sy,
				"elements %d,%d agree in one engine's partition but not the other's", x, y)
		}
	}
}

// TestFinalConnectivityMatchesSerial runs the same random operation list
// against every engine via Executor and asserts that the resulting
// partition equals the serial baseline's, per §8's cross-engine property.
func TestFinalConnectivityMatchesSerial(t *testing.T) {
	const n = 200
	rng := rand.New(rand.NewSource(42))
	ops := make([]dsu.Operation, 0, 4000)
	for i := 0; i < 4000; i++ {
		a := rng.Intn(n)
		b := rng.Intn(n)
		switch rng.Intn(3) {
		case 0:
			ops = append(ops, dsu.Operation{Type: dsu.OpUnion, A: a, B: b})
		case 1:
			ops = append(ops, dsu.Operation{Type: dsu.OpFind, A: a})
		default:
			ops = append(ops, dsu.Operation{Type: dsu.OpSameSet, A: a, B: b})
		}
	}

	serial, err := dsu.NewSerial(n)
	require.NoError(t, err)
	var serialResults []int
	require.NoError(t, serial.ProcessOperations(ops, &serialResults))

	for _, kind := range allKinds {
		if kind == dsu.KindSerial {
			continue
		}
		kind := kind
		t.Run(string(kind), func(t *testing.T) {
			engine, err := dsu.NewEngine(kind, n)
			require.NoError(t, err)

			logger := zaptest.NewLogger(t)
			executor := dsu.NewExecutor(8, logger)
			var results []int
			require.NoError(t, executor.Run(engine, ops, &results))

			samePartition(t, n, serial, engine)
		})
	}
}

// TestHotPairHammer is a reduced-scale version of scenario 4 of §8: many
// concurrent operations hammering just two elements must still converge
// to the serial baseline's connectivity for those elements.
func TestHotPairHammer(t *testing.T) {
	const n = 4
	const numOps = 20000
	rng := rand.New(rand.NewSource(7))
	ops := make([]dsu.Operation, numOps)
	for i := range ops {
		a, b := rng.Intn(2), rng.Intn(2)
		switch {
		case rng.Float64() < 0.5:
			ops[i] = dsu.Operation{Type: dsu.OpFind, A: a}
		case rng.Float64() < 0.9:
			ops[i] = dsu.Operation{Type: dsu.OpUnion, A: a, B: b}
		default:
			ops[i] = dsu.Operation{Type: dsu.OpSameSet, A: a, B: b}
		}
	}

	serial, err := dsu.NewSerial(n)
	require.NoError(t, err)
	var serialResults []int
	require.NoError(t, serial.ProcessOperations(ops, &serialResults))
	wantConnected, err := serial.SameSet(0, 1)
	require.NoError(t, err)

	for _, kind := range allKinds {
		if kind == dsu.KindSerial {
			continue
		}
		kind := kind
		t.Run(string(kind), func(t *testing.T) {
			engine, err := dsu.NewEngine(kind, n)
			require.NoError(t, err)

			executor := dsu.NewExecutor(16, zaptest.NewLogger(t))
			var results []int
			require.NoError(t, executor.Run(engine, ops, &results))

			got, err := engine.SameSet(0, 1)
			require.NoError(t, err)
			require.Equal(t, wantConnected, got)
		})
	}
}
