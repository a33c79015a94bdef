package workload_test

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/pentene/15418-final-project/dsu"
	"github.com/pentene/15418-final-project/workload"
)

func TestLoadPrimaryFormat(t *testing.T) {
	input := "5 3\n" +
		"0 0 1\n" +
		"1 2 0\n" +
		"2 0 1\n"

	n, ops, err := workload.Load(strings.NewReader(input))
	require.NoError(t, err)
	require.Equal(t, 5, n)
	require.Equal(t, []dsu.Operation{
		{Type: dsu.OpUnion, A: 0, B: 1},
		{Type: dsu.OpFind, A: 2, B: 0},
		{Type: dsu.OpSameSet, A: 0, B: 1},
	}, ops)
}

func TestLoadRejectsMalformedLine(t *testing.T) {
	_, _, err := workload.Load(strings.NewReader("3 1\nnotanumber 0 1\n"))
	require.ErrorIs(t, err, workload.ErrMalformedLine)
}

func TestLoadRejectsBadHeader(t *testing.T) {
	_, _, err := workload.Load(strings.NewReader("not a header\n"))
	require.ErrorIs(t, err, workload.ErrBadHeader)
}

func TestWriteLoadRoundTrip(t *testing.T) {
	ops := []dsu.Operation{
		{Type: dsu.OpUnion, A: 1, B: 2},
		{Type: dsu.OpFind, A: 3},
		{Type: dsu.OpSameSet, A: 0, B: 4},
	}
	var buf strings.Builder
	require.NoError(t, workload.Write(&buf, 5, ops))

	n, got, err := workload.Load(strings.NewReader(buf.String()))
	require.NoError(t, err)
	require.Equal(t, 5, n)
	require.Equal(t, ops[0], got[0])
	require.Equal(t, ops[1].Type, got[1].Type)
	require.Equal(t, ops[1].A, got[1].A)
	require.Equal(t, ops[2], got[2])
}

func TestLoadMarkupFormat(t *testing.T) {
	input := "# chain scenario\n" +
		"5\n" +
		"U 0 1\n" +
		"U 1 2\n" +
		"\n" +
		"F 2 0\n" +
		"Q 0 2 1\n"

	fixture, err := workload.LoadMarkup(strings.NewReader(input))
	require.NoError(t, err)
	require.Equal(t, 5, fixture.N)
	require.Len(t, fixture.Unions, 2)
	require.Len(t, fixture.Finds, 1)
	require.Len(t, fixture.Queries, 1)
	require.Equal(t, 0, fixture.Finds[0].Expected)
	require.Equal(t, 1, fixture.Queries[0].Expected)
}

func TestLoadMarkupRejectsUnknownDirective(t *testing.T) {
	_, err := workload.LoadMarkup(strings.NewReader("3\nX 0 1\n"))
	require.ErrorIs(t, err, workload.ErrMalformedLine)
}

func TestGenerateRespectsUniverseBounds(t *testing.T) {
	ops, err := workload.Generate(10, 500, workload.DefaultMix, rand.New(rand.NewSource(1)))
	require.NoError(t, err)
	require.Len(t, ops, 500)
	for _, op := range ops {
		require.GreaterOrEqual(t, op.A, 0)
		require.Less(t, op.A, 10)
		if op.Type != dsu.OpFind {
			require.GreaterOrEqual(t, op.B, 0)
			require.Less(t, op.B, 10)
		}
		if op.Type == dsu.OpUnion {
			require.NotEqual(t, op.A, op.B)
		}
	}
}

func TestGenerateRejectsNonPositiveUniverse(t *testing.T) {
	_, err := workload.Generate(0, 10, workload.DefaultMix, rand.New(rand.NewSource(1)))
	require.ErrorIs(t, err, workload.ErrInvalidUniverse)
	require.NotErrorIs(t, err, workload.ErrBadHeader)
}
