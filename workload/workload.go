// Package workload reads and writes the two textual operation-list
// formats described in §6 of the specification: the primary numeric wire
// format consumed by the benchmark driver, and the "U a b" / "F a
// expected" / "Q a b expected" markup format used by correctness
// fixtures. Both formats carry identical semantic content; this package
// is deliberately thin plumbing, grounded on
// _examples/original_source/tests/test_parallel_correctness.cpp and
// benchmarks/benchmark.cpp's loaders.
package workload

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/pentene/15418-final-project/dsu"
)

// ErrMalformedLine is returned (wrapped with the offending line number
// and text) when a data line cannot be parsed.
var ErrMalformedLine = fmt.Errorf("workload: malformed line")

// ErrBadHeader is returned when the leading "<n> <ops>" header is
// missing or unparsable.
var ErrBadHeader = fmt.Errorf("workload: bad header")

type lineError struct {
	lineNo int
	text   string
	cause  error
}

func (e *lineError) Error() string {
	return fmt.Sprintf("workload: line %d %q: %v", e.lineNo, e.text, e.cause)
}

func (e *lineError) Unwrap() error { return e.cause }

// Load parses the primary wire format:
//
//	<n_elements> <n_operations>
//	<type> <a> <b>
//	...
//
// type is 0 (UNION), 1 (FIND), or 2 (SAME_SET); b is present but ignored
// for FIND. It returns the declared universe size and the parsed
// operations in file order.
func Load(r io.Reader) (n int, ops []dsu.Operation, err error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

	n, numOps, lineNo, err := readHeader(sc)
	if err != nil {
		return 0, nil, err
	}

	ops = make([]dsu.Operation, 0, numOps)
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) < 2 {
			return 0, nil, &lineError{lineNo, line, ErrMalformedLine}
		}
		typeVal, err := strconv.Atoi(fields[0])
		if err != nil {
			return 0, nil, &lineError{lineNo, line, ErrMalformedLine}
		}
		a, err := strconv.Atoi(fields[1])
		if err != nil {
			return 0, nil, &lineError{lineNo, line, ErrMalformedLine}
		}
		b := 0
		if len(fields) >= 3 {
			b, err = strconv.Atoi(fields[2])
			if err != nil {
				return 0, nil, &lineError{lineNo, line, ErrMalformedLine}
			}
		}
		opType, err := opTypeFromWire(typeVal)
		if err != nil {
			return 0, nil, &lineError{lineNo, line, err}
		}
		ops = append(ops, dsu.Operation{Type: opType, A: a, B: b})
	}
	if err := sc.Err(); err != nil {
		return 0, nil, err
	}
	return n, ops, nil
}

func readHeader(sc *bufio.Scanner) (n, numOps, lineNo int, err error) {
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) < 2 {
			return 0, 0, lineNo, &lineError{lineNo, line, ErrBadHeader}
		}
		n, err = strconv.Atoi(fields[0])
		if err != nil {
			return 0, 0, lineNo, &lineError{lineNo, line, ErrBadHeader}
		}
		numOps, err = strconv.Atoi(fields[1])
		if err != nil {
			return 0, 0, lineNo, &lineError{lineNo, line, ErrBadHeader}
		}
		return n, numOps, lineNo, nil
	}
	if err := sc.Err(); err != nil {
		return 0, 0, lineNo, err
	}
	return 0, 0, lineNo, &lineError{lineNo, "", ErrBadHeader}
}

func opTypeFromWire(v int) (dsu.OpType, error) {
	switch v {
	case 0:
		return dsu.OpUnion, nil
	case 1:
		return dsu.OpFind, nil
	case 2:
		return dsu.OpSameSet, nil
	default:
		return 0, fmt.Errorf("%w: unknown operation type %d", ErrMalformedLine, v)
	}
}

// Query is a SAME_SET-style assertion line from the markup format: is a
// and b in the same set, with the fixture's expected answer (1 or 0).
type Query struct {
	A, B     int
	Expected int
}

// MarkupFixture is the parsed content of a "U a b" / "F a expected" /
// "Q a b expected" test fixture.
type MarkupFixture struct {
	N       int
	Unions  []dsu.Operation // Type is always OpUnion
	Finds   []Query         // B is unused; Expected is the expected root
	Queries []Query
}

// LoadMarkup parses the alternative fixture format used by some test
// files: a leading "<n>" header, then any mix of
//
//	U a b          — union a and b
//	F a expected   — find(a) must equal expected
//	Q a b expected — same_set(a, b) must equal expected (1 or 0)
//
// Blank lines and lines starting with '#' are comments.
func LoadMarkup(r io.Reader) (*MarkupFixture, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

	fixture := &MarkupFixture{}
	lineNo := 0
	haveHeader := false

	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if !haveHeader {
			n, err := strconv.Atoi(line)
			if err != nil {
				return nil, &lineError{lineNo, line, ErrBadHeader}
			}
			fixture.N = n
			haveHeader = true
			continue
		}
		fields := strings.Fields(line)
		if len(fields) < 3 {
			return nil, &lineError{lineNo, line, ErrMalformedLine}
		}
		ints := make([]int, 0, 2)
		for _, f := range fields[1:] {
			v, err := strconv.Atoi(f)
			if err != nil {
				return nil, &lineError{lineNo, line, ErrMalformedLine}
			}
			ints = append(ints, v)
		}
		switch strings.ToUpper(fields[0]) {
		case "U":
			if len(ints) != 2 {
				return nil, &lineError{lineNo, line, ErrMalformedLine}
			}
			fixture.Unions = append(fixture.Unions, dsu.Operation{Type: dsu.OpUnion, A: ints[0], B: ints[1]})
		case "F":
			if len(ints) != 2 {
				return nil, &lineError{lineNo, line, ErrMalformedLine}
			}
			fixture.Finds = append(fixture.Finds, Query{A: ints[0], Expected: ints[1]})
		case "Q":
			if len(ints) != 3 {
				return nil, &lineError{lineNo, line, ErrMalformedLine}
			}
			fixture.Queries = append(fixture.Queries, Query{A: ints[0], B: ints[1], Expected: ints[2]})
		default:
			return nil, &lineError{lineNo, line, ErrMalformedLine}
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	if !haveHeader {
		return nil, &lineError{lineNo, "", ErrBadHeader}
	}
	return fixture, nil
}

// Write emits ops in the primary wire format, with the given universe
// size as the header.
func Write(w io.Writer, n int, ops []dsu.Operation) error {
	if _, err := fmt.Fprintf(w, "%d %d\n", n, len(ops)); err != nil {
		return err
	}
	bw := bufio.NewWriter(w)
	for _, op := range ops {
		if _, err := fmt.Fprintf(bw, "%d %d %d\n", wireFromOpType(op.Type), op.A, op.B); err != nil {
			return err
		}
	}
	return bw.Flush()
}

func wireFromOpType(t dsu.OpType) int {
	switch t {
	case dsu.OpUnion:
		return 0
	case dsu.OpFind:
		return 1
	default:
		return 2
	}
}
