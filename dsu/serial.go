package dsu

import "fmt"

// Serial is the reference union-find implementation: full path
// compression on FIND, union-by-rank on UNION. It performs no
// synchronization of its own and is safe to use only from a single
// goroutine — it is the ground truth the other engines are checked
// against, not a concurrency-safe engine.
type Serial struct {
	n      int
	parent []int
	rank   []int
}

// NewSerial constructs a Serial engine over n singleton sets.
func NewSerial(n int) (*Serial, error) {
	if n < 0 {
		return nil, ErrNegativeSize
	}
	parent, rank := newTwoArrayState(n)
	return &Serial{n: n, parent: parent, rank: rank}, nil
}

func (s *Serial) Size() int { return s.n }

func (s *Serial) Find(a int) (int, error) {
	if err := checkIndex(a, s.n); err != nil {
		return 0, err
	}
	return s.find(a), nil
}

// find performs the unchecked root walk with path compression.
// Precondition: 0 <= a < n.
func (s *Serial) find(a int) int {
	if s.parent[a] != a {
		s.parent[a] = s.find(s.parent[a])
	}
	return s.parent[a]
}

func (s *Serial) Union(a, b int) (bool, error) {
	if err := checkIndex(a, s.n); err != nil {
		return false, err
	}
	if err := checkIndex(b, s.n); err != nil {
		return false, err
	}
	rootA, rootB := s.find(a), s.find(b)
	if rootA == rootB {
		return false, nil
	}
	switch {
	case s.rank[rootA] < s.rank[rootB]:
		s.parent[rootA] = rootB
	case s.rank[rootA] > s.rank[rootB]:
		s.parent[rootB] = rootA
	default:
		s.parent[rootB] = rootA
		s.rank[rootA]++
	}
	return true, nil
}

// RankOfRoot returns the current rank stored for root. It is intended
// for tests that assert the exact rank invariant (§3 invariant 3) that
// only the serial engine guarantees precisely.
func (s *Serial) RankOfRoot(root int) int {
	return s.rank[root]
}

func (s *Serial) SameSet(a, b int) (bool, error) {
	if err := checkIndex(a, s.n); err != nil {
		return false, err
	}
	if err := checkIndex(b, s.n); err != nil {
		return false, err
	}
	return s.find(a) == s.find(b), nil
}

// ProcessOperations runs ops sequentially against this engine, filling
// results per §4.7's per-type contract: a precondition violation writes a
// sentinel into its slot and processing continues with the next op rather
// than aborting the rest of the batch. results is resized to len(ops).
func (s *Serial) ProcessOperations(ops []Operation, results *[]int) error {
	return NewExecutor(1, nil).Run(s, ops, results)
}

func ensureLen(s []int, n int) []int {
	if cap(s) >= n {
		return s[:n]
	}
	return make([]int, n)
}

// applyOperation runs a single operation against any Engine and returns
// the per-§4.7 result value: find's root, or 1/0 for union/same-set.
func applyOperation(e Engine, op Operation) (int, error) {
	switch op.Type {
	case OpFind:
		root, err := e.Find(op.A)
		if err != nil {
			return 0, err
		}
		return root, nil
	case OpUnion:
		changed, err := e.Union(op.A, op.B)
		if err != nil {
			return 0, err
		}
		if changed {
			return 1, nil
		}
		return 0, nil
	case OpSameSet:
		same, err := e.SameSet(op.A, op.B)
		if err != nil {
			return 0, err
		}
		if same {
			return 1, nil
		}
		return 0, nil
	default:
		return 0, fmt.Errorf("dsu: unknown operation type %v", op.Type)
	}
}
