package dsu

import "sync"

// Coarse serializes every operation behind a single mutex. Find is
// implemented as an unlocked helper so that Union — which must call Find
// twice while already holding the lock — never tries to re-enter a
// non-reentrant sync.Mutex (Go's mutex, unlike C++'s
// std::recursive_mutex, is not reentrant at all).
type Coarse struct {
	n      int
	mu     sync.Mutex
	parent []int
	rank   []int
}

// NewCoarse constructs a Coarse engine over n singleton sets.
func NewCoarse(n int) (*Coarse, error) {
	if n < 0 {
		return nil, ErrNegativeSize
	}
	parent, rank := newTwoArrayState(n)
	return &Coarse{n: n, parent: parent, rank: rank}, nil
}

func (c *Coarse) Size() int { return c.n }

func (c *Coarse) Find(a int) (int, error) {
	if err := checkIndex(a, c.n); err != nil {
		return 0, err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.find(a), nil
}

// find walks with path compression. Caller must hold c.mu.
func (c *Coarse) find(a int) int {
	if c.parent[a] != a {
		c.parent[a] = c.find(c.parent[a])
	}
	return c.parent[a]
}

func (c *Coarse) Union(a, b int) (bool, error) {
	if err := checkIndex(a, c.n); err != nil {
		return false, err
	}
	if err := checkIndex(b, c.n); err != nil {
		return false, err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	rootA, rootB := c.find(a), c.find(b)
	if rootA == rootB {
		return false, nil
	}
	switch {
	case c.rank[rootA] < c.rank[rootB]:
		c.parent[rootA] = rootB
	case c.rank[rootA] > c.rank[rootB]:
		c.parent[rootB] = rootA
	default:
		c.parent[rootB] = rootA
		c.rank[rootA]++
	}
	return true, nil
}

func (c *Coarse) SameSet(a, b int) (bool, error) {
	if err := checkIndex(a, c.n); err != nil {
		return false, err
	}
	if err := checkIndex(b, c.n); err != nil {
		return false, err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.find(a) == c.find(b), nil
}

// ProcessOperations runs ops against this engine, writing a sentinel into
// a slot and continuing with the next op on a precondition violation
// rather than aborting the rest of the batch (§4.7). Safe to call from
// multiple goroutines — every operation is already serialized by c.mu —
// but is typically driven by Executor like every other engine.
func (c *Coarse) ProcessOperations(ops []Operation, results *[]int) error {
	return NewExecutor(1, nil).Run(c, ops, results)
}
