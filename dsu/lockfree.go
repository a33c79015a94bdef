package dsu

import "go.uber.org/atomic"

// LockFree is the single-atomic-word-per-element engine of §4.5: each
// slot is either a root encoding its rank (negative value) or a child
// encoding its parent index (non-negative value). Path compression and
// linking are both done with CAS; no goroutine ever blocks on another.
type LockFree struct {
	n     int
	state []atomic.Int32
}

// NewLockFree constructs a LockFree engine over n singleton sets.
func NewLockFree(n int) (*LockFree, error) {
	if n < 0 {
		return nil, ErrNegativeSize
	}
	return &LockFree{n: n, state: newLockFreeState(n)}, nil
}

func (lf *LockFree) Size() int { return lf.n }

// findInternal walks to the root of u, opportunistically halving the
// path with a CAS along the way, and returns (rootIndex, rootValue).
// A failed compression CAS is tolerated — the returned root is still
// correct, just the path is left one hop longer than it could be.
func (lf *LockFree) findInternal(u int32) (int32, int32) {
	v := lf.state[u].Load()
	if isRoot(v) {
		return u, v
	}
	p := v
	rootIdx, rootVal := lf.findInternal(p)
	if p != rootIdx {
		lf.state[u].CompareAndSwap(p, rootIdx)
	}
	return rootIdx, rootVal
}

func (lf *LockFree) Find(a int) (int, error) {
	if err := checkIndex(a, lf.n); err != nil {
		return 0, err
	}
	root, _ := lf.findInternal(int32(a))
	return int(root), nil
}

func (lf *LockFree) Union(a, b int) (bool, error) {
	if err := checkIndex(a, lf.n); err != nil {
		return false, err
	}
	if err := checkIndex(b, lf.n); err != nil {
		return false, err
	}
	a32, b32 := int32(a), int32(b)
	for {
		rootA, _ := lf.findInternal(a32)
		rootB, _ := lf.findInternal(b32)

		va := lf.state[rootA].Load()
		vb := lf.state[rootB].Load()
		if !isRoot(va) || !isRoot(vb) {
			continue
		}
		if rootA == rootB {
			return false, nil
		}

		rankA, rankB := rankOfRoot(va), rankOfRoot(vb)
		var child, parent int32
		var childVal, parentVal int32
		switch {
		case rankA < rankB:
			child, childVal = rootA, va
			parent, parentVal = rootB, vb
		case rankB < rankA:
			child, childVal = rootB, vb
			parent, parentVal = rootA, va
		case rootA < rootB:
			child, childVal = rootA, va
			parent, parentVal = rootB, vb
		default:
			child, childVal = rootB, vb
			parent, parentVal = rootA, va
		}

		if !lf.state[child].CompareAndSwap(childVal, parent) {
			continue
		}
		if rankA == rankB {
			// Opportunistic rank bump; failure is benign (§4.5 step 7).
			lf.state[parent].CompareAndSwap(parentVal, rootValue(rankOfRoot(parentVal)+1))
		}
		return true, nil
	}
}

func (lf *LockFree) SameSet(a, b int) (bool, error) {
	if err := checkIndex(a, lf.n); err != nil {
		return false, err
	}
	if err := checkIndex(b, lf.n); err != nil {
		return false, err
	}
	a32, b32 := int32(a), int32(b)
	for {
		rootA, _ := lf.findInternal(a32)
		rootB, _ := lf.findInternal(b32)
		if rootA == rootB {
			return true, nil
		}
		if isRoot(lf.state[rootA].Load()) {
			return false, nil
		}
		// rootA's snapshot was stale (it has since been linked under
		// another root) — the observation was racy, retry.
	}
}

// ProcessOperations runs ops against this engine, writing a sentinel into
// a slot and continuing with the next op on a precondition violation
// rather than aborting the rest of the batch (§4.7).
func (lf *LockFree) ProcessOperations(ops []Operation, results *[]int) error {
	return NewExecutor(1, nil).Run(lf, ops, results)
}
