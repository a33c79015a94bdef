package dsu

import "go.uber.org/atomic"

// LockFreePlain is lock-free Variant A (§4.6): identical to LockFree
// except that path compression in findInternal uses a plain relaxed
// store instead of a CAS. Safety still holds — a non-root slot can never
// transition back to root status (§3 invariant 5) — and under low
// contention it trades CAS traffic for a cheaper write. It must not be
// combined with anything that assumes compression writes are CAS'd,
// which is why it is its own engine rather than a flag on LockFree.
type LockFreePlain struct {
	n     int
	state []atomic.Int32
}

// NewLockFreePlain constructs a LockFreePlain engine over n singleton sets.
func NewLockFreePlain(n int) (*LockFreePlain, error) {
	if n < 0 {
		return nil, ErrNegativeSize
	}
	return &LockFreePlain{n: n, state: newLockFreeState(n)}, nil
}

func (lf *LockFreePlain) Size() int { return lf.n }

func (lf *LockFreePlain) findInternal(u int32) (int32, int32) {
	v := lf.state[u].Load()
	if isRoot(v) {
		return u, v
	}
	p := v
	rootIdx, rootVal := lf.findInternal(p)
	if p != rootIdx {
		lf.state[u].Store(rootIdx)
	}
	return rootIdx, rootVal
}

func (lf *LockFreePlain) Find(a int) (int, error) {
	if err := checkIndex(a, lf.n); err != nil {
		return 0, err
	}
	root, _ := lf.findInternal(int32(a))
	return int(root), nil
}

func (lf *LockFreePlain) Union(a, b int) (bool, error) {
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
			lf.state[parent].CompareAndSwap(parentVal, rootValue(rankOfRoot(parentVal)+1))
		}
		return true, nil
	}
}

func (lf *LockFreePlain) SameSet(a, b int) (bool, error) {
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
	}
}

// ProcessOperations runs ops against this engine, writing a sentinel into
// a slot and continuing with the next op on a precondition violation
// rather than aborting the rest of the batch (§4.7).
func (lf *LockFreePlain) ProcessOperations(ops []Operation, results *[]int) error {
	return NewExecutor(1, nil).Run(lf, ops, results)
}
