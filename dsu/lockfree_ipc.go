package dsu

import "go.uber.org/atomic"

// LockFreeIPC is lock-free Variant B (§4.6): identical to LockFree, but
// Union and SameSet first load the immediate (possibly non-root) parent
// slots of a and b with a relaxed read; if both are the same non-root
// value, the two elements are already known to share a tree and the call
// short-circuits without walking to the root. This is a safe sufficient
// condition, not a necessary one — the slow path below still runs
// whenever the fast path can't conclude anything.
type LockFreeIPC struct {
	n     int
	state []atomic.Int32
}

// NewLockFreeIPC constructs a LockFreeIPC engine over n singleton sets.
func NewLockFreeIPC(n int) (*LockFreeIPC, error) {
	if n < 0 {
		return nil, ErrNegativeSize
	}
	return &LockFreeIPC{n: n, state: newLockFreeState(n)}, nil
}

func (lf *LockFreeIPC) Size() int { return lf.n }

func (lf *LockFreeIPC) findInternal(u int32) (int32, int32) {
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

func (lf *LockFreeIPC) Find(a int) (int, error) {
	if err := checkIndex(a, lf.n); err != nil {
		return 0, err
	}
	root, _ := lf.findInternal(int32(a))
	return int(root), nil
}

// sameImmediateParent is the IPC fast path of §4.6 Variant B: a shared
// non-root parent slot is a sufficient (not necessary) condition for
// membership in the same tree.
func (lf *LockFreeIPC) sameImmediateParent(a, b int32) bool {
	pa := lf.state[a].Load()
	pb := lf.state[b].Load()
	return !isRoot(pa) && pa == pb
}

func (lf *LockFreeIPC) Union(a, b int) (bool, error) {
	if err := checkIndex(a, lf.n); err != nil {
		return false, err
	}
	if err := checkIndex(b, lf.n); err != nil {
		return false, err
	}
	a32, b32 := int32(a), int32(b)
	for {
		if lf.sameImmediateParent(a32, b32) {
			return false, nil
		}

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

func (lf *LockFreeIPC) SameSet(a, b int) (bool, error) {
	if err := checkIndex(a, lf.n); err != nil {
		return false, err
	}
	if err := checkIndex(b, lf.n); err != nil {
		return false, err
	}
	if a == b {
		return true, nil
	}
	a32, b32 := int32(a), int32(b)
	for {
		if lf.sameImmediateParent(a32, b32) {
			return true, nil
		}
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
func (lf *LockFreeIPC) ProcessOperations(ops []Operation, results *[]int) error {
	return NewExecutor(1, nil).Run(lf, ops, results)
}
