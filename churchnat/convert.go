package churchnat

import (
	"fmt"

	"golang.org/x/exp/constraints"

	"myceliumweb.org/church/spec"
)

// Limits bounds the work done by conversions.
type Limits struct {
	// MaxDepth is the largest numeral that may be built or run.
	// Values <= 0 mean spec.DefaultMaxDepth.
	MaxDepth int
}

func DefaultLimits() Limits {
	return Limits{MaxDepth: spec.DefaultMaxDepth}
}

func (l Limits) maxDepth() int {
	if l.MaxDepth <= 0 {
		return spec.DefaultMaxDepth
	}
	return l.MaxDepth
}

// BoundedMax is the largest natural that should be sampled under these limits.
func (l Limits) BoundedMax() int {
	return spec.BoundedMax(l.maxDepth())
}

// check rejects k before any numeral is built.
func (l Limits) check(k int64) error {
	limit := l.maxDepth()
	switch {
	case k < 0:
		return ErrNegative{K: k}
	case k > int64(limit):
		return ErrDepthExceeded{Depth: uint64(k), Limit: limit}
	}
	return nil
}

// ToEncoded builds the numeral for k by applying Succ to Zero k times.
func (l Limits) ToEncoded(k int) (Nat, error) {
	if err := l.check(int64(k)); err != nil {
		return nil, err
	}
	n := Zero()
	for range k {
		n = Succ(n)
	}
	return n, nil
}

// FromEncoded runs n on the increment function and 0.
// A numeral that would count past MaxDepth is an error; chains built by Succ
// are rejected before they run.
func (l Limits) FromEncoded(n Nat) (int, error) {
	if n == nil {
		return 0, fmt.Errorf("churchnat: nil numeral")
	}
	limit := l.maxDepth()
	if s, ok := n.(*succ); ok && s.depth > limit {
		return 0, ErrDepthExceeded{Depth: uint64(s.depth), Limit: limit}
	}
	out, err := count(n, limit)
	if err != nil {
		return 0, err
	}
	k, ok := out.(int)
	if !ok {
		return 0, fmt.Errorf("churchnat: numeral did not iterate its function, produced %T", out)
	}
	return k, nil
}

// ToEncoded builds the numeral for k under the default limits.
func ToEncoded[T constraints.Integer](k T) (Nat, error) {
	l := DefaultLimits()
	if k < 0 {
		return nil, l.check(int64(k))
	}
	if uint64(k) > uint64(l.maxDepth()) {
		return nil, ErrDepthExceeded{Depth: uint64(k), Limit: l.maxDepth()}
	}
	return l.ToEncoded(int(k))
}

// FromEncoded runs n under the default limits.
func FromEncoded(n Nat) (int, error) {
	return DefaultLimits().FromEncoded(n)
}

// stop is panicked by the counting function to abandon a numeral that runs
// past its limit.
type stop struct{ err error }

// count runs n on an increment function that refuses to go past limit.
func count(n Nat, limit int) (out any, retErr error) {
	defer func() {
		if r := recover(); r != nil {
			s, ok := r.(stop)
			if !ok {
				panic(r)
			}
			retErr = s.err
		}
	}()
	return n.Iterate(func(x any) any {
		k, ok := x.(int)
		switch {
		case !ok:
			panic(stop{fmt.Errorf("churchnat: numeral passed %T to its function", x)})
		case k >= limit:
			panic(stop{ErrDepthExceeded{Depth: uint64(limit) + 1, Limit: limit, AtLeast: true}})
		}
		return k + 1
	}, 0), nil
}
