// Package churchnat encodes natural numbers as Church numerals.
//
// The numeral for n takes a function f and a start value x and applies f to x
// n times.
//
//	0 = λf.λx.x
//	1 = λf.λx.f x
//	2 = λf.λx.f (f x)
//
// Numerals are built with Succ and run with Iterate. Neither recurses on the
// Go stack: successor chains are flattened when they are built and unrolled
// with a loop when they are run.
package churchnat

import (
	"fmt"
	"strings"

	"myceliumweb.org/church/churchbool"
)

type Nat interface {
	// Iterate applies f to x as many times as the numeral says.
	Iterate(f func(any) any, x any) any
	// Term returns the de Bruijn form of the numeral.
	Term() string
	String() string
}

var (
	_ Nat = churchbool.Second{}
	_ Nat = &succ{}
	_ Nat = Func(nil)
)

// Zero returns the numeral for 0.
// It is the false combinator from churchbool: picking the second of (f, x)
// is the same as applying f zero times to x.
func Zero() Nat {
	return churchbool.False().(Nat)
}

// Succ returns the numeral for one more than n.
// The extra application of f happens after all of n's applications.
func Succ(n Nat) Nat {
	if s, ok := n.(*succ); ok {
		return &succ{base: s.base, depth: s.depth + 1}
	}
	return &succ{base: n, depth: 1}
}

// succ is base followed by depth more applications of f.
// depth is always > 0.
type succ struct {
	base  Nat
	depth int
}

func (s *succ) Iterate(f func(any) any, x any) any {
	acc := s.base.Iterate(f, x)
	for range s.depth {
		acc = f(acc)
	}
	return acc
}

func (s *succ) Term() string {
	return termOf(s)
}

func (s *succ) String() string {
	return stringOf(s)
}

// Func adapts a closure to a Nat.
// The closure must apply f to x some number of times and nothing else.
type Func func(f func(any) any, x any) any

func (fn Func) Iterate(f func(any) any, x any) any {
	return fn(f, x)
}

func (fn Func) Term() string {
	return termOf(fn)
}

func (fn Func) String() string {
	return stringOf(fn)
}

// Run applies n to a typed function and start value.
func Run[T any](n Nat, f func(T) T, x T) T {
	ret, _ := n.Iterate(func(v any) any {
		v2, _ := v.(T)
		return f(v2)
	}, x).(T)
	return ret
}

// Named numerals.
var (
	One   = Succ(Zero())
	Two   = Succ(One)
	Three = Succ(Two)
	Four  = Succ(Three)
	Five  = Succ(Four)
	Six   = Succ(Five)
	Seven = Succ(Six)
	Eight = Succ(Seven)
	Nine  = Succ(Eight)
)

// Digit returns the named numeral for d.
func Digit(d int) (Nat, error) {
	digits := [...]Nat{Zero(), One, Two, Three, Four, Five, Six, Seven, Eight, Nine}
	if d < 0 || d >= len(digits) {
		return nil, fmt.Errorf("churchnat: %d is not a decimal digit", d)
	}
	return digits[d], nil
}

// applications counts how many times n applies its function.
// The count is done by running n, except for successor chains on zero.
func applications(n Nat) (int, error) {
	if s, ok := n.(*succ); ok {
		if _, ok := s.base.(churchbool.Second); ok {
			return s.depth, nil
		}
	}
	return DefaultLimits().FromEncoded(n)
}

const shortForm = 3

func termOf(n Nat) string {
	k, err := applications(n)
	if err != nil {
		return "λλ?"
	}
	var sb strings.Builder
	sb.WriteString("λλ")
	for range k {
		sb.WriteString("1 (")
	}
	sb.WriteString("0")
	for range k {
		sb.WriteString(")")
	}
	return sb.String()
}

func stringOf(n Nat) string {
	k, err := applications(n)
	switch {
	case err != nil:
		return "λf.λx.f^? x"
	case k == 0:
		return "λf.λx.x"
	case k > shortForm:
		return fmt.Sprintf("λf.λx.f^%d x", k)
	}
	var sb strings.Builder
	sb.WriteString("λf.λx.")
	for i := range k {
		sb.WriteString("f ")
		if i < k-1 {
			sb.WriteString("(")
		}
	}
	sb.WriteString("x")
	for range k - 1 {
		sb.WriteString(")")
	}
	return sb.String()
}
