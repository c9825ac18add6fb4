// Package churchbool encodes booleans as selectors.
//
// A Church boolean is a function of two arguments that returns one of them.
//
//	true  = λx.λy.x
//	false = λx.λy.y
//
// No Go bool is involved in either definition.
// FromHost and ToHost convert at the edges.
package churchbool

type Bool interface {
	// Apply returns x or y, and nothing else.
	Apply(x, y any) any
	// Term returns the de Bruijn form of the combinator.
	Term() string
	String() string

	isBool()
}

var (
	_ Bool = First{}
	_ Bool = Second{}
)

// First is the select-first combinator, λx.λy.x.
type First struct{}

func (First) isBool() {}

func (First) Apply(x, _ any) any {
	return x
}

func (First) Term() string {
	return "λλ1"
}

func (First) String() string {
	return "λx.λy.x"
}

// Second is the select-second combinator, λx.λy.y.
//
// Read as a function of (f, x) instead of (x, y), Second applies f zero
// times and returns x, so it also serves as the Church numeral zero.
type Second struct{}

func (Second) isBool() {}

func (Second) Apply(_, y any) any {
	return y
}

// Iterate applies f zero times to x.
func (Second) Iterate(_ func(any) any, x any) any {
	return x
}

func (Second) Term() string {
	return "λλ0"
}

func (Second) String() string {
	return "λx.λy.y"
}

// True returns the select-first combinator.
func True() Bool {
	return First{}
}

// False returns the select-second combinator.
func False() Bool {
	return Second{}
}

// Select applies b to x and y.
func Select[T any](b Bool, x, y T) T {
	// a nil interface T comes back as an untyped nil
	ret, _ := b.Apply(x, y).(T)
	return ret
}

// If evaluates only the branch selected by b.
func If[T any](b Bool, then, els func() T) T {
	return Select(b, then, els)()
}

// Not returns the other selector.
func Not(b Bool) Bool {
	return Select(b, False(), True())
}

// And returns a selector equivalent to b1 ∧ b2.
func And(b1, b2 Bool) Bool {
	return Select(b1, b2, False())
}

// Or returns a selector equivalent to b1 ∨ b2.
func Or(b1, b2 Bool) Bool {
	return Select(b1, True(), b2)
}

// FromHost encodes a Go bool.
func FromHost(x bool) Bool {
	if x {
		return True()
	}
	return False()
}

// ToHost decodes b by letting it choose between true and false.
func ToHost(b Bool) bool {
	return Select(b, true, false)
}
