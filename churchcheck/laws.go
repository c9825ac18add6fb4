package churchcheck

import (
	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"myceliumweb.org/church"
	"myceliumweb.org/church/churchbool"
	"myceliumweb.org/church/churchnat"
)

// Naturals generates naturals in [0, max].
// The generator is restartable: every Check draws a fresh sequence from the
// parameters' seed.
func Naturals(max int) gopter.Gen {
	return gen.IntRange(0, max)
}

// Law is a universally quantified statement about the encodings.
type Law struct {
	Name string
	Prop gopter.Prop
}

// Laws returns the laws checked by default, with naturals drawn from
// [0, l.BoundedMax()].
func Laws(l churchnat.Limits) []Law {
	nat := Naturals(l.BoundedMax())
	roundTrip := func(x int) (int, error) {
		n, err := l.ToEncoded(x)
		if err != nil {
			return 0, err
		}
		return l.FromEncoded(n)
	}
	succOf := func(x int) (int, error) {
		n, err := l.ToEncoded(x)
		if err != nil {
			return 0, err
		}
		return l.FromEncoded(churchnat.Succ(n))
	}
	return []Law{
		{
			Name: "true returns first arg",
			Prop: prop.ForAll(func(x, y int) bool {
				return churchbool.True().Apply(x, y) == x
			}, nat, nat),
		},
		{
			Name: "false returns second arg",
			Prop: prop.ForAll(func(x, y int) bool {
				return churchbool.False().Apply(x, y) == y
			}, nat, nat),
		},
		{
			Name: "selection ignores argument types",
			Prop: prop.ForAll(func(x int, y string) bool {
				return churchbool.Select[any](churchbool.True(), x, y) == any(x) &&
					churchbool.Select[any](churchbool.False(), x, y) == any(y)
			}, nat, gen.AnyString()),
		},
		{
			Name: "zero applies f no times",
			Prop: prop.ForAll(func(x int) (bool, error) {
				k, err := l.FromEncoded(churchnat.Zero())
				if err != nil {
					return false, err
				}
				return k == 0 && churchnat.Run(churchnat.Zero(), func(int) int { return -1 }, x) == x, nil
			}, nat),
		},
		{
			Name: "decoding inverts encoding",
			Prop: prop.ForAll(func(x int) (bool, error) {
				k, err := roundTrip(x)
				return k == x, err
			}, nat),
		},
		{
			Name: "succ adds one",
			Prop: prop.ForAll(func(x int) (bool, error) {
				k, err := succOf(x)
				return k == x+1, err
			}, nat),
		},
		{
			Name: "succ is injective",
			Prop: prop.ForAll(func(x, y int) (bool, error) {
				a, err := succOf(x)
				if err != nil {
					return false, err
				}
				b, err := succOf(y)
				if err != nil {
					return false, err
				}
				return (x == y) == (a == b), nil
			}, nat, nat),
		},
		{
			Name: "distinct numerals have distinct content",
			Prop: prop.ForAll(func(x, y int) (bool, error) {
				n, err := l.ToEncoded(x)
				if err != nil {
					return false, err
				}
				m, err := l.ToEncoded(y)
				if err != nil {
					return false, err
				}
				return (x == y) == (church.ContentID(n) == church.ContentID(m)), nil
			}, nat, nat),
		},
		{
			Name: "zero is false",
			Prop: prop.ForAll(func(x, y int) bool {
				z := churchnat.Zero()
				return church.ContentID(z) == church.ContentID(churchbool.False()) &&
					z.Iterate(func(any) any { return x }, y) == churchbool.False().Apply(x, y)
			}, nat, nat),
		},
	}
}
