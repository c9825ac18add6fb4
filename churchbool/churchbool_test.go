package churchbool

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"myceliumweb.org/church/internal/testutil"
)

func TestSelect(t *testing.T) {
	t.Parallel()
	require.Equal(t, "a", Select(True(), "a", "b"))
	require.Equal(t, "b", Select(False(), "a", "b"))
	require.Equal(t, 1, Select(True(), 1, 2))
	require.Equal(t, 2, Select(False(), 1, 2))
}

func TestSelectNil(t *testing.T) {
	t.Parallel()
	var x error
	require.Nil(t, Select(True(), x, nil))
	require.Nil(t, Select(False(), nil, x))
}

func TestApplyMixedTypes(t *testing.T) {
	t.Parallel()
	require.Equal(t, 1, True().Apply(1, "foo"))
	require.Equal(t, "foo", False().Apply(1, "foo"))
}

func TestSelectionLaws(t *testing.T) {
	t.Parallel()
	properties := gopter.NewProperties(testutil.Params(t))
	properties.Property("true returns first arg", prop.ForAll(
		func(x, y int) bool {
			return True().Apply(x, y) == x
		},
		gen.Int(), gen.Int(),
	))
	properties.Property("false returns second arg", prop.ForAll(
		func(x, y int) bool {
			return False().Apply(x, y) == y
		},
		gen.Int(), gen.Int(),
	))
	properties.Property("selection ignores argument types", prop.ForAll(
		func(x string, y int) bool {
			return True().Apply(x, y) == any(x) && False().Apply(x, y) == any(y)
		},
		gen.AnyString(), gen.Int(),
	))
	properties.TestingRun(t)
}

func TestIf(t *testing.T) {
	t.Parallel()
	var called []string
	branch := func(name string) func() string {
		return func() string {
			called = append(called, name)
			return name
		}
	}
	require.Equal(t, "then", If(True(), branch("then"), branch("else")))
	require.Equal(t, "else", If(False(), branch("then"), branch("else")))
	require.Equal(t, []string{"then", "else"}, called)
}

func TestLogic(t *testing.T) {
	t.Parallel()
	for _, a := range []bool{true, false} {
		for _, b := range []bool{true, false} {
			x, y := FromHost(a), FromHost(b)
			assert.Equal(t, a && b, ToHost(And(x, y)), "%v and %v", a, b)
			assert.Equal(t, a || b, ToHost(Or(x, y)), "%v or %v", a, b)
		}
		assert.Equal(t, !a, ToHost(Not(FromHost(a))))
	}
}

func TestString(t *testing.T) {
	t.Parallel()
	require.Equal(t, "λx.λy.x", True().String())
	require.Equal(t, "λx.λy.y", False().String())
	require.NotEqual(t, True().Term(), False().Term())
}

func TestSecondIsZero(t *testing.T) {
	t.Parallel()
	calls := 0
	out := Second{}.Iterate(func(x any) any {
		calls++
		return x
	}, "x")
	require.Equal(t, "x", out)
	require.Zero(t, calls)
}
