package churchcmd

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"myceliumweb.org/church"
	"myceliumweb.org/church/churchbool"
	"myceliumweb.org/church/churchcheck"
	"myceliumweb.org/church/churchnat"
	"myceliumweb.org/church/internal/testutil"
)

func TestParseBool(t *testing.T) {
	t.Parallel()
	for _, x := range []string{"true", "t", "1"} {
		b, err := ParseBool(x)
		require.NoError(t, err)
		require.Equal(t, "a", churchbool.Select(b, "a", "b"))
	}
	for _, x := range []string{"false", "f", "0"} {
		b, err := ParseBool(x)
		require.NoError(t, err)
		require.Equal(t, "b", churchbool.Select(b, "a", "b"))
	}
	_, err := ParseBool("maybe")
	require.Error(t, err)
}

func TestDescribe(t *testing.T) {
	t.Parallel()
	d, err := Describe(churchnat.Three)
	require.NoError(t, err)
	require.Equal(t, 3, d.Value)
	require.Equal(t, "λf.λx.f (f (f x))", d.Term)
	require.Equal(t, church.ContentID(churchnat.Three), d.CID)

	zero, err := Describe(churchnat.Zero())
	require.NoError(t, err)
	require.Equal(t, church.ContentID(churchbool.False()), zero.CID)
}

func TestWriteResults(t *testing.T) {
	t.Parallel()
	ctx := testutil.Context(t)
	cfg := churchcheck.DefaultConfig()
	cfg.Limits = churchnat.Limits{MaxDepth: 500}
	cfg.Seed = testutil.Seed(t)
	results, err := churchcheck.New(cfg).Run(ctx)
	require.NoError(t, err)

	var sb strings.Builder
	require.NoError(t, WriteResults(&sb, results))
	lines := strings.Split(strings.TrimSpace(sb.String()), "\n")
	require.Len(t, lines, len(results))
	for _, line := range lines {
		require.True(t, strings.HasPrefix(line, "PASSED"), line)
	}
}
