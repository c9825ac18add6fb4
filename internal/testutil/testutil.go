package testutil

import (
	"context"
	"testing"
	"time"

	"github.com/leanovate/gopter"
	"github.com/stretchr/testify/require"
	"go.brendoncarroll.net/stdctx/logctx"
	"go.uber.org/zap"

	"myceliumweb.org/church/spec"
)

func Context(t testing.TB) context.Context {
	ctx := context.Background()
	ctx, cf := context.WithCancel(ctx)
	t.Cleanup(cf)
	l, err := zap.NewDevelopment()
	require.NoError(t, err)
	ctx = logctx.NewContext(ctx, l)
	return ctx
}

// Seed returns a fresh seed for property tests and logs it, so a failure
// can be replayed.
func Seed(t testing.TB) int64 {
	seed := time.Now().UnixNano()
	t.Logf("seed: %d", seed)
	return seed
}

// Params returns gopter parameters seeded with Seed.
func Params(t testing.TB) *gopter.TestParameters {
	params := gopter.DefaultTestParametersWithSeed(Seed(t))
	params.MinSuccessfulTests = spec.DefaultSamples
	return params
}
