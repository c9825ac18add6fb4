// Package churchcheck checks the Church encodings against the laws of the
// values they encode, using randomly drawn samples.
//
// Each law starts Pending and ends Passed, or Failed with the sample that
// broke it. A run stops at the first failure.
package churchcheck

import (
	"context"
	"fmt"
	"time"

	"github.com/leanovate/gopter"
	"go.brendoncarroll.net/exp/slices2"
	"go.brendoncarroll.net/stdctx/logctx"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"myceliumweb.org/church/churchnat"
	"myceliumweb.org/church/spec"
)

type Config struct {
	Limits churchnat.Limits
	// Samples is the number of passing samples needed per law.
	Samples int
	// Seed for the sample generator. 0 picks one from the clock.
	Seed int64
	// Parallel is the number of laws checked at once.
	Parallel int
}

func DefaultConfig() Config {
	return Config{
		Limits:   churchnat.DefaultLimits(),
		Samples:  spec.DefaultSamples,
		Parallel: 1,
	}
}

type Status int

const (
	Pending Status = iota
	Passed
	Failed
)

func (s Status) String() string {
	switch s {
	case Pending:
		return "PENDING"
	case Passed:
		return "PASSED"
	case Failed:
		return "FAILED"
	default:
		return fmt.Sprintf("Status(%d)", int(s))
	}
}

type Result struct {
	Law    string
	Status Status
	// Samples is the number of samples that passed.
	Samples int
	// Args holds the counterexample when Status is Failed.
	Args gopter.PropArgs
	// Err is set if the law returned an error or panicked.
	Err error
}

// ErrLawFailed is returned by Run for the first law that does not hold.
type ErrLawFailed struct {
	Law  string
	Args gopter.PropArgs
	Err  error
}

func (e ErrLawFailed) Error() string {
	msg := fmt.Sprintf("law %q failed", e.Law)
	if len(e.Args) > 0 {
		msg += fmt.Sprintf(" for %v (original sample %v)", Counterexample(e.Args), OriginalSample(e.Args))
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e ErrLawFailed) Unwrap() error {
	return e.Err
}

// Counterexample returns the failing arguments, after shrinking.
func Counterexample(args gopter.PropArgs) []any {
	return slices2.Map(args, func(a *gopter.PropArg) any {
		return a.Arg
	})
}

// OriginalSample returns the failing arguments as they were first drawn.
func OriginalSample(args gopter.PropArgs) []any {
	return slices2.Map(args, func(a *gopter.PropArg) any {
		return a.OrigArg
	})
}

type Verifier struct {
	cfg  Config
	laws []Law
}

// New creates a Verifier for the default laws.
func New(cfg Config) *Verifier {
	return NewWithLaws(cfg, Laws(cfg.Limits))
}

// NewWithLaws creates a Verifier for an explicit list of laws.
func NewWithLaws(cfg Config, laws []Law) *Verifier {
	if cfg.Samples <= 0 {
		cfg.Samples = spec.DefaultSamples
	}
	if cfg.Parallel <= 0 {
		cfg.Parallel = 1
	}
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	return &Verifier{cfg: cfg, laws: laws}
}

func (v *Verifier) Seed() int64 {
	return v.cfg.Seed
}

func (v *Verifier) Laws() []Law {
	return v.laws
}

func (v *Verifier) params() *gopter.TestParameters {
	params := gopter.DefaultTestParametersWithSeed(v.cfg.Seed)
	params.MinSuccessfulTests = v.cfg.Samples
	return params
}

// Check draws samples for a single law until it fails or the sample budget
// is spent.
func (v *Verifier) Check(ctx context.Context, law Law) Result {
	res := law.Prop.Check(v.params())
	ret := Result{Law: law.Name, Samples: res.Succeeded}
	switch res.Status {
	case gopter.TestPassed, gopter.TestProved:
		ret.Status = Passed
		logctx.Info(ctx, "law passed", zap.String("law", law.Name), zap.Int("samples", res.Succeeded))
		return ret
	case gopter.TestExhausted:
		ret.Err = fmt.Errorf("gave up after %d samples, %d discarded", res.Succeeded, res.Discarded)
	case gopter.TestError:
		ret.Err = res.Error
	}
	ret.Status = Failed
	ret.Args = res.Args
	logctx.Error(ctx, "law failed",
		zap.String("law", law.Name),
		zap.Any("counterexample", Counterexample(res.Args)),
		zap.Any("sample", OriginalSample(res.Args)),
		zap.Error(ret.Err),
	)
	return ret
}

// Run checks every law and returns one Result per law, in order.
// The first failure is returned as an ErrLawFailed; laws that had not started
// by then are left Pending.
func (v *Verifier) Run(ctx context.Context) ([]Result, error) {
	logctx.Info(ctx, "checking laws",
		zap.Int("laws", len(v.laws)),
		zap.Int("samples", v.cfg.Samples),
		zap.Int("max", v.cfg.Limits.BoundedMax()),
		zap.Int64("seed", v.cfg.Seed),
	)
	results := make([]Result, len(v.laws))
	for i, law := range v.laws {
		results[i] = Result{Law: law.Name, Status: Pending}
	}
	eg, ectx := errgroup.WithContext(ctx)
	eg.SetLimit(v.cfg.Parallel)
	for i, law := range v.laws {
		eg.Go(func() error {
			if ectx.Err() != nil {
				return nil
			}
			results[i] = v.Check(ectx, law)
			if results[i].Status == Failed {
				return ErrLawFailed{Law: law.Name, Args: results[i].Args, Err: results[i].Err}
			}
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return results, err
	}
	return results, ctx.Err()
}
