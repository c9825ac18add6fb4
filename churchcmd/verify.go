package churchcmd

import (
	"fmt"
	"io"
	"strconv"

	"go.brendoncarroll.net/star"

	"myceliumweb.org/church/churchcheck"
	"myceliumweb.org/church/churchnat"
	"myceliumweb.org/church/spec"
)

var verifyCmd = star.Command{
	Metadata: star.Metadata{
		Short: "check the encodings against their laws with random samples",
	},
	Flags: []star.IParam{samplesParam, seedParam, maxDepthParam, parallelParam},
	F: func(c star.Context) error {
		ctx := logContext(c.Context)
		v := churchcheck.New(churchcheck.Config{
			Limits:   churchnat.Limits{MaxDepth: maxDepthParam.Load(c)},
			Samples:  samplesParam.Load(c),
			Seed:     seedParam.Load(c),
			Parallel: parallelParam.Load(c),
		})
		results, err := v.Run(ctx)
		c.Printf("SEED: %d\n", v.Seed())
		if werr := WriteResults(c.StdOut, results); werr != nil {
			return werr
		}
		return err
	},
}

// WriteResults prints one line per law.
func WriteResults(w io.Writer, results []churchcheck.Result) error {
	for _, r := range results {
		line := fmt.Sprintf("%-8v %-42s %d samples", r.Status, r.Law, r.Samples)
		if r.Status == churchcheck.Failed {
			line += fmt.Sprintf("  counterexample=%v", churchcheck.Counterexample(r.Args))
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

var samplesParam = star.Param[int]{
	Name:    "samples",
	Default: star.Ptr(strconv.Itoa(spec.DefaultSamples)),
	Parse:   strconv.Atoi,
}

var seedParam = star.Param[int64]{
	Name:    "seed",
	Default: star.Ptr("0"),
	Parse: func(x string) (int64, error) {
		return strconv.ParseInt(x, 10, 64)
	},
}

var maxDepthParam = star.Param[int]{
	Name:    "max-depth",
	Default: star.Ptr(strconv.Itoa(spec.DefaultMaxDepth)),
	Parse:   strconv.Atoi,
}

var parallelParam = star.Param[int]{
	Name:    "parallel",
	Default: star.Ptr("1"),
	Parse:   strconv.Atoi,
}
