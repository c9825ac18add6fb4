package churchcmd

import (
	"fmt"
	"strconv"

	"go.brendoncarroll.net/star"

	"myceliumweb.org/church"
	"myceliumweb.org/church/churchbool"
	"myceliumweb.org/church/churchnat"
)

var selectCmd = star.Command{
	Metadata: star.Metadata{
		Short: "apply a Church boolean to two arguments",
	},
	Pos: []star.IParam{boolParam, xParam, yParam},
	F: func(c star.Context) error {
		b := boolParam.Load(c)
		c.Printf("%s\n", churchbool.Select(b, xParam.Load(c), yParam.Load(c)))
		return nil
	},
}

var encodeCmd = star.Command{
	Metadata: star.Metadata{
		Short: "encode a natural as a Church numeral",
	},
	Pos: []star.IParam{natParam},
	F: func(c star.Context) error {
		n, err := churchnat.ToEncoded(natParam.Load(c))
		if err != nil {
			return err
		}
		desc, err := Describe(n)
		if err != nil {
			return err
		}
		c.Printf("TERM:  %s\n", desc.Term)
		c.Printf("CID:   %v\n", desc.CID)
		c.Printf("VALUE: %d\n", desc.Value)
		return nil
	},
}

var succCmd = star.Command{
	Metadata: star.Metadata{
		Short: "decode the successor of a natural's Church numeral",
	},
	Pos: []star.IParam{natParam},
	F: func(c star.Context) error {
		n, err := churchnat.ToEncoded(natParam.Load(c))
		if err != nil {
			return err
		}
		k, err := churchnat.FromEncoded(churchnat.Succ(n))
		if err != nil {
			return err
		}
		c.Printf("%d\n", k)
		return nil
	},
}

// Description is what the encode command prints about a numeral.
type Description struct {
	Term  string
	CID   church.CID
	Value int
}

func Describe(n churchnat.Nat) (Description, error) {
	k, err := churchnat.FromEncoded(n)
	if err != nil {
		return Description{}, err
	}
	return Description{
		Term:  n.String(),
		CID:   church.ContentID(n),
		Value: k,
	}, nil
}

// ParseBool parses the name of a Church boolean.
func ParseBool(x string) (churchbool.Bool, error) {
	switch x {
	case "true", "t", "1":
		return churchbool.True(), nil
	case "false", "f", "0":
		return churchbool.False(), nil
	default:
		return nil, fmt.Errorf("could not parse boolean from %q", x)
	}
}

var boolParam = star.Param[churchbool.Bool]{
	Name:  "b",
	Parse: ParseBool,
}

var xParam = star.Param[string]{
	Name:  "x",
	Parse: star.ParseString,
}

var yParam = star.Param[string]{
	Name:  "y",
	Parse: star.ParseString,
}

var natParam = star.Param[int]{
	Name:  "k",
	Parse: strconv.Atoi,
}
