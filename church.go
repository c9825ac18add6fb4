// Package church is the root of a library of Church encodings: booleans and
// natural numbers built only from higher-order functions.
//
// The encodings live in churchbool and churchnat. churchcheck checks that
// they obey the laws of the values they stand for.
package church

import (
	"lukechampine.com/blake3"

	"myceliumweb.org/church/internal/cadata"
	"myceliumweb.org/church/spec"
)

const (
	// MaxDepth is the default limit on how many times a numeral may
	// apply its function during conversion.
	MaxDepth = spec.DefaultMaxDepth
	// BoundedMax is the largest natural sampled by default.
	BoundedMax = MaxDepth - spec.SafetyMargin
)

type (
	// CID is a Content ID
	CID = cadata.ID
)

// Termer is implemented by encoded values.
// Term returns the value's lambda term in de Bruijn notation,
// where every bound variable is replaced by its binder distance.
type Termer interface {
	Term() string
}

// Hash calculates the hash of x.
// If tag == nil, then the hash is unkeyed.
// If tag != nil, then the hash will be keyed with the tag.
func Hash(tag *cadata.ID, x []byte) (ret cadata.ID) {
	var key []byte
	if tag != nil {
		key = tag[:]
	}
	h := blake3.New(32, key)
	h.Write(x)
	h.Sum(ret[:0])
	return ret
}

// ContentID hashes the de Bruijn term of x.
// Alpha-equivalent terms get the same ID, so the encoded zero and false,
// which are the same combinator, share one.
func ContentID(x Termer) CID {
	return Hash(nil, []byte(x.Term()))
}
