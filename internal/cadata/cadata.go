// package cadata provides content IDs for encoded values.
//
// IDs are 32 byte hashes, printed with a sortable base64 alphabet.
package cadata

import (
	"bytes"
	"encoding/base64"
	"fmt"
)

const (
	IDSize = 32
	// Base64Alphabet is used when encoding IDs as base64 strings.
	// It is a URL and filepath safe encoding, which maintains ordering.
	Base64Alphabet = "-0123456789" + "ABCDEFGHIJKLMNOPQRSTUVWXYZ" + "_" + "abcdefghijklmnopqrstuvwxyz"
)

// ID identifies a particular piece of data
type ID [IDSize]byte

func IDFromBytes(x []byte) ID {
	id := ID{}
	copy(id[:], x)
	return id
}

var enc = base64.NewEncoding(Base64Alphabet).WithPadding(base64.NoPadding)

func (id ID) String() string {
	return enc.EncodeToString(id[:])
}

// MarshalText encodes ID using Base64Alphabet
func (id ID) MarshalText() ([]byte, error) {
	buf := make([]byte, enc.EncodedLen(len(id)))
	enc.Encode(buf, id[:])
	return buf, nil
}

// UnmarshalText decodes an ID encoded with MarshalText
func (id *ID) UnmarshalText(x []byte) error {
	if enc.DecodedLen(len(x)) != IDSize {
		return fmt.Errorf("cadata: wrong length for ID: %d", len(x))
	}
	_, err := enc.Decode(id[:], x)
	return err
}

func (a ID) Equals(b ID) bool {
	return a == b
}

func (a ID) Compare(b ID) int {
	return bytes.Compare(a[:], b[:])
}

func (id ID) IsZero() bool {
	return id == (ID{})
}
