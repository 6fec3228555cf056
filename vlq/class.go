package vlq

import (
	"github.com/pi/bitvlq/gut"
)

// FormatVersion identifies the class table and bit order below. Data
// persisted with one version is only readable with the same version.
const FormatVersion = 1

// Class is the length class of an encoding: the number of leading zero
// bits, which selects the payload width and the encoded length.
type Class uint8

const MaxClass Class = 8

// MaxEncodedLen is the longest encoding in bytes.
const MaxEncodedLen = 9

// payload widths per class; the steps are not uniform and are part of the
// wire contract
var payloadBits = [MaxClass + 1]uint{7, 14, 20, 28, 35, 42, 49, 56, 64}

// classByBitLen maps the bit length of a value to the smallest class whose
// payload holds it.
var classByBitLen [65]Class

func init() {
	c := Class(0)
	for n := uint(0); n <= 64; n++ {
		for payloadBits[c] < n {
			c++
		}
		classByBitLen[n] = c
	}
}

// ClassOf returns the class Encode picks for v.
func ClassOf(v uint64) Class {
	return classByBitLen[gut.BitLen(v)]
}

// ClassOfLengthByte returns the class announced by the first byte of an
// encoding.
func ClassOfLengthByte(b byte) Class {
	return Class(gut.LeadingZeros8(b))
}

// LengthOf returns the total encoded length in bytes, predicted from the
// first byte alone.
func LengthOf(first byte) int {
	return ClassOfLengthByte(first).Bytes()
}

// EncodedLen returns the number of bytes Encode(v) occupies.
func EncodedLen(v uint64) int {
	return ClassOf(v).Bytes()
}

func (c Class) check() {
	if c > MaxClass {
		panic("vlq: malformed length class")
	}
}

// PayloadBits returns the number of value bits carried by class c.
func (c Class) PayloadBits() uint {
	c.check()
	return payloadBits[c]
}

// PrefixBits returns the zero run plus terminator. The top class has no
// terminator: eight zeros already identify it.
func (c Class) PrefixBits() uint {
	c.check()
	if c == MaxClass {
		return uint(c)
	}
	return uint(c) + 1
}

// TotalBits returns the meaningful bits of an encoding, without padding.
func (c Class) TotalBits() uint {
	return c.PrefixBits() + c.PayloadBits()
}

// Bytes returns the padded encoded length.
func (c Class) Bytes() int {
	return int((c.TotalBits() + 7) / 8)
}

// Max returns the largest value class c holds.
func (c Class) Max() uint64 {
	n := c.PayloadBits()
	if n == 64 {
		return ^uint64(0)
	}
	return 1<<n - 1
}
