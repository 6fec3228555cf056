package vlq

import (
	"encoding/binary"
	mbits "math/bits"

	"github.com/pi/bitvlq/bits"
	"github.com/pi/bitvlq/gut"
)

// ErrInsufficient is returned when a source runs out of bits before a
// value is complete. It is the same value as bits.ErrInsufficient.
var ErrInsufficient = bits.ErrInsufficient

// Encoded is an encoding in a fixed 9-byte array. Bytes past Len are
// zero.
type Encoded [MaxEncodedLen]byte

// Len returns the logical length in bytes.
func (e Encoded) Len() int {
	return LengthOf(e[0])
}

// Class returns the length class.
func (e Encoded) Class() Class {
	return ClassOfLengthByte(e[0])
}

// BitLen returns the number of meaningful bits, without padding.
func (e Encoded) BitLen() uint {
	return e.Class().TotalBits()
}

// Bytes returns a copy of the first Len bytes.
func (e Encoded) Bytes() []byte {
	return e[:e.Len()]
}

// AppendTo writes the padded encoding to b, aligning b to a byte boundary
// first.
func (e Encoded) AppendTo(b *bits.BufMut) error {
	return b.PutAligned(e[:e.Len()])
}

type bitWriter interface {
	Push(bit bool) error
	Put(src []byte, n uint) error
}

// Encode returns the encoding of v. It never fails.
func Encode(v uint64) (e Encoded) {
	var w bits.Capped
	w.Reset(MaxEncodedLen * 8)
	put(&w, ClassOf(v), v)
	copy(e[:], w.Bytes())
	return
}

// EncodeAny encodes any non-negative Go integer, or an integral float.
func EncodeAny(arg interface{}) (Encoded, error) {
	v, err := gut.ToUint64(arg)
	if err != nil {
		return Encoded{}, err
	}
	return Encode(v), nil
}

// Write appends the unpadded encoding of v to b. Nothing is written if b
// lacks room.
func Write(b *bits.BufMut, v uint64) error {
	c := ClassOf(v)
	if room := b.Cap() - b.Len(); room < c.TotalBits() {
		return &bits.CopyError{Need: c.TotalBits(), Have: room, Write: true}
	}
	put(b, c, v)
	return nil
}

func put(w bitWriter, c Class, v uint64) {
	for i := Class(0); i < c; i++ {
		must(w.Push(false))
	}
	if c < MaxClass {
		must(w.Push(true))
	}
	var payload [8]byte
	binary.LittleEndian.PutUint64(payload[:], v)
	for i := range payload {
		payload[i] = mbits.Reverse8(payload[i])
	}
	must(w.Put(payload[:], c.PayloadBits()))
}

// room is checked before put, so a write failure is a bug
func must(err error) {
	if err != nil {
		panic("vlq: " + err.Error())
	}
}

// Decode reads one value from b, consuming exactly its meaningful bits
// and no padding. If b runs short, Decode returns an error matching
// ErrInsufficient and leaves the cursor where it was.
func Decode(b *bits.Buf) (uint64, error) {
	start := b.Pos()
	c, ok := readClass(b)
	if !ok {
		have := b.Pos() - start
		b.SetPos(start)
		return 0, &bits.CopyError{Need: have + 1, Have: have}
	}
	var payload [8]byte
	if err := b.CopyToSlice(payload[:], c.PayloadBits()); err != nil {
		b.SetPos(start)
		return 0, err
	}
	return interpret(payload), nil
}

// readClass counts zero bits up to MaxClass, consuming the terminator if
// there is one.
func readClass(b *bits.Buf) (Class, bool) {
	var zeros Class
	for zeros < MaxClass {
		bit, ok := b.Pop()
		if !ok {
			return 0, false
		}
		if bit {
			break
		}
		zeros++
	}
	return zeros, true
}

func interpret(payload [8]byte) uint64 {
	for i := range payload {
		payload[i] = mbits.Reverse8(payload[i])
	}
	return binary.LittleEndian.Uint64(payload[:])
}
