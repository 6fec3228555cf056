package vlq

import (
	"encoding/binary"
	"fmt"

	"github.com/icza/bitio"
	"github.com/pi/bitvlq/bits"
)

// WriteBits writes the unpadded encoding of v to a bitio stream, so
// consecutive values pack without gaps.
func WriteBits(w *bitio.Writer, v uint64) error {
	e := Encode(v)
	n := e.BitLen()
	for i := 0; n > 0; i++ {
		k := n
		if k > 8 {
			k = 8
		}
		if err := w.WriteBits(uint64(e[i]>>(8-k)), uint8(k)); err != nil {
			return err
		}
		n -= k
	}
	return nil
}

// ReadBits reads one unpadded encoding from a bitio stream. The end of
// the stream inside a value gives an error matching ErrInsufficient.
// Unlike Decode, a failed ReadBits cannot be retried: the bits it read
// before the failure are gone from r. Use Reader to decode a value that
// may arrive in pieces.
func ReadBits(r *bitio.Reader) (uint64, error) {
	var scratch bits.Capped
	scratch.Reset(MaxClass.TotalBits())

	var c Class
	for c < MaxClass {
		bit, err := r.ReadBool()
		if err != nil {
			return 0, short(err)
		}
		must(scratch.Push(bit))
		if bit {
			break
		}
		c++
	}

	n := c.PayloadBits()
	x, err := r.ReadBits(uint8(n))
	if err != nil {
		return 0, short(err)
	}
	var tmp [8]byte
	binary.BigEndian.PutUint64(tmp[:], x<<(64-n))
	must(scratch.Put(tmp[:], n))
	return Decode(scratch.Buf())
}

func short(err error) error {
	return fmt.Errorf("vlq: %w: %w", ErrInsufficient, err)
}
