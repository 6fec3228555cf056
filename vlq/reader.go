package vlq

import (
	"github.com/pi/bitvlq/bits"
	"github.com/pi/bitvlq/debug"
)

// State is the phase of a Reader.
type State uint8

const (
	AwaitingLengthByte State = iota
	AwaitingPayload
	Complete
)

func (s State) String() string {
	switch s {
	case AwaitingLengthByte:
		return "AwaitingLengthByte"
	case AwaitingPayload:
		return "AwaitingPayload"
	case Complete:
		return "Complete"
	default:
		return "State(?)"
	}
}

// Reader decodes one value from bits that arrive over several calls to
// Poll. It never blocks and never reads a bit twice: bits taken from a
// source are kept in the Reader's own scratch until the value is
// complete.
//
// The zero value is ready to use. A Reader decodes exactly one value;
// polling it after Complete panics.
type Reader struct {
	state State
	// first byte of the encoding, which fixes the class
	length bits.Capped
	// the whole encoding minus padding, seeded with the first byte
	payload bits.Capped
}

func NewReader() *Reader {
	return &Reader{}
}

func (r *Reader) State() State {
	return r.state
}

// Buffered returns the number of bits taken from sources so far.
func (r *Reader) Buffered() uint {
	if r.state == AwaitingLengthByte {
		return r.length.Len()
	}
	return r.payload.Len()
}

// Poll takes as many bits from src as the value still needs, and no more.
// It returns the value once the last bit has been taken. Until then it
// returns an error matching ErrInsufficient; src is drained and the caller
// polls again with more bits.
func (r *Reader) Poll(src *bits.Buf) (uint64, error) {
	switch r.state {
	case AwaitingLengthByte:
		if r.length.Limit() == 0 {
			r.length.Reset(8)
		}
		if err := r.length.Fill(src); err != nil {
			return 0, err
		}
		first := r.length.Bytes()[0]
		c := ClassOfLengthByte(first)
		r.payload.Reset(c.TotalBits())
		must(r.payload.Put(r.length.Bytes(), 8))
		r.state = AwaitingPayload
		if debug.Enabled {
			debug.Logger().Debug().
				Uint8("class", uint8(c)).
				Uint("bits", c.TotalBits()).
				Msg("vlq reader: length byte complete")
		}
		fallthrough
	case AwaitingPayload:
		if err := r.payload.Fill(src); err != nil {
			return 0, err
		}
		v, err := Decode(r.payload.Buf())
		if err != nil {
			// the scratch holds exactly one whole encoding
			panic("vlq: decode of complete scratch failed: " + err.Error())
		}
		r.state = Complete
		if debug.Enabled {
			debug.Log("vlq reader: complete, value %d", v)
		}
		return v, nil
	default:
		panic("vlq: Reader polled after Complete")
	}
}
