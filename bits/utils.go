package bits

import (
	"errors"
	"fmt"
)

// ErrInsufficient is reported when a buffer holds fewer bits than a read
// or fill needs. It is always recoverable: retry with more bits.
var ErrInsufficient = errors.New("bits: insufficient bits")

// ErrOverflow is reported when a write would run past the end of a
// fixed-size target.
var ErrOverflow = errors.New("bits: buffer overflow")

// CopyError describes a short copy. It matches ErrInsufficient (or
// ErrOverflow for writes) with errors.Is.
type CopyError struct {
	Need  uint
	Have  uint
	Write bool
}

func (e *CopyError) Error() string {
	if e.Write {
		return fmt.Sprintf("bits: buffer overflow: need room for %d bits, have %d", e.Need, e.Have)
	}
	return fmt.Sprintf("bits: insufficient bits: need %d, have %d", e.Need, e.Have)
}

func (e *CopyError) Is(target error) bool {
	if e.Write {
		return target == ErrOverflow
	}
	return target == ErrInsufficient
}

// bit order inside a byte is MSB-first: bit 0 is 0x80

func getBit(mem []byte, index uint) bool {
	return mem[index>>3]&(0x80>>(index&7)) != 0
}

func putBit(mem []byte, index uint, value bool) {
	if value {
		mem[index>>3] |= 0x80 >> (index & 7)
	} else {
		mem[index>>3] &^= 0x80 >> (index & 7)
	}
}

// copyBits copies n bits from src starting at bit from into dst starting
// at bit to. Byte-aligned runs are copied a byte at a time.
func copyBits(dst []byte, to uint, src []byte, from uint, n uint) {
	if from&7 == 0 && to&7 == 0 {
		nb := n >> 3
		copy(dst[to>>3:(to>>3)+nb], src[from>>3:(from>>3)+nb])
		done := nb << 3
		from += done
		to += done
		n -= done
	}
	for i := uint(0); i < n; i++ {
		putBit(dst, to+i, getBit(src, from+i))
	}
}

func bytesFor(nbits uint) uint {
	return (nbits + 7) >> 3
}
