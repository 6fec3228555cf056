package bits

// Buf is a read cursor over a sequence of bits backed by a byte slice.
type Buf struct {
	data []byte
	len  uint
	pos  uint
	// data was allocated by Append and is not shared with a caller or a
	// parent Buf
	owned bool
}

// NewBuf returns a Buf over all bits of data.
func NewBuf(data []byte) *Buf {
	return &Buf{
		data: data,
		len:  uint(len(data)) * 8,
	}
}

// NewBufLen returns a Buf over the first nbits bits of data.
func NewBufLen(data []byte, nbits uint) *Buf {
	if nbits > uint(len(data))*8 {
		panic("bits: length exceeds backing slice")
	}
	return &Buf{
		data: data,
		len:  nbits,
	}
}

// Len returns the number of bits in the buffer, consumed or not.
func (b *Buf) Len() uint {
	return b.len
}

// Pos returns the read cursor.
func (b *Buf) Pos() uint {
	return b.pos
}

func (b *Buf) SetPos(newPos uint) {
	if newPos > b.len {
		panic("bits: position out of bounds")
	}
	b.pos = newPos
}

// Remaining returns the number of unread bits.
func (b *Buf) Remaining() uint {
	return b.len - b.pos
}

// Pop reads one bit. ok is false when the buffer is exhausted.
func (b *Buf) Pop() (bit bool, ok bool) {
	if b.pos >= b.len {
		return false, false
	}
	bit = getBit(b.data, b.pos)
	b.pos++
	return bit, true
}

// CopyToSlice reads n bits into dst starting at its first bit. Either all
// n bits are copied or none are and the cursor stays put.
func (b *Buf) CopyToSlice(dst []byte, n uint) error {
	if n > uint(len(dst))*8 {
		panic("bits: destination too small")
	}
	if rem := b.Remaining(); rem < n {
		return &CopyError{Need: n, Have: rem}
	}
	copyBits(dst, 0, b.data, b.pos, n)
	b.pos += n
	return nil
}

// Slice returns a view of bits [from, to) with its cursor at from. The
// view shares storage with b.
func (b *Buf) Slice(from, to uint) *Buf {
	if from > to || to > b.len {
		panic("bits: invalid slice bounds")
	}
	return &Buf{
		data: b.data,
		len:  to,
		pos:  from,
	}
}

// Append adds whole bytes after the last bit. The buffer must currently
// end on a byte boundary. The first Append moves the bits into storage
// owned by b, so the slice b was built on and any parent view are never
// written.
func (b *Buf) Append(p []byte) {
	if b.len&7 != 0 {
		panic("bits: append to unaligned buffer")
	}
	n := b.len >> 3
	if b.owned {
		b.data = append(b.data[:n], p...)
	} else {
		b.data = append(b.data[:n:n], p...)
		b.owned = true
	}
	b.len += uint(len(p)) * 8
}

// Compact drops fully consumed bytes so a long-lived streaming buffer
// does not grow without bound. Views taken with Slice before Compact no
// longer line up with b.
func (b *Buf) Compact() {
	skip := b.pos >> 3
	if skip == 0 {
		return
	}
	rest := b.data[skip:bytesFor(b.len)]
	if b.owned {
		n := copy(b.data, rest)
		b.data = b.data[:n]
	} else {
		b.data = append([]byte(nil), rest...)
		b.owned = true
	}
	b.pos -= skip << 3
	b.len -= skip << 3
}
