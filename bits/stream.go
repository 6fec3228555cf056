package bits

// BufMut is a write cursor over a caller-owned byte slice. It never grows
// the slice; writes past its end fail with ErrOverflow.
type BufMut struct {
	data []byte
	len  uint
}

func NewBufMut(data []byte) *BufMut {
	return &BufMut{
		data: data,
	}
}

// Len returns the number of bits written.
func (b *BufMut) Len() uint {
	return b.len
}

// Cap returns the capacity in bits.
func (b *BufMut) Cap() uint {
	return uint(len(b.data)) * 8
}

// Bytes returns the written bytes, including a partially written last one.
func (b *BufMut) Bytes() []byte {
	return b.data[:bytesFor(b.len)]
}

func (b *BufMut) Push(bit bool) error {
	if b.len >= b.Cap() {
		return &CopyError{Need: 1, Have: 0, Write: true}
	}
	putBit(b.data, b.len, bit)
	b.len++
	return nil
}

// Put writes the first n bits of src. Either all n bits are written or
// none are.
func (b *BufMut) Put(src []byte, n uint) error {
	if n > uint(len(src))*8 {
		panic("bits: source too small")
	}
	if room := b.Cap() - b.len; room < n {
		return &CopyError{Need: n, Have: room, Write: true}
	}
	copyBits(b.data, b.len, src, 0, n)
	b.len += n
	return nil
}

// PutAligned pads the cursor with zero bits to a byte boundary and then
// writes src as whole bytes.
func (b *BufMut) PutAligned(src []byte) error {
	aligned := (b.len + 7) &^ 7
	need := aligned - b.len + uint(len(src))*8
	if room := b.Cap() - b.len; room < need {
		return &CopyError{Need: need, Have: room, Write: true}
	}
	for b.len < aligned {
		putBit(b.data, b.len, false)
		b.len++
	}
	copy(b.data[b.len>>3:], src)
	b.len += uint(len(src)) * 8
	return nil
}

// Reader returns a read view over the bits written so far.
func (b *BufMut) Reader() *Buf {
	return NewBufLen(b.data, b.len)
}
