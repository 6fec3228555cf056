package bits

// CappedBytes is the fixed arena size of a Capped, enough for a 72-bit
// scratch.
const CappedBytes = 9

// Capped is a fill target with fixed storage that accepts bits up to a
// limit chosen at Reset. It is filled incrementally from any number of
// sources and keeps what it has between fills.
//
// The zero value has a limit of 0 and is therefore already full.
type Capped struct {
	mem   [CappedBytes]byte
	limit uint
	len   uint
}

// Reset empties the target and sets its limit in bits.
func (c *Capped) Reset(limit uint) {
	if limit > CappedBytes*8 {
		panic("bits: capped limit exceeds arena")
	}
	c.mem = [CappedBytes]byte{}
	c.limit = limit
	c.len = 0
}

func (c *Capped) Limit() uint {
	return c.limit
}

func (c *Capped) Len() uint {
	return c.len
}

func (c *Capped) Remaining() uint {
	return c.limit - c.len
}

func (c *Capped) Full() bool {
	return c.len == c.limit
}

func (c *Capped) Push(bit bool) error {
	if c.len >= c.limit {
		return &CopyError{Need: 1, Have: 0, Write: true}
	}
	putBit(c.mem[:], c.len, bit)
	c.len++
	return nil
}

// Put appends the first n bits of src. Either all n bits fit or nothing is
// written.
func (c *Capped) Put(src []byte, n uint) error {
	if n > uint(len(src))*8 {
		panic("bits: source too small")
	}
	if room := c.Remaining(); room < n {
		return &CopyError{Need: n, Have: room, Write: true}
	}
	copyBits(c.mem[:], c.len, src, 0, n)
	c.len += n
	return nil
}

// Fill moves as many bits as src has, up to the limit, from src into the
// target. It returns nil once the target is full; otherwise src has been
// drained and a *CopyError matching ErrInsufficient reports the shortfall.
func (c *Capped) Fill(src *Buf) error {
	n := c.Remaining()
	avail := src.Remaining()
	if avail < n {
		copyBits(c.mem[:], c.len, src.data, src.pos, avail)
		c.len += avail
		src.pos += avail
		return &CopyError{Need: n, Have: avail}
	}
	copyBits(c.mem[:], c.len, src.data, src.pos, n)
	c.len += n
	src.pos += n
	return nil
}

// Bytes returns the filled bytes; the last one may be partial.
func (c *Capped) Bytes() []byte {
	return c.mem[:bytesFor(c.len)]
}

// Buf returns a read view over the filled bits. The view aliases the
// arena and is invalidated by Reset.
func (c *Capped) Buf() *Buf {
	return NewBufLen(c.mem[:], c.len)
}
