package gut

var smallBitLenTable = [16]uint8{
	0,
	1,
	2,
	2,
	3,
	3,
	3,
	3,
	4,
	4,
	4,
	4,
	4,
	4,
	4,
	4,
}

// BitLen returns the number of bits needed to represent x; 0 for x == 0.
func BitLen(x uint64) (n uint) {
	if x >= 1<<32 {
		x >>= 32
		n += 32
	}
	if x >= 1<<16 {
		x >>= 16
		n += 16
	}
	if x >= 1<<8 {
		x >>= 8
		n += 8
	}
	if x >= 1<<4 {
		x >>= 4
		n += 4
	}
	return n + uint(smallBitLenTable[x])
}

// LeadingZeros8 counts the zero bits above the highest set bit of b; 8
// for b == 0.
func LeadingZeros8(b byte) uint {
	return 8 - BitLen(uint64(b))
}
