package gut

import (
	"testing"

	"github.com/pi/bitvlq/th"
	"github.com/stretchr/testify/assert"
)

func TestBitLen(t *testing.T) {
	bl := func(v uint64) (n uint) {
		for v > 0 {
			n++
			v >>= 1
		}
		return
	}

	g := th.NewSeqGen(th.SgMagnitude)
	for i := 0; i < 10000; i++ {
		v := g.Next()
		assert.EqualValues(t, bl(v), BitLen(v), "%x", v)
	}
	assert.EqualValues(t, 0, BitLen(0))
	assert.EqualValues(t, 64, BitLen(^uint64(0)))
	for i := uint(0); i < 64; i++ {
		assert.EqualValues(t, i+1, BitLen(1<<i))
	}
}

func TestLeadingZeros8(t *testing.T) {
	assert.EqualValues(t, 8, LeadingZeros8(0))
	assert.EqualValues(t, 0, LeadingZeros8(0xFF))
	assert.EqualValues(t, 0, LeadingZeros8(0x80))
	assert.EqualValues(t, 7, LeadingZeros8(0x01))
	assert.EqualValues(t, 3, LeadingZeros8(0x1F))
}
