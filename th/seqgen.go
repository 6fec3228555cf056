// Package th holds deterministic value generators shared by tests.
package th

import "math/rand"

type SeqGen interface {
	Seed(value uint64)
	Next() uint64
	Reset()
}

const (
	SgRand = iota
	SgSeq
	SgTwist
	SgMagnitude
)

func NewSeqGen(sgt int) SeqGen {
	switch sgt {
	case SgRand:
		return &randSG{}
	case SgSeq:
		return &seqSG{}
	case SgTwist:
		return &twistSG{}
	case SgMagnitude:
		return &magnitudeSG{}
	default:
		panic("invalid sequence generator type")
	}
}

// uniform over all 64 bits
type randSG struct {
	r *rand.Rand
}

func (g *randSG) Next() uint64 {
	if g.r == nil {
		g.r = rand.New(rand.NewSource(1))
	}
	return g.r.Uint64()
}
func (g *randSG) Reset() {
	g.r = rand.New(rand.NewSource(1))
}
func (g *randSG) Seed(value uint64) {
	g.r = rand.New(rand.NewSource(int64(value)))
}

type seqSG struct {
	cur uint64
}

func (g *seqSG) Next() uint64 {
	g.cur++
	return g.cur
}
func (g *seqSG) Reset() {
	g.cur = 0
}
func (g *seqSG) Seed(value uint64) {
	g.cur = value
}

// alternates between small and huge values
type twistSG struct {
	cur uint64
}

func (g *twistSG) Next() uint64 {
	if (g.cur & 0x8000000000000000) == 0 {
		g.cur = ^g.cur - 1
	} else {
		g.cur = ^g.cur + 1
	}
	return g.cur
}
func (g *twistSG) Reset() {
	g.cur = 0
}
func (g *twistSG) Seed(value uint64) {
	g.cur = value
}

// picks a bit length in [0,64] uniformly, then a random value of exactly
// that length, so every magnitude is hit equally often
type magnitudeSG struct {
	r *rand.Rand
}

func (g *magnitudeSG) Next() uint64 {
	if g.r == nil {
		g.r = rand.New(rand.NewSource(1))
	}
	n := uint(g.r.Intn(65))
	if n == 0 {
		return 0
	}
	v := g.r.Uint64() >> (64 - n)
	return v | 1<<(n-1)
}
func (g *magnitudeSG) Reset() {
	g.r = rand.New(rand.NewSource(1))
}
func (g *magnitudeSG) Seed(value uint64) {
	g.r = rand.New(rand.NewSource(int64(value)))
}
