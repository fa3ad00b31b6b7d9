package field

// MT19937 parameters.
const (
	mtN         = 624
	mtM         = 397
	matrixA     = 0x9908b0df
	upperMask   = 0x80000000
	lowerMask   = 0x7fffffff
	genrandSeed = 19650218
)

// Stream is a Mersenne Twister seeded the way CPython seeds random.Random
// from an integer, so that Float64 yields the same sequence as random.random().
//
// A Stream is owned by a single generation run and is not safe for
// concurrent use.
type Stream struct {
	mt  [mtN]uint32
	mti int
}

// NewStream returns a Stream seeded with seed. Negative seeds use their
// absolute value.
func NewStream(seed int64) *Stream {
	s := &Stream{}
	s.Seed(seed)
	return s
}

// Seed resets the stream to the state produced by seeding with seed.
func (s *Stream) Seed(seed int64) {
	s.initByArray(seedKey(seed))
}

// seedKey splits |seed| into little-endian 32-bit words. Zero maps to [0].
func seedKey(seed int64) []uint32 {
	n := uint64(seed)
	if seed < 0 {
		n = uint64(^seed) + 1
	}
	if hi := uint32(n >> 32); hi != 0 {
		return []uint32{uint32(n), hi}
	}
	return []uint32{uint32(n)}
}

func (s *Stream) initGenrand(seed uint32) {
	s.mt[0] = seed
	for i := 1; i < mtN; i++ {
		prev := s.mt[i-1]
		s.mt[i] = 1812433253*(prev^(prev>>30)) + uint32(i)
	}
	s.mti = mtN
}

func (s *Stream) initByArray(key []uint32) {
	s.initGenrand(genrandSeed)
	i, j := 1, 0
	k := mtN
	if len(key) > k {
		k = len(key)
	}
	for ; k > 0; k-- {
		prev := s.mt[i-1]
		s.mt[i] = (s.mt[i] ^ ((prev ^ (prev >> 30)) * 1664525)) + key[j] + uint32(j)
		i++
		j++
		if i >= mtN {
			s.mt[0] = s.mt[mtN-1]
			i = 1
		}
		if j >= len(key) {
			j = 0
		}
	}
	for k = mtN - 1; k > 0; k-- {
		prev := s.mt[i-1]
		s.mt[i] = (s.mt[i] ^ ((prev ^ (prev >> 30)) * 1566083941)) - uint32(i)
		i++
		if i >= mtN {
			s.mt[0] = s.mt[mtN-1]
			i = 1
		}
	}
	s.mt[0] = 0x80000000
}

func (s *Stream) twist() {
	var y uint32
	kk := 0
	for ; kk < mtN-mtM; kk++ {
		y = (s.mt[kk] & upperMask) | (s.mt[kk+1] & lowerMask)
		s.mt[kk] = s.mt[kk+mtM] ^ (y >> 1) ^ (matrixA * (y & 1))
	}
	for ; kk < mtN-1; kk++ {
		y = (s.mt[kk] & upperMask) | (s.mt[kk+1] & lowerMask)
		s.mt[kk] = s.mt[kk+(mtM-mtN)] ^ (y >> 1) ^ (matrixA * (y & 1))
	}
	y = (s.mt[mtN-1] & upperMask) | (s.mt[0] & lowerMask)
	s.mt[mtN-1] = s.mt[mtM-1] ^ (y >> 1) ^ (matrixA * (y & 1))
	s.mti = 0
}

// Uint32 returns the next tempered 32-bit output.
func (s *Stream) Uint32() uint32 {
	if s.mti >= mtN {
		s.twist()
	}
	y := s.mt[s.mti]
	s.mti++

	y ^= y >> 11
	y ^= (y << 7) & 0x9d2c5680
	y ^= (y << 15) & 0xefc60000
	y ^= y >> 18
	return y
}

// Uint64 combines two consecutive outputs, high word first. It makes Stream
// usable as a math/rand/v2 Source.
func (s *Stream) Uint64() uint64 {
	hi := uint64(s.Uint32())
	return hi<<32 | uint64(s.Uint32())
}

// Float64 returns a float in [0, 1) with 53 bits of precision built from two
// outputs, matching random.random().
func (s *Stream) Float64() float64 {
	a := s.Uint32() >> 5
	b := s.Uint32() >> 6
	return (float64(a)*67108864.0 + float64(b)) * (1.0 / 9007199254740992.0)
}
