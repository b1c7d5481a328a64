package domineering

// Hash is an FNV-1a-style hash over a Position's grid dimensions and
// bits, suitable as the hash function for a driver.Cache[Position]
// (postable.New's first argument).
func Hash(p Position) uint64 {
	var h uint64 = 14695981039346656037
	mix := func(b byte) {
		h ^= uint64(b)
		h *= 1099511628211
	}
	mix(p.g.Width())
	mix(p.g.Height())
	bits := p.g.Bits()
	for i := 0; i < 8; i++ {
		mix(byte(bits >> (8 * i)))
	}
	return h
}
