package generator

import (
	"crypto/rand"
	"encoding/binary"
	mrand "math/rand/v2"
	"sync"
)

// Source yields uniform draws in [0, 1). *rand.Rand from math/rand/v2
// satisfies it.
type Source interface {
	Float64() float64
}

// CryptoSource draws from crypto/rand. It is stateless and safe for
// concurrent use.
type CryptoSource struct{}

// Float64 returns a uniform value in [0, 1) built from 53 random bits.
func (CryptoSource) Float64() float64 {
	var b [8]byte
	// crypto/rand.Read does not fail on supported platforms.
	if _, err := rand.Read(b[:]); err != nil {
		panic("generator: crypto/rand: " + err.Error())
	}
	return float64(binary.LittleEndian.Uint64(b[:])>>11) / (1 << 53)
}

const pcgIncrement = 0x9e3779b97f4a7c15

// NewSeeded returns a deterministic PCG source. The same seed always yields
// the same sequence of draws.
func NewSeeded(seed uint64) *mrand.Rand {
	return mrand.New(mrand.NewPCG(seed, seed^pcgIncrement))
}

// LockedSource serializes access to a Source that is not safe for
// concurrent use, such as a seeded *rand.Rand.
type LockedSource struct {
	mu  sync.Mutex
	src Source
}

// NewLockedSource wraps src.
func NewLockedSource(src Source) *LockedSource {
	return &LockedSource{src: src}
}

// Float64 draws from the wrapped source under the lock.
func (l *LockedSource) Float64() float64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.src.Float64()
}
