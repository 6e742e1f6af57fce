package common

import (
	"crypto/cipher"
	"math/big"

	"go.dedis.ch/kyber/v4/suites"
	"go.dedis.ch/kyber/v4/util/random"
)

var suite suites.Suite = suites.MustFind("Ed25519")

// Source draws uniform integers from a kyber cipher stream. A seeded Source
// reads the suite's XOF keyed with the seed and is fully deterministic; an
// unseeded one reads the suite's random stream.
type Source struct {
	stream cipher.Stream
}

// NewSource returns a deterministic Source for a non-empty seed and an
// entropy-backed one otherwise.
func NewSource(seed []byte) *Source {
	if len(seed) == 0 {
		return &Source{stream: suite.RandomStream()}
	}
	return &Source{stream: suite.XOF(seed)}
}

// Derive returns an independent deterministic Source for the given label, or
// a fresh entropy-backed one when seed is empty. It lets several consumers
// share one configured seed without sharing a stream.
func Derive(seed []byte, label string) *Source {
	if len(seed) == 0 {
		return NewSource(nil)
	}
	derived := make([]byte, 0, len(seed)+1+len(label))
	derived = append(derived, seed...)
	derived = append(derived, '/')
	derived = append(derived, label...)
	return NewSource(derived)
}

// Intn returns a uniform integer in [0, n). It panics if n <= 0.
func (s *Source) Intn(n int) int {
	if n <= 0 {
		panic("common: Intn called with non-positive n")
	}
	// random.Int draws from [1, mod), so shift a draw from [1, n] down by one.
	return int(random.Int(big.NewInt(int64(n)+1), s.stream).Int64()) - 1
}

// Perm returns a uniform permutation of [0, n).
func (s *Source) Perm(n int) []int {
	perm := make([]int, n)
	for i := range perm {
		perm[i] = i
	}
	for i := n - 1; i > 0; i-- {
		j := s.Intn(i + 1)
		perm[i], perm[j] = perm[j], perm[i]
	}
	return perm
}
