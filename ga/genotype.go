package ga

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/bits-and-blooms/bitset"
)

// Genotype is a fixed-length sequence of binary genes.
// A Genotype is never modified after it is built; every operation that
// derives a new sequence returns a new Genotype.
type Genotype struct {
	bits   *bitset.BitSet
	length int
}

// newGenotype allocates an all-zero genotype of the given length.
func newGenotype(length int) Genotype {
	return Genotype{bits: bitset.New(uint(length)), length: length}
}

// RandomGenotype returns a genotype of `length` independent, uniformly drawn bits.
func RandomGenotype(rng *rand.Rand, length int) Genotype {
	g := newGenotype(length)
	for i := 0; i < length; i++ {
		if rng.Intn(2) == 1 {
			g.bits.Set(uint(i))
		}
	}
	return g
}

// RandomGoal returns the target genotype for a run. It uses the same generator
// as RandomGenotype; the goal is simply never evaluated or bred.
func RandomGoal(rng *rand.Rand, length int) Genotype {
	return RandomGenotype(rng, length)
}

// GenotypeFromBits builds a genotype from a slice of 0/1 values.
func GenotypeFromBits(values []int) (Genotype, error) {
	g := newGenotype(len(values))
	for i, v := range values {
		switch v {
		case 0:
		case 1:
			g.bits.Set(uint(i))
		default:
			return Genotype{}, fmt.Errorf("gene %d has value %d, want 0 or 1", i, v)
		}
	}
	return g, nil
}

// ParseGenotype parses a string of '0' and '1' characters, e.g. "1011".
// Spaces and commas are ignored so "1, 0, 1, 1" is accepted too.
func ParseGenotype(s string) (Genotype, error) {
	cleaned := strings.NewReplacer(" ", "", ",", "", "\t", "").Replace(s)
	g := newGenotype(len(cleaned))
	for i, r := range cleaned {
		switch r {
		case '0':
		case '1':
			g.bits.Set(uint(i))
		default:
			return Genotype{}, fmt.Errorf("invalid gene %q at position %d in %q", r, i, s)
		}
	}
	return g, nil
}

// Len returns the number of genes.
func (g Genotype) Len() int { return g.length }

// Bit returns the gene at position i as 0 or 1.
func (g Genotype) Bit(i int) int {
	if g.bits != nil && g.bits.Test(uint(i)) {
		return 1
	}
	return 0
}

// Bits returns the genes as a fresh slice of 0/1 values.
func (g Genotype) Bits() []int {
	out := make([]int, g.length)
	for i := range out {
		out[i] = g.Bit(i)
	}
	return out
}

// Equal reports whether both genotypes have the same length and genes.
func (g Genotype) Equal(other Genotype) bool {
	if g.length != other.length {
		return false
	}
	return g.mismatches(other) == 0
}

// Complement returns a genotype with every gene flipped.
func (g Genotype) Complement() Genotype {
	c := newGenotype(g.length)
	for i := 0; i < g.length; i++ {
		if g.Bit(i) == 0 {
			c.bits.Set(uint(i))
		}
	}
	return c
}

// String renders the genes as a string of '0' and '1', e.g. "1011".
func (g Genotype) String() string {
	var sb strings.Builder
	sb.Grow(g.length)
	for i := 0; i < g.length; i++ {
		if g.Bit(i) == 1 {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
	}
	return sb.String()
}

// mismatches counts differing positions. Callers check lengths first.
func (g Genotype) mismatches(other Genotype) int {
	if g.bits == nil || other.bits == nil {
		// zero-value genotypes behave as all zeros
		n := 0
		for i := 0; i < g.length; i++ {
			if g.Bit(i) != other.Bit(i) {
				n++
			}
		}
		return n
	}
	return int(g.bits.SymmetricDifference(other.bits).Count())
}
