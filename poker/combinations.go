package poker

import (
	"iter"
	"math"
)

// combinationFrame is one pending node of the include/exclude search tree.
type combinationFrame struct {
	cards   CardSet
	active  int
	nextBit int
}

// Combinations yields every set of exactly k cards from u that does not
// intersect dead. Each combination is produced once. The order is fixed for
// given arguments but carries no meaning.
//
// The search runs on an explicit stack so depth is bounded by the heap, not
// the goroutine stack.
func Combinations(u Universe, k int, dead CardSet) iter.Seq[CardSet] {
	return func(yield func(CardSet) bool) {
		if k < 0 || u.Validate() != nil {
			return
		}

		stack := make([]combinationFrame, 1, u.Size()+2)
		stack[0] = combinationFrame{nextBit: u.Low}

		for len(stack) > 0 {
			f := stack[len(stack)-1]
			stack = stack[:len(stack)-1]

			switch {
			case f.cards&dead != 0:
				// bits are only ever added, so one dead card kills the subtree
				continue
			case f.active == k:
				if !yield(f.cards) {
					return
				}
			case f.active > k, f.nextBit >= u.High:
				continue
			default:
				stack = append(stack,
					combinationFrame{cards: f.cards, active: f.active, nextBit: f.nextBit + 1},
					combinationFrame{cards: f.cards | CardSet(1)<<f.nextBit, active: f.active + 1, nextBit: f.nextBit + 1},
				)
			}
		}
	}
}

// maxPrealloc caps the capacity Enumerate reserves up front.
const maxPrealloc = 1 << 20

// Enumerate collects every k-card set from positions [0, maxBits) that avoids
// dead.
func Enumerate(maxBits, k int, dead CardSet) []CardSet {
	u := Positions(maxBits)
	out := make([]CardSet, 0, min(CountCombinations(u, k, dead), maxPrealloc))
	for cs := range Combinations(u, k, dead) {
		out = append(out, cs)
	}
	return out
}

// CountCombinations returns C(available, k) for the cards of u outside dead.
func CountCombinations(u Universe, k int, dead CardSet) int {
	if u.Validate() != nil {
		return 0
	}
	return Binomial(u.Available(dead), k)
}

// Binomial returns n choose k, or 0 when k is out of range. Results too
// large for an int saturate at math.MaxInt.
func Binomial(n, k int) int {
	if k < 0 || n < 0 || k > n {
		return 0
	}
	if k > n-k {
		k = n - k
	}
	result := 1
	for i := 1; i <= k; i++ {
		// result*(n-k+i) is divisible by i; divide out the common factor
		// first so the product only overflows when the answer does.
		g := gcd(result, i)
		factor := (n - k + i) / (i / g)
		result /= g
		if result > math.MaxInt/factor {
			return math.MaxInt
		}
		result *= factor
	}
	return result
}

func gcd(a, b int) int {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}
