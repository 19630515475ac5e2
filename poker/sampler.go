package poker

import (
	"errors"
	"fmt"
	rand "math/rand/v2"

	"github.com/lox/shortdeck/internal/randutil"
)

// ErrInsufficientCardPool is returned when fewer live cards remain than were
// requested.
var ErrInsufficientCardPool = errors.New("insufficient card pool")

// InsufficientPoolError reports the requested and available card counts.
type InsufficientPoolError struct {
	Want      int
	Available int
}

func (e *InsufficientPoolError) Error() string {
	return fmt.Sprintf("%s: want %d cards, %d available", ErrInsufficientCardPool, e.Want, e.Available)
}

func (e *InsufficientPoolError) Unwrap() error { return ErrInsufficientCardPool }

// Sampler draws random card sets by rejection sampling. A Sampler is not safe
// for concurrent use; give each goroutine its own (see Fork).
type Sampler struct {
	rng *rand.Rand
}

// NewSampler wraps an explicit random source.
func NewSampler(rng *rand.Rand) *Sampler {
	return &Sampler{rng: rng}
}

// NewSeededSampler returns a sampler whose sequence is fixed by seed.
func NewSeededSampler(seed int64) *Sampler {
	return NewSampler(randutil.New(seed))
}

// NewEntropySampler returns a sampler seeded from the operating system.
func NewEntropySampler() *Sampler {
	return NewSampler(randutil.NewEntropy())
}

// Fork derives an independent sampler from this one's stream.
func (s *Sampler) Fork() *Sampler {
	return NewSampler(randutil.New(s.rng.Int64()))
}

// Check reports whether n distinct cards can be drawn from u avoiding dead.
func Check(u Universe, n int, dead CardSet) error {
	if err := u.Validate(); err != nil {
		return err
	}
	if n < 0 {
		return fmt.Errorf("%w: negative card count %d", ErrInsufficientCardPool, n)
	}
	if avail := u.Available(dead); avail < n {
		return &InsufficientPoolError{Want: n, Available: avail}
	}
	return nil
}

// Sample returns n distinct cards drawn uniformly from u, none of them in
// dead.
func (s *Sampler) Sample(u Universe, n int, dead CardSet) (CardSet, error) {
	if err := Check(u, n, dead); err != nil {
		return 0, err
	}
	return s.sample(u, n, dead), nil
}

// SampleBoards draws count independent sets of n cards. Boards may repeat.
func (s *Sampler) SampleBoards(u Universe, n int, dead CardSet, count int) ([]CardSet, error) {
	if err := Check(u, n, dead); err != nil {
		return nil, err
	}
	boards := make([]CardSet, count)
	for i := range boards {
		boards[i] = s.sample(u, n, dead)
	}
	return boards, nil
}

// SampleFrom picks one element of candidates uniformly that avoids dead.
// It returns false when every candidate overlaps dead.
func (s *Sampler) SampleFrom(candidates []CardSet, dead CardSet) (CardSet, bool) {
	live := 0
	for _, c := range candidates {
		if !c.Overlaps(dead) {
			live++
		}
	}
	if live == 0 {
		return 0, false
	}
	pick := s.rng.IntN(live)
	for _, c := range candidates {
		if c.Overlaps(dead) {
			continue
		}
		if pick == 0 {
			return c, true
		}
		pick--
	}
	return 0, false
}

// sample assumes Check has passed, otherwise it would never terminate.
func (s *Sampler) sample(u Universe, n int, dead CardSet) CardSet {
	var cards CardSet
	size := u.Size()
	for drawn := 0; drawn < n; {
		card := CardSet(1) << (u.Low + s.rng.IntN(size))
		if card&(dead|cards) != 0 {
			continue
		}
		cards |= card
		drawn++
	}
	return cards
}
