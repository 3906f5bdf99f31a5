package util

import (
	"math/rand"
	"time"
)

func New(seed int64) *rand.Rand {
	if seed == 0 {
		seed = 1
	}
	src := rand.NewSource(seed)
	return rand.New(src)
}

// NewEntropy returns a generator seeded from the wall clock, for play where
// reproducibility does not matter.
func NewEntropy() *rand.Rand {
	return New(time.Now().UnixNano())
}

// Scripted replays a fixed list of draws, cycling when exhausted. Each draw
// is reduced modulo n so it always stays in [0, n).
type Scripted struct {
	draws []int
	next  int
}

func NewScripted(draws ...int) *Scripted {
	if len(draws) == 0 {
		draws = []int{0}
	}
	return &Scripted{draws: draws}
}

func (s *Scripted) Intn(n int) int {
	v := s.draws[s.next%len(s.draws)]
	s.next++
	if n <= 0 {
		return 0
	}
	v %= n
	if v < 0 {
		v += n
	}
	return v
}

// Calls reports how many draws have been consumed.
func (s *Scripted) Calls() int { return s.next }
