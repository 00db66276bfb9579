package tests

import (
	"fmt"
	"math/rand"
	"time"
)

type Randomizer struct {
	Float64 func() float64
	Intn    func(n int) int
	Bool    func() bool
}

func NewRandomizer() Randomizer {
	random := rand.New(rand.NewSource(time.Now().Unix())) //nolint:gosec // for tests

	return Randomizer{
		Float64: random.Float64,
		Intn:    random.Intn,
		Bool:    func() bool { return random.Intn(2) == 0 }, //nolint:mnd // skip
	}
}

// Price returns a random price in [0.01, limit) rounded to cents.
func (r Randomizer) Price(limit float64) float64 {
	cents := 1 + r.Intn(int(limit*100)-1)

	return float64(cents) / 100
}

// Title returns a unique-ish game title for fixtures.
func (r Randomizer) Title(prefix string) string {
	return fmt.Sprintf("%s %d", prefix, r.Intn(1_000_000))
}
