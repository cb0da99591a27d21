package factories

import (
	"math/rand"
	"time"

	"github.com/jaswdr/faker"
	"github.com/shopspring/decimal"
)

// Source is the random source shared by the factories. Seeding it pins every
// generated attribute.
type Source struct {
	rng  *rand.Rand
	fake faker.Faker
}

// NewSource returns a source seeded with seed; a zero seed uses the current time.
func NewSource(seed int64) *Source {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Source{
		rng:  rand.New(rand.NewSource(seed)),
		fake: faker.NewWithSeed(rand.NewSource(seed)),
	}
}

func (s *Source) Rand() *rand.Rand {
	return s.rng
}

// Chance reports true with probability p.
func (s *Source) Chance(p float64) bool {
	return s.rng.Float64() < p
}

// IntBetween draws uniformly from [min, max].
func (s *Source) IntBetween(min, max int) int {
	if max <= min {
		return min
	}
	return min + s.rng.Intn(max-min+1)
}

// Uniform draws uniformly from [min, max).
func (s *Source) Uniform(min, max float64) float64 {
	return min + s.rng.Float64()*(max-min)
}

func (s *Source) Pick(pool []string) string {
	if len(pool) == 0 {
		return ""
	}
	return pool[s.rng.Intn(len(pool))]
}

func round(v float64, places int32) float64 {
	return decimal.NewFromFloat(v).Round(places).InexactFloat64()
}
