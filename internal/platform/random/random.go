package random

import "math/rand/v2"

// Source yields uniform floats in [0, 1). Tests inject fixed sequences.
type Source interface {
	Float64() float64
}

type System struct{}

func (System) Float64() float64 {
	return rand.Float64()
}

// Seeded is a reproducible source used by the headless preview.
type Seeded struct {
	r *rand.Rand
}

func NewSeeded(seed uint64) *Seeded {
	return &Seeded{r: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

func (s *Seeded) Float64() float64 {
	return s.r.Float64()
}
