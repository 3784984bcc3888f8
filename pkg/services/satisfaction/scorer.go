package satisfaction

import "github.com/ht-tools/housing-atlas/pkg/models/domain"

// Scale is the fixed bijection between satisfaction labels and their two
// numeric encodings: an ordinal 1..5 score and a signed -2..+2 weight.
// Lookups report whether the label is known; unknown labels yield no value
// so that they are excluded from numeric aggregates instead of biasing
// means toward zero.
type Scale struct {
	ordinal map[domain.SatisfactionLevel]int
	weight  map[domain.SatisfactionLevel]float64
}

// DefaultScale returns the five-entry scale used throughout the survey.
func DefaultScale() Scale {
	return Scale{
		ordinal: map[domain.SatisfactionLevel]int{
			domain.VerySatisfied:    5,
			domain.Satisfied:        4,
			domain.Neutral:          3,
			domain.Dissatisfied:     2,
			domain.VeryDissatisfied: 1,
		},
		weight: map[domain.SatisfactionLevel]float64{
			domain.VerySatisfied:    2,
			domain.Satisfied:        1,
			domain.Neutral:          0,
			domain.Dissatisfied:     -1,
			domain.VeryDissatisfied: -2,
		},
	}
}

func (s Scale) Ordinal(level domain.SatisfactionLevel) (int, bool) {
	v, ok := s.ordinal[level]
	return v, ok
}

func (s Scale) Weight(level domain.SatisfactionLevel) (float64, bool) {
	v, ok := s.weight[level]
	return v, ok
}

// Known reports whether the label has an entry in both encodings.
func (s Scale) Known(level domain.SatisfactionLevel) bool {
	_, o := s.ordinal[level]
	_, w := s.weight[level]
	return o && w
}
