package domain

import "strings"

// Complexity grades how risky a feature is to build.
type Complexity string

const (
	ComplexitySmall  Complexity = "S"
	ComplexityMedium Complexity = "M"
	ComplexityLarge  Complexity = "L"
)

var complexityFactors = map[Complexity]float64{
	ComplexitySmall:  1.0,
	ComplexityMedium: 1.5,
	ComplexityLarge:  2.2,
}

// ParseComplexity upper-cases s; empty or unrecognised values become M.
func ParseComplexity(s string) Complexity {
	c := Complexity(strings.ToUpper(strings.TrimSpace(s)))
	if _, ok := complexityFactors[c]; !ok {
		return ComplexityMedium
	}
	return c
}

// Factor is the price multiplier applied to hours × rate.
// Codes outside S/M/L price like M.
func (c Complexity) Factor() float64 {
	if f, ok := complexityFactors[Complexity(strings.ToUpper(string(c)))]; ok {
		return f
	}
	return complexityFactors[ComplexityMedium]
}

func (c *Complexity) UnmarshalText(b []byte) error {
	*c = ParseComplexity(string(b))
	return nil
}
