package entity

import "fmt"

// Complexity grades how demanding a recipe is to cook.
type Complexity string

const (
	ComplexityEasy   Complexity = "EASY"
	ComplexityMedium Complexity = "MEDIUM"
	ComplexityHard   Complexity = "HARD"
)

// ParseComplexity converts a string into a Complexity value.
func ParseComplexity(s string) (Complexity, error) {
	switch Complexity(s) {
	case ComplexityEasy, ComplexityMedium, ComplexityHard:
		return Complexity(s), nil
	}
	return "", fmt.Errorf("unknown complexity %q", s)
}
