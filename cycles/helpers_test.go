package cycles_test

import "math"

// sqrtProduct mirrors the per-arc term of the cycle score.
func sqrtProduct(a, b float64) float64 { return math.Sqrt(a * b) }
