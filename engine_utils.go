package main

import (
	"math"
	"strconv"
)

const (
	epsilon = 1e-10
	// tanPole stands in for the tangent near a pole, where the true
	// result is unbounded but a finite value keeps later arithmetic sane.
	tanPole = 16331239353195370
)

func toRadians(angle float64, radians bool) float64 {
	if radians {
		return angle
	}
	return angle / 180 * math.Pi
}

func toDegrees(angle float64, radians bool) float64 {
	if radians {
		return angle
	}
	return angle * 180 / math.Pi
}

func ctn(x float64) float64 {
	return 1 / math.Tan(x)
}

// actn computes the arccotangent on (0, pi) via atan of the reciprocal,
// shifted into the second quadrant for negative inputs.
func actn(x float64) float64 {
	angle := math.Atan(1 / x)
	if angle < 0 {
		angle += math.Pi
	}
	return angle
}

// formatValue renders the accumulator as fixed-point decimal with 20
// digits after the point, never scientific notation.
func formatValue(value float64) string {
	return strconv.FormatFloat(value, 'f', 20, 64)
}
