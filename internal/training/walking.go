package training

import "math"

const (
	walkingCaloriesWeightMultiplier = 0.035
	walkingSpeedHeightMultiplier    = 0.029
)

// SportsWalking is a race-walking workout.
type SportsWalking struct {
	training
	height float64
}

// NewSportsWalking creates a race-walking workout. Height is in centimeters.
func NewSportsWalking(action int, duration, weight, height float64) SportsWalking {
	return SportsWalking{
		training: training{action: action, duration: duration, weight: weight},
		height:   height,
	}
}

// Name returns the canonical discipline name.
func (w SportsWalking) Name() string {
	return "SportsWalking"
}

// SpentCalories returns the spent energy in kcal.
// The speed-to-height ratio is floored before it is used.
func (w SportsWalking) SpentCalories() float64 {
	speed := w.MeanSpeed()
	ratio := math.Floor(speed * speed / w.height)
	return (walkingCaloriesWeightMultiplier*w.weight +
		ratio*walkingSpeedHeightMultiplier*w.weight) * w.duration * MinInH
}
