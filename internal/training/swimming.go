package training

const (
	swimmingLenStep                  = 1.38
	swimmingCaloriesMeanSpeedShift   = 1.1
	swimmingCaloriesWeightMultiplier = 2
)

// Swimming is a pool swimming workout.
type Swimming struct {
	training
	lengthPool float64
	countPool  int
}

// NewSwimming creates a swimming workout. Pool length is in meters,
// countPool is the number of swum pool lengths.
func NewSwimming(action int, duration, weight, lengthPool float64, countPool int) Swimming {
	return Swimming{
		training:   training{action: action, duration: duration, weight: weight},
		lengthPool: lengthPool,
		countPool:  countPool,
	}
}

// Name returns the canonical discipline name.
func (s Swimming) Name() string {
	return "Swimming"
}

// Distance returns the distance in kilometers counted by strokes.
func (s Swimming) Distance() float64 {
	return float64(s.action) * swimmingLenStep / MInKm
}

// MeanSpeed is derived from pool geometry only; strokes are ignored.
func (s Swimming) MeanSpeed() float64 {
	return s.lengthPool * float64(s.countPool) / MInKm / s.duration
}

// SpentCalories returns the spent energy in kcal.
func (s Swimming) SpentCalories() float64 {
	return (s.MeanSpeed() + swimmingCaloriesMeanSpeedShift) * swimmingCaloriesWeightMultiplier * s.weight
}
