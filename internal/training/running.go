package training

const (
	runningCaloriesMeanSpeedMultiplier = 18
	runningCaloriesMeanSpeedShift      = 20
)

// Running is a running workout.
type Running struct {
	training
}

// NewRunning creates a running workout.
func NewRunning(action int, duration, weight float64) Running {
	return Running{training{action: action, duration: duration, weight: weight}}
}

// Name returns the canonical discipline name.
func (r Running) Name() string {
	return "Running"
}

// SpentCalories returns the spent energy in kcal.
func (r Running) SpentCalories() float64 {
	return (runningCaloriesMeanSpeedMultiplier*r.MeanSpeed() - runningCaloriesMeanSpeedShift) *
		r.weight / MInKm * r.duration * MinInH
}
