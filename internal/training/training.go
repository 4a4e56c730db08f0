// Package training computes distance, mean speed and spent calories for
// running, race-walking and swimming workouts.
package training

import "github.com/and161185/fitness-tracker/model"

const (
	LenStep = 0.65 // LenStep is the length of one step in meters.
	MInKm   = 1000 // MInKm is the number of meters in a kilometer.
	MinInH  = 60   // MinInH is the number of minutes in an hour.
)

// Training is a workout whose derived values can be computed on demand.
type Training interface {
	Name() string
	Duration() float64
	Distance() float64
	MeanSpeed() float64
	SpentCalories() float64
}

// training holds the inputs every discipline shares. It has no calorie
// formula of its own and so does not satisfy Training.
type training struct {
	action   int
	duration float64
	weight   float64
}

// Duration returns the workout duration in hours.
func (t training) Duration() float64 {
	return t.duration
}

// Distance returns the covered distance in kilometers.
func (t training) Distance() float64 {
	return float64(t.action) * LenStep / MInKm
}

// MeanSpeed returns the average speed in km/h.
func (t training) MeanSpeed() float64 {
	return t.Distance() / t.duration
}

// ShowTrainingInfo builds the summary of t from its own formulas.
func ShowTrainingInfo(t Training) model.InfoMessage {
	return model.InfoMessage{
		TrainingType: t.Name(),
		Duration:     t.Duration(),
		Distance:     t.Distance(),
		Speed:        t.MeanSpeed(),
		Calories:     t.SpentCalories(),
	}
}
