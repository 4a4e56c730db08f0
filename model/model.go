// Package model contains core data types for the project.
package model

import "fmt"

// WorkoutType is the short code a sensor packet uses to name its discipline.
type WorkoutType string

const (
	Swim WorkoutType = "SWM" // Swim marks swimming packets.
	Run  WorkoutType = "RUN" // Run marks running packets.
	Walk WorkoutType = "WLK" // Walk marks race-walking packets.
)

// Packet is one reading received from the sensors.
type Packet struct {
	Type WorkoutType `json:"type"` // Discipline code.
	Data []float64   `json:"data"` // Raw values, positional per discipline.
}

// InfoMessage is the computed summary of a single workout.
type InfoMessage struct {
	TrainingType string  `json:"type"`     // Canonical discipline name.
	Duration     float64 `json:"duration"` // Hours.
	Distance     float64 `json:"distance"` // Kilometers.
	Speed        float64 `json:"speed"`    // Kilometers per hour.
	Calories     float64 `json:"calories"` // Kilocalories.
}

// GetMessage renders the summary as a single human-readable line.
func (m InfoMessage) GetMessage() string {
	return fmt.Sprintf(
		"Тип тренировки: %s; Длительность: %.3f ч.; Дистанция: %.3f км; Ср. скорость: %.3f км/ч; Потрачено ккал: %.3f.",
		m.TrainingType, m.Duration, m.Distance, m.Speed, m.Calories,
	)
}
