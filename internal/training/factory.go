package training

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/and161185/fitness-tracker/model"
)

var (
	// ErrUnknownWorkoutType is returned for a type code outside SWM, RUN and WLK.
	ErrUnknownWorkoutType = errors.New("unknown workout type")
	// ErrInvalidDataLength is returned when the value count does not fit the discipline.
	ErrInvalidDataLength = errors.New("invalid data length")
	// ErrInvalidValue is returned for a count that is not a whole number in int range.
	ErrInvalidValue = errors.New("invalid value")
)

// ReadPackage builds the workout named by workoutType from the positional
// sensor values in data. The type code is matched case-insensitively.
func ReadPackage(workoutType string, data []float64) (Training, error) {
	typ := model.WorkoutType(strings.ToUpper(workoutType))

	switch typ {
	case model.Swim:
		if err := checkLength(typ, data, 5); err != nil {
			return nil, err
		}
		action, err := getCount(data[0], "action")
		if err != nil {
			return nil, err
		}
		countPool, err := getCount(data[4], "pool count")
		if err != nil {
			return nil, err
		}
		return NewSwimming(action, data[1], data[2], data[3], countPool), nil

	case model.Run:
		if err := checkLength(typ, data, 3); err != nil {
			return nil, err
		}
		action, err := getCount(data[0], "action")
		if err != nil {
			return nil, err
		}
		return NewRunning(action, data[1], data[2]), nil

	case model.Walk:
		if err := checkLength(typ, data, 4); err != nil {
			return nil, err
		}
		action, err := getCount(data[0], "action")
		if err != nil {
			return nil, err
		}
		return NewSportsWalking(action, data[1], data[2], data[3]), nil

	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownWorkoutType, workoutType)
	}
}

func checkLength(typ model.WorkoutType, data []float64, want int) error {
	if len(data) != want {
		return fmt.Errorf("%w: %s expects %d values, got %d", ErrInvalidDataLength, typ, want, len(data))
	}
	return nil
}

func getCount(v float64, field string) (int, error) {
	if math.IsNaN(v) || math.IsInf(v, 0) || v != math.Trunc(v) {
		return 0, fmt.Errorf("%w: %s should be a whole number, got %v", ErrInvalidValue, field, v)
	}
	if v >= math.MaxInt || v < math.MinInt {
		return 0, fmt.Errorf("%w: %s is out of range, got %v", ErrInvalidValue, field, v)
	}
	return int(v), nil
}
