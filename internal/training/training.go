// Package training computes distance, mean speed and burned calories for running, walking and swimming workouts.
package training

import (
	"github.com/myrjola/ftracker/internal/errors"
	"log/slog"
)

var (
	// ErrUnknownWorkoutType is returned by [Build] and [ParseKind] for a code outside [Codes].
	ErrUnknownWorkoutType = errors.NewSentinel("unknown workout type")
	// ErrInvalidParameters is returned when the positional parameters do not fit the workout constructor.
	ErrInvalidParameters = errors.NewSentinel("invalid parameters")
	// ErrDivisionByZero is returned when a zero duration or height would end up as a divisor.
	ErrDivisionByZero = errors.NewSentinel("division by zero")
	// ErrNotImplemented is returned by [Training.Calories]; only the concrete workouts know their calorie formula.
	ErrNotImplemented = errors.NewSentinel("not implemented")
)

const (
	mInKm    = 1000
	minInH   = 60
	lenStep  = 0.65
	kindNone = Kind(0)
)

// Workout is implemented by [Training] and the concrete workouts embedding it.
type Workout interface {
	Kind() Kind
	Duration() float64
	Distance() float64
	MeanSpeed() float64
	Calories() (float64, error)
}

// Training holds the measurements shared by every workout. Its zero value is not usable, construct it with
// [NewTraining] or one of the concrete constructors.
type Training struct {
	kind    Kind
	action  int
	hours   float64
	weight  float64
	stepLen float64
}

// NewTraining returns a workout without a calorie formula. Distance and speed work, Calories returns
// [ErrNotImplemented].
func NewTraining(action int, durationHours, weightKg float64) (*Training, error) {
	return newTraining(kindNone, action, durationHours, weightKg, lenStep)
}

func newTraining(kind Kind, action int, durationHours, weightKg, stepLen float64) (*Training, error) {
	if durationHours == 0 {
		return nil, errors.Wrap(ErrDivisionByZero, "zero duration", slog.String("kind", kind.String()))
	}
	return &Training{
		kind:    kind,
		action:  action,
		hours:   durationHours,
		weight:  weightKg,
		stepLen: stepLen,
	}, nil
}

func (t *Training) Kind() Kind {
	return t.kind
}

// Action is the number of steps or strokes.
func (t *Training) Action() int {
	return t.action
}

// Duration in hours.
func (t *Training) Duration() float64 {
	return t.hours
}

// Weight in kilograms.
func (t *Training) Weight() float64 {
	return t.weight
}

// Distance in kilometres covered by Action steps or strokes.
func (t *Training) Distance() float64 {
	return float64(t.action) * t.stepLen / mInKm
}

// MeanSpeed in km/h over the whole duration.
func (t *Training) MeanSpeed() float64 {
	return t.Distance() / t.hours
}

func (t *Training) Calories() (float64, error) {
	return 0, errors.Wrap(ErrNotImplemented, "calories", slog.String("kind", t.kind.String()))
}

// Summarize computes every metric of w and collects them into a Report.
func Summarize(w Workout) (Report, error) {
	calories, err := w.Calories()
	if err != nil {
		return Report{}, errors.Wrap(err, "summarize")
	}
	return Report{
		WorkoutType:   w.Kind().String(),
		DurationHours: w.Duration(),
		DistanceKm:    w.Distance(),
		MeanSpeedKmH:  w.MeanSpeed(),
		CaloriesKcal:  calories,
	}, nil
}
