package training

import (
	"github.com/myrjola/ftracker/internal/errors"
	"log/slog"
	"math"
)

const (
	runningCaloriesMeanSpeedMultiplier = 18
	runningCaloriesMeanSpeedShift      = 1.79

	walkingCaloriesWeightMultiplier = 0.035
	walkingSpeedHeightMultiplier    = 0.029
	kmhInMsec                       = 0.278
	cmInM                           = 100
	secInMin                        = 60

	swimmingLenStep                  = 1.38
	swimmingCaloriesMeanSpeedShift   = 1.1
	swimmingCaloriesWeightMultiplier = 2
)

// Running burns calories linearly in mean speed.
type Running struct {
	*Training
}

func NewRunning(action int, durationHours, weightKg float64) (*Running, error) {
	t, err := newTraining(KindRunning, action, durationHours, weightKg, lenStep)
	if err != nil {
		return nil, err
	}
	return &Running{Training: t}, nil
}

func (r *Running) Calories() (float64, error) {
	minutes := r.hours * minInH
	kcal := (runningCaloriesMeanSpeedMultiplier*r.MeanSpeed() + runningCaloriesMeanSpeedShift) *
		r.weight / mInKm * minutes
	return kcal, nil
}

// SportsWalking also depends on the walker's height.
type SportsWalking struct {
	*Training
	height float64
}

func NewSportsWalking(action int, durationHours, weightKg, heightCm float64) (*SportsWalking, error) {
	if heightCm == 0 {
		return nil, errors.Wrap(ErrDivisionByZero, "zero height", slog.String("kind", KindSportsWalking.String()))
	}
	t, err := newTraining(KindSportsWalking, action, durationHours, weightKg, lenStep)
	if err != nil {
		return nil, err
	}
	return &SportsWalking{Training: t, height: heightCm}, nil
}

// Height in centimetres.
func (w *SportsWalking) Height() float64 {
	return w.height
}

func (w *SportsWalking) Calories() (float64, error) {
	speedMs := w.MeanSpeed() * kmhInMsec
	heightM := w.height / cmInM
	kcal := (walkingCaloriesWeightMultiplier*w.weight +
		(math.Pow(speedMs, 2)/heightM)*walkingSpeedHeightMultiplier*w.weight) * w.hours * secInMin
	return kcal, nil
}

// Swimming counts strokes for the distance but derives its speed from the pool geometry.
type Swimming struct {
	*Training
	poolLength float64
	poolLaps   int
}

func NewSwimming(action int, durationHours, weightKg, poolLengthM float64, poolLaps int) (*Swimming, error) {
	t, err := newTraining(KindSwimming, action, durationHours, weightKg, swimmingLenStep)
	if err != nil {
		return nil, err
	}
	return &Swimming{Training: t, poolLength: poolLengthM, poolLaps: poolLaps}, nil
}

// PoolLength in metres.
func (s *Swimming) PoolLength() float64 {
	return s.poolLength
}

// PoolLaps is how many times the pool was swum.
func (s *Swimming) PoolLaps() int {
	return s.poolLaps
}

// MeanSpeed ignores the stroke count, it is the swum pool length over the duration.
func (s *Swimming) MeanSpeed() float64 {
	return s.poolLength * float64(s.poolLaps) / mInKm / s.hours
}

func (s *Swimming) Calories() (float64, error) {
	kcal := (s.MeanSpeed() + swimmingCaloriesMeanSpeedShift) * swimmingCaloriesWeightMultiplier * s.weight * s.hours
	return kcal, nil
}
