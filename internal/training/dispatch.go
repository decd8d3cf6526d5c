package training

import (
	"github.com/myrjola/ftracker/internal/errors"
	"log/slog"
	"math"
)

type constructor struct {
	kind   Kind
	params []string
	build  func(p []float64) (Workout, error)
}

// workoutTypes is the dispatch table. Parameter names are listed in positional order.
var workoutTypes = []constructor{ //nolint:gochecknoglobals // fixed lookup table
	{
		kind:   KindRunning,
		params: []string{"action", "duration", "weight"},
		build: func(p []float64) (Workout, error) {
			return NewRunning(int(p[0]), p[1], p[2])
		},
	},
	{
		kind:   KindSportsWalking,
		params: []string{"action", "duration", "weight", "height"},
		build: func(p []float64) (Workout, error) {
			return NewSportsWalking(int(p[0]), p[1], p[2], p[3])
		},
	},
	{
		kind:   KindSwimming,
		params: []string{"action", "duration", "weight", "pool_length", "pool_laps"},
		build: func(p []float64) (Workout, error) {
			return NewSwimming(int(p[0]), p[1], p[2], p[3], int(p[4]))
		},
	},
}

// integerParams must hold whole, non-negative numbers.
var integerParams = map[string]bool{"action": true, "pool_laps": true} //nolint:gochecknoglobals // constant set

// Codes lists the supported workout type codes in dispatch order.
func Codes() []string {
	codes := make([]string, 0, len(workoutTypes))
	for _, c := range workoutTypes {
		codes = append(codes, c.kind.Code())
	}
	return codes
}

// ParseKind resolves a workout type code such as "RUN".
func ParseKind(code string) (Kind, error) {
	c, err := lookup(code)
	if err != nil {
		return kindNone, err
	}
	return c.kind, nil
}

// ParamNames lists the positional parameters [Build] expects for code.
func ParamNames(code string) ([]string, error) {
	c, err := lookup(code)
	if err != nil {
		return nil, err
	}
	return append([]string(nil), c.params...), nil
}

// Build constructs the workout selected by code, assigning params positionally to its constructor:
//
//	RUN: action, duration, weight
//	WLK: action, duration, weight, height
//	SWM: action, duration, weight, pool_length, pool_laps
func Build(code string, params []float64) (Workout, error) {
	c, err := lookup(code)
	if err != nil {
		return nil, err
	}
	if len(params) != len(c.params) {
		return nil, errors.Wrap(ErrInvalidParameters, "wrong number of parameters",
			slog.String("code", code), slog.Int("want", len(c.params)), slog.Int("got", len(params)))
	}
	for i, name := range c.params {
		v := params[i]
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, errors.Wrap(ErrInvalidParameters, "not a finite number",
				slog.String("code", code), slog.String("param", name))
		}
		if integerParams[name] && (v < 0 || v != math.Trunc(v) || v > math.MaxInt32) {
			return nil, errors.Wrap(ErrInvalidParameters, "not a whole count",
				slog.String("code", code), slog.String("param", name), slog.Float64("value", v))
		}
	}

	w, err := c.build(params)
	if err != nil {
		return nil, errors.Wrap(err, "build "+code)
	}
	return w, nil
}

func lookup(code string) (constructor, error) {
	for _, c := range workoutTypes {
		if c.kind.Code() == code {
			return c, nil
		}
	}
	return constructor{}, errors.Wrap(ErrUnknownWorkoutType, "lookup", slog.String("code", code))
}
