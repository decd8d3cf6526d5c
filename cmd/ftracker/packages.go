package main

import (
	"github.com/myrjola/ftracker/internal/errors"
	"github.com/myrjola/ftracker/internal/training"
	"log/slog"
	"strconv"
	"strings"
)

// workoutPackage is a workout type code with the positional parameters for its constructor.
type workoutPackage struct {
	code   string
	params []float64
}

// samplePackages is what ftracker reports on when called without arguments.
func samplePackages() []workoutPackage {
	return []workoutPackage{
		{code: "SWM", params: []float64{720, 1, 80, 25, 40}}, // 25 m pool, 40 laps
		{code: "RUN", params: []float64{15000, 1, 75}},
		{code: "WLK", params: []float64{9000, 1, 75, 180}}, // 180 cm
	}
}

// parsePackages parses arguments of the form CODE:v1,v2,... such as RUN:15000,1,75.
func parsePackages(args []string) ([]workoutPackage, error) {
	packages := make([]workoutPackage, 0, len(args))
	for i, arg := range args {
		p, err := parsePackage(arg)
		if err != nil {
			return nil, errors.Wrap(err, "parse package", slog.Int("arg", i), slog.String("value", arg))
		}
		packages = append(packages, p)
	}
	return packages, nil
}

func parsePackage(arg string) (workoutPackage, error) {
	code, list, ok := strings.Cut(arg, ":")
	if !ok {
		return workoutPackage{}, errors.Wrap(training.ErrInvalidParameters, "missing ':' between code and parameters")
	}

	fields := strings.Split(list, ",")
	params := make([]float64, 0, len(fields))
	for _, f := range fields {
		v, err := strconv.ParseFloat(strings.TrimSpace(f), 64)
		if err != nil {
			return workoutPackage{}, errors.Wrap(training.ErrInvalidParameters, "parse number",
				slog.String("field", f))
		}
		params = append(params, v)
	}
	return workoutPackage{code: strings.TrimSpace(code), params: params}, nil
}
