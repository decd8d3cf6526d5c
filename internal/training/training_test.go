package training_test

import (
	"fmt"
	"github.com/myrjola/ftracker/internal/errors"
	"github.com/myrjola/ftracker/internal/training"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"math"
	"math/rand/v2"
	"testing"
)

const delta = 1e-9

func TestScenarios(t *testing.T) {
	tests := []struct {
		name   string
		code   string
		params []float64
		want   string
	}{
		{
			name:   "swimming",
			code:   "SWM",
			params: []float64{720, 1, 80, 25, 40},
			want: "Workout type: Swimming; Duration: 1.000 h; Distance: 0.994 km; Avg speed: 1.000 km/h; " +
				"Calories burned: 336.000.",
		},
		{
			name:   "running",
			code:   "RUN",
			params: []float64{15000, 1, 75},
			want: "Workout type: Running; Duration: 1.000 h; Distance: 9.750 km; Avg speed: 9.750 km/h; " +
				"Calories burned: 797.805.",
		},
		{
			name:   "walking",
			code:   "WLK",
			params: []float64{9000, 1, 75, 180},
			want: "Workout type: SportsWalking; Duration: 1.000 h; Distance: 5.850 km; Avg speed: 5.850 km/h; " +
				"Calories burned: 349.252.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, err := training.Build(tt.code, tt.params)
			require.NoError(t, err)

			report, err := training.Summarize(w)
			require.NoError(t, err)
			assert.Equal(t, tt.want, report.Render())
			assert.Equal(t, tt.want, report.String())
		})
	}
}

func TestSwimmingSpeedIgnoresStrokes(t *testing.T) {
	s, err := training.NewSwimming(720, 1, 80, 25, 40)
	require.NoError(t, err)

	assert.InDelta(t, 720*1.38/1000, s.Distance(), delta)
	assert.InDelta(t, 1.0, s.MeanSpeed(), delta)
	assert.NotEqual(t, s.Distance()/s.Duration(), s.MeanSpeed())

	kcal, err := s.Calories()
	require.NoError(t, err)
	assert.InDelta(t, 336.0, kcal, delta)
}

func TestRunningCalories(t *testing.T) {
	r, err := training.NewRunning(15000, 1, 75)
	require.NoError(t, err)

	kcal, err := r.Calories()
	require.NoError(t, err)
	assert.InDelta(t, (18*9.75+1.79)*75/1000*60, kcal, delta)
}

func TestWalkingCalories(t *testing.T) {
	w, err := training.NewSportsWalking(9000, 1, 75, 180)
	require.NoError(t, err)

	speed := 5.85 * 0.278
	want := (0.035*75 + (speed*speed/1.8)*0.029*75) * 1 * 60

	kcal, err := w.Calories()
	require.NoError(t, err)
	assert.InDelta(t, want, kcal, delta)
	assert.Equal(t, "349.252", fmt.Sprintf("%.3f", kcal))
}

func TestRandomisedInvariants(t *testing.T) {
	rnd := rand.New(rand.NewPCG(1, 2)) //nolint:gosec // deterministic test data

	for range 200 {
		action := rnd.IntN(20000) + 1
		duration := float64(rnd.IntN(3)) + rnd.Float64() + 0.01
		weight := float64(rnd.IntN(60) + 80)
		height := float64(rnd.IntN(70) + 150)
		poolLength := float64(rnd.IntN(40) + 10)
		laps := rnd.IntN(60) + 1

		r, err := training.NewRunning(action, duration, weight)
		require.NoError(t, err)
		assert.InDelta(t, float64(action)*0.65/1000, r.Distance(), delta)
		assert.InDelta(t, r.Distance()/duration, r.MeanSpeed(), delta)

		w, err := training.NewSportsWalking(action, duration, weight, height)
		require.NoError(t, err)
		assert.InDelta(t, float64(action)*0.65/1000, w.Distance(), delta)
		assert.InDelta(t, w.Distance()/duration, w.MeanSpeed(), delta)

		s, err := training.NewSwimming(action, duration, weight, poolLength, laps)
		require.NoError(t, err)
		assert.InDelta(t, float64(action)*1.38/1000, s.Distance(), delta)
		assert.InDelta(t, poolLength*float64(laps)/1000/duration, s.MeanSpeed(), delta)
	}
}

func TestSummarizeIsIdempotent(t *testing.T) {
	for _, code := range training.Codes() {
		t.Run(code, func(t *testing.T) {
			params := map[string][]float64{
				"RUN": {15000, 1.5, 75},
				"WLK": {9000, 1.5, 75, 180},
				"SWM": {720, 1.5, 80, 25, 40},
			}[code]

			w1, err := training.Build(code, params)
			require.NoError(t, err)
			w2, err := training.Build(code, params)
			require.NoError(t, err)

			first, err := training.Summarize(w1)
			require.NoError(t, err)
			again, err := training.Summarize(w1)
			require.NoError(t, err)
			rebuilt, err := training.Summarize(w2)
			require.NoError(t, err)

			assert.Equal(t, first, again)
			assert.Equal(t, first, rebuilt)
			assert.Equal(t, first.Render(), rebuilt.Render())
		})
	}
}

func TestZeroDuration(t *testing.T) {
	tests := map[string][]float64{
		"RUN": {15000, 0, 75},
		"WLK": {9000, 0, 75, 180},
		"SWM": {720, 0, 80, 25, 40},
	}
	for code, params := range tests {
		t.Run(code, func(t *testing.T) {
			w, err := training.Build(code, params)
			assert.Nil(t, w)
			assert.True(t, errors.Is(err, training.ErrDivisionByZero), "got %v", err)
		})
	}

	_, err := training.NewTraining(100, 0, 70)
	assert.True(t, errors.Is(err, training.ErrDivisionByZero), "got %v", err)
}

func TestZeroHeight(t *testing.T) {
	_, err := training.NewSportsWalking(9000, 1, 75, 0)
	assert.True(t, errors.Is(err, training.ErrDivisionByZero), "got %v", err)
}

func TestBaseTrainingHasNoCalories(t *testing.T) {
	base, err := training.NewTraining(1000, 0.5, 70)
	require.NoError(t, err)

	assert.InDelta(t, 0.65, base.Distance(), delta)
	assert.InDelta(t, 1.3, base.MeanSpeed(), delta)
	assert.Equal(t, "Training", base.Kind().String())

	_, err = base.Calories()
	assert.True(t, errors.Is(err, training.ErrNotImplemented), "got %v", err)

	_, err = training.Summarize(base)
	assert.True(t, errors.Is(err, training.ErrNotImplemented), "got %v", err)
}

func TestRenderRounding(t *testing.T) {
	report := training.Report{
		WorkoutType:   "Running",
		DurationHours: 0.0005,
		DistanceKm:    1.0005,
		MeanSpeedKmH:  2.5,
		CaloriesKcal:  math.Pi,
	}
	// 0.0005 and 1.0005 are stored slightly above and below the tie respectively.
	assert.Equal(t,
		"Workout type: Running; Duration: 0.001 h; Distance: 1.000 km; Avg speed: 2.500 km/h; Calories burned: 3.142.",
		report.Render())
}
