package training

import "fmt"

// Report is the immutable summary of one workout.
type Report struct {
	WorkoutType   string
	DurationHours float64
	DistanceKm    float64
	MeanSpeedKmH  float64
	CaloriesKcal  float64
}

// Render formats the report on a single line with every number rounded to three decimals. Rounding is that of
// [fmt] for %.3f: the exact binary value is rounded to nearest, ties to even.
func (r Report) Render() string {
	return fmt.Sprintf(
		"Workout type: %s; Duration: %.3f h; Distance: %.3f km; Avg speed: %.3f km/h; Calories burned: %.3f.",
		r.WorkoutType, r.DurationHours, r.DistanceKm, r.MeanSpeedKmH, r.CaloriesKcal)
}

func (r Report) String() string {
	return r.Render()
}
