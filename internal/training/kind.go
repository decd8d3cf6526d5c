package training

import "strconv"

// Kind is the closed set of workouts ftracker knows a calorie formula for.
type Kind int

const (
	KindRunning Kind = iota + 1
	KindSportsWalking
	KindSwimming
)

var kindInfo = map[Kind]struct {
	code string
	name string
}{
	kindNone:          {code: "", name: "Training"},
	KindRunning:       {code: "RUN", name: "Running"},
	KindSportsWalking: {code: "WLK", name: "SportsWalking"},
	KindSwimming:      {code: "SWM", name: "Swimming"},
}

// Code is the short workout type code used in input packages.
func (k Kind) Code() string {
	return kindInfo[k].code
}

// String returns the display name used in reports.
func (k Kind) String() string {
	if info, ok := kindInfo[k]; ok {
		return info.name
	}
	return "Kind(" + strconv.Itoa(int(k)) + ")"
}
