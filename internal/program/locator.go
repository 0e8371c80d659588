package program

import (
	"errors"
)

// ErrExerciseNotFound is returned when the addressed week, day or
// exercise position does not exist in the program document.
var ErrExerciseNotFound = errors.New("exercise not found in program")

// LocateParams address a single exercise either by explicit indices or
// by a synthetic workout key. A WorkoutID that decodes overrides the
// explicit indices.
type LocateParams struct {
	WeekIndex    int    `json:"weekIndex"`
	DayIndex     int    `json:"dayIndex"`
	WorkoutIndex int    `json:"workoutIndex"`
	WorkoutID    string `json:"workoutId,omitempty"`
}

// LocatedExercise carries pointers into the searched weeks structure so
// the caller can mutate the owning objects in place, plus the resolved
// indices and the canonical re-encoded key.
type LocatedExercise struct {
	Week     *Week
	Day      *Day
	Exercise *Exercise

	WeekIndex    int
	DayIndex     int
	WorkoutIndex int
	WorkoutID    string
}

// Locate finds an exercise inside the nested weeks structure. Week and
// day are matched by value on their index fields, first match wins;
// the exercise is addressed by position within the day.
func Locate(weeks []Week, params LocateParams) (*LocatedExercise, error) {
	weekIndex := params.WeekIndex
	dayIndex := params.DayIndex
	workoutIndex := params.WorkoutIndex
	if params.WorkoutID != "" {
		if w, d, i, err := DecodeWorkoutKey(params.WorkoutID); err == nil {
			weekIndex, dayIndex, workoutIndex = w, d, i
		}
	}

	var week *Week
	for i := range weeks {
		if weeks[i].WeekIndex == weekIndex {
			week = &weeks[i]
			break
		}
	}
	if week == nil {
		return nil, ErrExerciseNotFound
	}

	var day *Day
	for i := range week.Days {
		if week.Days[i].DayIndex == dayIndex {
			day = &week.Days[i]
			break
		}
	}
	if day == nil {
		return nil, ErrExerciseNotFound
	}

	if workoutIndex < 0 || workoutIndex >= len(day.Workouts) {
		return nil, ErrExerciseNotFound
	}

	return &LocatedExercise{
		Week:         week,
		Day:          day,
		Exercise:     &day.Workouts[workoutIndex],
		WeekIndex:    weekIndex,
		DayIndex:     dayIndex,
		WorkoutIndex: workoutIndex,
		// always re-encoded from the resolved indices, never taken
		// verbatim from the input
		WorkoutID: EncodeWorkoutKey(weekIndex, dayIndex, workoutIndex),
	}, nil
}
