package program

import (
	"time"
)

// Program is a per-user training program document, or a catalog
// template when UserID is zero. Weeks hold the nested
// week -> day -> exercise structure persisted as one jsonb document.
type Program struct {
	ID          int       `json:"id"`
	UserID      int       `json:"userId,omitempty"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Weeks       []Week    `json:"workouts"`
	Active      bool      `json:"active"`
	CreatedAt   time.Time `json:"createdAt"`
}

// Week and Day indices are caller-assigned and matched by value, they
// are not guaranteed to be contiguous or to start at zero.
type Week struct {
	WeekIndex int    `json:"weekIndex"`
	Name      string `json:"name,omitempty"`
	Days      []Day  `json:"days"`
}

type Day struct {
	DayIndex int        `json:"dayIndex"`
	Name     string     `json:"name,omitempty"`
	Workouts []Exercise `json:"workouts"`
}

type Exercise struct {
	Name              string         `json:"name"`
	Sets              int            `json:"sets,omitempty"`
	Reps              int            `json:"reps,omitempty"`
	Kilos             float64        `json:"kilos,omitempty"`
	Completed         bool           `json:"completed"`
	LastCompletedAt   *time.Time     `json:"lastCompletedAt,omitempty"`
	LastCompletedDate string         `json:"lastCompletedDate,omitempty"`
	CompletionNotes   string         `json:"completionNotes,omitempty"`
	Metadata          map[string]any `json:"metadata,omitempty"`
}

// IsTemplate reports whether the program is an unowned catalog template.
func (p *Program) IsTemplate() bool {
	return p.UserID == 0
}

// CopyWeeks returns a deep copy of the nested weeks structure, so the
// caller can mutate freely without aliasing the source document.
func CopyWeeks(weeks []Week) []Week {
	if weeks == nil {
		return nil
	}
	weeksCopy := make([]Week, len(weeks))
	for i, week := range weeks {
		weekCopy := week
		weekCopy.Days = make([]Day, len(week.Days))
		for j, day := range week.Days {
			dayCopy := day
			dayCopy.Workouts = make([]Exercise, len(day.Workouts))
			for k, exercise := range day.Workouts {
				exerciseCopy := exercise
				if exercise.LastCompletedAt != nil {
					at := *exercise.LastCompletedAt
					exerciseCopy.LastCompletedAt = &at
				}
				if exercise.Metadata != nil {
					exerciseCopy.Metadata = make(map[string]any, len(exercise.Metadata))
					for mk, mv := range exercise.Metadata {
						exerciseCopy.Metadata[mk] = mv
					}
				}
				dayCopy.Workouts[k] = exerciseCopy
			}
			weekCopy.Days[j] = dayCopy
		}
		weeksCopy[i] = weekCopy
	}
	return weeksCopy
}
