package journal

import (
	"time"
)

type Source string

const (
	SourceManual  Source = "manual"
	SourceDaily   Source = "daily"
	SourceProgram Source = "program"
)

// Entry is the per-user, per-day journal record. At most one entry
// exists per (userId, date) pair; items are appended in arrival order.
type Entry struct {
	ID       int             `json:"id"`
	UserID   int             `json:"userId"`
	Day      time.Time       `json:"date"`
	Workouts []WorkoutRecord `json:"workouts"`
	Foods    []FoodRecord    `json:"foods"`
}

type WorkoutRecord struct {
	ID          string         `json:"id"`
	ExternalID  string         `json:"externalId,omitempty"`
	Source      Source         `json:"source"`
	Name        string         `json:"name,omitempty"`
	Completed   bool           `json:"completed"`
	CompletedAt *time.Time     `json:"completedAt,omitempty"`
	Notes       string         `json:"notes,omitempty"`
	Exercises   []ExerciseSet  `json:"exercises,omitempty"`
	Program     *ProgramMeta   `json:"program,omitempty"`
	Daily       *PlanInfo      `json:"daily,omitempty"`
	Metadata    map[string]any `json:"metadata,omitempty"`
}

type ExerciseSet struct {
	Name  string  `json:"name"`
	Sets  int     `json:"sets,omitempty"`
	Reps  int     `json:"reps,omitempty"`
	Kilos float64 `json:"kilos,omitempty"`
}

// ProgramMeta is the denormalized program location carried by workout
// records logged from a training program.
type ProgramMeta struct {
	ProgramID    int    `json:"programId"`
	Name         string `json:"name,omitempty"`
	WorkoutID    string `json:"workoutId,omitempty"`
	WeekIndex    int    `json:"weekIndex"`
	DayIndex     int    `json:"dayIndex"`
	WorkoutIndex int    `json:"workoutIndex"`
}

// PlanInfo is the id/name pair attached to records at read time.
type PlanInfo struct {
	ID   int    `json:"id"`
	Name string `json:"name,omitempty"`
}

type FoodRecord struct {
	ID       string         `json:"id"`
	Name     string         `json:"name,omitempty"`
	Calories float64        `json:"calories,omitempty"`
	Protein  float64        `json:"protein,omitempty"`
	Carbs    float64        `json:"carbs,omitempty"`
	Fats     float64        `json:"fats,omitempty"`
	Metadata map[string]any `json:"metadata,omitempty"`
}

// SameEntry reports whether two workout records are the same logical
// item. When both carry an external correlation id, that id is the
// identity; otherwise the raw id decides. Records sharing an id but
// carrying different external ids are NOT the same item.
func (w WorkoutRecord) SameEntry(other WorkoutRecord) bool {
	if w.ExternalID != "" && other.ExternalID != "" {
		return w.ExternalID == other.ExternalID
	}
	return w.ID == other.ID
}

func (f FoodRecord) SameEntry(other FoodRecord) bool {
	return f.ID == other.ID
}

// Flags are the per-day booleans computed over the unfiltered item sets.
type Flags struct {
	HasDaily   bool `json:"hasDaily"`
	HasProgram bool `json:"hasProgram"`
	HasFood    bool `json:"hasFood"`
}

func (e *Entry) ComputeFlags() Flags {
	var f Flags
	for i := range e.Workouts {
		switch e.Workouts[i].Source {
		case SourceDaily:
			f.HasDaily = true
		case SourceProgram:
			f.HasProgram = true
		}
	}
	f.HasFood = len(e.Foods) > 0
	return f
}

// EnrichedEntry is an Entry decorated with read-time metadata.
type EnrichedEntry struct {
	Entry
	Flags *Flags `json:"flags,omitempty"`
}
