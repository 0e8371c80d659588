package daily

import (
	"errors"
	"time"
)

var ErrPlanNotFound = errors.New("daily plan not found")

// Plan is a user's recurring daily workout plan, the source of journal
// workouts tagged "daily".
type Plan struct {
	ID        int        `json:"id"`
	UserID    int        `json:"userId"`
	Name      string     `json:"name"`
	Exercises []Exercise `json:"exercises"`
	Active    bool       `json:"active"`
	CreatedAt time.Time  `json:"createdAt"`
}

type Exercise struct {
	Name  string  `json:"name"`
	Sets  int     `json:"sets,omitempty"`
	Reps  int     `json:"reps,omitempty"`
	Kilos float64 `json:"kilos,omitempty"`
}
