package journal

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/vranes/fittrack/pkg"
)

type repoMock struct {
	nextID  int
	entries map[string]*Entry
}

func NewMockJournalRepo() *repoMock {
	return &repoMock{
		nextID:  1,
		entries: make(map[string]*Entry),
	}
}

func (r *repoMock) key(userID int, day time.Time) string {
	return fmt.Sprintf("%d|%s", userID, day.Format(pkg.DayFormat))
}

func (r *repoMock) GetOrCreate(_ context.Context, userID int, day time.Time) (*Entry, error) {
	day = pkg.DayOf(day)
	if e, ok := r.entries[r.key(userID, day)]; ok {
		cp := *e
		return &cp, nil
	}
	e := &Entry{
		ID:       r.nextID,
		UserID:   userID,
		Day:      day,
		Workouts: make([]WorkoutRecord, 0),
		Foods:    make([]FoodRecord, 0),
	}
	r.nextID++
	r.entries[r.key(userID, day)] = e
	cp := *e
	return &cp, nil
}

func (r *repoMock) Get(_ context.Context, userID int, day time.Time) (*Entry, error) {
	e, ok := r.entries[r.key(userID, pkg.DayOf(day))]
	if !ok {
		return nil, ErrEntryNotFound
	}
	cp := *e
	return &cp, nil
}

func (r *repoMock) Update(_ context.Context, entry *Entry) error {
	for k, e := range r.entries {
		if e.ID == entry.ID {
			cp := *entry
			r.entries[k] = &cp
			return nil
		}
	}
	return ErrEntryNotFound
}

func (r *repoMock) ListRange(_ context.Context, userID int, from, to time.Time) ([]Entry, error) {
	from, to = pkg.DayOf(from), pkg.DayOf(to)
	entries := make([]Entry, 0)
	for _, e := range r.entries {
		if e.UserID != userID {
			continue
		}
		if e.Day.Before(from) || e.Day.After(to) {
			continue
		}
		entries = append(entries, *e)
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Day.Before(entries[j].Day)
	})
	return entries, nil
}
