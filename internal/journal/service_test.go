package journal

import (
	"context"
	"testing"
	"time"

	"github.com/vranes/fittrack/internal/telemetry/metrics"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type planInfoFetcherMock struct {
	info  *PlanInfo
	err   error
	calls int
}

func (f *planInfoFetcherMock) CurrentPlanInfo(_ context.Context, _ int) (*PlanInfo, error) {
	f.calls++
	return f.info, f.err
}

func newTestService(repo entriesRepo, programs, daily PlanInfoFetcher) *Service {
	s := NewService(repo, programs, daily, metrics.NewTestManager())
	s.now = func() time.Time {
		return time.Date(2025, time.March, 15, 10, 30, 0, 0, time.UTC)
	}
	return s
}

func TestService_AppendWorkout(t *testing.T) {
	ctx := context.Background()
	repo := NewMockJournalRepo()
	s := newTestService(repo, nil, nil)

	day := time.Date(2025, time.March, 1, 18, 45, 0, 0, time.UTC)
	entry, err := s.AppendWorkout(ctx, 1, day, WorkoutRecord{
		Source: SourceManual,
		Name:   "push day",
	})
	require.NoError(t, err)
	require.Len(t, entry.Workouts, 1)
	assert.NotEmpty(t, entry.Workouts[0].ID)
	assert.Equal(t, "push day", entry.Workouts[0].Name)
	// the day component is normalized to midnight
	assert.Equal(t, time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC), entry.Day)

	// second workout on the same day lands in the same entry, in order
	entry, err = s.AppendWorkout(ctx, 1, day, WorkoutRecord{
		Source: SourceManual,
		Name:   "evening run",
	})
	require.NoError(t, err)
	require.Len(t, entry.Workouts, 1+1)
	assert.Equal(t, "push day", entry.Workouts[0].Name)
	assert.Equal(t, "evening run", entry.Workouts[1].Name)

	// another user, same day, separate entry
	otherEntry, err := s.AppendWorkout(ctx, 2, day, WorkoutRecord{
		Source: SourceManual,
		Name:   "leg day",
	})
	require.NoError(t, err)
	assert.NotEqual(t, entry.ID, otherEntry.ID)
	assert.Len(t, otherEntry.Workouts, 1)
}

func TestService_AppendWorkout_DedupByExternalID(t *testing.T) {
	ctx := context.Background()
	repo := NewMockJournalRepo()
	s := newTestService(repo, nil, nil)

	day := time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC)
	externalID := "program:5:workout:w:1-2-0:date:2025-03-01"

	entry, err := s.AppendWorkout(ctx, 1, day, WorkoutRecord{
		ExternalID: externalID,
		Source:     SourceProgram,
		Name:       "bench press",
		Completed:  true,
	})
	require.NoError(t, err)
	require.Len(t, entry.Workouts, 1)
	firstID := entry.Workouts[0].ID

	// replaying the same external id is a no-op, even with a new id
	entry, err = s.AppendWorkout(ctx, 1, day, WorkoutRecord{
		ID:         "some-other-id",
		ExternalID: externalID,
		Source:     SourceProgram,
		Name:       "bench press replayed",
	})
	require.NoError(t, err)
	require.Len(t, entry.Workouts, 1)
	assert.Equal(t, firstID, entry.Workouts[0].ID)
	assert.Equal(t, "bench press", entry.Workouts[0].Name)

	// same id but a different external id is a distinct record
	entry, err = s.AppendWorkout(ctx, 1, day, WorkoutRecord{
		ID:         firstID,
		ExternalID: "program:5:workout:w:1-2-1:date:2025-03-01",
		Source:     SourceProgram,
		Name:       "overhead press",
	})
	require.NoError(t, err)
	assert.Len(t, entry.Workouts, 2)
}

func TestService_AppendWorkout_DedupByID(t *testing.T) {
	ctx := context.Background()
	repo := NewMockJournalRepo()
	s := newTestService(repo, nil, nil)

	day := time.Date(2025, time.March, 2, 0, 0, 0, 0, time.UTC)
	entry, err := s.AppendWorkout(ctx, 1, day, WorkoutRecord{
		ID:     "wk-1",
		Source: SourceManual,
		Name:   "pull day",
	})
	require.NoError(t, err)
	require.Len(t, entry.Workouts, 1)

	entry, err = s.AppendWorkout(ctx, 1, day, WorkoutRecord{
		ID:     "wk-1",
		Source: SourceManual,
		Name:   "pull day again",
	})
	require.NoError(t, err)
	require.Len(t, entry.Workouts, 1)
	assert.Equal(t, "pull day", entry.Workouts[0].Name)
}

func TestService_AppendFood(t *testing.T) {
	ctx := context.Background()
	repo := NewMockJournalRepo()
	s := newTestService(repo, nil, nil)

	day := time.Date(2025, time.March, 3, 0, 0, 0, 0, time.UTC)
	entry, err := s.AppendFood(ctx, 1, day, FoodRecord{
		Name:     "oats",
		Calories: 350,
		Protein:  12,
	})
	require.NoError(t, err)
	require.Len(t, entry.Foods, 1)
	foodID := entry.Foods[0].ID
	assert.NotEmpty(t, foodID)

	// same id replayed, absorbed
	entry, err = s.AppendFood(ctx, 1, day, FoodRecord{
		ID:   foodID,
		Name: "oats again",
	})
	require.NoError(t, err)
	require.Len(t, entry.Foods, 1)
	assert.Equal(t, "oats", entry.Foods[0].Name)

	entry, err = s.AppendFood(ctx, 1, day, FoodRecord{Name: "chicken"})
	require.NoError(t, err)
	assert.Len(t, entry.Foods, 2)
}

func TestService_DeleteWorkout(t *testing.T) {
	ctx := context.Background()
	repo := NewMockJournalRepo()
	s := newTestService(repo, nil, nil)

	day := time.Date(2025, time.March, 4, 0, 0, 0, 0, time.UTC)
	_, err := s.AppendWorkout(ctx, 1, day, WorkoutRecord{ID: "wk-1", Source: SourceManual, Name: "a"})
	require.NoError(t, err)
	entry, err := s.AppendFood(ctx, 1, day, FoodRecord{ID: "fd-1", Name: "rice"})
	require.NoError(t, err)
	require.Len(t, entry.Workouts, 1)

	entry, err = s.DeleteWorkout(ctx, 1, day, "wk-1")
	require.NoError(t, err)
	assert.Empty(t, entry.Workouts)
	// the entry itself survives, foods untouched
	assert.Len(t, entry.Foods, 1)

	_, err = s.DeleteWorkout(ctx, 1, day, "wk-1")
	assert.ErrorIs(t, err, ErrWorkoutNotFound)

	noEntryDay := time.Date(2025, time.April, 4, 0, 0, 0, 0, time.UTC)
	_, err = s.DeleteWorkout(ctx, 1, noEntryDay, "wk-1")
	assert.ErrorIs(t, err, ErrEntryNotFound)

	entry, err = s.DeleteFood(ctx, 1, day, "fd-1")
	require.NoError(t, err)
	assert.Empty(t, entry.Foods)
	_, err = s.DeleteFood(ctx, 1, day, "fd-1")
	assert.ErrorIs(t, err, ErrFoodNotFound)
}

func TestService_Query_RangeResolution(t *testing.T) {
	ctx := context.Background()
	repo := NewMockJournalRepo()
	s := newTestService(repo, nil, nil)

	days := []time.Time{
		time.Date(2025, time.February, 27, 0, 0, 0, 0, time.UTC),
		time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2025, time.March, 10, 0, 0, 0, 0, time.UTC),
		time.Date(2025, time.March, 31, 0, 0, 0, 0, time.UTC),
		time.Date(2025, time.April, 2, 0, 0, 0, 0, time.UTC),
	}
	for _, day := range days {
		_, err := s.AppendWorkout(ctx, 1, day, WorkoutRecord{Source: SourceManual, Name: "w"})
		require.NoError(t, err)
	}

	// exact date
	date := days[2]
	entries, err := s.Query(ctx, 1, QueryParams{Date: &date})
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, days[2], entries[0].Day)

	// explicit range
	from, to := days[1], days[3]
	entries, err = s.Query(ctx, 1, QueryParams{From: &from, To: &to})
	require.NoError(t, err)
	assert.Len(t, entries, 3)

	// month and year
	entries, err = s.Query(ctx, 1, QueryParams{Month: time.February, Year: 2025})
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, days[0], entries[0].Day)

	// no params defaults to current month (March 2025 per the fixed clock)
	entries, err = s.Query(ctx, 1, QueryParams{})
	require.NoError(t, err)
	require.Len(t, entries, 3)
	// ascending by day
	assert.True(t, entries[0].Day.Before(entries[1].Day))
	assert.True(t, entries[1].Day.Before(entries[2].Day))
}

func TestService_Query_OnlyCompletedAndFlags(t *testing.T) {
	ctx := context.Background()
	repo := NewMockJournalRepo()
	s := newTestService(repo, nil, nil)

	day := time.Date(2025, time.March, 5, 0, 0, 0, 0, time.UTC)
	_, err := s.AppendWorkout(ctx, 1, day, WorkoutRecord{
		ID: "wk-1", Source: SourceDaily, Name: "incomplete", Completed: false,
	})
	require.NoError(t, err)
	_, err = s.AppendWorkout(ctx, 1, day, WorkoutRecord{
		ID: "wk-2", Source: SourceManual, Name: "done", Completed: true,
	})
	require.NoError(t, err)
	_, err = s.AppendFood(ctx, 1, day, FoodRecord{Name: "eggs"})
	require.NoError(t, err)

	entries, err := s.Query(ctx, 1, QueryParams{
		Date:          &day,
		OnlyCompleted: true,
		IncludeFlags:  true,
	})
	require.NoError(t, err)
	require.Len(t, entries, 1)

	// completed filter applied to the returned workouts
	require.Len(t, entries[0].Workouts, 1)
	assert.Equal(t, "done", entries[0].Workouts[0].Name)

	// flags still reflect the unfiltered day: the only daily-sourced
	// workout was filtered out, yet hasDaily stays true
	require.NotNil(t, entries[0].Flags)
	assert.True(t, entries[0].Flags.HasDaily)
	assert.False(t, entries[0].Flags.HasProgram)
	assert.True(t, entries[0].Flags.HasFood)

	// flags omitted when not requested
	entries, err = s.Query(ctx, 1, QueryParams{Date: &day})
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Nil(t, entries[0].Flags)
	assert.Len(t, entries[0].Workouts, 2)
}

func TestService_Query_Enrichment(t *testing.T) {
	ctx := context.Background()
	repo := NewMockJournalRepo()
	programs := &planInfoFetcherMock{info: &PlanInfo{ID: 7, Name: "Strength Block"}}
	daily := &planInfoFetcherMock{info: &PlanInfo{ID: 3, Name: "Morning Routine"}}
	s := newTestService(repo, programs, daily)

	day1 := time.Date(2025, time.March, 6, 0, 0, 0, 0, time.UTC)
	day2 := time.Date(2025, time.March, 7, 0, 0, 0, 0, time.UTC)
	_, err := s.AppendWorkout(ctx, 1, day1, WorkoutRecord{
		ID:     "wk-1",
		Source: SourceProgram,
		Name:   "squat day",
		Program: &ProgramMeta{
			ProgramID: 7,
			WorkoutID: "w:1-1-0",
		},
	})
	require.NoError(t, err)
	_, err = s.AppendWorkout(ctx, 1, day2, WorkoutRecord{
		ID: "wk-2", Source: SourceDaily, Name: "stretching",
	})
	require.NoError(t, err)

	from, to := day1, day2
	entries, err := s.Query(ctx, 1, QueryParams{
		From: &from, To: &to,
		IncludeProgram: true,
		IncludeDaily:   true,
	})
	require.NoError(t, err)
	require.Len(t, entries, 2)

	require.NotNil(t, entries[0].Workouts[0].Program)
	assert.Equal(t, "Strength Block", entries[0].Workouts[0].Program.Name)
	assert.Equal(t, "w:1-1-0", entries[0].Workouts[0].Program.WorkoutID)

	require.NotNil(t, entries[1].Workouts[0].Daily)
	assert.Equal(t, 3, entries[1].Workouts[0].Daily.ID)
	assert.Equal(t, "Morning Routine", entries[1].Workouts[0].Daily.Name)

	// fetched once per query even with multiple entries
	assert.Equal(t, 1, programs.calls)
	assert.Equal(t, 1, daily.calls)

	// second query served from the metadata cache
	_, err = s.Query(ctx, 1, QueryParams{
		From: &from, To: &to,
		IncludeProgram: true,
		IncludeDaily:   true,
	})
	require.NoError(t, err)
	assert.Equal(t, 1, programs.calls)
	assert.Equal(t, 1, daily.calls)
}

func TestService_Query_EnrichmentSkippedWhenNotRequested(t *testing.T) {
	ctx := context.Background()
	repo := NewMockJournalRepo()
	programs := &planInfoFetcherMock{info: &PlanInfo{ID: 7, Name: "Strength Block"}}
	s := newTestService(repo, programs, nil)

	day := time.Date(2025, time.March, 8, 0, 0, 0, 0, time.UTC)
	_, err := s.AppendWorkout(ctx, 1, day, WorkoutRecord{
		ID: "wk-1", Source: SourceProgram, Name: "deadlift day",
	})
	require.NoError(t, err)

	entries, err := s.Query(ctx, 1, QueryParams{Date: &day})
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Nil(t, entries[0].Workouts[0].Program)
	assert.Equal(t, 0, programs.calls)
}
