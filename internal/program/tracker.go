package program

import (
	"context"
	"fmt"
	"time"

	"github.com/vranes/fittrack/internal/journal"
	"github.com/vranes/fittrack/internal/telemetry/metrics"
	"github.com/vranes/fittrack/internal/telemetry/tracing"
	"github.com/vranes/fittrack/pkg"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

type programsRepo interface {
	Get(ctx context.Context, id int) (*Program, error)
	GetCurrent(ctx context.Context, userID int) (*Program, error)
	GetTemplate(ctx context.Context, id int) (*Program, error)
	Create(ctx context.Context, p *Program) (*Program, error)
	UpdateWeeks(ctx context.Context, id int, weeks []Week) error
	DeactivateAll(ctx context.Context, userID int) error
}

type journalAppender interface {
	AppendWorkout(ctx context.Context, userID int, day time.Time, workout journal.WorkoutRecord) (*journal.Entry, error)
}

// Tracker drives program progress: marking exercises completed on the
// program document and logging the matching journal workout.
type Tracker struct {
	repo           programsRepo
	journal        journalAppender
	metricsManager *metrics.Manager
	now            func() time.Time
}

func NewTracker(repo programsRepo, journalService journalAppender, metricsManager *metrics.Manager) *Tracker {
	return &Tracker{
		repo:           repo,
		journal:        journalService,
		metricsManager: metricsManager,
		now:            time.Now,
	}
}

type CompleteParams struct {
	ProgramID int          `json:"programId"`
	Locate    LocateParams `json:"locate"`
	Notes     string       `json:"notes,omitempty"`
	// Date is the effective completion day; zero means today.
	Date time.Time `json:"date,omitempty"`
}

type CompletionResult struct {
	Program       *Program       `json:"program"`
	WorkoutID     string         `json:"workoutId"`
	CorrelationID string         `json:"correlationId"`
	Entry         *journal.Entry `json:"entry"`
}

// CompleteExercise marks one exercise of the user's program completed
// and appends the corresponding workout to the journal. The program
// document is treated as immutable input: the weeks structure is deep
// copied, mutated, and persisted as a whole. Replaying the same
// completion for the same date overwrites the program-side fields again
// but produces the same correlation id, so the journal append stays a
// no-op.
func (t *Tracker) CompleteExercise(ctx context.Context, userID int, params CompleteParams) (_ *CompletionResult, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "tracker.program.complete")
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
	}()
	span.SetAttributes(attribute.Int("user.id", userID))
	span.SetAttributes(attribute.Int("program.id", params.ProgramID))

	p, err := t.repo.Get(ctx, params.ProgramID)
	if err != nil {
		return nil, err
	}
	if p.UserID != userID {
		return nil, ErrProgramNotFound
	}

	weeks := CopyWeeks(p.Weeks)
	located, err := Locate(weeks, params.Locate)
	if err != nil {
		return nil, err
	}

	completedAt := t.now()
	effectiveDay := params.Date
	if effectiveDay.IsZero() {
		effectiveDay = completedAt
	}
	effectiveDay = pkg.DayOf(effectiveDay)
	effectiveDate := effectiveDay.Format(pkg.DayFormat)

	exercise := located.Exercise
	exercise.Completed = true
	exercise.LastCompletedAt = &completedAt
	exercise.LastCompletedDate = effectiveDate
	if params.Notes != "" {
		exercise.CompletionNotes = params.Notes
	}

	if err := t.repo.UpdateWeeks(ctx, p.ID, weeks); err != nil {
		return nil, fmt.Errorf("update program weeks: %w", err)
	}
	p.Weeks = weeks

	correlationID := fmt.Sprintf("program:%d:workout:%s:date:%s", p.ID, located.WorkoutID, effectiveDate)
	span.SetAttributes(attribute.String("correlation.id", correlationID))

	entry, err := t.journal.AppendWorkout(ctx, userID, effectiveDay, journal.WorkoutRecord{
		ExternalID:  correlationID,
		Source:      journal.SourceProgram,
		Name:        exercise.Name,
		Completed:   true,
		CompletedAt: &completedAt,
		Notes:       params.Notes,
		Program: &journal.ProgramMeta{
			ProgramID:    p.ID,
			Name:         p.Name,
			WorkoutID:    located.WorkoutID,
			WeekIndex:    located.WeekIndex,
			DayIndex:     located.DayIndex,
			WorkoutIndex: located.WorkoutIndex,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("append journal workout: %w", err)
	}

	if t.metricsManager != nil {
		t.metricsManager.CounterExerciseCompleted.Inc()
	}

	return &CompletionResult{
		Program:       p,
		WorkoutID:     located.WorkoutID,
		CorrelationID: correlationID,
		Entry:         entry,
	}, nil
}

// Choose instantiates a catalog template as the user's own program: a
// structural copy, never a live reference to the template. Any program
// the user had active before is deactivated.
func (t *Tracker) Choose(ctx context.Context, userID, templateID int) (_ *Program, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "tracker.program.choose")
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
	}()
	span.SetAttributes(attribute.Int("user.id", userID))
	span.SetAttributes(attribute.Int("template.id", templateID))

	template, err := t.repo.GetTemplate(ctx, templateID)
	if err != nil {
		return nil, err
	}

	if err := t.repo.DeactivateAll(ctx, userID); err != nil {
		return nil, fmt.Errorf("deactivate current programs: %w", err)
	}

	chosen, err := t.repo.Create(ctx, &Program{
		UserID:      userID,
		Name:        template.Name,
		Description: template.Description,
		Weeks:       CopyWeeks(template.Weeks),
		Active:      true,
		CreatedAt:   t.now(),
	})
	if err != nil {
		return nil, fmt.Errorf("create program from template %d: %w", templateID, err)
	}

	if t.metricsManager != nil {
		t.metricsManager.CounterProgramsChosen.Inc()
	}

	return chosen, nil
}

// Current returns the user's active program.
func (t *Tracker) Current(ctx context.Context, userID int) (*Program, error) {
	return t.repo.GetCurrent(ctx, userID)
}

// LocateInProgram resolves locate params against a stored program,
// for callers that need the canonical key before mutating anything.
func (t *Tracker) LocateInProgram(ctx context.Context, userID, programID int, params LocateParams) (*LocatedExercise, error) {
	p, err := t.repo.Get(ctx, programID)
	if err != nil {
		return nil, err
	}
	if p.UserID != userID {
		return nil, ErrProgramNotFound
	}
	return Locate(p.Weeks, params)
}
