package journal

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/vranes/fittrack/internal/telemetry/tracing"
	"github.com/vranes/fittrack/pkg"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

var ErrEntryNotFound = errors.New("journal entry not found")

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

// GetOrCreate returns the journal entry for (userID, day), creating an
// empty one first if none exists. The insert relies on the unique
// (user_id, day) constraint, so two concurrent calls converge on the
// same row.
func (r *Repo) GetOrCreate(ctx context.Context, userID int, day time.Time) (_ *Entry, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.journal.getorcreate")
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
	}()
	span.SetAttributes(attribute.Int("user.id", userID))
	span.SetAttributes(attribute.String("day", day.Format(pkg.DayFormat)))

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err != nil {
			if rollbackErr := tx.Rollback(ctx); rollbackErr != nil {
				err = fmt.Errorf("failed to rollback transaction: %w: %w", rollbackErr, err)
			}
		} else {
			err = tx.Commit(ctx)
		}
	}()

	if _, err = tx.Exec(ctx, `
		INSERT INTO journal_entry (user_id, day, workouts, foods, created_at, updated_at)
		VALUES ($1, $2, '[]', '[]', now(), now())
		ON CONFLICT (user_id, day) DO NOTHING
	`, userID, day); err != nil {
		return nil, fmt.Errorf("insert journal entry: %w", err)
	}

	rows, err := tx.Query(ctx, `
		SELECT id, user_id, day, workouts, foods
		FROM journal_entry
		WHERE user_id = $1 AND day = $2
	`, userID, day)
	if err != nil {
		return nil, fmt.Errorf("query journal entry: %w", err)
	}
	defer rows.Close()

	entries, err := r.rows2entries(rows)
	if err != nil {
		return nil, err
	}
	if len(entries) != 1 {
		return nil, ErrEntryNotFound
	}

	return &entries[0], nil
}

func (r *Repo) Get(ctx context.Context, userID int, day time.Time) (_ *Entry, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.journal.get")
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
	}()
	span.SetAttributes(attribute.Int("user.id", userID))

	rows, err := r.db.Query(ctx, `
		SELECT id, user_id, day, workouts, foods
		FROM journal_entry
		WHERE user_id = $1 AND day = $2
	`, userID, day)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entries, err := r.rows2entries(rows)
	if err != nil {
		return nil, err
	}
	if len(entries) != 1 {
		return nil, ErrEntryNotFound
	}

	return &entries[0], nil
}

// Update persists the item sequences of an existing entry.
func (r *Repo) Update(ctx context.Context, entry *Entry) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.journal.update")
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
	}()
	span.SetAttributes(attribute.Int("entry.id", entry.ID))

	workoutsJson, err := json.Marshal(entry.Workouts)
	if err != nil {
		return fmt.Errorf("marshal workouts: %w", err)
	}
	foodsJson, err := json.Marshal(entry.Foods)
	if err != nil {
		return fmt.Errorf("marshal foods: %w", err)
	}

	tag, err := r.db.Exec(ctx, `
		UPDATE journal_entry
		SET workouts = $1, foods = $2, updated_at = now()
		WHERE id = $3
	`, workoutsJson, foodsJson, entry.ID)
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return ErrEntryNotFound
	}

	return nil
}

// ListRange returns all entries for the user with day in [from, to],
// ordered by day ascending.
func (r *Repo) ListRange(ctx context.Context, userID int, from, to time.Time) (_ []Entry, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.journal.listrange")
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
	}()
	span.SetAttributes(attribute.Int("user.id", userID))
	span.SetAttributes(attribute.String("from", from.Format(pkg.DayFormat)))
	span.SetAttributes(attribute.String("to", to.Format(pkg.DayFormat)))

	rows, err := r.db.Query(ctx, `
		SELECT id, user_id, day, workouts, foods
		FROM journal_entry
		WHERE user_id = $1 AND day >= $2 AND day <= $3
		ORDER BY day ASC
	`, userID, from, to)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	defer rows.Close()

	entries, err := r.rows2entries(rows)
	if err != nil {
		return nil, fmt.Errorf("rows2entries: %w", err)
	}
	return entries, nil
}

func (r *Repo) rows2entries(rows pgx.Rows) ([]Entry, error) {
	var entries []Entry
	for rows.Next() {
		var id int
		var userID int
		var day time.Time
		var workoutsBytes []byte
		var foodsBytes []byte
		if err := rows.Scan(&id, &userID, &day, &workoutsBytes, &foodsBytes); err != nil {
			return nil, err
		}

		e := Entry{
			ID:     id,
			UserID: userID,
			Day:    pkg.DayOf(day),
		}

		if err := json.Unmarshal(workoutsBytes, &e.Workouts); err != nil {
			return nil, fmt.Errorf("unmarshal workouts for entry %d: %w", id, err)
		}
		if err := json.Unmarshal(foodsBytes, &e.Foods); err != nil {
			return nil, fmt.Errorf("unmarshal foods for entry %d: %w", id, err)
		}

		if e.Workouts == nil {
			e.Workouts = make([]WorkoutRecord, 0)
		}
		if e.Foods == nil {
			e.Foods = make([]FoodRecord, 0)
		}

		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	if entries == nil {
		entries = make([]Entry, 0)
	}

	return entries, nil
}
