package program

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/vranes/fittrack/internal/telemetry/tracing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

var ErrProgramNotFound = errors.New("program not found")

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

func (r *Repo) Get(ctx context.Context, id int) (_ *Program, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.program.get")
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
	}()
	span.SetAttributes(attribute.Int("program.id", id))

	rows, err := r.db.Query(ctx, `
		SELECT id, user_id, name, description, weeks, active, created_at
		FROM program
		WHERE id = $1
	`, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	programs, err := r.rows2programs(rows)
	if err != nil {
		return nil, err
	}
	if len(programs) != 1 {
		return nil, ErrProgramNotFound
	}

	return &programs[0], nil
}

// GetCurrent returns the user's single active program.
func (r *Repo) GetCurrent(ctx context.Context, userID int) (_ *Program, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.program.getcurrent")
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
	}()
	span.SetAttributes(attribute.Int("user.id", userID))

	rows, err := r.db.Query(ctx, `
		SELECT id, user_id, name, description, weeks, active, created_at
		FROM program
		WHERE user_id = $1 AND active = TRUE
		ORDER BY created_at DESC
		LIMIT 1
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	programs, err := r.rows2programs(rows)
	if err != nil {
		return nil, err
	}
	if len(programs) != 1 {
		return nil, ErrProgramNotFound
	}

	return &programs[0], nil
}

// GetTemplate returns an unowned catalog template.
func (r *Repo) GetTemplate(ctx context.Context, id int) (_ *Program, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.program.gettemplate")
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
	}()
	span.SetAttributes(attribute.Int("program.id", id))

	rows, err := r.db.Query(ctx, `
		SELECT id, user_id, name, description, weeks, active, created_at
		FROM program
		WHERE id = $1 AND user_id IS NULL
	`, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	programs, err := r.rows2programs(rows)
	if err != nil {
		return nil, err
	}
	if len(programs) != 1 {
		return nil, ErrProgramNotFound
	}

	return &programs[0], nil
}

func (r *Repo) Create(ctx context.Context, p *Program) (_ *Program, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.program.create")
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
	}()

	weeksJson, err := json.Marshal(p.Weeks)
	if err != nil {
		return nil, fmt.Errorf("marshal weeks: %w", err)
	}

	var userID *int
	if p.UserID != 0 {
		userID = &p.UserID
	}

	if p.CreatedAt.IsZero() {
		p.CreatedAt = time.Now()
	}

	var id int
	if err = r.db.QueryRow(ctx, `
		INSERT INTO program (user_id, name, description, weeks, active, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`, userID, p.Name, p.Description, weeksJson, p.Active, p.CreatedAt).Scan(&id); err != nil {
		return nil, fmt.Errorf("insert program: %w", err)
	}

	created := *p
	created.ID = id
	created.Weeks = CopyWeeks(p.Weeks)
	return &created, nil
}

// UpdateWeeks replaces the full nested document of a program. Concurrent
// writers are last-write-wins.
func (r *Repo) UpdateWeeks(ctx context.Context, id int, weeks []Week) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.program.updateweeks")
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
	}()
	span.SetAttributes(attribute.Int("program.id", id))

	weeksJson, err := json.Marshal(weeks)
	if err != nil {
		return fmt.Errorf("marshal weeks: %w", err)
	}

	tag, err := r.db.Exec(ctx, `
		UPDATE program
		SET weeks = $1
		WHERE id = $2
	`, weeksJson, id)
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return ErrProgramNotFound
	}

	return nil
}

// DeactivateAll clears the active flag on all of the user's programs,
// making room for a newly chosen one.
func (r *Repo) DeactivateAll(ctx context.Context, userID int) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.program.deactivateall")
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
	}()
	span.SetAttributes(attribute.Int("user.id", userID))

	if _, err = r.db.Exec(ctx, `
		UPDATE program
		SET active = FALSE
		WHERE user_id = $1 AND active = TRUE
	`, userID); err != nil {
		return err
	}

	return nil
}

func (r *Repo) rows2programs(rows pgx.Rows) ([]Program, error) {
	var programs []Program
	for rows.Next() {
		var id int
		var userID *int
		var name string
		var description string
		var weeksBytes []byte
		var active bool
		var createdAt time.Time
		if err := rows.Scan(&id, &userID, &name, &description, &weeksBytes, &active, &createdAt); err != nil {
			return nil, err
		}

		p := Program{
			ID:          id,
			Name:        name,
			Description: description,
			Active:      active,
			CreatedAt:   createdAt,
		}
		if userID != nil {
			p.UserID = *userID
		}

		if err := json.Unmarshal(weeksBytes, &p.Weeks); err != nil {
			return nil, fmt.Errorf("unmarshal weeks for program %d: %w", id, err)
		}
		if p.Weeks == nil {
			p.Weeks = make([]Week, 0)
		}

		programs = append(programs, p)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	if programs == nil {
		programs = make([]Program, 0)
	}

	return programs, nil
}
