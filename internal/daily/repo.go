package daily

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/vranes/fittrack/internal/telemetry/tracing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

func (r *Repo) Get(ctx context.Context, id int) (_ *Plan, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.daily.get")
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
	}()
	span.SetAttributes(attribute.Int("plan.id", id))

	rows, err := r.db.Query(ctx, `
		SELECT id, user_id, name, exercises, active, created_at
		FROM daily_plan
		WHERE id = $1
	`, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	plans, err := r.rows2plans(rows)
	if err != nil {
		return nil, err
	}
	if len(plans) != 1 {
		return nil, ErrPlanNotFound
	}

	return &plans[0], nil
}

// GetCurrent returns the user's active daily plan.
func (r *Repo) GetCurrent(ctx context.Context, userID int) (_ *Plan, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.daily.getcurrent")
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
	}()
	span.SetAttributes(attribute.Int("user.id", userID))

	rows, err := r.db.Query(ctx, `
		SELECT id, user_id, name, exercises, active, created_at
		FROM daily_plan
		WHERE user_id = $1 AND active = TRUE
		ORDER BY created_at DESC
		LIMIT 1
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	plans, err := r.rows2plans(rows)
	if err != nil {
		return nil, err
	}
	if len(plans) != 1 {
		return nil, ErrPlanNotFound
	}

	return &plans[0], nil
}

func (r *Repo) Create(ctx context.Context, p *Plan) (_ *Plan, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.daily.create")
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
	}()

	exercisesJson, err := json.Marshal(p.Exercises)
	if err != nil {
		return nil, fmt.Errorf("marshal exercises: %w", err)
	}

	if p.CreatedAt.IsZero() {
		p.CreatedAt = time.Now()
	}

	var id int
	if err = r.db.QueryRow(ctx, `
		INSERT INTO daily_plan (user_id, name, exercises, active, created_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`, p.UserID, p.Name, exercisesJson, p.Active, p.CreatedAt).Scan(&id); err != nil {
		return nil, fmt.Errorf("insert daily plan: %w", err)
	}

	created := *p
	created.ID = id
	return &created, nil
}

func (r *Repo) rows2plans(rows pgx.Rows) ([]Plan, error) {
	var plans []Plan
	for rows.Next() {
		var p Plan
		var exercisesBytes []byte
		if err := rows.Scan(&p.ID, &p.UserID, &p.Name, &exercisesBytes, &p.Active, &p.CreatedAt); err != nil {
			return nil, err
		}

		if err := json.Unmarshal(exercisesBytes, &p.Exercises); err != nil {
			return nil, fmt.Errorf("unmarshal exercises for plan %d: %w", p.ID, err)
		}
		if p.Exercises == nil {
			p.Exercises = make([]Exercise, 0)
		}

		plans = append(plans, p)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	if plans == nil {
		plans = make([]Plan, 0)
	}

	return plans, nil
}
