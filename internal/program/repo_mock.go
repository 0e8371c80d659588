package program

import (
	"context"
	"time"
)

type repoMock struct {
	nextID   int
	programs map[int]*Program
}

func NewMockProgramRepo() *repoMock {
	return &repoMock{
		nextID:   1,
		programs: make(map[int]*Program),
	}
}

func (r *repoMock) copyOf(p *Program) *Program {
	cp := *p
	cp.Weeks = CopyWeeks(p.Weeks)
	return &cp
}

func (r *repoMock) Get(_ context.Context, id int) (*Program, error) {
	p, ok := r.programs[id]
	if !ok {
		return nil, ErrProgramNotFound
	}
	return r.copyOf(p), nil
}

func (r *repoMock) GetCurrent(_ context.Context, userID int) (*Program, error) {
	var current *Program
	for _, p := range r.programs {
		if p.UserID != userID || !p.Active {
			continue
		}
		if current == nil || p.CreatedAt.After(current.CreatedAt) {
			current = p
		}
	}
	if current == nil {
		return nil, ErrProgramNotFound
	}
	return r.copyOf(current), nil
}

func (r *repoMock) GetTemplate(_ context.Context, id int) (*Program, error) {
	p, ok := r.programs[id]
	if !ok || !p.IsTemplate() {
		return nil, ErrProgramNotFound
	}
	return r.copyOf(p), nil
}

func (r *repoMock) Create(_ context.Context, p *Program) (*Program, error) {
	created := r.copyOf(p)
	created.ID = r.nextID
	if created.CreatedAt.IsZero() {
		created.CreatedAt = time.Now()
	}
	r.nextID++
	r.programs[created.ID] = created
	return r.copyOf(created), nil
}

func (r *repoMock) UpdateWeeks(_ context.Context, id int, weeks []Week) error {
	p, ok := r.programs[id]
	if !ok {
		return ErrProgramNotFound
	}
	p.Weeks = CopyWeeks(weeks)
	return nil
}

func (r *repoMock) DeactivateAll(_ context.Context, userID int) error {
	for _, p := range r.programs {
		if p.UserID == userID {
			p.Active = false
		}
	}
	return nil
}
