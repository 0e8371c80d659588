package program

import (
	"context"
	"errors"

	"github.com/vranes/fittrack/internal/journal"
)

// InfoFetcher adapts the programs repo to the journal enrichment
// interface. A user without an active program yields nil info.
type InfoFetcher struct {
	repo programsRepo
}

func NewInfoFetcher(repo programsRepo) *InfoFetcher {
	return &InfoFetcher{repo: repo}
}

func (f *InfoFetcher) CurrentPlanInfo(ctx context.Context, userID int) (*journal.PlanInfo, error) {
	p, err := f.repo.GetCurrent(ctx, userID)
	if errors.Is(err, ErrProgramNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &journal.PlanInfo{ID: p.ID, Name: p.Name}, nil
}
