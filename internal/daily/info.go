package daily

import (
	"context"
	"errors"

	"github.com/vranes/fittrack/internal/journal"
)

type plansRepo interface {
	GetCurrent(ctx context.Context, userID int) (*Plan, error)
}

// InfoFetcher adapts the daily plans repo to the journal enrichment
// interface. A user without an active plan yields nil info.
type InfoFetcher struct {
	repo plansRepo
}

func NewInfoFetcher(repo plansRepo) *InfoFetcher {
	return &InfoFetcher{repo: repo}
}

func (f *InfoFetcher) CurrentPlanInfo(ctx context.Context, userID int) (*journal.PlanInfo, error) {
	p, err := f.repo.GetCurrent(ctx, userID)
	if errors.Is(err, ErrPlanNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &journal.PlanInfo{ID: p.ID, Name: p.Name}, nil
}
