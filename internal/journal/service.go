package journal

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/vranes/fittrack/internal/telemetry/metrics"
	"github.com/vranes/fittrack/internal/telemetry/tracing"
	"github.com/vranes/fittrack/pkg"

	"github.com/coocood/freecache"
	"github.com/prometheus/client_golang/prometheus"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

var (
	ErrWorkoutNotFound = errors.New("workout record not found")
	ErrFoodNotFound    = errors.New("food record not found")
)

type entriesRepo interface {
	GetOrCreate(ctx context.Context, userID int, day time.Time) (*Entry, error)
	Get(ctx context.Context, userID int, day time.Time) (*Entry, error)
	Update(ctx context.Context, entry *Entry) error
	ListRange(ctx context.Context, userID int, from, to time.Time) ([]Entry, error)
}

// PlanInfoFetcher resolves the user's current program or daily plan
// for read-time enrichment. Implementations return (nil, nil) when the
// user has none.
type PlanInfoFetcher interface {
	CurrentPlanInfo(ctx context.Context, userID int) (*PlanInfo, error)
}

const defaultPlanInfoCacheExpireSeconds = 60

type Service struct {
	repo           entriesRepo
	programs       PlanInfoFetcher
	daily          PlanInfoFetcher
	metaCache      *freecache.Cache
	cacheExpireSec int
	metricsManager *metrics.Manager
	now            func() time.Time
}

func NewService(
	repo entriesRepo,
	programs PlanInfoFetcher,
	daily PlanInfoFetcher,
	metricsManager *metrics.Manager,
) *Service {
	megabyte := 1024 * 1024
	return &Service{
		repo:           repo,
		programs:       programs,
		daily:          daily,
		metaCache:      freecache.NewCache(megabyte),
		cacheExpireSec: defaultPlanInfoCacheExpireSeconds,
		metricsManager: metricsManager,
		now:            time.Now,
	}
}

// SetPlanInfoCacheExpiry overrides how long enrichment metadata is cached.
func (s *Service) SetPlanInfoCacheExpiry(seconds int) {
	if seconds > 0 {
		s.cacheExpireSec = seconds
	}
}

// AppendWorkout adds a workout record to the user's journal for the
// given day. The entry is created on first append. A record matching an
// existing one (per SameEntry) is silently absorbed: the current entry
// is returned unmodified and nothing is written.
func (s *Service) AppendWorkout(ctx context.Context, userID int, day time.Time, workout WorkoutRecord) (_ *Entry, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.journal.appendworkout")
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
	}()
	span.SetAttributes(attribute.Int("user.id", userID))
	span.SetAttributes(attribute.String("workout.source", string(workout.Source)))

	day = pkg.DayOf(day)
	entry, err := s.repo.GetOrCreate(ctx, userID, day)
	if err != nil {
		return nil, fmt.Errorf("get or create journal entry: %w", err)
	}

	if workout.ID == "" {
		workout.ID, err = pkg.NewItemID()
		if err != nil {
			return nil, fmt.Errorf("generate workout id: %w", err)
		}
	}

	for i := range entry.Workouts {
		if entry.Workouts[i].SameEntry(workout) {
			span.SetAttributes(attribute.Bool("dedup.hit", true))
			s.countDedupHit("workout")
			return entry, nil
		}
	}

	entry.Workouts = append(entry.Workouts, workout)
	if err := s.repo.Update(ctx, entry); err != nil {
		return nil, fmt.Errorf("update journal entry: %w", err)
	}

	s.countItem("workout")
	return entry, nil
}

// AppendFood is the food counterpart of AppendWorkout, with the simpler
// id-only dedup rule.
func (s *Service) AppendFood(ctx context.Context, userID int, day time.Time, food FoodRecord) (_ *Entry, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.journal.appendfood")
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
	}()
	span.SetAttributes(attribute.Int("user.id", userID))

	day = pkg.DayOf(day)
	entry, err := s.repo.GetOrCreate(ctx, userID, day)
	if err != nil {
		return nil, fmt.Errorf("get or create journal entry: %w", err)
	}

	if food.ID == "" {
		food.ID, err = pkg.NewItemID()
		if err != nil {
			return nil, fmt.Errorf("generate food id: %w", err)
		}
	}

	for i := range entry.Foods {
		if entry.Foods[i].SameEntry(food) {
			span.SetAttributes(attribute.Bool("dedup.hit", true))
			s.countDedupHit("food")
			return entry, nil
		}
	}

	entry.Foods = append(entry.Foods, food)
	if err := s.repo.Update(ctx, entry); err != nil {
		return nil, fmt.Errorf("update journal entry: %w", err)
	}

	s.countItem("food")
	return entry, nil
}

// DeleteWorkout removes a single workout record from the day's entry.
// The entry itself is never deleted.
func (s *Service) DeleteWorkout(ctx context.Context, userID int, day time.Time, workoutID string) (_ *Entry, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.journal.deleteworkout")
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
	}()

	entry, err := s.repo.Get(ctx, userID, pkg.DayOf(day))
	if err != nil {
		return nil, err
	}

	kept := make([]WorkoutRecord, 0, len(entry.Workouts))
	for i := range entry.Workouts {
		if entry.Workouts[i].ID != workoutID {
			kept = append(kept, entry.Workouts[i])
		}
	}
	if len(kept) == len(entry.Workouts) {
		return nil, ErrWorkoutNotFound
	}

	entry.Workouts = kept
	if err := s.repo.Update(ctx, entry); err != nil {
		return nil, fmt.Errorf("update journal entry: %w", err)
	}
	return entry, nil
}

func (s *Service) DeleteFood(ctx context.Context, userID int, day time.Time, foodID string) (_ *Entry, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.journal.deletefood")
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
	}()

	entry, err := s.repo.Get(ctx, userID, pkg.DayOf(day))
	if err != nil {
		return nil, err
	}

	kept := make([]FoodRecord, 0, len(entry.Foods))
	for i := range entry.Foods {
		if entry.Foods[i].ID != foodID {
			kept = append(kept, entry.Foods[i])
		}
	}
	if len(kept) == len(entry.Foods) {
		return nil, ErrFoodNotFound
	}

	entry.Foods = kept
	if err := s.repo.Update(ctx, entry); err != nil {
		return nil, fmt.Errorf("update journal entry: %w", err)
	}
	return entry, nil
}

type QueryParams struct {
	Date *time.Time
	From *time.Time
	To   *time.Time
	// Month/Year are used when no explicit date or range is given;
	// both zero means the current month.
	Month time.Month
	Year  int

	OnlyCompleted bool

	IncludeProgram bool
	IncludeDaily   bool
	IncludeFlags   bool
}

// resolveRange picks the queried day range: exact date wins over an
// explicit [from, to] pair, which wins over (month, year), which
// defaults to the current month.
func (p QueryParams) resolveRange(now time.Time) (from, to time.Time) {
	switch {
	case p.Date != nil:
		day := pkg.DayOf(*p.Date)
		return day, day
	case p.From != nil && p.To != nil:
		return pkg.DayOf(*p.From), pkg.DayOf(*p.To)
	case p.Month != 0 && p.Year != 0:
		return pkg.MonthRange(p.Year, p.Month)
	default:
		return pkg.MonthRange(now.Year(), now.Month())
	}
}

// Query returns the user's journal entries for the selected range,
// ascending by day, optionally filtered to completed workouts and
// decorated with plan metadata and per-day flags. Flags are always
// computed over the unfiltered item sets.
func (s *Service) Query(ctx context.Context, userID int, params QueryParams) (_ []EnrichedEntry, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.journal.query")
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
	}()
	span.SetAttributes(attribute.Int("user.id", userID))

	from, to := params.resolveRange(s.now())
	span.SetAttributes(attribute.String("from", from.Format(pkg.DayFormat)))
	span.SetAttributes(attribute.String("to", to.Format(pkg.DayFormat)))

	entries, err := s.repo.ListRange(ctx, userID, from, to)
	if err != nil {
		return nil, fmt.Errorf("list journal entries: %w", err)
	}

	// plan metadata is resolved once per query, not per entry
	var programInfo, dailyInfo *PlanInfo
	if params.IncludeProgram {
		if programInfo, err = s.planInfo(ctx, "program", userID, s.programs); err != nil {
			return nil, fmt.Errorf("current program info: %w", err)
		}
	}
	if params.IncludeDaily {
		if dailyInfo, err = s.planInfo(ctx, "daily", userID, s.daily); err != nil {
			return nil, fmt.Errorf("current daily plan info: %w", err)
		}
	}

	enriched := make([]EnrichedEntry, 0, len(entries))
	for i := range entries {
		e := entries[i]

		var flags *Flags
		if params.IncludeFlags {
			f := e.ComputeFlags()
			flags = &f
		}

		if params.OnlyCompleted {
			completed := make([]WorkoutRecord, 0, len(e.Workouts))
			for j := range e.Workouts {
				if e.Workouts[j].Completed {
					completed = append(completed, e.Workouts[j])
				}
			}
			e.Workouts = completed
		}

		for j := range e.Workouts {
			w := &e.Workouts[j]
			switch {
			case w.Source == SourceProgram && programInfo != nil:
				if w.Program == nil {
					w.Program = &ProgramMeta{ProgramID: programInfo.ID}
				}
				w.Program.Name = programInfo.Name
			case w.Source == SourceDaily && dailyInfo != nil:
				w.Daily = dailyInfo
			}
		}

		enriched = append(enriched, EnrichedEntry{Entry: e, Flags: flags})
	}

	return enriched, nil
}

func (s *Service) planInfo(ctx context.Context, kind string, userID int, fetcher PlanInfoFetcher) (*PlanInfo, error) {
	if fetcher == nil {
		return nil, nil
	}

	cacheKey := []byte(fmt.Sprintf("%s-info:%d", kind, userID))
	if cached, err := s.metaCache.Get(cacheKey); err == nil {
		var info PlanInfo
		if err := json.Unmarshal(cached, &info); err == nil {
			if info.ID == 0 {
				return nil, nil
			}
			return &info, nil
		}
		log.Warnf("journal service: discarding malformed cached %s info for user %d", kind, userID)
	}

	info, err := fetcher.CurrentPlanInfo(ctx, userID)
	if err != nil {
		return nil, err
	}

	toCache := info
	if toCache == nil {
		toCache = &PlanInfo{}
	}
	if infoJson, err := json.Marshal(toCache); err == nil {
		if err := s.metaCache.Set(cacheKey, infoJson, s.cacheExpireSec); err != nil {
			log.Warnf("journal service: cache %s info for user %d: %s", kind, userID, err)
		}
	}

	return info, nil
}

func (s *Service) countItem(itemType string) {
	if s.metricsManager == nil {
		return
	}
	s.metricsManager.CounterJournalItems.With(prometheus.Labels{"type": itemType}).Inc()
}

func (s *Service) countDedupHit(itemType string) {
	if s.metricsManager == nil {
		return
	}
	s.metricsManager.CounterJournalDedupHits.With(prometheus.Labels{"type": itemType}).Inc()
}
