package journal

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"

	"github.com/vranes/fittrack/internal/telemetry/tracing"
	"github.com/vranes/fittrack/pkg"
)

//go:generate mockgen -source=$GOFILE -destination=journal_mocks_test.go -package=journal_test

type journalService interface {
	AppendWorkout(ctx context.Context, userID int, day time.Time, workout WorkoutRecord) (*Entry, error)
	AppendFood(ctx context.Context, userID int, day time.Time, food FoodRecord) (*Entry, error)
	DeleteWorkout(ctx context.Context, userID int, day time.Time, workoutID string) (*Entry, error)
	DeleteFood(ctx context.Context, userID int, day time.Time, foodID string) (*Entry, error)
	Query(ctx context.Context, userID int, params QueryParams) ([]EnrichedEntry, error)
}

type AppendWorkoutRequest struct {
	Date    string        `json:"date"`
	Workout WorkoutRecord `json:"workout"`
}

type AppendFoodRequest struct {
	Date string     `json:"date"`
	Food FoodRecord `json:"food"`
}

type DeleteItemResponse struct {
	DeletedID string `json:"deletedId"`
	Entry     *Entry `json:"entry"`
}

type QueryResponse struct {
	Entries []EnrichedEntry `json:"entries"`
	Total   int             `json:"total"`
}

type Handler struct {
	service journalService
}

func NewHandler(service journalService) *Handler {
	return &Handler{service: service}
}

func (handler *Handler) HandleAppendWorkout(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.journal.appendworkout")
	defer span.End()

	if r.Header.Get("Content-Type") != "application/json" {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	userID, err := pkg.UserIDFromRequest(r)
	if err != nil {
		http.Error(w, "error, user id missing", http.StatusBadRequest)
		return
	}

	var req AppendWorkoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Tracef("append workout, unmarshal json params: %s", err)
		http.Error(w, "append workout failed", http.StatusBadRequest)
		return
	}

	if req.Workout.Name == "" {
		http.Error(w, "error, workout name empty", http.StatusBadRequest)
		return
	}

	day, err := handler.dayOrToday(req.Date)
	if err != nil {
		http.Error(w, "error, invalid date", http.StatusBadRequest)
		return
	}

	entry, err := handler.service.AppendWorkout(ctx, userID, day, req.Workout)
	if err != nil {
		log.Errorf("failed to append workout [%s] for user %d: %s", req.Workout.Name, userID, err)
		http.Error(w, "error, failed to append workout", http.StatusInternalServerError)
		return
	}

	entryJson, err := json.Marshal(entry)
	if err != nil {
		log.Errorf("failed to marshal journal entry: %s", err)
		http.Error(w, "error, failed to append workout", http.StatusInternalServerError)
		return
	}

	log.Debugf("workout appended for user %d on %s", userID, entry.Day.Format(pkg.DayFormat))
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, entryJson, http.StatusCreated)
}

func (handler *Handler) HandleAppendFood(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.journal.appendfood")
	defer span.End()

	if r.Header.Get("Content-Type") != "application/json" {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	userID, err := pkg.UserIDFromRequest(r)
	if err != nil {
		http.Error(w, "error, user id missing", http.StatusBadRequest)
		return
	}

	var req AppendFoodRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Tracef("append food, unmarshal json params: %s", err)
		http.Error(w, "append food failed", http.StatusBadRequest)
		return
	}

	if req.Food.Name == "" {
		http.Error(w, "error, food name empty", http.StatusBadRequest)
		return
	}

	day, err := handler.dayOrToday(req.Date)
	if err != nil {
		http.Error(w, "error, invalid date", http.StatusBadRequest)
		return
	}

	entry, err := handler.service.AppendFood(ctx, userID, day, req.Food)
	if err != nil {
		log.Errorf("failed to append food [%s] for user %d: %s", req.Food.Name, userID, err)
		http.Error(w, "error, failed to append food", http.StatusInternalServerError)
		return
	}

	entryJson, err := json.Marshal(entry)
	if err != nil {
		log.Errorf("failed to marshal journal entry: %s", err)
		http.Error(w, "error, failed to append food", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, entryJson, http.StatusCreated)
}

func (handler *Handler) HandleDeleteWorkout(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.journal.deleteworkout")
	defer span.End()

	userID, err := pkg.UserIDFromRequest(r)
	if err != nil {
		http.Error(w, "error, user id missing", http.StatusBadRequest)
		return
	}

	vars := mux.Vars(r)
	day, err := pkg.ParseDay(vars["date"])
	if err != nil {
		http.Error(w, "error, invalid date", http.StatusBadRequest)
		return
	}
	workoutID := vars["id"]
	if workoutID == "" {
		http.Error(w, "error, id empty", http.StatusBadRequest)
		return
	}

	entry, err := handler.service.DeleteWorkout(ctx, userID, day, workoutID)
	if errors.Is(err, ErrEntryNotFound) || errors.Is(err, ErrWorkoutNotFound) {
		log.Debugf("workout %s not found for user %d", workoutID, userID)
		http.Error(w, "workout not found", http.StatusNotFound)
		return
	} else if err != nil {
		log.Errorf("failed to delete workout %s for user %d: %s", workoutID, userID, err)
		http.Error(w, "workout not deleted", http.StatusInternalServerError)
		return
	}

	deleteRespJson, err := json.Marshal(DeleteItemResponse{
		DeletedID: workoutID,
		Entry:     entry,
	})
	if err != nil {
		log.Errorf("failed to marshal delete response: %s", err)
		http.Error(w, "failed to marshal delete response", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSONResponseOK(w, string(deleteRespJson))
}

func (handler *Handler) HandleDeleteFood(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.journal.deletefood")
	defer span.End()

	userID, err := pkg.UserIDFromRequest(r)
	if err != nil {
		http.Error(w, "error, user id missing", http.StatusBadRequest)
		return
	}

	vars := mux.Vars(r)
	day, err := pkg.ParseDay(vars["date"])
	if err != nil {
		http.Error(w, "error, invalid date", http.StatusBadRequest)
		return
	}
	foodID := vars["id"]
	if foodID == "" {
		http.Error(w, "error, id empty", http.StatusBadRequest)
		return
	}

	entry, err := handler.service.DeleteFood(ctx, userID, day, foodID)
	if errors.Is(err, ErrEntryNotFound) || errors.Is(err, ErrFoodNotFound) {
		log.Debugf("food %s not found for user %d", foodID, userID)
		http.Error(w, "food not found", http.StatusNotFound)
		return
	} else if err != nil {
		log.Errorf("failed to delete food %s for user %d: %s", foodID, userID, err)
		http.Error(w, "food not deleted", http.StatusInternalServerError)
		return
	}

	deleteRespJson, err := json.Marshal(DeleteItemResponse{
		DeletedID: foodID,
		Entry:     entry,
	})
	if err != nil {
		log.Errorf("failed to marshal delete response: %s", err)
		http.Error(w, "failed to marshal delete response", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSONResponseOK(w, string(deleteRespJson))
}

func (handler *Handler) HandleQuery(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.journal.query")
	defer span.End()

	userID, err := pkg.UserIDFromRequest(r)
	if err != nil {
		http.Error(w, "error, user id missing", http.StatusBadRequest)
		return
	}

	params, err := queryParamsFromRequest(r)
	if err != nil {
		log.Tracef("journal query params: %s", err)
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	entries, err := handler.service.Query(ctx, userID, params)
	if err != nil {
		log.Errorf("journal query for user %d error: %s", userID, err)
		http.Error(w, "failed to get journal entries", http.StatusInternalServerError)
		return
	}

	queryRespJson, err := json.Marshal(QueryResponse{
		Entries: entries,
		Total:   len(entries),
	})
	if err != nil {
		log.Errorf("marshal journal entries error: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, queryRespJson, http.StatusOK)
}

func queryParamsFromRequest(r *http.Request) (QueryParams, error) {
	var params QueryParams
	query := r.URL.Query()

	if dateStr := query.Get("date"); dateStr != "" {
		date, err := pkg.ParseDay(dateStr)
		if err != nil {
			return params, errors.New("failed to parse date param")
		}
		params.Date = &date
	}

	fromStr, toStr := query.Get("from"), query.Get("to")
	if (fromStr == "") != (toStr == "") {
		return params, errors.New("params from and to must be given together")
	}
	if fromStr != "" {
		from, err := pkg.ParseDay(fromStr)
		if err != nil {
			return params, errors.New("failed to parse from param")
		}
		to, err := pkg.ParseDay(toStr)
		if err != nil {
			return params, errors.New("failed to parse to param")
		}
		if to.Before(from) {
			return params, errors.New("param to is before from")
		}
		params.From = &from
		params.To = &to
	}

	monthStr, yearStr := query.Get("month"), query.Get("year")
	if (monthStr == "") != (yearStr == "") {
		return params, errors.New("params month and year must be given together")
	}
	if monthStr != "" {
		month, err := strconv.Atoi(monthStr)
		if err != nil || month < 1 || month > 12 {
			return params, errors.New("failed to parse month param")
		}
		year, err := strconv.Atoi(yearStr)
		if err != nil {
			return params, errors.New("failed to parse year param")
		}
		params.Month = time.Month(month)
		params.Year = year
	}

	if onlyCompletedStr := query.Get("only_completed"); onlyCompletedStr != "" {
		onlyCompleted, err := strconv.ParseBool(onlyCompletedStr)
		if err != nil {
			return params, errors.New("failed to parse only_completed param")
		}
		params.OnlyCompleted = onlyCompleted
	}

	for _, include := range query["include"] {
		switch include {
		case "program":
			params.IncludeProgram = true
		case "daily":
			params.IncludeDaily = true
		case "flags":
			params.IncludeFlags = true
		default:
			return params, errors.New("unknown include param value")
		}
	}

	return params, nil
}

func (handler *Handler) dayOrToday(dateStr string) (time.Time, error) {
	if dateStr == "" {
		return pkg.DayOf(time.Now()), nil
	}
	return pkg.ParseDay(dateStr)
}
