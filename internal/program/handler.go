package program

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

//go:generate mockgen -source=$GOFILE -destination=program_mocks_test.go -package=program_test

type programTracker interface {
	CompleteExercise(ctx context.Context, userID int, params CompleteParams) (*CompletionResult, error)
	Choose(ctx context.Context, userID, templateID int) (*Program, error)
	Current(ctx context.Context, userID int) (*Program, error)
	LocateInProgram(ctx context.Context, userID, programID int, params LocateParams) (*LocatedExercise, error)
}

type CompleteRequest struct {
	WorkoutID    string `json:"workoutId,omitempty"`
	WeekIndex    int    `json:"weekIndex"`
	DayIndex     int    `json:"dayIndex"`
	WorkoutIndex int    `json:"workoutIndex"`
	Notes        string `json:"notes,omitempty"`
	Date         string `json:"date,omitempty"`
}

type ChooseRequest struct {
	TemplateID int `json:"templateId"`
}

type LocateResponse struct {
	WeekIndex    int       `json:"weekIndex"`
	DayIndex     int       `json:"dayIndex"`
	WorkoutIndex int       `json:"workoutIndex"`
	WorkoutID    string    `json:"workoutId"`
	Exercise     *Exercise `json:"exercise"`
}

type Handler struct {
	tracker programTracker
}

func NewHandler(tracker programTracker) *Handler {
	return &Handler{tracker: tracker}
}

func (handler *Handler) HandleComplete(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.program.complete")
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

	programID, err := programIDFromRequest(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	var req CompleteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Tracef("complete exercise, unmarshal json params: %s", err)
		http.Error(w, "complete exercise failed", http.StatusBadRequest)
		return
	}

	var effectiveDate time.Time
	if req.Date != "" {
		if effectiveDate, err = pkg.ParseDay(req.Date); err != nil {
			http.Error(w, "error, invalid date", http.StatusBadRequest)
			return
		}
	}

	result, err := handler.tracker.CompleteExercise(ctx, userID, CompleteParams{
		ProgramID: programID,
		Locate: LocateParams{
			WeekIndex:    req.WeekIndex,
			DayIndex:     req.DayIndex,
			WorkoutIndex: req.WorkoutIndex,
			WorkoutID:    req.WorkoutID,
		},
		Notes: req.Notes,
		Date:  effectiveDate,
	})
	if errors.Is(err, ErrProgramNotFound) || errors.Is(err, ErrExerciseNotFound) {
		log.Debugf("complete exercise, program %d: %s", programID, err)
		http.Error(w, "exercise not found", http.StatusNotFound)
		return
	} else if err != nil {
		log.Errorf("failed to complete exercise in program %d for user %d: %s", programID, userID, err)
		http.Error(w, "error, failed to complete exercise", http.StatusInternalServerError)
		return
	}

	resultJson, err := json.Marshal(result)
	if err != nil {
		log.Errorf("failed to marshal completion result: %s", err)
		http.Error(w, "error, failed to complete exercise", http.StatusInternalServerError)
		return
	}

	log.Debugf("exercise %s completed for user %d", result.WorkoutID, userID)
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, resultJson, http.StatusOK)
}

func (handler *Handler) HandleLocate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.program.locate")
	defer span.End()

	userID, err := pkg.UserIDFromRequest(r)
	if err != nil {
		http.Error(w, "error, user id missing", http.StatusBadRequest)
		return
	}

	programID, err := programIDFromRequest(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	params, err := locateParamsFromRequest(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	located, err := handler.tracker.LocateInProgram(ctx, userID, programID, params)
	if errors.Is(err, ErrProgramNotFound) || errors.Is(err, ErrExerciseNotFound) {
		http.Error(w, "exercise not found", http.StatusNotFound)
		return
	} else if err != nil {
		log.Errorf("failed to locate exercise in program %d: %s", programID, err)
		http.Error(w, "error, failed to locate exercise", http.StatusInternalServerError)
		return
	}

	locateRespJson, err := json.Marshal(LocateResponse{
		WeekIndex:    located.WeekIndex,
		DayIndex:     located.DayIndex,
		WorkoutIndex: located.WorkoutIndex,
		WorkoutID:    located.WorkoutID,
		Exercise:     located.Exercise,
	})
	if err != nil {
		log.Errorf("failed to marshal locate response: %s", err)
		http.Error(w, "failed to marshal locate response", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, locateRespJson, http.StatusOK)
}

func (handler *Handler) HandleCurrent(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.program.current")
	defer span.End()

	userID, err := pkg.UserIDFromRequest(r)
	if err != nil {
		http.Error(w, "error, user id missing", http.StatusBadRequest)
		return
	}

	current, err := handler.tracker.Current(ctx, userID)
	if errors.Is(err, ErrProgramNotFound) {
		http.Error(w, "no active program", http.StatusNotFound)
		return
	} else if err != nil {
		log.Errorf("failed to get current program for user %d: %s", userID, err)
		http.Error(w, "failed to get current program", http.StatusInternalServerError)
		return
	}

	currentJson, err := json.Marshal(current)
	if err != nil {
		log.Errorf("failed to marshal program: %s", err)
		http.Error(w, "failed to marshal program", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, currentJson, http.StatusOK)
}

func (handler *Handler) HandleChoose(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.program.choose")
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

	var req ChooseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Tracef("choose program, unmarshal json params: %s", err)
		http.Error(w, "choose program failed", http.StatusBadRequest)
		return
	}
	if req.TemplateID <= 0 {
		http.Error(w, "error, template id missing", http.StatusBadRequest)
		return
	}

	chosen, err := handler.tracker.Choose(ctx, userID, req.TemplateID)
	if errors.Is(err, ErrProgramNotFound) {
		http.Error(w, "template not found", http.StatusNotFound)
		return
	} else if err != nil {
		log.Errorf("failed to choose program template %d for user %d: %s", req.TemplateID, userID, err)
		http.Error(w, "error, failed to choose program", http.StatusInternalServerError)
		return
	}

	chosenJson, err := json.Marshal(chosen)
	if err != nil {
		log.Errorf("failed to marshal program: %s", err)
		http.Error(w, "error, failed to choose program", http.StatusInternalServerError)
		return
	}

	log.Debugf("program %d chosen from template %d for user %d", chosen.ID, req.TemplateID, userID)
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, chosenJson, http.StatusCreated)
}

func programIDFromRequest(r *http.Request) (int, error) {
	idStr := mux.Vars(r)["id"]
	if idStr == "" {
		return 0, errors.New("error, program id empty")
	}
	id, err := strconv.Atoi(idStr)
	if err != nil {
		return 0, errors.New("error, program id NaN")
	}
	return id, nil
}

func locateParamsFromRequest(r *http.Request) (LocateParams, error) {
	var params LocateParams
	query := r.URL.Query()

	params.WorkoutID = query.Get("workout_id")
	if params.WorkoutID != "" {
		return params, nil
	}

	var err error
	for param, target := range map[string]*int{
		"week_index":    &params.WeekIndex,
		"day_index":     &params.DayIndex,
		"workout_index": &params.WorkoutIndex,
	} {
		valStr := query.Get(param)
		if valStr == "" {
			return params, errors.New("error, parameter <" + param + "> missing")
		}
		if *target, err = strconv.Atoi(valStr); err != nil {
			return params, errors.New("error, parameter <" + param + "> NaN")
		}
	}

	return params, nil
}
