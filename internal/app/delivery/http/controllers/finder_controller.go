package controllers

import (
	"context"
	"errors"
	"esveikata-finder/internal/app/contracts"
	"esveikata-finder/internal/pkg/constvars"
	"esveikata-finder/internal/pkg/dto/requests"
	"esveikata-finder/internal/pkg/exceptions"
	"esveikata-finder/internal/pkg/utils"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type FinderController struct {
	Log           *zap.Logger
	FinderUsecase contracts.FinderUsecase
	Timeout       time.Duration
}

func NewFinderController(logger *zap.Logger, finderUsecase contracts.FinderUsecase, timeout time.Duration) *FinderController {
	return &FinderController{
		Log:           logger,
		FinderUsecase: finderUsecase,
		Timeout:       timeout,
	}
}

func (ctrl *FinderController) CreateSession(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), ctrl.Timeout)
	defer cancel()

	result, err := ctrl.FinderUsecase.CreateSession(ctx)
	if err != nil {
		ctrl.writeError(w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.CreateSessionSuccessMessage, result)
}

func (ctrl *FinderController) GetSession(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, constvars.URLParamSessionID)

	ctx, cancel := context.WithTimeout(r.Context(), ctrl.Timeout)
	defer cancel()

	result, err := ctrl.FinderUsecase.GetSession(ctx, sessionID)
	if err != nil {
		ctrl.writeError(w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetSessionSuccessMessage, result)
}

func (ctrl *FinderController) UpdateQuery(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, constvars.URLParamSessionID)

	request := new(requests.UpdateQuery)
	err := json.NewDecoder(r.Body).Decode(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInvalidRequestPayload(err))
		return
	}

	err = utils.ValidateStruct(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), ctrl.Timeout)
	defer cancel()

	result, err := ctrl.FinderUsecase.UpdateQuery(ctx, sessionID, request.Query)
	if err != nil {
		ctrl.writeError(w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.UpdateQuerySuccessMessage, result)
}

func (ctrl *FinderController) SelectSpecialist(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, constvars.URLParamSessionID)

	request := new(requests.SelectSpecialist)
	err := json.NewDecoder(r.Body).Decode(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInvalidRequestPayload(err))
		return
	}

	err = utils.ValidateStruct(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), ctrl.Timeout)
	defer cancel()

	result, err := ctrl.FinderUsecase.SelectSpecialist(ctx, sessionID, request.SpecialistID)
	if err != nil {
		ctrl.writeError(w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.SelectSpecialistSuccessMessage, result)
}

// SearchNow waits for the lookup to finish, up to the request timeout. A
// lookup still running at the deadline is reported with searching=true.
func (ctrl *FinderController) SearchNow(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, constvars.URLParamSessionID)

	ctx, cancel := context.WithTimeout(r.Context(), ctrl.Timeout)
	defer cancel()

	result, err := ctrl.FinderUsecase.SearchNow(ctx, sessionID)
	if err != nil {
		ctrl.writeError(w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.SearchSlotsSuccessMessage, result)
}

func (ctrl *FinderController) ToggleTimedSearch(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, constvars.URLParamSessionID)

	ctx, cancel := context.WithTimeout(r.Context(), ctrl.Timeout)
	defer cancel()

	result, err := ctrl.FinderUsecase.ToggleTimedSearch(ctx, sessionID)
	if err != nil {
		ctrl.writeError(w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ToggleTimedSearchSuccessMessage, result)
}

func (ctrl *FinderController) DeleteSession(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, constvars.URLParamSessionID)

	ctx, cancel := context.WithTimeout(r.Context(), ctrl.Timeout)
	defer cancel()

	err := ctrl.FinderUsecase.DeleteSession(ctx, sessionID)
	if err != nil {
		ctrl.writeError(w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.DeleteSessionSuccessMessage, nil)
}

func (ctrl *FinderController) writeError(w http.ResponseWriter, err error) {
	if errors.Is(err, context.DeadlineExceeded) {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
		return
	}
	utils.BuildErrorResponse(ctrl.Log, w, err)
}
