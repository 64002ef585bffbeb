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

	"go.uber.org/zap"
)

type SpecialistController struct {
	Log           *zap.Logger
	FinderUsecase contracts.FinderUsecase
	Timeout       time.Duration
}

func NewSpecialistController(logger *zap.Logger, finderUsecase contracts.FinderUsecase, timeout time.Duration) *SpecialistController {
	return &SpecialistController{
		Log:           logger,
		FinderUsecase: finderUsecase,
		Timeout:       timeout,
	}
}

// FindAll filters the specialist directory by the query parameter. Queries
// shorter than the configured minimum yield a null list.
func (ctrl *SpecialistController) FindAll(w http.ResponseWriter, r *http.Request) {
	request := &requests.UpdateQuery{Query: r.URL.Query().Get(constvars.QueryParamQuery)}

	err := utils.ValidateStruct(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), ctrl.Timeout)
	defer cancel()

	response, err := ctrl.FinderUsecase.FindSpecialists(ctx, request.Query)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetSpecialistsSuccessMessage, response)
}
