package analytics

import (
	"context"
	"medirecord-service/internal/pkg/constvars"
	"medirecord-service/internal/pkg/exceptions"
	"medirecord-service/internal/pkg/utils"
	"net/http"
	"time"

	"go.uber.org/zap"
)

type AnalyticsController struct {
	AnalyticsUsecase AnalyticsUsecase
	RequestTimeout   time.Duration
	Log              *zap.Logger
}

func NewAnalyticsController(analyticsUsecase AnalyticsUsecase, requestTimeout time.Duration, logger *zap.Logger) *AnalyticsController {
	return &AnalyticsController{
		AnalyticsUsecase: analyticsUsecase,
		RequestTimeout:   requestTimeout,
		Log:              logger,
	}
}

func (ctrl *AnalyticsController) ConditionCounts(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), ctrl.RequestTimeout)
	defer cancel()

	response, err := ctrl.AnalyticsUsecase.ConditionCounts(ctx)
	if err != nil {
		if ctx.Err() == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.AnalyticsSuccess, response)
}

func (ctrl *AnalyticsController) GenderCounts(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), ctrl.RequestTimeout)
	defer cancel()

	response, err := ctrl.AnalyticsUsecase.GenderCounts(ctx)
	if err != nil {
		if ctx.Err() == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.AnalyticsSuccess, response)
}
