package routers

import (
	"medirecord-service/internal/app/delivery/http/middlewares"
	"medirecord-service/internal/app/services/analytics"

	"github.com/go-chi/chi/v5"
)

func attachAnalyticsRoutes(router chi.Router, middlewares *middlewares.Middlewares, analyticsController *analytics.AnalyticsController) {
	router.With(middlewares.Authenticate).Get("/analytics/conditions", analyticsController.ConditionCounts)
	router.With(middlewares.Authenticate).Get("/analytics/gender", analyticsController.GenderCounts)
}
