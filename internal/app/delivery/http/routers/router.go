package routers

import (
	"medirecord-service/internal/app/config"
	"medirecord-service/internal/app/delivery/http/middlewares"
	"medirecord-service/internal/app/services/analytics"
	"medirecord-service/internal/app/services/auth"
	"medirecord-service/internal/app/services/patients"
	"medirecord-service/internal/app/services/users"
	"medirecord-service/internal/pkg/dto/responses"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
	"github.com/goccy/go-json"
)

func SetupRoutes(
	router *chi.Mux,
	internalConfig *config.InternalConfig,
	middlewares *middlewares.Middlewares,
	authController *auth.AuthController,
	patientController *patients.PatientController,
	userController *users.UserController,
	analyticsController *analytics.AnalyticsController,
) {

	corsOptions := cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300,
	}
	router.Use(cors.Handler(corsOptions))

	// Rate limiting middleware using httprate
	rateLimiter := httprate.LimitByIP(internalConfig.App.MaxRequests, time.Second)
	router.Use(rateLimiter)

	router.Use(middlewares.RequestID)
	router.Use(middlewares.Logging)
	router.Use(middlewares.ErrorHandler)

	router.Get("/", home)

	attachAuthRoutes(router, middlewares, authController)
	attachPatientRoutes(router, middlewares, patientController)
	attachUserRoutes(router, middlewares, userController)
	attachAnalyticsRoutes(router, middlewares, analyticsController)
}

func home(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(responses.ResponseDTO{
		Success: true,
		Message: "Patient record service is running",
	})
}
