package routers

import (
	"medirecord-service/internal/app/delivery/http/middlewares"
	"medirecord-service/internal/app/services/auth"

	"github.com/go-chi/chi/v5"
)

func attachAuthRoutes(router chi.Router, middlewares *middlewares.Middlewares, authController *auth.AuthController) {
	router.Post("/auth/register", authController.Register)
	router.With(middlewares.LoginThrottle).Post("/login", authController.Login)
}
