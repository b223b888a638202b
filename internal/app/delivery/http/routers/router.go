package routers

import (
	"fmt"
	"pacientes-service/internal/app/config"
	"pacientes-service/internal/app/delivery/http/controllers"
	"pacientes-service/internal/app/delivery/http/middlewares"
	"pacientes-service/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
)

func SetupRoutes(
	router *chi.Mux,
	internalConfig *config.InternalConfig,
	middlewares *middlewares.Middlewares,
	patientController *controllers.PatientController,
	uploadController *controllers.UploadController,
) {
	corsOptions := cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type", constvars.HeaderXRequestID},
		ExposedHeaders: []string{constvars.HeaderXRequestID},
		MaxAge:         300,
	}
	router.Use(cors.Handler(corsOptions))
	router.Use(middlewares.RequestIDMiddleware)
	router.Use(middlewares.Logging)
	router.Use(middlewares.RateLimit())
	router.Use(middlewares.ErrorHandler)

	endpointPrefix := fmt.Sprintf("/%s", internalConfig.App.EndpointPrefix)

	router.Route(endpointPrefix, func(r chi.Router) {
		r.Route("/"+constvars.ResourcePatients, func(r chi.Router) {
			attachPatientRoutes(r, patientController)
		})

		r.Route("/"+constvars.ResourceUploads, func(r chi.Router) {
			attachUploadRoutes(r, uploadController)
		})
	})
}
