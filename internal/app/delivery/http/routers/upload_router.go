package routers

import (
	"pacientes-service/internal/app/delivery/http/controllers"
	"pacientes-service/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
)

func attachUploadRoutes(router chi.Router, uploadController *controllers.UploadController) {
	router.Post("/", uploadController.StoreFile)
	router.Get("/{"+constvars.URLParamFileName+"}", uploadController.RetrieveFile)
}
