package routers

import (
	"pacientes-service/internal/app/delivery/http/controllers"
	"pacientes-service/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
)

func attachPatientRoutes(router chi.Router, patientController *controllers.PatientController) {
	router.Get("/", patientController.FindAll)
	router.Post("/", patientController.Create)
	router.Get("/"+constvars.ResourceSearch, patientController.Search)
	router.Get("/{"+constvars.URLParamPatientID+"}", patientController.FindByID)
	router.Put("/{"+constvars.URLParamPatientID+"}", patientController.Update)
	router.Delete("/{"+constvars.URLParamPatientID+"}", patientController.Disable)
}
