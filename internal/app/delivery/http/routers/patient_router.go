package routers

import (
	"fmt"
	"medirecord-service/internal/app/delivery/http/middlewares"
	"medirecord-service/internal/app/services/patients"
	"medirecord-service/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
)

func attachPatientRoutes(router chi.Router, middlewares *middlewares.Middlewares, patientController *patients.PatientController) {
	patientPath := fmt.Sprintf("/patients/{%s}", constvars.URLParamPatientID)
	vitalsPath := fmt.Sprintf("/nurse/patient/{%s}/vitals", constvars.URLParamPatientID)

	router.With(middlewares.Authenticate, middlewares.RequireRole(constvars.RoleDoctor)).Post("/patients", patientController.CreatePatient)
	router.With(middlewares.Authenticate, middlewares.RequireRole(constvars.RoleReceptionist)).Post("/receptionist/patient", patientController.CreatePatient)
	router.With(middlewares.Authenticate).Get("/search", patientController.SearchPatients)
	router.With(middlewares.Authenticate).Put(patientPath, patientController.UpdatePatient)
	router.With(middlewares.Authenticate).Delete(patientPath, patientController.DeletePatient)
	router.With(middlewares.Authenticate, middlewares.RequireRole(constvars.RoleNurse)).Put(vitalsPath, patientController.UpdateVitals)
}
