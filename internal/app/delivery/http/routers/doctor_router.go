package routers

import (
	"telemed-service/internal/app/delivery/http/controllers"

	"github.com/go-chi/chi/v5"
)

func attachDoctorRoutes(router chi.Router, doctorController *controllers.DoctorController) {
	router.Get("/", doctorController.ListDoctors)
	router.Post("/consult", doctorController.RequestConsultation)
}
