package routers

import (
	"telemed-service/internal/app/delivery/http/controllers"

	"github.com/go-chi/chi/v5"
)

func attachAppointmentRoutes(router chi.Router, appointmentController *controllers.AppointmentController) {
	router.Post("/", appointmentController.CreateAppointment)
	router.Post("/with-meeting", appointmentController.CreateAppointmentWithMeeting)
	router.Get("/{appointmentID}", appointmentController.FindAppointment)
	router.Post("/{appointmentID}/meeting", appointmentController.AttachMeeting)
}
