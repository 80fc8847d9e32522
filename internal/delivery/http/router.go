package http

import (
	"net/http"

	"go-medical-appointment/internal/delivery/http/handler"
	"go-medical-appointment/internal/delivery/http/middleware"

	"github.com/gorilla/mux"
)

type Router struct {
	router              *mux.Router
	healthHandler       *handler.HealthHandler
	availabilityHandler *handler.AvailabilityHandler
	appointmentHandler  *handler.AppointmentHandler
	scheduleRuleHandler *handler.ScheduleRuleHandler
	blockedRangeHandler *handler.BlockedRangeHandler
	familyMemberHandler *handler.FamilyMemberHandler
	authMiddleware      *middleware.AuthMiddleware
	corsMiddleware      *middleware.CORSMiddleware
	loggingMiddleware   *middleware.LoggingMiddleware
}

func NewRouter(
	healthHandler *handler.HealthHandler,
	availabilityHandler *handler.AvailabilityHandler,
	appointmentHandler *handler.AppointmentHandler,
	scheduleRuleHandler *handler.ScheduleRuleHandler,
	blockedRangeHandler *handler.BlockedRangeHandler,
	familyMemberHandler *handler.FamilyMemberHandler,
	authMiddleware *middleware.AuthMiddleware,
	corsMiddleware *middleware.CORSMiddleware,
	loggingMiddleware *middleware.LoggingMiddleware,
) *Router {
	return &Router{
		router:              mux.NewRouter(),
		healthHandler:       healthHandler,
		availabilityHandler: availabilityHandler,
		appointmentHandler:  appointmentHandler,
		scheduleRuleHandler: scheduleRuleHandler,
		blockedRangeHandler: blockedRangeHandler,
		familyMemberHandler: familyMemberHandler,
		authMiddleware:      authMiddleware,
		corsMiddleware:      corsMiddleware,
		loggingMiddleware:   loggingMiddleware,
	}
}

func (r *Router) Setup() *mux.Router {
	// API versioning
	api := r.router.PathPrefix("/api/v1").Subrouter()

	// Health check
	api.HandleFunc("/health", r.healthHandler.Health).Methods(http.MethodGet)

	// Availability (public)
	api.HandleFunc("/doctors/{id}/availability", r.availabilityHandler.GetAvailability).Methods(http.MethodGet)
	api.HandleFunc("/doctors/{id}/availability/week", r.availabilityHandler.GetWeekAvailability).Methods(http.MethodGet)

	// Appointments (either party)
	appointments := api.PathPrefix("/appointments").Subrouter()
	appointments.Use(r.authMiddleware.Authenticate)
	appointments.Use(middleware.RequireDoctorOrPatient)
	appointments.Handle("", middleware.RequirePatient(http.HandlerFunc(r.appointmentHandler.Book))).Methods(http.MethodPost)
	appointments.HandleFunc("/{id}", r.appointmentHandler.GetAppointment).Methods(http.MethodGet)
	appointments.HandleFunc("/{id}/status", r.appointmentHandler.UpdateStatus).Methods(http.MethodPatch)
	appointments.HandleFunc("/{id}/cancel", r.appointmentHandler.Cancel).Methods(http.MethodPatch)
	appointments.Handle("/{id}/reschedule", middleware.RequirePatient(http.HandlerFunc(r.appointmentHandler.Reschedule))).Methods(http.MethodPatch)

	// Patient routes
	patient := api.PathPrefix("/patient").Subrouter()
	patient.Use(r.authMiddleware.Authenticate)
	patient.Use(middleware.RequirePatient)
	patient.HandleFunc("/appointments", r.appointmentHandler.ListPatientAppointments).Methods(http.MethodGet)
	patient.HandleFunc("/family-members", r.familyMemberHandler.ListFamilyMembers).Methods(http.MethodGet)
	patient.HandleFunc("/family-members", r.familyMemberHandler.CreateFamilyMember).Methods(http.MethodPost)
	patient.HandleFunc("/family-members/{id}", r.familyMemberHandler.DeleteFamilyMember).Methods(http.MethodDelete)

	// Doctor routes
	doctor := api.PathPrefix("/doctor").Subrouter()
	doctor.Use(r.authMiddleware.Authenticate)
	doctor.Use(middleware.RequireDoctor)
	doctor.HandleFunc("/appointments", r.appointmentHandler.ListDoctorAppointments).Methods(http.MethodGet)
	doctor.HandleFunc("/schedules", r.scheduleRuleHandler.ListSchedules).Methods(http.MethodGet)
	doctor.HandleFunc("/schedules", r.scheduleRuleHandler.CreateSchedule).Methods(http.MethodPost)
	doctor.HandleFunc("/schedules/{id}", r.scheduleRuleHandler.UpdateSchedule).Methods(http.MethodPut)
	doctor.HandleFunc("/schedules/{id}", r.scheduleRuleHandler.DeleteSchedule).Methods(http.MethodDelete)
	doctor.HandleFunc("/blocked-slots", r.blockedRangeHandler.ListBlockedSlots).Methods(http.MethodGet)
	doctor.HandleFunc("/blocked-slots", r.blockedRangeHandler.CreateBlockedSlot).Methods(http.MethodPost)
	doctor.HandleFunc("/blocked-slots/{id}", r.blockedRangeHandler.DeleteBlockedSlot).Methods(http.MethodDelete)

	// Add CORS and access log middleware
	r.router.Use(r.loggingMiddleware.Handle)
	r.router.Use(r.corsMiddleware.Handle)

	return r.router
}
