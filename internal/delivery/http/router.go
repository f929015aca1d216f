package http

import (
	"net/http"

	"doctor-directory/internal/delivery/http/handler"
	"doctor-directory/internal/delivery/http/middleware"

	"github.com/gorilla/mux"
)

type Router struct {
	router            *mux.Router
	doctorHandler     *handler.DoctorHandler
	corsMiddleware    *middleware.CORSMiddleware
	loggingMiddleware *middleware.LoggingMiddleware
}

func NewRouter(
	doctorHandler *handler.DoctorHandler,
	corsMiddleware *middleware.CORSMiddleware,
	loggingMiddleware *middleware.LoggingMiddleware,
) *Router {
	return &Router{
		router:            mux.NewRouter(),
		doctorHandler:     doctorHandler,
		corsMiddleware:    corsMiddleware,
		loggingMiddleware: loggingMiddleware,
	}
}

func (r *Router) Setup() *mux.Router {
	// API versioning
	api := r.router.PathPrefix("/api/v1").Subrouter()

	// Health check
	api.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)

	// Directory routes (public, read-only)
	api.HandleFunc("/doctors", r.doctorHandler.GetDoctors).Methods(http.MethodGet, http.MethodOptions)
	api.HandleFunc("/doctors/suggestions", r.doctorHandler.SuggestDoctors).Methods(http.MethodGet, http.MethodOptions)
	api.HandleFunc("/specialties", r.doctorHandler.GetSpecialties).Methods(http.MethodGet, http.MethodOptions)

	r.router.Use(r.loggingMiddleware.Handle)
	r.router.Use(r.corsMiddleware.Handle)

	return r.router
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok"}`))
}
