package handler

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Handlers groups the route handlers. Inquiries and Vehicles are optional.
type Handlers struct {
	Health      *HealthHandler
	VehicleInfo *VehicleInfoHandler
	Inquiries   *InquiryHandler
	Vehicles    *VehicleHandler
}

// NewRouter builds the HTTP routes and middleware stack
func NewRouter(h Handlers) http.Handler {
	r := chi.NewRouter()

	// Middlewares
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))
	r.Use(CORS)

	r.Get("/health", h.Health.Check)

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/vehicle-info", h.VehicleInfo.Get)

		if h.Inquiries != nil {
			r.Post("/inquiries", h.Inquiries.Create)
		}

		if h.Vehicles != nil {
			r.Get("/vehicles", h.Vehicles.List)
			r.Post("/vehicles", h.Vehicles.Save)
			r.Get("/vehicles/{stock}", h.Vehicles.Get)
			r.Get("/vehicles/{stock}/inquiries", h.Vehicles.Inquiries)
		}
	})

	return r
}
