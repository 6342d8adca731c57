package main

import (
	"log"
	"net/http"
	"os"

	"rentacar/internal/api"
	"rentacar/internal/auth"
	"rentacar/internal/metrics"
	"rentacar/internal/repository"
	"rentacar/internal/service"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	godotenv.Load()

	bookingsFile := os.Getenv("BOOKINGS_FILE")
	if bookingsFile == "" {
		bookingsFile = "bookings.json"
	}
	staffEmail := os.Getenv("STAFF_EMAIL")
	if staffEmail == "" {
		log.Println("STAFF_EMAIL not set, staff notices will fail until it is configured")
	}

	repo := repository.NewBookingRepository(bookingsFile)
	sender := service.NewSenderService(service.SendGridSender{}, service.TwilioSender{}, staffEmail)
	svc := service.NewBookingService(repo, sender)

	bookingHandler := api.NewBookingHandler(svc)
	adminHandler := api.NewAdminHandler(svc)
	adminAuthHandler := api.NewAdminAuthHandler(service.NewAdminAuthService())

	metrics.Register()

	r := mux.NewRouter()
	r.Use(metricsMiddleware)

	// Public endpoints
	r.HandleFunc("/api/check-availability", bookingHandler.CheckAvailability).Methods("POST")
	r.HandleFunc("/api/book", bookingHandler.CreateBooking).Methods("POST")
	r.HandleFunc("/api/bookings", bookingHandler.ListBookings).Methods("GET")
	r.HandleFunc("/api/bookings/{id}", bookingHandler.UpdateBookingStatus).Methods("PATCH")
	r.HandleFunc("/api/bookings/{id}/accept", bookingHandler.AcceptBooking).Methods("POST")
	r.HandleFunc("/api/bookings/{id}", bookingHandler.DeleteBooking).Methods("DELETE")

	r.Handle("/metrics", promhttp.Handler()).Methods("GET")
	r.HandleFunc("/admin/login", adminAuthHandler.Login).Methods("POST")

	// Admin endpoints (protected)
	admin := r.PathPrefix("/admin").Subrouter()
	admin.Use(auth.AdminAuthMiddleware)
	admin.HandleFunc("/bookings", adminHandler.ListBookings).Methods("GET")
	admin.HandleFunc("/bookings/{id}", adminHandler.UpdateBookingStatus).Methods("PUT")
	admin.HandleFunc("/bookings/{id}", adminHandler.DeleteBooking).Methods("DELETE")

	cors := handlers.CORS(
		handlers.AllowedOrigins([]string{"*"}),
		handlers.AllowedMethods([]string{"GET", "POST", "PATCH", "PUT", "DELETE", "OPTIONS"}),
		handlers.AllowedHeaders([]string{"Content-Type", "Authorization"}),
	)

	port := os.Getenv("PORT")
	if port == "" {
		port = "3001"
	}
	log.Printf("Server running on port %s", port)
	log.Fatal(http.ListenAndServe(":"+port, cors(r)))
}

func metricsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if route := mux.CurrentRoute(r); route != nil {
			if tmpl, err := route.GetPathTemplate(); err == nil {
				metrics.IncHTTP(tmpl)
			}
		}
		next.ServeHTTP(w, r)
	})
}
