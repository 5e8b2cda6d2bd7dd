package http

import (
	"context"
	"database/sql"
	"net/http"
	"time"

	httpSwagger "github.com/swaggo/http-swagger"

	"eventhub/internal/delivery/http/controllers"
	"eventhub/internal/delivery/http/helpers"
)

// NewRouter initializes the HTTP router with all application routes.
func NewRouter(
	eventController *controllers.EventController,
	participantController *controllers.ParticipantController,
	enrollmentController *controllers.EnrollmentController,
	db *sql.DB,
) *http.ServeMux {
	mux := http.NewServeMux()

	// Events
	mux.HandleFunc("POST /events", eventController.Create)
	mux.HandleFunc("GET /events", eventController.List)
	mux.HandleFunc("GET /events/{eventID}", eventController.Get)
	mux.HandleFunc("PUT /events/{eventID}", eventController.Update)
	mux.HandleFunc("DELETE /events/{eventID}", eventController.Delete)

	// Enrollment relation
	mux.HandleFunc("GET /events/{eventID}/participants", enrollmentController.ListEventParticipants)
	mux.HandleFunc("POST /events/{eventID}/participants", enrollmentController.Enroll)
	mux.HandleFunc("DELETE /events/{eventID}/participants/{participantID}", enrollmentController.Unenroll)
	mux.HandleFunc("GET /participants/{participantID}/events", enrollmentController.ListParticipantEvents)

	// Participants. The check-email literal takes precedence over the
	// {participantID} wildcard in the ServeMux.
	mux.HandleFunc("POST /participants", participantController.Create)
	mux.HandleFunc("GET /participants", participantController.List)
	mux.HandleFunc("GET /participants/check-email", participantController.CheckEmail)
	mux.HandleFunc("GET /participants/{participantID}", participantController.Get)
	mux.HandleFunc("PUT /participants/{participantID}", participantController.Update)
	mux.HandleFunc("DELETE /participants/{participantID}", participantController.Delete)

	// Liveness
	mux.HandleFunc("GET /healthz", healthHandler(db))

	// Swagger
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	return mux
}

// healthHandler reports liveness, including a short DB ping.
func healthHandler(db *sql.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()
		if err := db.PingContext(ctx); err != nil {
			helpers.WriteJSONError(w, http.StatusServiceUnavailable, helpers.ErrCodeInternalError, "database unreachable")
			return
		}
		helpers.WriteJSONSuccess(w, http.StatusOK, map[string]string{"status": "ok"})
	}
}
