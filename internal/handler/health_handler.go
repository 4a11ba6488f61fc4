package handlers

import (
	"net/http"

	"socialmedia/internal/database"
)

// HealthHandler reports whether the database connection is alive.
func HealthHandler(db *database.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := db.HealthCheck(); err != nil {
			WriteError(w, "Database unavailable", http.StatusServiceUnavailable)
			return
		}

		WriteJSON(w, map[string]string{"status": "ok"}, http.StatusOK)
	}
}
