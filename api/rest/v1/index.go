package v1

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/rs/cors"

	"github.com/adelgado/libreta/pkg/controllers"
)

// Handler wires the REST routes to the controller and optionally wraps them
// with CORS when origins are configured.
func Handler(
	ctx context.Context,
	log *slog.Logger,
	c *controllers.Controller,
	origins []string,
) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("POST /login", c.HandleLogin)
	mux.HandleFunc("POST /logout", c.HandleLogout)
	mux.HandleFunc("GET /me", c.HandleMe)

	mux.HandleFunc("GET /contacts", c.HandleListContacts)
	mux.HandleFunc("POST /contacts", c.HandleCreateContact)
	mux.HandleFunc("GET /contacts/{id}", c.HandleGetContact)
	mux.HandleFunc("PUT /contacts/{id}", c.HandleUpdateContact)
	mux.HandleFunc("DELETE /contacts/{id}", c.HandleDeleteContact)

	if len(origins) <= 0 {
		return mux
	}

	return cors.New(cors.Options{
		AllowedOrigins:   origins,
		AllowCredentials: true,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodDelete, http.MethodPut},
		AllowedHeaders:   []string{"authorization", "content-type"},
		Debug:            log.Enabled(ctx, slog.LevelDebug),
		Logger:           slog.NewLogLogger(log.Handler(), slog.LevelDebug),
	}).Handler(mux)
}
