package api

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"prontuario/internal/api/handler"
	"prontuario/internal/api/middleware"
	"prontuario/internal/dependencies/clock"
	"prontuario/internal/services/auth"
	"prontuario/internal/services/records"
	"prontuario/internal/services/users"
)

// RouterConfig holds configuration for the API router
type RouterConfig struct {
	Logger        *slog.Logger
	AuthService   *auth.Service
	RecordService *records.Service
	UserService   *users.Service
	Clock         clock.Clock
}

// NewRouter creates a new API router with all routes configured
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()

	// Create handlers
	authHandler := handler.NewAuthHandler(cfg.AuthService)
	recordHandler := handler.NewRecordHandler(cfg.RecordService, cfg.Clock)
	userHandler := handler.NewUserHandler(cfg.UserService)

	// Create middleware
	authMiddleware := middleware.Auth(cfg.AuthService)
	adminMiddleware := middleware.AdminOnly()
	loggingMiddleware := middleware.Logging(cfg.Logger)
	recoveryMiddleware := middleware.Recovery(cfg.Logger)

	// API subrouter with common middleware
	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(recoveryMiddleware)
	api.Use(loggingMiddleware)

	// Auth routes (login requires no session)
	api.HandleFunc("/auth/login", authHandler.Login).Methods(http.MethodPost)

	authProtected := api.PathPrefix("/auth").Subrouter()
	authProtected.Use(authMiddleware)
	authProtected.HandleFunc("/logout", authHandler.Logout).Methods(http.MethodPost)
	authProtected.HandleFunc("/me", authHandler.Me).Methods(http.MethodGet)

	// Record routes (all require auth)
	recordRoutes := api.PathPrefix("/records").Subrouter()
	recordRoutes.Use(authMiddleware)
	recordRoutes.HandleFunc("", recordHandler.List).Methods(http.MethodGet)
	recordRoutes.HandleFunc("", recordHandler.Create).Methods(http.MethodPost)
	recordRoutes.HandleFunc("/{id}", recordHandler.Get).Methods(http.MethodGet)
	recordRoutes.HandleFunc("/{id}", recordHandler.Delete).Methods(http.MethodDelete)
	recordRoutes.HandleFunc("/{id}/evolutions", recordHandler.AddNote).Methods(http.MethodPost)

	// User management routes (auth + admin)
	userRoutes := api.PathPrefix("/users").Subrouter()
	userRoutes.Use(authMiddleware)
	userRoutes.Use(adminMiddleware)
	userRoutes.HandleFunc("", userHandler.List).Methods(http.MethodGet)
	userRoutes.HandleFunc("", userHandler.Add).Methods(http.MethodPost)

	// Health check endpoint (no auth)
	api.HandleFunc("/health", healthHandler).Methods(http.MethodGet)

	return r
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}
