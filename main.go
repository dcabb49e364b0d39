package main

import (
	"log/slog"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	"github.com/joho/godotenv"
	"github.com/society-rp/staff-portal/idp/discord"
	"github.com/society-rp/staff-portal/shared/utils"
	v1 "github.com/society-rp/staff-portal/v1"
	"github.com/society-rp/staff-portal/v1/handlers"
	"github.com/society-rp/staff-portal/v1/middleware"
	"github.com/society-rp/staff-portal/v1/session"
)

func main() {
	// Load .env file if it exists (optional - fails silently if not found)
	_ = godotenv.Load()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{AddSource: true}))
	slog.SetDefault(logger)

	slog.Info("Starting staff portal initialization")

	dbConfig := v1.NewDatabaseConfig()
	gormDB, err := v1.ConnectGormDB(dbConfig)
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}

	sessions, err := session.NewStore(session.NewConfigFromEnv())
	if err != nil {
		slog.Error("Failed to connect to session store", "error", err)
		os.Exit(1)
	}
	defer sessions.Close()

	stateSecret := os.Getenv("SESSION_SECRET")
	if stateSecret == "" {
		slog.Error("SESSION_SECRET environment variable is required")
		os.Exit(1)
	}

	idpClient := discord.NewClientFromEnv()
	if idpClient.OAuthConfig.ClientID == "" || idpClient.OAuthConfig.ClientSecret == "" {
		slog.Error("DISCORD_CLIENT_ID and DISCORD_CLIENT_SECRET environment variables are required")
		os.Exit(1)
	}

	handler := handlers.NewV1Handler(gormDB, sessions, idpClient, discord.NewStateSigner([]byte(stateSecret)))

	metrics := middleware.NewMetrics()
	sessionAuth := middleware.NewSessionAuth(sessions)

	router := chi.NewRouter()
	router.Use(utils.PanicRecoveryMiddleware)
	router.Use(metrics.Instrument)
	router.Use(sessionAuth.ResolveSession)
	router.Handle("/metrics", metrics.Handler())
	router.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		utils.RespondWithJSON(w, http.StatusOK, map[string]string{"status": "healthy", "service": "staff-portal"})
	})
	handler.SetupRoutes(router)

	server := utils.CreateServer(utils.DefaultServerConfig(), router)
	if err := utils.StartServerWithGracefulShutdown(server, "staff-portal"); err != nil {
		os.Exit(1)
	}
}
