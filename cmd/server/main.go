package main

import (
	"context"
	"net/http"

	"github.com/mokobill/MedTrack/internal/api"
	"github.com/mokobill/MedTrack/internal/config"
	"github.com/mokobill/MedTrack/internal/database"
	"github.com/mokobill/MedTrack/internal/handler"
	"github.com/mokobill/MedTrack/internal/logger"
	"github.com/mokobill/MedTrack/internal/middleware"
	"github.com/mokobill/MedTrack/internal/notify"
	"github.com/mokobill/MedTrack/internal/store"
)

func main() {
	logger.Info("Démarrage du serveur MedTrack...")

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Configuration invalide: %v", err)
		return
	}

	// Connexion PostgreSQL (sessions, device tokens, journal d'accès)
	if _, err := database.ConnectPostgres(cfg); err != nil {
		logger.Error("Connexion PostgreSQL impossible: %v", err)
		return
	}
	defer database.DB.Close()

	if err := database.Migrate(context.Background()); err != nil {
		logger.Error("Migration PostgreSQL impossible: %v", err)
		return
	}
	logger.Success("PostgreSQL connecté et migré")

	// Stockage des états de suivi. Redis en temps normal, mémoire en
	// secours pour ne pas empêcher le serveur de démarrer.
	var appStore store.Store
	redisStore, err := store.NewRedisStore(store.RedisConfig{
		Addr:      cfg.RedisAddr,
		Password:  cfg.RedisPassword,
		DB:        cfg.RedisDB,
		Namespace: cfg.StorageNamespace,
	})
	if err != nil {
		logger.Warning("Redis indisponible (%v), repli sur le stockage mémoire", err)
		appStore = store.NewMemoryStore(cfg.StorageNamespace)
	} else {
		defer redisStore.Close()
		appStore = redisStore
		logger.Success("Redis connecté (%s)", cfg.RedisAddr)
	}

	notifier := notify.New(nil)
	handler.Init(appStore, notifier)

	router := api.SetupRouter()

	logger.Info("Serveur en écoute sur le port %s", cfg.Port)
	if err := http.ListenAndServe(":"+cfg.Port, middleware.CORSMiddleware(router)); err != nil {
		logger.Error("Serveur arrêté: %v", err)
	}
}
