package main

import (
	"log"
	"os"

	"github.com/KarlovS28/uchettest/internal/api/routes"
	"github.com/KarlovS28/uchettest/internal/auth"
	"github.com/KarlovS28/uchettest/internal/config"
	"github.com/KarlovS28/uchettest/internal/database"
	"github.com/KarlovS28/uchettest/internal/files"
	"github.com/KarlovS28/uchettest/internal/storage"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

func main() {
	// Load environment variables from .env file in development
	if err := godotenv.Load(); err != nil {
		logrus.Info("No .env file found, using system environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

	setupLogging(cfg.LogLevel)
	logger := logrus.StandardLogger()

	var (
		store        storage.Storage
		db           *gorm.DB
		sessionStore sessions.Store
	)
	switch cfg.StorageDriver {
	case config.StorageDriverMemory:
		store = storage.NewMemory()
		sessionStore = auth.NewMemorySessionStore(cfg)
		logger.Warn("Running on the in-memory storage driver, data will not survive a restart")
	default:
		db, err = database.Initialize(cfg.DatabaseURL, nil)
		if err != nil {
			logrus.Fatal("Failed to initialize database:", err)
		}
		if err := database.Migrate(db); err != nil {
			logrus.Fatal("Failed to run migrations:", err)
		}
		store = storage.NewGorm(db)
		sessionStore = auth.NewSessionStore(cfg, db)
	}

	fileStore, err := files.NewStore(cfg.UploadDir)
	if err != nil {
		logrus.Fatal("Failed to prepare upload directory:", err)
	}

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := routes.SetupRoutes(routes.Dependencies{
		Store:        store,
		DB:           db,
		SessionStore: sessionStore,
		FileStore:    fileStore,
		Config:       cfg,
		Log:          logger,
	})

	logrus.Infof("Starting server on port %s", cfg.Port)
	if err := router.Run(":" + cfg.Port); err != nil {
		logrus.Fatal("Failed to start server:", err)
	}
}

func setupLogging(level string) {
	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetOutput(os.Stdout)

	switch level {
	case "debug":
		logrus.SetLevel(logrus.DebugLevel)
	case "warn":
		logrus.SetLevel(logrus.WarnLevel)
	case "error":
		logrus.SetLevel(logrus.ErrorLevel)
	default:
		logrus.SetLevel(logrus.InfoLevel)
	}
}
