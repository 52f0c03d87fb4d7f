package main

import (
	"log"
	"net/http"
	"os"
	"time"

	"soiladvisor/database"
	"soiladvisor/internal/cache"
	"soiladvisor/internal/config"
	"soiladvisor/internal/controllers"
	"soiladvisor/internal/ml"
	"soiladvisor/internal/registry"
	"soiladvisor/internal/repository"
	"soiladvisor/routes"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/sessions"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: No .env file found: %v", err)
	}
	cfg := config.Load()

	for _, dir := range []string{cfg.UploadDir, cfg.ImgDir} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			log.Fatalf("Failed to create directory %s: %v", dir, err)
		}
	}

	database.ConnectDatabase(cfg.DBPath)
	if err := database.MigrateDatabase(); err != nil {
		log.Fatalf("Failed to run database migrations: %v", err)
	}

	userRepo := repository.NewUserRepository(database.DB)

	reg := registry.New(cfg.ModelDir)
	predictor := ml.NewService(reg)
	if err := predictor.Warm(); err != nil {
		log.Printf("Warning: model artifacts not ready: %v", err)
		log.Println("The application will start, but predictions will fail until artifacts are available")
	} else {
		log.Println("Model artifacts loaded successfully")
	}

	var resultStore cache.ResultStore
	if cfg.RedisURL != "" {
		redisStore, err := cache.NewRedisStore(cfg.RedisURL)
		if err != nil {
			log.Fatalf("Failed to connect to Redis: %v", err)
		}
		defer redisStore.Close()
		resultStore = redisStore
		log.Println("Using redis result store")
	} else {
		resultStore = cache.NewMemoryStore()
		log.Println("Using in-memory result store")
	}

	store := sessions.NewCookieStore([]byte(cfg.SessionSecret))
	store.Options.HttpOnly = true

	authController := controllers.NewAuthController(userRepo, store)
	dashboardController := controllers.NewDashboardController(predictor, resultStore, store, controllers.DashboardConfig{
		UploadDir: cfg.UploadDir,
		ImgDir:    cfg.ImgDir,
		ResultTTL: cfg.ResultTTL,
	})
	resultsController := controllers.NewResultsController(resultStore, store, cfg.UploadDir)

	gin.SetMode(gin.ReleaseMode)
	router := gin.Default()
	router.LoadHTMLGlob("templates/*.html")
	router.Static("/static/img", cfg.ImgDir)
	router.Static("/static/css", "static/css")

	routes.RegisterAuthRoutes(router, authController)
	routes.RegisterDashboardRoutes(router, store, dashboardController, resultsController)

	server := &http.Server{
		Addr:           ":" + cfg.Port,
		Handler:        router,
		ReadTimeout:    30 * time.Second,
		WriteTimeout:   30 * time.Second,
		IdleTimeout:    60 * time.Second,
		MaxHeaderBytes: 1 << 20,
	}

	log.Printf("Server starting on port %s", cfg.Port)
	if err := server.ListenAndServe(); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
