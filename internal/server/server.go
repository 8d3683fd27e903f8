package server

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	_ "github.com/joho/godotenv/autoload"
	"github.com/redis/go-redis/v9"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"

	"melodybase/internal/config"
	"melodybase/internal/database"
	"melodybase/internal/handlers"
	"melodybase/internal/middlewares"
	"melodybase/internal/repositories"
	"melodybase/internal/routes"
	"melodybase/internal/services"
	"melodybase/internal/workbench"
)

// NewServer connects every backing store, runs migrations and seeds, wires
// the dependency graph and returns the configured HTTP server. Startup
// failures are fatal; there is nothing to serve without the catalog.
func NewServer() *http.Server {
	port, _ := strconv.Atoi(os.Getenv("PORT"))
	if port == 0 {
		port = 8080
	}

	pool, err := database.Connect()
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	if err := database.RunMigrations(pool); err != nil {
		log.Fatalf("failed to run migrations: %v", err)
	}
	if err := database.RunSeeds(pool); err != nil {
		log.Fatalf("failed to seed database: %v", err)
	}

	dsn, err := database.DSN()
	if err != nil {
		log.Fatalf("failed to build database DSN: %v", err)
	}

	// The workbench runner pins single connections for its scratch
	// schemas, which wants a database/sql handle rather than the pool.
	sqlDB, err := sql.Open("postgres", dsn)
	if err != nil {
		log.Fatalf("failed to open workbench connection: %v", err)
	}

	gormDB, err := gorm.Open(gormpostgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("failed to connect to database via gorm: %v", err)
	}

	rdb := redis.NewClient(&redis.Options{
		Addr: fmt.Sprintf("%s:%s", os.Getenv("REDIS_HOST"), os.Getenv("REDIS_PORT")),
	})

	// Test Redis connection and fail fast with a clear message
	{
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := rdb.Ping(ctx).Err(); err != nil {
			log.Fatalf("failed to connect to Redis at %s:%s: %v", os.Getenv("REDIS_HOST"), os.Getenv("REDIS_PORT"), err)
		}
		log.Println("Connected to Redis successfully")
	}

	// Dependency injection
	countryRepo := repositories.NewCountryRepository(pool)
	performerRepo := repositories.NewPerformerRepository(pool)
	songRepo := repositories.NewSongRepository(pool)
	albumRepo := repositories.NewAlbumRepository(pool)
	performanceRepo := repositories.NewPerformanceRepository(pool)
	recordingRepo := repositories.NewRecordingRepository(pool)
	promotionRepo := repositories.NewPromotionRepository(pool)
	userRepo := repositories.NewUserRepository(pool)
	schemaRepo := repositories.NewSchemaRepository(pool)
	redisRepo := repositories.NewRedisRepository(rdb)
	runRepo := repositories.NewWorkbenchRunRepository(gormDB)

	authService := services.NewAuthService(userRepo, redisRepo)
	googleAuthService := services.NewGoogleAuthService(userRepo, redisRepo)
	performerService := services.NewPerformerService(performerRepo, countryRepo, songRepo, albumRepo, promotionRepo)
	songService := services.NewSongService(songRepo)
	albumService := services.NewAlbumService(albumRepo, performerRepo)
	performanceService := services.NewPerformanceService(performanceRepo, performerRepo, songRepo)
	recordingService := services.NewRecordingService(recordingRepo, songRepo)
	schemaService := services.NewSchemaService(schemaRepo, redisRepo)
	verifyService := services.NewVerifyService(pool, schemaRepo, redisRepo)
	workbenchService := services.NewWorkbenchService(workbench.NewRunner(sqlDB), runRepo)

	h := routes.Handlers{
		Auth:         handlers.NewAuthHandler(authService),
		GoogleAuth:   handlers.NewGoogleAuthHandler(googleAuthService, config.OAuthConfig()),
		Performers:   handlers.NewPerformerHandler(performerService),
		Songs:        handlers.NewSongHandler(songService),
		Albums:       handlers.NewAlbumHandler(albumService),
		Performances: handlers.NewPerformanceHandler(performanceService),
		Recordings:   handlers.NewRecordingHandler(recordingService),
		Schema:       handlers.NewSchemaHandler(schemaService, verifyService),
		Workbench:    handlers.NewWorkbenchHandler(workbenchService),
	}

	router := gin.Default()
	router.Use(cors.New(corsConfig()))

	routes.RegisterRoutes(router, h,
		middlewares.Authenticate(redisRepo),
		middlewares.RequireAdmin(userRepo))

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", port),
		Handler:      router,
		IdleTimeout:  time.Minute,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	return server
}

func corsConfig() cors.Config {
	origins := []string{"http://localhost:5173"}
	if env := os.Getenv("CORS_ALLOWED_ORIGINS"); env != "" {
		origins = strings.Split(env, ",")
	}

	cfg := cors.DefaultConfig()
	cfg.AllowOrigins = origins
	cfg.AllowHeaders = append(cfg.AllowHeaders, "Authorization")
	cfg.AllowCredentials = true
	return cfg
}
