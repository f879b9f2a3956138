package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"time"

	"fixit/cmd"
	"fixit/internal/adapters/out/postgres"
	redisout "fixit/internal/adapters/out/redis"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	if err := godotenv.Load(".env"); err != nil {
		log.Warnf("No .env file loaded: %v", err)
	}

	configs := getConfigs()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: configs.LogLevel}))
	slog.SetDefault(logger)

	gormDB, err := gorm.Open(gormpostgres.Open(configs.DSN()), &gorm.Config{})
	if err != nil {
		log.Fatalf("Error connecting to database: %v", err)
	}
	if err = postgres.Migrate(gormDB); err != nil {
		log.Fatalf("Error migrating database: %v", err)
	}

	redisClient, err := redisout.NewClient(context.Background(), configs.RedisAddr, configs.RedisPassword, configs.RedisDB)
	if err != nil {
		log.Fatalf("Error connecting to redis: %v", err)
	}

	app := cmd.NewCompositionRoot(configs, gormDB, redisClient, logger)
	startWebServer(app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:            envOr("HTTP_PORT", "8080"),
		DBHost:              os.Getenv("DB_HOST"),
		DBPort:              envOr("DB_PORT", "5432"),
		DBUser:              os.Getenv("DB_USER"),
		DBPassword:          os.Getenv("DB_PASSWORD"),
		DBName:              os.Getenv("DB_NAME"),
		DBSslMode:           envOr("DB_SSLMODE", "disable"),
		RedisAddr:           envOr("REDIS_ADDR", "localhost:6379"),
		RedisPassword:       os.Getenv("REDIS_PASSWORD"),
		RedisDB:             intEnv("REDIS_DB", 0),
		JWTSecret:           os.Getenv("JWT_SECRET"),
		JWTTTL:              time.Duration(intEnv("JWT_TTL_MINUTES", 60)) * time.Minute,
		ResetTokenTTL:       time.Duration(intEnv("RESET_TOKEN_TTL_MINUTES", 60)) * time.Minute,
		FrontendURL:         os.Getenv("FRONTEND_URL"),
		LogLevel:            cmd.ParseLogLevel(os.Getenv("LOG_LEVEL")),
		PasswordHashingCost: intEnv("BCRYPT_COST", 0),
	}

	if config.JWTSecret == "" {
		log.Fatalf("JWT_SECRET must be set")
	}
	return config
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func intEnv(key string, fallback int) int {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		log.Fatalf("Error reading %s: %v", key, err)
	}
	return v
}

func startWebServer(app cmd.CompositionRoot, port string) {
	e := echo.New()
	e.HideBanner = true
	app.NewServer().Register(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
