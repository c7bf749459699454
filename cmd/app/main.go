package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"strconv"
	"time"

	"marketplace/cmd"
	apihttp "marketplace/internal/adapters/in/http"
	"marketplace/internal/adapters/out/blob"
	"marketplace/internal/adapters/out/postgres/orderrepo"
	"marketplace/internal/adapters/out/postgres/userrepo"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()

	gormDB := mustConnectDB(configs)
	blobStore := mustConnectBlobStore(configs)

	root := cmd.NewCompositionRoot(gormDB, blobStore)
	startWebServer(&root, configs)
}

func getConfigs() cmd.Config {
	if err := godotenv.Load(".env"); err != nil {
		log.Warnf("no .env file loaded: %v", err)
	}

	return cmd.Config{
		HTTPPort:   envOrDefault("HTTP_PORT", "8080"),
		DBHost:     os.Getenv("DB_HOST"),
		DBPort:     envOrDefault("DB_PORT", "5432"),
		DBUser:     os.Getenv("DB_USER"),
		DBPassword: os.Getenv("DB_PASSWORD"),
		DBName:     os.Getenv("DB_NAME"),
		DBSslMode:  envOrDefault("DB_SSLMODE", "disable"),

		JWTSecret:        os.Getenv("JWT_SECRET"),
		JWTExpiryMinutes: envIntOrDefault("JWT_EXPIRY_MINUTES", 60),

		MinioEndpoint:      os.Getenv("MINIO_ENDPOINT"),
		MinioAccessKey:     os.Getenv("MINIO_ACCESS_KEY"),
		MinioSecretKey:     os.Getenv("MINIO_SECRET_KEY"),
		MinioBucket:        envOrDefault("MINIO_BUCKET", "profile-images"),
		MinioUseSSL:        os.Getenv("MINIO_USE_SSL") == "true",
		MinioPublicBaseURL: os.Getenv("MINIO_PUBLIC_BASE_URL"),
	}
}

func envOrDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func envIntOrDefault(key string, fallback int) int {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		log.Fatalf("%s must be an integer: %v", key, err)
	}
	return value
}

func mustConnectDB(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser,
		configs.DBPassword, configs.DBName, configs.DBSslMode,
	)

	gormDB, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("connect to database: %v", err)
	}

	if err = gormDB.AutoMigrate(&orderrepo.OrderDTO{}, &userrepo.UserDTO{}); err != nil {
		log.Fatalf("migrate schema: %v", err)
	}
	return gormDB
}

func mustConnectBlobStore(configs cmd.Config) *blob.MinioBlobStore {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	blobStore, err := blob.NewMinioBlobStore(ctx, blob.Config{
		Endpoint:      configs.MinioEndpoint,
		AccessKey:     configs.MinioAccessKey,
		SecretKey:     configs.MinioSecretKey,
		Bucket:        configs.MinioBucket,
		UseSSL:        configs.MinioUseSSL,
		PublicBaseURL: configs.MinioPublicBaseURL,
	}, logger)
	if err != nil {
		log.Fatalf("connect to blob store: %v", err)
	}
	return blobStore
}

func startWebServer(root *cmd.CompositionRoot, configs cmd.Config) {
	e := echo.New()
	e.Use(middleware.Recover())
	e.Use(middleware.Logger())

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})

	tokens := apihttp.NewTokenService(
		configs.JWTSecret,
		time.Duration(configs.JWTExpiryMinutes)*time.Minute,
	)

	server := apihttp.NewServer(
		tokens,
		root.CreateRegisterUserCommandHandler(),
		root.CreateCreateOrderCommandHandler(),
		root.CreateUpdateOrderDetailsCommandHandler(),
		root.CreateCancelOrderCommandHandler(),
		root.CreateAssignDriverCommandHandler(),
		root.CreateUpdateDeliveryStatusCommandHandler(),
		root.CreateOverrideOrderCommandHandler(),
		root.CreateSetProfileImageCommandHandler(),
		root.CreateRemoveProfileImageCommandHandler(),
		root.CreateReportPositionCommandHandler(),
		root.CreateAuthenticateUserQueryHandler(),
		root.CreateGetOrderQueryHandler(),
		root.CreateGetOrdersQueryHandler(),
		root.CreateGetAvailableOrdersQueryHandler(),
	)
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", configs.HTTPPort)))
}
