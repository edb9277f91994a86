package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
	"solartech.app/field-service/pkg/api"
	"solartech.app/field-service/pkg/auth"
	"solartech.app/field-service/pkg/cache"
	"solartech.app/field-service/pkg/common"
	"solartech.app/field-service/pkg/db"
	"solartech.app/field-service/pkg/device"
	"solartech.app/field-service/pkg/fieldops"
	fsHttp "solartech.app/field-service/pkg/http"
	"solartech.app/field-service/pkg/reminder"
)

func main() {
	var err error

	err = godotenv.Load()
	if err != nil {
		log.Fatal("Error loading .env file, copy .env.example to .env first if in development")
	}

	var dbInstance *db.DB
	fsDbType := os.Getenv(common.EnvKeyFSDBType)
	switch fsDbType {
	case "file":
		dbInstance = db.GetInstance(db.UseSqliteDialector())
	case "memory":
		dbInstance = db.GetInstance(db.UseMemorySqliteDialector())
	default:
		log.Fatal("Unknown FS_DB_TYPE: " + fsDbType)
	}

	httpHostPort := strings.TrimSpace(os.Getenv(common.EnvKeyFSHttpHostPort))
	remoteAPIURL := strings.TrimSpace(os.Getenv(common.EnvKeyFSRemoteAPIURL))

	var defaultRate float64
	var defaultBurst int64

	if defaultRate, err = strconv.ParseFloat(os.Getenv(common.EnvKeyFSDefaultRate), 64); err != nil {
		log.Fatal("Invalid FS_DEFAULT_RATE, or not set in .env, should be a float64 value")
	}

	if defaultBurst, err = strconv.ParseInt(os.Getenv(common.EnvKeyFSDefaultBurst), 10, 64); err != nil {
		log.Fatal("Invalid FS_DEFAULT_BURST, or not set in .env, should be an int value")
	}

	logger := common.GetLogger()

	store := cache.NewSqliteStore(*dbInstance)
	engine := fieldops.NewEngine(store, fieldops.DefaultBaseline())
	if err := engine.Load(context.Background()); err != nil {
		log.Fatalf("failed to load persisted state: %v", err)
	}

	client := api.NewClient(remoteAPIURL)
	session := auth.NewSession(engine, client, store)
	engine.ConfirmDelete = client

	simulated := device.NewSimulated()
	scheduler := reminder.NewScheduler(engine, simulated)
	engine.Reminders = scheduler
	if err := scheduler.Start(); err != nil {
		log.Fatalf("failed to start reminder scheduler: %v", err)
	}
	defer scheduler.Stop()

	if httpHostPort == "" {
		// fallback to default http port
		httpHostPort = ":1080"
	}

	gateway := &fsHttp.Gateway{
		Server:           gin.Default(),
		Engine:           engine,
		Session:          session,
		RateLimiterStore: fieldops.NewRateLimiterStore(rate.Limit(defaultRate), int(defaultBurst)),
		Locator:          simulated,
		Camera:           simulated,
		Mailer:           simulated,
	}
	gateway.Setup()

	logger.Info("gateway created with:",
		zap.String("default_limiter",
			fmt.Sprintf("{\"default_rate\": %v, \"default_burst\": %v}", defaultRate, defaultBurst)),
		zap.String("remote_api_url", remoteAPIURL))

	logger.Info("Starting HTTP server on: " + httpHostPort)
	if err := gateway.Server.Run(httpHostPort); err != nil {
		log.Fatalf("http server failed to serve: %v", err)
	}
}
