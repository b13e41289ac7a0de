package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/HostMaster/notification-renderer/internal/handler"
	"github.com/HostMaster/notification-renderer/internal/rabbitmq"
	"github.com/HostMaster/notification-renderer/internal/render"
	"github.com/HostMaster/notification-renderer/internal/service"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

func main() {
	ctx := context.Background()

	if err := loadEnv(); err != nil {
		log.Fatalf("failed to load environment variables: %s", err.Error())
	}

	if err := initConfig(); err != nil {
		log.Fatalf("failed to initialize config: %s", err.Error())
	}

	logger, err := newLogger()
	if err != nil {
		log.Fatalf("failed to create zap logger: %s", err.Error())
	}

	rabbitmq, err := rabbitmq.New(os.Getenv("RABBITMQ_CONN_STRING"))
	if err != nil {
		log.Fatalf("failed to connect to rabbitmq: %s", err.Error())
	}

	rdb := redis.NewClient(&redis.Options{
		Addr: os.Getenv("REDIS_ADDR"),
	})
	pong, err := rdb.Ping(ctx).Result()
	if err != nil {
		panic("failed to ping redis: " + err.Error())
	}
	log.Printf("Successfully connected to Redis: %s\n", pong)

	renderer, err := render.New()
	if err != nil {
		log.Fatalf("failed to parse templates: %s", err.Error())
	}

	services := service.New(logger, renderer, rdb, rabbitmq)
	handlers := handler.New(services)

	go services.Render.StartProcessingRenderRequests(ctx)

	go services.Render.StartJobs()

	go http.ListenAndServe(viper.GetString("app.port"), handlers.SetupRoutes())

	log.Println("Notification renderer started")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGTERM, syscall.SIGINT)
	<-quit

	log.Println("Notification renderer shutting down")
}

func loadEnv() error {
	return godotenv.Load(".env")
}

func initConfig() error {
	viper.AddConfigPath(".")
	viper.SetConfigType("yaml")
	viper.SetConfigName("app")
	return viper.ReadInConfig()
}

func newLogger() (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	cfg.OutputPaths = []string{
		"./app.log",
	}
	return cfg.Build()
}
