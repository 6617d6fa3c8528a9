package main

import (
	"context"
	"log"

	"github.com/Zerogne/Haneducation-sub000/internal/config"
	"github.com/Zerogne/Haneducation-sub000/internal/db"
	"github.com/Zerogne/Haneducation-sub000/internal/handler"
	"github.com/Zerogne/Haneducation-sub000/internal/logger"
	"github.com/Zerogne/Haneducation-sub000/internal/router"
	"github.com/Zerogne/Haneducation-sub000/internal/storage"
	"github.com/Zerogne/Haneducation-sub000/internal/store"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	cfg := config.Load()
	gin.SetMode(cfg.GinMode)

	zlog, err := logger.New(cfg.GinMode)
	if err != nil {
		log.Fatalf("failed to initialize logger: %v", err)
	}
	defer zlog.Sync()

	ctx := context.Background()
	if err := db.Init(ctx, cfg.MongoURI, cfg.MongoDB); err != nil {
		zlog.Fatal("failed to connect to database", zap.Error(err))
	}
	defer db.Close(ctx)

	if err := db.EnsureIndexes(ctx, db.Database); err != nil {
		zlog.Fatal("failed to create indexes", zap.Error(err))
	}

	// Object storage is optional in development; uploads answer 503 until
	// the S3 variables are set.
	var uploader storage.Uploader
	if cfg.S3Endpoint != "" {
		minioUploader, err := storage.NewMinio(storage.MinioConfig{
			Endpoint:   cfg.S3Endpoint,
			AccessKey:  cfg.S3AccessKey,
			SecretKey:  cfg.S3SecretKey,
			Bucket:     cfg.S3Bucket,
			UseSSL:     cfg.S3UseSSL,
			PublicBase: cfg.S3PublicBase,
		})
		if err != nil {
			zlog.Fatal("failed to initialize object storage", zap.Error(err))
		}
		uploader = minioUploader
	} else {
		zlog.Warn("object storage not configured, image uploads disabled")
	}

	api := handler.NewAPI(store.NewMongo(db.Database), uploader, cfg.StorageQuotaMB, zlog)
	if err := api.Users().EnsureAdmin(ctx, cfg.AdminUsername, cfg.AdminPassword); err != nil {
		zlog.Fatal("failed to bootstrap admin user", zap.Error(err))
	}

	r := router.New(api, cfg.SessionSecret)
	zlog.Info("server listening", zap.String("addr", cfg.ListenAddr))
	if err := r.Run(cfg.ListenAddr); err != nil {
		zlog.Fatal("server stopped", zap.Error(err))
	}
}
