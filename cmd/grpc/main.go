package main

import (
	"context"
	"log"
	"net"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	opnamev1 "github.com/fekuna/omnipos-opname-service/api/opname/v1"
	"github.com/fekuna/omnipos-opname-service/config"
	"github.com/fekuna/omnipos-opname-service/internal/broker"
	"github.com/fekuna/omnipos-opname-service/internal/cache"
	"github.com/fekuna/omnipos-opname-service/internal/clock"
	"github.com/fekuna/omnipos-opname-service/internal/database/postgres"
	"github.com/fekuna/omnipos-opname-service/internal/logger"
	"github.com/fekuna/omnipos-opname-service/internal/middleware"
	"github.com/fekuna/omnipos-opname-service/migrations"

	invH "github.com/fekuna/omnipos-opname-service/internal/inventory/handler"
	invRepoPkg "github.com/fekuna/omnipos-opname-service/internal/inventory/repository"
	invUCPkg "github.com/fekuna/omnipos-opname-service/internal/inventory/usecase"

	opnameH "github.com/fekuna/omnipos-opname-service/internal/opname/handler"
	opnameRepoPkg "github.com/fekuna/omnipos-opname-service/internal/opname/repository"
	opnameUCPkg "github.com/fekuna/omnipos-opname-service/internal/opname/usecase"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"
)

func main() {
	// 1. Load Configuration
	_ = godotenv.Load()
	cfg := config.LoadEnv()

	// 2. Initialize Logger
	logConfig := &logger.ZapLoggerConfig{
		IsDevelopment:     false,
		Encoding:          "json",
		Level:             "info",
		DisableCaller:     cfg.Logger.DisableCaller,
		DisableStacktrace: cfg.Logger.DisableStacktrace,
	}
	if cfg.Server.AppEnv == "development" || cfg.Server.AppEnv == "dev" {
		logConfig.IsDevelopment = true
		logConfig.Encoding = cfg.Logger.Encoding
		logConfig.Level = cfg.Logger.Level
	}

	appLogger := logger.NewZapLogger(logConfig)
	defer appLogger.Sync()

	// 3. Connect to Database
	db, err := postgres.NewPostgres(&postgres.Config{
		Host:            cfg.Postgres.Host,
		Port:            cfg.Postgres.Port,
		User:            cfg.Postgres.User,
		Password:        cfg.Postgres.Password,
		DBName:          cfg.Postgres.DBName,
		SSLMode:         cfg.Postgres.SSLMode,
		MaxOpenConns:    cfg.Postgres.MaxOpenConns,
		MaxIdleConns:    cfg.Postgres.MaxIdleConns,
		ConnMaxLifetime: time.Duration(cfg.Postgres.ConnMaxLifetime) * time.Second,
		ConnMaxIdleTime: time.Duration(cfg.Postgres.ConnMaxIdleTime) * time.Second,
	})
	if err != nil {
		appLogger.Fatal("Could not connect to database", zap.Error(err))
	}
	defer db.Close()
	appLogger.Info("Connected to PostgreSQL database", zap.String("db_name", cfg.Postgres.DBName))

	migrateCtx, cancelMigrate := context.WithTimeout(context.Background(), time.Minute)
	if err := migrations.Apply(migrateCtx, db); err != nil {
		cancelMigrate()
		appLogger.Fatal("Could not apply migrations", zap.Error(err))
	}
	cancelMigrate()

	// 4. Initialize Repositories
	invRepo := invRepoPkg.NewPGRepository(db)
	opnameRepo := opnameRepoPkg.NewPGRepository(db)

	ucOpts := []opnameUCPkg.Option{
		opnameUCPkg.WithChunkSize(cfg.Opname.SnapshotChunkSize),
		opnameUCPkg.WithPageSize(cfg.Opname.DefaultPageSize, cfg.Opname.MaxPageSize),
	}

	// 5. Initialize Redis (finalize lock + stats cache)
	if cfg.Redis.Enabled {
		redisClient, err := cache.NewRedisClient(&cache.Config{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err != nil {
			appLogger.Warn("Could not connect to Redis, running without lock and stats cache", zap.Error(err))
		} else {
			defer redisClient.Close()
			appLogger.Info("Connected to Redis", zap.String("addr", cfg.Redis.Addr))
			ucOpts = append(ucOpts,
				opnameUCPkg.WithLocker(redisClient, cfg.Opname.FinalizeLockTTL),
				opnameUCPkg.WithStatsCache(redisClient, cfg.Opname.StatsCacheTTL),
			)
		}
	}

	// 6. Initialize Kafka Producer
	if cfg.Kafka.Enabled {
		producer := broker.NewProducer(&broker.Config{
			Brokers: cfg.Kafka.Brokers,
			Topic:   cfg.Kafka.Topic,
		})
		defer producer.Close()
		appLogger.Info("Kafka producer ready", zap.Strings("brokers", cfg.Kafka.Brokers), zap.String("topic", cfg.Kafka.Topic))
		ucOpts = append(ucOpts, opnameUCPkg.WithPublisher(producer))
	}

	// 7. Initialize UseCases and Handlers
	opnameUC := opnameUCPkg.NewOpnameUseCase(opnameRepo, invRepo, clock.NewSystem(), appLogger, ucOpts...)
	opnameHandler := opnameH.NewOpnameHandler(opnameUC, appLogger)
	invUC := invUCPkg.NewInventoryUseCase(invRepo, appLogger, cfg.Opname.DefaultPageSize, cfg.Opname.MaxPageSize)
	invHandler := invH.NewInventoryHandler(invUC, appLogger)

	// 8. Start gRPC Server
	port := cfg.Server.GRPCPort
	if !strings.HasPrefix(port, ":") {
		port = ":" + port
	}

	lis, err := net.Listen("tcp", port)
	if err != nil {
		log.Fatalf("failed to listen: %v", err)
	}

	grpcServer := grpc.NewServer(
		grpc.ChainUnaryInterceptor(
			middleware.ContextInterceptor(),
			middleware.LoggingInterceptor(appLogger),
		),
	)

	opnamev1.RegisterOpnameServiceServer(grpcServer, opnameHandler)
	opnamev1.RegisterInventoryServiceServer(grpcServer, invHandler)

	healthServer := health.NewServer()
	healthpb.RegisterHealthServer(grpcServer, healthServer)
	healthServer.SetServingStatus(opnamev1.OpnameService_ServiceDesc.ServiceName, healthpb.HealthCheckResponse_SERVING)
	healthServer.SetServingStatus(opnamev1.InventoryService_ServiceDesc.ServiceName, healthpb.HealthCheckResponse_SERVING)

	reflection.Register(grpcServer)

	appLogger.Info("Starting gRPC server", zap.String("port", port))

	go func() {
		if err := grpcServer.Serve(lis); err != nil {
			appLogger.Fatal("failed to serve", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server...")
	healthServer.Shutdown()
	grpcServer.GracefulStop()
	appLogger.Info("Server stopped")
}
