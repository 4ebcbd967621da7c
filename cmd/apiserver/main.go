package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"lfp/dpalert/internal/app/config"
	"lfp/dpalert/internal/app/domains/diagnose"
	"lfp/dpalert/internal/app/domains/modules/mdnotify"
	"lfp/dpalert/internal/app/domains/repo/rpalert"
	"lfp/dpalert/internal/app/domains/services/svsymptom"
	"lfp/dpalert/internal/app/infra/persistence/redis"
	"lfp/dpalert/internal/app/pkg/logger"
	"lfp/dpalert/internal/app/server/handlers/symptom"
	"lfp/dpalert/internal/app/server/routers"
)

var configPath = flag.String("config", "config/config.yaml", "配置文件路径")

func main() {
	flag.Parse()

	// 1. 加载配置
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := cfg.Validate(); err != nil {
		log.Fatalf("Config validation failed: %v", err)
	}

	// 2. 初始化日志
	zlog, err := logger.NewZapLogger(cfg.App.LogLevel)
	if err != nil {
		log.Fatalf("Failed to init logger: %v", err)
	}
	defer zlog.Sync()

	// 3. 初始化告警存储（按配置选择 file / mysql）
	alertRepo, err := newAlertRepository(cfg)
	if err != nil {
		log.Fatalf("Failed to init alert storage: %v", err)
	}
	defer alertRepo.Close()

	// 4. 初始化高风险通知（可选，addr 为空时关闭）
	var notifier svsymptom.Notifier
	var redisClient *redis.PubSubClient
	if cfg.Redis.Addr != "" {
		redisClient, err = redis.NewPubSubClient(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		if err != nil {
			log.Fatalf("Failed to connect redis: %v", err)
		}
		defer redisClient.Close()
		notifier = mdnotify.NewNotifyModule(redisClient, cfg.Redis.Channel)
	}

	// 5. 组装服务与路由
	symptomService := svsymptom.NewSymptomService(diagnose.DefaultCatalog(), alertRepo, notifier, zlog)
	symptomHandler := symptom.NewHandler(symptomService, zlog)
	engine := routers.SetupRoutes(symptomHandler, zlog)

	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	server := &http.Server{
		Addr:    addr,
		Handler: engine,
	}

	// 6. 启动 HTTP Server（后台 goroutine）
	serverErrChan := make(chan error, 1)
	go func() {
		log.Printf("Starting HTTP server on %s", addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErrChan <- err
		}
	}()

	// 7. 优雅停机处理
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	select {
	case <-sigChan:
		log.Println("Received shutdown signal, gracefully shutting down...")
		gracefulShutdown(server)
	case err := <-serverErrChan:
		log.Fatalf("HTTP server error: %v", err)
	}

	log.Println("Application stopped")
}

// newAlertRepository 按存储驱动创建告警仓储
func newAlertRepository(cfg *config.Config) (rpalert.AlertRepository, error) {
	switch cfg.Storage.Driver {
	case config.StorageDriverMySQL:
		db, err := rpalert.OpenMySQL(cfg.Storage.MySQL.DSN)
		if err != nil {
			return nil, err
		}
		return rpalert.NewAlertRepository(db), nil
	case config.StorageDriverFile:
		return rpalert.NewFileAlertRepository(cfg.Storage.File.Path)
	default:
		return nil, fmt.Errorf("unknown storage driver: %s", cfg.Storage.Driver)
	}
}

// gracefulShutdown 优雅停机
func gracefulShutdown(server *http.Server) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Printf("HTTP server shutdown error: %v", err)
	} else {
		log.Println("HTTP server stopped gracefully")
	}
}
