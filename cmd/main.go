package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"content_proxy_v1/internal/config"
	"content_proxy_v1/internal/controller"
	"content_proxy_v1/internal/router"
	"content_proxy_v1/internal/service"
	"content_proxy_v1/pkg/logger"
	"content_proxy_v1/pkg/metrics"
	"content_proxy_v1/pkg/utils"

	"github.com/gin-gonic/gin"
)

// @title Content Proxy API
// @version 1.0
// @description YouTube / X / Instagram / Email 内容生成代理，转发到 Gemini generateContent
// @BasePath /
func main() {
	// 1. 加载配置 (缺少 API Key 直接退出)
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("配置加载失败: %v", err)
	}

	// 2. 初始化日志
	appLog, err := logger.NewStructured(cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		log.Fatalf("日志初始化失败: %v", err)
	}
	defer func() { _ = appLog.Sync() }()

	// 3. 初始化依赖
	deps := initDependencies(cfg, appLog)

	// 4. 初始化路由
	gin.SetMode(cfg.Server.Mode)
	r := router.SetupRouter(cfg, deps.Controllers, appLog, deps.Metrics)

	// 5. 启动服务
	startServer(r, cfg.Server, appLog)
}

// ==================== 依赖容器 ====================

// Dependencies 依赖容器
type Dependencies struct {
	Metrics     *metrics.Metrics
	Services    *Services
	Controllers *router.Controllers
}

// Services 服务集合
type Services struct {
	Gemini  *service.GeminiService
	Content *service.ContentService
}

// ==================== 初始化函数 ====================

// initDependencies 初始化所有依赖
func initDependencies(cfg *config.Config, appLog logger.Logger) *Dependencies {
	m := metrics.New()

	// -------- 上游客户端 --------
	client := utils.NewGeminiClient(utils.ClientOptions{
		BaseURL: cfg.Gemini.BaseURL,
		Timeout: cfg.Gemini.Timeout,
		Debug:   cfg.Gemini.Debug,
	})

	// -------- 业务服务 --------
	geminiSvc := service.NewGeminiService(&service.GeminiConfig{
		ApiKey: cfg.Gemini.APIKey,
		Model:  cfg.Gemini.Model,
	}, client, appLog, m)

	services := &Services{
		Gemini:  geminiSvc,
		Content: service.NewContentService(geminiSvc),
	}

	return &Dependencies{
		Metrics:     m,
		Services:    services,
		Controllers: initControllers(services),
	}
}

// initControllers 初始化所有控制器
func initControllers(svc *Services) *router.Controllers {
	return &router.Controllers{
		YouTube:   controller.NewYouTubeController(svc.Content),
		X:         controller.NewXController(svc.Content),
		Instagram: controller.NewInstagramController(svc.Content),
		Email:     controller.NewEmailController(svc.Content),
		Health:    controller.NewHealthController(),
	}
}

// ==================== 服务启动 ====================

// startServer 启动服务
func startServer(r *gin.Engine, cfg config.ServerConfig, appLog logger.Logger) {
	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// 异步启动服务
	go func() {
		appLog.Info("server starting", map[string]interface{}{"addr": srv.Addr})
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			appLog.Error("server failed", map[string]interface{}{"error": err})
			_ = appLog.Sync()
			os.Exit(1)
		}
	}()

	// 等待退出信号
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLog.Info("shutting down server", nil)

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		appLog.Error("forced shutdown", map[string]interface{}{"error": err})
		return
	}

	appLog.Info("server exited", nil)
}
