package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/projectlog/linebot/config"
	"github.com/projectlog/linebot/controllers"
	"github.com/projectlog/linebot/line"
	"github.com/projectlog/linebot/llm"
	"github.com/projectlog/linebot/middleware"
	"github.com/projectlog/linebot/repository"
	"github.com/projectlog/linebot/routes"
	"github.com/projectlog/linebot/service"
	"github.com/projectlog/linebot/utils"
)

func main() {
	// 初始化日志
	utils.InitLogger()

	// 加载配置
	cfg := config.LoadConfig()

	// 设置Gin模式
	if cfg.Debug {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	// 初始化数据库
	ctx := context.Background()
	store, err := repository.NewStore(ctx, cfg.MongoURI, cfg.MongoDB)
	if err != nil {
		utils.Logger.Fatal().Err(err).Msg("Failed to connect to MongoDB")
	}
	defer store.Close(ctx)

	// 抽取器和回复客户端
	extractor, err := llm.NewOpenAIExtractor(cfg)
	if err != nil {
		utils.Logger.Fatal().Err(err).Msg("Failed to create extractor")
	}
	replier := line.NewClient(cfg.LineChannelToken, cfg.LineAPIBase)

	// 业务服务
	intake := service.NewIntakeService(store, cfg.Mode)
	exporter := service.NewExporter(store, cfg.ExportDir, cfg.BaseURL)

	// 创建Gin实例
	router := gin.New()

	// 应用中间件
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.CORS())
	router.Use(middleware.ErrorHandler())

	// 注册路由
	routes.RegisterRoutes(router,
		controllers.NewWebhookController(extractor, replier, intake, exporter),
		controllers.NewDownloadController(cfg.ExportDir),
	)

	utils.Logger.Info().Str("mode", string(cfg.Mode)).Msg("系统初始化完成")

	// 设置HTTP服务器
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// 启动服务器
	go func() {
		utils.Logger.Info().Msgf("服务器启动，监听端口: %d", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			utils.Logger.Fatal().Err(err).Msg("启动服务器失败")
		}
	}()

	// 优雅关闭
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	utils.Logger.Info().Msg("正在关闭服务器...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		utils.Logger.Fatal().Err(err).Msg("服务器关闭异常")
	}

	utils.Logger.Info().Msg("服务器已优雅关闭")
}
