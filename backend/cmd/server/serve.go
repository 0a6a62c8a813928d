package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/CM6156/CoilmasterThailand/backend/internal/api/handler"
	"github.com/CM6156/CoilmasterThailand/backend/internal/api/middleware"
	"github.com/CM6156/CoilmasterThailand/backend/internal/api/router"
	"github.com/CM6156/CoilmasterThailand/backend/internal/i18n"
	"github.com/CM6156/CoilmasterThailand/backend/internal/repository"
	"github.com/CM6156/CoilmasterThailand/backend/internal/service"
	"github.com/CM6156/CoilmasterThailand/backend/pkg/jwt"
	"github.com/CM6156/CoilmasterThailand/backend/pkg/metrics"
	"github.com/CM6156/CoilmasterThailand/backend/pkg/notify"
	"github.com/CM6156/CoilmasterThailand/backend/pkg/redis"
	"github.com/CM6156/CoilmasterThailand/backend/pkg/response"
)

const shutdownTimeout = 10 * time.Second

func newServeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "HTTP 서버 실행",
		RunE:  runServe,
	}
}

func runServe(cmd *cobra.Command, _ []string) error {
	a, err := bootstrap(cmd)
	if err != nil {
		return err
	}
	defer a.close()

	cfg, logger := a.cfg, a.logger
	ctx := cmd.Context()

	logger.Info("应用启动中...",
		zap.Int("port", cfg.Server.Port),
		zap.String("log_level", cfg.Log.Level),
		zap.String("default_language", cfg.I18n.DefaultLanguage),
	)

	// Redis 可选：连接失败时会话只以数据库校验，限流退回进程内
	rdb, err := redis.NewClient(&cfg.Redis, logger)
	if err != nil {
		logger.Warn("Redis 不可用，降级运行", zap.Error(err))
		rdb = nil
	} else {
		defer rdb.Close()
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	collector := metrics.NewCollector(reg)

	repo := repository.NewRepository(a.db)

	translator, err := i18n.New(repo.Translation, logger, collector)
	if err != nil {
		return err
	}
	defer translator.Close()
	translator.Warm(ctx)

	deps := service.Deps{
		Config:     cfg,
		Repo:       repo,
		JWT:        jwt.NewManager(&cfg.Auth),
		Translator: translator,
		Notifier:   notify.New(&cfg.Notify, logger),
		Metrics:    collector,
		Logger:     logger,
	}
	// nil *redis.Client 不能直接放进接口
	if rdb != nil {
		deps.Revoker = rdb
	}
	svc := service.NewService(deps)

	failer := response.NewFailer(middleware.Localize(translator), logger)
	limiter := middleware.NewRateLimiter(middleware.RateLimiterConfig{
		Limit:  cfg.RateLimit.AuthLimit,
		Window: cfg.RateLimit.AuthWindow,
	}, rdb, failer, logger)
	defer limiter.Stop()

	sqlDB, err := a.db.DB()
	if err != nil {
		return fmt.Errorf("获取底层 sql.DB 失败: %w", err)
	}

	engine := router.Setup(router.Deps{
		Config:      cfg,
		Handler:     handler.NewHandler(cfg, svc, failer),
		Auth:        svc.Auth,
		Failer:      failer,
		RateLimiter: limiter,
		Metrics:     collector,
		Gatherer:    reg,
		HealthCheck: sqlDB.PingContext,
		Logger:      logger,
	})

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:           engine,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("HTTP 服务器已启动", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("HTTP 服务器异常: %w", err)
		}
	case <-ctx.Done():
		logger.Info("收到关闭信号，开始优雅关闭...")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("服务器关闭异常", zap.Error(err))
	}

	logger.Info("服务器已关闭")
	return nil
}
