package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net"
	"net/http"
	"os/signal"
	"syscall"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	"github.com/xiebiao/bookcart/internal/infrastructure/config"
	"github.com/xiebiao/bookcart/pkg/logger"
	"github.com/xiebiao/bookcart/pkg/metrics"
	"github.com/xiebiao/bookcart/pkg/tracing"
)

// @title           Bookcart API
// @version         1.0
// @description     图书目录查询与购物车服务
// @host            localhost:8080
// @BasePath        /
func main() {
	if err := run(); err != nil {
		log.Fatalf("服务异常退出: %v", err)
	}
}

func run() error {
	// 1. 加载配置
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("加载配置失败: %w", err)
	}

	// 2. 日志
	zl, err := logger.New(logger.Options{
		Level:        cfg.Log.Level,
		Format:       cfg.Log.Format,
		Output:       cfg.Log.Output,
		EnableCaller: cfg.Log.EnableCaller,
	})
	if err != nil {
		return fmt.Errorf("初始化日志失败: %w", err)
	}
	defer zl.Sync() //nolint:errcheck

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// 3. 指标、链路追踪
	metrics.InitMetrics()
	if cfg.Tracing.Enabled {
		shutdown, err := tracing.InitTracer(tracing.Options{
			ServiceName: cfg.Tracing.ServiceName,
			Endpoint:    cfg.Tracing.Endpoint,
			SampleRate:  cfg.Tracing.SampleRate,
		})
		if err != nil {
			return err
		}
		defer func() {
			sctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
			defer cancel()
			if err := shutdown(sctx); err != nil {
				zl.Warn("关闭Tracer失败", zap.Error(err))
			}
		}()
		zl.Info("链路追踪已启用", zap.String("endpoint", cfg.Tracing.Endpoint))
	}

	// 4. 依赖注入
	app, cleanup, err := InitializeApp(ctx, cfg, zl)
	if err != nil {
		return fmt.Errorf("初始化应用失败: %w", err)
	}
	defer cleanup()

	zl.Info("目录加载完成",
		zap.Int("authors", app.Stats.Authors),
		zap.Int("publishers", app.Stats.Publishers),
		zap.Int("books", app.Stats.Books),
		zap.Int("comments", app.Stats.Comments),
	)

	// 5. HTTP + gRPC健康检查
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      app.Engine,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	grpcServer := grpc.NewServer()
	healthServer := health.NewServer()
	healthpb.RegisterHealthServer(grpcServer, healthServer)
	reflection.Register(grpcServer)

	listener, err := net.Listen("tcp", fmt.Sprintf(":%d", cfg.Server.GRPCPort))
	if err != nil {
		return fmt.Errorf("监听gRPC端口失败: %w", err)
	}
	// 目录已加载,可以对外服务
	healthServer.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		zl.Info("HTTP服务启动", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("HTTP服务异常: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		zl.Info("gRPC健康检查启动", zap.String("addr", listener.Addr().String()))
		if err := grpcServer.Serve(listener); err != nil {
			return fmt.Errorf("gRPC服务异常: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		zl.Info("正在优雅关闭服务...")
		healthServer.Shutdown()

		sctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()
		grpcServer.GracefulStop()
		return srv.Shutdown(sctx)
	})

	if err := g.Wait(); err != nil {
		return err
	}
	zl.Info("服务已关闭")
	return nil
}
