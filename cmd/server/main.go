package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	ossignal "os/signal"
	"syscall"
	"time"

	"marketlens/internal/cache"
	"marketlens/internal/config"
	"marketlens/internal/handler"
	"marketlens/internal/history"
	"marketlens/internal/service"
	"marketlens/internal/session"
	"marketlens/internal/tvclient"
	"marketlens/pkg/tracing"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	_ "marketlens/docs"
)

var (
	loadEnvFunc            = godotenv.Load
	loadConfigFunc         = config.Load
	newRedisClientFunc     = cache.NewClient
	initTracerFunc         = tracing.InitTracer
	newTokenProviderFunc   = session.NewCookieTokenProvider
	newTokenCacheFunc      = session.NewTokenCache
	newDataClientFunc      = tvclient.New
	newFetcherFunc         = history.NewFetcher
	newHistoryServiceFunc  = service.NewHistoryService
	newChainServiceFunc    = service.NewOptionChainService
	newCommunitySvcFunc    = service.NewCommunityService
	newHandlerFunc         = handler.New
	newRouterFunc          = gin.Default
	setupSignalNotify      = ossignal.Notify
	waitForSignalFunc      = func(quit <-chan os.Signal) { <-quit }
	startHTTPServerFunc    = func(srv *http.Server) error { return srv.ListenAndServe() }
	shutdownHTTPServerFunc = func(srv *http.Server, ctx context.Context) error { return srv.Shutdown(ctx) }
)

// @title           MarketLens API
// @version         1.0
// @description     Trading-data retrieval service: historical candles with indicators, option-chain Greeks analytics, news and community sentiment.

// @host      localhost:8080
// @BasePath  /
func main() {
	loadEnvFunc()

	cfg := loadConfigFunc()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	mirror := newRedisClientFunc(ctx, cfg.RedisURL)

	tp, tracer, err := initTracerFunc(ctx)
	if err != nil {
		log.Fatalf("failed to initialize tracer: %v", err)
	}
	defer func() {
		if err := tp.Shutdown(ctx); err != nil {
			log.Printf("error shutting down tracer provider: %v", err)
		}
	}()

	fetchTimeout := time.Duration(cfg.FetchTimeoutSecs) * time.Second
	tokenProvider := newTokenProviderFunc(session.ProviderConfig{
		ChartURL:  cfg.TradingViewChartURL,
		Host:      cfg.TradingViewHost,
		UserAgent: cfg.TradingViewUserAgent,
		Cookie:    cfg.TradingViewCookie,
		Timeout:   fetchTimeout,
	})
	tokens := newTokenCacheFunc(tokenProvider, mirror)

	dataClient := newDataClientFunc(tracer, cfg.DataBaseURL, fetchTimeout)
	fetcher := newFetcherFunc(tracer, dataClient, tokens)

	historyService := newHistoryServiceFunc(tracer, fetcher, dataClient)
	chainService := newChainServiceFunc(tracer, dataClient)
	communityService := newCommunitySvcFunc(tracer, dataClient)

	h := newHandlerFunc(tracer, historyService, chainService, communityService)

	r := newRouterFunc()
	r.Use(otelgin.Middleware("marketlens"))
	r.Use(cors.Default())

	h.RegisterRoutes(r)
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.HTTPPort),
		Handler: r,
	}

	go func() {
		if err := startHTTPServerFunc(srv); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	setupSignalNotify(quit, syscall.SIGINT, syscall.SIGTERM)
	waitForSignalFunc(quit)
	log.Println("Shutting down server...")

	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := shutdownHTTPServerFunc(srv, shutdownCtx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exiting")
}
