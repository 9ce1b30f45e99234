// Package main provides launch of the compression relay: config, logger, routes and HTTP-server
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

	"github.com/UnendingLoop/ImageCompressor/internal/config"
	"github.com/UnendingLoop/ImageCompressor/internal/mwlogger"
	"github.com/UnendingLoop/ImageCompressor/internal/service"
	"github.com/UnendingLoop/ImageCompressor/internal/storage"
	"github.com/UnendingLoop/ImageCompressor/internal/transport"
	"github.com/wb-go/wbf/ginext"
	"github.com/wb-go/wbf/zlog"
)

func main() {
	// считать энвы - без STORE_URL не стартуем
	appConfig, err := config.Load("./.env")
	if err != nil {
		log.Fatalf("Failed to load config: %s\nExiting app...", err)
	}

	// стартуем логгер
	zlog.InitConsole()
	if err := zlog.SetLevel(appConfig.LogLevel); err != nil {
		log.Fatalf("Failed to init logger: %v", err)
	}
	// готовим заранее слушатель прерываний - контекст для всего приложения
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// клиент хранилища картинок
	strg := storage.NewImgStorage(appConfig)
	// создаем экземпляр сервиса
	svc := service.NewCompressService(strg)
	// cоздаем экземпляр хендлера HTTP
	handlers := transport.NewCompressHandler(svc)
	// сетапим сервер
	engine := ginext.New(appConfig.GinMode)
	transport.RegisterRoutes(engine, handlers)

	// WriteTimeout покрывает два последовательных похода в хранилище
	srv := &http.Server{
		Addr:              ":" + appConfig.AppPort,
		Handler:           mwlogger.NewMWLogger(engine),
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      2*appConfig.StoreTimeout + 5*time.Second,
		IdleTimeout:       time.Minute,
	}

	// Server launch
	go func() {
		zlog.Logger.Info().Str("addr", srv.Addr).Msg("Server running")
		err := srv.ListenAndServe()
		if err != nil {
			switch {
			case errors.Is(err, http.ErrServerClosed):
				zlog.Logger.Info().Msg("Server gracefully stopping...")
			default:
				zlog.Logger.Error().Err(err).Msg("Server stopped")
				stop()
			}
		}
	}()

	// ждем отмены контекста для запуска грейсфул закрытия
	<-ctx.Done()

	shutdown(srv, appConfig.ShutdownTimeout)
	zlog.Logger.Info().Msg("Exiting relay...")
}

func shutdown(srv *http.Server, timeout time.Duration) {
	zlog.Logger.Info().Msg("Interrupt received!!! Starting shutdown sequence...")

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	// даём доработать запросам, которые уже ходят в хранилище
	if err := srv.Shutdown(ctx); err != nil {
		zlog.Logger.Error().Err(err).Msg("Failed to shutdown HTTP-server gracefully")
		return
	}
	zlog.Logger.Info().Msg("HTTP-server closed")
}
