package cmd

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/spf13/cobra"

	config "todo-list.com/todo-list/internal/configs"
	httpapi "todo-list.com/todo-list/internal/http"
	middleware "todo-list.com/todo-list/internal/http/middlewares"
	repository "todo-list.com/todo-list/internal/repositories"
	"todo-list.com/todo-list/internal/services"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API server",
	Long:  "Starts the todo HTTP API and the list page",
	RunE: func(cmd *cobra.Command, args []string) error {
		config.LoadDotEnv()

		cfg, err := config.Load()
		if err != nil {
			return err
		}

		database, err := config.NewDatabaseClient(cfg.DatabaseURL)
		if err != nil {
			return err
		}
		if err := config.Migrate(database); err != nil {
			return err
		}

		counter, closeCounter, err := newRateLimitCounter(cfg)
		if err != nil {
			return err
		}
		defer closeCounter()

		todoRepo := repository.NewTodoRepository(database)
		todoService := services.NewTodoService(todoRepo)

		ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		e := echo.New()
		e.HideBanner = true
		httpapi.Register(e, httpapi.NewTodoHandler(todoService), middleware.RateLimiter(counter, cfg.RateLimit, time.Minute))

		serveErr := runServer(ctx, e, cfg.AppURL(), time.Duration(cfg.ShutdownTimeoutSeconds)*time.Second)

		if sqlDB, err := database.DB(); err == nil {
			_ = sqlDB.Close()
		}

		return serveErr
	},
}

// runServer starts e on addr and blocks until ctx is done or the server
// fails. A failure to start, such as the port being taken, is returned.
func runServer(ctx context.Context, e *echo.Echo, addr string, shutdownTimeout time.Duration) error {
	errCh := make(chan error, 1)
	go func() {
		log.Printf("HTTP server listening on %s", addr)
		errCh <- e.Start(addr)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("server stopped: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}

	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("server stopped: %w", err)
	}

	log.Println("HTTP server shut down gracefully")
	return nil
}

// newRateLimitCounter keeps counters in Redis when REDIS_ADDR is set and in
// process memory otherwise.
func newRateLimitCounter(cfg config.Config) (middleware.Counter, func(), error) {
	if cfg.RedisAddr == "" {
		return middleware.NewMemoryCounter(), func() {}, nil
	}

	redisClient, err := config.NewRedisClient(cfg.RedisAddr)
	if err != nil {
		return nil, nil, err
	}

	log.Printf("rate limit counters stored in redis at %s", cfg.RedisAddr)
	return middleware.NewRedisCounter(redisClient, cfg.RedisKeyPrefix), redisClient.Close, nil
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
