package command

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"HomoCure/cache"
	"HomoCure/config"
	"HomoCure/database"
	"HomoCure/logger"
	"HomoCure/routes"
	"HomoCure/services"
	"HomoCure/utils"

	"github.com/go-redis/redis/v8"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP server",
	RunE: func(cmd *cobra.Command, args []string) error {
		return serve(cmd.Context())
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func serve(ctx context.Context) error {
	if ctx == nil {
		ctx = context.Background()
	}

	cfg, err := config.Load()
	if err != nil {
		return errors.Wrap(err, "failed to load configuration")
	}

	zapLogger, err := logger.New(cfg.LogLevel)
	if err != nil {
		return errors.Wrap(err, "failed to initialize logger")
	}
	defer func() { _ = zapLogger.Sync() }()
	log := logger.Sugar(zapLogger)

	store, locker, redisClient, err := setupStore(ctx, cfg, log)
	if err != nil {
		return err
	}
	if redisClient != nil {
		defer func() { _ = redisClient.Close() }()
	}

	key, generated, err := utils.SymmetricKey(cfg.SymmetricKey)
	if err != nil {
		return err
	}
	if generated {
		log.Warn("SYMMETRIC_KEY is not set, session tokens will not survive a restart")
	}
	tokens, err := utils.NewSessionTokens(key, cfg.SessionTTL)
	if err != nil {
		return err
	}

	handler, err := routes.SetupRoutes(cfg, routes.Dependencies{
		Cache:      store,
		Locker:     locker,
		Tokens:     tokens,
		Dispatcher: services.NewDispatcher(log, notifiers(cfg, log)...),
		Random:     utils.NewRandomSource(time.Now().UnixNano()),
		Logger:     log,
	})
	if err != nil {
		return errors.Wrap(err, "failed to set up routes")
	}

	// Configure and start the server
	srv := &http.Server{
		Addr:           cfg.HTTPAddr,
		Handler:        handler,
		ReadTimeout:    30 * time.Second,
		WriteTimeout:   30 * time.Second,
		MaxHeaderBytes: 1 << 20,
		IdleTimeout:    30 * time.Second,
	}

	var wg sync.WaitGroup
	wg.Add(1)

	serverErr := make(chan error, 1)
	go func() {
		defer wg.Done()
		log.Infow("starting server", "addr", cfg.HTTPAddr, "env", cfg.Env, "redis", cfg.RedisEnabled(), "mail", cfg.MailEnabled())
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	// Graceful shutdown handling
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)
	select {
	case <-c:
	case err := <-serverErr:
		return errors.Wrap(err, "listenAndServe()")
	}

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancelShutdown()

	log.Info("shutting down server")
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return errors.Wrap(err, "server shutdown failed")
	}

	wg.Wait()
	if redisClient != nil {
		database.MonitorRedisPool(redisClient, log)
	}
	log.Info("server exited gracefully")
	return nil
}

// setupStore returns the session cache and lock. Sessions live in process
// memory unless REDIS_URL is set.
func setupStore(ctx context.Context, cfg *config.AppConfig, log *zap.SugaredLogger) (cache.Cache, cache.Locker, *redis.Client, error) {
	if !cfg.RedisEnabled() {
		store, err := cache.NewMemoryCache(cfg.SessionCacheSize)
		if err != nil {
			return nil, nil, nil, err
		}
		log.Infow("using in-memory session store", "size", cfg.SessionCacheSize)
		return store, cache.NewMemoryLocker(), nil, nil
	}

	redisConfig, err := database.LoadRedisConfig(cfg)
	if err != nil {
		return nil, nil, nil, err
	}
	client, err := database.NewRedisClient(ctx, redisConfig, log)
	if err != nil {
		return nil, nil, nil, errors.Wrap(err, "failed to initialize Redis client")
	}
	store, err := cache.NewRedisCache(client)
	if err != nil {
		_ = client.Close()
		return nil, nil, nil, err
	}
	return store, cache.NewRedisLocker(client, log), client, nil
}

func notifiers(cfg *config.AppConfig, log *zap.SugaredLogger) []services.Notifier {
	sinks := []services.Notifier{services.NewLogNotifier(log)}
	if cfg.MailEnabled() {
		mailer := utils.NewMailer(utils.MailConfig{
			Host:     cfg.SMTPHost,
			Port:     cfg.SMTPPort,
			User:     cfg.SMTPUser,
			Password: cfg.SMTPPass,
		})
		sinks = append(sinks, services.NewMailNotifier(mailer, cfg.MailTopics, log))
	}
	return sinks
}
