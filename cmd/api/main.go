package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"blogger/api/auth"
	"blogger/api/router"
	"blogger/config"
	"blogger/db"
	"blogger/eventbus"
	"blogger/events"
	"blogger/logger"
	"blogger/models"
	"blogger/repositories"
	"blogger/repositories/memory"
	"blogger/services"
)

// userStore is what both the gate and the blog service need from users.
type userStore interface {
	services.UserDirectory
	auth.UserLookup
}

type store struct {
	blogs  services.BlogRepository
	users  userStore
	health func(ctx context.Context) error
	close  func(ctx context.Context) error
}

// @title           Blogger API
// @version         1.0
// @description     Blog publishing API: create, edit, delete and browse blogs
// @BasePath        /
// @securityDefinitions.apikey AccessToken
// @in header
// @name Authorization
func main() {
	config.InitApp()
	cfg := config.GetConfig()
	logger.Init(cfg.Logging.Level)
	logger.SetServiceName("blogger-api")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	tokens, err := auth.NewJWTManagerFromEnv()
	if err != nil {
		logger.Log.Errorf("failed to configure access tokens: %v", err)
		os.Exit(1)
	}

	st, err := openStore(ctx, cfg, tokens)
	if err != nil {
		logger.Log.Errorf("failed to open %s storage: %v", cfg.Storage.Driver, err)
		os.Exit(1)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := st.close(shutdownCtx); err != nil {
			logger.Log.Warnf("failed to close storage: %v", err)
		}
	}()

	blogSvc := services.NewBlogService(st.blogs, st.users).
		WithPageDefaults(cfg.Pagination.DefaultLimit, cfg.Pagination.MyBlogsDefaultLimit)

	if cfg.Events.Enabled {
		bus, err := openEventBus()
		if err != nil {
			logger.Log.Errorf("failed to create event bus: %v", err)
			os.Exit(1)
		}
		defer bus.Close()
		blogSvc.WithEvents(events.NewPublisher(bus, eventbus.TopicBlogEvents))
	}

	srv := &http.Server{
		Addr: cfg.Server.Addr,
		Handler: router.NewHandler(router.Options{
			Blogs:        blogSvc,
			Gate:         auth.NewGate(tokens, st.users),
			Health:       st.health,
			CORSOrigins:  cfg.Server.CORSOrigins,
			MaxBodyBytes: cfg.Server.MaxBodyBytes,
		}),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.InfoWithFields("api server listening", logger.Fields{
			"addr":    cfg.Server.Addr,
			"storage": cfg.Storage.Driver,
			"events":  cfg.Events.Enabled,
		})
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Log.Errorf("api server stopped: %v", err)
			stop()
		}
	}()

	<-ctx.Done()
	logger.Log.Info("received shutdown signal, shutting down api server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Errorf("graceful shutdown failed: %v", err)
	}
	logger.Log.Info("api server stopped")
}

func openStore(ctx context.Context, cfg config.AppConfig, tokens *auth.JWTManager) (*store, error) {
	switch cfg.Storage.Driver {
	case config.StorageMemory:
		users := memory.NewUserStore()
		demo := users.Add(models.User{Username: "demo", Email: "demo@example.com", FullName: "Demo User"})
		if token, err := tokens.Sign(demo.ID.Hex()); err == nil {
			logger.InfoWithFields("memory storage: demo user ready", logger.Fields{
				"user_id":      demo.ID.Hex(),
				"access_token": token,
			})
		}
		return &store{
			blogs: memory.NewBlogStore(),
			users: users,
			close: func(context.Context) error { return nil },
		}, nil
	case config.StorageMongo:
		if err := db.Init(ctx); err != nil {
			return nil, err
		}
		return &store{
			blogs:  repositories.NewBlogRepository(db.Database()),
			users:  repositories.NewUserRepository(db.Database()),
			health: db.Ping,
			close:  db.Disconnect,
		}, nil
	default:
		return nil, errors.New("unknown storage driver " + cfg.Storage.Driver)
	}
}

func openEventBus() (*eventbus.KafkaEventBus, error) {
	brokers, err := eventbus.GetBrokers()
	if err != nil {
		return nil, err
	}
	if err := eventbus.EnsureTopics(brokers, eventbus.TopicBlogEvents, 3); err != nil {
		// publishing still works when the broker auto-creates topics
		logger.Log.Warnf("failed to ensure eventbus topics: %v", err)
	}
	return eventbus.NewKafkaEventBus(brokers)
}
