package main

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"portfolio-blog/cmd/api/auth"
	"portfolio-blog/cmd/api/router"
	"portfolio-blog/cmd/api/services"
	"portfolio-blog/internal/logger"
	"portfolio-blog/config"
	"portfolio-blog/db"
	_ "portfolio-blog/docs"
	"portfolio-blog/eventbus"
	"portfolio-blog/repositories"
	"portfolio-blog/repositories/memory"
)

// @title           Portfolio Blog API
// @version         1.0
// @description     Blog posts, projects and contact messages behind an owner dashboard
// @BasePath        /api
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
func main() {
	config.InitApp()
	cfg := config.GetConfig()
	logger.InitFromEnv("LOG_LEVEL", cfg.Logging.Level)

	if cfg.Server.ReleaseMode {
		gin.SetMode(gin.ReleaseMode)
	}

	deps := router.Deps{Config: cfg}

	var connector *db.Connector
	switch cfg.Store.Driver {
	case "memory":
		store := memory.NewStore()
		deps.Store = store
		deps.Blogs, deps.Projects, deps.Messages = store.Blogs, store.Projects, store.Messages
		logger.InfoWithFields("using in-memory store", logger.Fields{"driver": cfg.Store.Driver})
	default:
		// connection is lazy: the first store-backed request dials
		connector = db.NewConnector(db.OptionsFromConfig(cfg.Mongo))
		deps.Store = connector
		deps.Blogs = repositories.NewBlogPostRepository(connector)
		deps.Projects = repositories.NewProjectRepository(connector)
		deps.Messages = repositories.NewMessageRepository(connector)
	}

	secret := cfg.Auth.SessionSecret
	if secret == "" {
		secret = randomSecret()
		logger.WarnWithFields("SESSION_SECRET not set; sessions will not survive a restart", nil)
	}
	sessions := auth.NewSessionStore(secret, cfg.Auth.SessionMaxAge, cfg.Auth.CookieSecure)

	tokens, err := auth.NewJWTManagerFromEnv()
	if err != nil {
		logger.WarnWithFields("bearer tokens disabled", logger.Fields{"error": err.Error()})
		tokens = nil
	}

	deps.Gate = auth.NewGate(sessions, tokens)
	deps.Providers = auth.ProvidersFromConfig(cfg.Auth)
	if len(deps.Providers.List()) == 0 {
		logger.WarnWithFields("no sign-in provider configured; the dashboard is unreachable", nil)
	}

	bus := newEventBus(cfg.Events)
	emitter := services.NewEventEmitter(bus, eventbus.NewTopic(cfg.Events.Topic), cfg.Events.PublishTimeout)
	deps.Events = emitter

	server := &http.Server{
		Addr:         cfg.Server.Addr,
		Handler:      router.WithCORS(router.New(deps), cfg.CORS.AllowedOrigins),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.InfoWithFields("server listening", logger.Fields{"addr": cfg.Server.Addr})
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.ErrorWithFields("server error", logger.Fields{"error": err.Error()})
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.InfoWithFields("shutting down server", nil)
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.ErrorWithFields("forced shutdown", logger.Fields{"error": err.Error()})
	}
	emitter.Wait()
	bus.Close()
	if connector != nil {
		if err := connector.Disconnect(shutdownCtx); err != nil {
			logger.ErrorWithFields("mongo disconnect failed", logger.Fields{"error": err.Error()})
		}
	}
	logger.InfoWithFields("server stopped", nil)
}

// newEventBus falls back to discarding events when Kafka is not configured
// or the producer cannot be created.
func newEventBus(cfg config.EventsConfig) eventbus.EventBus {
	if cfg.Brokers == "" {
		logger.InfoWithFields("content events disabled", nil)
		return eventbus.Discard{}
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	topic := eventbus.NewTopic(cfg.Topic)
	if err := eventbus.EnsureTopic(ctx, cfg.Brokers, topic, cfg.Partitions); err != nil {
		logger.WarnWithFields("kafka topic not ensured", logger.Fields{"topic": cfg.Topic, "error": err.Error()})
	}

	bus, err := eventbus.NewKafkaEventBus(cfg.Brokers)
	if err != nil {
		logger.ErrorWithFields("kafka producer unavailable; content events disabled", logger.Fields{"error": err.Error()})
		return eventbus.Discard{}
	}
	logger.InfoWithFields("publishing content events", logger.Fields{"brokers": cfg.Brokers, "topic": cfg.Topic})
	return bus
}

func randomSecret() string {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		panic(err)
	}
	return hex.EncodeToString(buf)
}
