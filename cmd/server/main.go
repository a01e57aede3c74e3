package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/log"
	"github.com/ladoblanco/blackjack-api/internal/config"
	"github.com/ladoblanco/blackjack-api/pkg/api"
	gamerepo "github.com/ladoblanco/blackjack-api/pkg/repositories/game"
	playerrepo "github.com/ladoblanco/blackjack-api/pkg/repositories/player"
	gamesvc "github.com/ladoblanco/blackjack-api/pkg/services/game"
	playersvc "github.com/ladoblanco/blackjack-api/pkg/services/player"
)

var cli struct {
	Addr     string `help:"Listen address, overrides HTTP_ADDR." placeholder:"HOST:PORT"`
	Storage  string `help:"Storage backend, overrides STORAGE_TYPE." enum:",memory,persistent" default:""`
	LogLevel string `help:"Log level, overrides LOG_LEVEL." enum:",debug,info,warn,error" default:""`
}

func main() {
	kong.Parse(&cli,
		kong.Name("blackjack-server"),
		kong.Description("HTTP blackjack game service."),
	)

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("error loading configuration", "error", err)
	}

	// CLI flags win over the environment
	if cli.Addr != "" {
		cfg.HTTPAddr = cli.Addr
	}
	if cli.Storage != "" {
		cfg.StorageType = cli.Storage
	}
	if cli.LogLevel != "" {
		cfg.LogLevel = cli.LogLevel
	}

	logger := newLogger(cfg.LogLevel)

	gameRepo, playerRepo := buildRepositories(cfg, logger)
	defer gameRepo.Close()
	defer playerRepo.Close()

	players := playersvc.NewService(playerRepo, logger)
	games := gamesvc.NewService(gameRepo, players, logger)
	server := api.NewServer(cfg.HTTPAddr, games, players, logger)

	go func() {
		if err := server.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("server error", "error", err)
		}
	}()

	logger.Info("server is running, press Ctrl+C to exit")

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	logger.Info("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		logger.Error("error during shutdown", "error", err)
	}
}

// buildRepositories selects the storage backends. Persistent storage
// falls back to memory when a backend cannot be reached, so the server
// still comes up for local development.
func buildRepositories(cfg *config.Config, logger *log.Logger) (gamerepo.Repository, playerrepo.Repository) {
	if cfg.StorageType != config.StoragePersistent {
		logger.Info("using in-memory storage, data will be lost on restart")
		return gamerepo.NewMemoryRepository(), playerrepo.NewMemoryRepository()
	}

	var games gamerepo.Repository
	esRepo, err := gamerepo.NewElasticsearchRepository(&gamerepo.ElasticsearchConfig{
		URL:         cfg.ElasticsearchURL,
		Username:    cfg.ElasticsearchUsername,
		Password:    cfg.ElasticsearchPassword,
		IndexPrefix: cfg.IndexPrefix,
	})
	if err != nil {
		logger.Error("error initializing Elasticsearch game store, falling back to memory", "error", err)
		games = gamerepo.NewMemoryRepository()
	} else {
		logger.Info("using Elasticsearch game store", "url", cfg.ElasticsearchURL)
		games = esRepo
	}

	var players playerrepo.Repository
	sqliteRepo, err := playerrepo.NewSQLiteRepository(cfg.SQLitePath)
	if err != nil {
		logger.Error("error initializing SQLite player store, falling back to memory", "error", err)
		players = playerrepo.NewMemoryRepository()
	} else {
		logger.Info("using SQLite player store", "path", cfg.SQLitePath)
		players = sqliteRepo
	}

	return games, players
}

func newLogger(level string) *log.Logger {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
	})

	switch level {
	case "debug":
		logger.SetLevel(log.DebugLevel)
	case "warn":
		logger.SetLevel(log.WarnLevel)
	case "error":
		logger.SetLevel(log.ErrorLevel)
	default:
		logger.SetLevel(log.InfoLevel)
	}

	return logger
}
