package main

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"nutritrack/internal/config"
	"nutritrack/internal/dialog"
	"nutritrack/internal/handler"
	"nutritrack/internal/repository"
	"nutritrack/internal/repository/memory"
	"nutritrack/internal/repository/postgres"
	redisrepo "nutritrack/internal/repository/redis"
	"nutritrack/internal/service"

	"github.com/golang-migrate/migrate/v4"
	postgresdb "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "github.com/lib/pq"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

func main() {
	// Initialize logger
	logger, err := zap.NewProduction()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("Starting NutriTrack Bot")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load config", zap.Error(err))
	}

	logger.Info("Configuration loaded successfully",
		zap.String("meal_store", cfg.MealStore),
		zap.String("model", cfg.OpenAI.Model),
		zap.Duration("dialog_timeout", cfg.DialogTimeout),
	)

	// Initialize meal storage
	mealRepo, closeStore, err := openMealStore(cfg, logger)
	if err != nil {
		logger.Fatal("Failed to open meal store", zap.Error(err))
	}
	defer closeStore()

	// Initialize services
	mealService := service.NewMealService(mealRepo)
	adviceService := service.NewAdviceService(
		service.NewOpenAIClient(cfg.OpenAI.APIKey, cfg.OpenAI.BaseURL),
		cfg.OpenAI.Model,
		cfg.OpenAI.Timeout,
		logger,
	)

	// Initialize Telegram bot
	bot, err := tele.NewBot(handler.Settings(cfg.BotToken, logger))
	if err != nil {
		logger.Fatal("Failed to create bot", zap.Error(err))
	}

	logger.Info("Telegram bot initialized", zap.String("username", bot.Me.Username))

	// Initialize dialog routing and handlers
	machine := dialog.NewMachine(cfg.DialogTimeout)
	router := dialog.NewRouter(machine, mealService, adviceService, logger)
	h := handler.NewHandler(bot, router, logger)
	h.RegisterHandlers()

	if err := bot.SetCommands(handler.Commands); err != nil {
		logger.Warn("Failed to publish command menu", zap.Error(err))
	}

	logger.Info("Handlers registered")

	// Start bot in background
	go func() {
		logger.Info("Bot started successfully")
		bot.Start()
	}()

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	<-sigChan

	logger.Info("Shutdown signal received, stopping bot...")

	// Graceful shutdown
	bot.Stop()

	logger.Info("Bot stopped gracefully", zap.Int("open_dialogs", machine.Active()))
}

// openMealStore builds the configured meal repository and its close function
func openMealStore(cfg *config.Config, logger *zap.Logger) (repository.MealRepository, func(), error) {
	switch cfg.MealStore {
	case config.StorePostgres:
		db, err := connectDatabase(cfg.DSN(), logger)
		if err != nil {
			return nil, nil, err
		}
		logger.Info("Database connection established")

		if err := runMigrations(db, logger); err != nil {
			db.Close()
			return nil, nil, err
		}
		logger.Info("Database migrations completed")

		return postgres.NewMealRepo(db), func() { db.Close() }, nil

	case config.StoreRedis:
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := rdb.Ping(ctx).Err(); err != nil {
			rdb.Close()
			return nil, nil, fmt.Errorf("failed to ping redis: %w", err)
		}
		logger.Info("Redis connection established", zap.String("addr", cfg.Redis.Addr))

		return redisrepo.NewMealRepo(rdb), func() { rdb.Close() }, nil

	default:
		logger.Info("Meals are kept in memory and lost on restart")
		return memory.NewMealRepo(), func() {}, nil
	}
}

// connectDatabase connects to PostgreSQL with retries
func connectDatabase(dsn string, logger *zap.Logger) (*sql.DB, error) {
	var db *sql.DB
	var err error

	maxRetries := 30
	retryDelay := 2 * time.Second

	for i := 0; i < maxRetries; i++ {
		db, err = sql.Open("postgres", dsn)
		if err != nil {
			logger.Warn("Failed to open database connection",
				zap.Int("attempt", i+1),
				zap.Error(err),
			)
			time.Sleep(retryDelay)
			continue
		}

		if err = db.Ping(); err != nil {
			logger.Warn("Failed to ping database",
				zap.Int("attempt", i+1),
				zap.Error(err),
			)
			db.Close()
			time.Sleep(retryDelay)
			continue
		}

		db.SetMaxOpenConns(10)
		db.SetMaxIdleConns(2)
		db.SetConnMaxLifetime(5 * time.Minute)

		return db, nil
	}

	return nil, fmt.Errorf("failed to connect to database after %d attempts: %w", maxRetries, err)
}

// runMigrations applies the meals schema
func runMigrations(db *sql.DB, logger *zap.Logger) error {
	driver, err := postgresdb.WithInstance(db, &postgresdb.Config{})
	if err != nil {
		return fmt.Errorf("failed to create migration driver: %w", err)
	}

	m, err := migrate.NewWithDatabaseInstance(
		"file://migrations",
		"postgres",
		driver,
	)
	if err != nil {
		return fmt.Errorf("failed to create migration instance: %w", err)
	}

	err = m.Up()
	if err != nil && err != migrate.ErrNoChange {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	if err == migrate.ErrNoChange {
		logger.Info("No new migrations to apply")
	} else {
		logger.Info("Migrations applied successfully")
	}

	return nil
}
