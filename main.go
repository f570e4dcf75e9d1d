package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ssm"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	api "github.com/rpupo63/portfolio-backend/api"
	"github.com/rpupo63/portfolio-backend/config"
	"github.com/rpupo63/portfolio-backend/database"
	"github.com/rpupo63/portfolio-backend/services"
)

func main() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		fmt.Printf("Warning: Error loading .env file: %v\n", err)
	}

	cfg := config.Load(config.New())
	config.SetupLogging(cfg.LogLevel, cfg.LogFormat)
	log.Info().Msg("Initializing app...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	var awsCfg aws.Config
	if cfg.NeedsAWS() {
		var err error
		awsCfg, err = config.LoadAWS(ctx, cfg.AWS)
		if err != nil {
			log.Fatal().Err(err).Msg("Error loading AWS configuration")
		}
		if err := config.ResolveAdminPassword(ctx, &cfg, ssm.NewFromConfig(awsCfg)); err != nil {
			log.Fatal().Err(err).Msg("Error resolving admin password")
		}
	}
	if cfg.AdminPassword == "" {
		log.Warn().Msg("ADMIN_PASSWORD is empty; every admin request will be rejected")
	}

	db, err := database.Open(cfg.Database)
	if err != nil {
		log.Fatal().Err(err).Msg("Error connecting to database")
	}

	// If generating models, run generation and exit
	if cfg.GenerateModels {
		log.Info().Msg("Generating models and query helpers...")
		if err := database.GenerateModels(ctx, db, "./generated"); err != nil {
			log.Fatal().Err(err).Msg("Error generating models")
		}
		return
	}

	if cfg.AutoMigrate {
		if err := database.Migrate(db); err != nil {
			log.Fatal().Err(err).Msg("Error migrating database")
		}
		log.Info().Msg("Database migration completed")
	}

	currentDB := database.New(db)
	if err := currentDB.Ping(ctx); err != nil {
		log.Fatal().Err(err).Msg("Error testing database connection")
	}

	storer := services.NewStorer(cfg.Storage, awsCfg)
	notifier, err := services.NewNotifier(cfg.Email, awsCfg)
	if err != nil {
		log.Fatal().Err(err).Msg("Error configuring email notifications")
	}
	log.Info().
		Bool("localStorage", cfg.Storage.UseLocal).
		Bool("localEmail", cfg.Email.UseLocal).
		Str("emailProvider", cfg.Email.Provider).
		Msg("Backends selected")

	// Both senders may fire; the buffer keeps the loser from blocking forever.
	errChannel := make(chan error, 2)

	server := api.NewServer(cfg, currentDB, storer, notifier)

	go server.Start(errChannel)

	// Listen for interrupt signals to gracefully shutdown the server
	go listenToInterrupt(errChannel)

	fatalErr := <-errChannel
	log.Info().Msgf("Closing server: %v", fatalErr)

	server.ShutdownGracefully(30 * time.Second)
}

// listenToInterrupt waits for SIGINT or SIGTERM and then sends an error to the error channel.
func listenToInterrupt(errChannel chan<- error) {
	c := make(chan os.Signal, 1)
	signal.Notify(c, syscall.SIGINT, syscall.SIGTERM)
	errChannel <- fmt.Errorf("%s", <-c)
}
