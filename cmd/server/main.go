// Command server runs the interview-coach HTTP API: question generation,
// answer transcription and evaluation, and readiness scoring.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	analysisgroq "github.com/saathilabs/interview-coach/analysis/groq"
	"github.com/saathilabs/interview-coach/audiostore"
	"github.com/saathilabs/interview-coach/config"
	"github.com/saathilabs/interview-coach/interview"
	"github.com/saathilabs/interview-coach/logger"
	"github.com/saathilabs/interview-coach/server"
	"github.com/saathilabs/interview-coach/server/endpoint"
	transcriptiongroq "github.com/saathilabs/interview-coach/transcription/groq"
	"github.com/saathilabs/interview-coach/version"
)

const shutdownTimeout = 10 * time.Second

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "server: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	var (
		configFile  = flag.String("config", "", "path to config.yml")
		envFile     = flag.String("env", "", "path to .env file")
		showVersion = flag.Bool("version", false, "print version and exit")
	)
	flag.Parse()

	if *showVersion {
		fmt.Println("interview-coach", version.Short())
		return nil
	}

	cfg, err := config.Load(*configFile, *envFile)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logger.Init(cfg.Logging)
	log := logger.New(&cfg.Logging, cfg.Base.Name)
	logger.SetGlobalLogger(log)
	log.Info("Starting service", map[string]interface{}{
		"version":     version.Short(),
		"environment": cfg.Base.Environment,
	})

	transcriber, err := transcriptiongroq.NewProvider(transcriptiongroq.Config{
		APIKey:  cfg.Groq.APIKey,
		BaseURL: cfg.Groq.BaseURL,
		Model:   cfg.Groq.TranscriptionModel,
		Timeout: cfg.Groq.Timeout,
	})
	if err != nil {
		return fmt.Errorf("init transcription provider: %w", err)
	}

	analyzer, err := analysisgroq.NewProvider(analysisgroq.Config{
		APIKey:  cfg.Groq.APIKey,
		BaseURL: cfg.Groq.BaseURL,
		Model:   cfg.Groq.ChatModel,
	})
	if err != nil {
		return fmt.Errorf("init analysis provider: %w", err)
	}

	store, err := audiostore.New(cfg.Audio.TempDir)
	if err != nil {
		return fmt.Errorf("init audio store: %w", err)
	}

	svc := interview.NewService(transcriber, analyzer, store, log)

	srv := server.New(cfg.Server, log)
	srv.ApplyMiddleware()
	endpoint.Register(srv.Engine(), cfg.Base.Name, svc)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := srv.Start(ctx); err != nil {
		return fmt.Errorf("start server: %w", err)
	}

	<-ctx.Done()
	log.Info("Shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Stop(shutdownCtx)
}
