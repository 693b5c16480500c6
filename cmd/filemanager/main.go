package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/GriffinCanCode/filemanager/internal/config"
	"github.com/GriffinCanCode/filemanager/internal/domain/session"
	"github.com/GriffinCanCode/filemanager/internal/logging"
	"github.com/GriffinCanCode/filemanager/internal/providers/filesystem"
	"github.com/GriffinCanCode/filemanager/internal/providers/system"
	"github.com/GriffinCanCode/filemanager/internal/shell"
	"go.uber.org/zap"
)

func main() {
	cfg, err := loadConfig(os.Args[1:])
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	logger, err := logging.New(loggerConfig(cfg.Logging))
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	home := cfg.Session.Home
	if home == "" {
		if home, err = os.UserHomeDir(); err != nil {
			logger.Fatal("Failed to resolve home directory", zap.Error(err))
		}
	}

	sess, err := session.New(cfg.Session.Username, home)
	if err != nil {
		logger.Fatal("Failed to start session", zap.Error(err))
	}

	fs, err := filesystem.NewProvider(filesystem.Options{
		Locale:        cfg.Filesystem.Locale,
		BufferSize:    cfg.Filesystem.BufferSize,
		HashAlgorithm: cfg.Filesystem.HashAlgorithm,
		Compression:   cfg.Filesystem.Compression,
	}, logger)
	if err != nil {
		logger.Fatal("Failed to create filesystem provider", zap.Error(err))
	}

	sh, err := shell.New(shell.Config{
		In:         os.Stdin,
		Out:        os.Stdout,
		Session:    sess,
		Filesystem: fs,
		System:     system.NewProvider(system.LocalHost{}),
		Logger:     logger,
		Prompt:     cfg.Shell.Prompt,
		Async:      cfg.Shell.Async,
		Color:      cfg.Shell.Color,
	})
	if err != nil {
		logger.Fatal("Failed to create shell", zap.Error(err))
	}

	logger.Debug("Session started",
		zap.String("session_id", sess.ID.String()),
		zap.String("home", sess.Home()),
		zap.Bool("async", cfg.Shell.Async))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle interrupt
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	// Run the loop in a goroutine; reading stdin cannot be interrupted
	errChan := make(chan error, 1)
	go func() {
		errChan <- sh.Run(ctx)
	}()

	// Wait for a signal or the end of the session
	select {
	case sig := <-sigChan:
		logger.Debug("Interrupted", zap.String("signal", sig.String()))
		cancel()
		sh.Close()
	case err := <-errChan:
		if err != nil {
			logger.Error("Session ended with error", zap.Error(err))
		}
	}
}

// loadConfig reads FM_* variables, then applies command line flags on top
func loadConfig(args []string) (*config.Config, error) {
	flags := flag.NewFlagSet("filemanager", flag.ContinueOnError)
	username := flags.String("username", "", "Name used in the greeting (overrides FM_USERNAME)")
	if err := flags.Parse(args); err != nil {
		return nil, err
	}

	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if *username != "" {
		cfg.Session.Username = *username
	}
	return cfg, nil
}

// loggerConfig starts from the development or interactive preset; level and output come from cfg
func loggerConfig(cfg config.LogConfig) logging.Config {
	lc := logging.DefaultConfig()
	if cfg.Development {
		lc = logging.DevelopmentConfig()
	}
	if cfg.Level != "" {
		lc.Level = cfg.Level
	}
	if cfg.Output != "" {
		lc.OutputPaths = []string{cfg.Output}
	}
	return lc
}
