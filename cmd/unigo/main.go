package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"unigo/internal/config"
	"unigo/internal/game"
	"unigo/internal/logging"
)

func main() {
	configPath := flag.String("config", "unigo.toml", "path to the TOML config file")
	scenePath := flag.String("scene", "", "scene file to load (overrides config)")
	watch := flag.Bool("watch", false, "reload the scene file when it changes")
	logLevel := flag.String("log-level", "", "debug, info, warn or error (overrides config)")
	flag.Parse()

	// Paths given on the command line are relative to the shell, not to the
	// executable directory we are about to move into.
	if err := absFlags(flag.CommandLine, "config", "scene"); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Change working directory to executable location for deployed builds.
	// Skip this for "go run" which puts the binary in a temp directory.
	var chdirErr error
	if execPath, err := os.Executable(); err == nil {
		execDir := filepath.Dir(execPath)
		if !strings.Contains(execDir, "go-build") {
			chdirErr = os.Chdir(execDir)
		}
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if *scenePath != "" {
		cfg.Scene.Path = *scenePath
	}
	if *watch {
		cfg.Scene.Watch = true
	}
	if *logLevel != "" {
		cfg.Log.Level = *logLevel
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logger := logging.New(cfg.Log, os.Stderr)
	if chdirErr != nil {
		logger.Warn("staying in current directory", "err", chdirErr)
	}
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := game.New(cfg, logger).Run(ctx); err != nil {
		logger.Error("game exited", "err", err)
		os.Exit(1)
	}
}

// absFlags rewrites the named flags to absolute paths, but only those set
// explicitly so that defaults keep resolving against the executable.
func absFlags(fs *flag.FlagSet, names ...string) error {
	var err error
	fs.Visit(func(f *flag.Flag) {
		if err != nil || f.Value.String() == "" {
			return
		}
		for _, name := range names {
			if f.Name != name {
				continue
			}
			var abs string
			if abs, err = filepath.Abs(f.Value.String()); err == nil {
				err = f.Value.Set(abs)
			}
		}
	})
	return err
}
