package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/lixenwraith/lanesim/config"
	"github.com/lixenwraith/lanesim/core"
)

func main() {
	// Panic recovery: restore the terminal before the trace is printed
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	opts, err := parseFlags(os.Args[1:], os.Stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		os.Exit(2)
	}

	if err := realMain(opts); err != nil {
		fmt.Fprintf(os.Stderr, "lanesim: %v\n", err)
		os.Exit(1)
	}
}

func realMain(opts *options) error {
	if opts.writeConf {
		if err := config.WriteDefault(opts.configPath); err != nil {
			return err
		}
		fmt.Printf("default configuration written to %s\n", opts.configPath)
		return nil
	}

	cfg, found, err := config.Load(opts.configPath)
	if err != nil {
		return err
	}
	opts.apply(cfg)
	if err := cfg.Validate(); err != nil {
		return err
	}

	if cfg.View.Enabled && !term.IsTerminal(int(os.Stdout.Fd())) {
		return errors.New("-view needs stdout to be a terminal")
	}

	if logFile := setupLogging(cfg.Log.Debug); logFile != nil {
		defer logFile.Close()
	}
	logger := log.Default()
	if found {
		logger.Info("config loaded", "path", opts.configPath)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return run(ctx, cfg, logger, os.Stdout)
}
