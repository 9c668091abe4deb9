package main

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/soocke/patch-cropper-go/app"
	"github.com/soocke/patch-cropper-go/assets"
	"github.com/soocke/patch-cropper-go/config"
	"github.com/soocke/patch-cropper-go/debug"
	"github.com/soocke/patch-cropper-go/domain/catalog"
	"github.com/soocke/patch-cropper-go/domain/export"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	opts, err := config.ParseFlags(args, os.Stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		fmt.Fprintln(os.Stderr, err)
		return 2
	}

	// Config file first, flags on top.
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "config %s ignored: %v\n", opts.ConfigPath, err)
	}
	opts.Apply(cfg)
	if err := cfg.Validate(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		opts.Usage()
		return 2
	}

	level := slog.LevelInfo
	if cfg.Debug {
		level = slog.LevelDebug
	}
	logger := NewLogger(level)

	nonEmpty, err := export.PrepareOutputDir(cfg.OutputPath)
	if err != nil {
		logger.Error("output directory unusable", "path", cfg.OutputPath, "error", err)
		return 1
	}
	if nonEmpty {
		logger.Warn("The output directory is not empty. Files may be overwritten.", "path", cfg.OutputPath)
	}

	order := catalog.ParseOrder(cfg.Order)
	images, err := catalog.Scan(cfg.ImagesPath, order)
	if err != nil {
		if errors.Is(err, catalog.ErrNoImages) {
			fmt.Println("No images found in the directory.")
		} else {
			logger.Error("reading images directory failed", "path", cfg.ImagesPath, "error", err)
		}
		return 1
	}
	logger.Debug("images found", "count", len(images), "order", order.String())

	c, err := app.BuildContainer(cfg, opts.ConfigPath, logger, images)
	if err != nil {
		logger.Error("startup failed", "error", err)
		return 1
	}

	if cfg.Debug {
		debug.StartGoroutineLogger(5*time.Second, logger, c.Loader.Stats)
		debug.StartMemLogger(10*time.Second, logger, c.Loader.Stats)
	}

	if err := assets.PrintInstructions(os.Stdout); err != nil {
		logger.Warn("instructions unavailable", "error", err)
	}

	app.NewApp("Patch Cropper", c).Start()
	return 0
}
