package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	service "github.com/okian/warboard/internal/app"
	"github.com/okian/warboard/internal/config"
	"github.com/okian/warboard/internal/reports"
	"github.com/okian/warboard/pkg/logger"
)

const (
	defaultStreakMin  = 5.0
	defaultRunTimeout = 30 * time.Minute
	logFilePermission = 0o600
)

func main() {
	var (
		formats   = flag.String("format", "txt", "Comma separated output formats: txt, csv, xlsx")
		outDir    = flag.String("out", "", "Report directory (default: report_dir from config)")
		streakMin = flag.Float64("streak-min", defaultStreakMin, "Season value a streak must exceed")
		logFile   = flag.String("log", "", "Also write logs to this file")
		timeout   = flag.Duration("timeout", defaultRunTimeout, "Overall run timeout")
	)
	flag.Parse()

	if err := run(*formats, *outDir, *streakMin, *logFile, *timeout); err != nil {
		os.Stderr.WriteString("reports failed: " + err.Error() + "\n")
		os.Exit(1)
	}
}

func run(formatList, outDir string, streakMin float64, logFile string, timeout time.Duration) error {
	if err := setupLogging(logFile); err != nil {
		return fmt.Errorf("setup logging: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	cfg, err := config.Load(ctx)
	if err != nil {
		return err
	}
	if err := logger.SetLevelString(cfg.LogLevel); err != nil {
		_ = logger.SetLevelString("info")
	}
	if outDir == "" {
		outDir = cfg.ReportDir
	}

	fs, err := reports.ParseFormats(formatList)
	if err != nil {
		return err
	}

	svc, err := service.NewCached(cfg)
	if err != nil {
		return err
	}
	snap, err := svc.Snapshot(ctx)
	if err != nil {
		return fmt.Errorf("build snapshot: %w", err)
	}

	runner := reports.NewRunner(outDir, reports.WithFormats(fs...), reports.WithLogger(logger.Named("reports")))
	_, err = runner.Run(ctx, snap, reports.Catalog(streakMin))
	return err
}

// setupLogging logs to stdout and, when path is set, to that file as well.
func setupLogging(path string) error {
	if path == "" {
		return logger.Init()
	}
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, logFilePermission)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	return logger.InitWithWriter(io.MultiWriter(os.Stdout, file), logger.FormatText)
}
