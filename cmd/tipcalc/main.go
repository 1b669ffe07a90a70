package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/google/uuid"

	"github.com/mmynk/tipcalculator/internal/calculator"
	"github.com/mmynk/tipcalculator/internal/config"
	"github.com/mmynk/tipcalculator/internal/currency"
	"github.com/mmynk/tipcalculator/internal/form"
	"github.com/mmynk/tipcalculator/internal/middleware"
	"github.com/mmynk/tipcalculator/internal/ui"
	"github.com/mmynk/tipcalculator/pkg/logging"
)

func main() {
	amount := flag.String("amount", "", "bill amount; with -tip or -round, print the tip and exit")
	tip := flag.String("tip", "", "tip percentage")
	roundUp := flag.Bool("round", false, "round the tip up to a whole currency unit")
	flag.Parse()

	oneShot := false
	flag.Visit(func(*flag.Flag) { oneShot = true })

	cfg, err := config.Load()
	if err != nil {
		logging.Setup()
		slog.Error("Failed to load config", "error", err)
		os.Exit(1)
	}

	closeLog, err := setupLogging(cfg, oneShot)
	if err != nil {
		logging.Setup()
		slog.Error("Failed to open log file", "path", cfg.LogFile, "error", err)
		os.Exit(1)
	}
	defer closeLog()

	sessionID := uuid.New().String()
	slog.SetDefault(slog.Default().With("session_id", sessionID))

	formatter := currency.NewFormatter(cfg.LocaleTag())
	slog.Debug("Session started",
		"locale", formatter.Locale().String(),
		"currency", formatter.Unit().String(),
		"interactive", !oneShot,
	)

	tipForm := form.New(calculator.New(formatter))
	handler := middleware.LoggingHandler(tipForm.Handler())

	if oneShot {
		handler(form.Event{Kind: form.BillAmountChanged, Text: *amount})
		handler(form.Event{Kind: form.TipPercentChanged, Text: *tip})
		fmt.Println(handler(form.Event{Kind: form.RoundUpChanged, Flag: *roundUp}))
		return
	}

	if err := ui.NewScreen(tipForm, handler).Run(); err != nil {
		slog.Error("Screen failed", "error", err)
		closeLog()
		os.Exit(1)
	}
	slog.Info("Session ended", "last_result", tipForm.CurrentResult())
}

// setupLogging points the default logger at the configured file. Without a
// file, one-shot runs log to stderr and the interactive screen, which owns
// the terminal, discards logs.
func setupLogging(cfg *config.Config, oneShot bool) (func(), error) {
	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			return nil, fmt.Errorf("open log file: %w", err)
		}
		logging.SetupWithWriter(f, cfg.LogLevel)
		return func() { f.Close() }, nil
	}
	if oneShot {
		logging.SetupWithLevel(cfg.LogLevel)
	} else {
		logging.SetupWithWriter(io.Discard, cfg.LogLevel)
	}
	return func() {}, nil
}
