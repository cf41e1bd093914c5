// Command dashboardd periodically refreshes the financial snapshot,
// regenerates insights and the health score, and records each run.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"

	"github.com/smartfinance/smartfinance-go/internal/config"
	"github.com/smartfinance/smartfinance-go/internal/logger"
	"github.com/smartfinance/smartfinance-go/internal/oracle"
	"github.com/smartfinance/smartfinance-go/internal/provider"
	"github.com/smartfinance/smartfinance-go/internal/recorder"
	"github.com/smartfinance/smartfinance-go/pkg/smartfinance"
)

func main() {
	cfgPath := "configs/config.yaml"
	if v := os.Getenv("SMARTFINANCE_CONFIG"); v != "" {
		cfgPath = v
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		fallback := logger.New("info")
		fallback.Fatal().Err(err).Msg("load config")
	}

	log := logger.New(cfg.LogLevel)
	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("config validation")
	}

	opts := &smartfinance.ClientOptions{
		Logger:    &log,
		SentryDSN: cfg.SentryDSN,
	}

	if cfg.Provider.BaseURL != "" {
		opts.Provider = provider.New(provider.Options{
			BaseURL:      cfg.Provider.BaseURL,
			ClientID:     cfg.Provider.ClientID,
			ClientSecret: cfg.Provider.ClientSecret,
			Timeout:      cfg.Provider.Timeout,
			Logger:       log,
		})
		log.Info().Str("baseURL", cfg.Provider.BaseURL).Msg("using live aggregation provider")
	} else {
		log.Info().Msg("no provider configured, serving sample data")
	}

	if cfg.Oracle.Command != "" {
		opts.Oracle = oracle.New(oracle.Options{
			Command:        cfg.Oracle.Command,
			Args:           cfg.Oracle.Args,
			Timeout:        cfg.Oracle.Timeout,
			MaxOutputBytes: cfg.Oracle.MaxOutputBytes,
			Logger:         log,
		})
		log.Info().Str("command", cfg.Oracle.Command).Msg("delegating scoring to external oracle")
	}

	client, err := smartfinance.NewClient(opts)
	if err != nil {
		log.Fatal().Err(err).Msg("init client")
	}
	defer client.Close()

	var rec recorder.Recorder = recorder.NewNoopRecorder()
	if cfg.Recorder.SQLitePath != "" {
		sr, err := recorder.NewSQLiteRecorder(cfg.Recorder.SQLitePath)
		if err != nil {
			log.Warn().Err(err).Msg("init sqlite recorder failed, using noop")
		} else {
			rec = sr
			defer sr.Close()
		}
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	refresh := func() { runOnce(ctx, client, rec, log) }

	c := cron.New()
	if _, err := c.AddFunc(cfg.Refresh.Cron, refresh); err != nil {
		log.Fatal().Err(err).Str("cron", cfg.Refresh.Cron).Msg("register refresh schedule")
	}
	c.Start()
	defer c.Stop()

	// First run immediately; cron covers the rest.
	refresh()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	<-sig
	log.Info().Msg("shutting down")
}

func runOnce(ctx context.Context, client *smartfinance.Client, rec recorder.Recorder, log zerolog.Logger) {
	snap, err := client.Data.Snapshot(ctx)

	var result *smartfinance.AnalysisResult
	if err != nil {
		result = smartfinance.DemoResult(err)
	} else {
		result = client.Insights.Analyze(ctx, snap)
	}

	run := &recorder.Run{
		Timestamp:    time.Now(),
		Insights:     len(result.Insights),
		OverallScore: result.HealthScore.Overall,
		Success:      result.Success,
		Error:        result.Error,
	}
	if snap != nil {
		run.Accounts = len(snap.Accounts)
		run.Transactions = len(snap.Transactions)
	}
	if len(result.Insights) > 0 {
		run.TopInsightID = result.Insights[0].ID
	}
	if err := rec.RecordRun(run); err != nil {
		log.Warn().Err(err).Msg("record run")
	}

	log.Info().
		Bool("success", result.Success).
		Int("insights", len(result.Insights)).
		Float64("healthScore", result.HealthScore.Overall).
		Msg("analysis refreshed")
}
