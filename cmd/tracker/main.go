package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"RSITracker/internal/cache"
	"RSITracker/internal/collector"
	"RSITracker/internal/config"
	"RSITracker/internal/display"
	"RSITracker/internal/indicator"
	"RSITracker/internal/notifier"
	"RSITracker/internal/recorder"
	"RSITracker/internal/scheduler"
	"RSITracker/internal/watchlist"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	log.Println("[INFO] RSITracker starting...")

	// Load config
	cfgPath := "configs/config.yaml"
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		cfgPath = v
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatalf("[FATAL] load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("[FATAL] config validation: %v", err)
	}

	// Init fetcher and cache layer
	fetcher := collector.NewYahooFetcher(cfg.DataSource.BaseURL, cfg.Proxy)
	log.Printf("[INFO] data source: %s", fetcher.Name())
	market := cache.NewMarketData(fetcher, cfg.PriceTTL(), cfg.QuoteTTL(), nil)

	// Init indicator engine
	engine := indicator.NewEngine()
	engine.Period = cfg.Indicator.RSIPeriod
	engine.Overbought = cfg.Indicator.Overbought
	engine.Oversold = cfg.Indicator.Oversold
	engine.MAPeriods = cfg.Indicator.MAPeriods
	engine.DivergenceWindow = cfg.Indicator.DivergenceWindow
	engine.Smoothing = indicator.Smoothing(cfg.Indicator.Smoothing)

	// Init watchlist
	watch := watchlist.NewStore(cfg.Watchlist.File)
	log.Printf("[INFO] watchlist loaded: %d symbols", watch.Len())

	// Init recorder
	var rec recorder.Recorder
	if cfg.Database.SQLitePath != "" {
		sr, err := recorder.NewSQLiteRecorder(cfg.Database.SQLitePath)
		if err != nil {
			log.Printf("[WARN] init sqlite recorder failed, using noop: %v", err)
			rec = recorder.NewNoopRecorder()
		} else {
			rec = sr
			defer sr.Close()
		}
	} else {
		rec = recorder.NewNoopRecorder()
	}

	// Init Telegram notifier (optional)
	tn := notifier.NewTelegramNotifier(cfg.Telegram.BotToken, cfg.Telegram.ChatID, cfg.Proxy)

	// Display: background work posts immutable updates, the consumer below
	// applies them.
	queue := display.NewQueueSink(256)

	// Context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Init scheduler
	sched := scheduler.New(market, engine, watch, queue, rec, tn, scheduler.Options{
		Window:      cfg.DataSource.Window,
		Interval:    cfg.RefreshInterval(),
		SymbolDelay: cfg.SymbolDelay(),
		Retention:   cfg.Retention(),
	})
	if err := sched.Start(ctx); err != nil {
		log.Fatalf("[FATAL] start scheduler: %v", err)
	}
	defer func() {
		if err := sched.Stop(); err != nil {
			log.Printf("[WARN] %v", err)
		}
	}()

	// Consume posted display updates
	go func() {
		sink := display.NewLogSink()
		for u := range queue.Updates() {
			if u.Row != nil {
				sink.PublishRow(*u.Row)
			} else {
				sink.PublishStatus(u.Status)
			}
		}
	}()

	// Start Telegram command polling when configured
	if tn.Enabled() {
		go tn.StartPolling(ctx, sched.HandleCommand)
		log.Println("[INFO] Telegram polling started")
	}

	log.Println("[INFO] RSITracker is running. Press Ctrl+C to stop.")

	// Wait for shutdown signal
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	log.Println("[INFO] shutdown signal received, stopping...")
}
