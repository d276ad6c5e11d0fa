package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds all application configuration.
type Config struct {
	DataSource struct {
		BaseURL string `yaml:"base_url"` // empty means the public Yahoo endpoint
		Window  string `yaml:"window"`   // history lookback, e.g. "1mo"
	} `yaml:"data_source"`
	Indicator struct {
		RSIPeriod        int     `yaml:"rsi_period"`
		Overbought       float64 `yaml:"overbought"`
		Oversold         float64 `yaml:"oversold"`
		MAPeriods        []int   `yaml:"ma_periods"`
		DivergenceWindow int     `yaml:"divergence_window"`
		Smoothing        string  `yaml:"smoothing"` // "wilder" or "ema"
	} `yaml:"indicator"`
	Refresh struct {
		IntervalSecs  int `yaml:"interval_secs"`
		SymbolDelayMS int `yaml:"symbol_delay_ms"`
	} `yaml:"refresh"`
	Cache struct {
		PriceTTLSecs int `yaml:"price_ttl_secs"`
		QuoteTTLSecs int `yaml:"quote_ttl_secs"`
	} `yaml:"cache"`
	Watchlist struct {
		File string `yaml:"file"`
	} `yaml:"watchlist"`
	Database struct {
		SQLitePath    string `yaml:"sqlite_path"`
		RetentionDays int    `yaml:"retention_days"`
	} `yaml:"database"`
	Telegram struct {
		BotToken string `yaml:"bot_token"`
		ChatID   string `yaml:"chat_id"`
	} `yaml:"telegram"`
	Proxy string `yaml:"proxy"`
}

// Load reads config from a YAML file, then applies environment variable overrides.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	// Environment variable overrides
	if v := os.Getenv("TELEGRAM_BOT_TOKEN"); v != "" {
		cfg.Telegram.BotToken = v
	}
	if v := os.Getenv("TELEGRAM_CHAT_ID"); v != "" {
		cfg.Telegram.ChatID = v
	}
	if v := os.Getenv("DATA_SOURCE_BASE_URL"); v != "" {
		cfg.DataSource.BaseURL = v
	}
	if v := os.Getenv("HTTPS_PROXY"); v != "" {
		cfg.Proxy = v
	}
	if v := os.Getenv("REFRESH_INTERVAL_SECS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Refresh.IntervalSecs = n
		}
	}
	if v := os.Getenv("RSI_PERIOD"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Indicator.RSIPeriod = n
		}
	}
	if v := os.Getenv("WATCHLIST_FILE"); v != "" {
		cfg.Watchlist.File = v
	}
	if v := os.Getenv("SQLITE_PATH"); v != "" {
		cfg.Database.SQLitePath = v
	}

	// Defaults
	if cfg.DataSource.Window == "" {
		cfg.DataSource.Window = "1mo"
	}
	if cfg.Indicator.RSIPeriod == 0 {
		cfg.Indicator.RSIPeriod = 14
	}
	if cfg.Indicator.Overbought == 0 {
		cfg.Indicator.Overbought = 70
	}
	if cfg.Indicator.Oversold == 0 {
		cfg.Indicator.Oversold = 30
	}
	if len(cfg.Indicator.MAPeriods) == 0 {
		cfg.Indicator.MAPeriods = []int{20, 50}
	}
	if cfg.Indicator.DivergenceWindow == 0 {
		cfg.Indicator.DivergenceWindow = 20
	}
	if cfg.Indicator.Smoothing == "" {
		cfg.Indicator.Smoothing = "wilder"
	}
	if cfg.Refresh.IntervalSecs == 0 {
		cfg.Refresh.IntervalSecs = 30
	}
	if cfg.Refresh.SymbolDelayMS == 0 {
		cfg.Refresh.SymbolDelayMS = 2000
	}
	if cfg.Cache.PriceTTLSecs == 0 {
		cfg.Cache.PriceTTLSecs = 60
	}
	if cfg.Cache.QuoteTTLSecs == 0 {
		cfg.Cache.QuoteTTLSecs = 300
	}
	if cfg.Watchlist.File == "" {
		cfg.Watchlist.File = "data/watchlist.json"
	}
	if cfg.Database.RetentionDays == 0 {
		cfg.Database.RetentionDays = 90
	}

	return cfg, nil
}

// RefreshInterval returns the sleep between full refresh cycles.
func (c *Config) RefreshInterval() time.Duration {
	return time.Duration(c.Refresh.IntervalSecs) * time.Second
}

// SymbolDelay returns the deliberate delay between symbols within a cycle.
func (c *Config) SymbolDelay() time.Duration {
	return time.Duration(c.Refresh.SymbolDelayMS) * time.Millisecond
}

// PriceTTL returns the price-history cache freshness window.
func (c *Config) PriceTTL() time.Duration {
	return time.Duration(c.Cache.PriceTTLSecs) * time.Second
}

// QuoteTTL returns the quote cache freshness window.
func (c *Config) QuoteTTL() time.Duration {
	return time.Duration(c.Cache.QuoteTTLSecs) * time.Second
}

// Retention returns how long recorder snapshots are kept.
func (c *Config) Retention() time.Duration {
	return time.Duration(c.Database.RetentionDays) * 24 * time.Hour
}

// Validate checks that all configured values are usable.
func (c *Config) Validate() error {
	if c.Indicator.RSIPeriod <= 0 {
		return fmt.Errorf("indicator.rsi_period must be positive")
	}
	if c.Indicator.Oversold >= c.Indicator.Overbought {
		return fmt.Errorf("indicator.oversold must be below indicator.overbought")
	}
	if c.Indicator.Smoothing != "wilder" && c.Indicator.Smoothing != "ema" {
		return fmt.Errorf("indicator.smoothing must be %q or %q", "wilder", "ema")
	}
	if c.Refresh.IntervalSecs <= 0 {
		return fmt.Errorf("refresh.interval_secs must be positive")
	}
	if c.Refresh.SymbolDelayMS < 0 {
		return fmt.Errorf("refresh.symbol_delay_ms must not be negative")
	}
	if c.Telegram.BotToken != "" && c.Telegram.ChatID == "" {
		return fmt.Errorf("telegram.chat_id is required when telegram.bot_token is set")
	}
	return nil
}
