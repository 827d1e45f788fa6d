package config

import (
	"fmt"
	"log"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
)

// Config stores service settings.
type Config struct {
	Port      int
	DB        DB
	Dispatch  Dispatch
	Geocoder  Geocoder
	Kafka     Kafka
	RateLimit RateLimit
	Pprof     Pprof
	Log       Log
}

// DB stores Postgres connection settings.
type DB struct {
	Host string
	Port string
	User string
	Pass string
	Name string
}

// DSN returns a postgres:// connection string.
func (d DB) DSN() string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(d.User, d.Pass),
		Host:     d.Host + ":" + d.Port,
		Path:     "/" + d.Name,
		RawQuery: "sslmode=disable",
	}
	return u.String()
}

// Dispatch stores assignment and sweep settings.
type Dispatch struct {
	// SweepInterval is the ExpiryWatcher tick.
	SweepInterval time.Duration
	// AcceptDeadline is how long a courier has to answer an offer. The same
	// value is published to clients as the offer's expires_at.
	AcceptDeadline     time.Duration
	TieBreakKm         float64
	ScoringConcurrency int
	OperationTimeout   time.Duration
}

// Geocoder stores postal-code lookup settings.
type Geocoder struct {
	BaseURL     string
	Country     string
	UserAgent   string
	Timeout     time.Duration
	MinInterval time.Duration
	MaxAttempts int
	BaseDelay   time.Duration
	MaxDelay    time.Duration
	CacheTTL    time.Duration
}

// Kafka stores broker settings. Empty brokers disable Kafka.
type Kafka struct {
	Brokers     []string
	GroupID     string
	OrdersTopic string
	EventsTopic string
}

// Enabled reports whether Kafka is configured.
func (k Kafka) Enabled() bool { return len(k.Brokers) > 0 }

// RateLimit stores per-client HTTP rate limit settings.
type RateLimit struct {
	Enabled bool
	Rate    float64
	Burst   int
	TTL     time.Duration
	MaxKeys int
}

// Pprof stores debug server settings. Empty Addr disables it.
type Pprof struct {
	Addr string
	User string
	Pass string
}

// Log stores logger settings.
type Log struct {
	Level   string
	Backend string
}

// Load reads configuration in order: .env (if present) → environment → flags.
func Load() (*Config, error) {
	if err := godotenv.Load(".env"); err != nil && !os.IsNotExist(err) {
		log.Printf("warning: .env not loaded: %v", err)
	}

	cfg := &Config{
		Port:      DefaultPort(),
		DB:        DefaultDB(),
		Dispatch:  DefaultDispatch(),
		Geocoder:  DefaultGeocoder(),
		Kafka:     DefaultKafka(),
		RateLimit: DefaultRateLimit(),
		Log:       DefaultLog(),
	}

	p := envParser{}
	cfg.Port = p.int("PORT", cfg.Port)

	cfg.DB.Host = p.str("POSTGRES_HOST", cfg.DB.Host)
	cfg.DB.Port = p.str("POSTGRES_PORT", cfg.DB.Port)
	cfg.DB.User = p.str("POSTGRES_USER", cfg.DB.User)
	cfg.DB.Pass = p.str("POSTGRES_PASSWORD", cfg.DB.Pass)
	cfg.DB.Name = p.str("POSTGRES_DB", cfg.DB.Name)
	if _, err := strconv.Atoi(cfg.DB.Port); err != nil {
		p.fail("POSTGRES_PORT", cfg.DB.Port, err)
	}

	cfg.Dispatch.SweepInterval = p.duration("DISPATCH_SWEEP_INTERVAL", cfg.Dispatch.SweepInterval)
	cfg.Dispatch.AcceptDeadline = p.duration("DISPATCH_ACCEPT_DEADLINE", cfg.Dispatch.AcceptDeadline)
	cfg.Dispatch.TieBreakKm = p.float("DISPATCH_TIE_BREAK_KM", cfg.Dispatch.TieBreakKm)
	cfg.Dispatch.ScoringConcurrency = p.int("DISPATCH_SCORING_CONCURRENCY", cfg.Dispatch.ScoringConcurrency)
	cfg.Dispatch.OperationTimeout = p.duration("DISPATCH_OPERATION_TIMEOUT", cfg.Dispatch.OperationTimeout)

	cfg.Geocoder.BaseURL = p.str("GEOCODER_BASE_URL", cfg.Geocoder.BaseURL)
	cfg.Geocoder.Country = p.str("GEOCODER_COUNTRY", cfg.Geocoder.Country)
	cfg.Geocoder.UserAgent = p.str("GEOCODER_USER_AGENT", cfg.Geocoder.UserAgent)
	cfg.Geocoder.Timeout = p.duration("GEOCODER_TIMEOUT", cfg.Geocoder.Timeout)
	cfg.Geocoder.MinInterval = p.duration("GEOCODER_MIN_INTERVAL", cfg.Geocoder.MinInterval)
	cfg.Geocoder.MaxAttempts = p.int("GEOCODER_MAX_ATTEMPTS", cfg.Geocoder.MaxAttempts)
	cfg.Geocoder.CacheTTL = p.duration("GEOCODER_CACHE_TTL", cfg.Geocoder.CacheTTL)

	if v := strings.TrimSpace(os.Getenv("KAFKA_BROKERS")); v != "" {
		cfg.Kafka.Brokers = splitList(v)
	}
	cfg.Kafka.GroupID = p.str("KAFKA_GROUP_ID", cfg.Kafka.GroupID)
	cfg.Kafka.OrdersTopic = p.str("KAFKA_ORDERS_TOPIC", cfg.Kafka.OrdersTopic)
	cfg.Kafka.EventsTopic = p.str("KAFKA_EVENTS_TOPIC", cfg.Kafka.EventsTopic)

	cfg.RateLimit.Enabled = p.bool("RATE_LIMIT_ENABLED", cfg.RateLimit.Enabled)
	cfg.RateLimit.Rate = p.float("RATE_LIMIT_RATE", cfg.RateLimit.Rate)
	cfg.RateLimit.Burst = p.int("RATE_LIMIT_BURST", cfg.RateLimit.Burst)
	cfg.RateLimit.TTL = p.duration("RATE_LIMIT_TTL", cfg.RateLimit.TTL)
	cfg.RateLimit.MaxKeys = p.int("RATE_LIMIT_MAX_KEYS", cfg.RateLimit.MaxKeys)

	cfg.Pprof.Addr = p.str("PPROF_ADDR", cfg.Pprof.Addr)
	cfg.Pprof.User = p.str("PPROF_USER", cfg.Pprof.User)
	cfg.Pprof.Pass = p.str("PPROF_PASS", cfg.Pprof.Pass)

	cfg.Log.Level = p.str("LOG_LEVEL", cfg.Log.Level)
	cfg.Log.Backend = p.str("LOG_BACKEND", cfg.Log.Backend)

	if p.err != nil {
		return nil, p.err
	}

	pflag.IntVarP(&cfg.Port, "port", "p", cfg.Port, "port to listen on")
	pflag.DurationVar(&cfg.Dispatch.SweepInterval, "sweep-interval", cfg.Dispatch.SweepInterval, "expiry sweep interval")
	pflag.DurationVar(&cfg.Dispatch.AcceptDeadline, "accept-deadline", cfg.Dispatch.AcceptDeadline, "time a courier has to accept an offer")
	pflag.StringVar(&cfg.Log.Level, "log-level", cfg.Log.Level, "log level")
	if err := pflag.CommandLine.Parse(os.Args[1:]); err != nil {
		return nil, fmt.Errorf("parse flags: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("invalid port: %d", c.Port)
	}
	if c.Dispatch.SweepInterval <= 0 {
		return fmt.Errorf("invalid sweep interval: %s", c.Dispatch.SweepInterval)
	}
	if c.Dispatch.AcceptDeadline <= 0 {
		return fmt.Errorf("invalid accept deadline: %s", c.Dispatch.AcceptDeadline)
	}
	if c.Dispatch.TieBreakKm < 0 {
		return fmt.Errorf("invalid tie-break distance: %v", c.Dispatch.TieBreakKm)
	}
	if c.Dispatch.ScoringConcurrency <= 0 {
		return fmt.Errorf("invalid scoring concurrency: %d", c.Dispatch.ScoringConcurrency)
	}
	if c.Geocoder.MaxAttempts <= 0 {
		return fmt.Errorf("invalid geocoder max attempts: %d", c.Geocoder.MaxAttempts)
	}
	switch c.Log.Backend {
	case "slog", "zap":
	default:
		return fmt.Errorf("invalid log backend: %q", c.Log.Backend)
	}
	if c.Kafka.Enabled() && (c.Kafka.GroupID == "" || c.Kafka.OrdersTopic == "") {
		return fmt.Errorf("kafka enabled without group id or orders topic")
	}
	return nil
}

// envParser reads typed environment variables and keeps the first error.
type envParser struct {
	err error
}

func (p *envParser) fail(key, raw string, err error) {
	if p.err == nil {
		p.err = fmt.Errorf("invalid %s=%q: %w", key, raw, err)
	}
}

func (p *envParser) str(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func (p *envParser) int(key string, def int) int {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		p.fail(key, v, err)
		return def
	}
	return n
}

func (p *envParser) float(key string, def float64) float64 {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		p.fail(key, v, err)
		return def
	}
	return f
}

func (p *envParser) bool(key string, def bool) bool {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		p.fail(key, v, err)
		return def
	}
	return b
}

func (p *envParser) duration(key string, def time.Duration) time.Duration {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		p.fail(key, v, err)
		return def
	}
	return d
}

func splitList(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
