package config

import "time"

const defaultPort = 8080

var defaultDB = DB{
	Host: "127.0.0.1",
	Port: "5432",
	User: "myuser",
	Pass: "mypassword",
	Name: "dispatch_db",
}

// One deadline for the sweep and the client countdown.
var defaultDispatch = Dispatch{
	SweepInterval:      10 * time.Second,
	AcceptDeadline:     30 * time.Second,
	TieBreakKm:         2,
	ScoringConcurrency: 2,
	OperationTimeout:   15 * time.Second,
}

var defaultGeocoder = Geocoder{
	BaseURL:     "https://nominatim.openstreetmap.org",
	Country:     "India",
	UserAgent:   "courier-dispatch/1.0",
	Timeout:     5 * time.Second,
	MinInterval: time.Second,
	MaxAttempts: 3,
	BaseDelay:   time.Second,
	MaxDelay:    4 * time.Second,
	CacheTTL:    24 * time.Hour,
}

var defaultKafka = Kafka{
	GroupID:     "courier-dispatch",
	OrdersTopic: "orders",
	EventsTopic: "dispatch-events",
}

var defaultRateLimit = RateLimit{
	Enabled: true,
	Rate:    10,
	Burst:   20,
	TTL:     10 * time.Minute,
	MaxKeys: 10000,
}

var defaultLog = Log{
	Level:   "info",
	Backend: "slog",
}

// DefaultPort returns the default port.
func DefaultPort() int { return defaultPort }

// DefaultDB returns the default database settings.
func DefaultDB() DB { return defaultDB }

// DefaultDispatch returns the default dispatch settings.
func DefaultDispatch() Dispatch { return defaultDispatch }

// DefaultGeocoder returns the default geocoder settings.
func DefaultGeocoder() Geocoder { return defaultGeocoder }

// DefaultKafka returns the default Kafka settings (disabled: no brokers).
func DefaultKafka() Kafka { return defaultKafka }

// DefaultRateLimit returns the default HTTP rate limit settings.
func DefaultRateLimit() RateLimit { return defaultRateLimit }

// DefaultLog returns the default logger settings.
func DefaultLog() Log { return defaultLog }
