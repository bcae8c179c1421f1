package store

import (
	"time"

	"figurefriday/internal/platform/config"
)

// Config aggregates per backend configuration
type Config struct {
	// AppName is the role reported to clickhouse (api, seed)
	AppName string

	PG    PGConfig
	CH    CHConfig
	Redis RedisConfig
}

// PGConfig configures postgres connectivity and tracing
type PGConfig struct {
	Enabled     bool
	URL         string
	MaxConns    int32
	LogSQL      bool
	SlowQueryMs int

	ConnectRetries int           // default 20
	PingTimeout    time.Duration // default 3s
}

// CHConfig configures clickhouse connectivity
type CHConfig struct {
	Enabled bool
	URL     string
	Tag     string
}

// RedisConfig configures redis connectivity
type RedisConfig struct {
	Enabled bool
	Addr    string
	DB      int
}

// ConfigFrom reads backend settings from SERVICE_PGSQL_*, SERVICE_CLICKHOUSE_* and SERVICE_REDIS_*
// a backend is enabled when its address is set
func ConfigFrom(root config.Conf, app string) Config {
	pg := root.Prefix("SERVICE_PGSQL_")
	ch := root.Prefix("SERVICE_CLICKHOUSE_")
	rd := root.Prefix("SERVICE_REDIS_")

	cfg := Config{
		AppName: app,
		PG: PGConfig{
			URL:            pg.MayString("DBURL", ""),
			MaxConns:       int32(pg.MayInt("MAX_CONNS", 4)),
			SlowQueryMs:    pg.MayInt("SLOW_MS", 500),
			LogSQL:         pg.MayBool("LOG_SQL", false),
			ConnectRetries: pg.MayInt("CONNECT_RETRIES", 20),
			PingTimeout:    pg.MayDuration("PING_TIMEOUT", 3*time.Second),
		},
		CH: CHConfig{
			URL: ch.MayString("DBURL", ""),
			Tag: ch.MayString("TAG", "dev"),
		},
		Redis: RedisConfig{
			Addr: rd.MayString("ADDR", ""),
			DB:   rd.MayInt("DB", 0),
		},
	}
	cfg.PG.Enabled = cfg.PG.URL != ""
	cfg.CH.Enabled = cfg.CH.URL != ""
	cfg.Redis.Enabled = cfg.Redis.Addr != ""
	return cfg
}
