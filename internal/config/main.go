//nolint:mnd //no magic number
package config

import (
	"log/slog"

	"github.com/XDoubleU/essentia/pkg/config"
)

type Config struct {
	Env             string
	Port            int
	Throttle        bool
	WebURL          string
	SentryDsn       string
	SampleRate      float64
	AccessExpiry    string
	RefreshExpiry   string
	DBDsn           string
	Release         string
	SupabaseProjRef string
	SupabaseAPIKey  string
	FeedsDir        string
	FeedsURL        string
	FeedsRooms      string
	Timezone        string
	HorizonDays     int
}

func New(logger *slog.Logger) Config {
	var cfg Config

	parser := config.New(logger)

	cfg.Env = parser.EnvStr("ENV", config.ProdEnv)
	cfg.Port = parser.EnvInt("PORT", 8000)
	cfg.Throttle = parser.EnvBool("THROTTLE", true)
	cfg.WebURL = parser.EnvStr("WEB_URL", "http://localhost:8000")
	cfg.SentryDsn = parser.EnvStr("SENTRY_DSN", "")
	cfg.SampleRate = parser.EnvFloat("SAMPLE_RATE", 1.0)
	cfg.AccessExpiry = parser.EnvStr("ACCESS_EXPIRY", "1h")
	cfg.RefreshExpiry = parser.EnvStr("REFRESH_EXPIRY", "7d")
	cfg.DBDsn = parser.EnvStr("DB_DSN", "postgres://postgres@localhost/postgres")
	cfg.Release = parser.EnvStr("RELEASE", config.DevEnv)

	cfg.SupabaseProjRef = parser.EnvStr("SUPABASE_PROJ_REF", "")
	cfg.SupabaseAPIKey = parser.EnvStr("SUPABASE_API_KEY", "")

	cfg.FeedsDir = parser.EnvStr("FEEDS_DIR", "salleICS")
	cfg.FeedsURL = parser.EnvStr("FEEDS_URL", "")
	cfg.FeedsRooms = parser.EnvStr("FEEDS_ROOMS", "")
	cfg.Timezone = parser.EnvStr("TIMEZONE", "Europe/Paris")
	cfg.HorizonDays = parser.EnvInt("HORIZON_DAYS", 15)

	return cfg
}
