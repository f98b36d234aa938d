package config

import (
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	App    AppConfig    `mapstructure:"app"`
	Server ServerConfig `mapstructure:"server"`
	Log    LogConfig    `mapstructure:"log"`
	DB     DBConfig     `mapstructure:"db"`
	Auth   AuthConfig   `mapstructure:"auth"`
	Cron   CronConfig   `mapstructure:"cron"`

	Analytics AnalyticsConfig `mapstructure:"analytics"`
}

type AppConfig struct {
	Env string `mapstructure:"env"`
}

type ServerConfig struct {
	HTTPAddr string `mapstructure:"http_addr"`
}

type LogConfig struct {
	Level             string `mapstructure:"level"`
	Encoding          string `mapstructure:"encoding"`
	Development       bool   `mapstructure:"development"`
	Sampling          bool   `mapstructure:"sampling"`
	DisableCaller     bool   `mapstructure:"disable_caller"`
	DisableStacktrace bool   `mapstructure:"disable_stacktrace"`
}

type DBConfig struct {
	DSN             string        `mapstructure:"dsn"`
	MaxOpenConns    int           `mapstructure:"max_open_conns"`
	MaxIdleConns    int           `mapstructure:"max_idle_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`
	ConnMaxIdleTime time.Duration `mapstructure:"conn_max_idle_time"`
	Timezone        string        `mapstructure:"timezone"`
}

type AuthConfig struct {
	JWTSecret string `mapstructure:"jwt_secret"`
}

type CronConfig struct {
	Enabled       bool   `mapstructure:"enabled"`
	DailySnapshot string `mapstructure:"daily_snapshot"`
}

// AnalyticsConfig carries the thresholds and fallbacks the analytics engine
// applies when a restaurant has no explicit settings row. The literals mirror
// the product defaults (30% food-cost target, 50 000 revenue goal, 85
// forecast confidence) and exist here so tests can override them.
type AnalyticsConfig struct {
	FoodCostTargetPct    float64 `mapstructure:"food_cost_target_pct"`
	RevenueGoal          float64 `mapstructure:"revenue_goal"`
	DefaultAvgTicket     float64 `mapstructure:"default_avg_ticket"`
	ForecastConfidence   int     `mapstructure:"forecast_confidence"`
	ForecastLookbackDays int     `mapstructure:"forecast_lookback_days"`
	TrendSurgePct        float64 `mapstructure:"trend_surge_pct"`
	TopProductsLimit     int     `mapstructure:"top_products_limit"`
}

func Load(path string, envOnly bool) (Config, error) {
	v := viper.New()
	v.SetEnvPrefix("TD")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	v.AutomaticEnv()
	v.SetDefault("app.env", "dev")
	v.SetDefault("server.http_addr", ":8080")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.encoding", "console")
	v.SetDefault("log.development", true)
	v.SetDefault("log.sampling", false)
	v.SetDefault("log.disable_caller", false)
	v.SetDefault("log.disable_stacktrace", false)
	v.SetDefault("db.max_open_conns", 20)
	v.SetDefault("db.max_idle_conns", 5)
	v.SetDefault("db.conn_max_lifetime", "30m")
	v.SetDefault("db.conn_max_idle_time", "5m")
	v.SetDefault("db.timezone", "UTC")
	v.SetDefault("auth.jwt_secret", "")
	v.SetDefault("cron.enabled", true)
	v.SetDefault("cron.daily_snapshot", "0 0 5 * * *")

	v.SetDefault("analytics.food_cost_target_pct", 30)
	v.SetDefault("analytics.revenue_goal", 50000)
	v.SetDefault("analytics.default_avg_ticket", 25)
	v.SetDefault("analytics.forecast_confidence", 85)
	v.SetDefault("analytics.forecast_lookback_days", 30)
	v.SetDefault("analytics.trend_surge_pct", 15)
	v.SetDefault("analytics.top_products_limit", 5)

	if !envOnly {
		if err := v.ReadInConfig(); err != nil {
			return Config{}, err
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, err
	}

	return cfg, nil
}
