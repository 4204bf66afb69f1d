package config

import (
	"os"
	"strings"
	"time"

	"go.uber.org/fx"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

var Module = fx.Provide(NewConfig)

const (
	DefaultAuthURL     = "https://functions.poehali.dev/0f238d18-0eb0-46f8-a5a8-2b97fa7dd386"
	DefaultOrdersURL   = "https://functions.poehali.dev/a355ad1e-ba4f-453b-90c3-54e7a02ade2d"
	DefaultTelegramURL = "https://functions.poehali.dev/bd5b3b5c-3b73-4a7d-bcb7-913d02bf02a1"
)

type IConfig interface {
	Get(key string) interface{}
	GetBool(key string) bool
	GetInt(key string) int
	GetInt64(key string) int64
	GetString(key string) string
	GetStringSlice(key string) []string
	GetDuration(key string) time.Duration
	Set(key string, value interface{})
}

type config struct {
	cfg *viper.Viper
}

func NewConfig() IConfig {
	_ = godotenv.Load()

	cfg := viper.New()
	cfg.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	cfg.AutomaticEnv()

	setDefaults(cfg)

	_ = cfg.BindEnv("server.port", "SERVICE_HTTP_PORT")
	_ = cfg.BindEnv("server.cors_origins", "CORS_ORIGINS")
	_ = cfg.BindEnv("services.auth_url", "AUTH_URL")
	_ = cfg.BindEnv("services.orders_url", "ORDERS_URL")
	_ = cfg.BindEnv("services.telegram_url", "TELEGRAM_URL")
	_ = cfg.BindEnv("http.timeout", "HTTP_TIMEOUT")
	_ = cfg.BindEnv("session.backend", "SESSION_BACKEND")
	_ = cfg.BindEnv("session.path", "SESSION_PATH")
	_ = cfg.BindEnv("redis.password", "REDIS_PASSWORD")
	_ = cfg.BindEnv("redis.addrs", "REDIS_ADDRS")
	_ = cfg.BindEnv("redis.prefix", "REDIS_PREFIX")
	_ = cfg.BindEnv("bot.token", "BOT_TOKEN")
	_ = cfg.BindEnv("bot.username", "BOT_USERNAME")
	_ = cfg.BindEnv("log.level", "LOG_LEVEL")
	_ = cfg.BindEnv("ui.lang", "UI_LANG")
	_ = cfg.BindEnv("checkout.notify_telegram", "CHECKOUT_NOTIFY_TELEGRAM")

	if addrs := os.Getenv("REDIS_ADDRS"); addrs != "" {
		cfg.Set("redis.addrs", strings.Split(addrs, ","))
	}
	if origins := os.Getenv("CORS_ORIGINS"); origins != "" {
		cfg.Set("server.cors_origins", strings.Split(origins, ","))
	}

	return &config{cfg: cfg}
}

// New wraps an existing viper instance; used by tests to build a config
// without touching the process environment.
func New(v *viper.Viper) IConfig {
	setDefaults(v)
	return &config{cfg: v}
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", ":8080")
	v.SetDefault("server.cors_origins", []string{"http://localhost:5173"})
	v.SetDefault("services.auth_url", DefaultAuthURL)
	v.SetDefault("services.orders_url", DefaultOrdersURL)
	v.SetDefault("services.telegram_url", DefaultTelegramURL)
	v.SetDefault("http.timeout", time.Duration(0))
	v.SetDefault("session.backend", "file")
	v.SetDefault("session.path", ".maison/session.json")
	v.SetDefault("redis.prefix", "maison")
	v.SetDefault("bot.username", "YourMaisonBot")
	v.SetDefault("log.level", "info")
	v.SetDefault("ui.lang", "ru")
	v.SetDefault("checkout.notify_telegram", true)
}

func (c *config) Get(key string) interface{} {
	return c.cfg.Get(key)
}

func (c *config) GetBool(key string) bool {
	return c.cfg.GetBool(key)
}

func (c *config) GetInt(key string) int {
	return c.cfg.GetInt(key)
}

func (c *config) GetInt64(key string) int64 {
	return c.cfg.GetInt64(key)
}

func (c *config) GetString(key string) string {
	return c.cfg.GetString(key)
}

func (c *config) GetStringSlice(key string) []string {
	return c.cfg.GetStringSlice(key)
}

func (c *config) GetDuration(key string) time.Duration {
	return c.cfg.GetDuration(key)
}

func (c *config) Set(key string, value interface{}) {
	c.cfg.Set(key, value)
}
