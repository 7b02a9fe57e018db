package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config 应用配置
type Config struct {
	App      AppConfig
	Database DatabaseConfig
	Log      LogConfig
	JWT      JWTConfig
	Meli     MeliConfig
	CORS     CORSConfig
	Task     TaskConfig
	Sync     SyncConfig
}

type AppConfig struct {
	Env  string
	Port string
}

type DatabaseConfig struct {
	DSN      string
	LogLevel string // silent, error, warn, info
}

type LogConfig struct {
	Level  string
	Format string
	Output string
}

type JWTConfig struct {
	Secret     string
	Issuer     string
	AccessTTL  time.Duration
	RefreshTTL time.Duration
}

// MeliConfig Mercado Livre 应用凭证
type MeliConfig struct {
	ClientID     string
	ClientSecret string
	RedirectURI  string
	APIBaseURL   string
	AuthURL      string
	TokenURL     string
	Timeout      time.Duration
}

type CORSConfig struct {
	AllowOrigins []string
}

type TaskConfig struct {
	TokenRefreshEnabled bool
	TokenRefreshCron    string
	OrderSyncEnabled    bool
	OrderSyncCron       string
	Concurrency         int
}

type SyncConfig struct {
	// Cooldown 手动同步冷却时间
	Cooldown time.Duration
}

// Load 加载配置
// 优先级：环境变量 (MELI_ 前缀) > config.yaml > 默认值
func Load(paths ...string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./configs")
	for _, p := range paths {
		v.AddConfigPath(p)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("读取配置文件失败: %w", err)
		}
	}

	v.SetEnvPrefix("MELI")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	return fromViper(v), nil
}

func fromViper(v *viper.Viper) *Config {
	return &Config{
		App: AppConfig{
			Env:  v.GetString("app.env"),
			Port: v.GetString("app.port"),
		},
		Database: DatabaseConfig{
			DSN:      v.GetString("database.dsn"),
			LogLevel: v.GetString("database.log_level"),
		},
		Log: LogConfig{
			Level:  v.GetString("log.level"),
			Format: v.GetString("log.format"),
			Output: v.GetString("log.output"),
		},
		JWT: JWTConfig{
			Secret:     v.GetString("jwt.secret"),
			Issuer:     v.GetString("jwt.issuer"),
			AccessTTL:  v.GetDuration("jwt.access_ttl"),
			RefreshTTL: v.GetDuration("jwt.refresh_ttl"),
		},
		Meli: MeliConfig{
			ClientID:     v.GetString("meli.client_id"),
			ClientSecret: v.GetString("meli.client_secret"),
			RedirectURI:  v.GetString("meli.redirect_uri"),
			APIBaseURL:   v.GetString("meli.api_base_url"),
			AuthURL:      v.GetString("meli.auth_url"),
			TokenURL:     v.GetString("meli.token_url"),
			Timeout:      v.GetDuration("meli.timeout"),
		},
		CORS: CORSConfig{
			AllowOrigins: v.GetStringSlice("cors.allow_origins"),
		},
		Task: TaskConfig{
			TokenRefreshEnabled: v.GetBool("task.token_refresh_enabled"),
			TokenRefreshCron:    v.GetString("task.token_refresh_cron"),
			OrderSyncEnabled:    v.GetBool("task.order_sync_enabled"),
			OrderSyncCron:       v.GetString("task.order_sync_cron"),
			Concurrency:         v.GetInt("task.concurrency"),
		},
		Sync: SyncConfig{
			Cooldown: v.GetDuration("sync.cooldown"),
		},
	}
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app.env", "development")
	v.SetDefault("app.port", "8000")

	v.SetDefault("database.dsn", "host=localhost user=meli password=meli dbname=meli_hub port=5432 sslmode=disable TimeZone=UTC")
	v.SetDefault("database.log_level", "warn")

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")
	v.SetDefault("log.output", "stdout")

	v.SetDefault("jwt.secret", "meli-hub-secret-key-change-in-production")
	v.SetDefault("jwt.issuer", "meli-hub")
	v.SetDefault("jwt.access_ttl", 30*time.Minute)
	v.SetDefault("jwt.refresh_ttl", 7*24*time.Hour)

	v.SetDefault("meli.client_id", "")
	v.SetDefault("meli.client_secret", "")
	v.SetDefault("meli.redirect_uri", "http://localhost:5173/account/integration/callback")
	v.SetDefault("meli.api_base_url", "https://api.mercadolibre.com")
	v.SetDefault("meli.auth_url", "https://auth.mercadolivre.com.br/authorization")
	v.SetDefault("meli.token_url", "https://api.mercadolibre.com/oauth/token")
	v.SetDefault("meli.timeout", 20*time.Second)

	v.SetDefault("cors.allow_origins", []string{"http://localhost:3000", "http://localhost:5173"})

	v.SetDefault("task.token_refresh_enabled", true)
	v.SetDefault("task.token_refresh_cron", "0 0/30 * * * *")
	v.SetDefault("task.order_sync_enabled", false)
	v.SetDefault("task.order_sync_cron", "0 0 */2 * * *")
	v.SetDefault("task.concurrency", 5)

	v.SetDefault("sync.cooldown", time.Minute)
}

// IsProduction 是否生产环境
func (c *Config) IsProduction() bool {
	return c.App.Env == "production"
}
