package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Server ServerConfig
	DB     DBConfig
	JWT    JWTConfig
	S3     S3Config
	Log    LogConfig
	CORS   CORSConfig
	Email  EmailConfig
	Redis  RedisConfig
	Tax    TaxConfig
	EMI    EMIConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port         string        `mapstructure:"port"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
	Environment  string        `mapstructure:"environment"`
}

// DBConfig holds PostgreSQL connection settings.
type DBConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	Name     string `mapstructure:"name"`
	SSLMode  string `mapstructure:"sslmode"`
	MaxOpen  int    `mapstructure:"max_open"`
	MaxIdle  int    `mapstructure:"max_idle"`
}

// DSN returns the PostgreSQL connection string.
func (d *DBConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.Name, d.SSLMode,
	)
}

// JWTConfig holds JWT signing and expiry settings.
type JWTConfig struct {
	Secret             string        `mapstructure:"secret"`
	AccessTokenExpiry  time.Duration `mapstructure:"access_expiry"`
	RefreshTokenExpiry time.Duration `mapstructure:"refresh_expiry"`
	Issuer             string        `mapstructure:"issuer"`
}

// S3Config holds AWS S3 settings for invoice attachments.
type S3Config struct {
	Region        string `mapstructure:"region"`
	Bucket        string `mapstructure:"bucket"`
	Endpoint      string `mapstructure:"endpoint"`
	AccessKey     string `mapstructure:"access_key"`
	SecretKey     string `mapstructure:"secret_key"`
	MaxFileSizeMB int64  `mapstructure:"max_file_size_mb"`
	PresignExpiry int64  `mapstructure:"presign_expiry"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// EmailConfig holds email delivery settings for appointment confirmations.
type EmailConfig struct {
	Provider    string `mapstructure:"provider"`
	Region      string `mapstructure:"region"`
	FromAddress string `mapstructure:"from_address"`
	FromName    string `mapstructure:"from_name"`
}

// RedisConfig holds settings for the dashboard stats cache.
type RedisConfig struct {
	Addr     string        `mapstructure:"addr"`
	Password string        `mapstructure:"password"`
	DB       int           `mapstructure:"db"`
	StatsTTL time.Duration `mapstructure:"stats_ttl"`
}

// TaxConfig holds the GST parameters injected into the tax engine. The
// engine itself carries no rates; a deployment in another home state only
// changes this section.
type TaxConfig struct {
	HomeState      string  `mapstructure:"home_state"`
	HomeStateCode  string  `mapstructure:"home_state_code"`
	IntraStateRate float64 `mapstructure:"intra_state_rate"`
	InterStateRate float64 `mapstructure:"inter_state_rate"`
}

// EMIConfig holds EMI plan limits.
type EMIConfig struct {
	MaxTenureMonths int `mapstructure:"max_tenure_months"`
}

// Load reads configuration from environment variables with the SHOWROOMOS_ prefix.
func Load() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("SHOWROOMOS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// server
	v.SetDefault("server.port", ":8080")
	v.SetDefault("server.read_timeout", "15s")
	v.SetDefault("server.write_timeout", "15s")
	v.SetDefault("server.environment", "development")

	// database
	v.SetDefault("db.host", "localhost")
	v.SetDefault("db.port", 5432)
	v.SetDefault("db.user", "showroomos")
	v.SetDefault("db.password", "showroomos_secret")
	v.SetDefault("db.name", "showroomos_db")
	v.SetDefault("db.sslmode", "disable")
	v.SetDefault("db.max_open", 25)
	v.SetDefault("db.max_idle", 10)

	// auth tokens
	v.SetDefault("jwt.secret", "change-me-in-production")
	v.SetDefault("jwt.access_expiry", "15m")
	v.SetDefault("jwt.refresh_expiry", "168h")
	v.SetDefault("jwt.issuer", "showroomos")

	// object storage
	v.SetDefault("s3.region", "ap-south-1")
	v.SetDefault("s3.bucket", "showroomos-attachments")
	v.SetDefault("s3.endpoint", "")
	v.SetDefault("s3.max_file_size_mb", 25)
	v.SetDefault("s3.presign_expiry", 3600)

	// logging
	v.SetDefault("log.level", "debug")
	v.SetDefault("log.format", "console")

	// cors; localhost covers frontend dev servers
	v.SetDefault("cors.allowed_origins", "http://localhost:3000,http://127.0.0.1:3000")

	// outbound email
	v.SetDefault("email.provider", "noop")
	v.SetDefault("email.region", "ap-south-1")
	v.SetDefault("email.from_address", "noreply@showroomos.in")
	v.SetDefault("email.from_name", "ShowroomOS")

	// redis cache
	v.SetDefault("redis.addr", "localhost:6379")
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("redis.stats_ttl", "2m")

	// Tax defaults: Gujarat seller, 9%+9% intra-state, 18% inter-state
	v.SetDefault("tax.home_state", "Gujarat")
	v.SetDefault("tax.home_state_code", "24")
	v.SetDefault("tax.intra_state_rate", 18.0)
	v.SetDefault("tax.inter_state_rate", 18.0)

	// emi
	v.SetDefault("emi.max_tenure_months", 60)

	// viper only sees nested keys through explicit env bindings
	envBindings := map[string]string{
		"server.port":            "SHOWROOMOS_SERVER_PORT",
		"server.read_timeout":    "SHOWROOMOS_SERVER_READ_TIMEOUT",
		"server.write_timeout":   "SHOWROOMOS_SERVER_WRITE_TIMEOUT",
		"server.environment":     "SHOWROOMOS_SERVER_ENVIRONMENT",
		"db.host":                "SHOWROOMOS_DB_HOST",
		"db.port":                "SHOWROOMOS_DB_PORT",
		"db.user":                "SHOWROOMOS_DB_USER",
		"db.password":            "SHOWROOMOS_DB_PASSWORD",
		"db.name":                "SHOWROOMOS_DB_NAME",
		"db.sslmode":             "SHOWROOMOS_DB_SSLMODE",
		"db.max_open":            "SHOWROOMOS_DB_MAX_OPEN",
		"db.max_idle":            "SHOWROOMOS_DB_MAX_IDLE",
		"jwt.secret":             "SHOWROOMOS_JWT_SECRET",
		"jwt.access_expiry":      "SHOWROOMOS_JWT_ACCESS_EXPIRY",
		"jwt.refresh_expiry":     "SHOWROOMOS_JWT_REFRESH_EXPIRY",
		"jwt.issuer":             "SHOWROOMOS_JWT_ISSUER",
		"s3.region":              "SHOWROOMOS_S3_REGION",
		"s3.bucket":              "SHOWROOMOS_S3_BUCKET",
		"s3.endpoint":            "SHOWROOMOS_S3_ENDPOINT",
		"s3.access_key":          "SHOWROOMOS_S3_ACCESS_KEY",
		"s3.secret_key":          "SHOWROOMOS_S3_SECRET_KEY",
		"s3.max_file_size_mb":    "SHOWROOMOS_S3_MAX_FILE_SIZE_MB",
		"s3.presign_expiry":      "SHOWROOMOS_S3_PRESIGN_EXPIRY",
		"log.level":              "SHOWROOMOS_LOG_LEVEL",
		"log.format":             "SHOWROOMOS_LOG_FORMAT",
		"cors.allowed_origins":   "SHOWROOMOS_CORS_ALLOWED_ORIGINS",
		"email.provider":         "SHOWROOMOS_EMAIL_PROVIDER",
		"email.region":           "SHOWROOMOS_EMAIL_REGION",
		"email.from_address":     "SHOWROOMOS_EMAIL_FROM_ADDRESS",
		"email.from_name":        "SHOWROOMOS_EMAIL_FROM_NAME",
		"redis.addr":             "SHOWROOMOS_REDIS_ADDR",
		"redis.password":         "SHOWROOMOS_REDIS_PASSWORD",
		"redis.db":               "SHOWROOMOS_REDIS_DB",
		"redis.stats_ttl":        "SHOWROOMOS_REDIS_STATS_TTL",
		"tax.home_state":         "SHOWROOMOS_TAX_HOME_STATE",
		"tax.home_state_code":    "SHOWROOMOS_TAX_HOME_STATE_CODE",
		"tax.intra_state_rate":   "SHOWROOMOS_TAX_INTRA_STATE_RATE",
		"tax.inter_state_rate":   "SHOWROOMOS_TAX_INTER_STATE_RATE",
		"emi.max_tenure_months":  "SHOWROOMOS_EMI_MAX_TENURE_MONTHS",
	}
	for key, env := range envBindings {
		_ = v.BindEnv(key, env)
	}

	cfg := &Config{}

	// Railway/Heroku/Render set a PORT env var. Use it if SHOWROOMOS_SERVER_PORT is not explicitly set.
	serverPort := v.GetString("server.port")
	if port := os.Getenv("PORT"); port != "" && os.Getenv("SHOWROOMOS_SERVER_PORT") == "" {
		serverPort = ":" + port
	}

	cfg.Server = ServerConfig{
		Port:         serverPort,
		ReadTimeout:  v.GetDuration("server.read_timeout"),
		WriteTimeout: v.GetDuration("server.write_timeout"),
		Environment:  v.GetString("server.environment"),
	}
	cfg.DB = DBConfig{
		Host:     v.GetString("db.host"),
		Port:     v.GetInt("db.port"),
		User:     v.GetString("db.user"),
		Password: v.GetString("db.password"),
		Name:     v.GetString("db.name"),
		SSLMode:  v.GetString("db.sslmode"),
		MaxOpen:  v.GetInt("db.max_open"),
		MaxIdle:  v.GetInt("db.max_idle"),
	}
	cfg.JWT = JWTConfig{
		Secret:             v.GetString("jwt.secret"),
		AccessTokenExpiry:  v.GetDuration("jwt.access_expiry"),
		RefreshTokenExpiry: v.GetDuration("jwt.refresh_expiry"),
		Issuer:             v.GetString("jwt.issuer"),
	}
	cfg.S3 = S3Config{
		Region:        v.GetString("s3.region"),
		Bucket:        v.GetString("s3.bucket"),
		Endpoint:      v.GetString("s3.endpoint"),
		AccessKey:     v.GetString("s3.access_key"),
		SecretKey:     v.GetString("s3.secret_key"),
		MaxFileSizeMB: v.GetInt64("s3.max_file_size_mb"),
		PresignExpiry: v.GetInt64("s3.presign_expiry"),
	}
	cfg.Log = LogConfig{
		Level:  v.GetString("log.level"),
		Format: v.GetString("log.format"),
	}
	// allowed origins arrive as a comma-separated string
	var corsOrigins []string
	for _, o := range strings.Split(v.GetString("cors.allowed_origins"), ",") {
		o = strings.TrimSpace(o)
		if o != "" {
			corsOrigins = append(corsOrigins, o)
		}
	}
	cfg.CORS = CORSConfig{
		AllowedOrigins: corsOrigins,
	}
	cfg.Email = EmailConfig{
		Provider:    v.GetString("email.provider"),
		Region:      v.GetString("email.region"),
		FromAddress: v.GetString("email.from_address"),
		FromName:    v.GetString("email.from_name"),
	}
	cfg.Redis = RedisConfig{
		Addr:     v.GetString("redis.addr"),
		Password: v.GetString("redis.password"),
		DB:       v.GetInt("redis.db"),
		StatsTTL: v.GetDuration("redis.stats_ttl"),
	}
	cfg.Tax = TaxConfig{
		HomeState:      v.GetString("tax.home_state"),
		HomeStateCode:  v.GetString("tax.home_state_code"),
		IntraStateRate: v.GetFloat64("tax.intra_state_rate"),
		InterStateRate: v.GetFloat64("tax.inter_state_rate"),
	}
	cfg.EMI = EMIConfig{
		MaxTenureMonths: v.GetInt("emi.max_tenure_months"),
	}

	return cfg, nil
}
