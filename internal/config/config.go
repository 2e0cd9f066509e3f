package config

import (
	"fmt"
	"time"

	cleanenvport "github.com/wb-go/wbf/config/cleanenv-port"
	"github.com/wb-go/wbf/logger"
)

type Config struct {
	Server   ServerConfig   `yaml:"server"   validate:"required"`
	Logger   LoggerConfig   `yaml:"logger"   validate:"required"`
	Gin      GinConfig      `yaml:"gin"      validate:"required"`
	Postgres PostgresConfig `yaml:"postgres" validate:"required"`
	Storage  StorageConfig  `yaml:"storage"  validate:"required"`
	Redis    RedisConfig    `yaml:"redis"`
	Auth     AuthConfig     `yaml:"auth"     validate:"required"`
	SignIn   SignInConfig   `yaml:"sign_in"  validate:"required"`
	Metrics  MetricsConfig  `yaml:"metrics"`
}

type ServerConfig struct {
	Addr         string        `yaml:"addr"          env:"SERVER_ADDR"          env-default:":8080" validate:"required"`
	ReadTimeout  time.Duration `yaml:"read_timeout"  env:"SERVER_READ_TIMEOUT"  env-default:"10s"   validate:"gt=0"`
	WriteTimeout time.Duration `yaml:"write_timeout" env:"SERVER_WRITE_TIMEOUT" env-default:"10s"   validate:"gt=0"`
	IdleTimeout  time.Duration `yaml:"idle_timeout"  env:"SERVER_IDLE_TIMEOUT"  env-default:"60s"   validate:"gt=0"`
}

// LogLevel maps the configured level onto wbf's logger.Level.
func (c LoggerConfig) LogLevel() logger.Level {
	switch c.Level {
	case "debug":
		return logger.DebugLevel
	case "warn":
		return logger.WarnLevel
	case "error":
		return logger.ErrorLevel
	default:
		return logger.InfoLevel
	}
}

func (c LoggerConfig) LogEngine() logger.Engine {
	return logger.Engine(c.Engine)
}

type LoggerConfig struct {
	Engine string `yaml:"engine" env:"LOG_ENGINE" env-default:"slog"  validate:"required,oneof=slog zap zerolog logrus"`
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"  validate:"required,oneof=debug info warn error"`
}

type GinConfig struct {
	Mode string `yaml:"mode" env:"GIN_MODE" env-default:"debug" validate:"required,oneof=debug release test"`
}

type PostgresConfig struct {
	Host            string        `yaml:"host"              env:"DB_HOST"              env-default:"localhost"     validate:"required"`
	Port            int           `yaml:"port"              env:"DB_PORT"              env-default:"5432"          validate:"required,min=1,max=65535"`
	User            string        `yaml:"user"              env:"DB_USER"              env-default:"postgres"      validate:"required"`
	Password        string        `yaml:"password"          env:"DB_PASSWORD"          env-default:"postgres"      validate:"required"`
	Database        string        `yaml:"database"          env:"DB_NAME"              env-default:"sports_events" validate:"required"`
	SSLMode         string        `yaml:"sslmode"           env:"DB_SSLMODE"           env-default:"disable"       validate:"required,oneof=disable require verify-ca verify-full"`
	MaxOpenConns    int           `yaml:"max_open_conns"    env:"DB_MAX_OPEN_CONNS"    env-default:"10"            validate:"min=1"`
	MaxIdleConns    int           `yaml:"max_idle_conns"    env:"DB_MAX_IDLE_CONNS"    env-default:"5"             validate:"min=1"`
	ConnMaxLifetime time.Duration `yaml:"conn_max_lifetime" env:"DB_CONN_MAX_LIFETIME" env-default:"5m"            validate:"gt=0"`
}

func (p *PostgresConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		p.Host, p.Port, p.User, p.Password, p.Database, p.SSLMode,
	)
}

// StorageConfig controls how the event/venue writes hit Postgres.
// With AtomicWrites off every statement commits on its own.
type StorageConfig struct {
	AtomicWrites   bool          `yaml:"atomic_writes"    env:"STORAGE_ATOMIC_WRITES"    env-default:"true"`
	ReadAttempts   int           `yaml:"read_attempts"    env:"STORAGE_READ_ATTEMPTS"    env-default:"1"     validate:"min=1,max=10"`
	ReadRetryDelay time.Duration `yaml:"read_retry_delay" env:"STORAGE_READ_RETRY_DELAY" env-default:"200ms" validate:"gte=0"`
}

// RedisConfig is optional; an empty Addr disables sign-out revocation and
// sign-in throttling.
type RedisConfig struct {
	Addr     string `yaml:"addr"     env:"REDIS_ADDR"     env-default:""`
	Password string `yaml:"password" env:"REDIS_PASSWORD" env-default:""`
	DB       int    `yaml:"db"       env:"REDIS_DB"       env-default:"0" validate:"min=0"`
}

type AuthConfig struct {
	JWTSecret  string        `yaml:"jwt_secret"  env:"AUTH_JWT_SECRET"  validate:"required,min=16"`
	TokenTTL   time.Duration `yaml:"token_ttl"   env:"AUTH_TOKEN_TTL"   env-default:"24h" validate:"gt=0"`
	BcryptCost int           `yaml:"bcrypt_cost" env:"AUTH_BCRYPT_COST" env-default:"10"  validate:"min=4,max=31"`
}

type SignInConfig struct {
	MaxAttempts int           `yaml:"max_attempts" env:"SIGNIN_MAX_ATTEMPTS" env-default:"5"   validate:"min=1"`
	Window      time.Duration `yaml:"window"       env:"SIGNIN_WINDOW"       env-default:"15m" validate:"gt=0"`
}

type MetricsConfig struct {
	Enabled bool `yaml:"enabled" env:"METRICS_ENABLED" env-default:"true"`
}

func MustLoad() *Config {
	var cfg Config
	if err := cleanenvport.Load(&cfg); err != nil {
		panic(fmt.Sprintf("failed to load config: %v", err))
	}
	return &cfg
}
