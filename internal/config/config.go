// Package config loads the service configuration from a yaml file, with every
// value overridable from the environment.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/robfig/cron/v3"
)

// Config is the root configuration.
type Config struct {
	Environment string `env:"ENVIRONMENT" env-default:"development" yaml:"environment"`
	// LogLevel overrides the default level of the environment when set.
	LogLevel string `env:"LOG_LEVEL" yaml:"logLevel"`

	HTTP struct {
		Addr              string        `env:"HTTP_ADDR"                env-default:":8080"    yaml:"addr"`
		ReadTimeout       time.Duration `env:"HTTP_READ_TIMEOUT"        env-default:"1m"       yaml:"readTimeout"`
		ReadHeaderTimeout time.Duration `env:"HTTP_READ_HEADER_TIMEOUT" env-default:"10s"      yaml:"readHeaderTimeout"`
		WriteTimeout      time.Duration `env:"HTTP_WRITE_TIMEOUT"       env-default:"2m"       yaml:"writeTimeout"`
		IdleTimeout       time.Duration `env:"HTTP_IDLE_TIMEOUT"        env-default:"2m"       yaml:"idleTimeout"`
		// RequestTimeout bounds a single request, DNS lookups included.
		RequestTimeout time.Duration `env:"HTTP_REQUEST_TIMEOUT"   env-default:"30s"      yaml:"requestTimeout"`
		MaxHeaderBytes int           `env:"HTTP_MAX_HEADER_BYTES"  env-default:"0"        yaml:"maxHeaderBytes"`
		MetricsPath    string        `env:"HTTP_METRICS_PATH"      env-default:"/metrics" yaml:"metricsPath"`
		// AllowedOrigins lists CORS origins. "*" allows any origin.
		AllowedOrigins []string `env:"HTTP_ALLOWED_ORIGINS" env-default:"*" yaml:"allowedOrigins"`
	} `yaml:"http"`

	Database struct {
		Username           string        `env:"DATABASE_USERNAME"                 env-default:"orgdomain" yaml:"username"`
		Password           string        `env:"DATABASE_PASSWORD"                 env-default:"orgdomain" yaml:"password"`
		Host               string        `env:"DATABASE_HOST"                     env-default:"localhost" yaml:"host"`
		Port               int           `env:"DATABASE_PORT"                     env-default:"5432"      yaml:"port"`
		SslMode            string        `env:"DATABASE_SSL_MODE"                 env-default:"disable"   yaml:"sslMode"`
		DatabaseName       string        `env:"DATABASE_NAME"                     env-default:"orgdomain" yaml:"name"`
		MaxOpenConnections int           `env:"DATABASE_MAX_OPEN_CONNECTIONS"     env-default:"10"        yaml:"maxOpenConnections"`
		MaxIdleConnections int           `env:"DATABASE_MAX_IDLE_CONNECTIONS"     env-default:"2"         yaml:"maxIdleConnections"`
		ConnMaxLifetime    time.Duration `env:"DATABASE_CONNECTION_MAX_LIFETIME"  env-default:"3m"        yaml:"connMaxLifetime"`
		ConnMaxIdleTime    time.Duration `env:"DATABASE_CONNECTION_MAX_IDLE_TIME" env-default:"3m"        yaml:"connMaxIdleTime"`
	} `yaml:"database"`

	JWT struct {
		// PublicKey is the PEM encoded RSA key used to verify bearer tokens.
		PublicKey string `env:"JWT_PUBLIC_KEY" yaml:"publicKey"`
		// PrivateKey is only needed by the jwt command to mint tokens.
		PrivateKey string `env:"JWT_PRIVATE_KEY" yaml:"privateKey"`
	} `yaml:"jwt"`

	DNS struct {
		// Nameservers default to the ones in /etc/resolv.conf.
		Nameservers []string      `env:"DNS_NAMESERVERS"  yaml:"nameservers"`
		Timeout     time.Duration `env:"DNS_TIMEOUT"      env-default:"5s"   yaml:"timeout"`
		TCPFallback bool          `env:"DNS_TCP_FALLBACK" env-default:"true" yaml:"tcpFallback"`
	} `yaml:"dns"`

	DomainVerification struct {
		// Interval is how long a failed background check waits before the next one.
		Interval time.Duration `env:"DOMAIN_VERIFICATION_INTERVAL" env-default:"12h" yaml:"interval"`
		// MaxJobRunCount is the number of background checks after which a claim
		// is no longer picked up by the sweep.
		MaxJobRunCount int `env:"DOMAIN_VERIFICATION_MAX_JOB_RUN_COUNT" env-default:"3" yaml:"maxJobRunCount"`
		// BatchSize is the number of due claims loaded per sweep query.
		BatchSize uint `env:"DOMAIN_VERIFICATION_BATCH_SIZE" env-default:"100" yaml:"batchSize"`
		// Schedule is a standard cron expression for the sweep.
		Schedule string `env:"DOMAIN_VERIFICATION_SCHEDULE" env-default:"0 */12 * * *" yaml:"schedule"`
		// MaxAttempts bounds river retries of a single verification job.
		MaxAttempts int `env:"DOMAIN_VERIFICATION_MAX_ATTEMPTS" env-default:"5" yaml:"maxAttempts"`
		// MaxWorkers bounds concurrently running verification jobs.
		MaxWorkers int `env:"DOMAIN_VERIFICATION_MAX_WORKERS" env-default:"10" yaml:"maxWorkers"`
	} `yaml:"domainVerification"`

	GracefulShutdownTimeout time.Duration `env:"GRACEFUL_SHUTDOWN_TIMEOUT" env-default:"10s" yaml:"gracefulShutdownTimeout"` //nolint: lll
}

// Load reads the yaml file at configPath, applies environment overrides and
// validates the result.
func Load(configPath string) (*Config, error) {
	var cfg Config
	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		return nil, fmt.Errorf("could not read config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks values that cleanenv cannot.
func (c *Config) Validate() error {
	dv := c.DomainVerification
	switch {
	case dv.Interval <= 0:
		return errors.New("domainVerification.interval must be positive")
	case dv.MaxJobRunCount <= 0:
		return errors.New("domainVerification.maxJobRunCount must be positive")
	case dv.BatchSize == 0:
		return errors.New("domainVerification.batchSize must be positive")
	case dv.MaxWorkers <= 0:
		return errors.New("domainVerification.maxWorkers must be positive")
	}

	if _, err := cron.ParseStandard(dv.Schedule); err != nil {
		return fmt.Errorf("invalid domainVerification.schedule: %w", err)
	}

	return nil
}
