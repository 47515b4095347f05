package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// EnvPrefix is applied by envconfig to every variable lookup.
const EnvPrefix = "ECOLINK"

const (
	AppEnvDev  = "development"
	AppEnvProd = "production"
)

const (
	EnvAppEnv = "ECOLINK_APP_ENV"
	EnvDBDSN  = "ECOLINK_DB_DSN"
	EnvDBHost = "ECOLINK_DB_HOST"
	EnvDBUser = "ECOLINK_DB_USER"
	EnvDBName = "ECOLINK_DB_NAME"
)

var legacyDBEnvVars = []string{EnvDBHost, EnvDBUser, EnvDBName}

// Config is the immutable process configuration, built once in main and
// handed to components explicitly.
type Config struct {
	App          AppConfig
	DB           DBConfig
	JWT          JWTConfig
	Password     PasswordConfig
	CORS         CORSConfig
	Geocoder     GeocoderConfig
	FeatureFlags FeatureFlagsConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.DB.ensureDSN(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

type AppConfig struct {
	Name         string `envconfig:"ECOLINK_PROJECT_NAME" default:"ecolink"`
	Env          string `envconfig:"ECOLINK_APP_ENV" required:"true"`
	Port         string `envconfig:"ECOLINK_APP_PORT" required:"true"`
	LogLevel     string `envconfig:"ECOLINK_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"ECOLINK_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type DBConfig struct {
	DSN    string `envconfig:"ECOLINK_DB_DSN"`
	Driver string `envconfig:"ECOLINK_DB_DRIVER" default:"postgres"`

	LegacyHost     string `envconfig:"ECOLINK_DB_HOST"`
	LegacyPort     int    `envconfig:"ECOLINK_DB_PORT" default:"5432"`
	LegacyUser     string `envconfig:"ECOLINK_DB_USER"`
	LegacyPassword string `envconfig:"ECOLINK_DB_PASSWORD"`
	LegacyName     string `envconfig:"ECOLINK_DB_NAME"`
	LegacySSLMode  string `envconfig:"ECOLINK_DB_SSLMODE" default:"disable"`

	MaxOpenConns    int           `envconfig:"ECOLINK_DB_MAX_OPEN_CONNS" default:"20"`
	MaxIdleConns    int           `envconfig:"ECOLINK_DB_MAX_IDLE_CONNS" default:"10"`
	ConnMaxLifetime time.Duration `envconfig:"ECOLINK_DB_CONN_MAX_LIFETIME" default:"1h"`
	ConnMaxIdleTime time.Duration `envconfig:"ECOLINK_DB_CONN_MAX_IDLE_TIME" default:"10m"`
}

type JWTConfig struct {
	Secret            string `envconfig:"ECOLINK_JWT_SECRET" required:"true"`
	Issuer            string `envconfig:"ECOLINK_JWT_ISSUER" required:"true"`
	ExpirationMinutes int    `envconfig:"ECOLINK_JWT_EXPIRATION_MINUTES" default:"1440"`
}

// AccessTokenTTL returns the access token lifetime configured in minutes.
func (j JWTConfig) AccessTokenTTL() time.Duration {
	if j.ExpirationMinutes <= 0 {
		return 0
	}
	return time.Duration(j.ExpirationMinutes) * time.Minute
}

type PasswordConfig struct {
	ArgonMemoryKB    int `envconfig:"ECOLINK_ARGON_MEMORY_KB" default:"65536"`
	ArgonTime        int `envconfig:"ECOLINK_ARGON_TIME" default:"3"`
	ArgonParallelism int `envconfig:"ECOLINK_ARGON_PARALLELISM" default:"2"`
	ArgonSaltLen     int `envconfig:"ECOLINK_ARGON_SALT_LEN" default:"16"`
	ArgonKeyLen      int `envconfig:"ECOLINK_ARGON_KEY_LEN" default:"32"`
}

type CORSConfig struct {
	AllowedOrigins []string `envconfig:"ECOLINK_CORS_ALLOWED_ORIGINS" required:"true"`
}

type GeocoderConfig struct {
	BaseURL   string        `envconfig:"ECOLINK_GEOCODER_BASE_URL" default:"https://nominatim.openstreetmap.org"`
	UserAgent string        `envconfig:"ECOLINK_GEOCODER_USER_AGENT" default:"EcoLink (contact@ecolink.dev)"`
	Timeout   time.Duration `envconfig:"ECOLINK_GEOCODER_TIMEOUT" default:"10s"`
}

type FeatureFlagsConfig struct {
	AutoMigrate bool `envconfig:"ECOLINK_AUTO_MIGRATE" default:"false"`
}

func (db *DBConfig) ensureDSN() error {
	if db.DSN != "" {
		return nil
	}

	missing := []string{}
	legacyValues := map[string]string{
		EnvDBHost: db.LegacyHost,
		EnvDBUser: db.LegacyUser,
		EnvDBName: db.LegacyName,
	}
	for _, env := range legacyDBEnvVars {
		if legacyValues[env] == "" {
			missing = append(missing, env)
		}
	}

	if len(missing) > 0 {
		return fmt.Errorf("either %s or %s are required", EnvDBDSN, strings.Join(missing, ", "))
	}

	userInfo := url.User(db.LegacyUser)
	if db.LegacyPassword != "" {
		userInfo = url.UserPassword(db.LegacyUser, db.LegacyPassword)
	}

	u := &url.URL{
		Scheme: "postgres",
		User:   userInfo,
		Host:   fmt.Sprintf("%s:%d", db.LegacyHost, db.LegacyPort),
		Path:   db.LegacyName,
	}

	if db.LegacySSLMode != "" {
		q := u.Query()
		q.Set("sslmode", db.LegacySSLMode)
		u.RawQuery = q.Encode()
	}

	db.DSN = u.String()
	return nil
}
