package config

import (
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// ErrMissingSessionSecret se devuelve cuando SESSION_SECRET no está definido.
var ErrMissingSessionSecret = errors.New("config: SESSION_SECRET es obligatorio")

// Config agrupa la configuración de la aplicación (lectura vía Viper desde env y opcionalmente archivo).
type Config struct {
	App     AppConfig
	Log     LogConfig
	DB      DBConfig
	Session SessionConfig
	Redis   RedisConfig
	HTTP    HTTPConfig
	POS     POSConfig
	Seed    SeedConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env         string // development, staging, production
	Name        string
	EnableSetup bool // expone GET /setup (solo diagnóstico local)
}

// LogConfig nivel del logger.
type LogConfig struct {
	Level string
}

// DBConfig configuración de PostgreSQL.
// Si DatabaseURL no está vacío, se usa como connection string completo.
type DBConfig struct {
	DatabaseURL string
	Host        string
	Port        int
	User        string
	Password    string
	DBName      string
	SSLMode     string
}

// ConnectionString devuelve el DSN a usar: DATABASE_URL si está definido, si no el construido con DSN().
func (c DBConfig) ConnectionString() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}
	return c.DSN()
}

// DSN devuelve el connection string para PostgreSQL con URL encoding para caracteres especiales.
func (c DBConfig) DSN() string {
	u := &url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.User, c.Password),
		Host:     fmt.Sprintf("%s:%d", c.Host, c.Port),
		Path:     "/" + c.DBName,
		RawQuery: fmt.Sprintf("sslmode=%s", c.SSLMode),
	}
	return u.String()
}

// SessionConfig firma y vigencia de la cookie de sesión.
type SessionConfig struct {
	Secret       string
	TTL          time.Duration
	Issuer       string
	CookieSecure bool
}

// RedisConfig almacén de sesiones alternativo. URL vacía = sesiones en PostgreSQL.
type RedisConfig struct {
	URL string
}

// HTTPConfig configuración del servidor HTTP.
type HTTPConfig struct {
	Host           string
	Port           int
	LoginPerMinute int // intentos de login por IP por minuto
	LoginBurst     int
}

// Addr devuelve la dirección de escucha (host:port).
func (c HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// POSConfig política de ventas.
type POSConfig struct {
	AllowNegativeStock bool // permite vender por encima del stock (sobreventa)
	SaleRetries        int  // reintentos ante conflicto de versión en el stock
}

// SeedConfig datos iniciales.
type SeedConfig struct {
	DefaultAccounts bool // crea admin/admin123 y seller1..4/1234 si no existen
}

// Load lee la configuración desde variables de entorno (y opcionalmente desde archivo).
// Las env vars tienen prioridad. Falla si SESSION_SECRET no está definido.
func Load() (*Config, error) {
	v := viper.New()

	// Opcional: archivo de configuración (.env o config.env)
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.SetConfigName("config")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	_ = v.ReadInConfig()

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	return fromViper(v)
}

func fromViper(v *viper.Viper) (*Config, error) {
	cfg := &Config{
		App: AppConfig{
			Env:         getString(v, "APP_ENV", "development"),
			Name:        getString(v, "APP_NAME", "pos-admin"),
			EnableSetup: getBool(v, "APP_ENABLE_SETUP", false),
		},
		Log: LogConfig{
			Level: getString(v, "LOG_LEVEL", "info"),
		},
		DB: DBConfig{
			DatabaseURL: getString(v, "DATABASE_URL", ""),
			Host:        getString(v, "DB_HOST", "localhost"),
			Port:        getInt(v, "DB_PORT", 5432),
			User:        getString(v, "DB_USER", "postgres"),
			Password:    getString(v, "DB_PASSWORD", ""),
			DBName:      getString(v, "DB_NAME", "pos_admin"),
			SSLMode:     getString(v, "DB_SSLMODE", "disable"),
		},
		Session: SessionConfig{
			Secret:       getString(v, "SESSION_SECRET", ""),
			TTL:          time.Duration(getInt(v, "SESSION_TTL_MINUTES", 720)) * time.Minute,
			Issuer:       getString(v, "SESSION_ISSUER", "pos-admin"),
			CookieSecure: getBool(v, "SESSION_COOKIE_SECURE", false),
		},
		Redis: RedisConfig{
			URL: getString(v, "REDIS_URL", ""),
		},
		HTTP: HTTPConfig{
			Host:           getString(v, "HTTP_HOST", "0.0.0.0"),
			Port:           getInt(v, "HTTP_PORT", 5000),
			LoginPerMinute: getInt(v, "LOGIN_RATE_PER_MINUTE", 10),
			LoginBurst:     getInt(v, "LOGIN_BURST", 5),
		},
		POS: POSConfig{
			AllowNegativeStock: getBool(v, "POS_ALLOW_NEGATIVE_STOCK", false),
			SaleRetries:        getInt(v, "POS_SALE_RETRIES", 3),
		},
		Seed: SeedConfig{
			DefaultAccounts: getBool(v, "SEED_DEFAULT_ACCOUNTS", true),
		},
	}

	if strings.TrimSpace(cfg.Session.Secret) == "" {
		return nil, ErrMissingSessionSecret
	}
	if cfg.Session.TTL <= 0 {
		return nil, fmt.Errorf("config: SESSION_TTL_MINUTES debe ser positivo")
	}
	if cfg.POS.SaleRetries < 1 {
		cfg.POS.SaleRetries = 1
	}
	return cfg, nil
}

func getString(v *viper.Viper, key, def string) string {
	if v.IsSet(key) {
		return v.GetString(key)
	}
	return def
}

func getInt(v *viper.Viper, key string, def int) int {
	if v.IsSet(key) {
		switch v.Get(key).(type) {
		case int:
			return v.GetInt(key)
		case string:
			n, err := strconv.Atoi(strings.TrimSpace(v.GetString(key)))
			if err != nil {
				return def
			}
			return n
		default:
			return v.GetInt(key)
		}
	}
	return def
}

func getBool(v *viper.Viper, key string, def bool) bool {
	if !v.IsSet(key) {
		return def
	}
	b, err := strconv.ParseBool(strings.TrimSpace(v.GetString(key)))
	if err != nil {
		return def
	}
	return b
}
