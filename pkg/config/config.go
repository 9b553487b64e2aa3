package config

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config agrupa la configuración de la aplicación (lectura vía Viper desde env y opcionalmente archivo).
type Config struct {
	App     AppConfig
	DB      DBConfig
	Session SessionConfig
	Admin   AdminConfig
	HTTP    HTTPConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env      string // development, staging, production
	Name     string
	LogLevel string
}

// IsDevelopment indica si la app corre en modo desarrollo.
func (c AppConfig) IsDevelopment() bool {
	return c.Env == "development"
}

// Drivers de almacenamiento soportados.
const (
	StoragePostgres = "postgres"
	StorageMemory   = "memory"
)

// DBConfig configuración de PostgreSQL.
// Si DatabaseURL no está vacío, se usa como connection string completo.
type DBConfig struct {
	Driver      string // postgres | memory
	DatabaseURL string
	Host        string
	Port        int
	User        string
	Password    string
	DBName      string
	SSLMode     string
	MaxConns    int
	ForceIPv4   bool // resuelve el host a IPv4 antes de conectar (contenedores sin IPv6)
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

// SessionConfig configuración de la sesión del lado del servidor y de la cookie firmada.
type SessionConfig struct {
	Secret       string
	CookieName   string
	IdleMinutes  int // expiración por inactividad
	RememberDays int // vida de la cookie persistente ("recordarme")
	Issuer       string
}

// IdleTimeout devuelve la expiración por inactividad como time.Duration.
func (c SessionConfig) IdleTimeout() time.Duration {
	return time.Duration(c.IdleMinutes) * time.Minute
}

// RememberFor devuelve la vida de la cookie persistente.
func (c SessionConfig) RememberFor() time.Duration {
	return time.Duration(c.RememberDays) * 24 * time.Hour
}

// AdminConfig credencial de la cuenta administradora sembrada al arrancar.
// Sin password no se siembra la cuenta.
type AdminConfig struct {
	Email    string
	Password string
}

// HTTPConfig configuración del servidor HTTP.
type HTTPConfig struct {
	Host string
	Port int
}

// Addr devuelve la dirección de escucha (host:port).
func (c HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// Load lee la configuración desde variables de entorno (y opcionalmente desde archivo).
// Las env vars tienen prioridad. Nombres esperados: APP_ENV, DB_HOST, SESSION_SECRET, etc.
func Load() (*Config, error) {
	v := viper.New()

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

	cfg := &Config{
		App: AppConfig{
			Env:      getString(v, "APP_ENV", "development"),
			Name:     getString(v, "APP_NAME", "employee-portal"),
			LogLevel: getString(v, "LOG_LEVEL", "info"),
		},
		DB: DBConfig{
			Driver:      strings.ToLower(getString(v, "STORAGE_DRIVER", StoragePostgres)),
			DatabaseURL: getString(v, "DATABASE_URL", ""),
			Host:        getString(v, "DB_HOST", "localhost"),
			Port:        getInt(v, "DB_PORT", 5432),
			User:        getString(v, "DB_USER", "postgres"),
			Password:    getString(v, "DB_PASSWORD", ""),
			DBName:      getString(v, "DB_NAME", "employee_portal"),
			SSLMode:     getString(v, "DB_SSLMODE", "disable"),
			MaxConns:    getInt(v, "DB_MAX_CONNS", 25),
			ForceIPv4:   getBool(v, "DB_FORCE_IPV4", false),
		},
		Session: SessionConfig{
			Secret:       getString(v, "SESSION_SECRET", ""),
			CookieName:   getString(v, "SESSION_COOKIE_NAME", "session"),
			IdleMinutes:  getInt(v, "SESSION_IDLE_MINUTES", 30),
			RememberDays: getInt(v, "SESSION_REMEMBER_DAYS", 14),
			Issuer:       getString(v, "SESSION_ISSUER", "employee-portal"),
		},
		Admin: AdminConfig{
			Email:    getString(v, "ADMIN_EMAIL", "admin@employeeportal.local"),
			Password: getString(v, "ADMIN_PASSWORD", ""),
		},
		HTTP: HTTPConfig{
			Host: getString(v, "HTTP_HOST", "0.0.0.0"),
			Port: getInt(v, "HTTP_PORT", 8080),
		},
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.DB.Driver != StoragePostgres && c.DB.Driver != StorageMemory {
		return fmt.Errorf("config: STORAGE_DRIVER inválido %q (postgres|memory)", c.DB.Driver)
	}
	if c.Session.Secret == "" {
		if !c.App.IsDevelopment() {
			return fmt.Errorf("config: SESSION_SECRET es obligatorio fuera de development")
		}
		c.Session.Secret = "dev-only-session-secret"
	}
	if c.DB.MaxConns <= 0 {
		c.DB.MaxConns = 25
	}
	if c.Session.IdleMinutes <= 0 {
		c.Session.IdleMinutes = 30
	}
	if c.Session.RememberDays <= 0 {
		c.Session.RememberDays = 14
	}
	return nil
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
			n, err := strconv.Atoi(v.GetString(key))
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
	if v.IsSet(key) {
		return v.GetBool(key)
	}
	return def
}
