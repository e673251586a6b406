package config

import (
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/pkg/errors"
	"golang.org/x/crypto/bcrypt"
)

// devJWTSecret solo se usa fuera de producción cuando JWT_SECRET no está definido.
const devJWTSecret = "dev-secret-change-me-please-32-chars"

// DB agrupa las opciones de conexión {dbname, user, password, host}.
// Las claves salen del nombre del campo (DB_NAME, DB_USER, ...): un tag
// envconfig haría que USER o HOST del entorno se usaran como respaldo.
type DB struct {
	Driver   string `default:"postgres"`
	Name     string `default:"validation_form"`
	User     string `default:"postgres"`
	Password string
	Host     string `default:"localhost"`
	Port     string
	SSLMode  string `default:"disable"`
}

// JWT configura la emisión de tokens de /login (JWT_SECRET, JWT_TTL).
type JWT struct {
	Secret string
	TTL    time.Duration `default:"24h"`
}

// Config es la configuración completa del proceso.
type Config struct {
	Env            string `envconfig:"ENV" default:"development"`
	Host           string `envconfig:"HOST" default:"localhost"`
	Port           string `envconfig:"PORT" default:"8000"`
	BcryptCost     int    `envconfig:"BCRYPT_COST" default:"12"`
	LoginRateLimit int    `envconfig:"LOGIN_RATE_LIMIT" default:"10"`
	DB             DB     `envconfig:"DB"`
	JWT            JWT    `envconfig:"JWT"`
}

// Load lee el archivo .env (si existe) y luego el entorno.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No se encontró archivo .env, usando variables de entorno")
	}
	return FromEnv()
}

// FromEnv decodifica y valida la configuración desde el entorno actual.
func FromEnv() (Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return cfg, errors.Wrap(err, "error leyendo configuración del entorno")
	}
	if err := cfg.normalize(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// IsProduction indica si el proceso corre con ENV=production.
func (c Config) IsProduction() bool {
	return strings.EqualFold(c.Env, "production")
}

// Addr es la dirección host:puerto donde escucha el servidor.
func (c Config) Addr() string {
	return c.Host + ":" + c.Port
}

func (c *Config) normalize() error {
	c.DB.Driver = strings.ToLower(strings.TrimSpace(c.DB.Driver))
	switch c.DB.Driver {
	case "postgres":
		if c.DB.Port == "" {
			c.DB.Port = "5432"
		}
	case "mysql":
		if c.DB.Port == "" {
			c.DB.Port = "3306"
		}
	default:
		return errors.Errorf("DB_DRIVER no soportado: %q (use postgres o mysql)", c.DB.Driver)
	}

	if c.BcryptCost < bcrypt.MinCost || c.BcryptCost > bcrypt.MaxCost {
		return errors.Errorf(
			"BCRYPT_COST debe estar entre %d y %d (actual: %d)",
			bcrypt.MinCost, bcrypt.MaxCost, c.BcryptCost,
		)
	}

	if c.LoginRateLimit <= 0 {
		return errors.Errorf("LOGIN_RATE_LIMIT debe ser positivo (actual: %d)", c.LoginRateLimit)
	}

	if c.JWT.TTL <= 0 {
		return errors.Errorf("JWT_TTL inválido: %s", c.JWT.TTL)
	}
	if c.JWT.Secret == "" {
		if c.IsProduction() {
			return errors.New("JWT_SECRET es obligatorio en producción")
		}
		log.Println("⚠️ WARNING: usando JWT secret por defecto (solo desarrollo)")
		c.JWT.Secret = devJWTSecret
	}
	if len(c.JWT.Secret) < 32 {
		return errors.Errorf("JWT_SECRET debe tener al menos 32 caracteres (actual: %d)", len(c.JWT.Secret))
	}
	return nil
}
