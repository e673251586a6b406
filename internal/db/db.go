package db

import (
	"context"
	"database/sql"
	"net"
	"net/url"
	"strconv"
	"strings"

	"github.com/go-sql-driver/mysql"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pkg/errors"
	"github.com/yourorg/registrocl/internal/config"
)

// Dialect describe las diferencias de SQL entre los motores soportados.
type Dialect int

const (
	Postgres Dialect = iota
	MariaDB
)

// Rebind convierte los placeholders "?" al formato del motor.
// PostgreSQL usa $1..$n; MariaDB usa "?" tal cual.
func (d Dialect) Rebind(query string) string {
	if d != Postgres {
		return query
	}
	var b strings.Builder
	b.Grow(len(query) + 16)
	n := 0
	for _, r := range query {
		if r == '?' {
			n++
			b.WriteByte('$')
			b.WriteString(strconv.Itoa(n))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

func (d Dialect) String() string {
	if d == Postgres {
		return "postgres"
	}
	return "mariadb"
}

// Connector abre una conexión nueva por cada llamada. No hay pool compartido
// entre requests: quien llama a Connect debe cerrar el *sql.DB devuelto.
type Connector struct {
	cfg config.DB
}

// NewConnector crea un Connector a partir de la configuración de base de datos.
func NewConnector(cfg config.DB) *Connector {
	return &Connector{cfg: cfg}
}

// Dialect retorna el dialecto SQL del driver configurado.
func (c *Connector) Dialect() Dialect {
	if c.cfg.Driver == "mysql" {
		return MariaDB
	}
	return Postgres
}

// DriverName es el nombre registrado en database/sql.
func (c *Connector) DriverName() string {
	if c.Dialect() == MariaDB {
		return "mysql"
	}
	return "pgx"
}

// DSN construye la cadena de conexión del driver configurado.
func (c *Connector) DSN() string {
	addr := net.JoinHostPort(c.cfg.Host, c.cfg.Port)
	if c.Dialect() == MariaDB {
		mc := mysql.NewConfig()
		mc.User = c.cfg.User
		mc.Passwd = c.cfg.Password
		mc.Net = "tcp"
		mc.Addr = addr
		mc.DBName = c.cfg.Name
		mc.ParseTime = true
		mc.Params = map[string]string{"charset": "utf8mb4,utf8"}
		return mc.FormatDSN()
	}

	u := url.URL{
		Scheme:   "postgres",
		Host:     addr,
		Path:     "/" + c.cfg.Name,
		RawQuery: url.Values{"sslmode": []string{c.cfg.SSLMode}}.Encode(),
	}
	if c.cfg.Password != "" {
		u.User = url.UserPassword(c.cfg.User, c.cfg.Password)
	} else {
		u.User = url.User(c.cfg.User)
	}
	return u.String()
}

// Connect abre y verifica una conexión nueva. No reintenta.
func (c *Connector) Connect(ctx context.Context) (*sql.DB, error) {
	conn, err := sql.Open(c.DriverName(), c.DSN())
	if err != nil {
		return nil, errors.Wrap(err, "error abriendo conexión")
	}
	// Una sola conexión física por llamada.
	conn.SetMaxOpenConns(1)
	conn.SetMaxIdleConns(1)
	if err := conn.PingContext(ctx); err != nil {
		_ = conn.Close()
		return nil, errors.Wrapf(err, "error conectando a %s en %s:%s", c.Dialect(), c.cfg.Host, c.cfg.Port)
	}
	return conn, nil
}
