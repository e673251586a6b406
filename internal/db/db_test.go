package db

import (
	"context"
	"testing"

	"github.com/go-sql-driver/mysql"
	"github.com/stretchr/testify/require"
	"github.com/yourorg/registrocl/internal/config"
)

func TestRebind(t *testing.T) {
	query := "INSERT INTO usuarios (nombre, correo) VALUES (?, ?) RETURNING *"
	require.Equal(t,
		"INSERT INTO usuarios (nombre, correo) VALUES ($1, $2) RETURNING *",
		Postgres.Rebind(query),
	)
	require.Equal(t, query, MariaDB.Rebind(query))
}

func TestDSN(t *testing.T) {
	testCases := []struct {
		name     string
		cfg      config.DB
		driver   string
		dialect  Dialect
		expected string
	}{
		{
			name: "postgres without password",
			cfg: config.DB{
				Driver: "postgres", Name: "validation_form", User: "postgres",
				Host: "localhost", Port: "5432", SSLMode: "disable",
			},
			driver:   "pgx",
			dialect:  Postgres,
			expected: "postgres://postgres@localhost:5432/validation_form?sslmode=disable",
		},
		{
			name: "postgres with password",
			cfg: config.DB{
				Driver: "postgres", Name: "validation_form", User: "app", Password: "s3cr3t",
				Host: "db", Port: "5433", SSLMode: "require",
			},
			driver:   "pgx",
			dialect:  Postgres,
			expected: "postgres://app:s3cr3t@db:5433/validation_form?sslmode=require",
		},
	}
	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			c := NewConnector(testCase.cfg)
			require.Equal(t, testCase.driver, c.DriverName())
			require.Equal(t, testCase.dialect, c.Dialect())
			require.Equal(t, testCase.expected, c.DSN())
		})
	}
}

func TestDSNMariaDB(t *testing.T) {
	c := NewConnector(config.DB{
		Driver: "mysql", Name: "validation_form", User: "root", Password: "pw",
		Host: "127.0.0.1", Port: "3306",
	})
	require.Equal(t, "mysql", c.DriverName())
	require.Equal(t, MariaDB, c.Dialect())

	parsed, err := mysql.ParseDSN(c.DSN())
	require.NoError(t, err)
	require.Equal(t, "root", parsed.User)
	require.Equal(t, "pw", parsed.Passwd)
	require.Equal(t, "tcp", parsed.Net)
	require.Equal(t, "127.0.0.1:3306", parsed.Addr)
	require.Equal(t, "validation_form", parsed.DBName)
	require.True(t, parsed.ParseTime)
}

func TestConnectUnreachable(t *testing.T) {
	c := NewConnector(config.DB{
		Driver: "postgres", Name: "validation_form", User: "postgres",
		Host: "127.0.0.1", Port: "1", SSLMode: "disable",
	})
	conn, err := c.Connect(context.Background())
	require.Error(t, err)
	require.Nil(t, conn)
	require.Contains(t, err.Error(), "error conectando a postgres")
}
