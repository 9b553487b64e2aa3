package postgres

import (
	"context"
	"fmt"
	"strings"
)

// schemaStatements crea las tablas si no existen. Se ejecutan en orden.
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id            UUID PRIMARY KEY,
		email         TEXT NOT NULL,
		password_hash TEXT NOT NULL,
		created_at    TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at    TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE UNIQUE INDEX IF NOT EXISTS users_email_lower_key ON users (lower(email))`,
	`CREATE TABLE IF NOT EXISTS roles (
		name TEXT PRIMARY KEY
	)`,
	`CREATE TABLE IF NOT EXISTS user_roles (
		user_id     UUID NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		role_name   TEXT NOT NULL REFERENCES roles(name),
		assigned_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		PRIMARY KEY (user_id, role_name)
	)`,
	`CREATE TABLE IF NOT EXISTS sessions (
		id           UUID PRIMARY KEY,
		user_id      UUID NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		username     TEXT NOT NULL,
		role         TEXT NOT NULL,
		remember_me  BOOLEAN NOT NULL DEFAULT false,
		created_at   TIMESTAMPTZ NOT NULL DEFAULT now(),
		last_seen_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		revoked      BOOLEAN NOT NULL DEFAULT false
	)`,
	`CREATE INDEX IF NOT EXISTS sessions_last_seen_idx ON sessions (last_seen_at)`,
	`CREATE TABLE IF NOT EXISTS employees (
		id            BIGSERIAL PRIMARY KEY,
		full_name     TEXT NOT NULL,
		email         TEXT NOT NULL DEFAULT '',
		department    TEXT NOT NULL CHECK (department IN ('IT', 'HR', 'Sales', 'Admin')),
		employee_type TEXT NOT NULL CHECK (employee_type IN ('FullTime', 'PartTime', 'Contract', 'Intern')),
		position      TEXT NOT NULL,
		salary        NUMERIC(18,2) NOT NULL CHECK (salary >= 0),
		created_at    TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at    TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE INDEX IF NOT EXISTS employees_department_idx ON employees (department)`,
}

// EnsureSchema crea el esquema mínimo. Idempotente.
func EnsureSchema(ctx context.Context, q Querier) error {
	for i, stmt := range schemaStatements {
		if _, err := q.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("schema statement %d: %w", i+1, err)
		}
	}
	return nil
}

// SchemaSQL devuelve el esquema como script SQL ejecutable con psql.
func SchemaSQL() string {
	var b strings.Builder
	b.WriteString("-- Esquema employee-portal (generado por cmd/bootstrap)\n\n")
	for _, stmt := range schemaStatements {
		b.WriteString(stmt)
		b.WriteString(";\n\n")
	}
	return b.String()
}
