// bootstrap prepara la base PostgreSQL sin levantar el servidor: crea el esquema,
// garantiza los roles Admin/User y la cuenta administradora, y purga sesiones vencidas.
//
// Uso: go run ./cmd/bootstrap [-schema-only] [-print-schema archivo.sql] [-skip-purge]
// Toma la configuración de las mismas variables que cmd/api (DATABASE_URL, ADMIN_EMAIL, ...).
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/jhoicas/EmployeePortal-api/internal/application/auth"
	"github.com/jhoicas/EmployeePortal-api/internal/infrastructure/postgres"
	"github.com/jhoicas/EmployeePortal-api/pkg/config"
	"github.com/jhoicas/EmployeePortal-api/pkg/logger"
)

func main() {
	schemaOnly := flag.Bool("schema-only", false, "solo crear el esquema")
	printSchema := flag.String("print-schema", "", "escribir el esquema SQL en el archivo indicado ('-' para stdout) y salir")
	skipPurge := flag.Bool("skip-purge", false, "no purgar sesiones vencidas")
	flag.Parse()

	if *printSchema != "" {
		if err := writeSchema(*printSchema); err != nil {
			fmt.Fprintf(os.Stderr, "Escribir esquema: %v\n", err)
			os.Exit(1)
		}
		return
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Cargar configuración: %v\n", err)
		os.Exit(1)
	}
	if cfg.DB.Driver != config.StoragePostgres {
		fmt.Fprintf(os.Stderr, "bootstrap requiere STORAGE_DRIVER=postgres (actual: %s)\n", cfg.DB.Driver)
		os.Exit(1)
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel}).Component("bootstrap")

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	if err := postgres.EnsureSchema(ctx, pool); err != nil {
		log.Fatal().Err(err).Msg("crear esquema")
	}
	log.Info().Msg("esquema listo")
	if *schemaOnly {
		return
	}

	authUC := auth.NewAuthUseCase(
		postgres.NewUserRepository(pool),
		postgres.NewRoleRepository(pool),
		postgres.NewSessionRepository(pool),
		postgres.NewTxRunner(pool),
		auth.SessionConfig{
			Secret:      cfg.Session.Secret,
			Issuer:      cfg.Session.Issuer,
			IdleTimeout: cfg.Session.IdleTimeout(),
			RememberFor: cfg.Session.RememberFor(),
		},
		auth.WithLogger(log),
	)
	if err := authUC.Bootstrap(ctx, cfg.Admin.Email, cfg.Admin.Password); err != nil {
		log.Fatal().Err(err).Msg("roles y cuenta administradora")
	}
	log.Info().Str("admin", cfg.Admin.Email).Msg("roles y administrador listos")

	if *skipPurge {
		return
	}
	n, err := authUC.PurgeExpiredSessions(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("purgar sesiones")
	}
	log.Info().Int64("deleted", n).Msg("purga de sesiones completada")
}

func writeSchema(path string) error {
	sql := postgres.SchemaSQL()
	if path == "-" {
		_, err := os.Stdout.WriteString(sql)
		return err
	}
	if err := os.WriteFile(path, []byte(sql), 0o644); err != nil {
		return err
	}
	fmt.Printf("Generado %s\n", path)
	return nil
}
