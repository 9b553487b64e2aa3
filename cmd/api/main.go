package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jhoicas/EmployeePortal-api/docs"
	"github.com/jhoicas/EmployeePortal-api/internal/application/auth"
	"github.com/jhoicas/EmployeePortal-api/internal/application/usecase"
	"github.com/jhoicas/EmployeePortal-api/internal/domain/repository"
	"github.com/jhoicas/EmployeePortal-api/internal/infrastructure/memory"
	infrapdf "github.com/jhoicas/EmployeePortal-api/internal/infrastructure/pdf"
	"github.com/jhoicas/EmployeePortal-api/internal/infrastructure/postgres"
	"github.com/jhoicas/EmployeePortal-api/internal/infrastructure/xmlexport"
	httpRouter "github.com/jhoicas/EmployeePortal-api/internal/interfaces/http"
	"github.com/jhoicas/EmployeePortal-api/pkg/config"
	"github.com/jhoicas/EmployeePortal-api/pkg/logger"
)

const (
	swaggerFile         = "./docs/swagger.json"
	sessionPurgeEvery   = 15 * time.Minute
	shutdownGracePeriod = 10 * time.Second
)

// storage agrupa los adaptadores de persistencia elegidos por STORAGE_DRIVER.
type storage struct {
	users     repository.UserRepository
	roles     repository.RoleRepository
	sessions  repository.SessionRepository
	employees repository.EmployeeRepository
	tx        auth.TxRunner
	pool      *pgxpool.Pool
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("storage", cfg.DB.Driver).
		Msg("iniciando aplicación")

	ctx := context.Background()
	st, err := openStorage(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("inicializar almacenamiento")
	}
	if st.pool != nil {
		defer st.pool.Close()
	}

	authUC := auth.NewAuthUseCase(st.users, st.roles, st.sessions, st.tx, auth.SessionConfig{
		Secret:      cfg.Session.Secret,
		Issuer:      cfg.Session.Issuer,
		IdleTimeout: cfg.Session.IdleTimeout(),
		RememberFor: cfg.Session.RememberFor(),
	}, auth.WithLogger(log.Component("auth")))

	if err := authUC.Bootstrap(ctx, cfg.Admin.Email, cfg.Admin.Password); err != nil {
		log.Fatal().Err(err).Msg("bootstrap de roles y administrador")
	}
	if _, err := authUC.PurgeExpiredSessions(ctx); err != nil {
		log.Warn().Err(err).Msg("purga inicial de sesiones")
	}

	employeeUC := usecase.NewEmployeeUseCase(st.employees, log.Component("employees"))
	exportUC := usecase.NewExportUseCase(st.employees,
		infrapdf.NewMarotoPDFGenerator(cfg.App.Name),
		xmlexport.NewRosterXMLBuilder(),
	)

	deps := httpRouter.RouterDeps{
		AuthUC:     authUC,
		EmployeeUC: employeeUC,
		ExportUC:   exportUC,
		Cookies: httpRouter.CookieConfig{
			Name:   cfg.Session.CookieName,
			Secure: !cfg.App.IsDevelopment(),
		},
		Storage: cfg.DB.Driver,
		Log:     log,
	}
	app := httpRouter.NewApp(httpRouter.AppConfig{
		Name:        cfg.App.Name,
		Development: cfg.App.IsDevelopment(),
	}, deps)

	// Swagger UI en local: http://localhost:<port>/docs
	if _, err := os.Stat(swaggerFile); err == nil {
		docs.SwaggerInfo.Title = cfg.App.Name
		app.Use(swagger.New(swagger.Config{
			BasePath: "/",
			FilePath: swaggerFile,
			Path:     "docs",
			Title:    "Employee Portal API",
		}))
	} else {
		log.Warn().Str("file", swaggerFile).Msg("swagger.json no encontrado, /docs deshabilitado")
	}

	purgeCtx, stopPurge := context.WithCancel(ctx)
	go purgeSessions(purgeCtx, authUC, log)

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")
	stopPurge()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownGracePeriod)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}

func openStorage(ctx context.Context, cfg config.DBConfig) (*storage, error) {
	if cfg.Driver == config.StorageMemory {
		store := memory.NewStore()
		return &storage{
			users:     memory.NewUserRepository(store),
			roles:     memory.NewRoleRepository(store),
			sessions:  memory.NewSessionRepository(store),
			employees: memory.NewEmployeeRepository(store),
			tx:        memory.NewTxRunner(store),
		}, nil
	}

	pool, err := postgres.NewPool(ctx, cfg)
	if err != nil {
		return nil, err
	}
	if err := postgres.EnsureSchema(ctx, pool); err != nil {
		pool.Close()
		return nil, err
	}
	return &storage{
		users:     postgres.NewUserRepository(pool),
		roles:     postgres.NewRoleRepository(pool),
		sessions:  postgres.NewSessionRepository(pool),
		employees: postgres.NewEmployeeRepository(pool),
		tx:        postgres.NewTxRunner(pool),
		pool:      pool,
	}, nil
}

// purgeSessions elimina periódicamente sesiones vencidas hasta que ctx se cancele.
func purgeSessions(ctx context.Context, uc *auth.AuthUseCase, log *logger.Logger) {
	ticker := time.NewTicker(sessionPurgeEvery)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if _, err := uc.PurgeExpiredSessions(ctx); err != nil && ctx.Err() == nil {
				log.Warn().Err(err).Msg("purga periódica de sesiones")
			}
		}
	}
}
