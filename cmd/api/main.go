// @title        POS Admin API
// @version      1.0
// @description  Administración de punto de venta: catálogo, ventas, usuarios y exportes.
// @BasePath     /
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	_ "github.com/jhoicas/pos-admin/docs"
	"github.com/jhoicas/pos-admin/internal/application/auth"
	"github.com/jhoicas/pos-admin/internal/application/bootstrap"
	"github.com/jhoicas/pos-admin/internal/application/sales"
	"github.com/jhoicas/pos-admin/internal/application/usecase"
	"github.com/jhoicas/pos-admin/internal/domain/repository"
	infrapdf "github.com/jhoicas/pos-admin/internal/infrastructure/pdf"
	"github.com/jhoicas/pos-admin/internal/infrastructure/postgres"
	"github.com/jhoicas/pos-admin/internal/infrastructure/redisstore"
	httpRouter "github.com/jhoicas/pos-admin/internal/interfaces/http"
	"github.com/jhoicas/pos-admin/pkg/config"
	"github.com/jhoicas/pos-admin/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		App:   cfg.App.Name,
		Env:   cfg.App.Env,
		Level: cfg.Log.Level,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	if err := postgres.Migrate(ctx, pool, log.Component("migrate")); err != nil {
		log.Fatal().Err(err).Msg("migraciones")
	}

	// Sesiones: Redis si REDIS_URL está definido, si no PostgreSQL.
	var sessions repository.SessionStore = postgres.NewSessionRepository(pool)
	if cfg.Redis.URL != "" {
		redisSessions, err := redisstore.New(ctx, cfg.Redis.URL)
		if err != nil {
			log.Fatal().Err(err).Msg("conexión a Redis")
		}
		defer redisSessions.Close()
		sessions = redisSessions
		log.Info().Msg("sesiones en Redis")
	}

	userRepo := postgres.NewUserRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	saleRepo := postgres.NewSaleRepository(pool)
	reportRepo := postgres.NewReportRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	userUC := usecase.NewUserUseCase(userRepo, sessions, log.Component("users"))
	productUC := usecase.NewProductUseCase(productRepo)
	salesUC := sales.NewUseCase(txRunner, saleRepo, sales.Policy{
		AllowNegativeStock: cfg.POS.AllowNegativeStock,
		MaxAttempts:        cfg.POS.SaleRetries,
	}, log.Component("sales"))
	reportUC := usecase.NewReportUseCase(reportRepo, productRepo, userRepo, infrapdf.NewMarotoPDFGenerator(cfg.App.Name))
	authUC := auth.NewAuthUseCase(userUC, userRepo, sessions, auth.SessionConfig{
		Secret: cfg.Session.Secret,
		TTL:    cfg.Session.TTL,
		Issuer: cfg.Session.Issuer,
	}, log.Component("auth"))

	if cfg.Seed.DefaultAccounts {
		if err := bootstrap.SeedAccounts(ctx, userUC, bootstrap.DefaultAccounts, log.Component("seed")); err != nil {
			log.Fatal().Err(err).Msg("seed de cuentas")
		}
	}

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(httpRouter.RequestLogger(log.Component("http")))

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "POS Admin API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:       authUC,
		ProductUC:    productUC,
		UserUC:       userUC,
		SalesUC:      salesUC,
		ReportUC:     reportUC,
		LoginLimiter: httpRouter.NewLoginLimiter(cfg.HTTP.LoginPerMinute, cfg.HTTP.LoginBurst),
		CookieSecure: cfg.Session.CookieSecure,
		EnableSetup:  cfg.App.EnableSetup,
		Log:          log.Component("http"),
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
