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

	appaudit "github.com/MaxAPBusiness/Proyecto-Taller/internal/application/audit"
	"github.com/MaxAPBusiness/Proyecto-Taller/internal/application/auth"
	"github.com/MaxAPBusiness/Proyecto-Taller/internal/application/inventory"
	"github.com/MaxAPBusiness/Proyecto-Taller/internal/application/people"
	appshift "github.com/MaxAPBusiness/Proyecto-Taller/internal/application/shift"
	infrapdf "github.com/MaxAPBusiness/Proyecto-Taller/internal/infrastructure/pdf"
	"github.com/MaxAPBusiness/Proyecto-Taller/internal/infrastructure/postgres"
	httpRouter "github.com/MaxAPBusiness/Proyecto-Taller/internal/interfaces/http"
	"github.com/MaxAPBusiness/Proyecto-Taller/pkg/config"
	"github.com/MaxAPBusiness/Proyecto-Taller/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
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

	stockRepo := postgres.NewStockRepository(pool)
	movementRepo := postgres.NewMovementRepository(pool)
	shiftRepo := postgres.NewShiftRepository(pool)
	personRepo := postgres.NewPersonRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	auditRepo := postgres.NewAuditRepository(pool)
	repairRepo := postgres.NewRepairRepository(pool)
	catalogRepo := postgres.NewCatalogRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	auditUC := appaudit.NewUseCase(auditRepo)
	stockUC := inventory.NewStockUseCase(stockRepo, catalogRepo, auditUC)
	registerMovementUC := inventory.NewRegisterMovementUseCase(txRunner, personRepo)
	movementQueryUC := inventory.NewMovementQueryUseCase(movementRepo)
	debtUC := inventory.NewDebtUseCase(movementRepo)
	repairUC := inventory.NewRepairUseCase(repairRepo)
	shiftUC := appshift.NewUseCase(txRunner, shiftRepo, personRepo)
	peopleUC := people.NewUseCase(personRepo, catalogRepo, auditUC)

	// PDF: resumen de deudas pendientes
	debtReportGen := infrapdf.NewMarotoDebtReport()
	debtReportUC := inventory.NewDebtReportUseCase(debtUC, debtReportGen)

	authUC := auth.NewAuthUseCase(userRepo, personRepo, catalogRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Pañol API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:           authUC,
		StockUC:          stockUC,
		RegisterMovement: registerMovementUC,
		MovementQuery:    movementQueryUC,
		DebtUC:           debtUC,
		DebtReport:       debtReportUC,
		RepairUC:         repairUC,
		ShiftUC:          shiftUC,
		AuditUC:          auditUC,
		PeopleUC:         peopleUC,
		CatalogRepo:      catalogRepo,
		JWTSecret:        cfg.JWT.Secret,
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
