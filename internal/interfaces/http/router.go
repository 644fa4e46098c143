package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/MaxAPBusiness/Proyecto-Taller/internal/application/audit"
	"github.com/MaxAPBusiness/Proyecto-Taller/internal/application/auth"
	"github.com/MaxAPBusiness/Proyecto-Taller/internal/application/inventory"
	"github.com/MaxAPBusiness/Proyecto-Taller/internal/application/people"
	"github.com/MaxAPBusiness/Proyecto-Taller/internal/application/shift"
	"github.com/MaxAPBusiness/Proyecto-Taller/internal/domain/entity"
	"github.com/MaxAPBusiness/Proyecto-Taller/internal/domain/repository"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC           *auth.AuthUseCase
	StockUC          *inventory.StockUseCase
	RegisterMovement *inventory.RegisterMovementUseCase
	MovementQuery    *inventory.MovementQueryUseCase
	DebtUC           *inventory.DebtUseCase
	DebtReport       *inventory.DebtReportUseCase
	RepairUC         *inventory.RepairUseCase
	ShiftUC          *shift.UseCase
	AuditUC          *audit.UseCase
	PeopleUC         *people.UseCase
	CatalogRepo      repository.CatalogRepository
	JWTSecret        string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Las altas, ediciones y eliminaciones de gestión quedan reservadas al
	// Director de Taller; el resto del personal autenticado sólo consulta.
	director := RequireClass(entity.ClassDirector)

	// Stock (protegido; escritura sólo director)
	stock := protected.Group("/stock")
	stockHandler := NewStockHandler(deps.StockUC)
	stock.Get("/", stockHandler.List)
	stock.Get("/:id", stockHandler.GetByID)
	stock.Post("/", director, stockHandler.Create)
	stock.Put("/:id", director, stockHandler.Update)
	stock.Delete("/:id", director, stockHandler.Delete)

	// Movimientos (protegido)
	movements := protected.Group("/movements")
	movementHandler := NewMovementHandler(deps.RegisterMovement, deps.MovementQuery)
	movements.Post("/", movementHandler.Register)
	movements.Get("/", movementHandler.List)
	movements.Get("/:id", movementHandler.GetByID)

	// Deudas (protegido)
	debts := protected.Group("/debts")
	debtHandler := NewDebtHandler(deps.DebtUC, deps.DebtReport)
	debts.Get("/", debtHandler.List)
	debts.Get("/report", debtHandler.Report)

	// Reparaciones (protegido)
	repairs := protected.Group("/repairs")
	repairHandler := NewRepairHandler(deps.RepairUC)
	repairs.Get("/", repairHandler.List)
	repairs.Post("/:id/close", repairHandler.Close)

	// Turnos (protegido)
	shifts := protected.Group("/shifts")
	shiftHandler := NewShiftHandler(deps.ShiftUC)
	shifts.Post("/", shiftHandler.Open)
	shifts.Post("/close", shiftHandler.Close)
	shifts.Get("/current", shiftHandler.Current)
	shifts.Get("/", shiftHandler.List)

	// Historial (protegido; sólo director)
	auditGroup := protected.Group("/audit", director)
	auditHandler := NewAuditHandler(deps.AuditUC)
	auditGroup.Get("/", auditHandler.List)

	// Directorio de personas (protegido; escritura sólo director)
	peopleGroup := protected.Group("/people")
	peopleHandler := NewPeopleHandler(deps.PeopleUC)
	peopleGroup.Get("/", peopleHandler.List)
	peopleGroup.Get("/:id", peopleHandler.GetByID)
	peopleGroup.Post("/", director, peopleHandler.Create)
	peopleGroup.Delete("/:id", director, peopleHandler.Delete)

	// Catálogos (protegido, sólo lectura)
	catalogs := protected.Group("/catalogs")
	catalogHandler := NewCatalogHandler(deps.CatalogRepo)
	catalogs.Get("/groups", catalogHandler.ListGroups)
	catalogs.Get("/subgroups", catalogHandler.ListSubgroups)
	catalogs.Get("/locations", catalogHandler.ListLocations)
	catalogs.Get("/classes", catalogHandler.ListClasses)
}
