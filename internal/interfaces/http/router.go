package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC       authService
	ProductUC    productService
	UserUC       userService
	SalesUC      salesService
	ReportUC     reportService
	LoginLimiter *LoginLimiter // nil = sin límite de intentos
	CookieSecure bool
	EnableSetup  bool // registra GET /setup
	Log          zerolog.Logger
}

// Router registra las rutas de la aplicación.
func Router(app *fiber.App, deps RouterDeps) {
	app.Use(SessionMiddleware(deps.AuthUC, deps.Log))

	// Auth (público)
	authHandler := NewAuthHandler(deps.AuthUC, deps.CookieSecure, deps.Log)
	app.Get("/", authHandler.Index)
	app.Get("/login", authHandler.ShowLogin)
	if deps.LoginLimiter != nil {
		app.Post("/login", deps.LoginLimiter.Middleware(), authHandler.Login)
	} else {
		app.Post("/login", authHandler.Login)
	}
	app.Get("/logout", authHandler.Logout)

	if deps.EnableSetup {
		deps.Log.Warn().Msg("GET /setup habilitado; no usar en producción")
		app.Get("/setup", Setup)
	}

	productHandler := NewProductHandler(deps.ProductUC, deps.Log)

	// Admin
	admin := app.Group("/admin", Gate(CapabilityAdmin))
	adminHandler := NewAdminHandler(deps.ReportUC, deps.Log)
	admin.Get("/", adminHandler.Dashboard)
	admin.Get("/export/sales", adminHandler.ExportSalesCSV)
	admin.Get("/export/sales.pdf", adminHandler.ExportSalesPDF)

	admin.Get("/products/new", productHandler.NewForm)
	admin.Post("/products/new", productHandler.Create)
	admin.Get("/products/edit/:id", productHandler.EditForm)
	admin.Post("/products/edit/:id", productHandler.Update)
	admin.Post("/products/delete/:id", productHandler.Delete)

	userHandler := NewUserHandler(deps.UserUC, deps.Log)
	admin.Get("/users/new", userHandler.NewForm)
	admin.Post("/users/new", userHandler.Create)
	admin.Post("/users/delete/:id", userHandler.Delete)

	// POS (solo vendedores)
	pos := app.Group("/pos", Gate(CapabilitySeller))
	posHandler := NewPOSHandler(deps.SalesUC, deps.ProductUC, deps.Log)
	pos.Get("/", posHandler.View)
	pos.Post("/", posHandler.Sell)

	// API (cualquier sesión)
	api := app.Group("/api", Gate(CapabilityAny))
	api.Get("/products", productHandler.Search)
}
