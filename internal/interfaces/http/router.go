package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Libreria-api/internal/application/auth"
	"github.com/jhoicas/Libreria-api/internal/application/inventory"
	"github.com/jhoicas/Libreria-api/internal/application/sales"
	"github.com/jhoicas/Libreria-api/internal/application/usecase"
	"github.com/jhoicas/Libreria-api/internal/domain/authz"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC     *auth.AuthUseCase
	BookUC     *usecase.BookUseCase
	CategoryUC *usecase.CategoryUseCase
	ClientUC   *usecase.ClientUseCase
	UserUC     *usecase.UserUseCase
	ReportUC   *usecase.ReportUseCase
	SaleUC     *sales.SaleUseCase
	ReceiptUC  *sales.ReceiptPDFUseCase
	AdjustUC   *inventory.AdjustStockUseCase
	Sessions   auth.SessionStore
	JWTSecret  string
}

// Router registra las rutas de la API. Las rutas de escritura llevan dos capas:
// AuthMiddleware (sesión viva) y RequirePermission (matriz de permisos por rol).
// La consulta del catálogo es pública, igual que en el sistema original.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	authn := AuthMiddleware(deps.JWTSecret, deps.Sessions)
	perm := func(module authz.Module, action authz.Action) fiber.Handler {
		return RequirePermission(deps.Sessions, module, action)
	}

	// Auth
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup := api.Group("/auth")
	authGroup.Post("/login", authHandler.Login)
	authGroup.Post("/logout", authn, authHandler.Logout)

	// Menú de módulos accesibles (cualquier sesión viva)
	api.Get("/menu", authn, authHandler.Menu)

	// Libros: la consulta del catálogo es pública, la escritura exige inventory:*
	bookHandler := NewBookHandler(deps.BookUC)
	libros := api.Group("/libros")
	libros.Get("/", bookHandler.List)
	libros.Get("/:id", bookHandler.GetByID)
	libros.Post("/", authn, perm(authz.ModuleInventory, authz.ActionCreate), bookHandler.Create)
	libros.Put("/:id", authn, perm(authz.ModuleInventory, authz.ActionEdit), bookHandler.Update)
	libros.Delete("/:id", authn, perm(authz.ModuleInventory, authz.ActionDelete), bookHandler.Delete)

	// Categorías: consulta pública, creación con inventory:create
	categoryHandler := NewCategoryHandler(deps.CategoryUC)
	categorias := api.Group("/categorias")
	categorias.Get("/", categoryHandler.List)
	categorias.Post("/", authn, perm(authz.ModuleInventory, authz.ActionCreate), categoryHandler.Create)

	// Clientes: viven bajo el módulo de ventas (quien vende gestiona clientes)
	clientHandler := NewClientHandler(deps.ClientUC)
	clientes := api.Group("/clientes", authn)
	clientes.Get("/", perm(authz.ModuleSales, authz.ActionView), clientHandler.List)
	clientes.Get("/:id", perm(authz.ModuleSales, authz.ActionView), clientHandler.GetByID)
	clientes.Post("/", perm(authz.ModuleSales, authz.ActionCreate), clientHandler.Create)
	clientes.Put("/:id", perm(authz.ModuleSales, authz.ActionEdit), clientHandler.Update)
	clientes.Delete("/:id", perm(authz.ModuleSales, authz.ActionDelete), clientHandler.Delete)

	// Ventas
	saleHandler := NewSaleHandler(deps.SaleUC, deps.ReceiptUC)
	ventas := api.Group("/ventas", authn)
	ventas.Get("/", perm(authz.ModuleSales, authz.ActionView), saleHandler.List)
	ventas.Get("/:id", perm(authz.ModuleSales, authz.ActionView), saleHandler.GetByID)
	ventas.Get("/:id/pdf", perm(authz.ModuleSales, authz.ActionView), saleHandler.ReceiptPDF)
	ventas.Post("/", perm(authz.ModuleSales, authz.ActionCreate), saleHandler.Create)
	ventas.Delete("/:id", perm(authz.ModuleSales, authz.ActionDelete), saleHandler.Cancel)

	// Stock
	stockHandler := NewStockHandler(deps.AdjustUC)
	stock := api.Group("/stock", authn)
	stock.Post("/ajustes", perm(authz.ModuleStock, authz.ActionManage), stockHandler.Adjust)
	stock.Get("/movimientos", perm(authz.ModuleStock, authz.ActionView), stockHandler.Movements)

	// Reportes
	reportHandler := NewReportHandler(deps.ReportUC)
	reportes := api.Group("/reportes", authn)
	reportes.Get("/stock-bajo", perm(authz.ModuleReports, authz.ActionView), reportHandler.LowStock)

	// Usuarios (solo admin según la matriz)
	userHandler := NewUserHandler(deps.UserUC)
	usuarios := api.Group("/usuarios", authn)
	usuarios.Get("/", perm(authz.ModuleUsers, authz.ActionView), userHandler.List)
	usuarios.Get("/:id", perm(authz.ModuleUsers, authz.ActionView), userHandler.GetByID)
	usuarios.Post("/", perm(authz.ModuleUsers, authz.ActionCreate), userHandler.Create)
	usuarios.Put("/:id", perm(authz.ModuleUsers, authz.ActionEdit), userHandler.Update)
	usuarios.Delete("/:id", perm(authz.ModuleUsers, authz.ActionDelete), userHandler.Delete)
}
